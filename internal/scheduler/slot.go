// Package scheduler provides single-slot, replace-on-rearm one-second tick sources.
//
// Slot drives a bubbletea program through tick messages. Ticker drives a plain loop through
// a channel. Both tag every tick with the arm that produced it so ticks from a replaced or
// cancelled arm are dropped instead of doubling the tick rate.
package scheduler

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg is delivered to the bubbletea update loop once per interval.
type TickMsg struct {
	ID   int
	Tag  int
	Time time.Time
}

// Slot holds at most one live tick chain.
type Slot struct {
	id       int
	tag      int
	interval time.Duration
	armed    bool
	pending  bool
}

func NewSlot(interval time.Duration) *Slot {
	if interval <= 0 {
		interval = time.Second
	}
	return &Slot{id: nextID(), interval: interval}
}

// Arm starts a new tick chain, orphaning any previous one.
func (s *Slot) Arm() {
	s.tag++
	s.armed = true
	s.pending = true
}

// Cancel orphans the current chain.
func (s *Slot) Cancel() {
	s.tag++
	s.armed = false
	s.pending = false
}

// Accept reports whether msg belongs to the live chain of this slot.
func (s *Slot) Accept(msg TickMsg) bool {
	return s.armed && msg.ID == s.id && msg.Tag == s.tag
}

// Continue requests the next tick of the live chain.
func (s *Slot) Continue() {
	if s.armed {
		s.pending = true
	}
}

// Cmd returns the command for a requested tick, or nil when nothing is pending.
func (s *Slot) Cmd() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	id, tag := s.id, s.tag
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Tag: tag, Time: t}
	})
}

func (s *Slot) ID() int                 { return s.id }
func (s *Slot) Tag() int                { return s.tag }
func (s *Slot) Armed() bool             { return s.armed }
func (s *Slot) Pending() bool           { return s.pending }
func (s *Slot) Interval() time.Duration { return s.interval }
