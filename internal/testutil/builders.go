package testutil

import (
	"errors"

	"github.com/akyairhashvil/donut/internal/models"
)

// DurationBuilder provides a fluent API for countdown durations.
type DurationBuilder struct {
	d models.Duration
}

func NewDuration() *DurationBuilder {
	return &DurationBuilder{}
}

func (b *DurationBuilder) Hours(h int) *DurationBuilder {
	b.d.Hours = h
	return b
}

func (b *DurationBuilder) Minutes(m int) *DurationBuilder {
	b.d.Minutes = m
	return b
}

func (b *DurationBuilder) Seconds(s int) *DurationBuilder {
	b.d.Seconds = s
	return b
}

func (b *DurationBuilder) Build() models.Duration {
	return b.d
}

// FakeScheduler counts arms and cancels and tracks whether a tick is live.
type FakeScheduler struct {
	Arms    int
	Cancels int
	Armed   bool
}

func (s *FakeScheduler) Arm() {
	s.Arms++
	s.Armed = true
}

func (s *FakeScheduler) Cancel() {
	s.Cancels++
	s.Armed = false
}

// FakePlayer counts completion signals.
type FakePlayer struct {
	Plays int
	Stops int
	Err   error
}

// ErrNoDevice is a ready-made playback failure.
var ErrNoDevice = errors.New("audio device unavailable")

func (p *FakePlayer) Play() error {
	p.Plays++
	return p.Err
}

func (p *FakePlayer) Stop() {
	p.Stops++
}
