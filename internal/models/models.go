package models

import (
	"fmt"
	"time"
)

// Phase enumerates the states of a countdown.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhasePaused  Phase = "paused"
	PhaseDone    Phase = "done"
)

// Segment limits shared by hours, minutes and seconds.
const (
	SegmentMin = 0
	SegmentMax = 59
)

// Duration is the configured length of a countdown.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// TotalSeconds returns h*3600 + m*60 + s.
func (d Duration) TotalSeconds() int {
	return d.Hours*3600 + d.Minutes*60 + d.Seconds
}

// Std converts the duration to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.TotalSeconds()) * time.Second
}

// IsZero reports whether the countdown has no length.
func (d Duration) IsZero() bool {
	return d.TotalSeconds() == 0
}

// String formats the duration as HH:MM:SS.
func (d Duration) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", d.Hours, d.Minutes, d.Seconds)
}

// Segments returns hours, minutes and seconds in display order.
func (d Duration) Segments() [3]int {
	return [3]int{d.Hours, d.Minutes, d.Seconds}
}

// WithSegment returns a copy with segment i (0=hours, 1=minutes, 2=seconds) set to v.
func (d Duration) WithSegment(i, v int) Duration {
	switch i {
	case 0:
		d.Hours = v
	case 1:
		d.Minutes = v
	case 2:
		d.Seconds = v
	}
	return d
}

// TimerState is a snapshot of a countdown.
type TimerState struct {
	RemainingSeconds int
	TotalSeconds     int
	Running          bool
	ElapsedFraction  float64
	Phase            Phase
}

// Bounds is the viewport the donut is laid out in.
type Bounds struct {
	Width  float64
	Height float64
}

// Side is the smaller of width and height.
func (b Bounds) Side() float64 {
	if b.Height <= b.Width {
		return b.Height
	}
	return b.Width
}
