// Package countdown holds the countdown state machine: a remaining-seconds value driven by a
// one-second scheduler through idle, running, paused and done phases.
package countdown

//go:generate mockgen -source=timer.go -destination=mock_countdown/mock_countdown.go

import (
	"github.com/akyairhashvil/donut/internal/models"
	"github.com/akyairhashvil/donut/internal/util"
)

// Scheduler is a single-slot periodic task. Arm replaces any previous arm.
type Scheduler interface {
	Arm()
	Cancel()
}

// Player plays the completion signal. Stop halts playback and rewinds it.
type Player interface {
	Play() error
	Stop()
}

// Timer is the countdown state holder. It is not safe for concurrent use; callers own it from
// a single goroutine (the bubbletea update loop or the headless tick loop).
type Timer struct {
	duration  models.Duration
	total     int
	remaining int
	phase     models.Phase
	closed    bool

	sched    Scheduler
	player   Player
	onChange []func(models.TimerState)
}

// New configures a timer for d and resets it, which arms the scheduler once.
func New(d models.Duration, sched Scheduler, player Player) *Timer {
	if sched == nil {
		sched = nopScheduler{}
	}
	if player == nil {
		player = nopPlayer{}
	}
	t := &Timer{sched: sched, player: player}
	t.configure(d)
	t.Reset()
	return t
}

// OnChange registers fn to run after every state mutation.
func (t *Timer) OnChange(fn func(models.TimerState)) {
	if fn != nil {
		t.onChange = append(t.onChange, fn)
	}
}

// Reset restores the configured total, stops the chime and re-arms the scheduler.
func (t *Timer) Reset() {
	if t.closed {
		return
	}
	t.remaining = t.total
	t.phase = models.PhaseIdle
	t.player.Stop()
	t.sched.Arm()
	t.notify()
}

// SetDuration stops the countdown and resets it to d.
func (t *Timer) SetDuration(d models.Duration) {
	t.configure(d)
	t.Reset()
}

// Toggle starts or pauses the countdown. It does nothing once the countdown is done.
func (t *Timer) Toggle() {
	if t.closed {
		return
	}
	switch t.phase {
	case models.PhaseDone:
		return
	case models.PhaseRunning:
		t.phase = models.PhasePaused
		t.sched.Cancel()
	default:
		if t.remaining == 0 {
			t.finish()
			return
		}
		t.phase = models.PhaseRunning
		t.sched.Arm()
	}
	t.notify()
}

// Tick advances a running countdown by one second. A tick on an exhausted countdown
// completes it.
func (t *Timer) Tick() {
	if t.closed || t.phase == models.PhaseDone {
		return
	}
	if t.remaining <= 0 {
		t.finish()
		return
	}
	if t.phase != models.PhaseRunning {
		return
	}
	t.remaining--
	if t.remaining == 0 {
		t.finish()
		return
	}
	t.notify()
}

// Close cancels the scheduler and silences the chime. The timer ignores commands afterwards.
func (t *Timer) Close() {
	if t.closed {
		return
	}
	t.sched.Cancel()
	t.player.Stop()
	t.closed = true
}

func (t *Timer) configure(d models.Duration) {
	t.duration = d
	t.total = d.TotalSeconds()
	if t.total < 0 {
		t.total = 0
	}
}

func (t *Timer) finish() {
	t.phase = models.PhaseDone
	t.sched.Cancel()
	if t.total > 0 {
		util.LogError("completion signal", t.player.Play())
	}
	t.notify()
}

func (t *Timer) notify() {
	if len(t.onChange) == 0 {
		return
	}
	s := t.State()
	for _, fn := range t.onChange {
		fn(s)
	}
}

// State returns a snapshot of the countdown.
func (t *Timer) State() models.TimerState {
	return models.TimerState{
		RemainingSeconds: t.remaining,
		TotalSeconds:     t.total,
		Running:          t.Running(),
		ElapsedFraction:  t.ElapsedFraction(),
		Phase:            t.phase,
	}
}

func (t *Timer) Phase() models.Phase       { return t.phase }
func (t *Timer) Running() bool             { return t.phase == models.PhaseRunning }
func (t *Timer) Remaining() int            { return t.remaining }
func (t *Timer) Total() int                { return t.total }
func (t *Timer) Duration() models.Duration { return t.duration }
func (t *Timer) Closed() bool              { return t.closed }

// ElapsedFraction is 1 - remaining/total, or 0 for a zero-length countdown.
func (t *Timer) ElapsedFraction() float64 {
	if t.total <= 0 {
		return 0
	}
	return float64(t.total-t.remaining) / float64(t.total)
}

// RemainingFraction is 1 - ElapsedFraction.
func (t *Timer) RemainingFraction() float64 {
	return 1 - t.ElapsedFraction()
}

// StepFraction is the share of the countdown one tick consumes.
func (t *Timer) StepFraction() float64 {
	if t.total <= 0 {
		return 0
	}
	return 1 / float64(t.total)
}

// TimeReadable formats the remaining time as HH:MM:SS.
func (t *Timer) TimeReadable() string {
	return TimeReadable(t.remaining)
}

type nopScheduler struct{}

func (nopScheduler) Arm()    {}
func (nopScheduler) Cancel() {}

type nopPlayer struct{}

func (nopPlayer) Play() error { return nil }
func (nopPlayer) Stop()       {}
