package countdown_test

import (
	"math"
	"testing"

	"github.com/akyairhashvil/donut/internal/countdown"
	"github.com/akyairhashvil/donut/internal/countdown/mock_countdown"
	"github.com/akyairhashvil/donut/internal/models"
	"github.com/akyairhashvil/donut/internal/testutil"
	"github.com/golang/mock/gomock"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func newTimer(d models.Duration) (*countdown.Timer, *testutil.FakeScheduler, *testutil.FakePlayer) {
	sched := &testutil.FakeScheduler{}
	player := &testutil.FakePlayer{}
	return countdown.New(d, sched, player), sched, player
}

func TestNewResetsAndArmsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mock_countdown.NewMockScheduler(ctrl)
	player := mock_countdown.NewMockPlayer(ctrl)
	gomock.InOrder(
		player.EXPECT().Stop(),
		sched.EXPECT().Arm(),
	)

	d := testutil.NewDuration().Hours(1).Minutes(5).Seconds(23).Build()
	tm := countdown.New(d, sched, player)
	if tm.Remaining() != 3923 || tm.Total() != 3923 {
		t.Fatalf("unexpected remaining/total %d/%d", tm.Remaining(), tm.Total())
	}
	if tm.Running() {
		t.Fatalf("timer should not start running")
	}
	if tm.Phase() != models.PhaseIdle {
		t.Fatalf("Phase = %q", tm.Phase())
	}
	if tm.ElapsedFraction() != 0 || tm.RemainingFraction() != 1 {
		t.Fatalf("unexpected fractions %v/%v", tm.ElapsedFraction(), tm.RemainingFraction())
	}
	if !approx(tm.StepFraction(), 1.0/3923) {
		t.Fatalf("StepFraction = %v", tm.StepFraction())
	}
	if tm.TimeReadable() != "01:05:23" {
		t.Fatalf("TimeReadable = %q", tm.TimeReadable())
	}
}

func TestToggleTwiceRestoresRunning(t *testing.T) {
	tm, sched, _ := newTimer(models.Duration{Minutes: 1})
	before := tm.Remaining()

	tm.Toggle()
	if !tm.Running() || tm.Phase() != models.PhaseRunning {
		t.Fatalf("expected running after first toggle")
	}
	if !sched.Armed {
		t.Fatalf("expected scheduler armed while running")
	}
	tm.Toggle()
	if tm.Running() || tm.Phase() != models.PhasePaused {
		t.Fatalf("expected paused after second toggle, got %q", tm.Phase())
	}
	if sched.Armed {
		t.Fatalf("expected scheduler cancelled while paused")
	}
	if tm.Remaining() != before {
		t.Fatalf("toggle changed remaining: %d -> %d", before, tm.Remaining())
	}
}

func TestTickWhenNotRunningIsNoop(t *testing.T) {
	tm, _, _ := newTimer(models.Duration{Hours: 1, Minutes: 5, Seconds: 23})
	tm.Tick()
	tm.Tick()
	if tm.Remaining() != 3923 || tm.ElapsedFraction() != 0 {
		t.Fatalf("idle tick changed state: %+v", tm.State())
	}
	tm.Toggle()
	tm.Toggle()
	tm.Tick()
	if tm.Remaining() != 3923 {
		t.Fatalf("paused tick changed remaining to %d", tm.Remaining())
	}
}

func TestTickWhenRunningDecrements(t *testing.T) {
	tm, _, _ := newTimer(models.Duration{Hours: 1, Minutes: 5, Seconds: 23})
	tm.Toggle()
	step := tm.StepFraction()

	prevRemaining := tm.Remaining()
	prevElapsed := tm.ElapsedFraction()
	prevRemainingFraction := tm.RemainingFraction()
	tm.Tick()
	if tm.Remaining() != prevRemaining-1 {
		t.Fatalf("Remaining = %d, want %d", tm.Remaining(), prevRemaining-1)
	}
	if !approx(tm.ElapsedFraction(), prevElapsed+step) {
		t.Fatalf("ElapsedFraction = %v, want %v", tm.ElapsedFraction(), prevElapsed+step)
	}
	if !approx(tm.RemainingFraction(), prevRemainingFraction-step) {
		t.Fatalf("RemainingFraction = %v", tm.RemainingFraction())
	}
	if tm.TimeReadable() != "01:05:22" {
		t.Fatalf("TimeReadable = %q", tm.TimeReadable())
	}
	tm.Tick()
	if tm.TimeReadable() != "01:05:21" {
		t.Fatalf("TimeReadable = %q", tm.TimeReadable())
	}
}

func TestElapsedFractionMonotonicWhileRunning(t *testing.T) {
	tm, _, _ := newTimer(models.Duration{Seconds: 17})
	tm.Toggle()
	prev := tm.ElapsedFraction()
	for tm.Running() {
		tm.Tick()
		cur := tm.ElapsedFraction()
		if cur < prev {
			t.Fatalf("elapsed fraction decreased: %v -> %v", prev, cur)
		}
		prev = cur
	}
	if tm.ElapsedFraction() != 1 {
		t.Fatalf("expected full elapsed fraction at expiry, got %v", tm.ElapsedFraction())
	}
}

func TestFullCountdownFiresCompletionOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	sched := mock_countdown.NewMockScheduler(ctrl)
	player := mock_countdown.NewMockPlayer(ctrl)
	player.EXPECT().Stop().Times(1)
	sched.EXPECT().Arm().Times(2)
	sched.EXPECT().Cancel().Times(1)
	player.EXPECT().Play().Return(nil).Times(1)

	tm := countdown.New(models.Duration{Seconds: 5}, sched, player)
	tm.Toggle()
	for i := 0; i < 5; i++ {
		tm.Tick()
	}
	if tm.Remaining() != 0 || tm.Running() || tm.Phase() != models.PhaseDone {
		t.Fatalf("unexpected final state %+v", tm.State())
	}
	if tm.TimeReadable() != "00:00:00" {
		t.Fatalf("TimeReadable = %q", tm.TimeReadable())
	}
	tm.Tick()
	tm.Toggle()
	if tm.Phase() != models.PhaseDone {
		t.Fatalf("done should be terminal until reset")
	}
}

func TestZeroDurationCompletesSilently(t *testing.T) {
	tm, sched, player := newTimer(models.Duration{})
	tm.Toggle()
	if tm.Phase() != models.PhaseDone || tm.Running() {
		t.Fatalf("expected zero timer to be done, got %+v", tm.State())
	}
	if player.Plays != 0 {
		t.Fatalf("zero timer must not play the completion signal")
	}
	if sched.Armed {
		t.Fatalf("scheduler should be cancelled when done")
	}
}

func TestZeroDurationTickCompletes(t *testing.T) {
	tm, _, player := newTimer(models.Duration{})
	tm.Tick()
	if tm.Phase() != models.PhaseDone {
		t.Fatalf("expected tick on exhausted timer to complete it")
	}
	if player.Plays != 0 {
		t.Fatalf("zero timer must not play the completion signal")
	}
}

func TestCompletionSignalForEachSegment(t *testing.T) {
	for _, d := range []models.Duration{{Seconds: 1}, {Minutes: 1}, {Hours: 1}} {
		tm, _, player := newTimer(d)
		tm.Toggle()
		for tm.Running() {
			tm.Tick()
		}
		if player.Plays != 1 {
			t.Fatalf("%+v: expected one completion signal, got %d", d, player.Plays)
		}
	}
}

func TestPlaybackFailureStillCompletes(t *testing.T) {
	sched := &testutil.FakeScheduler{}
	player := &testutil.FakePlayer{Err: testutil.ErrNoDevice}
	tm := countdown.New(models.Duration{Seconds: 1}, sched, player)
	tm.Toggle()
	tm.Tick()
	if tm.Phase() != models.PhaseDone || player.Plays != 1 {
		t.Fatalf("expected completion despite playback failure, got %+v plays=%d", tm.State(), player.Plays)
	}
}

func TestResetRestoresTotalAndRearms(t *testing.T) {
	tm, sched, player := newTimer(models.Duration{Seconds: 5})
	tm.Toggle()
	tm.Tick()
	tm.Tick()

	armsBefore := sched.Arms
	stopsBefore := player.Stops
	tm.Reset()
	if tm.Remaining() != 5 || tm.ElapsedFraction() != 0 {
		t.Fatalf("unexpected state after reset %+v", tm.State())
	}
	if tm.Phase() != models.PhaseIdle {
		t.Fatalf("Phase = %q", tm.Phase())
	}
	if sched.Arms != armsBefore+1 {
		t.Fatalf("expected exactly one arm per reset, got %d", sched.Arms-armsBefore)
	}
	if player.Stops != stopsBefore+1 {
		t.Fatalf("expected reset to stop the chime")
	}

	for i := 0; i < 3; i++ {
		tm.Reset()
	}
	if sched.Arms != armsBefore+4 || !sched.Armed {
		t.Fatalf("unexpected arm bookkeeping: %+v", sched)
	}
}

func TestResetAfterDoneAllowsRestart(t *testing.T) {
	tm, _, player := newTimer(models.Duration{Seconds: 1})
	tm.Toggle()
	tm.Tick()
	tm.Reset()
	tm.Toggle()
	tm.Tick()
	if player.Plays != 2 {
		t.Fatalf("expected a completion signal per run, got %d", player.Plays)
	}
}

func TestSetDurationWhileRunningStopsAndResets(t *testing.T) {
	tm, _, _ := newTimer(models.Duration{Hours: 1, Minutes: 5, Seconds: 23})
	tm.Toggle()
	tm.Tick()

	next := tm.Duration().WithSegment(0, 3)
	tm.SetDuration(next)
	if tm.Running() {
		t.Fatalf("changing the duration should stop the timer")
	}
	if tm.Remaining() != next.TotalSeconds() || tm.Total() != next.TotalSeconds() {
		t.Fatalf("Remaining = %d, want %d", tm.Remaining(), next.TotalSeconds())
	}
	if tm.Duration() != next {
		t.Fatalf("Duration = %+v", tm.Duration())
	}
}

func TestOnChangeRunsAfterMutations(t *testing.T) {
	tm, _, _ := newTimer(models.Duration{Seconds: 2})
	var seen []models.TimerState
	tm.OnChange(func(s models.TimerState) { seen = append(seen, s) })

	tm.Toggle()
	tm.Tick()
	tm.Tick()
	tm.Reset()

	if len(seen) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(seen))
	}
	if seen[1].RemainingSeconds != 1 || seen[2].Phase != models.PhaseDone || seen[3].Phase != models.PhaseIdle {
		t.Fatalf("unexpected notifications %+v", seen)
	}
}

func TestCloseCancelsAndIgnoresCommands(t *testing.T) {
	tm, sched, player := newTimer(models.Duration{Seconds: 3})
	tm.Toggle()
	tm.Close()
	if sched.Armed {
		t.Fatalf("expected scheduler cancelled on close")
	}
	if !tm.Closed() {
		t.Fatalf("expected closed timer")
	}
	stops := player.Stops
	tm.Tick()
	tm.Reset()
	tm.Toggle()
	tm.Close()
	if tm.Remaining() != 3 || sched.Armed || player.Stops != stops {
		t.Fatalf("closed timer should ignore commands, got %+v", tm.State())
	}
}

func TestNilCollaborators(t *testing.T) {
	tm := countdown.New(models.Duration{Seconds: 1}, nil, nil)
	tm.Toggle()
	tm.Tick()
	if tm.Phase() != models.PhaseDone {
		t.Fatalf("expected done, got %q", tm.Phase())
	}
}
