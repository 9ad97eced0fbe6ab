package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Tick is one delivery from a Ticker.
type Tick struct {
	Gen  int
	Time time.Time
}

// Ticker runs one goroutine per arm; arming again stops the previous goroutine first.
type Ticker struct {
	mu       sync.Mutex
	interval time.Duration
	gen      int
	stop     chan struct{}
	c        chan Tick
	wg       sync.WaitGroup
	live     atomic.Int32
}

func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = time.Second
	}
	return &Ticker{interval: interval, c: make(chan Tick)}
}

// C delivers ticks. Check them with Accept before acting on them.
func (t *Ticker) C() <-chan Tick {
	return t.c
}

func (t *Ticker) Arm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
	t.gen++
	stop := make(chan struct{})
	t.stop = stop
	t.wg.Add(1)
	t.live.Add(1)
	go t.run(t.gen, stop)
}

func (t *Ticker) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelLocked()
}

// Stop cancels the ticker and waits for its goroutine to exit.
func (t *Ticker) Stop() {
	t.Cancel()
	t.wg.Wait()
}

// Accept reports whether tick came from the current arm.
func (t *Ticker) Accept(tick Tick) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil && tick.Gen == t.gen
}

// Armed reports whether a tick goroutine is scheduled.
func (t *Ticker) Armed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stop != nil
}

// liveCount is the number of tick goroutines still running.
func (t *Ticker) liveCount() int {
	return int(t.live.Load())
}

// Run calls fn for every accepted tick until ctx is done or fn returns false.
func (t *Ticker) Run(ctx context.Context, fn func() bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case tick := <-t.c:
			if !t.Accept(tick) {
				continue
			}
			if !fn() {
				return nil
			}
		}
	}
}

func (t *Ticker) cancelLocked() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *Ticker) run(gen int, stop <-chan struct{}) {
	defer t.wg.Done()
	defer t.live.Add(-1)
	tk := time.NewTicker(t.interval)
	defer tk.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-tk.C:
			select {
			case t.c <- Tick{Gen: gen, Time: now}:
			case <-stop:
				return
			}
		}
	}
}
