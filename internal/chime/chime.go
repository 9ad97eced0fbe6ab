// Package chime plays the completion signal of a countdown.
package chime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/akyairhashvil/donut/internal/util"
)

var ErrEmptyCommand = errors.New("chime command is empty")

// Bell rings the terminal bell.
type Bell struct {
	mu    sync.Mutex
	w     io.Writer
	rings int
}

func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

func (b *Bell) Play() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.w == nil {
		return nil
	}
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		return fmt.Errorf("ring bell: %w", err)
	}
	b.rings++
	return nil
}

// Stop is a no-op: a bell has no play position to rewind.
func (b *Bell) Stop() {}

func (b *Bell) Rings() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.rings
}

// Command plays a sound through an external player, e.g. "paplay chimes.wav".
type Command struct {
	name string
	args []string

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}
	return &Command{name: fields[0], args: fields[1:]}, nil
}

// Play restarts playback from the beginning.
func (c *Command) Play() error {
	c.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	if err := cmd.Start(); err != nil {
		cancel()
		return fmt.Errorf("start %s: %w", c.name, err)
	}
	done := make(chan struct{})
	c.mu.Lock()
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	go func() {
		defer close(done)
		err := cmd.Wait()
		if ctx.Err() == nil {
			util.LogError("chime "+c.name, err)
		}
		cancel()
	}()
	return nil
}

// Stop kills a running playback and waits for it to exit.
func (c *Command) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Playing reports whether the external player is still running.
func (c *Command) Playing() bool {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Player is the method set shared by all signals.
type Player interface {
	Play() error
	Stop()
}

// Multi plays several signals together.
type Multi []Player

func (m Multi) Play() error {
	var errs []error
	for _, p := range m {
		if err := p.Play(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Stop() {
	for _, p := range m {
		p.Stop()
	}
}

// Nop plays nothing.
type Nop struct{}

func (Nop) Play() error { return nil }
func (Nop) Stop()       {}

// New builds the player for the configured bell and command; an empty result is Nop.
func New(bell io.Writer, command string) (Player, error) {
	var players Multi
	if bell != nil {
		players = append(players, NewBell(bell))
	}
	if strings.TrimSpace(command) != "" {
		c, err := NewCommand(command)
		if err != nil {
			return nil, err
		}
		players = append(players, c)
	}
	switch len(players) {
	case 0:
		return Nop{}, nil
	case 1:
		return players[0], nil
	}
	return players, nil
}
