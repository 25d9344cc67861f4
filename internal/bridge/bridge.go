// Package bridge implements the runtime control channel of a loaded
// player document: a two-state machine that queues command scripts
// until the embedded player signals readiness, then executes them in
// FIFO order.
package bridge

import (
	"fmt"
	"sync"
)

// Executor runs a command script against the loaded document.
type Executor interface {
	Eval(script string) error
}

// Bridge starts not-ready and becomes ready exactly once per loaded
// document. A reload replaces the bridge with a fresh instance; queued
// commands of the old one are dropped with it.
type Bridge struct {
	mu       sync.Mutex
	executor Executor
	ready    bool
	queue    []string
}

func New(executor Executor) *Bridge {
	return &Bridge{executor: executor}
}

// Dispatch executes the script immediately when the player is ready,
// otherwise appends it to the queue. The queue is unbounded and keeps
// duplicates.
func (b *Bridge) Dispatch(script string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.ready {
		b.queue = append(b.queue, script)
		return nil
	}

	if err := b.executor.Eval(script); err != nil {
		return fmt.Errorf("failed to eval script: %w", err)
	}

	return nil
}

// SignalReady transitions the bridge to ready and drains the queue
// exactly once, in FIFO order. Further calls are no-ops.
func (b *Bridge) SignalReady() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ready {
		return nil
	}
	b.ready = true

	var firstErr error
	for _, script := range b.queue {
		if err := b.executor.Eval(script); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to eval queued script: %w", err)
		}
	}
	b.queue = nil

	return firstErr
}

func (b *Bridge) IsReady() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.ready
}
