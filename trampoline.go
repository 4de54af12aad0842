// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// task is one queued completion in a Trampoline.
type task struct {
	id    uuid.UUID
	delay time.Duration
	fn    func()
}

// Trampoline is a deterministic, caller-driven [Scheduler]. Schedule
// appends the completion to a FIFO queue and returns; nothing runs until
// the owner drives the queue with [Trampoline.Step] or [Trampoline.Drain].
//
// Each completion runs at the top of the driving loop, never nested
// inside the completion that scheduled it, so self-scheduling chains of
// any length evaluate in constant stack space. Delays are reported to
// hooks and otherwise ignored; queue order is the only ordering.
//
// Trampoline is safe for concurrent Schedule calls, but only one
// goroutine may drive it at a time: a Step overlapping another Step is a
// programming error and panics. Chains sharing one Trampoline are
// interleaved step by step in FIFO order. The zero value is an empty
// queue ready to use with a real clock and no hooks.
type Trampoline struct {
	mu      sync.Mutex
	driving atomic.Bool
	queue   []task
	clock   Clock
	hooks   Hooks
}

// NewTrampoline returns an empty Trampoline configured by opts.
func NewTrampoline(opts ...Option) *Trampoline {
	o := newSchedulerOptions(opts)
	return &Trampoline{clock: o.clock, hooks: o.hooks}
}

// Schedule implements [Scheduler]. The completion is queued, not run.
func (tr *Trampoline) Schedule(delay time.Duration, fn func()) {
	id := uuid.New()
	tr.hooks.emitSchedule(id, delay)
	tr.mu.Lock()
	tr.queue = append(tr.queue, task{id: id, delay: delay, fn: fn})
	tr.mu.Unlock()
}

// Step runs the oldest queued completion on the calling goroutine.
// It reports false, running nothing, when the queue is empty.
//
// The queue lock is not held while the completion runs, so a completion
// may schedule further work without deadlocking. It must not Step,
// though: Step panics while another Step is in progress, whether from a
// second draining goroutine or from inside a running completion.
func (tr *Trampoline) Step() bool {
	if !tr.driving.CompareAndSwap(false, true) {
		panic("ktor: trampoline drained concurrently")
	}
	defer tr.driving.Store(false)

	tr.mu.Lock()
	if len(tr.queue) == 0 {
		tr.mu.Unlock()
		return false
	}
	t := tr.queue[0]
	tr.queue[0] = task{}
	tr.queue = tr.queue[1:]
	tr.mu.Unlock()

	clock := tr.clock
	if clock == nil {
		clock = RealClock{}
	}
	tr.hooks.emitFire(t.id)
	start := clock.Now()
	t.fn()
	tr.hooks.emitComplete(t.id, clock.Since(start))
	return true
}

// Drain steps until the queue is empty, including completions scheduled
// while draining, and returns the number of completions run. A chain
// built from [Loop] never empties the queue; drive such chains with
// [Trampoline.Step] instead.
func (tr *Trampoline) Drain() int {
	n := 0
	for tr.Step() {
		n++
	}
	return n
}

// Len reports the number of completions currently queued.
func (tr *Trampoline) Len() int {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return len(tr.queue)
}
