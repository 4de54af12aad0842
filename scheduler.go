// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Scheduler is the producer-side boundary: the runtime that completes
// [Async] continuators.
//
// Schedule arranges for fn to run exactly once after at least delay has
// elapsed. fn must not run synchronously inside Schedule: completions are
// delivered on a fresh call context, never nested in the producer's
// stack, so self-scheduling chains evaluate in bounded stack space.
// Schedule itself must not block.
type Scheduler interface {
	Schedule(delay time.Duration, fn func())
}

// Option configures a scheduler.
type Option func(*schedulerOptions)

type schedulerOptions struct {
	clock Clock
	hooks Hooks
}

func newSchedulerOptions(opts []Option) schedulerOptions {
	o := schedulerOptions{clock: RealClock{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithClock sets the clock used for delays and hook timings.
// The default is [RealClock].
func WithClock(c Clock) Option {
	return func(o *schedulerOptions) { o.clock = c }
}

// WithHooks installs lifecycle callbacks on the scheduler.
func WithHooks(h Hooks) Option {
	return func(o *schedulerOptions) { o.hooks = h }
}

// GoScheduler delivers each completion on its own goroutine, sleeping on
// the configured clock when a delay is requested. It is the scheduler for
// chains that should progress without the attaching goroutine.
// The zero value is ready to use with a real clock and no hooks.
//
// Completions are fire-and-forget: nothing joins them implicitly. [Wait]
// blocks until every completion scheduled so far, including completions
// scheduled transitively by running chains, has finished.
type GoScheduler struct {
	clock Clock
	hooks Hooks
	wg    sync.WaitGroup
}

// NewGoScheduler returns a GoScheduler configured by opts.
func NewGoScheduler(opts ...Option) *GoScheduler {
	o := newSchedulerOptions(opts)
	return &GoScheduler{clock: o.clock, hooks: o.hooks}
}

// Schedule implements [Scheduler]. fn runs on a new goroutine after at
// least delay has elapsed on the scheduler's clock.
func (s *GoScheduler) Schedule(delay time.Duration, fn func()) {
	clock := s.clock
	if clock == nil {
		clock = RealClock{}
	}
	id := uuid.New()
	s.hooks.emitSchedule(id, delay)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if delay > 0 {
			t := clock.NewTimer(delay)
			defer t.Stop()
			<-t.C()
		}
		s.hooks.emitFire(id)
		start := clock.Now()
		fn()
		s.hooks.emitComplete(id, clock.Since(start))
	}()
}

// Wait blocks until all scheduled completions have run.
//
// A chain schedules its next step from inside the current one, so the
// internal counter stays positive until the chain's final continuation
// returns; waiting after attaching therefore joins whole chains, not just
// their first steps. Scheduling new chains concurrently with Wait after
// the scheduler has gone idle is a race, the same as [sync.WaitGroup].
func (s *GoScheduler) Wait() {
	s.wg.Wait()
}
