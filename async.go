// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor

import "time"

// Async is the primitive asynchronous continuator: a value that will be
// delivered by a [Scheduler] instead of computed on the caller's stack.
// It is the only suspension point in the sum; every other variant either
// runs synchronously or bottoms out in an Async.
type Async[R, A any] struct {
	// Scheduler delivers the completion. Must not be nil.
	Scheduler Scheduler
	// Delay is handed to the scheduler verbatim.
	Delay time.Duration
	// Value is delivered to the continuation when the completion fires.
	Value A
}

// NewAsync constructs an [Async] that delivers value after delay on s.
func NewAsync[R, A any](s Scheduler, delay time.Duration, value A) Async[R, A] {
	return Async[R, A]{Scheduler: s, Delay: delay, Value: value}
}

// Consume schedules delivery of the value to k and returns the zero R
// immediately. k runs later, exactly once, on the scheduler's execution
// context; its result is produced there and is not observable through
// this return value.
//
// The continuation is wrapped in an [Affine] guard before it crosses the
// scheduler boundary: a scheduler that fires the same completion twice
// panics instead of silently duplicating the rest of the chain.
func (a Async[R, A]) Consume(k func(A) R) R {
	if a.Scheduler == nil {
		panic("ktor: async continuator has nil scheduler")
	}
	once := Once(k)
	v := a.Value
	a.Scheduler.Schedule(a.Delay, func() {
		once.Resume(v)
	})
	var zero R
	return zero
}

func (Async[R, A]) continuator() {}
