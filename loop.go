// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor

// LoopDone is the value the terminal [Return] of a [LoopN] chain delivers
// to the attached continuation.
const LoopDone = "Done!"

// LoopN is a finite self-scheduling chain. Consuming it performs one
// asynchronous step; when the step's value arrives the chain continues as
// LoopN with that value as the new label and the counter decremented, or,
// once the counter has reached zero, as Return(LoopDone).
//
// A LoopN with Remaining = n therefore completes exactly n+1 asynchronous
// steps before the continuation receives [LoopDone]. Remaining below zero
// behaves as zero.
type LoopN[R any] struct {
	// Step is the asynchronous primitive performed once per iteration.
	// Each iteration consumes a fresh copy of it.
	Step Async[R, string]
	// Label names the current iteration. It is carried for diagnostics
	// and replaced by the step's delivered value on each iteration.
	Label string
	// Remaining is the number of iterations left after this one.
	Remaining int
}

// NewLoopN constructs a [LoopN] performing n+1 steps on step's scheduler.
func NewLoopN[R any](step Async[R, string], label string, n int) LoopN[R] {
	return LoopN[R]{Step: step, Label: label, Remaining: n}
}

// Consume performs one step bound to the rest of the countdown.
func (l LoopN[R]) Consume(k func(string) R) R {
	step, n := l.Step, l.Remaining
	return Bind[R, string, string]{
		Inner: step,
		Rest: func(s string) Continuator[R, string] {
			if n > 0 {
				return LoopN[R]{Step: step, Label: s, Remaining: n - 1}
			}
			return Return[R, string]{Value: LoopDone}
		},
	}.Consume(k)
}

func (LoopN[R]) continuator() {}

// Loop is the non-terminating variant of [LoopN]: every delivered value
// becomes the label of another Loop on the same step. The continuation
// passed to Consume is never invoked; the chain runs for as long as its
// scheduler keeps firing.
type Loop[R any] struct {
	// Step is the asynchronous primitive performed once per iteration.
	Step Async[R, string]
	// Label names the current iteration.
	Label string
}

// NewLoop constructs a [Loop] stepping forever on step's scheduler.
func NewLoop[R any](step Async[R, string], label string) Loop[R] {
	return Loop[R]{Step: step, Label: label}
}

// Consume performs one step bound to the next iteration of the loop.
func (l Loop[R]) Consume(k func(string) R) R {
	step := l.Step
	return Bind[R, string, string]{
		Inner: step,
		Rest: func(s string) Continuator[R, string] {
			return Loop[R]{Step: step, Label: s}
		},
	}.Consume(k)
}

func (Loop[R]) continuator() {}
