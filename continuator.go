// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor

// Unit is the result type for chains that are driven purely for their
// effects. Asynchronous chains produce their real output by invoking the
// attached continuation; the R position then carries no information.
type Unit = struct{}

// Continuator represents a deferred value: a computation that will
// produce a value of type A and feed it to a consumer continuation,
// yielding a result of type R on the consumer's path.
//
// Continuator is a closed sum. Its implementations are exactly [Return],
// [Async], [Bind], [LoopN] and [Loop]; the unexported marker method keeps
// the set closed so consumers can rely on exhaustive case analysis.
// All variants are immutable values: composing them never mutates the
// operands, and a variant can be copied freely before it is consumed.
//
// Continuators are consumed at most once by convention. The engine does
// not detect a second Consume: variants are plain values, so consuming
// one again behaves like consuming a fresh copy, and a variant reaching
// [Async] schedules an independent delivery each time. The [Affine]
// guard detects a scheduler firing one scheduled completion twice, not
// double consumption.
type Continuator[R, A any] interface {
	// Consume registers the continuation k to receive the value.
	//
	// Synchronous variants invoke k on the caller's stack and return its
	// result. Variants that suspend on [Async] return the zero R
	// immediately; k then runs later, exactly once, on the scheduler's
	// execution context.
	Consume(k func(A) R) R

	continuator() // unexported marker method
}

// Return lifts a pure value into a continuator.
// Consuming it applies the continuation to the value synchronously,
// on the caller's stack, with no scheduler involved.
type Return[R, A any] struct {
	// Value is handed to the continuation as-is.
	Value A
}

// NewReturn constructs a [Return] carrying the given value.
func NewReturn[R, A any](a A) Return[R, A] {
	return Return[R, A]{Value: a}
}

// Consume applies k to the stored value and returns k's result.
func (r Return[R, A]) Consume(k func(A) R) R {
	return k(r.Value)
}

func (Return[R, A]) continuator() {}

// identity is the identity continuation for Run.
// Named generic function produces a static function value per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func identity[A any](a A) A { return a }

// Run consumes a synchronous continuator with the identity continuation.
// The result type must match the value type (R = A).
//
// Run is only meaningful for chains built from [Return] and [Bind]; a
// chain containing [Async] returns the zero value before the real value
// is delivered. Use [Attach] or [Await] for those.
func Run[A any](m Continuator[A, A]) A {
	return m.Consume(identity[A])
}

// Attach consumes m with the continuation k. It is the consumer-side
// boundary: k receives the chain's value wherever and whenever the chain
// completes, and the returned R is k's result for synchronous chains or
// the zero R for chains that suspend.
func Attach[R, A any](m Continuator[R, A], k func(A) R) R {
	return m.Consume(k)
}
