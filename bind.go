// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor

// Monad operations for continuators.
//
// Minimal definition: Return (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as conveniences for the common
// shapes of chain construction.

// Bind sequences a continuator with a function producing the next one
// (monadic bind). Consuming Bind(m, rest) with k consumes m with a
// continuation that applies rest to the inner value and consumes the
// resulting continuator with the original, unwrapped k.
//
// Rest receives exactly the value m delivers, and the composed chain
// invokes k exactly once per terminating evaluation, no matter how many
// Binds are stacked.
type Bind[R, A, B any] struct {
	// Inner is the continuator consumed first.
	Inner Continuator[R, A]
	// Rest maps the inner value to the continuator consumed next.
	Rest func(A) Continuator[R, B]
}

// NewBind constructs a [Bind] of inner and rest.
func NewBind[R, A, B any](inner Continuator[R, A], rest func(A) Continuator[R, B]) Bind[R, A, B] {
	return Bind[R, A, B]{Inner: inner, Rest: rest}
}

// Consume runs Inner with the composed continuation a ↦ Rest(a).Consume(k).
func (b Bind[R, A, B]) Consume(k func(B) R) R {
	return b.Inner.Consume(func(a A) R {
		return b.Rest(a).Consume(k)
	})
}

func (Bind[R, A, B]) continuator() {}

// Map applies a pure function to a continuator's value.
// Map(m, f) is Bind(m, func(a) Return(f(a))).
func Map[R, A, B any](m Continuator[R, A], f func(A) B) Bind[R, A, B] {
	return Bind[R, A, B]{
		Inner: m,
		Rest: func(a A) Continuator[R, B] {
			return Return[R, B]{Value: f(a)}
		},
	}
}

// Then sequences two continuators, discarding the first value.
// Then(m, n) is Bind(m, func(_) n).
func Then[R, A, B any](m Continuator[R, A], n Continuator[R, B]) Bind[R, A, B] {
	return Bind[R, A, B]{
		Inner: m,
		Rest: func(A) Continuator[R, B] {
			return n
		},
	}
}
