// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor

// Either represents a value that is either Left (error) or Right (success).
//
// Chains that can fail carry Either through the value position: the chain
// itself always completes, and the continuation inspects which side it
// received. [BindEither] short-circuits the Left side across composition.
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{isRight: false, left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight returns true if this is a Right value.
func (e Either[E, A]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[E, A]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MatchEither pattern matches on the Either, calling onLeft or onRight.
func MatchEither[E, A, T any](e Either[E, A], onLeft func(E) T, onRight func(A) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// MapEither applies a function to the Right value.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// MapLeftEither applies a function to the Left value.
func MapLeftEither[E, F, A any](e Either[E, A], f func(E) F) Either[F, A] {
	if e.isRight {
		return Right[F](e.right)
	}
	return Left[F, A](f(e.left))
}

// BindEither sequences a continuator carrying Either with a rest function
// that runs only on Right values. A Left value short-circuits: rest is
// skipped and the Left is forwarded to the continuation unchanged, at the
// new result type.
func BindEither[R, E, A, B any](
	m Continuator[R, Either[E, A]],
	rest func(A) Continuator[R, Either[E, B]],
) Bind[R, Either[E, A], Either[E, B]] {
	return Bind[R, Either[E, A], Either[E, B]]{
		Inner: m,
		Rest: func(e Either[E, A]) Continuator[R, Either[E, B]] {
			if a, ok := e.GetRight(); ok {
				return rest(a)
			}
			l, _ := e.GetLeft()
			return Return[R, Either[E, B]]{Value: Left[E, B](l)}
		},
	}
}
