// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ktor

import (
	"context"
	"errors"
	"time"
)

// ErrAwaitTimeout is returned by [Await] when the chain does not deliver
// a value within the timeout.
var ErrAwaitTimeout = errors.New("ktor: await timed out")

// Await consumes c and blocks until its continuation receives a value,
// the timeout elapses, or ctx is cancelled. Timeout expiry returns
// [ErrAwaitTimeout]; parent cancellation returns the context's error.
//
// Await is the bridge from fire-and-forget chains back to blocking code.
// The chain must progress without the calling goroutine, as on
// [GoScheduler]; awaiting a chain queued on an undriven [Trampoline]
// can only time out. A value delivered after Await has returned is
// discarded.
func Await[A any](ctx context.Context, c Continuator[Unit, A], timeout time.Duration) (A, error) {
	var zero A

	// If the parent context is already done, return its error immediately.
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Buffered so the single delivery never blocks the scheduler, even
	// after Await has given up.
	ch := make(chan A, 1)
	c.Consume(func(a A) Unit {
		ch <- a
		return Unit{}
	})

	select {
	case a := <-ch:
		return a, nil
	case <-waitCtx.Done():
		// Distinguish between timeout and parent cancellation.
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, ErrAwaitTimeout
	}
}
