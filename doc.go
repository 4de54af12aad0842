// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ktor composes asynchronous computations as continuators in Go.
//
// The core type [Continuator] represents "a value that will exist": a
// computation that produces a value of type A and feeds it to a consumer
// continuation func(A) R. Chains are composed before any of them runs,
// then consumed once; completion is delivered through the continuation,
// not through return values.
//
// # Design Philosophy
//
// ktor provides:
//   - A closed sum of continuator variants with exhaustive, data-only cases
//   - One suspension point: [Async] is the only variant that crosses a scheduler
//   - Scheduling as an injected boundary, so chains run identically on
//     goroutines or on a deterministic queue
//
// # The Sum
//
// [Continuator] is sealed; its implementations are exactly:
//
//   - [Return]: a pure value, consumed synchronously on the caller's stack
//   - [Async]: a value delivered later by a [Scheduler], exactly once
//   - [Bind]: monadic sequencing of a continuator with its rest function
//   - [LoopN]: a finite self-scheduling chain ending in Return([LoopDone])
//   - [Loop]: the non-terminating variant; its continuation never runs
//
// All variants are immutable values and single-shot: consume each
// continuator at most once.
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [NewReturn]: Lift a pure value into a continuator
//   - [NewBind]: Sequence two continuators
//
// Derived operations:
//
//   - [Map]: Apply a function to the value — Bind with a Return tail
//   - [Then]: Sequence, discarding the first value
//
// Consumption:
//
//   - [Attach]: Consume with an arbitrary continuation (the consumer boundary)
//   - [Run]: Consume a synchronous chain with the identity continuation
//   - [Await]: Block until delivery, a timeout, or context cancellation
//
// # Scheduling Boundary
//
// [Scheduler] is the producer-side boundary. Schedule(delay, fn) runs fn
// exactly once, never synchronously inside Schedule, so chains that
// schedule their own next step evaluate in bounded stack space.
//
//   - [GoScheduler]: one goroutine per completion; [GoScheduler.Wait]
//     joins every chain scheduled so far
//   - [Trampoline]: deterministic FIFO queue driven by the caller via
//     [Trampoline.Step] and [Trampoline.Drain]
//
// Both accept [WithClock] for injectable time and [WithHooks] for
// lifecycle callbacks ([Hooks]); each completion carries a UUID shared
// across its schedule, fire and complete events.
//
// # One-Shot Continuations
//
// Continuations crossing the scheduler boundary are affine. [Affine]
// enforces this at runtime:
//
//   - [Once]: Create an affine continuation
//   - [Affine.Resume]: Invoke (panics on reuse)
//   - [Affine.TryResume]: Non-panicking variant
//   - [Affine.Discard]: Drop without invoking
//
// [Async.Consume] wraps every scheduled continuation in an Affine, so a
// scheduler that fires twice fails loudly instead of duplicating the rest
// of the chain.
//
// # Either Type
//
// [Either] represents success (Right) or failure (Left) in the value
// position of a chain:
//
//   - [Left], [Right]: Constructors
//   - [Either.IsLeft], [Either.IsRight]: Predicates
//   - [Either.GetLeft], [Either.GetRight]: Accessors
//   - [MatchEither]: Pattern matching
//   - [MapEither], [FlatMapEither], [MapLeftEither]: Combinators
//   - [BindEither]: Bind that short-circuits Left across composition
//
// # Configuration
//
// [Config] describes a loop chain and its scheduler in JSON; [LoadConfig]
// reads and validates a file, and [Config.Build] constructs the scheduler
// and chain prototype.
//
// # Example
//
//	s := ktor.NewGoScheduler()
//	chain := ktor.NewBind(
//		ktor.NewAsync[ktor.Unit](s, 50*time.Millisecond, 21),
//		func(x int) ktor.Continuator[ktor.Unit, int] {
//			return ktor.NewReturn[ktor.Unit](x * 2)
//		},
//	)
//	ktor.Attach(chain, func(x int) ktor.Unit {
//		fmt.Println("got", x) // got 42
//		return ktor.Unit{}
//	})
//	s.Wait()
package ktor
