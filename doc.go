// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coro provides resumable, input/output-driven coroutines and a
// deterministic composition algebra over them.
//
// A [Coroutine] consumes typed inputs, produces typed outputs, and
// terminates with a typed result. It is a pure value: nothing runs until a
// driver evaluates it with [Step], so a coroutine describes a workflow
// while leaving the I/O plumbing to later.
//
// # Architecture
//
//   - Representation: a three-variant suspended computation — completed,
//     pending output, or awaiting input. Stepping consumes the observed
//     variant and returns its continuation.
//   - Scheduling: single-goroutine, cooperative. Composition interleaves
//     sides in a fixed step order; there is no parallelism and no
//     preemption anywhere in the core.
//   - Ownership: awaiting continuations are one-shot. [Resumption.Resume]
//     panics on reuse, following the affine convention of
//     [code.hybscloud.com/kont].
//   - Transport: optional conduit endpoints over bounded lock-free SPSC
//     queues via [code.hybscloud.com/lfq], non-blocking with
//     [code.hybscloud.com/iox.ErrWouldBlock] on backpressure.
//
// # Core Operations
//
//   - [Pure]: lift a value into a completed coroutine
//   - [Suspend], [Receive]: await the next input
//   - [Emit]: yield one output
//   - [Bind], [Map], [Then], [Join], [Void]: sequencing
//   - [Step]: single-step evaluation to a [StepResult]
//
// # Combinators
//
//   - [RunNested]: host a child coroutine with a different alphabet,
//     adapting inputs and outputs through effectful sub-coroutines
//   - [MapInput], [InterceptInput], [MapOutput], [TranslateOutput]:
//     alphabet remapping specializations of [RunNested]
//   - [ReceiveUntil]: discard inputs until one classifies as final
//   - [Inject]: deliver an input immediately, bypassing the driver
//   - [Observe]: reveal the next external event without emitting it
//   - [Loop]: trampolined recursion over an explicit state
//
// # Composition
//
//   - [Dispatch]: run two coroutines under one external alphabet; the
//     first side to complete wins, the loser is returned still runnable
//   - [Unicast], [Broadcast]: exclusive and duplicating input routing
//   - [UnicastUntilFinished], [BroadcastUntilFinished]: drive the loser on
//     until both sides complete
//   - [Cooperate], [Routed]: let two coroutines deliver outputs directly
//     to each other as inputs, escaping to a shared external channel
//
// Ordering is deterministic: within one merge round, ready outputs are
// forwarded before new input is requested, and the left side precedes the
// right. Ties on completion favor the left operand.
//
// # Fallible Coroutines
//
// Computations whose result is [code.hybscloud.com/kont.Either] short-circuit
// past the first Left: [OK], [Fail], [BindOK], [BindErr], [MapOK],
// [MapErr], [RunNestedOK].
//
// # Drivers
//
//   - [Execute], [ExecuteSeq], [OutputSeq]: feed a coroutine from a pull
//     source or an iter.Seq, collecting outputs through a callback
//   - [NewConduit], [Pump], [Exec], [Run]: drive coroutines over bounded
//     SPSC endpoints; [Exec] waits past backpressure with adaptive backoff
//     ([code.hybscloud.com/iox.Backoff]) without spawning goroutines
//
// # Example
//
//	echo := coro.Bind(coro.Receive[int, int](), func(v int) coro.Coroutine[int, int, struct{}] {
//		return coro.Emit[int](v)
//	})
//	coro.ExecuteSeq(echo, func(o int) { fmt.Println(o) }, slices.Values([]int{42}))
//	// prints 42
package coro
