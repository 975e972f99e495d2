// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// Coroutine is a suspended computation over an input alphabet I, an output
// alphabet O, and a completion value R. It is exactly one of three
// variants: completed, pending output, or awaiting input.
//
// A Coroutine is a linear resource with respect to stepping: once a
// variant has been consumed by [Step], [Bind], or [Inject], the value must
// not be stepped again from another place. The awaiting variant enforces
// this at runtime through its one-shot [Resumption]; the other variants
// rely on caller discipline.
//
// The zero value is a completed coroutine carrying the zero R.
type Coroutine[I, O, R any] struct {
	kind   stepKind
	value  R
	output O
	next   *Coroutine[I, O, R]
	resume *Resumption[I, O, R]
}

// Pure lifts a value into a completed coroutine.
// No input is consumed and no output is produced.
func Pure[I, O, R any](r R) Coroutine[I, O, R] {
	return Coroutine[I, O, R]{kind: stepDone, value: r}
}

// Suspend pauses until an input arrives, then continues with f(input).
// f is invoked at most once.
func Suspend[I, O, R any](f func(I) Coroutine[I, O, R]) Coroutine[I, O, R] {
	return Coroutine[I, O, R]{kind: stepAwait, resume: &Resumption[I, O, R]{fn: f}}
}

// resumeWith rebuilds an awaiting coroutine around an existing resumption
// without consuming it. Used by combinators that observed a [StepResult]
// and hand the suspended side back unrun.
func resumeWith[I, O, R any](r *Resumption[I, O, R]) Coroutine[I, O, R] {
	return Coroutine[I, O, R]{kind: stepAwait, resume: r}
}

// Emit yields one output to the driver, then completes with unit.
func Emit[I, O any](o O) Coroutine[I, O, struct{}] {
	done := Pure[I, O](struct{}{})
	return Coroutine[I, O, struct{}]{kind: stepOutput, output: o, next: &done}
}

// Receive suspends until the next input and completes with it.
func Receive[I, O any]() Coroutine[I, O, I] {
	return Suspend(Pure[I, O, I])
}

// Bind sequences m, then f applied to its completion value.
//
// Pending outputs of m are rebuilt with the bind pushed into their
// continuation; this recursion is bounded by the outputs m has already
// produced. On an awaiting m the bind composes with the stored
// continuation instead of evaluating anything, so arbitrarily long chains
// cost one closure per link.
func Bind[I, O, A, B any](m Coroutine[I, O, A], f func(A) Coroutine[I, O, B]) Coroutine[I, O, B] {
	switch m.kind {
	case stepOutput:
		next := Bind(*m.next, f)
		return Coroutine[I, O, B]{kind: stepOutput, output: m.output, next: &next}
	case stepAwait:
		resume := m.resume
		return Suspend(func(input I) Coroutine[I, O, B] {
			return Bind(resume.Resume(input), f)
		})
	default:
		return f(m.value)
	}
}

// Map transforms the completion value of co.
func Map[I, O, A, B any](co Coroutine[I, O, A], f func(A) B) Coroutine[I, O, B] {
	return Bind(co, func(a A) Coroutine[I, O, B] { return Pure[I, O](f(a)) })
}

// Then sequences two coroutines, discarding the first completion value.
func Then[I, O, A, B any](m Coroutine[I, O, A], next Coroutine[I, O, B]) Coroutine[I, O, B] {
	return Bind(m, func(A) Coroutine[I, O, B] { return next })
}

// Pair carries the two completion values of a joined pair of coroutines.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Join runs first to completion, then second, pairing both results.
func Join[I, O, A, B any](first Coroutine[I, O, A], second Coroutine[I, O, B]) Coroutine[I, O, Pair[A, B]] {
	return Bind(first, func(a A) Coroutine[I, O, Pair[A, B]] {
		return Map(second, func(b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} })
	})
}

// Void discards the completion value of co.
func Void[I, O, A any](co Coroutine[I, O, A]) Coroutine[I, O, struct{}] {
	return Map(co, func(A) struct{} { return struct{}{} })
}

// Inject delivers an input to co immediately, without a driver round-trip.
//
// A completed coroutine discards the input. A pending output re-emits
// first and delivers to the continuation, so no ready output is lost. An
// awaiting coroutine is resumed with the value. Total: never blocks,
// never fails.
func Inject[I, O, R any](input I, co Coroutine[I, O, R]) Coroutine[I, O, R] {
	switch co.kind {
	case stepOutput:
		next := Inject(input, *co.next)
		return Coroutine[I, O, R]{kind: stepOutput, output: co.output, next: &next}
	case stepAwait:
		return co.resume.Resume(input)
	default:
		return co
	}
}
