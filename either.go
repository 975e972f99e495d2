// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// Fallible coroutines complete with [kont.Either]: Right carries success,
// Left carries a terminating error. The combinators here short-circuit
// past the first Left, discarding the remaining steps without running
// them; the underlying machinery is plain [Bind].

// OK lifts a success value into a fallible coroutine.
func OK[I, O, E, A any](a A) Coroutine[I, O, kont.Either[E, A]] {
	return Pure[I, O](kont.Right[E](a))
}

// Fail terminates a fallible coroutine with an error.
// Binds past it short-circuit.
func Fail[I, O, A, E any](e E) Coroutine[I, O, kont.Either[E, A]] {
	return Pure[I, O](kont.Left[E, A](e))
}

// EmitOK yields one output inside a fallible coroutine.
func EmitOK[I, E, O any](o O) Coroutine[I, O, kont.Either[E, struct{}]] {
	return Then(Emit[I](o), OK[I, O, E](struct{}{}))
}

// ReceiveOK receives the next input inside a fallible coroutine.
func ReceiveOK[I, O, E any]() Coroutine[I, O, kont.Either[E, I]] {
	return Bind(Receive[I, O](), OK[I, O, E, I])
}

// BindOK sequences f after the success value of co. A Left completion
// short-circuits: f never runs.
func BindOK[I, O, E, A, B any](
	co Coroutine[I, O, kont.Either[E, A]],
	f func(A) Coroutine[I, O, kont.Either[E, B]],
) Coroutine[I, O, kont.Either[E, B]] {
	return Bind(co, func(r kont.Either[E, A]) Coroutine[I, O, kont.Either[E, B]] {
		if a, ok := r.GetRight(); ok {
			return f(a)
		}
		e, _ := r.GetLeft()
		return Fail[I, O, B](e)
	})
}

// MapOK transforms the success value of co.
func MapOK[I, O, E, A, B any](co Coroutine[I, O, kont.Either[E, A]], f func(A) B) Coroutine[I, O, kont.Either[E, B]] {
	return BindOK(co, func(a A) Coroutine[I, O, kont.Either[E, B]] {
		return OK[I, O, E](f(a))
	})
}

// BindErr sequences f after an error, leaving successes untouched.
// Useful to emit outputs in response to a failure, or to recover.
func BindErr[I, O, A, E1, E2 any](
	co Coroutine[I, O, kont.Either[E1, A]],
	f func(E1) Coroutine[I, O, kont.Either[E2, A]],
) Coroutine[I, O, kont.Either[E2, A]] {
	return Bind(co, func(r kont.Either[E1, A]) Coroutine[I, O, kont.Either[E2, A]] {
		if a, ok := r.GetRight(); ok {
			return OK[I, O, E2](a)
		}
		e, _ := r.GetLeft()
		return f(e)
	})
}

// MapErr converts the error type of co.
func MapErr[I, O, A, E1, E2 any](co Coroutine[I, O, kont.Either[E1, A]], f func(E1) E2) Coroutine[I, O, kont.Either[E2, A]] {
	return BindErr(co, func(e E1) Coroutine[I, O, kont.Either[E2, A]] {
		return Fail[I, O, A](f(e))
	})
}

// RunNestedOK hosts a fallible child coroutine with alphabet (CI, CO)
// inside a fallible host with alphabet (I, O). The child, its input
// adapter, and its output adapter may all fail; any Left aborts the whole
// computation with that error.
func RunNestedOK[I, O, CI, CO, E, R any](
	onInput func() Coroutine[I, O, kont.Either[E, CI]],
	onOutput func(CO) Coroutine[I, O, kont.Either[E, struct{}]],
	child Coroutine[CI, CO, kont.Either[E, R]],
) Coroutine[I, O, kont.Either[E, R]] {
	sr := Step(child)
	switch sr.Kind() {
	case StepOutput:
		output, next, _ := sr.Output()
		return BindOK(onOutput(output), func(struct{}) Coroutine[I, O, kont.Either[E, R]] {
			return RunNestedOK(onInput, onOutput, next)
		})
	case StepAwait:
		resume, _ := sr.Awaiting()
		return BindOK(onInput(), func(ci CI) Coroutine[I, O, kont.Either[E, R]] {
			return RunNestedOK(onInput, onOutput, resume.Resume(ci))
		})
	default:
		value, _ := sr.Done()
		return Pure[I, O](value)
	}
}
