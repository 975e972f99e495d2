// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// RunNested drives a child coroutine with alphabet (CI, CO) inside a host
// coroutine with alphabet (I, O).
//
// onInput runs in the host alphabet whenever the child requests input and
// produces the next CI; it may receive from the host several times, or
// emit host outputs, before settling on a value. onOutput runs for every
// child output and may likewise perform host I/O. This is the general
// substitution mechanism; the input/output remapping helpers are
// specializations over pure functions.
func RunNested[I, O, CI, CO, R any](
	onInput func() Coroutine[I, O, CI],
	onOutput func(CO) Coroutine[I, O, struct{}],
	child Coroutine[CI, CO, R],
) Coroutine[I, O, R] {
	sr := Step(child)
	switch sr.Kind() {
	case StepOutput:
		output, next, _ := sr.Output()
		return Bind(onOutput(output), func(struct{}) Coroutine[I, O, R] {
			return RunNested(onInput, onOutput, next)
		})
	case StepAwait:
		resume, _ := sr.Awaiting()
		return Bind(onInput(), func(ci CI) Coroutine[I, O, R] {
			return RunNested(onInput, onOutput, resume.Resume(ci))
		})
	default:
		value, _ := sr.Done()
		return Pure[I, O](value)
	}
}

// InterceptInput feeds every host input through the effectful transform f
// before the child sees it. Outputs pass through unchanged.
func InterceptInput[I, CI, O, R any](co Coroutine[CI, O, R], f func(I) Coroutine[I, O, CI]) Coroutine[I, O, R] {
	onInput := func() Coroutine[I, O, CI] {
		return Bind(Receive[I, O](), f)
	}
	onOutput := func(o O) Coroutine[I, O, struct{}] {
		return Emit[I](o)
	}
	return RunNested(onInput, onOutput, co)
}

// MapInput re-expresses the input alphabet of co through the pure
// function f.
func MapInput[I, CI, O, R any](co Coroutine[CI, O, R], f func(I) CI) Coroutine[I, O, R] {
	return InterceptInput(co, func(input I) Coroutine[I, O, CI] {
		return Pure[I, O](f(input))
	})
}

// TranslateOutput rewrites every output of co with the effectful
// transform f, which may itself receive host inputs or emit several host
// outputs. Inputs pass through unchanged.
func TranslateOutput[I, CO, O, R any](co Coroutine[I, CO, R], f func(CO) Coroutine[I, O, struct{}]) Coroutine[I, O, R] {
	onInput := Receive[I, O]
	return RunNested(onInput, f, co)
}

// MapOutput re-expresses the output alphabet of co through the pure
// function f.
func MapOutput[I, CO, O, R any](co Coroutine[I, CO, R], f func(CO) O) Coroutine[I, O, R] {
	return TranslateOutput(co, func(o CO) Coroutine[I, O, struct{}] {
		return Emit[I](f(o))
	})
}

// ReceiveUntil receives inputs, classifying each with f, until one
// classifies as Right. Left inputs are discarded. The classifier runs
// inside the host coroutine, so it may emit outputs while deciding.
//
// Completes with the first Right value. If no admissible input ever
// arrives the coroutine awaits forever; liveness is the driver's burden.
func ReceiveUntil[I, O, R any](f func(I) Coroutine[I, O, kont.Either[struct{}, R]]) Coroutine[I, O, R] {
	classified := Bind(Receive[I, O](), f)
	return Bind(classified, func(e kont.Either[struct{}, R]) Coroutine[I, O, R] {
		if r, ok := e.GetRight(); ok {
			return Pure[I, O](r)
		}
		return ReceiveUntil(f)
	})
}
