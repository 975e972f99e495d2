// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// ObserveResult reports the next externally visible event of a coroutine:
// either one output paired with the rest of the computation, or the
// completion value.
type ObserveResult[I, O, R any] struct {
	finished bool
	value    R
	output   O
	next     Coroutine[I, O, R]
}

// Finished returns the completion value when the coroutine ended without
// producing another output.
func (o ObserveResult[I, O, R]) Finished() (R, bool) {
	if !o.finished {
		var zero R
		return zero, false
	}
	return o.value, true
}

// Output returns the observed output and the coroutine that follows it.
func (o ObserveResult[I, O, R]) Output() (O, Coroutine[I, O, R], bool) {
	if o.finished {
		var zeroO O
		var zeroCo Coroutine[I, O, R]
		return zeroO, zeroCo, false
	}
	return o.output, o.next, true
}

// Observe runs co until its next externally visible event — an output or
// completion — without committing to the emission. Intervening input
// requests are forwarded to the host, so Observe itself may await.
//
// Lets a driver look ahead at a coroutine without double-emitting.
func Observe[I, O, R any](co Coroutine[I, O, R]) Coroutine[I, O, ObserveResult[I, O, R]] {
	sr := Step(co)
	switch sr.Kind() {
	case StepOutput:
		output, next, _ := sr.Output()
		return Pure[I, O](ObserveResult[I, O, R]{output: output, next: next})
	case StepAwait:
		resume, _ := sr.Awaiting()
		return Bind(Receive[I, O](), func(input I) Coroutine[I, O, ObserveResult[I, O, R]] {
			return Observe(resume.Resume(input))
		})
	default:
		value, _ := sr.Done()
		return Pure[I, O](ObserveResult[I, O, R]{finished: true, value: value})
	}
}
