// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/atomix"
)

// stepKind discriminates the three coroutine variants.
// stepDone is zero so the zero Coroutine reads as completed.
type stepKind uint8

const (
	stepDone stepKind = iota
	stepOutput
	stepAwait
)

// StepKind reports which variant a [StepResult] observed.
type StepKind uint8

const (
	// StepDone marks a completed coroutine; [StepResult.Done] holds the value.
	StepDone StepKind = iota
	// StepOutput marks a ready output; [StepResult.Output] holds it and the rest.
	StepOutput
	// StepAwait marks a suspension; [StepResult.Awaiting] holds the resumption.
	StepAwait
)

// Resumption is the one-shot handle of an awaiting coroutine.
// Affine semantics: it may be resumed at most once.
type Resumption[I, O, R any] struct {
	fn   func(I) Coroutine[I, O, R]
	used atomix.Uint32
}

// Resume invokes the held continuation with input.
// Panics if the resumption was already resumed or discarded.
func (r *Resumption[I, O, R]) Resume(input I) Coroutine[I, O, R] {
	co, ok := r.TryResume(input)
	if !ok {
		panic("coro: resumption already consumed")
	}
	return co
}

// TryResume is the non-panicking variant of [Resumption.Resume].
// Reports false without running anything if already consumed.
func (r *Resumption[I, O, R]) TryResume(input I) (Coroutine[I, O, R], bool) {
	if r.used.Swap(1) != 0 {
		var zero Coroutine[I, O, R]
		return zero, false
	}
	fn := r.fn
	r.fn = nil
	return fn(input), true
}

// Discard consumes the resumption without invoking it.
// The suspended computation is abandoned; there is no finalization.
func (r *Resumption[I, O, R]) Discard() {
	r.used.Swap(1)
	r.fn = nil
}

// StepResult is the outcome of evaluating a coroutine one step: the
// completion value, one ready output paired with the rest of the
// coroutine, or a one-shot resumption awaiting input. It is a read-only
// projection of the variant it consumed.
type StepResult[I, O, R any] struct {
	kind   stepKind
	value  R
	output O
	next   *Coroutine[I, O, R]
	resume *Resumption[I, O, R]
}

// Step evaluates co one step. Pure observation plus consumption: nothing
// is buffered and no continuation runs. Step never blocks and never fails.
func Step[I, O, R any](co Coroutine[I, O, R]) StepResult[I, O, R] {
	return StepResult[I, O, R]{
		kind:   co.kind,
		value:  co.value,
		output: co.output,
		next:   co.next,
		resume: co.resume,
	}
}

// Kind reports the observed variant.
func (s StepResult[I, O, R]) Kind() StepKind {
	switch s.kind {
	case stepOutput:
		return StepOutput
	case stepAwait:
		return StepAwait
	default:
		return StepDone
	}
}

// Done returns the completion value when the coroutine finished.
func (s StepResult[I, O, R]) Done() (R, bool) {
	if s.kind != stepDone {
		var zero R
		return zero, false
	}
	return s.value, true
}

// Output returns the ready output and the coroutine to resume after it
// has been accepted.
func (s StepResult[I, O, R]) Output() (O, Coroutine[I, O, R], bool) {
	if s.kind != stepOutput {
		var zeroO O
		var zeroCo Coroutine[I, O, R]
		return zeroO, zeroCo, false
	}
	return s.output, *s.next, true
}

// Awaiting returns the one-shot resumption when the coroutine is
// suspended on input.
func (s StepResult[I, O, R]) Awaiting() (*Resumption[I, O, R], bool) {
	if s.kind != stepAwait {
		return nil, false
	}
	return s.resume, true
}
