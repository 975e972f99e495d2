// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"iter"
)

// ExecResult reports how a pull-driven execution ended: the coroutine
// completed, or the input source ran dry while the coroutine still
// awaits. In the latter case the live coroutine is returned for later
// resumption once more input exists.
type ExecResult[I, O, R any] struct {
	completed bool
	result    R
	co        Coroutine[I, O, R]
}

// Completed returns the final value when the coroutine finished.
func (r ExecResult[I, O, R]) Completed() (R, bool) {
	if !r.completed {
		var zero R
		return zero, false
	}
	return r.result, true
}

// OutOfInputs returns the still-awaiting coroutine when the source was
// exhausted first.
func (r ExecResult[I, O, R]) OutOfInputs() (Coroutine[I, O, R], bool) {
	if r.completed {
		var zero Coroutine[I, O, R]
		return zero, false
	}
	return r.co, true
}

// Execute drives co with inputs pulled from next, calling onOutput for
// every produced output. Runs until the coroutine completes or next
// reports exhaustion. The output callback must not panic; outputs
// forwarded to it are already consumed from the coroutine.
func Execute[I, O, R any](co Coroutine[I, O, R], onOutput func(O), next func() (I, bool)) ExecResult[I, O, R] {
	for {
		sr := Step(co)
		switch sr.Kind() {
		case StepOutput:
			output, rest, _ := sr.Output()
			onOutput(output)
			co = rest
		case StepAwait:
			resume, _ := sr.Awaiting()
			input, ok := next()
			if !ok {
				return ExecResult[I, O, R]{co: resumeWith(resume)}
			}
			co = resume.Resume(input)
		default:
			result, _ := sr.Done()
			return ExecResult[I, O, R]{completed: true, result: result}
		}
	}
}

// ExecuteSeq drives co from an input sequence. Inputs not consumed before
// completion are left unvisited.
func ExecuteSeq[I, O, R any](co Coroutine[I, O, R], onOutput func(O), inputs iter.Seq[I]) ExecResult[I, O, R] {
	next, stop := iter.Pull(inputs)
	defer stop()
	return Execute(co, onOutput, next)
}

// OutputSeq adapts a coroutine into an output sequence: iterating it
// feeds co from inputs and yields each produced output. Iteration stops
// when co completes, the inputs run dry, or the consumer breaks early.
func OutputSeq[I, O, R any](co Coroutine[I, O, R], inputs iter.Seq[I]) iter.Seq[O] {
	return func(yield func(O) bool) {
		next, stop := iter.Pull(inputs)
		defer stop()
		for {
			sr := Step(co)
			switch sr.Kind() {
			case StepOutput:
				output, rest, _ := sr.Output()
				if !yield(output) {
					return
				}
				co = rest
			case StepAwait:
				resume, _ := sr.Awaiting()
				input, ok := next()
				if !ok {
					return
				}
				co = resume.Resume(input)
			default:
				return
			}
		}
	}
}
