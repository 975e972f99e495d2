// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/iox"
)

// pump advances co as far as the endpoint queues allow and reports
// whether any step was taken. Returns a nil error exactly when co
// completed.
func pump[I, O, R any](ep *Endpoint[O, I], co Coroutine[I, O, R]) (R, Coroutine[I, O, R], bool, error) {
	progressed := false
	for {
		sr := Step(co)
		switch sr.Kind() {
		case StepOutput:
			output, rest, _ := sr.Output()
			if err := ep.Send(output); err != nil {
				var zero R
				return zero, co, progressed, err
			}
			co = rest
			progressed = true
		case StepAwait:
			resume, _ := sr.Awaiting()
			input, err := ep.Recv()
			if err != nil {
				var zero R
				return zero, co, progressed, err
			}
			co = resume.Resume(input)
			progressed = true
		default:
			result, _ := sr.Done()
			return result, co, true, nil
		}
	}
}

// Pump advances co as far as the endpoint queues allow: pending outputs
// are enqueued for the peer, awaited inputs are dequeued. Non-blocking.
//
// Returns (result, completed coroutine, nil) when co finishes, or
// (zero, live coroutine, iox.ErrWouldBlock) when co cannot progress until
// the peer sends or receives.
func Pump[I, O, R any](ep *Endpoint[O, I], co Coroutine[I, O, R]) (R, Coroutine[I, O, R], error) {
	result, next, _, err := pump(ep, co)
	return result, next, err
}

// Exec drives co to completion on ep, waiting past backpressure with
// adaptive backoff (iox.Backoff). Does not spawn goroutines or create
// channels; the peer endpoint is expected to make progress elsewhere.
func Exec[I, O, R any](ep *Endpoint[O, I], co Coroutine[I, O, R]) R {
	var bo iox.Backoff
	for {
		result, next, progressed, err := pump(ep, co)
		if err == nil {
			return result
		}
		co = next
		if progressed {
			bo.Reset()
		} else {
			bo.Wait()
		}
	}
}

// Run connects two coroutines input-to-output through a conduit pair and
// interleaves them on the calling goroutine until both complete: first's
// outputs become second's inputs and vice versa. Uses adaptive backoff
// (iox.Backoff) when neither side can make progress. Does not spawn
// goroutines or create channels.
//
// If both sides await with nothing in flight, Run waits forever — the
// same liveness burden every external driver carries.
func Run[I, O, A, B any](first Coroutine[I, O, A], second Coroutine[O, I, B]) (A, B) {
	driverEnd, hostEnd := NewConduit[I, O]()

	var (
		resultA A
		resultB B
		doneA   bool
		doneB   bool
	)
	var bo iox.Backoff
	for !doneA || !doneB {
		progress := false
		if !doneA {
			result, next, progressed, err := pump(hostEnd, first)
			first = next
			if err == nil {
				resultA = result
				doneA = true
			}
			progress = progress || progressed
		}
		if !doneB {
			result, next, progressed, err := pump(driverEnd, second)
			second = next
			if err == nil {
				resultB = result
				doneB = true
			}
			progress = progress || progressed
		}
		if progress {
			bo.Reset()
		} else {
			bo.Wait()
		}
	}
	return resultA, resultB
}
