// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"testing"

	"code.hybscloud.com/coro"
)

func TestObserveFinished(t *testing.T) {
	ob := coro.Observe(coro.Pure[int, int](3))
	_, result, completed := drive[int, int](ob, nil)
	if !completed {
		t.Fatal("expected completion")
	}
	v, ok := result.Finished()
	if !ok || v != 3 {
		t.Fatalf("Finished() = %d %v, want 3 true", v, ok)
	}
}

// TestObserveCapturesOutput proves Observe intercepts the output instead
// of letting it reach the outer channel.
func TestObserveCapturesOutput(t *testing.T) {
	co := coro.Then(coro.Emit[int](5), coro.Pure[int, int](1))
	ob := coro.Observe(co)
	outputs, result, completed := drive[int, int](ob, nil)
	if !completed {
		t.Fatal("expected completion")
	}
	if len(outputs) != 0 {
		t.Fatalf("outputs = %v, want none", outputs)
	}
	o, rest, ok := result.Output()
	if !ok || o != 5 {
		t.Fatalf("Output() = %d %v, want 5 true", o, ok)
	}
	if v, done := coro.Step(rest).Done(); !done || v != 1 {
		t.Fatalf("rest Done() = %d %v, want 1 true", v, done)
	}
}

// TestObserveForwardsAwait proves an awaiting subject makes the observer
// await as well, then report the resumed subject's outcome.
func TestObserveForwardsAwait(t *testing.T) {
	ob := coro.Observe(coro.Receive[int, int]())
	_, result, completed := drive(ob, []int{77})
	if !completed {
		t.Fatal("expected completion")
	}
	v, ok := result.Finished()
	if !ok || v != 77 {
		t.Fatalf("Finished() = %d %v, want 77 true", v, ok)
	}
}
