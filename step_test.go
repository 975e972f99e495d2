// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"testing"

	"code.hybscloud.com/coro"
)

func TestStepDone(t *testing.T) {
	sr := coro.Step(coro.Pure[int, int](9))
	if sr.Kind() != coro.StepDone {
		t.Fatalf("kind = %v, want StepDone", sr.Kind())
	}
	v, ok := sr.Done()
	if !ok || v != 9 {
		t.Fatalf("Done() = %d %v, want 9 true", v, ok)
	}
	if _, _, ok := sr.Output(); ok {
		t.Fatal("Output() reported ok on a completed coroutine")
	}
	if _, ok := sr.Awaiting(); ok {
		t.Fatal("Awaiting() reported ok on a completed coroutine")
	}
}

func TestStepOutput(t *testing.T) {
	co := coro.Then(coro.Emit[int](3), coro.Pure[int, int](1))
	sr := coro.Step(co)
	if sr.Kind() != coro.StepOutput {
		t.Fatalf("kind = %v, want StepOutput", sr.Kind())
	}
	o, next, ok := sr.Output()
	if !ok || o != 3 {
		t.Fatalf("Output() = %d %v, want 3 true", o, ok)
	}
	v, ok := coro.Step(next).Done()
	if !ok || v != 1 {
		t.Fatalf("continuation Done() = %d %v, want 1 true", v, ok)
	}
}

func TestStepAwaitResume(t *testing.T) {
	sr := coro.Step(coro.Receive[int, int]())
	if sr.Kind() != coro.StepAwait {
		t.Fatalf("kind = %v, want StepAwait", sr.Kind())
	}
	resume, ok := sr.Awaiting()
	if !ok {
		t.Fatal("Awaiting() = false")
	}
	v, ok := coro.Step(resume.Resume(11)).Done()
	if !ok || v != 11 {
		t.Fatalf("resumed Done() = %d %v, want 11 true", v, ok)
	}
}

// TestResumptionSingleUse proves a resumption is consumed by Resume:
// the second call panics instead of silently forking the computation.
func TestResumptionSingleUse(t *testing.T) {
	resume, _ := coro.Step(coro.Receive[int, int]()).Awaiting()
	resume.Resume(1)

	defer func() {
		if recover() == nil {
			t.Fatal("second Resume did not panic")
		}
	}()
	resume.Resume(2)
}

func TestTryResume(t *testing.T) {
	resume, _ := coro.Step(coro.Receive[int, int]()).Awaiting()

	next, ok := resume.TryResume(5)
	if !ok {
		t.Fatal("first TryResume = false")
	}
	if v, done := coro.Step(next).Done(); !done || v != 5 {
		t.Fatalf("resumed Done() = %d %v, want 5 true", v, done)
	}

	if _, ok := resume.TryResume(6); ok {
		t.Fatal("second TryResume = true, want false")
	}
}

func TestDiscardConsumes(t *testing.T) {
	resume, _ := coro.Step(coro.Receive[int, int]()).Awaiting()
	resume.Discard()
	if _, ok := resume.TryResume(1); ok {
		t.Fatal("TryResume succeeded after Discard")
	}
}

// TestStepIsPassive proves stepping the same coroutine value twice
// observes the same outcome; consumption happens at Resume, not Step.
func TestStepIsPassive(t *testing.T) {
	co := coro.Then(coro.Emit[int](8), coro.Pure[int, int](0))
	o1, _, _ := coro.Step(co).Output()
	o2, _, _ := coro.Step(co).Output()
	if o1 != o2 {
		t.Fatalf("repeated Step observed %d then %d", o1, o2)
	}
}
