// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"slices"
	"testing"
	"testing/quick"

	"code.hybscloud.com/coro"
)

func TestPureCompletesWithoutIO(t *testing.T) {
	outputs, result, completed := drive[int, int](coro.Pure[int, int](42), nil)
	if !completed {
		t.Fatal("expected completion")
	}
	if result != 42 {
		t.Fatalf("result = %d, want 42", result)
	}
	if len(outputs) != 0 {
		t.Fatalf("outputs = %v, want none", outputs)
	}
}

func TestEmitThenReceive(t *testing.T) {
	co := coro.Then(coro.Emit[int](7), coro.Receive[int, int]())
	outputs, result, completed := drive(co, []int{3})
	if !completed {
		t.Fatal("expected completion")
	}
	if result != 3 {
		t.Fatalf("result = %d, want 3", result)
	}
	if !slices.Equal(outputs, []int{7}) {
		t.Fatalf("outputs = %v, want [7]", outputs)
	}
}

func TestBindSequencing(t *testing.T) {
	// Receive n, emit n*2, receive m, complete with n+m.
	co := coro.Bind(coro.Receive[int, int](), func(n int) coro.Coroutine[int, int, int] {
		return coro.Then(coro.Emit[int](n*2), coro.Bind(coro.Receive[int, int](), func(m int) coro.Coroutine[int, int, int] {
			return coro.Pure[int, int](n + m)
		}))
	})
	outputs, result, completed := drive(co, []int{5, 8})
	if !completed {
		t.Fatal("expected completion")
	}
	if result != 13 {
		t.Fatalf("result = %d, want 13", result)
	}
	if !slices.Equal(outputs, []int{10}) {
		t.Fatalf("outputs = %v, want [10]", outputs)
	}
}

// sameRuns reports whether the two coroutines behave identically on the
// given input sequence: same outputs, same completion status, and when
// both complete, same value.
func sameRuns(m1, m2 coro.Coroutine[int, int, int], inputs []int) bool {
	o1, r1, c1 := drive(m1, inputs)
	o2, r2, c2 := drive(m2, inputs)
	if c1 != c2 || !slices.Equal(o1, o2) {
		return false
	}
	return !c1 || r1 == r2
}

// probe is an observationally rich Kleisli arrow for the law tests: it
// both consumes input and produces output derived from its argument.
func probe(shift int) func(int) coro.Coroutine[int, int, int] {
	return func(a int) coro.Coroutine[int, int, int] {
		return coro.Bind(coro.Receive[int, int](), func(v int) coro.Coroutine[int, int, int] {
			return coro.Then(coro.Emit[int](a+v+shift), coro.Pure[int, int](a*2-v))
		})
	}
}

// TestPropertyMonadLeftIdentity proves Bind(Pure(a), f) is
// indistinguishable from f(a) under any input sequence.
func TestPropertyMonadLeftIdentity(t *testing.T) {
	property := func(a, shift int, inputs []int) bool {
		f := probe(shift)
		lhs := coro.Bind(coro.Pure[int, int](a), f)
		return sameRuns(lhs, f(a), inputs)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyMonadRightIdentity proves Bind(m, Pure) is
// indistinguishable from m under any input sequence.
func TestPropertyMonadRightIdentity(t *testing.T) {
	property := func(a, shift int, inputs []int) bool {
		m := probe(shift)(a)
		lhs := coro.Bind(m, coro.Pure[int, int])
		return sameRuns(lhs, m, inputs)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestPropertyMonadAssociativity proves Bind(Bind(m, f), g) is
// indistinguishable from Bind(m, x => Bind(f(x), g)).
func TestPropertyMonadAssociativity(t *testing.T) {
	property := func(a, s1, s2 int, inputs []int) bool {
		m := probe(s1)(a)
		f := probe(s2)
		g := probe(s1 + s2)
		lhs := coro.Bind(coro.Bind(m, f), g)
		rhs := coro.Bind(m, func(x int) coro.Coroutine[int, int, int] {
			return coro.Bind(f(x), g)
		})
		return sameRuns(lhs, rhs, inputs)
	}
	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

// TestBindStackSafety chains ten thousand awaiting stages through Bind
// and drives the result to completion. Each stage echoes its input;
// overflowing the stack here would mean composition depth leaks into
// call depth.
func TestBindStackSafety(t *testing.T) {
	const stages = 10_000

	co := coro.Pure[int, int](0)
	for i := 0; i < stages; i++ {
		co = coro.Bind(co, func(n int) coro.Coroutine[int, int, int] {
			return coro.Bind(coro.Receive[int, int](), func(v int) coro.Coroutine[int, int, int] {
				return coro.Then(coro.Emit[int](v), coro.Pure[int, int](n+1))
			})
		})
	}

	inputs := make([]int, stages)
	for i := range inputs {
		inputs[i] = i
	}
	outputs, result, completed := drive(co, inputs)
	if !completed {
		t.Fatal("expected completion")
	}
	if result != stages {
		t.Fatalf("result = %d, want %d", result, stages)
	}
	if !slices.Equal(outputs, inputs) {
		t.Fatal("echoed outputs diverged from inputs")
	}
}

func TestMap(t *testing.T) {
	co := coro.Map(coro.Receive[int, int](), func(n int) string {
		if n > 0 {
			return "pos"
		}
		return "neg"
	})
	_, result, completed := drive(co, []int{5})
	if !completed || result != "pos" {
		t.Fatalf("result = %q completed = %v, want \"pos\" true", result, completed)
	}
}

func TestJoinRunsLeftThenRight(t *testing.T) {
	first := coro.Then(coro.Emit[int](1), coro.Receive[int, int]())
	second := coro.Then(coro.Emit[int](2), coro.Receive[int, int]())
	co := coro.Join(first, second)
	outputs, result, completed := drive(co, []int{10, 20})
	if !completed {
		t.Fatal("expected completion")
	}
	if result.First != 10 || result.Second != 20 {
		t.Fatalf("result = %+v, want {10 20}", result)
	}
	if !slices.Equal(outputs, []int{1, 2}) {
		t.Fatalf("outputs = %v, want [1 2]", outputs)
	}
}

func TestVoidDropsResult(t *testing.T) {
	co := coro.Void(coro.Pure[int, int](99))
	_, result, completed := drive[int, int](co, nil)
	if !completed {
		t.Fatal("expected completion")
	}
	_ = result // struct{}
}

func TestInjectIntoAwaiting(t *testing.T) {
	co := coro.Inject(5, coro.Receive[int, int]())
	_, result, completed := drive[int, int](co, nil)
	if !completed || result != 5 {
		t.Fatalf("result = %d completed = %v, want 5 true", result, completed)
	}
}

func TestInjectIntoCompleted(t *testing.T) {
	co := coro.Inject(5, coro.Pure[int, int](7))
	_, result, completed := drive[int, int](co, nil)
	if !completed || result != 7 {
		t.Fatalf("result = %d completed = %v, want 7 true", result, completed)
	}
}

func TestInjectPreservesPendingOutput(t *testing.T) {
	co := coro.Inject(5, coro.Then(coro.Emit[int](1), coro.Receive[int, int]()))
	outputs, result, completed := drive[int, int](co, nil)
	if !completed || result != 5 {
		t.Fatalf("result = %d completed = %v, want 5 true", result, completed)
	}
	if !slices.Equal(outputs, []int{1}) {
		t.Fatalf("outputs = %v, want [1]", outputs)
	}
}
