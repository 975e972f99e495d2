// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// CooperateResult is the outcome of a cooperative merge: the winning
// side's completion value plus the other side's still-live remainder in
// its own alphabet. A pending output the loser held when the race ended
// stays attached to the remainder rather than leaking externally.
type CooperateResult[IA, IB, OA, OB, A, B any] struct {
	side       side
	a          A
	b          B
	remainingA Coroutine[IA, OA, A]
	remainingB Coroutine[IB, OB, B]
}

// IsLeft reports whether the first operand won.
func (r CooperateResult[IA, IB, OA, OB, A, B]) IsLeft() bool { return r.side == sideLeft }

// Left returns the first operand's completion value and the second
// operand's remainder, when the first operand won.
func (r CooperateResult[IA, IB, OA, OB, A, B]) Left() (A, Coroutine[IB, OB, B], bool) {
	if r.side != sideLeft {
		var zero A
		var zeroCo Coroutine[IB, OB, B]
		return zero, zeroCo, false
	}
	return r.a, r.remainingB, true
}

// Right returns the second operand's completion value and the first
// operand's remainder, when the second operand won.
func (r CooperateResult[IA, IB, OA, OB, A, B]) Right() (B, Coroutine[IA, OA, A], bool) {
	if r.side != sideRight {
		var zero B
		var zeroCo Coroutine[IA, OA, A]
		return zero, zeroCo, false
	}
	return r.b, r.remainingA, true
}

// Cooperate merges two coroutines that may talk to each other directly.
//
// Each side's output is classified by its map function: Left values are
// delivered straight to the other side as input via [Inject], without
// ever touching the external output channel; Right values are forwarded
// to the shared external output. External inputs are routed exclusively
// by selector. The step order and tie break match [Dispatch]: one round
// steps both sides, ready work precedes new input, left precedes right.
//
// Two state machines can hold a private handshake this way while staying
// externally observable and individually resumable.
func Cooperate[I, O, IA, OA, IB, OB, A, B any](
	selector func(I) kont.Either[IA, IB],
	mapFirst func(OA) kont.Either[IB, O],
	mapSecond func(OB) kont.Either[IA, O],
	first Coroutine[IA, OA, A],
	second Coroutine[IB, OB, B],
) Coroutine[I, O, CooperateResult[IA, IB, OA, OB, A, B]] {
	again := func(f Coroutine[IA, OA, A], s Coroutine[IB, OB, B]) Coroutine[I, O, CooperateResult[IA, IB, OA, OB, A, B]] {
		return Cooperate(selector, mapFirst, mapSecond, f, s)
	}

	sa := Step(first)
	sb := Step(second)

	// 3x3 case matrix over (first, second) step outcomes.
	switch {
	case sa.Kind() == StepDone && sb.Kind() == StepDone:
		a, _ := sa.Done()
		b, _ := sb.Done()
		done := CooperateResult[IA, IB, OA, OB, A, B]{side: sideLeft, a: a, remainingB: Pure[IB, OB](b)}
		return Pure[I, O](done)

	case sa.Kind() == StepDone && sb.Kind() == StepOutput:
		// The loser keeps its pending output; nothing escapes here.
		a, _ := sa.Done()
		ob, nb, _ := sb.Output()
		remaining := Then(Emit[IB](ob), nb)
		done := CooperateResult[IA, IB, OA, OB, A, B]{side: sideLeft, a: a, remainingB: remaining}
		return Pure[I, O](done)

	case sa.Kind() == StepDone && sb.Kind() == StepAwait:
		a, _ := sa.Done()
		rb, _ := sb.Awaiting()
		done := CooperateResult[IA, IB, OA, OB, A, B]{side: sideLeft, a: a, remainingB: resumeWith(rb)}
		return Pure[I, O](done)

	case sa.Kind() == StepOutput && sb.Kind() == StepDone:
		oa, na, _ := sa.Output()
		b, _ := sb.Done()
		remaining := Then(Emit[IA](oa), na)
		done := CooperateResult[IA, IB, OA, OB, A, B]{side: sideRight, b: b, remainingA: remaining}
		return Pure[I, O](done)

	case sa.Kind() == StepOutput && sb.Kind() == StepOutput:
		oa, na, _ := sa.Output()
		ob, nb, _ := sb.Output()
		ca := mapFirst(oa)
		cb := mapSecond(ob)
		switch {
		case ca.IsLeft() && cb.IsLeft():
			// Mutual delivery, no external emission.
			ib, _ := ca.GetLeft()
			ia, _ := cb.GetLeft()
			return again(Inject(ia, na), Inject(ib, nb))
		case ca.IsLeft():
			ib, _ := ca.GetLeft()
			o, _ := cb.GetRight()
			return Then(Emit[I, O](o), again(na, Inject(ib, nb)))
		case cb.IsLeft():
			o, _ := ca.GetRight()
			ia, _ := cb.GetLeft()
			return Then(Emit[I, O](o), again(Inject(ia, na), nb))
		default:
			o1, _ := ca.GetRight()
			o2, _ := cb.GetRight()
			return Then(Then(Emit[I, O](o1), Emit[I, O](o2)), again(na, nb))
		}

	case sa.Kind() == StepOutput && sb.Kind() == StepAwait:
		oa, na, _ := sa.Output()
		rb, _ := sb.Awaiting()
		ca := mapFirst(oa)
		if ib, ok := ca.GetLeft(); ok {
			return again(na, rb.Resume(ib))
		}
		o, _ := ca.GetRight()
		return Then(Emit[I, O](o), again(na, resumeWith(rb)))

	case sa.Kind() == StepAwait && sb.Kind() == StepDone:
		ra, _ := sa.Awaiting()
		b, _ := sb.Done()
		done := CooperateResult[IA, IB, OA, OB, A, B]{side: sideRight, b: b, remainingA: resumeWith(ra)}
		return Pure[I, O](done)

	case sa.Kind() == StepAwait && sb.Kind() == StepOutput:
		ra, _ := sa.Awaiting()
		ob, nb, _ := sb.Output()
		cb := mapSecond(ob)
		if ia, ok := cb.GetLeft(); ok {
			return again(ra.Resume(ia), nb)
		}
		o, _ := cb.GetRight()
		return Then(Emit[I, O](o), again(resumeWith(ra), nb))

	default: // StepAwait / StepAwait
		ra, _ := sa.Awaiting()
		rb, _ := sb.Awaiting()
		return Bind(Receive[I, O](), func(input I) Coroutine[I, O, CooperateResult[IA, IB, OA, OB, A, B]] {
			sel := selector(input)
			if ia, ok := sel.GetLeft(); ok {
				return again(ra.Resume(ia), resumeWith(rb))
			}
			ib, _ := sel.GetRight()
			return again(resumeWith(ra), rb.Resume(ib))
		})
	}
}
