// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// RoutedResult is the outcome of a routed merge: the winning side's
// completion value plus the other side's remainder, still speaking the
// merged output alphabet (peer-addressed Left, external Right).
type RoutedResult[IA, IB, O, RA, RB any] struct {
	side    side
	a       RA
	b       RB
	remainA Coroutine[IA, kont.Either[IB, O], RA]
	remainB Coroutine[IB, kont.Either[IA, O], RB]
}

// IsLeft reports whether the first operand won.
func (r RoutedResult[IA, IB, O, RA, RB]) IsLeft() bool { return r.side == sideLeft }

// Left returns the first operand's completion value and the second
// operand's remainder, when the first operand won.
func (r RoutedResult[IA, IB, O, RA, RB]) Left() (RA, Coroutine[IB, kont.Either[IA, O], RB], bool) {
	if r.side != sideLeft {
		var zero RA
		var zeroCo Coroutine[IB, kont.Either[IA, O], RB]
		return zero, zeroCo, false
	}
	return r.a, r.remainB, true
}

// Right returns the second operand's completion value and the first
// operand's remainder, when the second operand won.
func (r RoutedResult[IA, IB, O, RA, RB]) Right() (RB, Coroutine[IA, kont.Either[IB, O], RA], bool) {
	if r.side != sideRight {
		var zero RB
		var zeroCo Coroutine[IA, kont.Either[IB, O], RA]
		return zero, zeroCo, false
	}
	return r.b, r.remainA, true
}

// Routed merges two coroutines whose messages are all explicitly tagged:
// each side emits kont.Either values, Left addressed to the peer and
// Right addressed to the external output, and external inputs arrive
// tagged Left or Right for exactly one side. Strictly bidirectional — no
// broadcast case exists.
//
// Peer-addressed outputs are delivered with [Inject] and are never
// externally visible. A side cannot tell whether an input came from the
// driver or from its peer.
func Routed[IA, IB, O, RA, RB any](
	first Coroutine[IA, kont.Either[IB, O], RA],
	second Coroutine[IB, kont.Either[IA, O], RB],
) Coroutine[kont.Either[IA, IB], O, RoutedResult[IA, IB, O, RA, RB]] {
	sa := Step(first)
	sb := Step(second)

	// 3x3 case matrix over (first, second) step outcomes.
	switch {
	case sa.Kind() == StepDone && sb.Kind() == StepDone:
		a, _ := sa.Done()
		b, _ := sb.Done()
		done := RoutedResult[IA, IB, O, RA, RB]{side: sideLeft, a: a, remainB: Pure[IB, kont.Either[IA, O]](b)}
		return Pure[kont.Either[IA, IB], O](done)

	case sa.Kind() == StepDone && sb.Kind() == StepOutput:
		a, _ := sa.Done()
		ob, nb, _ := sb.Output()
		if ia, ok := ob.GetLeft(); ok {
			// Peer is gone; the message stays buffered in the remainder.
			remain := Then(Emit[IB](kont.Left[IA, O](ia)), nb)
			done := RoutedResult[IA, IB, O, RA, RB]{side: sideLeft, a: a, remainB: remain}
			return Pure[kont.Either[IA, IB], O](done)
		}
		o, _ := ob.GetRight()
		done := RoutedResult[IA, IB, O, RA, RB]{side: sideLeft, a: a, remainB: nb}
		return Then(Emit[kont.Either[IA, IB]](o), Pure[kont.Either[IA, IB], O](done))

	case sa.Kind() == StepDone && sb.Kind() == StepAwait:
		a, _ := sa.Done()
		rb, _ := sb.Awaiting()
		done := RoutedResult[IA, IB, O, RA, RB]{side: sideLeft, a: a, remainB: resumeWith(rb)}
		return Pure[kont.Either[IA, IB], O](done)

	case sa.Kind() == StepOutput && sb.Kind() == StepDone:
		oa, na, _ := sa.Output()
		b, _ := sb.Done()
		if ib, ok := oa.GetLeft(); ok {
			remain := Then(Emit[IA](kont.Left[IB, O](ib)), na)
			done := RoutedResult[IA, IB, O, RA, RB]{side: sideRight, b: b, remainA: remain}
			return Pure[kont.Either[IA, IB], O](done)
		}
		o, _ := oa.GetRight()
		done := RoutedResult[IA, IB, O, RA, RB]{side: sideRight, b: b, remainA: na}
		return Then(Emit[kont.Either[IA, IB]](o), Pure[kont.Either[IA, IB], O](done))

	case sa.Kind() == StepOutput && sb.Kind() == StepOutput:
		oa, na, _ := sa.Output()
		ob, nb, _ := sb.Output()
		switch {
		case oa.IsLeft() && ob.IsLeft():
			// Crossing messages: both delivered, nothing emitted.
			ib, _ := oa.GetLeft()
			ia, _ := ob.GetLeft()
			return Routed(Inject(ia, na), Inject(ib, nb))
		case oa.IsLeft():
			ib, _ := oa.GetLeft()
			o, _ := ob.GetRight()
			return Then(Emit[kont.Either[IA, IB]](o), Routed(na, Inject(ib, nb)))
		case ob.IsLeft():
			o, _ := oa.GetRight()
			ia, _ := ob.GetLeft()
			return Then(Emit[kont.Either[IA, IB]](o), Routed(Inject(ia, na), nb))
		default:
			o1, _ := oa.GetRight()
			o2, _ := ob.GetRight()
			return Then(Then(Emit[kont.Either[IA, IB]](o1), Emit[kont.Either[IA, IB]](o2)), Routed(na, nb))
		}

	case sa.Kind() == StepOutput && sb.Kind() == StepAwait:
		oa, na, _ := sa.Output()
		rb, _ := sb.Awaiting()
		if ib, ok := oa.GetLeft(); ok {
			return Routed(na, rb.Resume(ib))
		}
		o, _ := oa.GetRight()
		return Then(Emit[kont.Either[IA, IB]](o), Routed(na, resumeWith(rb)))

	case sa.Kind() == StepAwait && sb.Kind() == StepDone:
		ra, _ := sa.Awaiting()
		b, _ := sb.Done()
		done := RoutedResult[IA, IB, O, RA, RB]{side: sideRight, b: b, remainA: resumeWith(ra)}
		return Pure[kont.Either[IA, IB], O](done)

	case sa.Kind() == StepAwait && sb.Kind() == StepOutput:
		ra, _ := sa.Awaiting()
		ob, nb, _ := sb.Output()
		if ia, ok := ob.GetLeft(); ok {
			return Routed(ra.Resume(ia), nb)
		}
		o, _ := ob.GetRight()
		// The emission may be the loser's last act before fresh input
		// decides which side advances.
		next := Bind(Receive[kont.Either[IA, IB], O](), func(input kont.Either[IA, IB]) Coroutine[kont.Either[IA, IB], O, RoutedResult[IA, IB, O, RA, RB]] {
			if ia, ok := input.GetLeft(); ok {
				return Routed(ra.Resume(ia), nb)
			}
			ib, _ := input.GetRight()
			return Routed(resumeWith(ra), Inject(ib, nb))
		})
		return Then(Emit[kont.Either[IA, IB]](o), next)

	default: // StepAwait / StepAwait
		ra, _ := sa.Awaiting()
		rb, _ := sb.Awaiting()
		return Bind(Receive[kont.Either[IA, IB], O](), func(input kont.Either[IA, IB]) Coroutine[kont.Either[IA, IB], O, RoutedResult[IA, IB, O, RA, RB]] {
			if ia, ok := input.GetLeft(); ok {
				return Routed(ra.Resume(ia), resumeWith(rb))
			}
			ib, _ := input.GetRight()
			return Routed(resumeWith(ra), rb.Resume(ib))
		})
	}
}
