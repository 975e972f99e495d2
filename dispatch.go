// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// selectKind discriminates the three routing cases of [Select].
type selectKind uint8

const (
	selectLeft selectKind = iota
	selectRight
	selectBoth
)

// Select routes one external input to the left side, the right side, or
// both sides of a merge. The Both payload must be convertible into each
// side's input type and safe to duplicate by value copy.
type Select[A, B, C any] struct {
	kind  selectKind
	left  A
	right B
	both  C
}

// SelectLeft routes an input to the first coroutine only.
func SelectLeft[A, B, C any](a A) Select[A, B, C] {
	return Select[A, B, C]{kind: selectLeft, left: a}
}

// SelectRight routes an input to the second coroutine only.
func SelectRight[A, B, C any](b B) Select[A, B, C] {
	return Select[A, B, C]{kind: selectRight, right: b}
}

// SelectBoth routes an input to both coroutines.
func SelectBoth[A, B, C any](c C) Select[A, B, C] {
	return Select[A, B, C]{kind: selectBoth, both: c}
}

// side discriminates which operand of a merge finished first.
type side uint8

const (
	sideLeft side = iota
	sideRight
)

// DispatchResult is the outcome of a race between two coroutines: the
// winning side's completion value plus the other side's still-live
// remainder, re-expressed over its own alphabet.
//
// The remainder is a live computation. Dropping it abandons whatever it
// holds; drive it, or discard it deliberately.
type DispatchResult[IA, IB, OA, OB, A, B any] struct {
	side       side
	a          A
	b          B
	remainingA Coroutine[IA, OA, A]
	remainingB Coroutine[IB, OB, B]
}

func dispatchLeft[IA, IB, OA, OB, A, B any](value A, remaining Coroutine[IB, OB, B]) DispatchResult[IA, IB, OA, OB, A, B] {
	return DispatchResult[IA, IB, OA, OB, A, B]{side: sideLeft, a: value, remainingB: remaining}
}

func dispatchRight[IA, IB, OA, OB, A, B any](value B, remaining Coroutine[IA, OA, A]) DispatchResult[IA, IB, OA, OB, A, B] {
	return DispatchResult[IA, IB, OA, OB, A, B]{side: sideRight, b: value, remainingA: remaining}
}

// IsLeft reports whether the first operand won the race.
func (r DispatchResult[IA, IB, OA, OB, A, B]) IsLeft() bool { return r.side == sideLeft }

// Left returns the first operand's completion value and the second
// operand's remainder, when the first operand won.
func (r DispatchResult[IA, IB, OA, OB, A, B]) Left() (A, Coroutine[IB, OB, B], bool) {
	if r.side != sideLeft {
		var zero A
		var zeroCo Coroutine[IB, OB, B]
		return zero, zeroCo, false
	}
	return r.a, r.remainingB, true
}

// Right returns the second operand's completion value and the first
// operand's remainder, when the second operand won.
func (r DispatchResult[IA, IB, OA, OB, A, B]) Right() (B, Coroutine[IA, OA, A], bool) {
	if r.side != sideRight {
		var zero B
		var zeroCo Coroutine[IA, OA, A]
		return zero, zeroCo, false
	}
	return r.b, r.remainingA, true
}

// Dispatch runs two coroutines under one external alphabet, as if
// concurrently: one deterministic round steps both sides, ready outputs
// are forwarded before any new input is requested, and when both sides
// are ready the left one goes first.
//
// The merge completes as soon as either side completes, with a fixed tie
// break favoring the first operand. The loser comes back inside the
// [DispatchResult], still runnable.
//
// selector classifies each external input; intoFirst and intoSecond
// convert a Both payload into the per-side input types. Outputs surface
// tagged Left (first side) or Right (second side).
func Dispatch[I, IA, IB, IAB, OA, OB, A, B any](
	selector func(I) Select[IA, IB, IAB],
	intoFirst func(IAB) IA,
	intoSecond func(IAB) IB,
	first Coroutine[IA, OA, A],
	second Coroutine[IB, OB, B],
) Coroutine[I, kont.Either[OA, OB], DispatchResult[IA, IB, OA, OB, A, B]] {
	emitFirst := func(o OA) Coroutine[I, kont.Either[OA, OB], struct{}] {
		return Emit[I](kont.Left[OA, OB](o))
	}
	emitSecond := func(o OB) Coroutine[I, kont.Either[OA, OB], struct{}] {
		return Emit[I](kont.Right[OA](o))
	}

	sa := Step(first)
	sb := Step(second)

	// 3x3 case matrix over (first, second) step outcomes.
	switch {
	case sa.Kind() == StepDone && sb.Kind() == StepDone:
		a, _ := sa.Done()
		b, _ := sb.Done()
		return Pure[I, kont.Either[OA, OB]](dispatchLeft[IA, IB, OA, OB](a, Pure[IB, OB](b)))

	case sa.Kind() == StepDone && sb.Kind() == StepOutput:
		// Winner declared, but the loser's ready output is drained first.
		a, _ := sa.Done()
		ob, nb, _ := sb.Output()
		race := dispatchLeft[IA, IB, OA, OB](a, nb)
		return Then(emitSecond(ob), Pure[I, kont.Either[OA, OB]](race))

	case sa.Kind() == StepDone && sb.Kind() == StepAwait:
		a, _ := sa.Done()
		rb, _ := sb.Awaiting()
		return Pure[I, kont.Either[OA, OB]](dispatchLeft[IA, IB, OA, OB](a, resumeWith(rb)))

	case sa.Kind() == StepOutput && sb.Kind() == StepDone:
		oa, na, _ := sa.Output()
		b, _ := sb.Done()
		race := dispatchRight[IA, IB, OA, OB](b, na)
		return Then(emitFirst(oa), Pure[I, kont.Either[OA, OB]](race))

	case sa.Kind() == StepOutput && sb.Kind() == StepOutput:
		// Both ready: forward left then right, never reordered.
		oa, na, _ := sa.Output()
		ob, nb, _ := sb.Output()
		forward := Then(emitFirst(oa), emitSecond(ob))
		return Then(forward, Dispatch(selector, intoFirst, intoSecond, na, nb))

	case sa.Kind() == StepOutput && sb.Kind() == StepAwait:
		// Eagerness beats waiting: the ready output goes out now.
		oa, na, _ := sa.Output()
		rb, _ := sb.Awaiting()
		return Then(emitFirst(oa), Dispatch(selector, intoFirst, intoSecond, na, resumeWith(rb)))

	case sa.Kind() == StepAwait && sb.Kind() == StepDone:
		ra, _ := sa.Awaiting()
		b, _ := sb.Done()
		return Pure[I, kont.Either[OA, OB]](dispatchRight[IA, IB, OA, OB](b, resumeWith(ra)))

	case sa.Kind() == StepAwait && sb.Kind() == StepOutput:
		ra, _ := sa.Awaiting()
		ob, nb, _ := sb.Output()
		return Then(emitSecond(ob), Dispatch(selector, intoFirst, intoSecond, resumeWith(ra), nb))

	default: // StepAwait / StepAwait
		ra, _ := sa.Awaiting()
		rb, _ := sb.Awaiting()
		return Bind(Receive[I, kont.Either[OA, OB]](), func(input I) Coroutine[I, kont.Either[OA, OB], DispatchResult[IA, IB, OA, OB, A, B]] {
			sel := selector(input)
			switch sel.kind {
			case selectLeft:
				return Dispatch(selector, intoFirst, intoSecond, ra.Resume(sel.left), resumeWith(rb))
			case selectRight:
				return Dispatch(selector, intoFirst, intoSecond, resumeWith(ra), rb.Resume(sel.right))
			default:
				return Dispatch(selector, intoFirst, intoSecond,
					ra.Resume(intoFirst(sel.both)), rb.Resume(intoSecond(sel.both)))
			}
		})
	}
}

// Broadcast runs two coroutines that share one input alphabet, feeding
// every external input to both. I must be safe to duplicate by value
// copy; inputs carrying one-shot resources break the shared-event
// invariant silently.
func Broadcast[I, OA, OB, A, B any](
	first Coroutine[I, OA, A],
	second Coroutine[I, OB, B],
) Coroutine[I, kont.Either[OA, OB], DispatchResult[I, I, OA, OB, A, B]] {
	selector := func(input I) Select[I, I, I] { return SelectBoth[I, I](input) }
	identity := func(input I) I { return input }
	return Dispatch(selector, identity, identity, first, second)
}

// BroadcastUntilFinished broadcasts until both sides complete, pairing
// their results. After the race resolves the survivor keeps consuming
// the shared inputs directly.
func BroadcastUntilFinished[I, O, A, B any](
	first Coroutine[I, O, A],
	second Coroutine[I, O, B],
) Coroutine[I, O, Pair[A, B]] {
	merged := MapOutput(Broadcast(first, second), collapse[O])
	return Bind(merged, func(r DispatchResult[I, I, O, O, A, B]) Coroutine[I, O, Pair[A, B]] {
		if a, remaining, ok := r.Left(); ok {
			return Map(remaining, func(b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} })
		}
		b, remaining, _ := r.Right()
		return Map(remaining, func(a A) Pair[A, B] { return Pair[A, B]{First: a, Second: b} })
	})
}

// neverBoth is the uninhabited Both payload of [Unicast]. Its selector
// never constructs it, which makes the conversion branches unreachable.
type neverBoth struct{}

// Unicast runs two coroutines whose inputs are routed exclusively: every
// external input is tagged Left for the first side or Right for the
// second, so no duplication of the input type is ever required.
func Unicast[IA, IB, OA, OB, A, B any](
	first Coroutine[IA, OA, A],
	second Coroutine[IB, OB, B],
) Coroutine[kont.Either[IA, IB], kont.Either[OA, OB], DispatchResult[IA, IB, OA, OB, A, B]] {
	selector := func(input kont.Either[IA, IB]) Select[IA, IB, neverBoth] {
		if ia, ok := input.GetLeft(); ok {
			return SelectLeft[IA, IB, neverBoth](ia)
		}
		ib, _ := input.GetRight()
		return SelectRight[IA, IB, neverBoth](ib)
	}
	intoFirst := func(neverBoth) IA { panic("coro: unreachable unicast Both") }
	intoSecond := func(neverBoth) IB { panic("coro: unreachable unicast Both") }
	return Dispatch(selector, intoFirst, intoSecond, first, second)
}

// UnicastUntilFinished unicasts until both sides complete, pairing their
// results. Once one side wins, inputs tagged for the winner are discarded
// while the loser runs on.
//
// Can await forever if the driver never supplies an input admissible to
// the still-running side.
func UnicastUntilFinished[IA, IB, O, A, B any](
	first Coroutine[IA, O, A],
	second Coroutine[IB, O, B],
) Coroutine[kont.Either[IA, IB], O, Pair[A, B]] {
	merged := MapOutput(Unicast(first, second), collapse[O])
	return Bind(merged, func(r DispatchResult[IA, IB, O, O, A, B]) Coroutine[kont.Either[IA, IB], O, Pair[A, B]] {
		if a, remaining, ok := r.Left(); ok {
			rest := RunNested(onlyRight[IA, IB, O], emitHost[IA, IB, O], remaining)
			return Map(rest, func(b B) Pair[A, B] { return Pair[A, B]{First: a, Second: b} })
		}
		b, remaining, _ := r.Right()
		rest := RunNested(onlyLeft[IA, IB, O], emitHost[IA, IB, O], remaining)
		return Map(rest, func(a A) Pair[A, B] { return Pair[A, B]{First: a, Second: b} })
	})
}

// collapse merges a tagged output stream whose two sides share one type.
func collapse[O any](e kont.Either[O, O]) O {
	if o, ok := e.GetLeft(); ok {
		return o
	}
	o, _ := e.GetRight()
	return o
}

// onlyLeft receives until an input tagged for the first side arrives,
// discarding inputs addressed to the already-finished second side.
func onlyLeft[IA, IB, O any]() Coroutine[kont.Either[IA, IB], O, IA] {
	return ReceiveUntil(func(input kont.Either[IA, IB]) Coroutine[kont.Either[IA, IB], O, kont.Either[struct{}, IA]] {
		if ia, ok := input.GetLeft(); ok {
			return Pure[kont.Either[IA, IB], O](kont.Right[struct{}](ia))
		}
		return Pure[kont.Either[IA, IB], O](kont.Left[struct{}, IA](struct{}{}))
	})
}

// onlyRight mirrors onlyLeft for the second side.
func onlyRight[IA, IB, O any]() Coroutine[kont.Either[IA, IB], O, IB] {
	return ReceiveUntil(func(input kont.Either[IA, IB]) Coroutine[kont.Either[IA, IB], O, kont.Either[struct{}, IB]] {
		if ib, ok := input.GetRight(); ok {
			return Pure[kont.Either[IA, IB], O](kont.Right[struct{}](ib))
		}
		return Pure[kont.Either[IA, IB], O](kont.Left[struct{}, IB](struct{}{}))
	})
}

// emitHost forwards a survivor's output to the host alphabet unchanged.
func emitHost[IA, IB, O any](o O) Coroutine[kont.Either[IA, IB], O, struct{}] {
	return Emit[kont.Either[IA, IB]](o)
}
