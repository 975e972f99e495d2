// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// Loop runs a recursive coroutine over an explicit state.
// step returns Left(nextState) to continue or Right(result) to finish.
//
// The recursion lives inside bind continuations: a loop that awaits each
// round carries no stack between inputs, only the closure chain of the
// current one.
func Loop[I, O, S, R any](initial S, step func(S) Coroutine[I, O, kont.Either[S, R]]) Coroutine[I, O, R] {
	return Bind(step(initial), func(e kont.Either[S, R]) Coroutine[I, O, R] {
		if s, ok := e.GetLeft(); ok {
			return Loop(s, step)
		}
		r, _ := e.GetRight()
		return Pure[I, O](r)
	})
}
