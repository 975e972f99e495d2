// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"code.hybscloud.com/coro"
)

// sliceNext adapts a slice to the pull-source shape Execute consumes.
func sliceNext[I any](inputs []I) func() (I, bool) {
	i := 0
	return func() (I, bool) {
		if i >= len(inputs) {
			var zero I
			return zero, false
		}
		v := inputs[i]
		i++
		return v, true
	}
}

// drive feeds inputs to co and gathers every output.
// completed reports whether co finished before the inputs ran out.
func drive[I, O, R any](co coro.Coroutine[I, O, R], inputs []I) (outputs []O, result R, completed bool) {
	res := coro.Execute(co, func(o O) { outputs = append(outputs, o) }, sliceNext(inputs))
	result, completed = res.Completed()
	return outputs, result, completed
}

// driveOn is drive for callers that also need the live coroutine back
// when the inputs were exhausted first.
func driveOn[I, O, R any](co coro.Coroutine[I, O, R], inputs []I) (outputs []O, res coro.ExecResult[I, O, R]) {
	res = coro.Execute(co, func(o O) { outputs = append(outputs, o) }, sliceNext(inputs))
	return outputs, res
}
