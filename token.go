// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import "strconv"

// Token identifies the suspension point a frame last reached.
//
// A task body declares its own tokens, usually with iota starting at 1.
// The two sentinels [TokenInit] and [TokenDone] are reserved: every other
// value may name a suspension point.
type Token uint16

const (
	// TokenInit is the token of a frame that has not run yet.
	// Dispatching on TokenInit transfers control to the start of the body.
	TokenInit Token = 0

	// TokenDone is the token of a frame whose body has completed.
	TokenDone Token = 0xFFFF
)

// Sentinel reports whether t is TokenInit or TokenDone.
func (t Token) Sentinel() bool { return t == TokenInit || t == TokenDone }

func (t Token) String() string {
	switch t {
	case TokenInit:
		return "init"
	case TokenDone:
		return "done"
	}
	return "point(" + strconv.Itoa(int(t)) + ")"
}

// Status is the outcome of one invocation.
// The zero Status is invalid; every invocation returns one of
// [Continue], [Error] or [Done].
type Status uint8

const (
	// Continue means the task suspended and must be invoked again.
	Continue Status = iota + 1
	// Error means the task failed; the stack must be reset before reuse.
	Error
	// Done means the task completed.
	Done
)

func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Error:
		return "error"
	case Done:
		return "done"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}
