// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// Suspension primitives. Each stores a resume token into the frame and
// returns the status the body should return; none of them block.

// Yield suspends unconditionally. The next invocation resumes at next.
func (f Frame) Yield(next Token) Status {
	f.suspendAt(next)
	return Continue
}

// Await suspends at point at until cond holds.
// The caller evaluates cond once per invocation; Await returns
// (Continue, false) to suspend, or (Continue, true) to fall through.
//
//	case waitReady:
//		if st, ok := f.Await(waitReady, ready()); !ok {
//			return st
//		}
func (f Frame) Await(at Token, cond bool) (Status, bool) {
	if cond {
		return Continue, true
	}
	f.suspendAt(at)
	return Continue, false
}

// AwaitTask suspends at point at while a child invocation returns [Continue].
// An [Error] from the child is returned for propagation and [Done] lets the
// caller fall through.
//
//	case join:
//		if st, ok := f.AwaitTask(join, coop.All(a, b)); !ok {
//			return st
//		}
func (f Frame) AwaitTask(at Token, st Status) (Status, bool) {
	switch st {
	case Done:
		return Done, true
	case Continue:
		f.suspendAt(at)
		return Continue, false
	}
	return Error, false
}

// Exit completes the body, skipping whatever remains of it.
func (f Frame) Exit() Status {
	f.setToken(TokenDone)
	return Done
}

func (f Frame) suspendAt(t Token) {
	if t.Sentinel() {
		panic("coop: suspension point uses a sentinel token")
	}
	f.setToken(t)
}
