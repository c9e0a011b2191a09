// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// Task is a resumable body of user logic.
//
// Resume is one step of the body. It dispatches on f.Token() to the code
// following the last suspension point ([TokenInit] selects the start of the
// body) and runs until the next suspension point or the end:
//
//	const (
//		waitReady coop.Token = iota + 1
//		flush
//	)
//
//	func (t *writer) Resume(f coop.Frame) coop.Status {
//		switch f.Token() {
//		case coop.TokenInit:
//			f.SetUint16(0, 0)
//			fallthrough
//		case waitReady:
//			if st, ok := f.Await(waitReady, t.dev.Ready()); !ok {
//				return st
//			}
//			t.dev.Write(t.buf)
//			return f.Yield(flush)
//		case flush:
//			t.dev.Flush()
//		}
//		return f.Exit()
//	}
//
// Everything that must survive a suspension lives in the frame's locals;
// fields of the Task value itself are arguments, fixed for the whole run.
type Task interface {
	// LocalsSize returns the number of locals bytes the body needs.
	// It must return the same value on every invocation.
	LocalsSize() int

	// Resume runs the body from the frame's token to the next suspension point.
	Resume(f Frame) Status
}

// FuncTask adapts a function to the [Task] interface.
type FuncTask struct {
	Size int
	Body func(f Frame) Status
}

// LocalsSize implements [Task].
func (t FuncTask) LocalsSize() int { return t.Size }

// Resume implements [Task].
func (t FuncTask) Resume(f Frame) Status { return t.Body(f) }

// Invoke runs one step of t on s: it allocates t's frame at the top of s,
// dispatches to the frame's resume point and releases the frame before
// returning, whatever the outcome.
//
// On overflow the frame is never allocated and Invoke returns [Error].
// A frame that completes with [Done] is zeroed on release so a task invoked
// later at the same offset starts fresh.
//
// When t is the outermost task of s, its resume token is mirrored into the
// header. Invoking an outermost task again after it completed is a no-op
// returning [Done]; call [Stack.Reset] to run it again.
//
// Invoke does not allocate. Convert a task to [Task] once, outside the
// driving loop, so the conversion does not allocate either.
func (s Stack) Invoke(t Task) (st Status) {
	outer := s.Used() == HeaderSize
	if outer && s.Finished() {
		return Done
	}
	f, err := s.Alloc(FrameSize(t.LocalsSize()))
	if err != nil {
		return Error
	}
	defer s.leave(f, outer, &st)
	st = t.Resume(f)
	return st
}

// leave releases f. st is read after the body returned or panicked; a
// panicking body leaves it zero and the header token untouched.
func (s Stack) leave(f Frame, outer bool, st *Status) {
	tok := f.Token()
	if *st == Done {
		tok = TokenDone
		f.reset()
	}
	s.Release(f.Size())
	if outer && *st != Error && *st != 0 {
		s.setToken(tok)
	}
}
