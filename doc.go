// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coop provides stackless cooperative tasks whose suspended state lives
// in a single caller-provided byte buffer.
//
// A task is written in a sequential, blocking-looking style and is suspended
// and resumed by an external driver. Instead of a goroutine or a native call
// stack per task, every invocation carves a small [Frame] out of a [Stack]
// buffer: a resume token naming the suspension point the task last reached,
// followed by the task's locals. Nested tasks stack their frames on top of
// the caller's, and fork/join children get sub-stacks carved out of the
// parent's own locals.
//
// # Design Philosophy
//
// coop provides:
//   - No allocation owned by the runtime: all task state is in memory the caller owns
//   - Explicit suspension points, declared as [Token] constants and dispatched
//     by one switch at the start of every step
//   - Bounds-checked frame allocation with a pluggable overflow handler
//   - A persisted buffer layout that other implementations can read and write
//
// # Stack Buffer
//
//   - [Init]: Write a fresh header into caller memory
//   - [Attach]: Wrap memory that already holds a valid header
//   - [Stack.Reset]: Re-initialize in place
//   - [Stack.Used], [Stack.Cap], [Stack.Avail]: Allocator bookkeeping
//   - [Stack.Token], [Stack.Finished]: Resume state of the outermost task
//   - [Stack.Dump]: Header and hex dump for development
//
// Layout (little-endian uint16 fields):
//
//	offset 0  used      bytes in use, header included
//	offset 2  capacity  usable buffer length
//	offset 4  token     resume token of the outermost frame
//	offset 6  first frame: token (2 bytes) + locals
//
// # Frame Allocation
//
//   - [Stack.Alloc]: Bump-allocate a frame, or report overflow
//   - [Stack.Release]: Pop the top frame
//   - [OverflowHandler]: Observer of rejected allocations
//   - [RegisterOverflowHandler]: Install the process-wide handler at startup
//   - [Stack.WithOverflowHandler]: Inject a handler for one stack and its sub-stacks
//
// Overflow never mutates the stack; the failing invocation returns [Error]
// and every enclosing invocation releases its own frame on the way out, so
// the buffer can be reset or grown and the task restarted.
//
// # Tasks
//
//   - [Task]: LocalsSize plus one Resume step
//   - [FuncTask]: Function adapter
//   - [Stack.Invoke]: Allocate, dispatch, release; the whole invocation contract
//
// The driver calls Invoke with the same stack until it returns [Done] or
// [Error]. Invoking an outermost task again after [Done] is a no-op that
// returns [Done].
//
// # Suspension
//
//   - [Frame.Yield]: Suspend once
//   - [Frame.Await]: Suspend until a condition holds
//   - [Frame.AwaitTask]: Suspend while a child returns [Continue]
//   - [Frame.Exit]: Complete immediately
//
// # Fork/Join
//
//   - [Child]: A task bound to its own stack
//   - [All]: Complete when every child has completed
//   - [Any]: Complete when one child has completed; losers stay suspended
//   - [Join], [AllDone], [AnyDone]: Rounds over arbitrary completion predicates
//
// # Driving
//
//   - [Driver]: Run-until-done loop with a round limit, context and logging
//
// # Example
//
//	const tick coop.Token = 1
//
//	counter := coop.FuncTask{Size: 1, Body: func(f coop.Frame) coop.Status {
//		switch f.Token() {
//		case coop.TokenInit:
//			f.SetUint8(0, 0)
//			fallthrough
//		case tick:
//			if f.Uint8(0) < 3 {
//				f.SetUint8(0, f.Uint8(0)+1)
//				return f.Yield(tick)
//			}
//		}
//		return f.Exit()
//	}}
//
//	var mem [32]byte
//	s := coop.Init(mem[:])
//	for s.Invoke(counter) == coop.Continue {
//	}
package coop
