// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// Fork/join over child tasks. Each child runs as the outermost task of its
// own stack, usually a sub-stack carved from the parent's locals with
// [Frame.InitStack], so siblings never share frame memory and a finished
// child is recognized by its stack header alone.

// Child binds a task to the stack it runs on.
type Child struct {
	Stack Stack
	Task  Task
}

// Finished reports whether the child's task has completed.
func (c Child) Finished() bool { return c.Stack.Finished() }

// Join runs one round over children: every unfinished child is invoked once,
// in order, and finished children count as completed without being invoked.
// It returns [Error] if any child failed this round, [Done] if complete holds
// for the number of completed children out of total and [Continue] otherwise.
func Join(complete func(done, total int) bool, children ...Child) Status {
	done, failed := 0, false
	for _, c := range children {
		st := Done
		if !c.Finished() {
			st = c.Stack.Invoke(c.Task)
		}
		switch st {
		case Done:
			done++
		case Error:
			failed = true
		}
	}
	switch {
	case failed:
		return Error
	case complete(done, len(children)):
		return Done
	}
	return Continue
}

// All runs one round over children and reports [Done] once every child has
// completed.
func All(children ...Child) Status { return Join(AllDone, children...) }

// Any runs one round over children and reports [Done] as soon as one child
// has completed. The other children are left suspended where they are; they
// are not cancelled and their stacks stay reserved until the parent frame
// that owns them is released. Any over no children never completes.
func Any(children ...Child) Status { return Join(AnyDone, children...) }

// AllDone reports whether every one of total children has completed.
func AllDone(done, total int) bool { return done == total }

// AnyDone reports whether at least one child has completed.
func AnyDone(done, _ int) bool { return done > 0 }
