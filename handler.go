// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"github.com/go-logr/logr"
	"go.uber.org/atomic"
)

// OverflowHandler is called synchronously when a frame of size bytes does not
// fit in s. It observes the failure only: the allocation fails regardless of
// what the handler does, and the caller receives [Error].
//
// A handler must not allocate from or release frames of s.
type OverflowHandler func(s Stack, size int)

type overflowSlot struct{ h OverflowHandler }

var (
	overflowHandler atomic.Pointer[overflowSlot]
	packageLogger   atomic.Pointer[logr.Logger]
)

// RegisterOverflowHandler installs h as the process-wide overflow handler and
// returns the previously registered one. A nil h restores the default handler,
// which logs the failure through the logger set by [SetLogger].
//
// Register once at startup; stacks created with
// [Stack.WithOverflowHandler] bypass the process-wide handler.
func RegisterOverflowHandler(h OverflowHandler) OverflowHandler {
	var prev *overflowSlot
	if h == nil {
		prev = overflowHandler.Swap(nil)
	} else {
		prev = overflowHandler.Swap(&overflowSlot{h: h})
	}
	if prev == nil {
		return nil
	}
	return prev.h
}

// SetLogger sets the process-wide logger used by the default overflow handler
// and by a [Driver] with no logger of its own. The default discards everything.
func SetLogger(l logr.Logger) {
	packageLogger.Store(&l)
}

// Logger returns the process-wide logger.
func Logger() logr.Logger {
	if l := packageLogger.Load(); l != nil {
		return *l
	}
	return logr.Discard()
}

// overflow reports a rejected allocation to the effective handler.
func (s Stack) overflow(err *OverflowError) {
	if s.onOverflow != nil {
		s.onOverflow(s, err.Size)
		return
	}
	if slot := overflowHandler.Load(); slot != nil {
		slot.h(s, err.Size)
		return
	}
	logOverflow(err)
}

func logOverflow(err *OverflowError) {
	Logger().Error(err, "frame allocation rejected",
		"size", err.Size, "used", err.Used, "capacity", err.Capacity)
}
