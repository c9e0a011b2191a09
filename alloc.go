// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// Frame allocation is a bump allocator over the stack buffer.
// Alloc and Release are strictly LIFO: every invocation allocates its frame
// on entry and releases it on every exit path, so `used` is back at its entry
// value whenever an invocation returns.

// Alloc carves a frame of frameSize bytes at the current top of s.
//
// If the frame does not fit, Alloc reports the requested size to the overflow
// handler exactly once and returns an [*OverflowError] without changing s.
// A frame placed on memory that was zeroed by [Init] or by a completed frame
// reads [TokenInit]; otherwise the frame keeps the token and locals it was
// released with, which is what lets a suspended task resume.
//
// A header whose used or capacity field disagrees with the memory behind s,
// as after a stray write into the locals holding a sub-stack, makes Alloc
// return [ErrCorruptHeader] without calling the overflow handler.
//
// Alloc panics if frameSize is smaller than [TokenSize].
func (s Stack) Alloc(frameSize int) (Frame, error) {
	if frameSize < TokenSize {
		panic("coop: frame smaller than its resume token")
	}
	used, capacity := s.Used(), s.Cap()
	if used < HeaderSize || used > capacity || capacity > len(s.mem) {
		return Frame{}, ErrCorruptHeader
	}
	if used+frameSize > capacity {
		err := &OverflowError{Size: frameSize, Used: used, Capacity: capacity}
		s.overflow(err)
		return Frame{}, err
	}
	s.setUsed(used + frameSize)
	return Frame{mem: s.mem[used : used+frameSize : used+frameSize], owner: s}, nil
}

// Release returns the top frameSize bytes of s to the allocator.
// It panics if that would release part of the header.
func (s Stack) Release(frameSize int) {
	used := s.Used() - frameSize
	if frameSize < 0 || used < HeaderSize {
		panic("coop: frame release underflows stack")
	}
	s.setUsed(used)
}
