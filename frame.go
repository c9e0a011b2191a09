// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import "encoding/binary"

// TokenSize is the size of the resume token at the start of every frame.
const TokenSize = 2

// FrameSize returns the number of stack bytes a frame with localsSize bytes
// of locals occupies.
func FrameSize(localsSize int) int { return TokenSize + localsSize }

// Frame is the activation record of one invocation: a resume token followed
// by the task's locals. It is a window onto the stack buffer, valid only
// until the invocation that allocated it returns.
//
// Locals are addressed by byte offset. Multi-byte accessors are
// little-endian, matching the header layout.
type Frame struct {
	mem   []byte
	owner Stack
}

// Token returns the suspension point the frame resumes at.
func (f Frame) Token() Token { return Token(binary.LittleEndian.Uint16(f.mem)) }

func (f Frame) setToken(t Token) { binary.LittleEndian.PutUint16(f.mem, uint16(t)) }

// Size returns the frame size in bytes, token included.
func (f Frame) Size() int { return len(f.mem) }

// Locals returns the locals region of the frame.
func (f Frame) Locals() []byte { return f.mem[TokenSize:] }

func (f Frame) Uint8(off int) uint8       { return f.mem[TokenSize+off] }
func (f Frame) SetUint8(off int, v uint8) { f.mem[TokenSize+off] = v }

func (f Frame) Uint16(off int) uint16 {
	return binary.LittleEndian.Uint16(f.mem[TokenSize+off:])
}

func (f Frame) SetUint16(off int, v uint16) {
	binary.LittleEndian.PutUint16(f.mem[TokenSize+off:], v)
}

func (f Frame) Uint32(off int) uint32 {
	return binary.LittleEndian.Uint32(f.mem[TokenSize+off:])
}

func (f Frame) SetUint32(off int, v uint32) {
	binary.LittleEndian.PutUint32(f.mem[TokenSize+off:], v)
}

func (f Frame) Bool(off int) bool { return f.mem[TokenSize+off] != 0 }

func (f Frame) SetBool(off int, v bool) {
	var b byte
	if v {
		b = 1
	}
	f.mem[TokenSize+off] = b
}

// InitStack initializes n bytes of locals starting at off as an independent
// sub-stack and returns it. Sub-stacks give fork/join children frames of their
// own; they live as long as the enclosing frame and inherit its stack's
// overflow handler.
//
// Call InitStack once, before the first suspension point, and use [Frame.Stack]
// to reach the same sub-stack on later invocations.
func (f Frame) InitStack(off, n int) Stack {
	s := Init(f.Locals()[off : off+n : off+n])
	s.onOverflow = f.owner.onOverflow
	return s
}

// Stack returns the sub-stack previously initialized at off by [Frame.InitStack].
// The header is not validated here; if a write into the locals corrupted it,
// invocations on the sub-stack return [Error] instead of touching memory
// outside the n-byte window.
func (f Frame) Stack(off, n int) Stack {
	return Stack{mem: f.Locals()[off : off+n : off+n], onOverflow: f.owner.onOverflow}
}

// reset zeroes the frame so the next allocation at its offset starts at TokenInit.
func (f Frame) reset() { clear(f.mem) }
