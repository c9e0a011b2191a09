// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import "encoding/binary"

// Persisted layout of a stack buffer. All fields are little-endian uint16.
//
//	[0:2] used      bytes in use, header included
//	[2:4] capacity  usable length of the buffer
//	[4:6] token     resume token of the outermost frame
//	[6:]  frames
const (
	offUsed  = 0
	offCap   = 2
	offToken = 4

	// HeaderSize is the size of the stack header preceding the first frame.
	HeaderSize = 6

	// MaxCapacity is the largest capacity a header can record.
	MaxCapacity = 0xFFFF
)

// Stack is a view over caller-owned memory that backs the frames of one
// invocation chain. All state lives in the memory itself, so Stack values
// are cheap to copy and every copy observes the same header.
//
// A Stack is not safe for concurrent use.
type Stack struct {
	mem        []byte
	onOverflow OverflowHandler
}

// Init writes a fresh header into mem and returns a stack over it.
// The frame region is zeroed so that the first frame reads [TokenInit].
// Capacity is len(mem) clamped to [MaxCapacity].
//
// Init panics if mem is shorter than [HeaderSize].
func Init(mem []byte) Stack {
	if len(mem) < HeaderSize {
		panic("coop: stack memory shorter than header")
	}
	if len(mem) > MaxCapacity {
		mem = mem[:MaxCapacity]
	}
	clear(mem)
	s := Stack{mem: mem}
	s.setUsed(HeaderSize)
	s.put(offCap, uint16(len(mem)))
	s.setToken(TokenInit)
	return s
}

// Attach returns a stack over memory that already holds an initialized header,
// for example one written by another process or implementation.
// It returns [ErrCorruptHeader] if the header is inconsistent with mem.
func Attach(mem []byte) (Stack, error) {
	if len(mem) < HeaderSize {
		return Stack{}, ErrCorruptHeader
	}
	s := Stack{mem: mem}
	c := int(s.get(offCap))
	u := int(s.get(offUsed))
	if c < HeaderSize || c > len(mem) || u < HeaderSize || u > c {
		return Stack{}, ErrCorruptHeader
	}
	s.mem = mem[:c]
	return s, nil
}

// WithOverflowHandler returns a copy of s that reports overflow to h instead
// of the process-wide handler. Sub-stacks carved from frames of the returned
// stack inherit h.
func (s Stack) WithOverflowHandler(h OverflowHandler) Stack {
	s.onOverflow = h
	return s
}

// Reset re-initializes the stack in place.
func (s Stack) Reset() { Init(s.mem) }

// Used returns the number of bytes in use, header included.
func (s Stack) Used() int { return int(s.get(offUsed)) }

// Cap returns the capacity recorded in the header.
func (s Stack) Cap() int { return int(s.get(offCap)) }

// Avail returns the number of bytes still available for frames.
func (s Stack) Avail() int { return s.Cap() - s.Used() }

// Token returns the resume token of the outermost frame.
func (s Stack) Token() Token { return Token(s.get(offToken)) }

// Finished reports whether the outermost task on s has completed.
func (s Stack) Finished() bool { return s.Token() == TokenDone }

func (s Stack) setUsed(n int)      { s.put(offUsed, uint16(n)) }
func (s Stack) setToken(t Token)   { s.put(offToken, uint16(t)) }
func (s Stack) get(off int) uint16 { return binary.LittleEndian.Uint16(s.mem[off:]) }

func (s Stack) put(off int, v uint16) {
	binary.LittleEndian.PutUint16(s.mem[off:], v)
}
