// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop_test

import (
	"testing"

	"code.hybscloud.com/coop"
)

var sinkStatus coop.Status

func BenchmarkAllocRelease(b *testing.B) {
	s := coop.Init(make([]byte, 64))
	b.ReportAllocs()
	for b.Loop() {
		f, _ := s.Alloc(16)
		s.Release(f.Size())
	}
}

func BenchmarkInvokeYield(b *testing.B) {
	task := coop.FuncTask{Size: 2, Body: func(f coop.Frame) coop.Status {
		return f.Yield(pointA)
	}}
	s := coop.Init(make([]byte, 64))
	b.ReportAllocs()
	for b.Loop() {
		sinkStatus = s.Invoke(task)
	}
}

func BenchmarkAllRound(b *testing.B) {
	forever := coop.FuncTask{Size: 1, Body: func(f coop.Frame) coop.Status {
		return f.Yield(step)
	}}
	children := []coop.Child{
		{Stack: coop.Init(make([]byte, 16)), Task: forever},
		{Stack: coop.Init(make([]byte, 16)), Task: forever},
		{Stack: coop.Init(make([]byte, 16)), Task: forever},
	}
	b.ReportAllocs()
	for b.Loop() {
		sinkStatus = coop.All(children...)
	}
}
