// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop_test

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/zapr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"code.hybscloud.com/coop"
)

// captureLogger returns a logger that appends every formatted entry to lines.
func captureLogger(lines *[]string, verbosity int) logr.Logger {
	return funcr.New(func(prefix, args string) {
		*lines = append(*lines, prefix+args)
	}, funcr.Options{Verbosity: verbosity})
}

func TestRegisterOverflowHandler(t *testing.T) {
	var first, second overflowRecorder
	prev := coop.RegisterOverflowHandler(first.handle)
	t.Cleanup(func() { coop.RegisterOverflowHandler(prev) })

	s := coop.Init(make([]byte, 8))
	_, err := s.Alloc(4)
	require.ErrorIs(t, err, coop.ErrOverflow)
	assert.Equal(t, []int{4}, first.sizes)

	old := coop.RegisterOverflowHandler(second.handle)
	require.NotNil(t, old)
	_, _ = s.Alloc(6)
	assert.Equal(t, []int{4}, first.sizes)
	assert.Equal(t, []int{6}, second.sizes)

	assert.NotNil(t, coop.RegisterOverflowHandler(nil))
	assert.Nil(t, coop.RegisterOverflowHandler(nil))
}

func TestStackHandlerTakesPrecedence(t *testing.T) {
	var global, local overflowRecorder
	prev := coop.RegisterOverflowHandler(global.handle)
	t.Cleanup(func() { coop.RegisterOverflowHandler(prev) })

	s := coop.Init(make([]byte, 8)).WithOverflowHandler(local.handle)
	_, err := s.Alloc(4)
	require.Error(t, err)
	assert.Empty(t, global.sizes)
	assert.Equal(t, []int{4}, local.sizes)
}

func TestDefaultHandlerLogs(t *testing.T) {
	prev := coop.RegisterOverflowHandler(nil)
	t.Cleanup(func() { coop.RegisterOverflowHandler(prev) })

	var lines []string
	coop.SetLogger(captureLogger(&lines, 0))
	t.Cleanup(func() { coop.SetLogger(logr.Discard()) })

	s := coop.Init(make([]byte, 10))
	_, err := s.Alloc(8)
	require.Error(t, err)

	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "frame allocation rejected")
	assert.Contains(t, lines[0], `"size"=8`)
	assert.Contains(t, lines[0], `"capacity"=10`)
	assert.True(t, strings.Contains(lines[0], coop.ErrOverflow.Error()))
	assert.Contains(t, lines[0], "frame of 8 bytes at offset 6 exceeds capacity 10")
}

func TestDefaultHandlerLogsAllocationError(t *testing.T) {
	prev := coop.RegisterOverflowHandler(nil)
	t.Cleanup(func() { coop.RegisterOverflowHandler(prev) })

	core, logs := observer.New(zapcore.ErrorLevel)
	coop.SetLogger(zapr.NewLogger(zap.New(core)))
	t.Cleanup(func() { coop.SetLogger(logr.Discard()) })

	_, err := coop.Init(make([]byte, 10)).Alloc(8)
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, err.Error(), fields["error"])
	assert.NotContains(t, fields, "errorVerbose", "no init-time stack trace")
}

func TestSubStackInheritsHandler(t *testing.T) {
	var rec overflowRecorder
	var seen coop.Stack
	s := coop.Init(make([]byte, 64)).WithOverflowHandler(func(sub coop.Stack, size int) {
		seen = sub
		rec.handle(sub, size)
	})

	f, err := s.Alloc(coop.FrameSize(16))
	require.NoError(t, err)
	sub := f.InitStack(0, 10)
	assert.Equal(t, 10, sub.Cap())

	_, err = sub.Alloc(6)
	require.ErrorIs(t, err, coop.ErrOverflow)
	assert.Equal(t, []int{6}, rec.sizes)
	assert.Equal(t, 10, seen.Cap())

	again := f.Stack(0, 10)
	assert.Equal(t, coop.HeaderSize, again.Used())
	_, _ = again.Alloc(8)
	assert.Equal(t, []int{6, 8}, rec.sizes)
}
