// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/coop"
)

func TestDriverRunsToCompletion(t *testing.T) {
	var visited []coop.Token
	var rounds []coop.Status
	d := coop.Driver{OnRound: func(round int, st coop.Status) {
		assert.Equal(t, len(rounds)+1, round)
		rounds = append(rounds, st)
	}}

	s := coop.Init(make([]byte, 16))
	n, err := d.Run(context.Background(), s, threeYields(&visited))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []coop.Status{coop.Continue, coop.Continue, coop.Continue, coop.Done}, rounds)
	assert.Equal(t, coop.HeaderSize, s.Used())
}

func TestDriverRoundLimit(t *testing.T) {
	forever := coop.FuncTask{Size: 0, Body: func(f coop.Frame) coop.Status {
		return f.Yield(pointA)
	}}
	d := coop.Driver{MaxRounds: 5}
	n, err := d.Run(context.Background(), coop.Init(make([]byte, 16)), forever)
	assert.ErrorIs(t, err, coop.ErrRoundLimit)
	assert.Equal(t, 5, n)
}

func TestDriverTaskFailure(t *testing.T) {
	var rec overflowRecorder
	s := coop.Init(make([]byte, 8)).WithOverflowHandler(rec.handle)
	n, err := coop.Driver{}.Run(context.Background(), s, coop.FuncTask{Size: 16, Body: func(f coop.Frame) coop.Status {
		return f.Exit()
	}})
	assert.ErrorIs(t, err, coop.ErrTaskFailed)
	assert.EqualError(t, err, "round 1: coop: task failed")
	assert.Equal(t, 1, n)
	assert.Len(t, rec.sizes, 1)
}

func TestDriverContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var visited []coop.Token
	d := coop.Driver{OnRound: func(round int, _ coop.Status) {
		if round == 2 {
			cancel()
		}
	}}
	n, err := d.Run(ctx, coop.Init(make([]byte, 16)), threeYields(&visited))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, n)
	assert.Len(t, visited, 2)
}

func TestDriverLogsRounds(t *testing.T) {
	var lines []string
	d := coop.Driver{Log: captureLogger(&lines, 1)}
	var visited []coop.Token
	_, err := d.Run(context.Background(), coop.Init(make([]byte, 16)), threeYields(&visited))
	require.NoError(t, err)

	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], `"round"=1`)
	assert.Contains(t, lines[0], `"status"="continue"`)
	assert.Contains(t, lines[3], `"status"="done"`)
	assert.Contains(t, lines[3], `"token"="done"`)
}
