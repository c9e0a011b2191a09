// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/pkg/errors"

	"code.hybscloud.com/coop"
)

const (
	stepPoint coop.Token = iota + 1
	joinPoint
)

// childStackSize fits one child frame (a one-byte counter) on its own sub-stack.
const childStackSize = coop.HeaderSize + coop.TokenSize + 1

var (
	childColor = color.New(color.FgCyan)
	doneColor  = color.New(color.FgGreen, color.Bold)
	failColor  = color.New(color.FgRed, color.Bold)
)

// counter prints and yields n times, then completes.
func counter(out io.Writer, id int, n uint8) coop.Task {
	return coop.FuncTask{Size: 1, Body: func(f coop.Frame) coop.Status {
		switch f.Token() {
		case coop.TokenInit:
			f.SetUint8(0, 0)
			fallthrough
		case stepPoint:
			if i := f.Uint8(0); i < n {
				f.SetUint8(0, i+1)
				childColor.Fprintf(out, "  child %d: step %d/%d\n", id, i+1, n)
				return f.Yield(stepPoint)
			}
		}
		return f.Exit()
	}}
}

// forker carves one sub-stack per child from its locals and awaits join over
// the children.
func forker(children []coop.Task, join func(...coop.Child) coop.Status) coop.Task {
	n := len(children)
	return coop.FuncTask{Size: n * childStackSize, Body: func(f coop.Frame) coop.Status {
		switch f.Token() {
		case coop.TokenInit:
			for i := range n {
				f.InitStack(i*childStackSize, childStackSize)
			}
			fallthrough
		case joinPoint:
			handles := make([]coop.Child, n)
			for i, t := range children {
				handles[i] = coop.Child{Stack: f.Stack(i*childStackSize, childStackSize), Task: t}
			}
			if st, ok := f.AwaitTask(joinPoint, join(handles...)); !ok {
				return st
			}
		}
		return f.Exit()
	}}
}

func run(ctx context.Context, out io.Writer, cfg config, log logr.Logger) error {
	children := make([]coop.Task, len(cfg.Repeat))
	for i, r := range cfg.Repeat {
		children[i] = counter(out, i, uint8(r))
	}
	join := coop.All
	if cfg.Mode == modeAny {
		join = coop.Any
	}

	s := coop.Init(make([]byte, cfg.Capacity))
	d := coop.Driver{
		MaxRounds: cfg.MaxRounds,
		Log:       log,
		OnRound: func(round int, st coop.Status) {
			fmt.Fprintf(out, "round %d: %s (used=%d token=%s)\n", round, st, s.Used(), s.Token())
			if cfg.Dump {
				_ = s.Dump(out)
			}
		},
	}
	rounds, err := d.Run(ctx, s, forker(children, join))
	if err != nil {
		failColor.Fprintf(out, "failed after %d rounds\n", rounds)
		return errors.Wrapf(err, "%s join over %d children", cfg.Mode, len(children))
	}
	doneColor.Fprintf(out, "done after %d rounds\n", rounds)
	return nil
}
