// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
)

// Driver invokes one task repeatedly until it completes.
// It is the simplest possible external driver: it never sleeps or waits,
// so awaited conditions must become true through the task's own progress or
// through OnRound.
type Driver struct {
	// MaxRounds bounds the number of invocations; zero means unbounded.
	MaxRounds int

	// Log receives one V(1) entry per round. The zero Logger falls back to
	// the process-wide logger.
	Log logr.Logger

	// OnRound, if set, is called after every invocation.
	OnRound func(round int, st Status)
}

// Run invokes t on s until it returns [Done] and reports the number of rounds.
//
// It returns an error wrapping [ErrTaskFailed] if t returns [Error],
// [ErrRoundLimit] if MaxRounds is exhausted, or the context's error if ctx is
// done before the next round.
func (d Driver) Run(ctx context.Context, s Stack, t Task) (int, error) {
	log := d.Log
	if log.GetSink() == nil {
		log = Logger()
	}
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return round - 1, errors.Wrapf(err, "coop: driver stopped before round %d", round)
		}
		st := s.Invoke(t)
		log.V(1).Info("round", "round", round, "status", st.String(),
			"used", s.Used(), "token", s.Token().String())
		if d.OnRound != nil {
			d.OnRound(round, st)
		}
		switch st {
		case Done:
			return round, nil
		case Error:
			return round, errors.Wrapf(ErrTaskFailed, "round %d", round)
		}
		if d.MaxRounds > 0 && round >= d.MaxRounds {
			return round, errors.Wrapf(ErrRoundLimit, "%d rounds", round)
		}
	}
}
