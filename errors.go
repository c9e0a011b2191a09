// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrOverflow reports a frame that does not fit the remaining capacity.
	ErrOverflow = errors.New("coop: stack overflow")

	// ErrCorruptHeader reports memory whose header is not a valid stack.
	ErrCorruptHeader = errors.New("coop: corrupt stack header")

	// ErrTaskFailed reports a task that returned Error to its driver.
	ErrTaskFailed = errors.New("coop: task failed")

	// ErrRoundLimit reports a task that did not complete within the driver's round limit.
	ErrRoundLimit = errors.New("coop: round limit exceeded")
)

// OverflowError describes a rejected frame allocation.
type OverflowError struct {
	// Size is the requested frame size in bytes.
	Size int
	// Used and Capacity are the stack header values at the time of the request.
	Used     int
	Capacity int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%v: frame of %d bytes at offset %d exceeds capacity %d",
		ErrOverflow, e.Size, e.Used, e.Capacity)
}

// Is reports whether target is ErrOverflow.
func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }
