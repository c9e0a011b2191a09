// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"encoding/hex"
	"fmt"
	"io"
)

// Dump writes the header fields of s followed by a hex dump of its whole
// buffer, header included. It is a development aid and does not modify s.
func (s Stack) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "used=%d cap=%d token=%s\n", s.Used(), s.Cap(), s.Token()); err != nil {
		return err
	}
	d := hex.Dumper(w)
	if _, err := d.Write(s.mem[:min(s.Cap(), len(s.mem))]); err != nil {
		return err
	}
	return d.Close()
}
