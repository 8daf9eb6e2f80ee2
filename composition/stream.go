// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package composition

import (
	"bufio"
	"io"
)

// CountReader tallies A, T, G and C letters read from r without holding the
// text in memory. Letters are counted case-insensitively, lines starting
// with '>' are skipped as FASTA headers and all other bytes are ignored.
func CountReader(r io.Reader) (Counts, error) {
	var c Counts
	br := bufio.NewReader(r)
	lineStart, header := true, false
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return c, nil
		}
		if err != nil {
			return c, err
		}
		if lineStart {
			header = b == '>'
		}
		lineStart = b == '\n'
		if header {
			continue
		}
		switch b {
		case 'A', 'a':
			c.A++
		case 'T', 't':
			c.T++
		case 'G', 'g':
			c.G++
		case 'C', 'c':
			c.C++
		}
	}
}
