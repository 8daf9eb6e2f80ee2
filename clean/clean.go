// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package clean strips non-nucleotide characters from DNA text, merges
// fragments and splits cleaned sequences into codons.
package clean

import (
	"strconv"
	"strings"

	"github.com/biogo/nucleic/dna"
)

// Upper returns s in upper case.
func Upper(s string) string { return strings.ToUpper(s) }

// Lower returns s in lower case.
func Lower(s string) string { return strings.ToLower(s) }

func keep(r rune) rune {
	switch r {
	case 'A', 'T', 'G', 'C':
		return r
	}
	return -1
}

// Clean uppercases s and discards every character other than A, T, G and C.
func Clean(s string) string {
	return strings.Map(keep, strings.ToUpper(s))
}

// Merge cleans each fragment and concatenates the results in order.
func Merge(fragments []string) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(Clean(f))
	}
	return b.String()
}

var frames = []string{"0", "1", "2"}

// CheckFrame returns a *dna.ParameterError if frame is not 0, 1 or 2.
func CheckFrame(frame int) error {
	if frame < 0 || frame > 2 {
		return &dna.ParameterError{Name: "frame", Value: strconv.Itoa(frame), Allowed: frames}
	}
	return nil
}

// SplitCodons splits s into consecutive codons after skipping frame leading
// letters. frame must be 0, 1 or 2. Trailing letters that do not fill a codon
// are returned as leftover when dropIncomplete is true; otherwise they are
// appended to codons as a final short element and leftover is empty.
func SplitCodons(s string, frame int, dropIncomplete bool) (codons []string, leftover string, err error) {
	if err := CheckFrame(frame); err != nil {
		return nil, "", err
	}
	if frame < len(s) {
		s = s[frame:]
	} else {
		s = ""
	}
	n := len(s) - len(s)%3
	codons = make([]string, 0, n/3+1)
	for i := 0; i < n; i += 3 {
		codons = append(codons, s[i:i+3])
	}
	leftover = s[n:]
	if !dropIncomplete && leftover != "" {
		return append(codons, leftover), "", nil
	}
	return codons, leftover, nil
}
