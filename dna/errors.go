// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dna

import (
	"fmt"
	"strings"
)

// AlphabetError is returned when a sequence holds characters outside its
// alphabet. Positions are 1-based and increasing; Chars[i] is the uppercased
// character found at Positions[i].
type AlphabetError struct {
	Alphabet  *Alphabet
	Positions []int
	Chars     []rune
}

func (e *AlphabetError) Error() string {
	quoted := make([]string, len(e.Chars))
	for i, r := range e.Chars {
		quoted[i] = fmt.Sprintf("%q", r)
	}
	var allowed string
	if e.Alphabet != nil {
		allowed = strings.Join(strings.Split(e.Alphabet.letters, ""), ",")
	}
	return fmt.Sprintf("dna: invalid %v symbols at positions %v -> [%s]; allowed: %s",
		e.Alphabet, e.Positions, strings.Join(quoted, " "), allowed)
}

// ParameterError is returned when an enumerated option is given a value
// outside its accepted set.
type ParameterError struct {
	Name    string
	Value   string
	Allowed []string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("dna: invalid %s %q: must be one of %s",
		e.Name, e.Value, strings.Join(e.Allowed, ", "))
}

// BatchError reports the first item of a batch that failed. Index is the
// position of the item in the caller's input slice.
type BatchError struct {
	Index int
	Item  string
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch item %d (%q): %v", e.Index, e.Item, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
