// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dna

import (
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// Sequence is a validated, uppercase nucleotide sequence.
type Sequence struct {
	label string
	text  string
	alpha *Alphabet
}

// Validate uppercases text and checks every character against a. If any
// character is not a member of a, the returned error is an *AlphabetError
// holding all offending positions. A nil a is reported as a *ParameterError.
func Validate(text string, a *Alphabet) (Sequence, error) {
	return New("", text, a)
}

// New is like Validate, but also attaches a label to the returned Sequence.
func New(label, text string, a *Alphabet) (Sequence, error) {
	if a == nil {
		return Sequence{}, &ParameterError{Name: "alphabet", Value: "<nil>", Allowed: alphabetNames}
	}
	up := strings.ToUpper(text)
	var bad *AlphabetError
	pos := 0
	for _, r := range up {
		pos++
		if a.IsValid(r) {
			continue
		}
		if bad == nil {
			bad = &AlphabetError{Alphabet: a}
		}
		bad.Positions = append(bad.Positions, pos)
		bad.Chars = append(bad.Chars, r)
	}
	if bad != nil {
		return Sequence{}, bad
	}
	return Sequence{label: label, text: up, alpha: a}, nil
}

// Label returns the label of the sequence, which may be empty.
func (s Sequence) Label() string { return s.label }

// Alphabet returns the alphabet the sequence was validated against.
func (s Sequence) Alphabet() *Alphabet { return s.alpha }

// Len returns the number of letters in the sequence.
func (s Sequence) Len() int { return len(s.text) }

// String returns the uppercase letters of the sequence.
func (s Sequence) String() string { return s.text }

// Letters returns a copy of the sequence's letters.
func (s Sequence) Letters() alphabet.Letters {
	return alphabet.BytesToLetters([]byte(s.text))
}

// Linear returns a new biogo linear sequence holding a copy of the receiver's
// letters. Changes to the returned value do not affect the receiver.
func (s Sequence) Linear() *linear.Seq {
	var comp alphabet.Alphabet
	if s.alpha != nil {
		comp = s.alpha.comp
	}
	return linear.NewSeq(s.label, s.Letters(), comp)
}
