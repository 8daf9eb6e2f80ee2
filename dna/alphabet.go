// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dna provides validated nucleotide sequences over the strict
// A/T/G/C alphabet and the IUPAC degenerate DNA alphabet.
//
// All construction goes through Validate or New, which uppercase the input
// and report every invalid position in a single scan. A Sequence is never
// modified after construction.
package dna

import (
	"github.com/biogo/biogo/alphabet"
)

// Alphabet is a fixed set of uppercase nucleotide symbols bound to the
// biogo complementor that pairs them.
type Alphabet struct {
	name    string
	letters string
	valid   [256]bool
	comp    alphabet.Complementor
}

func newAlphabet(name, letters string, comp alphabet.Complementor) *Alphabet {
	a := &Alphabet{name: name, letters: letters, comp: comp}
	for i := 0; i < len(letters); i++ {
		a.valid[letters[i]] = true
	}
	return a
}

var (
	// Strict is the canonical four letter DNA alphabet.
	Strict = newAlphabet("strict", "ATGC", alphabet.DNA)

	// IUPAC is the degenerate DNA alphabet: the strict letters plus the
	// ambiguity codes R, Y, S, W, K, M, B, D, H, V and N.
	IUPAC = newAlphabet("iupac", "ATGCRYSWKMBDHVN", alphabet.DNAredundant)

	alphabetNames = []string{"strict", "iupac"}
)

// Name returns the name of the alphabet.
func (a *Alphabet) Name() string { return a.name }

// Letters returns the symbols of the alphabet in canonical order.
func (a *Alphabet) Letters() string { return a.letters }

// IsValid returns whether r is an uppercase member of the alphabet.
func (a *Alphabet) IsValid(r rune) bool {
	return r >= 0 && r < 256 && a.valid[r]
}

// Complementor returns the biogo complementor used to pair the alphabet's
// letters.
func (a *Alphabet) Complementor() alphabet.Complementor { return a.comp }

func (a *Alphabet) String() string { return a.name }
