// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package composition computes nucleotide counts, percentage frequencies and
// GC/AT content of strict DNA sequences, and compares the composition of two
// sequences.
package composition

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/biogo/nucleic/dna"
)

// ErrNotStrict is returned when a sequence was not validated against
// dna.Strict.
var ErrNotStrict = errors.New("composition: sequence alphabet is not strict DNA")

// Counts holds the number of each base in a sequence.
type Counts struct {
	A, T, G, C int
}

// Total returns the sum of all counts.
func (c Counts) Total() int { return c.A + c.T + c.G + c.C }

// Frequencies holds the percentage of each base in a sequence.
type Frequencies struct {
	A, T, G, C float64
}

func (f Frequencies) values() []float64 { return []float64{f.A, f.T, f.G, f.C} }

// Sum returns the sum of all frequencies. It is 100 within rounding error
// for a non-empty sequence and 0 for an empty one.
func (f Frequencies) Sum() float64 { return floats.Sum(f.values()) }

// Composition is the base composition of a named sequence.
type Composition struct {
	Name   string
	Length int
	Counts Counts
}

// Count returns the number of A, T, G and C letters in s.
func Count(s dna.Sequence) Counts {
	var c Counts
	text := s.String()
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case 'A':
			c.A++
		case 'T':
			c.T++
		case 'G':
			c.G++
		case 'C':
			c.C++
		}
	}
	return c
}

// Of returns the composition of s. s must have been validated against
// dna.Strict.
func Of(s dna.Sequence) (Composition, error) {
	if s.Alphabet() != dna.Strict {
		return Composition{}, ErrNotStrict
	}
	return Composition{Name: s.Label(), Length: s.Len(), Counts: Count(s)}, nil
}

// Analyze validates text against dna.Strict and returns its composition
// under the given name.
func Analyze(name, text string) (Composition, error) {
	s, err := dna.New(name, text, dna.Strict)
	if err != nil {
		return Composition{}, err
	}
	return Of(s)
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// Frequencies returns the percentage of each base. All frequencies are zero
// for an empty sequence.
func (c Composition) Frequencies() Frequencies {
	return Frequencies{
		A: percent(c.Counts.A, c.Length),
		T: percent(c.Counts.T, c.Length),
		G: percent(c.Counts.G, c.Length),
		C: percent(c.Counts.C, c.Length),
	}
}

// GC returns the percentage of G and C bases, or zero for an empty sequence.
func (c Composition) GC() float64 { return percent(c.Counts.G+c.Counts.C, c.Length) }

// AT returns the percentage of A and T bases, or zero for an empty sequence.
func (c Composition) AT() float64 { return percent(c.Counts.A+c.Counts.T, c.Length) }

// Report returns a human readable summary of the composition.
func (c Composition) Report() string {
	name := c.Name
	if name == "" {
		name = "<unnamed>"
	}
	f := c.Frequencies()
	var b strings.Builder
	fmt.Fprintf(&b, "=== Nucleotide Analysis Report: %s ===\n", name)
	fmt.Fprintf(&b, "Length : %d\n", c.Length)
	fmt.Fprintf(&b, "Counts : A=%d  T=%d  G=%d  C=%d\n", c.Counts.A, c.Counts.T, c.Counts.G, c.Counts.C)
	fmt.Fprintf(&b, "Freq %% : A=%.2f%%  T=%.2f%%  G=%.2f%%  C=%.2f%%\n", f.A, f.T, f.G, f.C)
	fmt.Fprintf(&b, "GC%%    : %.2f%%\n", c.GC())
	fmt.Fprintf(&b, "AT%%    : %.2f%%", c.AT())
	return b.String()
}

// Difference is the difference in composition between two sequences, a-b.
// Frequencies and GC are in percentage points. L1 is the sum of the absolute
// per-base frequency differences.
type Difference struct {
	Frequencies Frequencies
	GC          float64
	L1          float64
}

// Compare returns the composition of a relative to b. The L1 distance is
// symmetric in its arguments.
func Compare(a, b Composition) Difference {
	fa, fb := a.Frequencies().values(), b.Frequencies().values()
	d := floats.SubTo(make([]float64, len(fa)), fa, fb)
	return Difference{
		Frequencies: Frequencies{A: d[0], T: d[1], G: d[2], C: d[3]},
		GC:          a.GC() - b.GC(),
		L1:          floats.Distance(fa, fb, 1),
	}
}
