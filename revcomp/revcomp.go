// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package revcomp computes complements and reverse complements of IUPAC DNA
// sequences with explicit control of input and output orientation.
//
// Pairing follows the IUPAC convention: A-T, G-C, R-Y, S-S, W-W, K-M, B-V,
// D-H and N-N. Every pairing is its own inverse, so ReverseComplement is an
// involution.
package revcomp

import (
	"strconv"
	"strings"

	"github.com/biogo/biogo/alphabet"

	"github.com/biogo/nucleic/dna"
)

// Op is a complementing operation.
type Op int

const (
	Comp    Op = iota // complement, letter order unchanged
	RevComp           // complement followed by reversal
)

var opNames = []string{"comp", "revcomp"}

// ParseOp returns the Op named by s, "comp" or "revcomp".
func ParseOp(s string) (Op, error) {
	for i, n := range opNames {
		if s == n {
			return Op(i), nil
		}
	}
	return 0, &dna.ParameterError{Name: "op", Value: s, Allowed: opNames}
}

func (o Op) String() string {
	if o == Comp || o == RevComp {
		return opNames[o]
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Transform is a complementing operation applied to a sequence read in the
// In orientation and reported in the Out orientation.
type Transform struct {
	Op  Op
	In  dna.Orientation
	Out dna.Orientation
}

// Validate returns a *dna.ParameterError for the first field of t holding an
// unknown value.
func (t Transform) Validate() error {
	if err := t.In.Check("input_orientation"); err != nil {
		return err
	}
	if t.Op != Comp && t.Op != RevComp {
		return &dna.ParameterError{Name: "op", Value: t.Op.String(), Allowed: opNames}
	}
	return t.Out.Check("output_orientation")
}

// Reverses returns whether applying t reverses the order of letters.
//
// Applying t is three steps: reading a 3'->5' input as 5'->3' reverses,
// RevComp reverses after complementing, and writing a 3'->5' output
// reverses again. Reversal commutes with complementing, so the result is
// the complement, reversed when an odd number of steps reverse.
func (t Transform) Reverses() bool {
	n := 0
	if t.In == dna.ThreeToFive {
		n++
	}
	if t.Op == RevComp {
		n++
	}
	if t.Out == dna.ThreeToFive {
		n++
	}
	return n%2 == 1
}

// Apply returns the letters of s transformed by t. The complement table is
// taken from the alphabet s was validated against.
func Apply(s dna.Sequence, t Transform) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}
	if s.Len() == 0 {
		return "", nil
	}
	ls := s.Linear()
	if t.Reverses() {
		ls.RevComp()
	} else {
		complement(ls.Seq, s.Alphabet().Complementor())
	}
	return string(alphabet.LettersToBytes(ls.Seq)), nil
}

func complement(l alphabet.Letters, comp alphabet.Complementor) {
	table := comp.ComplementTable()
	for i, c := range l {
		l[i] = table[c]
	}
}

// WithOrientations validates text against the IUPAC alphabet and applies op,
// treating text as read in the in orientation and returning the result in
// the out orientation.
func WithOrientations(text string, op Op, in, out dna.Orientation) (string, error) {
	s, err := dna.Validate(text, dna.IUPAC)
	if err != nil {
		return "", err
	}
	return Apply(s, Transform{Op: op, In: in, Out: out})
}

// Complement returns the IUPAC complement of text in the same orientation.
func Complement(text string) (string, error) {
	return WithOrientations(text, Comp, dna.FiveToThree, dna.FiveToThree)
}

// ReverseComplement returns the IUPAC reverse complement of text.
func ReverseComplement(text string) (string, error) {
	return WithOrientations(text, RevComp, dna.FiveToThree, dna.FiveToThree)
}

// Batch applies WithOrientations to each non-blank item of seqs after
// trimming surrounding white space. Results are returned in input order.
// The first failing item aborts the batch; no results are returned and the
// error is a *dna.BatchError wrapping the item's error.
func Batch(seqs []string, op Op, in, out dna.Orientation) ([]string, error) {
	t := Transform{Op: op, In: in, Out: out}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	var res []string
	for i, raw := range seqs {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		s, err := dna.Validate(text, dna.IUPAC)
		if err != nil {
			return nil, &dna.BatchError{Index: i, Item: text, Err: err}
		}
		r, err := Apply(s, t)
		if err != nil {
			return nil, &dna.BatchError{Index: i, Item: text, Err: err}
		}
		res = append(res, r)
	}
	return res, nil
}
