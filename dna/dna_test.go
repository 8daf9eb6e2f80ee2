// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dna

import (
	"errors"
	"fmt"
	"testing"

	"github.com/biogo/biogo/alphabet"
	"gopkg.in/check.v1"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestValidate(c *check.C) {
	for i, t := range []struct {
		in    string
		alpha *Alphabet
		want  string
		pos   []int
		chars []rune
	}{
		{in: "", alpha: Strict, want: ""},
		{in: "atgca", alpha: Strict, want: "ATGCA"},
		{in: "ATGC", alpha: IUPAC, want: "ATGC"},
		{in: "atgcrysWKMbdhvn", alpha: IUPAC, want: "ATGCRYSWKMBDHVN"},
		{in: "ATN-X", alpha: Strict, pos: []int{3, 4, 5}, chars: []rune{'N', '-', 'X'}},
		{in: "ATN-X", alpha: IUPAC, pos: []int{4, 5}, chars: []rune{'-', 'X'}},
		{in: "acgu", alpha: Strict, pos: []int{4}, chars: []rune{'U'}},
		{in: "a t", alpha: Strict, pos: []int{2}, chars: []rune{' '}},
		{in: "Aé\nT", alpha: IUPAC, pos: []int{2, 3}, chars: []rune{'É', '\n'}},
	} {
		got, err := Validate(t.in, t.alpha)
		if t.pos == nil {
			c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
			c.Check(got.String(), check.Equals, t.want, check.Commentf("Test %d", i))
			c.Check(got.Alphabet(), check.Equals, t.alpha)
			c.Check(got.Len(), check.Equals, len(t.want))
			continue
		}
		var ae *AlphabetError
		c.Assert(errors.As(err, &ae), check.Equals, true, check.Commentf("Test %d: %v", i, err))
		c.Check(ae.Positions, check.DeepEquals, t.pos, check.Commentf("Test %d", i))
		c.Check(ae.Chars, check.DeepEquals, t.chars, check.Commentf("Test %d", i))
		c.Check(ae.Alphabet, check.Equals, t.alpha)
		c.Check(got, check.DeepEquals, Sequence{})
	}
}

func (s *S) TestAlphabetErrorMessage(c *check.C) {
	_, err := Validate("ATN-X", Strict)
	c.Check(err, check.ErrorMatches, `dna: invalid strict symbols at positions \[3 4 5\] -> \['N' '-' 'X'\]; allowed: A,T,G,C`)
}

func (s *S) TestLabelAndLinear(c *check.C) {
	sq, err := New("seq1", "acgtn", IUPAC)
	c.Assert(err, check.Equals, nil)
	c.Check(sq.Label(), check.Equals, "seq1")

	l := sq.Linear()
	c.Check(l.ID, check.Equals, "seq1")
	c.Check(l.Len(), check.Equals, 5)
	c.Check(string(alphabet.LettersToBytes(l.Seq)), check.Equals, "ACGTN")

	l.Seq[0] = 'T'
	c.Check(sq.String(), check.Equals, "ACGTN", check.Commentf("linear copy must not alias sequence"))
}

func (s *S) TestAlphabetMembership(c *check.C) {
	for _, r := range "ATGC" {
		c.Check(Strict.IsValid(r), check.Equals, true)
	}
	for _, r := range "RYSWKMBDHVN" {
		c.Check(Strict.IsValid(r), check.Equals, false, check.Commentf("%q", r))
		c.Check(IUPAC.IsValid(r), check.Equals, true, check.Commentf("%q", r))
	}
	for _, r := range "atgc-U* 0" {
		c.Check(IUPAC.IsValid(r), check.Equals, false, check.Commentf("%q", r))
	}
	c.Check(IUPAC.IsValid('☃'), check.Equals, false)
	c.Check(len(IUPAC.Letters()), check.Equals, 15)
}

func (s *S) TestParseParameters(c *check.C) {
	o, err := ParseOrientation("3to5")
	c.Check(err, check.Equals, nil)
	c.Check(o, check.Equals, ThreeToFive)
	o, err = ParseOrientation("5to3")
	c.Check(err, check.Equals, nil)
	c.Check(o, check.Equals, FiveToThree)

	st, err := ParseStrand("template")
	c.Check(err, check.Equals, nil)
	c.Check(st, check.Equals, Template)
	st, err = ParseStrand("coding")
	c.Check(err, check.Equals, nil)
	c.Check(st, check.Equals, Coding)

	for _, bad := range []struct {
		parse func() error
		name  string
		value string
	}{
		{func() error { _, err := ParseOrientation("5'->3'"); return err }, "orientation", "5'->3'"},
		{func() error { _, err := ParseStrand("sense"); return err }, "strand", "sense"},
		{func() error { return Orientation(2).Check("output_orientation") }, "output_orientation", "Orientation(2)"},
		{func() error { return Strand(-1).Check() }, "strand", "Strand(-1)"},
		{func() error { _, err := Validate("ACGT", nil); return err }, "alphabet", "<nil>"},
	} {
		var pe *ParameterError
		err := bad.parse()
		c.Assert(errors.As(err, &pe), check.Equals, true, check.Commentf("%v", err))
		c.Check(pe.Name, check.Equals, bad.name)
		c.Check(pe.Value, check.Equals, bad.value)
	}
	c.Check(FiveToThree.Check("input_orientation"), check.Equals, nil)
	c.Check(Template.Check(), check.Equals, nil)
}

func (s *S) TestBatchErrorUnwrap(c *check.C) {
	_, inner := Validate("AXG", Strict)
	err := error(&BatchError{Index: 2, Item: "AXG", Err: inner})
	var ae *AlphabetError
	c.Assert(errors.As(err, &ae), check.Equals, true)
	c.Check(ae.Positions, check.DeepEquals, []int{2})
	c.Check(err, check.ErrorMatches, fmt.Sprintf(`batch item 2 \("AXG"\): %s`, `dna: invalid strict .*`))
}
