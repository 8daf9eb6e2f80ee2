// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package clean

import (
	"errors"
	"strings"
	"testing"

	"gopkg.in/check.v1"

	"github.com/biogo/nucleic/dna"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestClean(c *check.C) {
	for i, t := range []struct {
		in, want string
	}{
		{"", ""},
		{"atg cAx\n---tgtN", "ATGCATGT"},
		{"ACGT", "ACGT"},
		{"RYSWKMBDHVN 123\t", ""},
		{"aCgTu", "ACGT"},
	} {
		c.Check(Clean(t.in), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestCase(c *check.C) {
	c.Check(Upper("acgT"), check.Equals, "ACGT")
	c.Check(Lower("ACGt"), check.Equals, "acgt")
}

func (s *S) TestMerge(c *check.C) {
	c.Check(Merge([]string{"ATG", " caa-tt", "g"}), check.Equals, "ATGCAATTG")
	c.Check(Merge(nil), check.Equals, "")
	c.Check(Merge([]string{"a", "", "N", "c"}), check.Equals, "AC")
}

func (s *S) TestSplitCodons(c *check.C) {
	for i, t := range []struct {
		in       string
		frame    int
		drop     bool
		codons   []string
		leftover string
	}{
		{"ATGCATG", 0, true, []string{"ATG", "CAT"}, "G"},
		{"ATGCATG", 0, false, []string{"ATG", "CAT", "G"}, ""},
		{"ATGCATG", 1, true, []string{"TGC", "ATG"}, ""},
		{"ATGCATG", 2, true, []string{"GCA"}, "TG"},
		{"ATGCATG", 2, false, []string{"GCA", "TG"}, ""},
		{"ATGCAT", 0, false, []string{"ATG", "CAT"}, ""},
		{"", 0, true, []string{}, ""},
		{"AT", 0, true, []string{}, "AT"},
		{"A", 2, true, []string{}, ""},
		{"AT", 2, false, []string{}, ""},
	} {
		codons, leftover, err := SplitCodons(t.in, t.frame, t.drop)
		c.Assert(err, check.Equals, nil, check.Commentf("Test %d", i))
		c.Check(codons, check.DeepEquals, t.codons, check.Commentf("Test %d", i))
		c.Check(leftover, check.Equals, t.leftover, check.Commentf("Test %d", i))
	}
}

func (s *S) TestSplitReassembles(c *check.C) {
	in := Clean("atgcc gtaaa tgcaT")
	for frame := 0; frame < 3; frame++ {
		codons, leftover, err := SplitCodons(in, frame, true)
		c.Assert(err, check.Equals, nil)
		c.Check(in[:frame]+strings.Join(codons, "")+leftover, check.Equals, in, check.Commentf("frame %d", frame))
		for _, cod := range codons {
			c.Check(cod, check.HasLen, 3)
		}
		c.Check(len(leftover) < 3, check.Equals, true)
	}
}

func (s *S) TestSplitCodonsFrame(c *check.C) {
	for _, frame := range []int{-1, 3, 10} {
		codons, leftover, err := SplitCodons("ATGCATG", frame, true)
		var pe *dna.ParameterError
		c.Assert(errors.As(err, &pe), check.Equals, true, check.Commentf("frame %d", frame))
		c.Check(pe.Name, check.Equals, "frame")
		c.Check(codons, check.IsNil)
		c.Check(leftover, check.Equals, "")
		c.Check(CheckFrame(frame), check.NotNil, check.Commentf("frame %d", frame))
	}
	for frame := 0; frame < 3; frame++ {
		c.Check(CheckFrame(frame), check.Equals, nil, check.Commentf("frame %d", frame))
	}
}
