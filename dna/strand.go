// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dna

import "strconv"

// Orientation is the direction a sequence string is read relative to the
// molecule's chemical ends.
type Orientation int

const (
	FiveToThree Orientation = iota // 5'->3'
	ThreeToFive                    // 3'->5'
)

var orientationNames = []string{"5to3", "3to5"}

// ParseOrientation returns the Orientation named by s, "5to3" or "3to5".
func ParseOrientation(s string) (Orientation, error) {
	for i, n := range orientationNames {
		if s == n {
			return Orientation(i), nil
		}
	}
	return 0, &ParameterError{Name: "orientation", Value: s, Allowed: orientationNames}
}

// Check returns a *ParameterError naming param if o is not a known
// orientation.
func (o Orientation) Check(param string) error {
	if o == FiveToThree || o == ThreeToFive {
		return nil
	}
	return &ParameterError{Name: param, Value: o.String(), Allowed: orientationNames}
}

func (o Orientation) String() string {
	if o == FiveToThree || o == ThreeToFive {
		return orientationNames[o]
	}
	return "Orientation(" + strconv.Itoa(int(o)) + ")"
}

// Strand selects which strand of a duplex a sequence represents.
type Strand int

const (
	Coding   Strand = iota // sense strand; same letters as the transcript
	Template               // antisense strand read by the polymerase
)

var strandNames = []string{"coding", "template"}

// ParseStrand returns the Strand named by s, "coding" or "template".
func ParseStrand(s string) (Strand, error) {
	for i, n := range strandNames {
		if s == n {
			return Strand(i), nil
		}
	}
	return 0, &ParameterError{Name: "strand", Value: s, Allowed: strandNames}
}

// Check returns a *ParameterError if s is not a known strand.
func (s Strand) Check() error {
	if s == Coding || s == Template {
		return nil
	}
	return &ParameterError{Name: "strand", Value: s.String(), Allowed: strandNames}
}

func (s Strand) String() string {
	if s == Coding || s == Template {
		return strandNames[s]
	}
	return "Strand(" + strconv.Itoa(int(s)) + ")"
}
