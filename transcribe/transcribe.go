// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package transcribe converts strict DNA sequences to RNA.
//
// A coding strand read 5'->3' is the transcript with T in place of U. A
// template strand is first paired to its coding strand: by reverse
// complement when it is given 5'->3', and by complement alone when it is
// given 3'->5'. The returned RNA is always 5'->3'.
package transcribe

import (
	"strings"

	"github.com/biogo/nucleic/dna"
	"github.com/biogo/nucleic/revcomp"
)

// ToRNA replaces every T in s with U. It does not validate its input.
func ToRNA(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'T' {
			return 'U'
		}
		return r
	}, s)
}

// codingStrand returns the transform taking a strand to the coding strand
// read 5'->3'. The orientation is only consulted for the template strand.
func codingStrand(strand dna.Strand, orient dna.Orientation) (revcomp.Transform, bool, error) {
	if err := strand.Check(); err != nil {
		return revcomp.Transform{}, false, err
	}
	if strand == dna.Coding {
		return revcomp.Transform{}, false, nil
	}
	if err := orient.Check("template_orientation"); err != nil {
		return revcomp.Transform{}, false, err
	}
	if orient == dna.FiveToThree {
		return revcomp.Transform{Op: revcomp.RevComp}, true, nil
	}
	return revcomp.Transform{Op: revcomp.Comp}, true, nil
}

// Sequence transcribes a validated sequence. s must have been validated
// against dna.Strict.
func Sequence(s dna.Sequence, strand dna.Strand, orient dna.Orientation) (string, error) {
	t, pair, err := codingStrand(strand, orient)
	if err != nil {
		return "", err
	}
	if !pair {
		return ToRNA(s.String()), nil
	}
	coding, err := revcomp.Apply(s, t)
	if err != nil {
		return "", err
	}
	return ToRNA(coding), nil
}

// Transcribe validates text against the strict DNA alphabet and returns the
// RNA transcribed from it. orient describes how a template strand is given
// and is ignored for the coding strand.
func Transcribe(text string, strand dna.Strand, orient dna.Orientation) (string, error) {
	s, err := dna.Validate(text, dna.Strict)
	if err != nil {
		return "", err
	}
	return Sequence(s, strand, orient)
}

// Batch transcribes each non-blank item of seqs after trimming surrounding
// white space, returning the transcripts in input order. The first failure
// aborts the batch; no transcripts are returned and the error is a
// *dna.BatchError wrapping the item's error.
func Batch(seqs []string, strand dna.Strand, orient dna.Orientation) ([]string, error) {
	if _, _, err := codingStrand(strand, orient); err != nil {
		return nil, err
	}
	var rna []string
	for i, raw := range seqs {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		r, err := Transcribe(text, strand, orient)
		if err != nil {
			return nil, &dna.BatchError{Index: i, Item: text, Err: err}
		}
		rna = append(rna, r)
	}
	return rna, nil
}
