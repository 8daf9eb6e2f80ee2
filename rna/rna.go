// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rna transcribes DNA sequences to RNA and writes the transcripts, 5'->3',
// as FASTA. Input is a multi-FASTA file (default stdin) or a comma
// separated list given with -seqs.
//
// With -strand=template the input is taken to be the template strand,
// given 5'->3' or 3'->5' according to -orient. Any invalid sequence aborts
// the run before output is written.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/nucleic/dna"
	"github.com/biogo/nucleic/transcribe"
)

var (
	inf    = flag.String("in", "", "input FASTA file name. Defaults to stdin.")
	seqs   = flag.String("seqs", "", "comma separated sequences to transcribe instead of -in.")
	outf   = flag.String("out", "", "output file name. Defaults to stdout.")
	strand = flag.String("strand", "coding", "strand of the input: coding or template.")
	orient = flag.String("orient", "5to3", "orientation of a template strand: 5to3 or 3to5.")
	help   = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	st, err := dna.ParseStrand(*strand)
	if err != nil {
		log.Fatal(err)
	}
	o, err := dna.ParseOrientation(*orient)
	if err != nil {
		log.Fatal(err)
	}

	ids, texts := readInput()
	rna, err := transcribe.Batch(texts, st, o)
	if err != nil {
		var be *dna.BatchError
		if errors.As(err, &be) {
			log.Fatalf("failed to transcribe %q: %v", ids[be.Index], be.Err)
		}
		log.Fatalf("failed to transcribe: %v", err)
	}

	var out *os.File
	if *outf == "" {
		out = os.Stdout
	} else if out, err = os.Create(*outf); err != nil {
		log.Fatalf("failed to open %q: %v", *outf, err)
	}
	defer out.Close()

	w := fasta.NewWriter(out, 60)
	for i, r := range rna {
		s := linear.NewSeq(ids[i], alphabet.BytesToLetters([]byte(r)), alphabet.RNA)
		_, err := w.Write(s)
		if err != nil {
			log.Fatalf("failed to write sequence %q: %v", s.Name(), err)
		}
	}
}

// readInput returns the ids and letters of the non-blank input sequences.
func readInput() (ids, texts []string) {
	if *seqs != "" {
		for i, s := range strings.Split(*seqs, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			ids = append(ids, fmt.Sprintf("seq%d", i+1))
			texts = append(texts, s)
		}
		return ids, texts
	}

	var (
		in  *os.File
		r   *fasta.Reader
		err error
	)
	t := linear.NewSeq("", nil, alphabet.DNAredundant)
	if *inf == "" {
		r = fasta.NewReader(os.Stdin, t)
	} else if in, err = os.Open(*inf); err != nil {
		log.Fatalf("failed to open %q: %v", *inf, err)
	} else {
		defer in.Close()
		r = fasta.NewReader(in, t)
	}
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		text := strings.TrimSpace(string(alphabet.LettersToBytes(s.Seq)))
		if text == "" {
			fmt.Fprintf(os.Stderr, "skipping empty sequence %q\n", s.ID)
			continue
		}
		ids = append(ids, s.ID)
		texts = append(texts, text)
	}
	err = sc.Error()
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	return ids, texts
}
