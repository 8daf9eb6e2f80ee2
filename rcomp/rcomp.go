// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// rcomp writes the complement or reverse complement of IUPAC DNA sequences
// as FASTA. Input is a multi-FASTA file (default stdin) or a comma separated
// list given with -seqs.
//
// -from gives the orientation the input is written in and -to the
// orientation wanted for the output. Any invalid sequence aborts the run
// before output is written.
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
	"github.com/biogo/nucleic/revcomp"
)

var (
	inf  = flag.String("in", "", "input FASTA file name. Defaults to stdin.")
	seqs = flag.String("seqs", "", "comma separated sequences to use instead of -in.")
	outf = flag.String("out", "", "output file name. Defaults to stdout.")
	op   = flag.String("op", "revcomp", "operation: comp or revcomp.")
	from = flag.String("from", "5to3", "input orientation: 5to3 or 3to5.")
	to   = flag.String("to", "5to3", "output orientation: 5to3 or 3to5.")
	help = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	o, err := revcomp.ParseOp(*op)
	if err != nil {
		log.Fatal(err)
	}
	in, err := dna.ParseOrientation(*from)
	if err != nil {
		log.Fatal(err)
	}
	out, err := dna.ParseOrientation(*to)
	if err != nil {
		log.Fatal(err)
	}

	ids, texts := readInput()
	res, err := revcomp.Batch(texts, o, in, out)
	if err != nil {
		var be *dna.BatchError
		if errors.As(err, &be) {
			log.Fatalf("failed to %s %q: %v", o, ids[be.Index], be.Err)
		}
		log.Fatalf("failed to %s: %v", o, err)
	}

	var f *os.File
	if *outf == "" {
		f = os.Stdout
	} else if f, err = os.Create(*outf); err != nil {
		log.Fatalf("failed to open %q: %v", *outf, err)
	}
	defer f.Close()

	w := fasta.NewWriter(f, 60)
	for i, r := range res {
		s := linear.NewSeq(ids[i], alphabet.BytesToLetters([]byte(r)), alphabet.DNAredundant)
		s.Desc = fmt.Sprintf("%s %s->%s", o, in, out)
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
