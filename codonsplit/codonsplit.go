// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// codonsplit cleans the sequences of a multi-FASTA file, keeping only
// A, T, G and C, and splits each cleaned sequence into codons.
//
// Each output line holds the sequence id, the codons separated by spaces
// and the leftover letters that did not fill a codon:
//  id<TAB>ATG CAT<TAB>G
// The reading frame is chosen with -frame, which skips 0, 1 or 2 leading
// letters. With -drop=false a short final codon is kept in the codon list
// and the leftover column is empty. With -merge all sequences are cleaned
// and joined in file order before splitting. The cleaned sequences may be
// written as FASTA with -out.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/biogo/nucleic/clean"
)

var (
	inf   = flag.String("in", "", "input FASTA file name. Defaults to stdin.")
	outf  = flag.String("out", "", "output file name for cleaned sequences.")
	frame = flag.Int("frame", 0, "reading frame offset (0, 1 or 2).")
	drop  = flag.Bool("drop", true, "report incomplete trailing codons separately.")
	merge = flag.Bool("merge", false, "merge all sequences before splitting.")
	help  = flag.Bool("help", false, "help prints this message.")
)

type record struct {
	id, seq string
}

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	err := clean.CheckFrame(*frame)
	if err != nil {
		log.Fatal(err)
	}

	var (
		in *os.File
		r  *fasta.Reader
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

	var recs []record
	sc := seqio.NewScanner(r)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		recs = append(recs, record{id: s.ID, seq: string(alphabet.LettersToBytes(s.Seq))})
	}
	err = sc.Error()
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}

	if *merge {
		frags := make([]string, len(recs))
		for i, rec := range recs {
			frags[i] = rec.seq
		}
		recs = []record{{id: "merged", seq: clean.Merge(frags)}}
	} else {
		for i := range recs {
			recs[i].seq = clean.Clean(recs[i].seq)
		}
	}

	var (
		out *os.File
		w   *fasta.Writer
	)
	if *outf != "" {
		if out, err = os.Create(*outf); err != nil {
			log.Fatalf("failed to create %q: %v", *outf, err)
		}
		defer out.Close()
		w = fasta.NewWriter(out, 60)
	}

	for _, rec := range recs {
		var (
			codons   []string
			leftover string
		)
		codons, leftover, err = clean.SplitCodons(rec.seq, *frame, *drop)
		if err != nil {
			log.Fatalf("failed to split %q: %v", rec.id, err)
		}
		fmt.Printf("%s\t%s\t%s\n", rec.id, strings.Join(codons, " "), leftover)
		if w == nil {
			continue
		}
		_, err = w.Write(linear.NewSeq(rec.id, alphabet.BytesToLetters([]byte(rec.seq)), alphabet.DNA))
		if err != nil {
			log.Fatalf("failed to write sequence %q: %v", rec.id, err)
		}
	}
}
