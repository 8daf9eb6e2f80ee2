// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// nucstats prints the nucleotide composition of each sequence in a
// multi-FASTA DNA file (default stdin): length, A/T/G/C counts and
// frequencies, GC% and AT%, followed by the mean and standard deviation
// of GC% over all sequences.
//
// Sequences holding anything other than A, T, G and C are reported and
// skipped. With -ref, every other sequence is compared against the named
// reference. With -stream, the input is tallied as raw text without
// validation or per-sequence reporting.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/nucleic/composition"
)

var (
	inf    = flag.String("in", "", "input FASTA file, defaults to stdin")
	ref    = flag.String("ref", "", "id of a reference sequence to compare all others against")
	plotf  = flag.String("plot", "", "write a bar chart of mean base frequencies to this file")
	stream = flag.Bool("stream", false, "tally A/T/G/C over the raw input without validation")
	help   = flag.Bool("help", false, "help prints this message")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}

	in := os.Stdin
	name := "stdin"
	if *inf != "" {
		var err error
		in, err = os.Open(*inf)
		if err != nil {
			log.Fatalf("failed to open %q: %v", *inf, err)
		}
		defer in.Close()
		name = strings.Split(path.Base(*inf), ".")[0]
	}

	if *stream {
		counts, err := composition.CountReader(in)
		if err != nil {
			log.Fatalf("failed during read: %v", err)
		}
		c := composition.Composition{Name: name, Length: counts.Total(), Counts: counts}
		fmt.Println(c.Report())
		return
	}

	var comps []composition.Composition
	sc := seqio.NewScanner(fasta.NewReader(in, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		c, err := composition.Analyze(s.ID, string(alphabet.LettersToBytes(s.Seq)))
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", s.ID, err)
			continue
		}
		comps = append(comps, c)
		fmt.Printf("%s\n\n", c.Report())
	}
	err := sc.Error()
	if err != nil {
		log.Fatalf("failed during read: %v", err)
	}
	if len(comps) == 0 {
		fmt.Fprintln(os.Stderr, "No valid sequences.")
		return
	}

	gc := make([]float64, len(comps))
	for i, c := range comps {
		gc[i] = c.GC()
	}
	mean, std := stat.MeanStdDev(gc, nil)
	if len(gc) == 1 {
		std = 0
	}
	fmt.Printf("%s: %d sequences, GC%% mean=%.2f sd=%.2f\n", name, len(comps), mean, std)

	if *ref != "" {
		compareAll(comps, *ref)
	}
	if *plotf != "" {
		err = plotFrequencies(*plotf, comps)
		if err != nil {
			log.Fatalf("failed to plot %q: %v", *plotf, err)
		}
	}
}

func compareAll(comps []composition.Composition, id string) {
	var (
		r     composition.Composition
		found bool
	)
	for _, c := range comps {
		if c.Name == id {
			r, found = c, true
			break
		}
	}
	if !found {
		log.Fatalf("reference %q not found", id)
	}
	fmt.Printf("\n=== Composition differences (seq - %s) ===\n", id)
	for _, c := range comps {
		if c.Name == id {
			continue
		}
		d := composition.Compare(c, r)
		f := d.Frequencies
		fmt.Printf("%s\tdA=%.2f\tdT=%.2f\tdG=%.2f\tdC=%.2f\tdGC=%.2f\tL1=%.2f\n",
			c.Name, f.A, f.T, f.G, f.C, d.GC, d.L1)
	}
}

// plotFrequencies writes a bar chart of the per-base frequencies averaged
// over comps. The image format is chosen by the file extension.
func plotFrequencies(file string, comps []composition.Composition) error {
	cols := make([][]float64, 4)
	for _, c := range comps {
		f := c.Frequencies()
		for i, v := range []float64{f.A, f.T, f.G, f.C} {
			cols[i] = append(cols[i], v)
		}
	}
	vals := make(plotter.Values, len(cols))
	for i, col := range cols {
		vals[i] = stat.Mean(col, nil)
	}

	p := plot.New()
	p.Title.Text = "Mean base composition"
	p.Y.Label.Text = "Frequency (%)"
	bars, err := plotter.NewBarChart(vals, vg.Points(30))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX("A", "T", "G", "C")
	return p.Save(4*vg.Inch, 3*vg.Inch, file)
}
