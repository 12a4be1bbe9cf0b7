// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"io"
	"os"

	"github.com/jba/huff"
	"github.com/jba/huff/internal/compare"
	"github.com/jba/huff/internal/pathcheck"
	"github.com/jba/huff/internal/report"
)

func (a *app) stats(args []string) error {
	fs := a.newFlagSet("stats")
	format := fs.String("format", "", "output format: text, json, yaml, cbor (default from config)")
	noRef := fs.Bool("no-reference", false, "skip the zstd and lz4 comparison")
	args, err := a.setup(fs, args)
	if err != nil {
		return err
	}
	in, err := oneArg("stats", args)
	if err != nil {
		return err
	}
	if *format == "" {
		*format = a.cfg.ReportFormat
	}
	if _, err := pathcheck.Input(in, 0); err != nil {
		return err
	}
	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	r, err := buildReport(in, data, !*noRef)
	if err != nil {
		return err
	}
	return r.Write(a.stdout, *format)
}

func buildReport(name string, data []byte, reference bool) (*report.Report, error) {
	var c huff.Counter
	c.Write(data)
	entries, err := c.Histogram().Entries()
	if err != nil {
		return nil, err
	}
	code, err := huff.NewCode(entries)
	if err != nil {
		return nil, err
	}
	st, err := huff.Compress(io.Discard, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	r := report.New(name, st, &huff.Header{Entries: entries}, code)
	if reference {
		r.Reference, err = compare.All(data)
		if err != nil {
			return nil, err
		}
	}
	return r, nil
}
