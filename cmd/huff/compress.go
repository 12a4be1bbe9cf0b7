// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/jba/huff"
	"github.com/jba/huff/internal/pathcheck"
)

func (a *app) compress(args []string) error {
	return a.codecCommand("compress", args, a.compressFile, func(in string) string {
		return in + a.cfg.OutputSuffix
	})
}

func (a *app) decompress(args []string) error {
	return a.codecCommand("decompress", args, a.decompressFile, func(in string) string {
		if out, ok := strings.CutSuffix(in, a.cfg.OutputSuffix); ok && out != "" {
			return out
		}
		return in + ".out"
	})
}

func (a *app) codecCommand(name string, args []string, do func(in, out string) error, defaultOutput func(string) string) error {
	fs := a.newFlagSet(name)
	output := fs.StringP("output", "o", "", "output file (default derived from the input name)")
	force := fs.BoolP("force", "f", false, "overwrite an existing output file")
	args, err := a.setup(fs, args)
	if err != nil {
		return err
	}
	in, err := oneArg(name, args)
	if err != nil {
		return err
	}
	out := *output
	if out == "" {
		out = defaultOutput(in)
	}
	if !*force {
		if _, err := os.Stat(out); err == nil {
			return fmt.Errorf("%s exists (use --force to overwrite)", out)
		}
	}
	return do(in, out)
}

// checkPaths validates the input and output of a compress or decompress
// and logs a warning for a large input.
func (a *app) checkPaths(in, out string) (*pathcheck.InputInfo, error) {
	info, err := pathcheck.Input(in, a.cfg.LargeFileWarning)
	if err != nil {
		return nil, err
	}
	if info.Large {
		a.logger.Warn("large input; this may take a while", "file", in, "size", humanize.IBytes(uint64(info.Size)))
	}
	if err := pathcheck.Output(out); err != nil {
		return nil, err
	}
	if pathcheck.SameFile(in, out) {
		return nil, fmt.Errorf("input and output are the same file: %s", in)
	}
	return info, nil
}

func (a *app) compressFile(in, out string) error {
	if _, err := a.checkPaths(in, out); err != nil {
		return err
	}
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	a.logger.Debug("compressing", "input", in, "output", out)
	st, err := huff.Compress(dst, src, a.progress(in))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("compressing %s: %w", in, err)
	}
	a.logger.Info("compressed",
		"input", in,
		"output", out,
		"symbols", st.Symbols,
		"original", st.Original,
		"header", st.HeaderSize,
		"data", st.DataSize,
		"compressed", st.Compressed(),
		"savings", fmt.Sprintf("%.2f%%", st.Savings()*100))
	return nil
}

func (a *app) decompressFile(in, out string) error {
	if _, err := a.checkPaths(in, out); err != nil {
		return err
	}
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(out)
	if err != nil {
		return err
	}
	a.logger.Debug("decompressing", "input", in, "output", out)
	st, err := huff.Decompress(dst, src, a.progress(in))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		var se *huff.StageError
		if errors.As(err, &se) && se.Stage == huff.StageDecode {
			a.logger.Warn("partial output left in place", "output", out)
		}
		return fmt.Errorf("decompressing %s: %w", in, err)
	}
	a.logger.Info("decompressed",
		"input", in,
		"output", out,
		"symbols", st.Symbols,
		"size", st.Original)
	return nil
}
