// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jba/huff"
	"github.com/jba/huff/internal/digest"
	"github.com/jba/huff/internal/pathcheck"
)

// verify compresses a file to a temporary file, decompresses that, and
// compares the BLAKE3 digests of the input and the result.
func (a *app) verify(args []string) error {
	fs := a.newFlagSet("verify")
	args, err := a.setup(fs, args)
	if err != nil {
		return err
	}
	in, err := oneArg("verify", args)
	if err != nil {
		return err
	}
	if _, err := pathcheck.Input(in, a.cfg.LargeFileWarning); err != nil {
		return err
	}
	want, err := digest.File(in)
	if err != nil {
		return err
	}

	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()
	tmp, err := os.CreateTemp("", "huff-verify-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	cst, err := huff.Compress(tmp, src, a.progress(in))
	if err != nil {
		return err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return err
	}
	w := digest.NewWriter()
	if _, err := huff.Decompress(w, tmp, a.progress(tmp.Name())); err != nil {
		return err
	}
	got := w.Sum()
	if got != want || w.Len() != cst.Original {
		return fmt.Errorf("%s: round trip mismatch: input %s (%d bytes), output %s (%d bytes)",
			in, want, cst.Original, got, w.Len())
	}
	a.logger.Debug("verified", "file", in, "blake3", want.String(), "compressed", cst.Compressed())
	fmt.Fprintf(a.stdout, "%s  %s  ok\n", want, in)
	return nil
}
