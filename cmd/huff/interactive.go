// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/jba/huff/internal/pathcheck"
	"github.com/jba/huff/internal/prompt"
)

func (a *app) interactiveCmd(args []string) error {
	fs := a.newFlagSet("interactive")
	args, err := a.setup(fs, args)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		return usagef("interactive: unexpected argument %q", args[0])
	}

	p := prompt.New(a.stdin, a.stdout)
	fmt.Fprintln(a.stdout, "Huffman File Compression")
	fmt.Fprintln(a.stdout, "------------------------")
	op, err := p.Choose("Enter operation (c for compress, d for decompress): ", "c", "d")
	if err != nil {
		return promptErr(err)
	}
	in, err := p.AskValid("Enter input file path: ", func(path string) error {
		_, err := pathcheck.Input(path, 0)
		return err
	})
	if err != nil {
		return promptErr(err)
	}
	out, err := p.AskValid("Enter output file path: ", func(path string) error {
		if pathcheck.SameFile(in, path) {
			return errors.New("output would overwrite the input")
		}
		return pathcheck.Output(path)
	})
	if err != nil {
		return promptErr(err)
	}
	if op == "c" {
		return a.compressFile(in, out)
	}
	return a.decompressFile(in, out)
}

func promptErr(err error) error {
	if errors.Is(err, io.EOF) {
		return errors.New("input ended before all questions were answered")
	}
	return err
}
