// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package prompt asks line-oriented questions on a terminal, repeating each
// question until the answer is acceptable.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
)

// IsInteractive reports whether both in and out are terminals.
func IsInteractive(in, out *os.File) bool {
	return term.IsTerminal(int(in.Fd())) && term.IsTerminal(int(out.Fd()))
}

// A Prompter reads answers from one stream and writes questions to another.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes question and returns the next line of input with surrounding
// space removed. It returns io.EOF if the input ends before a line does.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Choose asks question until the answer is one of options.
func (p *Prompter) Choose(question string, options ...string) (string, error) {
	for {
		ans, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if slices.Contains(options, ans) {
			return ans, nil
		}
		fmt.Fprintf(p.out, "Invalid option. Please enter %s.\n", quoteList(options))
	}
}

// AskValid asks question until valid accepts the answer, printing each
// rejection.
func (p *Prompter) AskValid(question string, valid func(string) error) (string, error) {
	for {
		ans, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if ans == "" {
			continue
		}
		if err := valid(ans); err != nil {
			fmt.Fprintf(p.out, "Invalid path: %v\n", err)
			continue
		}
		return ans, nil
	}
}

func quoteList(options []string) string {
	q := make([]string, len(options))
	for i, o := range options {
		q[i] = "'" + o + "'"
	}
	if len(q) <= 1 {
		return strings.Join(q, "")
	}
	return strings.Join(q[:len(q)-1], ", ") + " or " + q[len(q)-1]
}
