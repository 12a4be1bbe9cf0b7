// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huff

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when asked to compress a source of zero length.
	ErrEmptyInput = errors.New("empty input")

	// ErrCorruptHeader is returned when the alphabet size is out of range,
	// a header field is truncated, or the alphabet lists a symbol twice
	// or with a zero frequency.
	ErrCorruptHeader = errors.New("corrupt header")

	// ErrCorruptStream is returned when the packed bits lead off the code tree.
	ErrCorruptStream = errors.New("corrupt stream")

	// ErrUnexpectedEOF is returned when the packed bits run out before
	// every symbol counted in the header has been decoded.
	ErrUnexpectedEOF = errors.New("unexpected end of compressed stream")

	// ErrFrequencyOverflow is returned when a byte occurs more often
	// than a header frequency field can record.
	ErrFrequencyOverflow = errors.New("symbol frequency exceeds 32 bits")
)

// A StageError records the stage of compression or decompression that failed.
// Use [errors.Is] with the sentinel errors above to classify it.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("huff: %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(s Stage, err error) error {
	if err == nil {
		return nil
	}
	var se *StageError
	if errors.As(err, &se) {
		return err
	}
	return &StageError{Stage: s, Err: err}
}
