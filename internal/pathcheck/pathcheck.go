// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package pathcheck validates the files handed to the huff command before
// any work starts.
package pathcheck

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// ErrEmpty is returned by [Input] for a zero-length file.
var ErrEmpty = errors.New("file is empty")

// An InputInfo describes a validated input file.
type InputInfo struct {
	Path string
	Size int64
	// Large is set when Size exceeds the threshold passed to [Input].
	Large bool
}

// Input checks that path names a readable, non-empty regular file.
// A file larger than largeThreshold bytes is accepted but marked Large;
// a threshold of zero never marks a file.
func Input(path string, largeThreshold int64) (*InputInfo, error) {
	if err := unix.Access(path, unix.R_OK); err != nil {
		return nil, fmt.Errorf("unable to read input file %q: %w", path, err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%q is not a regular file", path)
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("%q: %w", path, ErrEmpty)
	}
	return &InputInfo{
		Path:  path,
		Size:  fi.Size(),
		Large: largeThreshold > 0 && fi.Size() > largeThreshold,
	}, nil
}

// Output checks that a file can be created at path: its directory must be
// writable, and path must not name a directory.
func Output(path string) error {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return fmt.Errorf("%q is a directory", path)
	}
	dir := filepath.Dir(path)
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return fmt.Errorf("unable to write to directory %q: %w", dir, err)
	}
	return nil
}

// SameFile reports whether a and b name the same existing file.
func SameFile(a, b string) bool {
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}
