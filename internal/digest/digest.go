// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package digest computes BLAKE3 content digests, used to confirm that a
// compressed file decompresses to exactly its original bytes.
package digest

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// A Digest is a 32-byte BLAKE3 hash.
type Digest [32]byte

// Of returns the digest of data.
func Of(data []byte) Digest {
	return Digest(blake3.Sum256(data))
}

// Reader streams r through the hash and returns its digest and length.
func Reader(r io.Reader) (Digest, int64, error) {
	h := blake3.New()
	n, err := io.Copy(h, r)
	if err != nil {
		return Digest{}, n, err
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d, n, nil
}

// File returns the digest of the file at path.
func File(path string) (Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Digest{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer f.Close()
	d, _, err := Reader(f)
	if err != nil {
		return Digest{}, fmt.Errorf("hashing %s: %w", path, err)
	}
	return d, nil
}

// A Writer is an io.Writer that hashes everything written to it.
type Writer struct {
	h *blake3.Hasher
	n int64
}

func NewWriter() *Writer { return &Writer{h: blake3.New()} }

func (w *Writer) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return w.h.Write(p)
}

// Sum returns the digest of the bytes written so far.
func (w *Writer) Sum() Digest {
	var d Digest
	copy(d[:], w.h.Sum(nil))
	return d
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int64 { return w.n }

// String returns the hex encoding of d.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Parse parses a hex-encoded digest.
func Parse(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("parsing digest: %w", err)
	}
	if len(b) != len(d) {
		return d, fmt.Errorf("digest is %d bytes, want %d", len(b), len(d))
	}
	copy(d[:], b)
	return d, nil
}
