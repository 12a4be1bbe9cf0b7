// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huff

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// MaxSymbols is the largest alphabet a header can describe.
const MaxSymbols = 256

const entrySize = 1 + 4

// A Header describes the alphabet of a compressed artifact.
// Entries are in the order they were counted, which is ascending byte order
// for artifacts written by [Compress].
type Header struct {
	Entries []Entry
}

// Total returns the number of symbols encoded after the header.
func (h *Header) Total() uint64 {
	var n uint64
	for _, e := range h.Entries {
		n += uint64(e.Freq)
	}
	return n
}

// Size returns the encoded length of h in bytes.
func (h *Header) Size() int64 {
	return 4 + int64(len(h.Entries))*entrySize
}

// WriteTo writes the encoded header to w.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	if err := checkAlphabet(h.Entries); err != nil {
		return 0, err
	}
	buf := make([]byte, 0, h.Size())
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(h.Entries)))
	for _, e := range h.Entries {
		buf = append(buf, e.Symbol)
		buf = binary.LittleEndian.AppendUint32(buf, e.Freq)
	}
	n, err := w.Write(buf)
	return int64(n), err
}

// ReadHeader reads a header from r. It returns an error wrapping
// [ErrCorruptHeader] if the alphabet size is not in [1, 256], the header
// is truncated, or an entry is invalid.
func ReadHeader(r io.Reader) (*Header, error) {
	var word [4]byte
	if _, err := io.ReadFull(r, word[:]); err != nil {
		return nil, headerErr("reading alphabet size", err)
	}
	k := binary.LittleEndian.Uint32(word[:])
	if k == 0 || k > MaxSymbols {
		return nil, fmt.Errorf("%w: alphabet size %d", ErrCorruptHeader, k)
	}
	// Read the entries in one go; k is bounded so this is small.
	buf := make([]byte, int(k)*entrySize)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, headerErr("reading alphabet", err)
	}
	h := &Header{Entries: make([]Entry, k)}
	var seen [256]bool
	for i := range h.Entries {
		p := buf[i*entrySize:]
		e := Entry{Symbol: p[0], Freq: binary.LittleEndian.Uint32(p[1:])}
		if seen[e.Symbol] {
			return nil, fmt.Errorf("%w: symbol %#02x listed twice", ErrCorruptHeader, e.Symbol)
		}
		if e.Freq == 0 {
			return nil, fmt.Errorf("%w: symbol %#02x has zero frequency", ErrCorruptHeader, e.Symbol)
		}
		seen[e.Symbol] = true
		h.Entries[i] = e
	}
	return h, nil
}

// headerErr classifies a read error: running out of input is corruption,
// anything else is an I/O failure.
func headerErr(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s: truncated", ErrCorruptHeader, what)
	}
	return fmt.Errorf("%s: %w", what, err)
}
