// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package huff implements a two-pass byte-oriented Huffman codec.
//
// Compression scans the source once to count byte frequencies, builds a
// code tree from them, and scans the source again to write each byte's code.
// The compressed artifact is a header followed by the packed code bits:
//
//	u32          alphabet size k, 1 <= k <= 256
//	k times:
//	  u8         symbol
//	  u32        frequency
//	u8[]         code bits, low bit first within each byte
//
// Integers are little-endian. There is no length field: the decoder rebuilds
// the tree from the header and stops after decoding as many symbols as the
// frequencies sum to, ignoring any padding bits.
package huff

import (
	"errors"
	"strings"
)

// A Code maps each byte of an alphabet to a bit sequence. No sequence is a
// prefix of another.
type Code struct {
	codes [256]bitcode
}

// A bitcode holds a code of any length. The first bit of the code is bit 0
// of words[0]; each word holds 32 bits.
type bitcode struct {
	words []uint32
	len   int
}

// NewCode constructs the [Code] for the alphabet described by entries.
// The entries must be in the order they are written to the header.
func NewCode(entries []Entry) (*Code, error) {
	if err := checkAlphabet(entries); err != nil {
		return nil, err
	}
	return newCode(buildTree(entries)), nil
}

func checkAlphabet(entries []Entry) error {
	if len(entries) == 0 {
		return errors.New("huff: empty alphabet")
	}
	if len(entries) > 256 {
		return errors.New("huff: alphabet larger than 256 symbols")
	}
	var seen [256]bool
	for _, e := range entries {
		if seen[e.Symbol] {
			return errors.New("huff: symbol repeated in alphabet")
		}
		seen[e.Symbol] = true
	}
	return nil
}

// newCode derives the code table from a tree: the path from the root to each
// leaf, 0 for left and 1 for right. A tree that is a single leaf has no
// paths, so its symbol gets the one-bit code 0.
func newCode(root *node) *Code {
	c := &Code{}
	if root.isLeaf() {
		c.codes[root.sym] = bitcode{words: []uint32{0}, len: 1}
		return c
	}
	var path []byte
	var walk func(n *node)
	walk = func(n *node) {
		if n.isLeaf() {
			c.codes[n.sym] = pack(path)
			return
		}
		path = append(path, 0)
		walk(n.left)
		path[len(path)-1] = 1
		walk(n.right)
		path = path[:len(path)-1]
	}
	walk(root)
	return c
}

// pack converts a path of 0s and 1s into a bitcode.
func pack(path []byte) bitcode {
	bc := bitcode{words: make([]uint32, (len(path)+31)/32), len: len(path)}
	for i, b := range path {
		bc.words[i/32] |= uint32(b) << (i % 32)
	}
	return bc
}

// Has reports whether sym is in the alphabet of c.
func (c *Code) Has(sym byte) bool { return c.codes[sym].len > 0 }

// Len returns the number of bits in the code for sym, or 0 if sym is not in
// the alphabet.
func (c *Code) Len(sym byte) int { return c.codes[sym].len }

// String returns the code for sym as a string of '0' and '1' characters,
// first bit first. It returns the empty string if sym is not in the alphabet.
func (c *Code) String(sym byte) string {
	bc := c.codes[sym]
	var sb strings.Builder
	sb.Grow(bc.len)
	for i := range bc.len {
		if bc.words[i/32]>>(i%32)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Symbols returns the alphabet of c in ascending order.
func (c *Code) Symbols() []byte {
	var syms []byte
	for i := range c.codes {
		if c.codes[i].len > 0 {
			syms = append(syms, byte(i))
		}
	}
	return syms
}

// EncodedBits returns the number of bits needed to encode a source with the
// histogram h. Bytes outside the alphabet of c are ignored.
func (c *Code) EncodedBits(h *Histogram) uint64 {
	var n uint64
	for i, f := range h.Counts {
		n += f * uint64(c.codes[i].len)
	}
	return n
}
