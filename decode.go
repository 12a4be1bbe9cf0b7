// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huff

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Decompress reads a compressed artifact from r and writes the original
// bytes to w.
//
// Decoding stops once the number of symbols recorded in the header has been
// written; anything after that in r is not read. If the packed bits are
// malformed or end early, the bytes decoded so far have already been
// written to w when the error is returned. Errors are [*StageError]s
// wrapping [ErrCorruptHeader], [ErrCorruptStream], [ErrUnexpectedEOF], or
// an I/O error.
func Decompress(w io.Writer, r io.Reader, opts ...Option) (*Stats, error) {
	cfg := newConfig(opts)
	in := bufio.NewReaderSize(r, cfg.bufSize)
	hdr, err := ReadHeader(in)
	if err != nil {
		return nil, stageErr(StageHeader, err)
	}
	out := bufio.NewWriter(w)
	d := &decoder{
		root:  buildTree(hdr.Entries),
		total: hdr.Total(),
		bits:  newBitReader(in),
	}
	err = d.run(out, cfg.track(StageDecode, d.total))
	// Partial output is kept.
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return nil, stageErr(StageDecode, err)
	}
	return &Stats{
		Symbols:    len(hdr.Entries),
		Original:   int64(d.decoded),
		HeaderSize: hdr.Size(),
		DataSize:   d.bits.read,
	}, nil
}

type decoder struct {
	root    *node
	total   uint64
	bits    *bitReader
	decoded uint64
	nbits   uint64 // bits consumed
}

func (d *decoder) run(w io.ByteWriter, prog *tracker) error {
	top := d.root
	if top.isLeaf() {
		// The lone symbol is coded as a single 0 bit.
		top = &node{left: d.root}
	}
	cur := top
	for d.decoded < d.total {
		bit, err := d.bits.readBit()
		if err == io.EOF {
			return fmt.Errorf("%w: %d of %d symbols decoded", ErrUnexpectedEOF, d.decoded, d.total)
		}
		if err != nil {
			return err
		}
		d.nbits++
		if bit == 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
		if cur == nil {
			return fmt.Errorf("%w: bit %d has no branch to follow", ErrCorruptStream, d.nbits-1)
		}
		if cur.isLeaf() {
			if err := w.WriteByte(cur.sym); err != nil {
				return err
			}
			d.decoded++
			cur = top
			prog.update(d.decoded)
		}
	}
	prog.finish()
	return nil
}

// DecompressBytes returns the original bytes of a compressed artifact.
func DecompressBytes(data []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Decompress(&buf, bytes.NewReader(data), opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
