// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huff

import "io"

// Much of the code in this file is adapted from the standard library's compress/flate package.

// A bitWriter can write up to 32 bits at a time.
// Full bytes are flushed to its contained [io.Writer].
// Write errors are stored and reported by [bitWriter.Close]
// or [bitWriter.Err].
// If the bitWriter is flushed on a non-byte boundary, the last byte
// is zero-padded on the high side.
type bitWriter struct {
	err error
	w   io.Writer
	// bits is a buffer of unwritten bits.
	// Only the low-order 32 bits are valid between calls to writeBits,
	// and those bytes are stored in reverse order: byte 3 | byte 2 | byte 1 | byte 0.
	bits    uint64
	nbits   int   // number of bits in bits; always <= 32
	written int64 // bytes handed to w
}

func newBitWriter(w io.Writer) *bitWriter {
	return &bitWriter{w: w}
}

// writeBits writes the n low-order bits of b, low bit first.
// n must be in [0, 32].
func (w *bitWriter) writeBits(b uint32, n int) {
	if w.err != nil {
		return
	}
	w.bits |= uint64(lowOrderBits(b, n)) << w.nbits // w.bits = b concat w.bits
	w.nbits += n                                     // there are n more bits in w.bits
	if w.nbits > 32 {                                // if w.bits is too large
		var buf [4]byte // write out the low-order part
		buf[0] = byte(w.bits)
		buf[1] = byte(w.bits >> 8)
		buf[2] = byte(w.bits >> 16)
		buf[3] = byte(w.bits >> 24)
		w.bits >>= 32
		w.nbits -= 32
		w.write(buf[:])
	}
}

// writeCode writes every bit of bc, first bit first.
func (w *bitWriter) writeCode(bc bitcode) {
	n := bc.len
	for _, word := range bc.words {
		k := min(n, 32)
		w.writeBits(word, k)
		n -= k
	}
}

// Close flushes any buffered bits. It does not close the underlying writer.
func (w *bitWriter) Close() error {
	w.flush()
	return w.err
}

func (w *bitWriter) flush() {
	var buf [4]byte
	var i int
	for i = 0; i < 4 && w.nbits > 0; i++ {
		buf[i] = byte(w.bits)
		w.bits >>= 8
		if w.nbits > 8 {
			w.nbits -= 8
		} else {
			w.nbits = 0
		}
	}
	w.write(buf[:i])
}

func (w *bitWriter) write(buf []byte) {
	if w.err != nil {
		return
	}
	var n int
	n, w.err = w.w.Write(buf)
	w.written += int64(n)
}

func (w *bitWriter) Err() error {
	return w.err
}

// A bitReader returns the bits of a byte stream one at a time,
// low bit first within each byte.
type bitReader struct {
	r     io.ByteReader
	cur   byte
	nbits int   // unread bits in cur
	read  int64 // bytes taken from r
}

func newBitReader(r io.ByteReader) *bitReader {
	return &bitReader{r: r}
}

// readBit returns the next bit. At the end of the stream it returns io.EOF;
// other errors come from the underlying reader.
func (r *bitReader) readBit() (byte, error) {
	if r.nbits == 0 {
		b, err := r.r.ReadByte()
		if err != nil {
			return 0, err
		}
		r.cur = b
		r.nbits = 8
		r.read++
	}
	bit := r.cur & 1
	r.cur >>= 1
	r.nbits--
	return bit, nil
}

// lowOrderBits returns the n low-order bits of u.
func lowOrderBits[T uint8 | uint16 | uint32 | uint64](u T, n int) T {
	return u & ((T(1) << n) - 1)
}
