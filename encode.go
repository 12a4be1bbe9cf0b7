// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huff

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// An Encoder writes the codes of bytes as packed bits.
type Encoder struct {
	c   *Code
	bw  *bitWriter
	err error
}

// NewEncoder returns an Encoder that writes packed code bits to w.
// The caller must call [Encoder.Close] to write the final partial byte.
func (c *Code) NewEncoder(w io.Writer) *Encoder {
	return &Encoder{c: c, bw: newBitWriter(w)}
}

// Write encodes data. It is an error for data to contain a byte that is not
// in the alphabet of the Encoder's [Code]; in that case nothing after the
// offending byte is written.
func (e *Encoder) Write(data []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	for i, b := range data {
		bc := e.c.codes[b]
		if bc.len == 0 {
			e.err = fmt.Errorf("huff: byte %#02x is not in the alphabet", b)
			return i, e.err
		}
		e.bw.writeCode(bc)
	}
	if err := e.bw.Err(); err != nil {
		e.err = err
		return 0, err
	}
	return len(data), nil
}

// Close flushes the last partial byte, zero-padding its high bits.
func (e *Encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	return e.bw.Close()
}

// Written returns the number of bytes written to the underlying writer.
func (e *Encoder) Written() int64 { return e.bw.written }

// Compress writes the compressed form of src to w.
//
// It reads src twice, once to count byte frequencies and once to encode,
// seeking back to the start before each pass. It returns an error wrapping
// [ErrEmptyInput] if src is empty. Errors are [*StageError]s.
func Compress(w io.Writer, src io.ReadSeeker, opts ...Option) (*Stats, error) {
	cfg := newConfig(opts)
	size, err := src.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, stageErr(StageCount, err)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, stageErr(StageCount, err)
	}
	hist, err := countFrequencies(src, size, cfg)
	if err != nil {
		return nil, stageErr(StageCount, err)
	}
	entries, err := hist.Entries()
	if err != nil {
		return nil, stageErr(StageCount, err)
	}

	hdr := &Header{Entries: entries}
	code := newCode(buildTree(entries))
	out := bufio.NewWriter(w)
	hn, err := hdr.WriteTo(out)
	if err != nil {
		return nil, stageErr(StageHeader, err)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, stageErr(StageEncode, err)
	}
	enc := code.NewEncoder(out)
	if err := encode(enc, src, hist.Total, cfg); err != nil {
		return nil, stageErr(StageEncode, err)
	}
	if err := out.Flush(); err != nil {
		return nil, stageErr(StageEncode, err)
	}
	return &Stats{
		Symbols:    len(entries),
		Original:   int64(hist.Total),
		HeaderSize: hn,
		DataSize:   enc.Written(),
	}, nil
}

var errSourceChanged = errors.New("source changed between passes")

func encode(enc *Encoder, src io.Reader, total uint64, cfg *config) error {
	prog := cfg.track(StageEncode, total)
	buf := make([]byte, cfg.bufSize)
	var done uint64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			done += uint64(n)
			if done > total {
				return errSourceChanged
			}
			if _, werr := enc.Write(buf[:n]); werr != nil {
				return werr
			}
			prog.update(done)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	if done != total {
		return errSourceChanged
	}
	if err := enc.Close(); err != nil {
		return err
	}
	prog.finish()
	return nil
}

// CompressBytes returns the compressed form of data.
func CompressBytes(data []byte, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := Compress(&buf, bytes.NewReader(data), opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
