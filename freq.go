// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huff

import (
	"io"
	"math"
)

// A Histogram counts the occurrences of each byte value in a source.
// The counts always sum to Total.
type Histogram struct {
	Counts [256]uint64
	Total  uint64
}

// Entries returns the alphabet of h: one [Entry] for each byte that occurs,
// in ascending byte order. This order is the one written to the header.
// It returns [ErrFrequencyOverflow] if a count does not fit in 32 bits.
func (h *Histogram) Entries() ([]Entry, error) {
	var es []Entry
	for i, n := range h.Counts {
		if n == 0 {
			continue
		}
		if n > math.MaxUint32 {
			return nil, ErrFrequencyOverflow
		}
		es = append(es, Entry{Symbol: byte(i), Freq: uint32(n)})
	}
	return es, nil
}

// A Counter builds a [Histogram] from the bytes written to it.
// The zero value is ready to use.
type Counter struct {
	h Histogram
}

// Write counts the bytes of data. It never returns an error.
func (c *Counter) Write(data []byte) (int, error) {
	for _, b := range data {
		c.h.Counts[b]++
	}
	c.h.Total += uint64(len(data))
	return len(data), nil
}

// Histogram returns the counts so far.
func (c *Counter) Histogram() *Histogram {
	h := c.h
	return &h
}

// Reset clears the counts.
func (c *Counter) Reset() { c.h = Histogram{} }

// CountFrequencies reads r to EOF in fixed-size chunks and returns the
// histogram of its bytes. The size is the expected length of r; it must be
// positive and is used only for progress reporting.
// It returns [ErrEmptyInput] if size is not positive or r holds no bytes.
func CountFrequencies(r io.Reader, size int64, opts ...Option) (*Histogram, error) {
	cfg := newConfig(opts)
	h, err := countFrequencies(r, size, cfg)
	if err != nil {
		return nil, stageErr(StageCount, err)
	}
	return h, nil
}

func countFrequencies(r io.Reader, size int64, cfg *config) (*Histogram, error) {
	if size <= 0 {
		return nil, ErrEmptyInput
	}
	var c Counter
	prog := cfg.track(StageCount, uint64(size))
	buf := make([]byte, cfg.bufSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			c.Write(buf[:n])
			prog.update(c.h.Total)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	if c.h.Total == 0 {
		return nil, ErrEmptyInput
	}
	prog.finish()
	return c.Histogram(), nil
}
