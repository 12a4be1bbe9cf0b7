// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package huff

import "fmt"

// A Stage names one step of compression or decompression.
type Stage int

const (
	StageCount  Stage = iota // frequency scan of the source
	StageHeader              // reading or writing the header
	StageEncode              // second pass over the source, writing packed bits
	StageDecode              // walking the tree against packed bits
)

func (s Stage) String() string {
	switch s {
	case StageCount:
		return "count"
	case StageHeader:
		return "header"
	case StageEncode:
		return "encode"
	case StageDecode:
		return "decode"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// A ProgressFunc is called as a stage advances, with percent in [0, 100].
// It is called at most once for each ten-percent step, and always with
// 100 when the stage completes. Progress never affects the output.
type ProgressFunc func(stage Stage, percent int)

type config struct {
	progress ProgressFunc
	bufSize  int
}

// An Option configures [Compress], [Decompress] and [CountFrequencies].
type Option func(*config)

// WithProgress registers f to receive progress reports.
func WithProgress(f ProgressFunc) Option {
	return func(c *config) {
		c.progress = f
	}
}

// WithBufferSize sets the size of the chunks read from the source.
// Values below 512 are ignored.
func WithBufferSize(n int) Option {
	return func(c *config) {
		if n >= 512 {
			c.bufSize = n
		}
	}
}

const defaultBufSize = 8 << 10

func newConfig(opts []Option) *config {
	c := &config{bufSize: defaultBufSize}
	for _, o := range opts {
		o(c)
	}
	return c
}

// tracker turns a done/total count into ten-percent progress calls.
type tracker struct {
	f     ProgressFunc
	stage Stage
	total uint64
	last  int
}

func (c *config) track(s Stage, total uint64) *tracker {
	return &tracker{f: c.progress, stage: s, total: total, last: -1}
}

func (t *tracker) update(done uint64) {
	if t.f == nil || t.total == 0 {
		return
	}
	p := min(int(done*100/t.total), 100) / 10 * 10
	if p > t.last {
		t.last = p
		t.f(t.stage, p)
	}
}

func (t *tracker) finish() {
	if t.f != nil && t.last != 100 {
		t.last = 100
		t.f(t.stage, 100)
	}
}

// Stats describes one compression or decompression run.
type Stats struct {
	// Symbols is the alphabet size k.
	Symbols int
	// Original is the length of the uncompressed data.
	Original int64
	// HeaderSize and DataSize partition the compressed artifact.
	HeaderSize int64
	DataSize   int64
}

// Compressed returns the total size of the compressed artifact.
func (s *Stats) Compressed() int64 { return s.HeaderSize + s.DataSize }

// Savings returns the fraction of the original size saved by compression.
// It is negative when the artifact is larger than the input.
func (s *Stats) Savings() float64 {
	if s.Original == 0 {
		return 0
	}
	return 1 - float64(s.Compressed())/float64(s.Original)
}
