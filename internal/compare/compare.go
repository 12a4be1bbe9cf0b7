// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package compare measures how general-purpose compressors do on the same
// input, to put a Huffman ratio in context. Only sizes are reported; the
// compressed bytes are discarded.
package compare

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// A Result is the compressed size of an input under one algorithm.
type Result struct {
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Size      int64  `json:"size" yaml:"size"`
}

// All returns the zstd and LZ4 sizes of data.
func All(data []byte) ([]Result, error) {
	zs, err := Zstd(data)
	if err != nil {
		return nil, err
	}
	ls, err := LZ4(data)
	if err != nil {
		return nil, err
	}
	return []Result{
		{Algorithm: "zstd", Size: zs},
		{Algorithm: "lz4", Size: ls},
	}, nil
}

// Zstd returns the size of data compressed with zstd at the default level.
func Zstd(data []byte) (int64, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, fmt.Errorf("zstd encoder: %w", err)
	}
	defer enc.Close()
	return int64(len(enc.EncodeAll(data, nil))), nil
}

// LZ4 returns the size of data as an LZ4 block. Incompressible data is
// reported at its original length, as it would be stored.
func LZ4(data []byte) (int64, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return 0, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 || n >= len(data) {
		return int64(len(data)), nil
	}
	return int64(n), nil
}
