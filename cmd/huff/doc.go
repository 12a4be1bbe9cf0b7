// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Huff compresses and decompresses files with a byte-oriented Huffman code.
//
// Usage:
//
//	huff compress [-o OUTPUT] INPUT
//	huff decompress [-o OUTPUT] INPUT
//	huff stats [--format text|json|yaml|cbor] INPUT
//	huff verify INPUT
//	huff interactive
//
// Run with no arguments on a terminal, huff asks for the operation and the
// input and output paths, repeating each question until the answer is
// usable.
//
// Every command accepts --config FILE (or the HUFF_CONFIG environment
// variable) naming a YAML configuration file, --log-level, and --quiet to
// suppress progress lines. Diagnostics go to standard error as slog text
// records.
//
// Exit codes:
//
//	0  success
//	1  the operation failed
//	2  bad arguments
package main
