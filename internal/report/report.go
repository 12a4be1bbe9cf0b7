// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

// Package report renders compression statistics for people (text) and
// programs (JSON, YAML, CBOR).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/jba/huff"
	"github.com/jba/huff/internal/compare"
)

// A Report summarizes compressing one input.
type Report struct {
	Name       string           `json:"name" yaml:"name"`
	Original   int64            `json:"original" yaml:"original"`
	HeaderSize int64            `json:"header_size" yaml:"header_size"`
	DataSize   int64            `json:"data_size" yaml:"data_size"`
	Savings    float64          `json:"savings" yaml:"savings"`
	Symbols    []Symbol         `json:"symbols" yaml:"symbols"`
	Reference  []compare.Result `json:"reference,omitempty" yaml:"reference,omitempty"`
}

// A Symbol is one row of the code table.
type Symbol struct {
	Byte byte   `json:"byte" yaml:"byte"`
	Freq uint32 `json:"freq" yaml:"freq"`
	Code string `json:"code" yaml:"code"`
}

// New builds a report from the results of compressing an input.
func New(name string, st *huff.Stats, hdr *huff.Header, code *huff.Code) *Report {
	r := &Report{
		Name:       name,
		Original:   st.Original,
		HeaderSize: st.HeaderSize,
		DataSize:   st.DataSize,
		Savings:    st.Savings(),
	}
	for _, e := range hdr.Entries {
		r.Symbols = append(r.Symbols, Symbol{Byte: e.Symbol, Freq: e.Freq, Code: code.String(e.Symbol)})
	}
	return r
}

// Compressed returns the total compressed size.
func (r *Report) Compressed() int64 { return r.HeaderSize + r.DataSize }

// MeanCodeLen returns the average number of bits per input byte.
func (r *Report) MeanCodeLen() float64 {
	if r.Original == 0 {
		return 0
	}
	var bits uint64
	for _, s := range r.Symbols {
		bits += uint64(s.Freq) * uint64(len(s.Code))
	}
	return float64(bits) / float64(r.Original)
}

var cborMode cbor.EncMode

func init() {
	var err error
	cborMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("report: CBOR encoder initialization failed: " + err.Error())
	}
}

// Write renders r to w in format: text, json, yaml or cbor.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case "text":
		return r.writeText(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "cbor":
		return cborMode.NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func (r *Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "File:\t%s\n", r.Name)
	fmt.Fprintf(tw, "Original size:\t%s (%d bytes)\n", humanize.IBytes(uint64(r.Original)), r.Original)
	fmt.Fprintf(tw, "Compressed size:\t%s (header %d bytes, data %d bytes)\n",
		humanize.IBytes(uint64(r.Compressed())), r.HeaderSize, r.DataSize)
	fmt.Fprintf(tw, "Savings:\t%.2f%%\n", r.Savings*100)
	fmt.Fprintf(tw, "Unique symbols:\t%d\n", len(r.Symbols))
	fmt.Fprintf(tw, "Bits per byte:\t%.3f\n", r.MeanCodeLen())
	for _, ref := range r.Reference {
		fmt.Fprintf(tw, "%s size:\t%s (%d bytes)\n", ref.Algorithm, humanize.IBytes(uint64(ref.Size)), ref.Size)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Symbol\tCount\tCode")
	for _, s := range r.Symbols {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", symbolName(s.Byte), humanize.Comma(int64(s.Freq)), s.Code)
	}
	return tw.Flush()
}

// symbolName prints printable ASCII as itself and anything else by value.
func symbolName(b byte) string {
	if b >= 32 && b <= 126 {
		return strconv.QuoteRune(rune(b))
	}
	return fmt.Sprintf("(%d)", b)
}
