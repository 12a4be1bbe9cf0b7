// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/jba/huff"
	"github.com/jba/huff/internal/compare"
)

func aaabReport(t *testing.T) *Report {
	t.Helper()
	var c huff.Counter
	c.Write([]byte("aaab"))
	entries, err := c.Histogram().Entries()
	if err != nil {
		t.Fatal(err)
	}
	code, err := huff.NewCode(entries)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	st, err := huff.Compress(&buf, bytes.NewReader([]byte("aaab")))
	if err != nil {
		t.Fatal(err)
	}
	r := New("aaab.txt", st, &huff.Header{Entries: entries}, code)
	r.Reference = []compare.Result{{Algorithm: "zstd", Size: 13}}
	return r
}

func TestNew(t *testing.T) {
	r := aaabReport(t)
	if r.Original != 4 || r.HeaderSize != 14 || r.DataSize != 1 {
		t.Errorf("got %+v", r)
	}
	want := []Symbol{{'a', 3, "1"}, {'b', 1, "0"}}
	if len(r.Symbols) != 2 || r.Symbols[0] != want[0] || r.Symbols[1] != want[1] {
		t.Errorf("symbols = %v, want %v", r.Symbols, want)
	}
	if got := r.MeanCodeLen(); got != 1 {
		t.Errorf("MeanCodeLen = %v, want 1", got)
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := aaabReport(t).Write(&buf, "text"); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"aaab.txt", "4 B", "Unique symbols:", "'a'", "zstd size:"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output lacks %q:\n%s", want, out)
		}
	}
}

func TestWriteFormats(t *testing.T) {
	r := aaabReport(t)
	for _, test := range []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{"json", json.Unmarshal},
		{"yaml", yaml.Unmarshal},
		{"cbor", cbor.Unmarshal},
	} {
		var buf bytes.Buffer
		if err := r.Write(&buf, test.format); err != nil {
			t.Fatalf("%s: %v", test.format, err)
		}
		var got Report
		if err := test.unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("%s: decoding: %v", test.format, err)
		}
		if got.Name != r.Name || got.DataSize != r.DataSize || len(got.Symbols) != 2 || got.Symbols[0].Code != "1" {
			t.Errorf("%s: got %+v", test.format, got)
		}
	}

	if err := r.Write(&bytes.Buffer{}, "xml"); err == nil {
		t.Error("unknown format: got nil error")
	}
}
