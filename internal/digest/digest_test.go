// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package digest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmptyInput(t *testing.T) {
	// BLAKE3 of the empty string.
	const want = "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"
	if got := Of(nil).String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestAgree(t *testing.T) {
	data := bytes.Repeat([]byte("digest me "), 1000)
	want := Of(data)

	got, n, err := Reader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if got != want || n != int64(len(data)) {
		t.Errorf("Reader = %s, %d; want %s, %d", got, n, want, len(data))
	}

	w := NewWriter()
	w.Write(data[:17])
	w.Write(data[17:])
	if w.Sum() != want || w.Len() != int64(len(data)) {
		t.Errorf("Writer = %s, %d; want %s, %d", w.Sum(), w.Len(), want, len(data))
	}

	path := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	fd, err := File(path)
	if err != nil {
		t.Fatal(err)
	}
	if fd != want {
		t.Errorf("File = %s, want %s", fd, want)
	}
}

func TestParse(t *testing.T) {
	d := Of([]byte("x"))
	got, err := Parse(d.String())
	if err != nil {
		t.Fatal(err)
	}
	if got != d {
		t.Errorf("got %s, want %s", got, d)
	}
	for _, bad := range []string{"zz", "abcd", strings.Repeat("0", 66)} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q): got nil error", bad)
		}
	}
}
