// Copyright 2025 Jonathan Amsterdam. All rights reserved.
// Use of this source code is governed by a
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jba/huff/internal/config"
)

func newTestApp(stdin string) (*app, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &app{
		stdin:  strings.NewReader(stdin),
		stdout: &stdout,
		stderr: &stderr,
	}, &stdout, &stderr
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

const sample = "It was the best of times, it was the worst of times.\n"

func TestCompressDecompress(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	dir := t.TempDir()
	in := writeFile(t, dir, "story.txt", strings.Repeat(sample, 100))

	a, _, stderr := newTestApp("")
	if err := a.run([]string{"compress", in}); err != nil {
		t.Fatalf("compress: %v\n%s", err, stderr)
	}
	comp := in + ".huf"
	if _, err := os.Stat(comp); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr.String(), "msg=compressed") {
		t.Errorf("log lacks the summary:\n%s", stderr)
	}
	if !strings.Contains(stderr.String(), "percent=100") {
		t.Errorf("log lacks progress:\n%s", stderr)
	}

	// The default output name strips the suffix, so the original is in the way.
	a, _, _ = newTestApp("")
	if err := a.run([]string{"decompress", comp}); err == nil {
		t.Fatal("decompress over an existing file: got nil error")
	}
	out := filepath.Join(dir, "story.out")
	a, _, stderr = newTestApp("")
	if err := a.run([]string{"decompress", "-q", "-o", out, comp}); err != nil {
		t.Fatalf("decompress: %v\n%s", err, stderr)
	}
	if strings.Contains(stderr.String(), "percent=") {
		t.Errorf("--quiet still logged progress:\n%s", stderr)
	}
	if got, want := readFile(t, out), readFile(t, in); got != want {
		t.Error("decompressed file differs from the original")
	}
}

func TestCompressRejects(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	dir := t.TempDir()
	empty := writeFile(t, dir, "empty", "")
	in := writeFile(t, dir, "in", sample)
	for _, test := range []struct {
		name  string
		args  []string
		usage bool
	}{
		{"no input", []string{"compress"}, true},
		{"two inputs", []string{"compress", in, in}, true},
		{"bad flag", []string{"compress", "--nope", in}, true},
		{"empty input", []string{"compress", empty}, false},
		{"missing input", []string{"compress", filepath.Join(dir, "missing")}, false},
		{"same file", []string{"compress", "-f", "-o", in, in}, false},
		{"unknown command", []string{"squash"}, true},
	} {
		t.Run(test.name, func(t *testing.T) {
			a, _, _ := newTestApp("")
			err := a.run(test.args)
			if err == nil {
				t.Fatal("got nil error")
			}
			var ue *usageError
			if got := errors.As(err, &ue); got != test.usage {
				t.Errorf("usage error = %t, want %t (%v)", got, test.usage, err)
			}
		})
	}
	if got := readFile(t, in); got != sample {
		t.Error("input was modified")
	}
}

func TestDecompressCorrupt(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	dir := t.TempDir()
	in := writeFile(t, dir, "bad.huf", "\x2c\x01\x00\x00garbage")
	a, _, _ := newTestApp("")
	err := a.run([]string{"decompress", "-o", filepath.Join(dir, "bad"), in})
	if err == nil || !strings.Contains(err.Error(), "corrupt header") {
		t.Errorf("got %v, want a corrupt header error", err)
	}
}

func TestStats(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	dir := t.TempDir()
	in := writeFile(t, dir, "aaab", "aaab")
	a, stdout, _ := newTestApp("")
	if err := a.run([]string{"stats", "--format", "json", in}); err != nil {
		t.Fatal(err)
	}
	var got struct {
		Original int64 `json:"original"`
		Symbols  []struct {
			Byte byte   `json:"byte"`
			Code string `json:"code"`
		} `json:"symbols"`
		Reference []struct {
			Algorithm string `json:"algorithm"`
		} `json:"reference"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &got); err != nil {
		t.Fatalf("%v\n%s", err, stdout)
	}
	if got.Original != 4 || len(got.Symbols) != 2 || got.Symbols[0].Code != "1" || got.Symbols[1].Code != "0" {
		t.Errorf("got %+v", got)
	}
	if len(got.Reference) != 2 {
		t.Errorf("got %d reference results, want 2", len(got.Reference))
	}

	a, stdout, _ = newTestApp("")
	if err := a.run([]string{"stats", "--no-reference", in}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "Unique symbols:") || strings.Contains(stdout.String(), "zstd") {
		t.Errorf("text report:\n%s", stdout)
	}
}

func TestStatsFormatFromConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "huff.yaml", "report_format: yaml\n")
	in := writeFile(t, dir, "in", sample)
	a, stdout, _ := newTestApp("")
	if err := a.run([]string{"stats", "--config", cfg, "--no-reference", in}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "header_size:") {
		t.Errorf("want YAML output, got:\n%s", stdout)
	}
}

func TestVerify(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	dir := t.TempDir()
	in := writeFile(t, dir, "in", strings.Repeat(sample, 20))
	a, stdout, _ := newTestApp("")
	if err := a.run([]string{"verify", "-q", in}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(stdout.String(), "  ok\n") {
		t.Errorf("got %q", stdout)
	}
}

func TestInteractive(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	dir := t.TempDir()
	in := writeFile(t, dir, "in.txt", sample)
	comp := filepath.Join(dir, "in.huf")
	out := filepath.Join(dir, "out.txt")

	// A wrong operation and a missing path are asked again.
	script := strings.Join([]string{"x", "c", filepath.Join(dir, "missing"), in, comp}, "\n") + "\n"
	a, stdout, _ := newTestApp(script)
	a.interactive = true
	if err := a.run(nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stdout.String(), "Invalid option") || !strings.Contains(stdout.String(), "Invalid path") {
		t.Errorf("prompts:\n%s", stdout)
	}

	a, _, _ = newTestApp(strings.Join([]string{"d", comp, out}, "\n") + "\n")
	if err := a.run([]string{"interactive"}); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, out); got != sample {
		t.Errorf("got %q, want %q", got, sample)
	}

	a, _, _ = newTestApp("c\n")
	if err := a.run([]string{"interactive"}); err == nil {
		t.Error("truncated answers: got nil error")
	}
}

func TestNoArgs(t *testing.T) {
	a, _, stderr := newTestApp("")
	err := a.run(nil)
	var ue *usageError
	if !errors.As(err, &ue) {
		t.Fatalf("got %v, want a usage error", err)
	}
	if !strings.Contains(stderr.String(), "Commands:") {
		t.Errorf("usage not printed:\n%s", stderr)
	}
}

func TestVersionAndHelp(t *testing.T) {
	a, stdout, _ := newTestApp("")
	if err := a.run([]string{"--version"}); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(stdout.String(), "huff ") {
		t.Errorf("got %q", stdout)
	}
	a, _, stderr := newTestApp("")
	if err := a.run([]string{"compress", "--help"}); err != nil {
		t.Fatalf("--help: %v", err)
	}
	if !strings.Contains(stderr.String(), "--output") {
		t.Errorf("help lacks flags:\n%s", stderr)
	}
}
