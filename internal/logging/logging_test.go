// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewVerboseEnablesDebug(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := New(Options{Output: &out, Verbose: true, DisableColor: true})
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %s, want debug", logger.GetLevel())
	}

	logger.Debug("debug line")
	if !strings.Contains(out.String(), "debug line") {
		t.Fatalf("debug message missing: %q", out.String())
	}
}

func TestNewDefaultSkipsDebug(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	logger := New(Options{Output: &out, DisableColor: true})
	logger.Debug("hidden")
	logger.WithField("path", "schema.json").Warn("visible")

	got := out.String()
	if strings.Contains(got, "hidden") {
		t.Fatalf("debug message should be filtered: %q", got)
	}

	if !strings.Contains(got, "visible") || !strings.Contains(got, "path=schema.json") {
		t.Fatalf("warn message missing fields: %q", got)
	}

	if strings.Contains(got, "time=") {
		t.Fatalf("timestamp should be hidden by default: %q", got)
	}
}

func TestDiscardDropsOutput(t *testing.T) {
	t.Parallel()

	logger := Discard()
	logger.Error("nothing")
}

func TestIsTerminalRejectsNonTTY(t *testing.T) {
	t.Parallel()

	if IsTerminal(&bytes.Buffer{}) {
		t.Fatal("buffer reported as terminal")
	}

	file, err := os.Create(filepath.Join(t.TempDir(), "log.txt"))
	if err != nil {
		t.Fatalf("create log file: %v", err)
	}
	defer func() { _ = file.Close() }()

	if IsTerminal(file) {
		t.Fatal("regular file reported as terminal")
	}

	logger := New(Options{Output: file})
	formatter, ok := logger.Formatter.(*logrus.TextFormatter)
	if !ok {
		t.Fatalf("formatter is %T", logger.Formatter)
	}

	if formatter.ForceColors {
		t.Fatal("colours forced for regular file output")
	}
}
