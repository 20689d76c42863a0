// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/schemaview

// Package logging builds the logrus logger shared by the CLI and HTTP server.
package logging

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Options configures logger construction.
type Options struct {
	// Output receives log lines, stderr when nil.
	Output io.Writer
	// Verbose switches level from info to debug.
	Verbose bool
	// DisableColor disables coloured level names.
	DisableColor bool
	// ShowTime adds full timestamps, used by long-running serve mode.
	ShowTime bool
}

// New returns a configured logger; it never touches the logrus global.
func New(opt Options) *logrus.Logger {
	logger := logrus.New()

	output := opt.Output
	if output == nil {
		output = os.Stderr
	}

	logger.SetOutput(output)

	if opt.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:    opt.DisableColor,
		ForceColors:      !opt.DisableColor && IsTerminal(output),
		DisableTimestamp: !opt.ShowTime,
		FullTimestamp:    opt.ShowTime,
		TimestampFormat:  "2006-01-02 15:04:05",
	})

	return logger
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// IsTerminal reports whether writer is an interactive terminal, Cygwin and MSYS included.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
