/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the package-level logger used by resolution and the CLI.
// It is quiet (warn level) by default so library callers see nothing unless they opt in.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

const prefix = "resolve-with-prefix"

var (
	mu     sync.RWMutex
	level  = log.WarnLevel
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix: prefix,
		Level:  level,
	})
}

// SetOutput configures the logger output destination.
// Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

// SetLevel sets the minimum level that is written.
func SetLevel(l log.Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	logger.SetLevel(l)
}

// SetVerbose switches between debug and the default warn level.
func SetVerbose(verbose bool) {
	if verbose {
		SetLevel(log.DebugLevel)
		return
	}
	SetLevel(log.WarnLevel)
}

// Warn logs a warning with optional key/value pairs.
func Warn(msg string, keyvals ...any) {
	current().Warn(msg, keyvals...)
}

// Info logs an informational message with optional key/value pairs.
func Info(msg string, keyvals ...any) {
	current().Info(msg, keyvals...)
}

// Debug logs a debug message with optional key/value pairs.
func Debug(msg string, keyvals ...any) {
	current().Debug(msg, keyvals...)
}

func current() *log.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}
