// Package output provides operator-facing logging and color helpers.
package output

import (
	"fmt"
	"io"
	"os"
)

// Splog provides structured logging and output
type Splog struct {
	writer  io.Writer
	verbose bool
}

// NewSplog creates a new splog instance writing to stdout
func NewSplog() *Splog {
	return &Splog{writer: os.Stdout}
}

// NewSplogWriter creates a splog instance writing to w, used in tests
func NewSplogWriter(w io.Writer) *Splog {
	return &Splog{writer: w}
}

// SetVerbose enables debug output
func (s *Splog) SetVerbose(verbose bool) {
	s.verbose = verbose
}

// Info writes an info message
func (s *Splog) Info(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Warn writes a warning message
func (s *Splog) Warn(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, ColorYellow("warning: ")+format+"\n", args...)
}

// Error writes an error message
func (s *Splog) Error(format string, args ...interface{}) {
	fmt.Fprintf(s.writer, ColorRed("error: ")+format+"\n", args...)
}

// Debug writes a debug message when verbose output is enabled
func (s *Splog) Debug(format string, args ...interface{}) {
	if !s.verbose {
		return
	}
	fmt.Fprintf(s.writer, format+"\n", args...)
}

// Newline writes a newline
func (s *Splog) Newline() {
	fmt.Fprintln(s.writer)
}
