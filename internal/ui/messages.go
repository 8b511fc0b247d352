package ui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Success prints a green checkmark line.
func Success(w io.Writer, format string, args ...any) {
	line(w, successStyle.Render(SymbolSuccess), format, args...)
}

// Fail prints a red cross line.
func Fail(w io.Writer, format string, args ...any) {
	line(w, errorStyle.Render(SymbolFail), format, args...)
}

// Warn prints a yellow line.
func Warn(w io.Writer, format string, args ...any) {
	line(w, warningStyle.Render("!"), format, args...)
}

// Info prints a cyan pending-style line.
func Info(w io.Writer, format string, args ...any) {
	line(w, infoStyle.Render(SymbolPending), format, args...)
}

// Skipped prints a muted skip line.
func Skipped(w io.Writer, format string, args ...any) {
	line(w, mutedStyle.Render(SymbolSkipped), format, args...)
}

// Muted renders s in the secondary text color.
func Muted(s string) string {
	return mutedStyle.Render(s)
}

func line(w io.Writer, symbol, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", symbol, fmt.Sprintf(format, args...))
}

// IsTerminal returns true if the file is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
