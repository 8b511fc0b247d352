// Package ui provides the styled one-line messages the sidebar CLI prints
// outside the full-screen dashboard.
//
// # Color Scheme
//
// Colors are ANSI codes so they follow the user's terminal theme:
//
//	ColorSuccess   (green)  - Completed operations
//	ColorError     (red)    - Failures
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text
//
// # Symbols
//
//	SymbolSuccess  (checkmark) - Operation completed
//	SymbolFail     (X)         - Operation failed
//	SymbolPending  (circle)    - Nothing happened yet
//	SymbolSkipped  (slashed)   - Operation skipped
package ui
