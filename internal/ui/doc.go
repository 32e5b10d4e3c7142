// Package ui provides semantic text formatting for keeper CLI output.
//
// Formatters colorize output when the terminal supports it. When NO_COLOR is
// set or the terminal has no color support, text decorations are used:
//   - Code: `backticks`
//   - Highlight: 'single quotes'
//   - Muted: (parentheses)
//
// Other formatters leave text unchanged.
package ui
