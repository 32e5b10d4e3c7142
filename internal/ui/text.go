package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

func (f Formatter) Sprint(a ...any) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

func (f Formatter) Sprintf(format string, a ...any) string {
	return f.Sprint(fmt.Sprintf(format, a...))
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

func noColor() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	return color.NoColor
}

var (
	// Code formats runnable commands.
	Code = Formatter{color.New(color.FgYellow), "`", "`"}

	// Path formats file paths and object keys.
	Path = Formatter{color.New(color.FgYellow), "", ""}

	Success = Formatter{color.New(color.FgGreen), "", ""}
	Error   = Formatter{color.New(color.FgRed), "", ""}
	Warning = Formatter{color.New(color.FgYellow), "", ""}
	Info    = Formatter{color.New(color.FgCyan), "", ""}

	// Highlight formats user values like timestamps and sizes.
	Highlight = Formatter{color.New(color.FgCyan), "'", "'"}

	Muted = Formatter{color.New(color.FgHiBlack), "(", ")"}
)

// Status lines used as spinner final messages.
func SuccessLine(msg string) string { return Success.Sprint("✓") + " " + msg }
func FailureLine(msg string) string { return Error.Sprint("✗") + " " + msg }
func WarningLine(msg string) string { return Warning.Sprint("⚠") + " " + msg }
