package client

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"

	"github.com/MKhiriev/go-snapshot-keeper/internal/ui"
)

// startSpinner shows message with a spinner on out while a remote call runs.
// The spinner only animates on a terminal. cleanup stops it and prints
// FinalMSG, so set s.FinalMSG before calling cleanup.
func startSpinner(out io.Writer, message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " " + message
	_ = s.Color("cyan")
	s.Start()

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			s.FinalMSG = ""
		}
		s.Stop()
		if finalMsg != "" {
			_, _ = fmt.Fprint(out, finalMsg)
		}
	}
	return s, cleanup
}
