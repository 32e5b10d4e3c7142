package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-snapshot-keeper/internal/client"
	"github.com/MKhiriev/go-snapshot-keeper/internal/ui"
	"github.com/MKhiriev/go-snapshot-keeper/models"
)

// Set with -ldflags "-X main.buildVersion=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := client.NewRootCommand(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), os.Stdin, os.Stdout)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, ui.FailureLine(err.Error()))
		os.Exit(1)
	}
}
