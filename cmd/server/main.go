// Command server runs the deck builder HTTP server.
//
// Build metadata is injected by the linker:
//
//	go build -ldflags "-X main.buildVersion=v1.0.0 -X main.buildDate=$(date -u +%F) -X main.buildCommit=$(git rev-parse --short HEAD)"
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-deck-builder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newRootCommand(buildInfo).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
