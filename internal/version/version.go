// Package version holds build metadata injected with -ldflags.
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/sofic/sofic/internal/version.Version=v1.2.3"
var Version = "dev"

// Tool is the program name used in reports.
const Tool = "sofic"
