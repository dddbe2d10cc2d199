// Package version carries the build-time version string.
package version

// Version is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/svcurls/svcurls/pkg/version.Version=1.0.0'"
var Version = "dev"
