// Package version holds the build version, set at link time with
// -ldflags "-X github.com/gridsnake/engine/version.Version=...".
package version

// Version is the release this binary was built from.
var Version = "dev"
