// Package version exposes the build version of the pager tool.
package version

// version is overridden at build time via -ldflags.
var version = "0.1.0-dev" //nolint:gochecknoglobals // set by the linker

// GetVersion returns the tool version.
func GetVersion() string {
	return version
}
