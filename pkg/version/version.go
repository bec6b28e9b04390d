// Package version exposes the aercomp build version.
package version

// version is overridden at build time via -ldflags "-X github.com/oxyfarm/aercomp/pkg/version.version=v1.2.3".
var version = "dev" //nolint:gochecknoglobals // Set by the linker at build time.

// GetVersion returns the version string embedded at build time, or "dev" for
// local builds.
func GetVersion() string {
	return version
}
