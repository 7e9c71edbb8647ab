package config

import "fmt"

// The following vars are set through linker options.
var (
	// ModuleName is the name of the binary, e.g. humtoken
	ModuleName = "humtoken"
	// Commit is the git commit hash of this build
	Commit = "< 40 chars git commit hash via ldflags >"
	// BuildDate is the timestamp of this build
	BuildDate = "1970-01-01T00:00:00+00:00"
)

// GetFormattedBuildArgs returns the build args as one line.
func GetFormattedBuildArgs() string {
	return fmt.Sprintf("%v @ %v (%v)", ModuleName, Commit, BuildDate)
}
