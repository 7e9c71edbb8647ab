package util

import (
	"flag"
	"strings"
)

// RunningInTest reports whether the binary is a go test binary.
func RunningInTest() bool {
	if flag.Lookup("test.v") != nil {
		return true
	}
	return strings.HasSuffix(flag.CommandLine.Name(), ".test")
}
