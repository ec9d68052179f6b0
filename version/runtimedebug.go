package version

import (
	"fmt"
	"runtime/debug"
)

// BuildInfo returns the build information
func BuildInfo() (*debug.BuildInfo, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, fmt.Errorf("fetching build info failed")
	}

	if bi == nil {
		return nil, fmt.Errorf("build information is empty")
	}

	return bi, nil
}

// Describe returns a one-line description of the running binary:
// main package path, module version and Go version.
func Describe() string {
	bi, err := BuildInfo()
	if err != nil {
		return err.Error()
	}

	path := bi.Path
	if path == "" {
		path = bi.Main.Path
	}

	ver := bi.Main.Version
	if ver == "" {
		ver = "(devel)"
	}

	return fmt.Sprintf("%s %s %s", path, ver, bi.GoVersion)
}
