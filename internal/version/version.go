package version

import (
	"fmt"
	"runtime"
)

// Build-time variables, set via -ldflags.
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Short returns only the version number.
func Short() string {
	return Version
}

// Info returns detailed version information.
func Info() string {
	return fmt.Sprintf("bizchat %s\ncommit: %s\nbuilt: %s\ngo: %s",
		Version, Commit, BuildTime, runtime.Version())
}
