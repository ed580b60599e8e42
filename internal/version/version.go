// Where: autoshutdown/internal/version/version.go
// What: Version information retrieval.
// Why: Report which build of the function or CLI is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version can be set at link time: -ldflags "-X .../internal/version.Version=v1.2.0".
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns Version when set, otherwise the short VCS revision
// with a "(dirty)" suffix for modified trees, otherwise "dev".
func GetVersion() string {
	if Version != "" {
		return Version
	}
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
