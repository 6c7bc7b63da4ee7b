package nodeversion

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/bitnami/node-version-utils/providers/semverlib"
	"github.com/bitnami/node-version-utils/version"
)

// SkipCheckEnvVar disables CheckRuntimeVersionSatisfies when set to a
// truthy value ('1', 'true', 'yes').
const SkipCheckEnvVar = "SKIP_RUNTIME_VERSION_CHECK"

// runtimeVersion reports the running runtime's version. Kept as a
// variable so tests can substitute the reported value.
var runtimeVersion = runtime.Version

// VersionMismatchError is returned when the running runtime does not
// satisfy the required range.
type VersionMismatchError struct {
	Version      string
	Requirements string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("current runtime version %q does not satisfy the requirement %q", e.Version, e.Requirements)
}

// CheckRuntimeVersionSatisfies verifies the running runtime version
// against a requirement range ('>=1.18', '^1.20', ...). The reported
// version is normalized first, so prefixes like 'go' drop out.
//
// Setting SKIP_RUNTIME_VERSION_CHECK to a truthy value bypasses the
// check entirely.
func CheckRuntimeVersionSatisfies(requirements string) error {
	switch strings.ToLower(os.Getenv(SkipCheckEnvVar)) {
	case "1", "true", "yes":
		return nil
	}

	current, err := version.GetSemanticVersion(runtimeVersion(), nil)
	if err != nil {
		return err
	}

	ok, err := semverlib.Default.Satisfies(current, requirements)
	if err != nil {
		return err
	}
	if !ok {
		return &VersionMismatchError{Version: current, Requirements: requirements}
	}

	return nil
}
