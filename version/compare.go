package version

import (
	"github.com/bitnami/node-version-utils/providers/semverlib"
)

// lib is the external semantic-versioning capability the comparator and
// classifier delegate to. Swappable for tests.
var lib semverlib.Library = semverlib.Default

// CompareVersions compares two free-form version strings, returning -1,
// 0 or 1. Both inputs are normalized first (pre-release retained), the
// three-way comparison itself is delegated to the external library with
// standard semver precedence: major, minor, patch, then pre-release,
// where a present pre-release sorts lower than none.
//
// Normalization failures on either input propagate unchanged. A tail the
// strict pre-release grammar still rejects after normalization (e.g. an
// underscore inside the tag) surfaces as the library's error.
func CompareVersions(v1, v2 string) (int, error) {
	sv1, err := GetSemanticVersion(v1, nil)
	if err != nil {
		return 0, err
	}
	sv2, err := GetSemanticVersion(v2, nil)
	if err != nil {
		return 0, err
	}
	return lib.Compare(sv1, sv2)
}
