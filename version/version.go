/*
Package version normalizes loosely formatted version strings into the
canonical 'major.minor.patch[-preRelease]' form and provides comparison
and classification built on top of it.

The normalizer is deliberately forgiving: build tooling runs into versions
such as '1.2b1', '1.2.3.patch1' or 'someText1.2.3' and still has to answer
"is the installed version new enough?".
*/
package version

import (
	"fmt"
	"regexp"
	"strconv"
)

// semverRgx splits a raw version into its leading major digits, an
// optional minor segment and an unparsed tail. Any non-digit prefix is
// discarded ('someText1.2.3' starts at '1').
//
// The minor group excludes '[', ']', letters, '-' and '.'. Downstream
// comparison behavior depends on this exact exclusion set, keep it as is.
var semverRgx *regexp.Regexp

// tailRgx splits the unparsed tail into optional patch digits, one
// optional separator and the remaining pre-release text.
var tailRgx *regexp.Regexp

func init() {
	semverRgx = regexp.MustCompile(`^[^0-9]*([0-9]+)(?:\.([^\[\]a-zA-Z\-.]*))?\.?(.*)$`)
	tailRgx = regexp.MustCompile(`^([0-9]*)([-._])?(.*)$`)
}

// Options alters GetSemanticVersion behavior.
type Options struct {
	// OmitPreRelease drops the '-preRelease' suffix from the result.
	// The tail is still consumed either way, only the rendering changes.
	OmitPreRelease bool
}

// UnparsableVersionError is returned when no leading numeric major
// segment can be found in the input.
type UnparsableVersionError struct {
	// Version is the offending input, unmodified.
	Version string
}

func (e *UnparsableVersionError) Error() string {
	return fmt.Sprintf("cannot convert provided version (%q) to semantic format", e.Version)
}

// GetSemanticVersion converts a free-form version string into canonical
// '{major}.{minor}.{patch}' text, with a '-{preRelease}' suffix when the
// input carries a pre-release tag and opts does not omit it.
//
// The mapping always prefers reading a leading digit run in the tail as
// the patch number over treating the whole tail as pre-release text, so
// '1.2.3.patch1' becomes '1.2.3-patch1' and '1.2b1' becomes '1.2.0-b1'.
// A bare separator with nothing behind it normalizes away ('1.0.0-' is
// '1.0.0'). The pre-release text itself is copied verbatim.
func GetSemanticVersion(version string, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}

	m := semverRgx.FindStringSubmatch(version)
	if m == nil {
		return "", &UnparsableVersionError{Version: version}
	}

	major := segmentInt(m[1])
	minor := segmentInt(m[2])

	var patch int
	var preRelease string
	if tail := m[3]; tail != "" {
		tm := tailRgx.FindStringSubmatch(tail)
		patch = segmentInt(tm[1])
		preRelease = tm[3]
	}

	out := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if preRelease != "" && !opts.OmitPreRelease {
		out += "-" + preRelease
	}

	return out, nil
}

// segmentInt returns the integer value of the leading base-10 digit run
// of a captured segment, 0 when there is none. The minor capture group
// can admit non-digit characters (e.g. '1_2'), only its digit prefix
// counts.
func segmentInt(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}
