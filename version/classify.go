package version

import "regexp"

// leadingDigitRgx matches strings that merely look specific ('1.1').
// Such strings are valid as a range only because pins and ranges overlap
// syntactically at that granularity.
var leadingDigitRgx = regexp.MustCompile(`^[0-9].*`)

// IsSpecificVersion reports whether version pins exactly one release, as
// opposed to denoting a range, being empty or being absent. It never
// fails: unparsable or malformed input degrades to false, so callers that
// need hard failure on bad input should not use it for validation.
//
// Rules, first match wins:
//  1. empty input is not specific
//  2. a strict semantic version rendering back to itself is a pin
//  3. anything the library rejects as a range is specific ('1.1beta')
//  4. anything left that starts with a digit is specific ('1.1')
//  5. everything else is a range ('^1.2.3', '>=1 <2')
func IsSpecificVersion(version string) bool {
	if version == "" {
		return false
	}

	pin, ok := lib.ValidRange(version)
	if ok && pin == version {
		return true
	}
	if !ok {
		return true
	}

	return leadingDigitRgx.MatchString(version)
}
