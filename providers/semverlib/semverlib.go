/*
Package semverlib wraps the external semantic-versioning library behind
the three operations this repository needs: three-way comparison, range
validity checking and satisfies checking.

The surface is kept this narrow on purpose so the backing library can be
swapped without touching the core packages.
*/
package semverlib

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Library is the narrow semantic-versioning capability surface.
type Library interface {
	// Compare returns -1, 0 or 1 comparing v1 to v2 with standard semver
	// precedence. Both arguments must be canonical semantic versions.
	Compare(v1, v2 string) (int, error)
	// ValidRange reports whether rng is a valid range expression. When
	// rng is additionally a strict, fully specified version, pin holds
	// its canonical rendering (empty otherwise).
	ValidRange(rng string) (pin string, ok bool)
	// Satisfies reports whether version matches the range expression.
	Satisfies(version, rng string) (bool, error)
}

// Default is a ready-to-use stateless Library instance.
var Default Library = Masterminds{}

// Masterminds implements Library on top of github.com/Masterminds/semver.
type Masterminds struct{}

// Compare parses both versions strictly and delegates the comparison.
func (Masterminds) Compare(v1, v2 string) (int, error) {
	a, err := semver.StrictNewVersion(v1)
	if err != nil {
		return 0, fmt.Errorf("invalid semantic version %q: %w", v1, err)
	}
	b, err := semver.StrictNewVersion(v2)
	if err != nil {
		return 0, fmt.Errorf("invalid semantic version %q: %w", v2, err)
	}
	return a.Compare(b), nil
}

// ValidRange checks rng against the constraint grammar. The pin value is
// only produced for bare, fully specified versions: the backing library
// re-renders range expressions verbatim instead of desugaring them, so
// rendering equality alone cannot tell a pin from a degenerate range.
func (Masterminds) ValidRange(rng string) (string, bool) {
	if _, err := semver.NewConstraint(rng); err != nil {
		return "", false
	}
	if v, err := semver.StrictNewVersion(rng); err == nil {
		return v.String(), true
	}
	return "", true
}

// Satisfies checks a concrete version against a range expression.
func (Masterminds) Satisfies(version, rng string) (bool, error) {
	c, err := semver.NewConstraint(rng)
	if err != nil {
		return false, fmt.Errorf("invalid range %q: %w", rng, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("invalid semantic version %q: %w", version, err)
	}
	return c.Check(v), nil
}
