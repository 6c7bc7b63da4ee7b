package nodeversion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/bitnami/node-version-utils/providers/api/nodedist"
	"github.com/bitnami/node-version-utils/providers/semverlib"
	"github.com/bitnami/node-version-utils/version"
)

// ErrNoSatisfyingRelease is returned when no published release matches
// the requirement.
var ErrNoSatisfyingRelease = errors.New("no published release satisfies the requirement")

// ReleaseChecker answers which published Node.js releases satisfy a
// version requirement.
type ReleaseChecker interface {
	// LatestSatisfying returns the newest release satisfying the range.
	LatestSatisfying(ctx context.Context, rng string) (*Release, error)
	// Satisfying returns every release satisfying the range, newest first.
	Satisfying(ctx context.Context, rng string) ([]Release, error)
	// Outdated reports whether a newer satisfying release than current exists.
	Outdated(ctx context.Context, current, rng string) (bool, error)
}

// Release represents one published Node.js release.
type Release struct {
	// Version is the canonical 'major.minor.patch' form.
	Version string `json:"version"`
	// Raw is the version exactly as the index publishes it (e.g. 'v18.17.0').
	Raw  string `json:"raw"`
	Date string `json:"date"`
	// LTS holds the LTS codename, empty for non-LTS releases.
	LTS      string `json:"lts,omitempty"`
	Security bool   `json:"security"`
}

// distClient is the index capability the checker needs.
type distClient interface {
	Index(ctx context.Context) ([]nodedist.Release, *http.Response, error)
}

// NewDistReleaseChecker constructs a checker over the public Node.js
// release index.
func NewDistReleaseChecker(httpClient *http.Client) (ReleaseChecker, error) {
	api, err := nodedist.NewClient(httpClient, nil)
	if err != nil {
		return nil, err
	}
	return &DistReleaseChecker{api: api, lib: semverlib.Default}, nil
}

// DistReleaseChecker implements ReleaseChecker over a dist index client.
type DistReleaseChecker struct {
	api distClient
	lib semverlib.Library
}

// Satisfying returns every indexed release matching the range, newest
// first. Index versions are normalized before the satisfies check, so
// the 'v' prefix the index uses does not matter.
func (rc DistReleaseChecker) Satisfying(ctx context.Context, rng string) ([]Release, error) {
	if _, ok := rc.lib.ValidRange(rng); !ok {
		return nil, fmt.Errorf("invalid version requirement %q", rng)
	}

	index, _, err := rc.api.Index(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load the release index: %w", err)
	}

	result := []Release{}
	for _, rel := range index {
		normalized, err := version.GetSemanticVersion(rel.Version, nil)
		if err != nil {
			// Not a version-shaped entry, skip it.
			continue
		}
		ok, err := rc.lib.Satisfies(normalized, rng)
		if err != nil || !ok {
			continue
		}
		result = append(result, Release{
			Version:  normalized,
			Raw:      rel.Version,
			Date:     rel.Date,
			LTS:      string(rel.LTS),
			Security: rel.Security,
		})
	}

	// The index is published newest-first, but keep the guarantee
	// explicit instead of trusting the transport.
	sort.SliceStable(result, func(i, j int) bool {
		n, err := version.CompareVersions(result[i].Version, result[j].Version)
		return err == nil && n > 0
	})

	return result, nil
}

// LatestSatisfying returns the newest release matching the range.
func (rc DistReleaseChecker) LatestSatisfying(ctx context.Context, rng string) (*Release, error) {
	rels, err := rc.Satisfying(ctx, rng)
	if err != nil {
		return nil, err
	}
	if len(rels) == 0 {
		return nil, ErrNoSatisfyingRelease
	}
	return &rels[0], nil
}

// Outdated reports whether a satisfying release newer than current has
// been published.
func (rc DistReleaseChecker) Outdated(ctx context.Context, current, rng string) (bool, error) {
	latest, err := rc.LatestSatisfying(ctx, rng)
	if err == ErrNoSatisfyingRelease {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	n, err := version.CompareVersions(current, latest.Version)
	if err != nil {
		return false, err
	}
	return n < 0, nil
}
