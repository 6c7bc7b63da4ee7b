package parsers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bitnami/node-version-utils/providers/fetchers"
)

// NewPackageJSONParser constructs a manifest parser reading the
// 'engines.node' constraint from package.json.
func NewPackageJSONParser(fetcher fetchers.FileFetcher) RequirementParser {
	return &PackageJSONParser{fetcher: fetcher}
}

// PackageJSONParser represents the package.json manifest parser.
type PackageJSONParser struct {
	fetcher fetchers.FileFetcher
}

// packageJSON models the manifest fields this parser cares about.
type packageJSON struct {
	Engines map[string]string `json:"engines"`
}

// Requirement method returns the engines.node range expression.
func (p PackageJSONParser) Requirement(ctx context.Context) (string, error) {
	b, err := p.fetcher.FileContent(ctx, "package.json")
	if err != nil {
		if err == fetchers.ErrFileNotFound {
			return "", ErrFileNotFound
		}
		return "", fmt.Errorf("unable to fetch package.json from the source: %w", err)
	}

	var manifest packageJSON
	if err := json.Unmarshal(b, &manifest); err != nil {
		return "", fmt.Errorf("unable to parse package.json content: %w", err)
	}

	rng, ok := manifest.Engines["node"]
	if !ok || rng == "" {
		return "", ErrNoRequirement
	}

	return rng, nil
}
