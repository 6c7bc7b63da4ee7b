package parsers

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/bitnami/node-version-utils/providers/fetchers"
)

// NewNvmrcParser constructs a version-file parser.
// If the 'filename' parameter is an empty string - '.nvmrc' will be used instead.
func NewNvmrcParser(fetcher fetchers.FileFetcher, filename string) RequirementParser {
	if filename == "" {
		return &NvmrcParser{fetcher: fetcher, SourceName: ".nvmrc"}
	}
	return &NvmrcParser{fetcher: fetcher, SourceName: filename}
}

// NvmrcParser reads pinned versions from .nvmrc-style files
// (.nvmrc, .node-version).
type NvmrcParser struct {
	fetcher fetchers.FileFetcher
	// SourceName is the version file name (e.g. '.nvmrc').
	SourceName string
}

// Requirement method returns the pinned version from the file. Blank and
// comment lines are skipped, as are trailing comments ('18.17.0 # lts').
// 'lts/...' aliases are rejected since they name a moving target, not a
// version.
func (p NvmrcParser) Requirement(ctx context.Context) (string, error) {
	b, err := p.fetcher.FileContent(ctx, p.SourceName)
	if err != nil {
		if err == fetchers.ErrFileNotFound {
			return "", ErrFileNotFound
		}
		return "", fmt.Errorf("unable to fetch %s from the source: %w", p.SourceName, err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(b))
	for scanner.Scan() {
		line := scanner.Text()
		if idx := strings.Index(line, "#"); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(strings.ToLower(line), "lts/") {
			return "", fmt.Errorf("lts aliases are not supported, pin a version instead of %q", line)
		}
		return line, nil
	}

	return "", ErrNoRequirement
}
