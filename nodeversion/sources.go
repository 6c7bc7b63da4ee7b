/*
Package nodeversion provides the high-level surface of the library:
requirement sources, release checking against the Node.js release index
and runtime version gating.
*/
package nodeversion

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/bitnami/node-version-utils/providers/fetchers"
	"github.com/bitnami/node-version-utils/providers/parsers"
)

// RequirementSource abstracts where the wanted Node.js version comes
// from, resolving it across the requirement files a project may carry.
type RequirementSource interface {
	// Requirement returns the raw Node version requirement: the pinned
	// version from .nvmrc/.node-version when one exists, otherwise the
	// engines.node range from package.json.
	Requirement(ctx context.Context) (string, error)
}

// gitRepoRgx is used to parse repository info from a GIT-compatible address string.
//
// Examples matching the regexp:
//     'git@myhostname:vendor/reponame.git'
//     'https://myhostname/vendor/reponame.git' and so on...
// Groups:
//     1: protocol (e.g. 'https://' or 'git@')
//     6: hostname (e.g. 'github.com')
//     8: full repo name (e.g. 'vendor/reponame')
var gitRepoRgx = regexp.MustCompile(`^(((git@)|(git:|ssh:|(http[s]?:\/\/))))([\w\.@\\-~]+)(:|\/)([\w\.@\:\/\-~]+)(\.git)(\/-)?`)

// supGitSrcs - supported git sources.
var supGitSrcs = []string{"github.com"}

// versionFiles are probed in order before falling back to package.json.
var versionFiles = []string{".nvmrc", ".node-version"}

// NewMemorySource constructs a RequirementSource over an in-memory file
// map (useful for testing or for building custom repository logic).
func NewMemorySource(files map[string][]byte) RequirementSource {
	return &fetcherSource{fetcher: fetchers.ByteMapFetcher{Files: files}}
}

// NewGitSource constructs a RequirementSource that reads the requirement
// files straight from a git repository.
//
// Ref can refer to a commit hash/branch/tag. You can pass a signed
// httpClient carrying OAuth2/BasicAuth information for increased API
// rate limits.
//
// repoAddr is the repository address (e.g. 'git@myhostname:vendor/reponame.git').
func NewGitSource(httpClient *http.Client, repoAddr, ref string) (RequirementSource, error) {
	repoData, err := parseGitAddr(repoAddr)
	if err != nil {
		return nil, err
	}
	fetcher := fetchers.NewGitHubFetcher(httpClient, repoData.vendor, repoData.repo, ref)
	return &fetcherSource{fetcher: fetcher}, nil
}

// fetcherSource resolves the requirement over any FileFetcher.
type fetcherSource struct {
	fetcher fetchers.FileFetcher
}

// Requirement resolves the Node version requirement: version files first
// (a pin wins over a range), then the package.json engines field.
func (s fetcherSource) Requirement(ctx context.Context) (string, error) {
	for _, name := range versionFiles {
		req, err := parsers.NewNvmrcParser(s.fetcher, name).Requirement(ctx)
		if err == nil {
			return req, nil
		}
		if err != parsers.ErrFileNotFound && err != parsers.ErrNoRequirement {
			return "", err
		}
	}

	return parsers.NewPackageJSONParser(s.fetcher).Requirement(ctx)
}

// gitRepo represents basic repository information.
type gitRepo struct {
	host, vendor, repo string
}

// parseGitAddr - helper to parse information from a git repository address string.
func parseGitAddr(addr string) (*gitRepo, error) {
	matches := gitRepoRgx.FindStringSubmatch(addr)
	if matches == nil || matches[6] == "" || matches[8] == "" {
		return nil, fmt.Errorf("unsupported git repository format %q", addr)
	}
	hostName, repoName := matches[6], matches[8]

	if !gitHostSupported(hostName) {
		return nil, fmt.Errorf("git source %q is not supported", hostName)
	}

	if !strings.Contains(repoName, "/") {
		return nil, fmt.Errorf("unable to parse vendor from name %q", repoName)
	}
	repoNameParts := strings.Split(repoName, "/")

	return &gitRepo{host: hostName, vendor: repoNameParts[0], repo: repoNameParts[1]}, nil
}

// gitHostSupported - helper to check git source support status.
func gitHostSupported(host string) bool {
	for _, v := range supGitSrcs {
		if v == host {
			return true
		}
	}
	return false
}
