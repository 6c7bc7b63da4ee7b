package fetchers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v33/github"
)

// GitHubFetcher reads files and tags from a '{owner}/{repo}' GitHub
// repository.
type GitHubFetcher struct {
	Owner string
	Repo  string
	// Ref can refer to a commit SHA, branch or tag. Empty means the
	// repository default branch.
	Ref          string
	githubClient *github.Client
}

// NewGitHubFetcher constructs a GitHubFetcher for the given repository.
// httpClient can be used as an OAuth2 or BasicAuth transport, for example
// to raise API rate limits.
func NewGitHubFetcher(httpClient *http.Client, owner, repo, ref string) *GitHubFetcher {
	return &GitHubFetcher{
		Owner:        owner,
		Repo:         repo,
		Ref:          ref,
		githubClient: github.NewClient(httpClient),
	}
}

// FileContent fetches one file from the repository at the configured ref.
// Path argument is the root-related file path.
func (f *GitHubFetcher) FileContent(ctx context.Context, path string) ([]byte, error) {
	opts := github.RepositoryContentGetOptions{Ref: f.Ref}

	rc, dc, resp, err := f.githubClient.Repositories.GetContents(ctx, f.Owner, f.Repo, path, &opts)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("unable to load %q from github: %w", path, err)
	}

	if len(dc) != 0 {
		return nil, fmt.Errorf("path %q is a directory, not a file", path)
	}

	c, err := rc.GetContent()

	return []byte(c), err
}

// Tags lists the repository tag names, walking every page.
func (f *GitHubFetcher) Tags(ctx context.Context) ([]string, error) {
	opts := github.ListOptions{PerPage: 100}

	var tags []string
	for {
		page, resp, err := f.githubClient.Repositories.ListTags(ctx, f.Owner, f.Repo, &opts)
		if err != nil {
			return nil, fmt.Errorf("unable to list tags for %s/%s: %w", f.Owner, f.Repo, err)
		}
		for _, t := range page {
			tags = append(tags, t.GetName())
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return tags, nil
}
