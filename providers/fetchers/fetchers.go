/*
Package fetchers provides file and release-tag fetching for local and
remote repositories.
*/
package fetchers

import (
	"context"
	"errors"
)

var (
	ErrFileNotFound = errors.New("requirement file not found")
)

// FileFetcher retrieves file contents by repository-relative path.
type FileFetcher interface {
	FileContent(ctx context.Context, path string) ([]byte, error)
}

// TagFetcher lists release tag names, newest first.
type TagFetcher interface {
	Tags(ctx context.Context) ([]string, error)
}

// ByteMapFetcher serves file contents from memory (useful for testing or
// for building custom repository logic).
type ByteMapFetcher struct {
	Files map[string][]byte
}

// FileContent retrieves (if found) contents from the map using the path
// argument as the key.
func (f ByteMapFetcher) FileContent(ctx context.Context, path string) ([]byte, error) {
	b, ok := f.Files[path]
	if !ok {
		return nil, ErrFileNotFound
	}
	return b, nil
}
