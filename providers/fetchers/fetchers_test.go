package fetchers

import (
	"context"
	"testing"
)

func TestByteMapFetcher(t *testing.T) {
	bf := ByteMapFetcher{Files: map[string][]byte{
		".nvmrc": []byte("18.17.0"),
	}}

	content, err := bf.FileContent(context.Background(), ".nvmrc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "18.17.0" {
		t.Errorf("unexpected content %q", string(content))
	}

	if _, err := bf.FileContent(context.Background(), "package.json"); err != ErrFileNotFound {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}
}
