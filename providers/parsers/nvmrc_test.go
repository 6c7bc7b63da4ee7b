package parsers

import (
	"context"
	"strings"
	"testing"

	"github.com/bitnami/node-version-utils/providers/fetchers"
)

func TestNvmrcRequirementMethod(t *testing.T) {
	// Table test cases
	cases := []struct {
		Name     string
		Content  string
		Expected string
	}{
		{"plain", "18.17.0\n", "18.17.0"},
		{"v prefix", "v20.1.0", "v20.1.0"},
		{"surrounding whitespace", "  16.20.2  \n", "16.20.2"},
		{"leading comments", "# pinned for CI\n\n18.17.0\n", "18.17.0"},
		{"slash comments", "// pinned for CI\n18.17.0\n", "18.17.0"},
		{"trailing comment", "18.17.0 # lts\n", "18.17.0"},
	}

	for _, v := range cases {
		t.Run(v.Name, func(t *testing.T) {
			bf := fetchers.ByteMapFetcher{Files: map[string][]byte{
				".nvmrc": []byte(v.Content),
			}}
			parser := NewNvmrcParser(bf, "")

			req, err := parser.Requirement(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req != v.Expected {
				t.Errorf("expected %q, got %q", v.Expected, req)
			}
		})
	}
}

func TestNvmrcRequirementMethod_CustomFilename(t *testing.T) {
	bf := fetchers.ByteMapFetcher{Files: map[string][]byte{
		".node-version": []byte("18.17.0\n"),
	}}
	parser := NewNvmrcParser(bf, ".node-version")

	req, err := parser.Requirement(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req != "18.17.0" {
		t.Errorf("unexpected requirement, got %q", req)
	}
}

func TestNvmrcRequirementMethod_Errors(t *testing.T) {
	// Table test cases
	cases := []struct {
		Name  string
		Files map[string][]byte
		Err   string
	}{
		{"missing file", map[string][]byte{"blablabla": []byte("18")}, ErrFileNotFound.Error()},
		{"empty file", map[string][]byte{".nvmrc": []byte("")}, ErrNoRequirement.Error()},
		{"comments only", map[string][]byte{".nvmrc": []byte("# nothing here\n")}, ErrNoRequirement.Error()},
		{"lts alias", map[string][]byte{".nvmrc": []byte("lts/hydrogen\n")}, "lts aliases are not supported"},
	}

	for _, v := range cases {
		t.Run(v.Name, func(t *testing.T) {
			bf := fetchers.ByteMapFetcher{Files: v.Files}
			parser := NewNvmrcParser(bf, "")

			req, err := parser.Requirement(context.Background())
			if err == nil || !strings.Contains(err.Error(), v.Err) {
				t.Errorf("expected error containing %q, got %v", v.Err, err)
			}
			if req != "" {
				t.Errorf("expected empty requirement on error, got %q", req)
			}
		})
	}
}
