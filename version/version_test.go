package version

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestGetSemanticVersion(t *testing.T) {
	// Table test
	cases := []struct {
		Raw      string
		Expected string
	}{
		// Bare integers expand to '{n}.0.0'
		{"1", "1.0.0"},
		{"5", "5.0.0"},
		{"007", "7.0.0"},
		// Already-canonical input is untouched
		{"1.2.3", "1.2.3"},
		{"0.0.0", "0.0.0"},
		{"10.20.30", "10.20.30"},
		{"1.2.3-beta1", "1.2.3-beta1"},
		// Partial shapes
		{"1.2", "1.2.0"},
		{"1.2.03", "1.2.3"},
		// Non-digit prefixes are discarded
		{"v8.17.0", "8.17.0"},
		{"someText1.2.3", "1.2.3"},
		{"version 2.4", "2.4.0"},
		// Tails split into patch digits and verbatim pre-release text
		{"1.2.3.patch1", "1.2.3-patch1"},
		{"1.2b1", "1.2.0-b1"},
		{"1-beta", "1.0.0-beta"},
		{"1.2-beta1", "1.2.0-beta1"},
		{"1.2.3-beta.1", "1.2.3-beta.1"},
		{"1.2.3_4", "1.2.3-4"},
		// A bare trailing separator normalizes away
		{"1.0.0-", "1.0.0"},
		{"1.2.", "1.2.0"},
	}

	for _, tcase := range cases {
		t.Run(fmt.Sprintf("%q", tcase.Raw), func(t *testing.T) {
			got, err := GetSemanticVersion(tcase.Raw, nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tcase.Expected {
				t.Errorf("expected %q, got %q", tcase.Expected, got)
			}
		})
	}
}

func TestGetSemanticVersion_Idempotent(t *testing.T) {
	for _, raw := range []string{"1.2b1", "1.2.3.patch1", "v8.17.0", "1-beta", "18"} {
		first, err := GetSemanticVersion(raw, nil)
		if err != nil {
			t.Fatalf("unexpected error on %q: %v", raw, err)
		}
		second, err := GetSemanticVersion(first, nil)
		if err != nil {
			t.Fatalf("unexpected error on %q: %v", first, err)
		}
		if first != second {
			t.Errorf("normalization of %q is not idempotent: %q != %q", raw, first, second)
		}
	}
}

func TestGetSemanticVersion_OmitPreRelease(t *testing.T) {
	cases := []struct {
		Raw      string
		Expected string
	}{
		{"1.2.3.patch1", "1.2.3"},
		{"1.2b1", "1.2.0"},
		{"1.2.3-beta1", "1.2.3"},
		{"1.2.3", "1.2.3"},
	}

	for _, tcase := range cases {
		got, err := GetSemanticVersion(tcase.Raw, &Options{OmitPreRelease: true})
		if err != nil {
			t.Fatalf("unexpected error on %q: %v", tcase.Raw, err)
		}
		if got != tcase.Expected {
			t.Errorf("expected %q for %q, got %q", tcase.Expected, tcase.Raw, got)
		}
		if strings.Contains(got, "-") {
			t.Errorf("omitted result %q still contains a pre-release separator", got)
		}
	}
}

func TestGetSemanticVersion_RoundTrip(t *testing.T) {
	// full == stripped + '-' + preRelease whenever a pre-release exists
	for _, raw := range []string{"1.2b1", "1.2.3.patch1", "1-beta", "1.2.3-beta.1"} {
		full, err := GetSemanticVersion(raw, nil)
		if err != nil {
			t.Fatalf("unexpected error on %q: %v", raw, err)
		}
		stripped, err := GetSemanticVersion(raw, &Options{OmitPreRelease: true})
		if err != nil {
			t.Fatalf("unexpected error on %q: %v", raw, err)
		}
		if !strings.HasPrefix(full, stripped+"-") {
			t.Errorf("round trip broken for %q: full %q, stripped %q", raw, full, stripped)
		}
	}
}

func TestGetSemanticVersion_Errors(t *testing.T) {
	for _, raw := range []string{"thisIsNotAVersion", "", "beta", "..."} {
		t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
			got, err := GetSemanticVersion(raw, nil)
			if err == nil {
				t.Fatalf("expected error, got result %q", got)
			}
			var uerr *UnparsableVersionError
			if !errors.As(err, &uerr) {
				t.Fatalf("expected UnparsableVersionError, got %T", err)
			}
			if uerr.Version != raw {
				t.Errorf("error carries wrong input: %q", uerr.Version)
			}
			if !strings.Contains(err.Error(), fmt.Sprintf("%q", raw)) {
				t.Errorf("error message %q does not mention the input", err.Error())
			}
		})
	}
}
