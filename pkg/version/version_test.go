package version

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewer(t *testing.T) {
	cases := []struct {
		candidate, current string
		want               bool
	}{
		{"1.2.10", "1.2.9", true},
		{"1.10.0", "1.9.3", true},
		{"1.2.3", "1.2.3", false},
		{"1.2.3", "1.2.3-dirty", false},
		{"0.9.0", "1.0.0", false},
		{"v2.0.0", "1.99.99", true},
	}
	for _, c := range cases {
		if got := newer(c.candidate, c.current); got != c.want {
			t.Errorf("newer(%q, %q) = %v, want %v", c.candidate, c.current, got, c.want)
		}
	}
}

func TestLatestRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v1.4.0"}`))
	}))
	defer srv.Close()

	orig := latestReleaseURL
	latestReleaseURL = srv.URL
	defer func() { latestReleaseURL = orig }()

	if v, ok := latestRelease("1.3.2"); !ok || v != "1.4.0" {
		t.Fatalf("latestRelease = %q, %v", v, ok)
	}
	if _, ok := latestRelease("1.4.0"); ok {
		t.Fatal("same version must not be reported")
	}
	if _, ok := latestRelease("0.0.0-dev"); ok {
		t.Fatal("dev builds are never checked")
	}
}

func TestFormatVersion(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildTime
	defer func() { Version, Commit, BuildTime = origVersion, origCommit, origBuild }()

	Version, Commit, BuildTime = "1.2.3", "", ""
	if got := FormatVersion(); got != "1.2.3 (development)" {
		t.Fatalf("FormatVersion = %q", got)
	}

	Commit, BuildTime = "abc1234", "2026-01-02T03:04:05Z"
	if got := FormatVersion(); !strings.Contains(got, "commit: abc1234") || !strings.Contains(got, "built at") {
		t.Fatalf("FormatVersion = %q", got)
	}
}
