package cli

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
)

func serveReleases(t *testing.T, status int, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/"+updateRepo+"/releases" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	old := githubAPI
	githubAPI = srv.URL
	t.Cleanup(func() { githubAPI = old })
}

func TestDetectLatestFallback(t *testing.T) {
	platform := runtime.GOOS + "_" + runtime.GOARCH
	serveReleases(t, http.StatusOK, `[
		{"tag_name": "v0.2.0", "assets": [{"name": "unborder_other", "browser_download_url": "https://example.invalid/a"}]},
		{"tag_name": "v0.9.0", "prerelease": true},
		{"tag_name": "v1.0.0", "draft": true},
		{"tag_name": "nightly", "name": "release 0.3.1", "assets": [
			{"name": "unborder_other", "browser_download_url": "https://example.invalid/other"},
			{"name": "unborder_`+platform+`.tar.gz", "browser_download_url": "https://example.invalid/mine"}
		]},
		{"tag_name": "latest"}
	]`)

	rel, found, err := detectLatestFallback(updateRepo)
	if err != nil {
		t.Fatalf("detectLatestFallback failed: %v", err)
	}
	if !found || rel == nil {
		t.Fatalf("expected a release")
	}
	if rel.Version.String() != "0.3.1" {
		t.Fatalf("expected 0.3.1, got %s", rel.Version)
	}
	if rel.AssetURL != "https://example.invalid/mine" {
		t.Fatalf("expected platform asset, got %q", rel.AssetURL)
	}
}

func TestDetectLatestFallbackEmpty(t *testing.T) {
	serveReleases(t, http.StatusOK, `[{"tag_name": "snapshot"}]`)
	rel, found, err := detectLatestFallback(updateRepo)
	if err != nil || found || rel != nil {
		t.Fatalf("expected nothing found, got %v %v %v", rel, found, err)
	}
}

func TestDetectLatestFallbackHTTPError(t *testing.T) {
	serveReleases(t, http.StatusForbidden, `{"message": "rate limited"}`)
	if _, _, err := detectLatestFallback(updateRepo); err == nil {
		t.Fatalf("expected error for non-200 response")
	}
}

func TestPickAsset(t *testing.T) {
	if got := pickAsset(nil); got != "" {
		t.Fatalf("expected empty URL, got %q", got)
	}
	got := pickAsset([]releaseAsset{{Name: "a", BrowserDownloadURL: "u1"}, {Name: "b", BrowserDownloadURL: "u2"}})
	if got != "u1" {
		t.Fatalf("expected first asset as fallback, got %q", got)
	}
}
