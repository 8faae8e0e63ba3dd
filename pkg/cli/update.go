package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/blang/semver"
	"github.com/rhysd/go-github-selfupdate/selfupdate"
)

const updateRepo = "Fepozopo/unborder"

// githubAPI is the releases API root; tests point it at a local server.
var githubAPI = "https://api.github.com"

var semverRe = regexp.MustCompile(`v?\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?(\+[0-9A-Za-z.-]+)?`)

type releaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

// detectLatestFallback queries the GitHub Releases API and returns the
// highest-versioned published, non-prerelease release whose tag (or name)
// contains a semver. It returns (nil, false, nil) when nothing qualifies.
func detectLatestFallback(repo string) (*selfupdate.Release, bool, error) {
	apiURL := fmt.Sprintf("%s/repos/%s/releases", githubAPI, repo)
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(apiURL)
	if err != nil {
		return nil, false, fmt.Errorf("github API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("failed reading github response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("github API returned status %d: %s", resp.StatusCode, string(body))
	}

	var releases []struct {
		TagName    string         `json:"tag_name"`
		Name       string         `json:"name"`
		Draft      bool           `json:"draft"`
		Prerelease bool           `json:"prerelease"`
		Assets     []releaseAsset `json:"assets"`
	}
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, false, fmt.Errorf("failed to decode github releases: %w", err)
	}

	var candidates []selfupdate.Release
	for _, r := range releases {
		if r.Draft || r.Prerelease {
			continue
		}
		match := semverRe.FindString(r.TagName)
		if match == "" {
			match = semverRe.FindString(r.Name)
		}
		if match == "" {
			continue
		}
		v, err := semver.Parse(strings.TrimPrefix(match, "v"))
		if err != nil {
			continue
		}
		candidates = append(candidates, selfupdate.Release{Version: v, AssetURL: pickAsset(r.Assets)})
	}
	if len(candidates) == 0 {
		return nil, false, nil
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Version.GT(candidates[j].Version)
	})
	best := candidates[0]
	return &best, true, nil
}

// pickAsset prefers an asset built for this platform, then the first one.
func pickAsset(assets []releaseAsset) string {
	platform := runtime.GOOS + "_" + runtime.GOARCH
	fallback := ""
	for _, a := range assets {
		name := strings.ToLower(a.Name)
		if strings.Contains(name, platform) {
			return a.BrowserDownloadURL
		}
		if fallback == "" {
			fallback = a.BrowserDownloadURL
		}
	}
	return fallback
}

// CheckForUpdates reports the latest release and, after confirmation, replaces
// the running executable with it.
func CheckForUpdates(w io.Writer) error {
	fmt.Fprintf(w, "Current version: %s\n", Version)
	latest, found, err := detectLatestFallback(updateRepo)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if !found || latest == nil {
		fmt.Fprintf(w, "No releases found for %s.\n", updateRepo)
		return nil
	}
	fmt.Fprintf(w, "Latest version: %s\n", latest.Version)

	currentVer, parseErr := semver.Parse(strings.TrimPrefix(Version, "v"))
	if parseErr != nil {
		fmt.Fprintf(w, "warning: could not parse current version %q: %v\n", Version, parseErr)
	} else if !latest.Version.GT(currentVer) {
		fmt.Fprintf(w, "You are already running the latest version: %s.\n", currentVer)
		return nil
	}

	if latest.AssetURL == "" {
		fmt.Fprintf(w, "A new version (%s) is available but there is no downloadable asset.\n", latest.Version)
		return nil
	}

	answer, perr := PromptLine(fmt.Sprintf("A new version (%s) is available. Update now? (y/N): ", latest.Version))
	if perr != nil {
		return fmt.Errorf("failed reading input: %w", perr)
	}
	answer = strings.ToLower(answer)
	if answer != "y" && answer != "yes" {
		fmt.Fprintln(w, "Update cancelled.")
		return nil
	}

	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	debugf("downloading %s over %s", latest.AssetURL, exe)
	if err := selfupdate.UpdateTo(latest.AssetURL, exe); err != nil {
		return fmt.Errorf("update failed: %w", err)
	}
	fmt.Fprintf(w, "Updated to version %s.\n", latest.Version)
	return nil
}
