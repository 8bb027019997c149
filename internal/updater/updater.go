// Package updater checks GitHub Releases for a newer OverLearn version.
package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/overlearn/overlearn/internal/buildinfo"
)

// DefaultReleasesURL is the GitHub API endpoint for the latest release.
const DefaultReleasesURL = "https://api.github.com/repos/overlearn/overlearn/releases/latest"

// ReleaseInfo contains information about a GitHub release.
type ReleaseInfo struct {
	TagName     string    `json:"tag_name"`
	HTMLURL     string    `json:"html_url"`
	PublishedAt time.Time `json:"published_at"`
}

// UpdateResult contains the result of an update check.
type UpdateResult struct {
	Available      bool
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
}

// Checker queries a releases endpoint.
type Checker struct {
	URL    string
	Client *http.Client
}

// NewChecker returns a checker for the public OverLearn releases.
func NewChecker() *Checker {
	return &Checker{
		URL:    DefaultReleasesURL,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Check compares current against the latest published release.
func (c *Checker) Check(ctx context.Context, current string) (*UpdateResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", "overlearn/"+current)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// No releases yet
		return &UpdateResult{CurrentVersion: current}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d", resp.StatusCode)
	}

	var release ReleaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest, err := ParseSemver(release.TagName)
	if err != nil {
		return nil, fmt.Errorf("parse latest version %q: %w", release.TagName, err)
	}

	result := &UpdateResult{
		CurrentVersion: current,
		LatestVersion:  latest.String(),
		ReleaseURL:     release.HTMLURL,
	}

	cur, err := ParseSemver(current)
	if err != nil {
		// "dev" and other unparseable builds are treated as older.
		result.Available = true
		return result, nil
	}
	result.Available = cur.LessThan(latest)
	return result, nil
}

// CheckForUpdate checks the running build against the public releases.
func CheckForUpdate(ctx context.Context) (*UpdateResult, error) {
	return NewChecker().Check(ctx, strings.TrimPrefix(buildinfo.Version, "v"))
}
