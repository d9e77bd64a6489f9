// Package selfupdate checks GitHub releases for a newer build and can
// replace the running binary in place.
package selfupdate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

const (
	defaultOwner           = "Aeffchen-dev"
	defaultRepo            = "checkin-roulette"
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
)

// Checker talks to the GitHub releases API.
type Checker struct {
	client          *http.Client
	apiBaseURL      string
	downloadBaseURL string
	owner           string
	repo            string
}

// Option customizes a Checker.
type Option func(*Checker)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithBaseURLs overrides the GitHub endpoints.
func WithBaseURLs(api, download string) Option {
	return func(c *Checker) {
		c.apiBaseURL = api
		c.downloadBaseURL = download
	}
}

// NewChecker creates a Checker with defaults.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:          &http.Client{Timeout: 30 * time.Second},
		apiBaseURL:      defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		owner:           defaultOwner,
		repo:            defaultRepo,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckResult describes the outcome of a version check.
type CheckResult struct {
	CurrentVersion  string
	LatestVersion   string
	UpdateAvailable bool
}

// Check compares the current version against the latest published release.
func (c *Checker) Check(ctx context.Context, current string) (*CheckResult, error) {
	if current == "(devel)" {
		return nil, ErrDevBuild
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest",
		strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)

	body, err := c.download(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("query latest release: %w", err)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.Unmarshal(body, &release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := normalizeVersion(release.TagName)
	cur := normalizeVersion(current)
	if !semver.IsValid(latest) {
		return nil, fmt.Errorf("release tag %q is not a valid version", release.TagName)
	}
	if !semver.IsValid(cur) {
		return nil, fmt.Errorf("current version %q is not a valid version", current)
	}

	return &CheckResult{
		CurrentVersion:  current,
		LatestVersion:   release.TagName,
		UpdateAvailable: semver.Compare(latest, cur) > 0,
	}, nil
}

// Update downloads the release binary for this platform, verifies its
// checksum and replaces the running executable. progress receives
// human-readable status lines.
func (c *Checker) Update(ctx context.Context, current string, progress func(string)) error {
	progress("Checking for latest version...")
	result, err := c.Check(ctx, current)
	if err != nil {
		return err
	}
	if !result.UpdateAvailable {
		return ErrAlreadyLatest
	}
	tag := result.LatestVersion

	asset, err := assetNameFor(runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	base := strings.TrimRight(c.downloadBaseURL, "/")
	assetURL := fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", base, c.owner, c.repo, tag, asset)
	checksumsURL := fmt.Sprintf("%s/%s/%s/releases/download/%s/checksums.txt", base, c.owner, c.repo, tag)

	progress(fmt.Sprintf("Downloading %s...", tag))
	binary, err := c.download(ctx, assetURL)
	if err != nil {
		return fmt.Errorf("download binary: %w", err)
	}

	progress("Verifying checksum...")
	checksumsData, err := c.download(ctx, checksumsURL)
	if err != nil {
		return fmt.Errorf("download checksums: %w", err)
	}
	expected, ok := parseChecksums(checksumsData)[asset]
	if !ok {
		return fmt.Errorf("no checksum for %s in checksums.txt", asset)
	}
	if err := verifyChecksum(binary, expected); err != nil {
		return err
	}

	progress("Applying update...")
	target, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := replaceBinary(binary, target); err != nil {
		return fmt.Errorf("apply update: %w", err)
	}

	progress(fmt.Sprintf("Updated to %s", tag))
	return nil
}

// assetNameFor returns the release asset name for a platform. Releases ship
// one raw binary per platform.
func assetNameFor(goos, goarch string) (string, error) {
	switch goarch {
	case "amd64", "arm64":
	default:
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}

	switch goos {
	case "darwin", "linux":
		return fmt.Sprintf("checkin-roulette_%s_%s", goos, goarch), nil
	case "windows":
		return fmt.Sprintf("checkin-roulette_%s_%s.exe", goos, goarch), nil
	default:
		return "", fmt.Errorf("unsupported operating system: %s", goos)
	}
}

func (c *Checker) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}

// parseChecksums reads "hash  filename" lines.
func parseChecksums(data []byte) map[string]string {
	result := make(map[string]string)
	for _, line := range strings.Split(string(data), "\n") {
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) != 2 {
			continue
		}
		result[parts[1]] = parts[0]
	}
	return result
}

func verifyChecksum(data []byte, expectedHex string) error {
	h := sha256.Sum256(data)
	actual := hex.EncodeToString(h[:])
	if actual != expectedHex {
		return fmt.Errorf("%w: expected %s, got %s", ErrChecksum, expectedHex, actual)
	}
	return nil
}

// replaceBinary writes data next to target and renames it into place, so
// the swap is atomic on the same filesystem.
func replaceBinary(data []byte, target string) error {
	tmp := filepath.Join(filepath.Dir(target), ".checkin-roulette.new")
	if err := os.WriteFile(tmp, data, 0o755); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// normalizeVersion gives semver the "v" prefix it insists on.
func normalizeVersion(v string) string {
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
