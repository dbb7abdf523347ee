/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package updater checks the project's release feed for a newer published
// version. It prefers the JSON release API and falls back to scraping the
// public releases page when the API is unavailable.
package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/mod/semver"
	"golang.org/x/sync/errgroup"

	"github.com/mikeb26/swisstd/internal"
)

const (
	feedURL      = "https://api.github.com/repos/mikeb26/swisstd/releases/latest"
	releasesURL  = "https://github.com/mikeb26/swisstd/releases"
	checkMaxAge  = 24 * time.Hour
	fetchTimeout = 10 * time.Second
)

// Release describes the latest published version.
type Release struct {
	Version     string
	Notes       string
	DownloadURL string
}

type Checker struct {
	currentVersion string
	httpClient     *http.Client

	feedURL     string
	releasesURL string
}

func NewChecker(currentVersion string) *Checker {
	return &Checker{
		currentVersion: currentVersion,
		httpClient:     internal.NewCachedHttpClient(checkMaxAge),
		feedURL:        feedURL,
		releasesURL:    releasesURL,
	}
}

// Check fetches the latest release and reports whether it is newer than
// the running version. Version comparison is semantic, so "0.10.0"
// correctly sorts after "0.9.1".
func (c *Checker) Check(ctx context.Context) (*Release, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	var relViaApi, relViaWeb *Release
	var apiErr, webErr error
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		relViaApi, apiErr = c.fetchViaApi(ctx)
		return nil
	})
	g.Go(func() error {
		relViaWeb, webErr = c.fetchViaWeb(ctx)
		return nil
	})
	_ = g.Wait()

	// prefer the api response
	rel := relViaApi
	if apiErr != nil {
		if webErr != nil {
			return nil, false, fmt.Errorf("unable to check for updates: %w", apiErr)
		}
		rel = relViaWeb
	}

	return rel, newerThan(rel.Version, c.currentVersion), nil
}

func newerThan(latest, current string) bool {
	return semver.Compare(canonicalVersion(latest), canonicalVersion(current)) > 0
}

func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}

// fetchViaApi retrieves the latest release from the JSON release feed.
func (c *Checker) fetchViaApi(ctx context.Context) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch release feed (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch release feed (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch %v: http status: %v", c.feedURL,
			resp.StatusCode)
	}

	var feed struct {
		TagName string `json:"tag_name"`
		Body    string `json:"body"`
		Assets  []struct {
			BrowserDownloadURL string `json:"browser_download_url"`
		} `json:"assets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("unable to parse release feed: %w", err)
	}
	if feed.TagName == "" {
		return nil, fmt.Errorf("release feed returned an empty tag")
	}

	rel := &Release{
		Version:     strings.TrimPrefix(feed.TagName, "v"),
		Notes:       feed.Body,
		DownloadURL: c.releasesURL,
	}
	// the primary release asset is listed first
	if len(feed.Assets) > 0 {
		rel.DownloadURL = feed.Assets[0].BrowserDownloadURL
	}

	return rel, nil
}

// fetchViaWeb retrieves the latest release by scraping the public releases
// page. Only the version can be recovered this way; notes stay empty and
// the download url points at the page itself.
func (c *Checker) fetchViaWeb(ctx context.Context) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.releasesURL, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch releases page (new): %w", err)
	}
	req.Header.Set("User-Agent", internal.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch releases page (do): %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch %v: http status: %v",
			c.releasesURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to parse releases page: %w", err)
	}

	version := ""
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, _ := s.Attr("href")
		idx := strings.Index(href, "/releases/tag/")
		if idx == -1 {
			return true
		}
		tag := href[idx+len("/releases/tag/"):]
		if tag == "" {
			return true
		}
		version = strings.TrimPrefix(tag, "v")
		return false
	})
	if version == "" {
		return nil, fmt.Errorf("no release tags found on %v", c.releasesURL)
	}

	return &Release{
		Version:     version,
		DownloadURL: c.releasesURL,
	}, nil
}
