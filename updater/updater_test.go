/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package updater

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewerThan(t *testing.T) {
	cases := []struct {
		name    string
		latest  string
		current string
		want    bool
	}{
		{name: "patch newer", latest: "0.3.1", current: "0.3.0", want: true},
		{name: "same version", latest: "0.3.0", current: "0.3.0", want: false},
		{name: "older", latest: "0.2.9", current: "0.3.0", want: false},
		{name: "semantic not lexical", latest: "0.10.0", current: "0.9.1", want: true},
		{name: "v prefix tolerated", latest: "v0.4.0", current: "0.3.0", want: true},
		{name: "major bump", latest: "1.0.0", current: "0.9.9", want: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := newerThan(c.latest, c.current); got != c.want {
				t.Errorf("newerThan(%q, %q) = %v; want %v",
					c.latest, c.current, got, c.want)
			}
		})
	}
}

func TestCheckPrefersApi(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"tag_name": "v0.4.0", "body": "notes here",
				"assets": [{"browser_download_url": "https://example.com/swisstd"}]}`))
		}))
	defer api.Close()
	web := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><body>
				<a href="/mikeb26/swisstd/releases/tag/v0.9.9">release</a>
				</body></html>`))
		}))
	defer web.Close()

	c := NewChecker("0.3.0")
	c.feedURL = api.URL
	c.releasesURL = web.URL

	rel, newer, err := c.Check(context.Background())
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !newer {
		t.Errorf("Check reported no newer release")
	}
	if rel.Version != "0.4.0" {
		t.Errorf("Version = %q; want %q (api preferred over web)", rel.Version, "0.4.0")
	}
	if rel.Notes != "notes here" {
		t.Errorf("Notes = %q; want %q", rel.Notes, "notes here")
	}
	if rel.DownloadURL != "https://example.com/swisstd" {
		t.Errorf("DownloadURL = %q; want the release asset url", rel.DownloadURL)
	}
}

func TestCheckFallsBackToWeb(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
	defer api.Close()
	web := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><body>
				<a href="/about">about</a>
				<a href="/mikeb26/swisstd/releases/tag/v0.5.0">release</a>
				</body></html>`))
		}))
	defer web.Close()

	c := NewChecker("0.5.0")
	c.feedURL = api.URL
	c.releasesURL = web.URL

	rel, newer, err := c.Check(context.Background())
	if err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if newer {
		t.Errorf("Check reported the current version as newer")
	}
	if rel.Version != "0.5.0" {
		t.Errorf("Version = %q; want %q", rel.Version, "0.5.0")
	}
}

func TestCheckBothSourcesFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
	defer srv.Close()

	c := NewChecker("0.3.0")
	c.feedURL = srv.URL
	c.releasesURL = srv.URL + "/releases"

	if _, _, err := c.Check(context.Background()); err == nil {
		t.Errorf("Check succeeded with both sources failing; want error")
	}
}
