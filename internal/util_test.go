/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
	"time"
)

func TestScoreToString(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{score: 0.0, want: "0"},
		{score: 0.5, want: "½"},
		{score: 1.0, want: "1"},
		{score: 2.5, want: "2½"},
		{score: 3.0, want: "3"},
	}
	for _, c := range cases {
		if got := ScoreToString(c.score); got != c.want {
			t.Errorf("ScoreToString(%v) = %q; want %q", c.score, got, c.want)
		}
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "already normal", in: "Jane Doe", want: "Jane Doe"},
		{name: "extra whitespace", in: "  Jane   Doe ", want: "Jane Doe"},
		{name: "last-first ordering", in: "Doe, Jane", want: "Jane Doe"},
		{name: "last-first with extra space", in: "Doe ,  Jane", want: "Jane Doe"},
		{name: "trailing comma", in: "Doe,", want: "Doe,"},
		{name: "empty", in: "", want: ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NormalizeName(c.in); got != c.want {
				t.Errorf("NormalizeName(%q) = %q; want %q", c.in, got, c.want)
			}
		})
	}
}

func TestParseDateOrZero(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "empty", in: "", want: time.Time{}},
		{name: "null", in: "null", want: time.Time{}},
		{name: "iso date", in: "2014-05-11",
			want: time.Date(2014, 5, 11, 0, 0, 0, 0, time.UTC)},
		{name: "us date", in: "5/11/2014",
			want: time.Date(2014, 5, 11, 0, 0, 0, 0, time.UTC)},
		{name: "garbage", in: "not a date", wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseDateOrZero(c.in)
			if c.wantErr {
				if err == nil {
					t.Errorf("ParseDateOrZero(%q) succeeded; want error", c.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateOrZero(%q) returned error: %v", c.in, err)
			}
			if !got.Equal(c.want) {
				t.Errorf("ParseDateOrZero(%q) = %v; want %v", c.in, got, c.want)
			}
		})
	}
}
