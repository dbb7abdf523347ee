/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// ScoreToString formats a game score in the conventional half-point
// notation, e.g. 0.5 -> "½", 2.5 -> "2½", 3.0 -> "3".
func ScoreToString(score float64) string {
	whole := math.Floor(score)
	half := score-whole >= 0.5

	switch {
	case whole == 0 && half:
		return "½"
	case half:
		return strconv.Itoa(int(whole)) + "½"
	default:
		return strconv.Itoa(int(whole))
	}
}

// NormalizeName collapses runs of whitespace and converts LAST, FIRST
// ordering to FIRST LAST.
func NormalizeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if idx := strings.Index(name, ","); idx != -1 {
		last := strings.TrimSpace(name[:idx])
		first := strings.TrimSpace(name[idx+1:])
		if first != "" && last != "" {
			name = first + " " + last
		}
	}
	return name
}
