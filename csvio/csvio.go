/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */

// Package csvio imports and exports tournament rosters as CSV.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mikeb26/swisstd/internal"
	"github.com/mikeb26/swisstd/swiss"
)

var exportHeader = []string{"Name", "Rating", "Gender", "Date of Birth",
	"Phone", "Email", "Club", "Federation", "Active", "ID"}

// ImportPlayers parses a roster CSV. The header row is required; columns
// are matched by name case-insensitively and all but Name are optional.
// Dates of birth are parsed leniently and normalized to YYYY-MM-DD.
// Player ids in the file are ignored; ids are assigned at registration.
func ImportPlayers(r io.Reader) ([]swiss.Player, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("unable to read roster header: %w", err)
	}
	cols := make(map[string]int)
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, fmt.Errorf("roster is missing a Name column")
	}

	field := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var players []swiss.Player
	lineNum := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		lineNum++
		if err != nil {
			return nil, fmt.Errorf("unable to read roster line %v: %w", lineNum, err)
		}

		p := swiss.Player{
			Name:       internal.NormalizeName(field(row, "name")),
			Gender:     field(row, "gender"),
			Phone:      field(row, "phone"),
			Email:      field(row, "email"),
			Club:       field(row, "club"),
			Federation: field(row, "federation"),
			Active:     true,
		}
		if p.Name == "" {
			return nil, fmt.Errorf("roster line %v has an empty name", lineNum)
		}

		if ratingStr := field(row, "rating"); ratingStr != "" &&
			!strings.EqualFold(ratingStr, "unrated") {
			rating, err := strconv.Atoi(ratingStr)
			if err != nil {
				return nil, fmt.Errorf("roster line %v has invalid rating %q",
					lineNum, ratingStr)
			}
			p.Rating = rating
		}

		if dobStr := field(row, "date of birth"); dobStr != "" {
			dob, err := internal.ParseDateOrZero(dobStr)
			if err != nil {
				return nil, fmt.Errorf("roster line %v has invalid date of birth %q: %w",
					lineNum, dobStr, err)
			}
			if !dob.IsZero() {
				p.DateOfBirth = dob.Format("2006-01-02")
			}
		}

		if activeStr := field(row, "active"); activeStr != "" {
			p.Active = !strings.EqualFold(activeStr, "no") &&
				!strings.EqualFold(activeStr, "false")
		}

		players = append(players, p)
	}

	return players, nil
}

// ExportPlayers writes the roster, withdrawn players included, in the
// same column layout ImportPlayers accepts.
func ExportPlayers(w io.Writer, players []*swiss.Player) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("unable to write roster header: %w", err)
	}

	for _, p := range players {
		rating := ""
		if p.Rating != swiss.RatingUnrated {
			rating = strconv.Itoa(p.Rating)
		}
		active := "Yes"
		if !p.Active {
			active = "No"
		}
		row := []string{p.Name, rating, p.Gender, p.DateOfBirth, p.Phone,
			p.Email, p.Club, p.Federation, active, string(p.ID)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("unable to write roster row for %v: %w", p.Name, err)
		}
	}
	cw.Flush()

	return cw.Error()
}
