/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package csvio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mikeb26/swisstd/swiss"
)

func TestImportPlayers(t *testing.T) {
	roster := strings.Join([]string{
		"Name,Rating,Date of Birth,Club,Active",
		"\"Doe, Jane\",1850,5/11/2014,Boylston,Yes",
		"John Smith,unrated,,Boylston,No",
		"Pat Lee,,,,",
	}, "\n")

	players, err := ImportPlayers(strings.NewReader(roster))
	if err != nil {
		t.Fatalf("ImportPlayers returned error: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("imported %v players; want 3", len(players))
	}

	jane := players[0]
	if jane.Name != "Jane Doe" {
		t.Errorf("name = %q; want %q (normalized)", jane.Name, "Jane Doe")
	}
	if jane.Rating != 1850 || jane.Club != "Boylston" || !jane.Active {
		t.Errorf("jane = %+v; want rating 1850, club Boylston, active", jane)
	}
	if jane.DateOfBirth != "2014-05-11" {
		t.Errorf("date of birth = %q; want 2014-05-11", jane.DateOfBirth)
	}

	if players[1].Rating != swiss.RatingUnrated {
		t.Errorf("unrated player has rating %v", players[1].Rating)
	}
	if players[1].Active {
		t.Errorf("player marked Active=No imported as active")
	}
	if !players[2].Active {
		t.Errorf("player with blank Active imported as inactive")
	}
}

func TestImportPlayersErrors(t *testing.T) {
	cases := []struct {
		name   string
		roster string
	}{
		{name: "missing name column", roster: "Rating,Club\n1850,Boylston"},
		{name: "empty name", roster: "Name,Rating\n,1850"},
		{name: "bad rating", roster: "Name,Rating\nJane Doe,strong"},
		{name: "bad date of birth",
			roster: "Name,Date of Birth\nJane Doe,someday"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ImportPlayers(strings.NewReader(c.roster)); err == nil {
				t.Errorf("ImportPlayers succeeded; want error")
			}
		})
	}
}

func TestRosterRoundTrip(t *testing.T) {
	players := []*swiss.Player{
		{ID: "id1", Name: "Jane Doe", Rating: 1850, Club: "Boylston",
			DateOfBirth: "2014-05-11", Active: true},
		{ID: "id2", Name: "John Smith", Active: false},
	}

	var buf bytes.Buffer
	if err := ExportPlayers(&buf, players); err != nil {
		t.Fatalf("ExportPlayers returned error: %v", err)
	}

	imported, err := ImportPlayers(&buf)
	if err != nil {
		t.Fatalf("ImportPlayers returned error: %v", err)
	}
	if len(imported) != 2 {
		t.Fatalf("round trip produced %v players; want 2", len(imported))
	}
	jane := imported[0]
	if jane.Name != "Jane Doe" || jane.Rating != 1850 ||
		jane.Club != "Boylston" || jane.DateOfBirth != "2014-05-11" {
		t.Errorf("round-tripped player = %+v", jane)
	}
	if imported[1].Active {
		t.Errorf("withdrawn player round-tripped as active")
	}
	// ids are never imported; they are assigned at registration
	if imported[0].ID != "" || imported[1].ID != "" {
		t.Errorf("import carried over file-supplied ids")
	}
}
