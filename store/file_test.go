/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mikeb26/swisstd/swiss"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	tourney, err := swiss.NewTournament("Club Championship", 4, nil)
	if err != nil {
		t.Fatalf("NewTournament returned error: %v", err)
	}
	for _, p := range []swiss.Player{
		{Name: "Alice", Rating: 1900},
		{Name: "Bob", Rating: 1700},
		{Name: "Carol", Rating: 1500},
	} {
		if _, err := tourney.AddPlayer(p); err != nil {
			t.Fatalf("AddPlayer returned error: %v", err)
		}
	}
	rnd, err := tourney.PairNextRound()
	if err != nil {
		t.Fatalf("PairNextRound returned error: %v", err)
	}
	outcomes := make([]swiss.Outcome, 0, len(rnd.Pairings))
	for _, pairing := range rnd.Pairings {
		if pairing.IsBye() {
			outcomes = append(outcomes, swiss.OutcomeBye)
		} else {
			outcomes = append(outcomes, swiss.OutcomeWhiteWins)
		}
	}
	if err := tourney.RecordResults(1, outcomes); err != nil {
		t.Fatalf("RecordResults returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "club.json")
	if err := SaveFile(path, tourney); err != nil {
		t.Fatalf("SaveFile returned error: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if loaded.Name != tourney.Name {
		t.Errorf("Name = %q; want %q", loaded.Name, tourney.Name)
	}
	if got, want := swiss.BuildStandingsOutput(loaded),
		swiss.BuildStandingsOutput(tourney); got != want {
		t.Errorf("loaded standings differ\n got: %v\nwant: %v", got, want)
	}
	if loaded.Status() != tourney.Status() {
		t.Errorf("Status = %v; want %v", loaded.Status(), tourney.Status())
	}
}

func TestSaveFileReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "club.json")

	tourney, err := swiss.NewTournament("Club Championship", 4, nil)
	if err != nil {
		t.Fatalf("NewTournament returned error: %v", err)
	}
	if err := SaveFile(path, tourney); err != nil {
		t.Fatalf("SaveFile returned error: %v", err)
	}
	if _, err := tourney.AddPlayer(swiss.Player{Name: "Alice"}); err != nil {
		t.Fatalf("AddPlayer returned error: %v", err)
	}
	if err := SaveFile(path, tourney); err != nil {
		t.Fatalf("second SaveFile returned error: %v", err)
	}

	// no staging files left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %v entries after save; want 1", len(entries))
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if _, ok := loaded.PlayerByName("Alice"); !ok {
		t.Errorf("saved roster is missing Alice")
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Errorf("LoadFile of a missing file succeeded")
	}

	badJSON := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(badJSON, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	_, err := LoadFile(badJSON)
	var derr *swiss.DecodeError
	if !errors.As(err, &derr) {
		t.Errorf("LoadFile of invalid JSON error = %v; want DecodeError", err)
	}

	badRecord := filepath.Join(dir, "badrec.json")
	if err := os.WriteFile(badRecord,
		[]byte(`{"name": "x", "num_rounds": 0}`), 0644); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	if _, err := LoadFile(badRecord); !errors.As(err, &derr) {
		t.Errorf("LoadFile of a malformed record error = %v; want DecodeError", err)
	}
}
