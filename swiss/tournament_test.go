/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"errors"
	"testing"
)

// newTestTournament creates a tournament and registers the given players.
func newTestTournament(t *testing.T, numRounds int, ratings map[string]int) *Tournament {
	t.Helper()

	tourney, err := NewTournament("Test Open", numRounds, nil)
	if err != nil {
		t.Fatalf("NewTournament returned error: %v", err)
	}
	for name, rating := range ratings {
		if _, err := tourney.AddPlayer(Player{Name: name, Rating: rating}); err != nil {
			t.Fatalf("AddPlayer(%v) returned error: %v", name, err)
		}
	}

	return tourney
}

// playerName resolves a pairing's player id for assertion messages.
func playerName(t *testing.T, tourney *Tournament, id PlayerID) string {
	t.Helper()

	if id == "" {
		return ""
	}
	p, ok := tourney.Player(id)
	if !ok {
		t.Fatalf("round references unknown player id %v", id)
	}
	return p.Name
}

// pairingStrings renders a round as "White v Black" strings in board
// order, with byes rendered as "Name bye".
func pairingStrings(t *testing.T, tourney *Tournament, rnd *Round) []string {
	t.Helper()

	var out []string
	for _, pairing := range rnd.Pairings {
		if pairing.IsBye() {
			out = append(out, playerName(t, tourney, pairing.White)+" bye")
			continue
		}
		out = append(out, playerName(t, tourney, pairing.White)+" v "+
			playerName(t, tourney, pairing.Black))
	}

	return out
}

func mustPair(t *testing.T, tourney *Tournament) *Round {
	t.Helper()

	rnd, err := tourney.PairNextRound()
	if err != nil {
		t.Fatalf("PairNextRound returned error: %v", err)
	}
	return rnd
}

func mustRecord(t *testing.T, tourney *Tournament, roundNum int, outcomes ...Outcome) {
	t.Helper()

	if err := tourney.RecordResults(roundNum, outcomes); err != nil {
		t.Fatalf("RecordResults(round %v) returned error: %v", roundNum, err)
	}
}

func TestNewTournamentValidation(t *testing.T) {
	cases := []struct {
		name      string
		numRounds int
		tiebreaks []Tiebreak
		wantErr   bool
	}{
		{name: "valid defaults", numRounds: 4},
		{name: "valid explicit order", numRounds: 4,
			tiebreaks: []Tiebreak{TiebreakSolkoff, TiebreakRating}},
		{name: "zero rounds", numRounds: 0, wantErr: true},
		{name: "negative rounds", numRounds: -2, wantErr: true},
		{name: "unknown tiebreak", numRounds: 4,
			tiebreaks: []Tiebreak{"coin_flip"}, wantErr: true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewTournament("Test Open", c.numRounds, c.tiebreaks)
			if c.wantErr {
				var verr *ValidationError
				if !errors.As(err, &verr) {
					t.Errorf("NewTournament error = %v; want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Errorf("NewTournament returned error: %v", err)
			}
		})
	}
}

func TestStatusLifecycle(t *testing.T) {
	tourney := newTestTournament(t, 2, map[string]int{
		"Alice": 1900,
		"Bob":   1700,
	})

	if got := tourney.Status(); got != StatusNotStarted {
		t.Fatalf("Status = %v; want %v", got, StatusNotStarted)
	}

	mustPair(t, tourney)
	if got := tourney.Status(); got != StatusAwaitingResults {
		t.Fatalf("Status after pairing = %v; want %v", got, StatusAwaitingResults)
	}

	mustRecord(t, tourney, 1, OutcomeWhiteWins)
	if got := tourney.Status(); got != StatusReadyForNextRound {
		t.Fatalf("Status after round 1 = %v; want %v", got, StatusReadyForNextRound)
	}

	mustPair(t, tourney)
	mustRecord(t, tourney, 2, OutcomeDraw)
	if got := tourney.Status(); got != StatusFinished {
		t.Fatalf("Status after final round = %v; want %v", got, StatusFinished)
	}

	if _, err := tourney.PairNextRound(); err == nil {
		t.Errorf("PairNextRound after final round succeeded; want SequenceError")
	}
}

func TestSetNumRoundsLockedAfterPairing(t *testing.T) {
	tourney := newTestTournament(t, 3, map[string]int{
		"Alice": 1900,
		"Bob":   1700,
	})

	if err := tourney.SetNumRounds(5); err != nil {
		t.Fatalf("SetNumRounds before pairing returned error: %v", err)
	}
	if tourney.Cfg.NumRounds != 5 {
		t.Fatalf("NumRounds = %v; want 5", tourney.Cfg.NumRounds)
	}

	mustPair(t, tourney)
	err := tourney.SetNumRounds(7)
	var serr *SequenceError
	if !errors.As(err, &serr) {
		t.Errorf("SetNumRounds after pairing error = %v; want SequenceError", err)
	}
}

func TestSetTiebreakOrder(t *testing.T) {
	tourney := newTestTournament(t, 3, map[string]int{
		"Alice": 1900,
		"Bob":   1700,
	})

	if err := tourney.SetTiebreakOrder([]Tiebreak{"not_a_criterion"}); err == nil {
		t.Errorf("SetTiebreakOrder accepted an unknown criterion")
	}
	// an empty order would silently revert to the defaults on reload
	if err := tourney.SetTiebreakOrder(nil); err == nil {
		t.Errorf("SetTiebreakOrder accepted a nil order")
	}
	if err := tourney.SetTiebreakOrder([]Tiebreak{}); err == nil {
		t.Errorf("SetTiebreakOrder accepted an empty order")
	}
	if err := tourney.SetTiebreakOrder([]Tiebreak{TiebreakRating}); err != nil {
		t.Errorf("SetTiebreakOrder returned error: %v", err)
	}
	if got := tourney.Cfg.TiebreakOrder; len(got) != 1 || got[0] != TiebreakRating {
		t.Errorf("TiebreakOrder = %v; want [%v]", got, TiebreakRating)
	}
}
