/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// Outcome is the result of one pairing, stated from white's side.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWhiteWins
	OutcomeBlackWins
	OutcomeDraw
	// OutcomeBye is fixed at pairing time for bye pairings: an automatic
	// full point with no opponent and no color.
	OutcomeBye
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWhiteWins:
		return "1-0"
	case OutcomeBlackWins:
		return "0-1"
	case OutcomeDraw:
		return "1/2-1/2"
	case OutcomeBye:
		return "bye"
	}
	return "?"
}

// ParseOutcome parses a result string as printed by Outcome.String:
// "1-0", "0-1", "1/2-1/2", or "bye".
func ParseOutcome(s string) (Outcome, error) {
	switch s {
	case "1-0":
		return OutcomeWhiteWins, nil
	case "0-1":
		return OutcomeBlackWins, nil
	case "1/2-1/2":
		return OutcomeDraw, nil
	case "bye":
		return OutcomeBye, nil
	}
	return OutcomeNone, validationErrf("unrecognized result %q", s)
}

// points returns the points earned by white and black respectively.
func (o Outcome) points() (float64, float64) {
	switch o {
	case OutcomeWhiteWins:
		return WinPoints, LossPoints
	case OutcomeBlackWins:
		return LossPoints, WinPoints
	case OutcomeDraw:
		return DrawPoints, DrawPoints
	case OutcomeBye:
		return ByePoints, 0.0
	}
	return 0.0, 0.0
}

// Pairing is a single board in a round. A bye pairing carries only the
// White player; Black is empty and Board is 0.
type Pairing struct {
	White PlayerID
	Black PlayerID
	Board int
}

func (p Pairing) IsBye() bool {
	return p.Black == ""
}

// Round is one entry in the ledger. Rounds are created in pairing-only
// state and transition to recorded exactly once; undo reverts the most
// recently recorded round back to pairing-only state without discarding
// its pairings.
type Round struct {
	// Num is 1-based and matches the round's position in the ledger.
	Num      int
	Pairings []Pairing
	// Outcomes parallels Pairings once the round is recorded; nil before.
	Outcomes []Outcome
	Recorded bool
	// ForcedRepeat is set when the pairing engine could not find a legal
	// no-rematch pairing set and fell back to repeating a matchup.
	ForcedRepeat bool
}

func (r *Round) clone() *Round {
	nr := *r
	nr.Pairings = append([]Pairing(nil), r.Pairings...)
	if r.Outcomes != nil {
		nr.Outcomes = append([]Outcome(nil), r.Outcomes...)
	}
	return &nr
}

// ledgerSnapshot captures the full round ledger immediately before a round
// is recorded, so that undo can restore it exactly.
type ledgerSnapshot struct {
	rounds []*Round
}

func (t *Tournament) snapshotLedger() ledgerSnapshot {
	rounds := make([]*Round, len(t.Rounds))
	for i, rnd := range t.Rounds {
		rounds[i] = rnd.clone()
	}
	return ledgerSnapshot{rounds: rounds}
}

// recordedRounds returns the count of recorded rounds. Rounds are recorded
// strictly in increasing order, so this is also the index of the first
// unrecorded round.
func (t *Tournament) recordedRounds() int {
	n := 0
	for _, rnd := range t.Rounds {
		if !rnd.Recorded {
			break
		}
		n++
	}
	return n
}

// RecordResults enters one outcome per pairing for the given round, which
// must be the first not-yet-recorded round. Bye pairings must carry
// OutcomeBye and real pairings must carry a win, loss, or draw. On any
// error the ledger is unchanged.
func (t *Tournament) RecordResults(roundNum int, outcomes []Outcome) error {
	expect := t.recordedRounds() + 1
	if expect > len(t.Rounds) {
		return sequenceErrf("no round awaiting results")
	}
	if roundNum != expect {
		return sequenceErrf("expected results for round %v, got round %v",
			expect, roundNum)
	}
	rnd := t.Rounds[roundNum-1]
	if len(outcomes) != len(rnd.Pairings) {
		return sequenceErrf("round %v has %v pairings but %v outcomes were provided",
			roundNum, len(rnd.Pairings), len(outcomes))
	}
	for i, o := range outcomes {
		if rnd.Pairings[i].IsBye() {
			if o != OutcomeBye {
				return sequenceErrf("board %v of round %v is a bye; its outcome is fixed",
					i+1, roundNum)
			}
			continue
		}
		switch o {
		case OutcomeWhiteWins, OutcomeBlackWins, OutcomeDraw:
		default:
			return sequenceErrf("board %v of round %v is missing a win/loss/draw outcome",
				rnd.Pairings[i].Board, roundNum)
		}
	}

	t.undo = append(t.undo, t.snapshotLedger())
	rnd.Outcomes = append([]Outcome(nil), outcomes...)
	rnd.Recorded = true

	return nil
}

// UndoLastRound reverts the most recently recorded round to pairing-only
// state, restoring the ledger exactly as it was before RecordResults.
// Repeated undo walks back round by round. Snapshots are session-local;
// on a freshly loaded tournament the revert is reconstructed instead,
// which is equivalent because recording a round never alters any other
// round.
func (t *Tournament) UndoLastRound() error {
	if len(t.Rounds) == 0 || !t.Rounds[len(t.Rounds)-1].Recorded {
		return sequenceErrf("most recent round has no recorded results to undo")
	}

	if len(t.undo) > 0 {
		snap := t.undo[len(t.undo)-1]
		t.undo = t.undo[:len(t.undo)-1]
		t.Rounds = snap.rounds
		return nil
	}

	rnd := t.Rounds[len(t.Rounds)-1]
	rnd.Outcomes = nil
	rnd.Recorded = false

	return nil
}
