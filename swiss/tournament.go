/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// Color of the pieces a player holds in one game.
type Color int

const (
	ColorNone Color = iota
	ColorWhite
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "white"
	case ColorBlack:
		return "black"
	}
	return ""
}

const (
	WinPoints  = 1.0
	DrawPoints = 0.5
	LossPoints = 0.0
	ByePoints  = 1.0
)

// Status is the engine's lifecycle state, intended for shells to poll
// rather than recomputing booleans from raw round counts.
type Status int

const (
	StatusNotStarted Status = iota
	StatusAwaitingResults
	StatusReadyForNextRound
	StatusFinished
)

func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "not started"
	case StatusAwaitingResults:
		return "awaiting results"
	case StatusReadyForNextRound:
		return "ready for next round"
	case StatusFinished:
		return "finished"
	}
	return "?"
}

// Config holds the tournament-level settings.
type Config struct {
	// NumRounds is mutable only before the first round is paired.
	NumRounds int
	// TiebreakOrder is mutable at any time; changing it only re-sorts
	// standings, never pairing history.
	TiebreakOrder []Tiebreak
}

// Tournament owns the player registry, the round ledger, and the config.
// It is the sole unit of persistence and expects exclusive ownership by
// its caller for the duration of any mutating call.
type Tournament struct {
	Name string
	Cfg  Config

	players map[PlayerID]*Player
	Rounds  []*Round

	undo []ledgerSnapshot
}

// NewTournament creates an empty tournament. A non-positive numRounds or
// an unknown tiebreak identifier is rejected. An empty tiebreakOrder
// selects the default order.
func NewTournament(name string, numRounds int, tiebreakOrder []Tiebreak) (*Tournament, error) {
	if numRounds <= 0 {
		return nil, validationErrf("number of rounds must be positive (got %v)", numRounds)
	}
	if len(tiebreakOrder) == 0 {
		tiebreakOrder = DefaultTiebreakOrder()
	}
	for _, tb := range tiebreakOrder {
		if !tb.valid() {
			return nil, validationErrf("unknown tiebreak criterion %q", tb)
		}
	}

	return &Tournament{
		Name: name,
		Cfg: Config{
			NumRounds:     numRounds,
			TiebreakOrder: tiebreakOrder,
		},
		players: make(map[PlayerID]*Player),
	}, nil
}

// SetNumRounds changes the configured round count. Rejected once the first
// round has been paired.
func (t *Tournament) SetNumRounds(n int) error {
	if n <= 0 {
		return validationErrf("number of rounds must be positive (got %v)", n)
	}
	if len(t.Rounds) > 0 {
		return sequenceErrf("cannot change round count after round 1 has been paired")
	}
	t.Cfg.NumRounds = n

	return nil
}

// SetTiebreakOrder replaces the configured tiebreak sequence. Permitted at
// any time; only standings order is affected. The order must not be
// empty: a tournament always carries at least one criterion so that the
// configured order survives a save/load round trip.
func (t *Tournament) SetTiebreakOrder(order []Tiebreak) error {
	if len(order) == 0 {
		return validationErrf("tiebreak order must not be empty")
	}
	for _, tb := range order {
		if !tb.valid() {
			return validationErrf("unknown tiebreak criterion %q", tb)
		}
	}
	t.Cfg.TiebreakOrder = append([]Tiebreak(nil), order...)

	return nil
}

// Status reports the engine lifecycle state.
func (t *Tournament) Status() Status {
	if len(t.Rounds) == 0 {
		return StatusNotStarted
	}
	last := t.Rounds[len(t.Rounds)-1]
	if !last.Recorded {
		return StatusAwaitingResults
	}
	if len(t.Rounds) >= t.Cfg.NumRounds {
		return StatusFinished
	}
	return StatusReadyForNextRound
}

// CurrentRound returns the most recently paired round, or nil before the
// tournament starts.
func (t *Tournament) CurrentRound() *Round {
	if len(t.Rounds) == 0 {
		return nil
	}
	return t.Rounds[len(t.Rounds)-1]
}

// scores returns total points per player across recorded rounds only.
func (t *Tournament) scores() map[PlayerID]float64 {
	scores := make(map[PlayerID]float64, len(t.players))
	for id := range t.players {
		scores[id] = 0.0
	}
	for _, rnd := range t.Rounds {
		if !rnd.Recorded {
			continue
		}
		for i, pairing := range rnd.Pairings {
			wPts, bPts := rnd.Outcomes[i].points()
			scores[pairing.White] += wPts
			if !pairing.IsBye() {
				scores[pairing.Black] += bPts
			}
		}
	}

	return scores
}
