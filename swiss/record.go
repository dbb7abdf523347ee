/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// Record is the canonical serializable representation of a whole
// tournament: config, full player registry (inactive players included),
// and the full round ledger. It is sufficient to reconstruct standings
// and resume pairing without replaying history. The engine only defines
// the shape; file I/O belongs to the caller.
type Record struct {
	Name          string            `json:"name"`
	NumRounds     int               `json:"num_rounds"`
	TiebreakOrder []string          `json:"tiebreak_order"`
	Players       map[string]Player `json:"players"`
	Rounds        []RoundRecord     `json:"rounds"`
}

// RoundRecord is one round in a Record. Results is present exactly when
// the round has been recorded, holding one outcome string per pairing
// ("1-0", "0-1", "1/2-1/2", or "bye").
type RoundRecord struct {
	Pairings     []PairingRecord `json:"pairings"`
	Results      []string        `json:"results,omitempty"`
	ForcedRepeat bool            `json:"forced_repeat,omitempty"`
}

// PairingRecord is one board in a RoundRecord. Black is empty for a bye.
type PairingRecord struct {
	White string `json:"white"`
	Black string `json:"black,omitempty"`
}

// ToRecord produces the serializable representation of the tournament.
func (t *Tournament) ToRecord() *Record {
	rec := &Record{
		Name:      t.Name,
		NumRounds: t.Cfg.NumRounds,
		Players:   make(map[string]Player, len(t.players)),
	}
	for _, tb := range t.Cfg.TiebreakOrder {
		rec.TiebreakOrder = append(rec.TiebreakOrder, string(tb))
	}
	for id, p := range t.players {
		rec.Players[string(id)] = *p
	}
	for _, rnd := range t.Rounds {
		rr := RoundRecord{
			ForcedRepeat: rnd.ForcedRepeat,
		}
		for _, pairing := range rnd.Pairings {
			rr.Pairings = append(rr.Pairings, PairingRecord{
				White: string(pairing.White),
				Black: string(pairing.Black),
			})
		}
		if rnd.Recorded {
			for _, o := range rnd.Outcomes {
				rr.Results = append(rr.Results, o.String())
			}
		}
		rec.Rounds = append(rec.Rounds, rr)
	}

	return rec
}

// FromRecord validates a Record and reconstructs the tournament it
// describes. On any structural problem a DecodeError is returned and no
// tournament is constructed.
func FromRecord(rec *Record) (*Tournament, error) {
	if rec == nil {
		return nil, decodeErrf("record is empty")
	}
	if rec.NumRounds <= 0 {
		return nil, decodeErrf("record has non-positive round count %v", rec.NumRounds)
	}
	if len(rec.Rounds) > rec.NumRounds {
		return nil, decodeErrf("record has %v rounds but is configured for %v",
			len(rec.Rounds), rec.NumRounds)
	}

	var order []Tiebreak
	for _, s := range rec.TiebreakOrder {
		tb := Tiebreak(s)
		if !tb.valid() {
			return nil, decodeErrf("record names unknown tiebreak criterion %q", s)
		}
		order = append(order, tb)
	}
	if order == nil {
		order = DefaultTiebreakOrder()
	}

	t := &Tournament{
		Name: rec.Name,
		Cfg: Config{
			NumRounds:     rec.NumRounds,
			TiebreakOrder: order,
		},
		players: make(map[PlayerID]*Player, len(rec.Players)),
	}
	seenNames := make(map[string]bool, len(rec.Players))
	for id, p := range rec.Players {
		if id == "" || p.Name == "" {
			return nil, decodeErrf("record contains a player with an empty id or name")
		}
		if seenNames[p.Name] {
			return nil, decodeErrf("record contains duplicate player name %q", p.Name)
		}
		seenNames[p.Name] = true
		np := p
		np.ID = PlayerID(id)
		t.players[np.ID] = &np
	}

	sawUnrecorded := false
	for i, rr := range rec.Rounds {
		rnd := &Round{
			Num:          i + 1,
			ForcedRepeat: rr.ForcedRepeat,
		}
		if len(rr.Pairings) == 0 {
			return nil, decodeErrf("round %v record has no pairings", rnd.Num)
		}
		seen := make(map[PlayerID]bool)
		for bi, pr := range rr.Pairings {
			white := PlayerID(pr.White)
			black := PlayerID(pr.Black)
			if _, ok := t.players[white]; !ok {
				return nil, decodeErrf("round %v references unknown player %q", rnd.Num, pr.White)
			}
			if seen[white] {
				return nil, decodeErrf("round %v pairs player %q twice", rnd.Num, pr.White)
			}
			seen[white] = true
			board := 0
			if black != "" {
				if _, ok := t.players[black]; !ok {
					return nil, decodeErrf("round %v references unknown player %q", rnd.Num, pr.Black)
				}
				if seen[black] {
					return nil, decodeErrf("round %v pairs player %q twice", rnd.Num, pr.Black)
				}
				seen[black] = true
				board = bi + 1
			}
			rnd.Pairings = append(rnd.Pairings, Pairing{
				White: white,
				Black: black,
				Board: board,
			})
		}

		if rr.Results == nil {
			sawUnrecorded = true
		} else {
			if sawUnrecorded {
				return nil, decodeErrf("round %v is recorded but an earlier round is not", rnd.Num)
			}
			if len(rr.Results) != len(rr.Pairings) {
				return nil, decodeErrf("round %v has %v pairings but %v results",
					rnd.Num, len(rr.Pairings), len(rr.Results))
			}
			for bi, s := range rr.Results {
				o, err := ParseOutcome(s)
				if err != nil {
					return nil, decodeErrf("round %v board %v: %v", rnd.Num, bi+1, err)
				}
				if rnd.Pairings[bi].IsBye() != (o == OutcomeBye) {
					return nil, decodeErrf("round %v board %v: result %q does not match pairing type",
						rnd.Num, bi+1, s)
				}
				rnd.Outcomes = append(rnd.Outcomes, o)
			}
			rnd.Recorded = true
		}

		t.Rounds = append(t.Rounds, rnd)
	}

	return t, nil
}

