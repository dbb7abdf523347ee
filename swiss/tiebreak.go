/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

// Tiebreak identifies one secondary ranking criterion. The numeric
// definitions follow the standard USCF/FIDE formulas:
//
//   - solkoff: sum of opponents' final scores (Buchholz)
//   - median: Solkoff discarding the single highest and lowest opponent
//     score (Harkness median); 0 with fewer than 2 opponents
//   - cumulative: sum of the player's running score after each round,
//     less one point per full-point bye received
//   - cumulative_opp: sum of opponents' cumulative values
//   - sonneborn_berger: sum of defeated opponents' scores plus half of
//     drawn opponents' scores
//   - head_to_head: points earned in games against players on the same
//     final score
//   - wins: number of games won over the board (byes excluded)
//   - most_blacks: number of games played with the black pieces
//   - rating: the player's rating, as a last-resort criterion
//
// Byes and unplayed games contribute nothing to opponent-based criteria.
type Tiebreak string

const (
	TiebreakMedian          Tiebreak = "median"
	TiebreakSolkoff         Tiebreak = "solkoff"
	TiebreakCumulative      Tiebreak = "cumulative"
	TiebreakCumulativeOpp   Tiebreak = "cumulative_opp"
	TiebreakSonnebornBerger Tiebreak = "sonneborn_berger"
	TiebreakMostBlacks      Tiebreak = "most_blacks"
	TiebreakHeadToHead      Tiebreak = "head_to_head"
	TiebreakWins            Tiebreak = "wins"
	TiebreakRating          Tiebreak = "rating"
)

var tiebreakNames = map[Tiebreak]string{
	TiebreakMedian:          "Median",
	TiebreakSolkoff:         "Solkoff",
	TiebreakCumulative:      "Cumulative",
	TiebreakCumulativeOpp:   "Opp Cumulative",
	TiebreakSonnebornBerger: "Sonneborn-Berger",
	TiebreakMostBlacks:      "Most Blacks",
	TiebreakHeadToHead:      "Head-to-Head",
	TiebreakWins:            "Wins",
	TiebreakRating:          "Rating",
}

func (tb Tiebreak) valid() bool {
	_, ok := tiebreakNames[tb]
	return ok
}

// DisplayName returns a human-readable label for the criterion.
func (tb Tiebreak) DisplayName() string {
	if name, ok := tiebreakNames[tb]; ok {
		return name
	}
	return string(tb)
}

// DefaultTiebreakOrder returns the standard criterion sequence applied to
// new tournaments.
func DefaultTiebreakOrder() []Tiebreak {
	return []Tiebreak{
		TiebreakMedian,
		TiebreakSolkoff,
		TiebreakCumulative,
		TiebreakCumulativeOpp,
		TiebreakSonnebornBerger,
		TiebreakMostBlacks,
		TiebreakHeadToHead,
	}
}

// gameRec is one recorded game from a single player's perspective.
type gameRec struct {
	opp    PlayerID // empty for a bye
	color  Color
	points float64
}

// tiebreakContext holds the recorded-round history every criterion is
// evaluated against.
type tiebreakContext struct {
	scores map[PlayerID]float64
	games  map[PlayerID][]gameRec
}

func (t *Tournament) tiebreakContext() *tiebreakContext {
	ctx := &tiebreakContext{
		scores: t.scores(),
		games:  make(map[PlayerID][]gameRec),
	}
	for _, rnd := range t.Rounds {
		if !rnd.Recorded {
			continue
		}
		for i, pairing := range rnd.Pairings {
			wPts, bPts := rnd.Outcomes[i].points()
			if pairing.IsBye() {
				ctx.games[pairing.White] = append(ctx.games[pairing.White],
					gameRec{points: wPts})
				continue
			}
			ctx.games[pairing.White] = append(ctx.games[pairing.White],
				gameRec{opp: pairing.Black, color: ColorWhite, points: wPts})
			ctx.games[pairing.Black] = append(ctx.games[pairing.Black],
				gameRec{opp: pairing.White, color: ColorBlack, points: bPts})
		}
	}

	return ctx
}

func (ctx *tiebreakContext) compute(tb Tiebreak, p *Player) float64 {
	switch tb {
	case TiebreakSolkoff:
		return ctx.solkoff(p.ID)
	case TiebreakMedian:
		return ctx.median(p.ID)
	case TiebreakCumulative:
		return ctx.cumulative(p.ID)
	case TiebreakCumulativeOpp:
		return ctx.cumulativeOpp(p.ID)
	case TiebreakSonnebornBerger:
		return ctx.sonnebornBerger(p.ID)
	case TiebreakHeadToHead:
		return ctx.headToHead(p.ID)
	case TiebreakWins:
		return ctx.wins(p.ID)
	case TiebreakMostBlacks:
		return ctx.mostBlacks(p.ID)
	case TiebreakRating:
		return float64(p.Rating)
	}
	return 0.0
}

func (ctx *tiebreakContext) solkoff(id PlayerID) float64 {
	total := 0.0
	for _, g := range ctx.games[id] {
		if g.opp != "" {
			total += ctx.scores[g.opp]
		}
	}
	return total
}

func (ctx *tiebreakContext) median(id PlayerID) float64 {
	var oppScores []float64
	for _, g := range ctx.games[id] {
		if g.opp != "" {
			oppScores = append(oppScores, ctx.scores[g.opp])
		}
	}
	if len(oppScores) < 2 {
		return 0.0
	}
	total, low, high := 0.0, oppScores[0], oppScores[0]
	for _, s := range oppScores {
		total += s
		if s < low {
			low = s
		}
		if s > high {
			high = s
		}
	}
	return total - low - high
}

func (ctx *tiebreakContext) cumulative(id PlayerID) float64 {
	running, total := 0.0, 0.0
	for _, g := range ctx.games[id] {
		running += g.points
		total += running
	}
	// full-point byes are unearned; back them out per the USCF formula
	for _, g := range ctx.games[id] {
		if g.opp == "" {
			total -= g.points
		}
	}
	return total
}

func (ctx *tiebreakContext) cumulativeOpp(id PlayerID) float64 {
	total := 0.0
	for _, g := range ctx.games[id] {
		if g.opp != "" {
			total += ctx.cumulative(g.opp)
		}
	}
	return total
}

func (ctx *tiebreakContext) sonnebornBerger(id PlayerID) float64 {
	total := 0.0
	for _, g := range ctx.games[id] {
		if g.opp == "" {
			continue
		}
		switch g.points {
		case WinPoints:
			total += ctx.scores[g.opp]
		case DrawPoints:
			total += ctx.scores[g.opp] / 2.0
		}
	}
	return total
}

func (ctx *tiebreakContext) headToHead(id PlayerID) float64 {
	total := 0.0
	for _, g := range ctx.games[id] {
		if g.opp != "" && ctx.scores[g.opp] == ctx.scores[id] {
			total += g.points
		}
	}
	return total
}

func (ctx *tiebreakContext) wins(id PlayerID) float64 {
	n := 0.0
	for _, g := range ctx.games[id] {
		if g.opp != "" && g.points == WinPoints {
			n++
		}
	}
	return n
}

func (ctx *tiebreakContext) mostBlacks(id PlayerID) float64 {
	n := 0.0
	for _, g := range ctx.games[id] {
		if g.color == ColorBlack {
			n++
		}
	}
	return n
}
