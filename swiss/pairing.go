/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"sort"
)

// PairNextRound generates the next round's pairings from current scores,
// prior opponents, and color history, appends the round to the ledger, and
// returns it. It is callable only when the previous round (if any) is
// fully recorded and the configured round count has not been reached.
//
// The pairing follows the standard Swiss method: players are ranked by
// score then rating and partitioned into score groups; within a group the
// top half is folded against the bottom half, skipping candidates that
// would repeat a prior matchup or force a third consecutive identical
// color when an alternative exists; unpaired players float down a group.
// If no legal no-rematch pairing set exists, the engine falls back to
// allowing repeats and flags the round with ForcedRepeat.
func (t *Tournament) PairNextRound() (*Round, error) {
	if len(t.Rounds) > 0 && !t.Rounds[len(t.Rounds)-1].Recorded {
		return nil, sequenceErrf("round %v results must be recorded before pairing round %v",
			len(t.Rounds), len(t.Rounds)+1)
	}
	if len(t.Rounds) >= t.Cfg.NumRounds {
		return nil, sequenceErrf("all %v configured rounds have been paired",
			t.Cfg.NumRounds)
	}

	active := t.activePlayers()
	if len(active) < 2 {
		return nil, validationErrf("at least 2 active players are required to pair a round (have %v)",
			len(active))
	}

	hist := t.pairingHistory()
	seeds := seedOrder(active, hist.scores)

	// An odd pool sends the lowest-seeded player without a prior bye to
	// the bye before pairing begins.
	var byePlayer *Player
	pool := seeds
	if len(pool)%2 == 1 {
		byeIdx := len(pool) - 1
		for i := len(pool) - 1; i >= 0; i-- {
			if !hist.hadBye[pool[i].ID] {
				byeIdx = i
				break
			}
		}
		byePlayer = pool[byeIdx]
		pool = append(append([]*Player(nil), pool[:byeIdx]...), pool[byeIdx+1:]...)
	}

	// Strict pass first; relax the no-rematch rule only as a last resort.
	pairs, ok := pairPool(pool, hist, false)
	forced := false
	if !ok {
		pairs, ok = pairPool(pool, hist, true)
		if !ok {
			// cannot happen: with rematches allowed every even pool pairs
			return nil, sequenceErrf("unable to pair round %v", len(t.Rounds)+1)
		}
		for _, pr := range pairs {
			if hist.played(pr[0].ID, pr[1].ID) {
				forced = true
				break
			}
		}
	}

	rnd := &Round{
		Num:          len(t.Rounds) + 1,
		ForcedRepeat: forced,
	}
	for i, pr := range pairs {
		white, black := assignColors(pr[0], pr[1], hist)
		rnd.Pairings = append(rnd.Pairings, Pairing{
			White: white.ID,
			Black: black.ID,
			Board: i + 1,
		})
	}
	if byePlayer != nil {
		rnd.Pairings = append(rnd.Pairings, Pairing{White: byePlayer.ID})
	}

	t.Rounds = append(t.Rounds, rnd)

	return rnd, nil
}

// pairingHistory aggregates everything the pairing engine needs from the
// ledger: scores, prior opponents, bye recipients, and per-player color
// sequences in round order.
type pairingHistory struct {
	scores    map[PlayerID]float64
	opponents map[PlayerID]map[PlayerID]bool
	hadBye    map[PlayerID]bool
	colors    map[PlayerID][]Color
}

func (h *pairingHistory) played(a, b PlayerID) bool {
	return h.opponents[a][b]
}

func (t *Tournament) pairingHistory() *pairingHistory {
	hist := &pairingHistory{
		scores:    t.scores(),
		opponents: make(map[PlayerID]map[PlayerID]bool),
		hadBye:    make(map[PlayerID]bool),
		colors:    make(map[PlayerID][]Color),
	}
	addOpp := func(a, b PlayerID) {
		if hist.opponents[a] == nil {
			hist.opponents[a] = make(map[PlayerID]bool)
		}
		hist.opponents[a][b] = true
	}
	for _, rnd := range t.Rounds {
		for _, pairing := range rnd.Pairings {
			if pairing.IsBye() {
				hist.hadBye[pairing.White] = true
				continue
			}
			addOpp(pairing.White, pairing.Black)
			addOpp(pairing.Black, pairing.White)
			hist.colors[pairing.White] = append(hist.colors[pairing.White], ColorWhite)
			hist.colors[pairing.Black] = append(hist.colors[pairing.Black], ColorBlack)
		}
	}

	return hist
}

// seedOrder ranks players by score descending, then rating descending,
// then name ascending. This is the pairing seed order, not the final
// standings order.
func seedOrder(players []*Player, scores map[PlayerID]float64) []*Player {
	out := append([]*Player(nil), players...)
	sort.Slice(out, func(i, j int) bool {
		if scores[out[i].ID] != scores[out[j].ID] {
			return scores[out[i].ID] > scores[out[j].ID]
		}
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Name < out[j].Name
	})

	return out
}

// pairPool pairs an even, seed-ordered pool via backtracking. The highest
// unpaired player is matched against candidates in fold order within its
// score group, then against downfloat candidates from lower groups;
// candidates whose color assignment would force a third consecutive
// identical color sort after clean ones, and rematch candidates are only
// admitted when allowRematch is set.
func pairPool(pool []*Player, hist *pairingHistory, allowRematch bool) ([][2]*Player, bool) {
	if len(pool) == 0 {
		return nil, true
	}

	top := pool[0]
	rest := pool[1:]
	for _, ci := range candidateOrder(top, rest, hist, allowRematch) {
		opp := rest[ci]
		remaining := make([]*Player, 0, len(rest)-1)
		remaining = append(remaining, rest[:ci]...)
		remaining = append(remaining, rest[ci+1:]...)

		pairs, ok := pairPool(remaining, hist, allowRematch)
		if ok {
			return append([][2]*Player{{top, opp}}, pairs...), true
		}
	}

	return nil, false
}

// candidateOrder returns indexes into rest in deterministic preference
// order for pairing against top.
func candidateOrder(top *Player, rest []*Player, hist *pairingHistory, allowRematch bool) []int {
	topScore := hist.scores[top.ID]
	groupLen := 0
	for groupLen < len(rest) && hist.scores[rest[groupLen].ID] == topScore {
		groupLen++
	}

	// fold order within the score group: the ideal opponent is the top of
	// the bottom half, then scan outward toward the group edges
	var order []int
	h := groupLen / 2
	for i := h; i < groupLen; i++ {
		order = append(order, i)
	}
	for i := h - 1; i >= 0; i-- {
		order = append(order, i)
	}
	// downfloat candidates follow in seed order, nearest score group first
	for i := groupLen; i < len(rest); i++ {
		order = append(order, i)
	}

	// stable-partition: clean candidates, then color-troubled ones, then
	// (only when permitted) rematches
	var clean, troubled, repeats []int
	for _, i := range order {
		opp := rest[i]
		if hist.played(top.ID, opp.ID) {
			if allowRematch {
				repeats = append(repeats, i)
			}
			continue
		}
		if colorConflict(top, opp, hist) {
			troubled = append(troubled, i)
		} else {
			clean = append(clean, i)
		}
	}

	out := append(clean, troubled...)
	return append(out, repeats...)
}

// colorConflict reports whether pairing a and b would hand either player a
// third consecutive identical color under the usual color assignment.
func colorConflict(a, b *Player, hist *pairingHistory) bool {
	white, black := assignColors(a, b, hist)
	return lastTwoSame(hist.colors[white.ID], ColorWhite) ||
		lastTwoSame(hist.colors[black.ID], ColorBlack)
}

func lastTwoSame(colors []Color, c Color) bool {
	n := len(colors)
	return n >= 2 && colors[n-1] == c && colors[n-2] == c
}

// assignColors balances each player's running color count; when the
// balance is tied it alternates from each player's most recent color, and
// remaining ties go to the higher-ranked player. The higher-ranked player
// is whichever sorts first in seed order; callers pass (higher, lower).
func assignColors(higher, lower *Player, hist *pairingHistory) (white, black *Player) {
	hBal := colorBalance(hist.colors[higher.ID])
	lBal := colorBalance(hist.colors[lower.ID])

	// fewer whites than blacks means the player is due white
	if hBal != lBal {
		if hBal < lBal {
			return higher, lower
		}
		return lower, higher
	}

	hLast := lastColor(hist.colors[higher.ID])
	lLast := lastColor(hist.colors[lower.ID])
	if hLast == ColorBlack && lLast != ColorBlack {
		return higher, lower
	}
	if lLast == ColorBlack && hLast != ColorBlack {
		return lower, higher
	}
	if hLast == ColorWhite && lLast == ColorWhite {
		// both due black; the higher rank keeps its alternation
		return lower, higher
	}

	return higher, lower
}

func colorBalance(colors []Color) int {
	bal := 0
	for _, c := range colors {
		if c == ColorWhite {
			bal++
		} else if c == ColorBlack {
			bal--
		}
	}
	return bal
}

func lastColor(colors []Color) Color {
	if len(colors) == 0 {
		return ColorNone
	}
	return colors[len(colors)-1]
}
