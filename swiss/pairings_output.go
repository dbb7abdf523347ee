/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"strings"

	"github.com/mikeb26/swisstd/internal"
)

// BuildPairingsOutput formats one round's pairings into an aligned text
// table in board order, with the bye (if any) on its own row.
func BuildPairingsOutput(t *Tournament, rnd *Round) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Round %v Pairings:\n\n", rnd.Num))
	if rnd.ForcedRepeat {
		sb.WriteString("* Note: no legal no-rematch pairing existed; this round repeats a prior matchup.\n\n")
	}

	scores := t.scores()
	describe := func(id PlayerID) string {
		p, ok := t.players[id]
		if !ok {
			return string(id)
		}
		rating := "unrated"
		if p.Rating != RatingUnrated {
			rating = fmt.Sprintf("%v", p.Rating)
		}
		return fmt.Sprintf("%s(%s %s)", p.Name, rating,
			internal.ScoreToString(scores[id]))
	}

	type row struct{ board, white, black string }
	var rows []row
	for _, pairing := range rnd.Pairings {
		if pairing.IsBye() {
			rows = append(rows, row{
				board: "n/a",
				white: describe(pairing.White),
				black: "BYE(1)",
			})
			continue
		}
		rows = append(rows, row{
			board: fmt.Sprintf("%d.", pairing.Board),
			white: describe(pairing.White),
			black: describe(pairing.Black),
		})
	}

	// Compute column widths
	maxB, maxW, maxBl := len("Board"), len("White"), len("Black")
	for _, r := range rows {
		if l := len(r.board); l > maxB {
			maxB = l
		}
		if l := len(r.white); l > maxW {
			maxW = l
		}
		if l := len(r.black); l > maxBl {
			maxBl = l
		}
	}

	sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, "Board", maxW,
		"White", maxBl, "Black"))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s  %-*s  %-*s\n", maxB, r.board,
			maxW, r.white, maxBl, r.black))
	}
	sb.WriteString("\n")

	return sb.String()
}
