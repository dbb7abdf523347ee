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

// CrosstableCell is one player's result in one recorded round.
type CrosstableCell struct {
	// OppRank is the opponent's crosstable row number; 0 for a bye or an
	// unplayed round.
	OppRank int
	Outcome Outcome
	Color   Color
	Played  bool
	Bye     bool
}

// CrosstableRow is one player's line in the pairwise result matrix.
type CrosstableRow struct {
	Rank   int
	Player *Player
	Score  float64
	// Cells is indexed by recorded round (Cells[0] is round 1).
	Cells []CrosstableCell
}

// Crosstable derives the pairwise result matrix from the recorded rounds.
// Rows are in standings order; withdrawn players keep their completed
// results and their row.
func (t *Tournament) Crosstable() []CrosstableRow {
	standings := t.Standings()
	rankOf := make(map[PlayerID]int, len(standings))
	for _, s := range standings {
		rankOf[s.Player.ID] = s.Rank
	}

	numRecorded := t.recordedRounds()
	rows := make([]CrosstableRow, 0, len(standings))
	for _, s := range standings {
		rows = append(rows, CrosstableRow{
			Rank:   s.Rank,
			Player: s.Player,
			Score:  s.Score,
			Cells:  make([]CrosstableCell, numRecorded),
		})
	}
	rowOf := make(map[PlayerID]*CrosstableRow, len(rows))
	for i := range rows {
		rowOf[rows[i].Player.ID] = &rows[i]
	}

	for rndIdx := 0; rndIdx < numRecorded; rndIdx++ {
		rnd := t.Rounds[rndIdx]
		for i, pairing := range rnd.Pairings {
			outcome := rnd.Outcomes[i]
			if pairing.IsBye() {
				rowOf[pairing.White].Cells[rndIdx] = CrosstableCell{
					Outcome: OutcomeBye,
					Played:  true,
					Bye:     true,
				}
				continue
			}
			rowOf[pairing.White].Cells[rndIdx] = CrosstableCell{
				OppRank: rankOf[pairing.Black],
				Outcome: outcome,
				Color:   ColorWhite,
				Played:  true,
			}
			rowOf[pairing.Black].Cells[rndIdx] = CrosstableCell{
				OppRank: rankOf[pairing.White],
				Outcome: outcome,
				Color:   ColorBlack,
				Played:  true,
			}
		}
	}

	return rows
}

// BuildCrosstableOutput formats the crosstable into an aligned text table
// with W/L/D-plus-opponent cells, e.g. "W3(w)" for a win over the rank 3
// player with the white pieces.
func BuildCrosstableOutput(t *Tournament) string {
	rows := t.Crosstable()
	if len(rows) == 0 {
		return "No players registered\n"
	}
	numRounds := t.recordedRounds()

	headers := []string{"No", "Name", "Rating", "Pts"}
	for i := 1; i <= numRounds; i++ {
		headers = append(headers, fmt.Sprintf("R%d", i))
	}

	var outRows [][]string
	for _, r := range rows {
		rating := "unrated"
		if r.Player.Rating != RatingUnrated {
			rating = fmt.Sprintf("%v", r.Player.Rating)
		}
		row := []string{
			fmt.Sprintf("%d.", r.Rank),
			r.Player.Name,
			rating,
			internal.ScoreToString(r.Score),
		}
		for _, cell := range r.Cells {
			row = append(row, crosstableCellString(cell))
		}
		outRows = append(outRows, row)
	}

	// Compute column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range outRows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	var fmtStrBuilder strings.Builder
	for _, w := range widths {
		fmtStrBuilder.WriteString(fmt.Sprintf("%%-%ds  ", w))
	}
	fmtStr := strings.TrimRight(fmtStrBuilder.String(), " ") + "\n"

	sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(headers)...))
	for _, row := range outRows {
		sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(row)...))
	}
	sb.WriteString("\n")

	return sb.String()
}

func crosstableCellString(cell CrosstableCell) string {
	if !cell.Played {
		return "-"
	}
	if cell.Bye {
		return "BYE(1)"
	}

	var res byte
	switch {
	case cell.Outcome == OutcomeDraw:
		res = 'D'
	case cell.Outcome == OutcomeWhiteWins && cell.Color == ColorWhite,
		cell.Outcome == OutcomeBlackWins && cell.Color == ColorBlack:
		res = 'W'
	default:
		res = 'L'
	}

	return fmt.Sprintf("%c%d(%c)", res, cell.OppRank, cell.Color.String()[0])
}

// toAnySlice converts a slice of any type to a slice of any (interface{}).
func toAnySlice[T any](slice []T) []any {
	result := make([]any, len(slice))
	for i, v := range slice {
		result[i] = v
	}
	return result
}
