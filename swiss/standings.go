/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package swiss

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikeb26/swisstd/internal"
)

// Standing is one row of the computed ranking.
type Standing struct {
	Rank   int
	Player *Player
	Score  float64
	// Tiebreaks parallels the configured tiebreak order.
	Tiebreaks []float64
}

// Standings computes the total order over all players, withdrawn players
// included, from recorded rounds only. The primary key is score
// descending, then each configured tiebreak descending, with player name
// ascending as the final key for full determinism. The computation is
// stateless: the same ledger and config always produce identical output.
func (t *Tournament) Standings() []Standing {
	ctx := t.tiebreakContext()

	rows := make([]Standing, 0, len(t.players))
	for _, p := range t.Players() {
		row := Standing{
			Player: p,
			Score:  ctx.scores[p.ID],
		}
		for _, tb := range t.Cfg.TiebreakOrder {
			row.Tiebreaks = append(row.Tiebreaks, ctx.compute(tb, p))
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		for k := range rows[i].Tiebreaks {
			if rows[i].Tiebreaks[k] != rows[j].Tiebreaks[k] {
				return rows[i].Tiebreaks[k] > rows[j].Tiebreaks[k]
			}
		}
		return rows[i].Player.Name < rows[j].Player.Name
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}

// BuildStandingsOutput formats standings into an aligned text table.
func BuildStandingsOutput(t *Tournament) string {
	standings := t.Standings()
	if len(standings) == 0 {
		return "No players registered\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Standings after round %v of %v:\n\n",
		t.recordedRounds(), t.Cfg.NumRounds))

	headers := []string{"Place", "Name", "Score"}
	for _, tb := range t.Cfg.TiebreakOrder {
		headers = append(headers, tb.DisplayName())
	}

	var rows [][]string
	priorScore := -1.0
	for _, s := range standings {
		rank := ""
		if s.Rank == 1 || s.Score != priorScore {
			rank = fmt.Sprintf("%v.", s.Rank)
		}
		priorScore = s.Score

		name := s.Player.Name
		if !s.Player.Active {
			name += " (withdrawn)"
		}
		row := []string{rank, name, internal.ScoreToString(s.Score)}
		for _, v := range s.Tiebreaks {
			row = append(row, fmt.Sprintf("%.1f", v))
		}
		rows = append(rows, row)
	}

	// Compute column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		for i, cell := range cells {
			sb.WriteString(fmt.Sprintf("%-*s", widths[i], cell))
			if i != len(cells)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	sb.WriteString("\n")

	return sb.String()
}
