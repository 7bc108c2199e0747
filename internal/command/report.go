package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/parser"
	"github.com/suderio/eskalero/internal/score"
)

// FormatSheet renders the score sheet: one row per category, one column per
// player and tier, followed by the totals.
func FormatSheet(state *engine.GameState) string {
	if !state.Started {
		return "No game in progress."
	}

	cols := state.Mode.Columns()
	headers := []string{""}
	for _, p := range state.Players {
		if cols == 1 {
			headers = append(headers, p.Name)
			continue
		}
		for c := 0; c < cols; c++ {
			headers = append(headers, fmt.Sprintf("%s ×%d", p.Name, c+1))
		}
	}

	t := table.New().Border(lipgloss.NormalBorder()).Headers(headers...)
	for _, cat := range score.Categories {
		row := []string{cat.Name()}
		for _, p := range state.Players {
			for _, col := range p.Columns {
				v, ok := col[cat]
				if !ok {
					row = append(row, "")
					continue
				}
				row = append(row, strconv.Itoa(v))
			}
		}
		t.Row(row...)
	}

	totals := []string{"Total"}
	for _, p := range state.Players {
		for _, col := range p.Columns {
			totals = append(totals, strconv.Itoa(col.Total()))
		}
	}
	t.Row(totals...)
	return t.String()
}

// FormatRanking lists the standings, best first.
func FormatRanking(standings []engine.Standing) string {
	if len(standings) == 0 {
		return "No players seated."
	}
	var sb strings.Builder
	for _, s := range standings {
		sb.WriteString(fmt.Sprintf("%d. %s: %d\n", s.Rank, s.Name, s.Total))
	}
	return strings.TrimSpace(sb.String())
}

// ExecuteSheet answers the sheet query.
func ExecuteSheet(cmd *parser.SheetCmd, game *engine.Game) ([]engine.Event, error) {
	return []engine.Event{&engine.NoticeEvent{Text: FormatSheet(game.Snapshot())}}, nil
}

// ExecuteRank answers the rank query. Once every cell is filled it also
// names the winner.
func ExecuteRank(cmd *parser.RankCmd, game *engine.Game) ([]engine.Event, error) {
	if game.Phase() == engine.NotStarted {
		return nil, engine.ErrNotStarted
	}
	text := FormatRanking(game.Ranking())
	if w, ok := game.Winner(); ok && game.IsComplete() {
		text += fmt.Sprintf("\n%s wins with %d points!", w.Name, w.Total)
	}
	return []engine.Event{&engine.NoticeEvent{Text: text}}, nil
}
