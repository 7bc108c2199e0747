package command

import (
	"fmt"
	"strings"

	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/parser"
	"github.com/suderio/eskalero/internal/score"
)

// ExecuteHint explains what the table is waiting for.
func ExecuteHint(cmd *parser.HintCmd, game *engine.Game) ([]engine.Event, error) {
	state := game.Snapshot()
	switch state.Phase() {
	case engine.NotStarted:
		return notice("No game in progress. Use 'start with: <name> and: <name>' to begin."), nil
	case engine.Complete:
		w, _ := game.Winner()
		return notice(fmt.Sprintf("The sheet is full. %s wins with %d points.", w.Name, w.Total)), nil
	}

	p, _ := state.CurrentPlayer()
	if p.Open() == 0 {
		// Finished players keep their seat in the rotation.
		return notice(fmt.Sprintf("It's %s's turn, but their sheet is full. Waiting on: %s.", p.Name, strings.Join(pending(state), ", "))), nil
	}

	var open []string
	for c, col := range p.Columns {
		for _, cat := range score.Categories {
			if _, set := col[cat]; set {
				continue
			}
			if len(p.Columns) == 1 {
				open = append(open, string(cat))
			} else {
				open = append(open, fmt.Sprintf("%s/%d", cat, c+1))
			}
		}
	}
	return notice(fmt.Sprintf("It's %s's turn. Open cells: %s.", p.Name, strings.Join(open, " "))), nil
}

func pending(state *engine.GameState) []string {
	var names []string
	for _, p := range state.Players {
		if p.Open() > 0 {
			names = append(names, p.Name)
		}
	}
	return names
}

func notice(text string) []engine.Event {
	return []engine.Event{&engine.NoticeEvent{Text: text}}
}
