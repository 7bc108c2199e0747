package command

import (
	"fmt"
	"math"

	"golang.org/x/text/cases"

	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/parser"
	"github.com/suderio/eskalero/internal/score"
)

var fold = cases.Fold()

// ResolvePlayer determines which player a command is for. Without a "by:"
// clause it is the player whose turn it is. Names match case-insensitively
// (Unicode folding, so "JÜRGEN" finds Jürgen).
func ResolvePlayer(actor *parser.ActorExpr, game *engine.Game) (string, error) {
	if game.Phase() == engine.NotStarted {
		return "", engine.ErrNotStarted
	}
	if actor == nil {
		return game.CurrentPlayerID(), nil
	}

	want := fold.String(actor.Name)
	for _, p := range game.Players() {
		if fold.String(p.Name) == want {
			return p.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %s", engine.ErrUnknownPlayer, actor.Name)
}

// ResolveColumn turns the 1-based column typed by the user into an index.
// Zero means the clause was omitted and selects the first column.
func ResolveColumn(col int, game *engine.Game) (int, error) {
	if col == 0 {
		return 0, nil
	}
	if col < 1 || col > game.Mode().Columns() {
		return 0, fmt.Errorf("%w: column %d (the %s sheet has %d)", engine.ErrInvalidCell, col, game.Mode(), game.Mode().Columns())
	}
	return col - 1, nil
}

// ResolveRow parses a row label such as "K", "10" or "poker".
func ResolveRow(row string) (score.Category, error) {
	cat, err := score.ParseCategory(row)
	if err != nil {
		return "", fmt.Errorf("%w: %v", engine.ErrInvalidCell, err)
	}
	return cat, nil
}

// Tier is the multiplier of a column: always 1 in classic mode, the column
// number in triple mode.
func Tier(mode engine.Mode, column int) int {
	if mode == engine.Triple {
		return column + 1
	}
	return 1
}

// cell bundles the resolved target of a scoring command.
type cell struct {
	playerID string
	column   int
	row      score.Category
}

func resolveCell(actor *parser.ActorExpr, col int, row string, game *engine.Game) (cell, error) {
	id, err := ResolvePlayer(actor, game)
	if err != nil {
		return cell{}, err
	}
	idx, err := ResolveColumn(col, game)
	if err != nil {
		return cell{}, err
	}
	cat, err := ResolveRow(row)
	if err != nil {
		return cell{}, err
	}
	return cell{playerID: id, column: idx, row: cat}, nil
}

// submit applies the column tier to a base value and hands it to the game.
func submit(c cell, base int, game *engine.Game) ([]engine.Event, error) {
	tier := Tier(game.Mode(), c.column)
	if base > math.MaxInt/tier {
		return nil, fmt.Errorf("%w: %d in column %d", engine.ErrValueTooLarge, base, c.column+1)
	}
	value := base * tier
	return game.Submit(c.playerID, c.column, c.row, &value)
}
