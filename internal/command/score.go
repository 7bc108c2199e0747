package command

import (
	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/parser"
	"github.com/suderio/eskalero/internal/rules"
	"github.com/suderio/eskalero/internal/score"
)

// ExecuteScore enters a typed value, or the result of a rule expression,
// into a cell. The column tier is applied on top.
func ExecuteScore(cmd *parser.ScoreCmd, game *engine.Game, reg *rules.Registry) ([]engine.Event, error) {
	c, err := resolveCell(cmd.Actor, cmd.Column, cmd.Row, game)
	if err != nil {
		return nil, err
	}

	if cmd.Expr == nil {
		if cmd.Value == nil {
			return game.Submit(c.playerID, c.column, c.row, nil)
		}
		return submit(c, *cmd.Value, game)
	}

	base, err := reg.EvalScore(*cmd.Expr)
	if err != nil {
		return nil, err
	}
	return submit(c, base, game)
}

// ExecuteCount prices a numeric row from the number of matching dice.
func ExecuteCount(cmd *parser.CountCmd, game *engine.Game) ([]engine.Event, error) {
	c, err := resolveCell(cmd.Actor, cmd.Column, cmd.Row, game)
	if err != nil {
		return nil, err
	}
	base, err := score.CountScore(c.row, cmd.Dice)
	if err != nil {
		return nil, err
	}
	return submit(c, base, game)
}

// ExecuteStrike crosses a cell out with zero.
func ExecuteStrike(cmd *parser.StrikeCmd, game *engine.Game) ([]engine.Event, error) {
	c, err := resolveCell(cmd.Actor, cmd.Column, cmd.Row, game)
	if err != nil {
		return nil, err
	}
	return submit(c, 0, game)
}
