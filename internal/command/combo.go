package command

import (
	"fmt"
	"strings"

	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/parser"
	"github.com/suderio/eskalero/internal/score"
)

// ExecuteStraight is the small/large toggle for the straight row. It always
// targets the S row and goes through score.StraightScore.
func ExecuteStraight(cmd *parser.StraightCmd, game *engine.Game) ([]engine.Event, error) {
	c, err := resolveCell(cmd.Actor, cmd.Column, string(score.Straight), game)
	if err != nil {
		return nil, err
	}
	base := score.StraightScore(strings.EqualFold(cmd.Size, "large"), cmd.Served)
	return submit(c, base, game)
}

// ExecuteCombo prices a combination row from its declared faces: the main
// face of the set, and for full house or poker the face of the pair or kicker.
func ExecuteCombo(cmd *parser.ComboCmd, game *engine.Game) ([]engine.Event, error) {
	c, err := resolveCell(cmd.Actor, cmd.Column, cmd.Row, game)
	if err != nil {
		return nil, err
	}
	if !c.row.IsCombination() {
		return nil, fmt.Errorf("%w: %s", score.ErrNotCombination, c.row.Name())
	}

	var faces score.Faces
	if faces.Primary, err = score.ParseFace(cmd.Main); err != nil {
		return nil, err
	}
	if cmd.Pair != "" {
		if faces.Secondary, err = score.ParseFace(cmd.Pair); err != nil {
			return nil, err
		}
	}

	base, err := score.Combination(c.row, cmd.Served, faces)
	if err != nil {
		return nil, err
	}
	return submit(c, base, game)
}
