package command

import (
	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/parser"
)

// ExecuteStart seats the named players. An empty mode clause falls back to
// defaultMode.
func ExecuteStart(cmd *parser.StartCmd, game *engine.Game, defaultMode engine.Mode) ([]engine.Event, error) {
	mode := defaultMode
	if cmd.Mode != "" {
		m, err := engine.ParseMode(cmd.Mode)
		if err != nil {
			return nil, err
		}
		mode = m
	}
	return game.Start(cmd.Players, mode)
}

// ExecuteReset abandons the current table, started or not.
func ExecuteReset(cmd *parser.ResetCmd, game *engine.Game) ([]engine.Event, error) {
	return game.Reset(), nil
}
