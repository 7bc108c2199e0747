package session

import (
	"fmt"
	"log"

	"github.com/alecthomas/participle/v2"

	"github.com/suderio/eskalero/internal/command"
	"github.com/suderio/eskalero/internal/data"
	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/parser"
	"github.com/suderio/eskalero/internal/rules"
)

// Store defines the dependency required by Session to journal events
type Store interface {
	Append(evt engine.Event) error
	Load() ([]engine.Event, error)
	Close() error
}

// Session manages the loop of taking commands, executing them against the
// game and journaling what happened. Each front end owns one Session.
type Session struct {
	game        *engine.Game
	store       Store
	registry    *rules.Registry
	parser      *participle.Parser[parser.Command]
	defaultMode engine.Mode
}

// NewSession wires a fresh game to the given journal. A nil store disables
// journaling. defaultMode applies to "start" commands without a mode clause.
func NewSession(store Store, defaultMode engine.Mode, opts ...engine.Option) (*Session, error) {
	if store == nil {
		store = NopStore{}
	}
	if !defaultMode.Valid() {
		return nil, fmt.Errorf("%w: unknown mode %q", engine.ErrInvalidConfiguration, defaultMode)
	}

	reg, err := rules.NewRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rules registry: %w", err)
	}

	return &Session{
		game:        engine.NewGame(opts...),
		store:       store,
		registry:    reg,
		parser:      parser.Build(),
		defaultMode: defaultMode,
	}, nil
}

// Game exposes the table for read-only queries.
func (s *Session) Game() *engine.Game {
	return s.game
}

// DefaultMode returns the mode used when "start" names none.
func (s *Session) DefaultMode() engine.Mode {
	return s.defaultMode
}

// Execute takes a raw command line from a UI client, runs it and returns the
// events it produced. Silent rejections (out of turn, cell taken) yield
// nil, nil.
func (s *Session) Execute(input string) ([]engine.Event, error) {
	astCmd, err := s.parser.ParseString("", input)
	if err != nil {
		return nil, parser.MapError(input, err)
	}

	events, err := s.dispatch(astCmd)
	if err != nil {
		if engine.IsSilent(err) {
			return nil, nil
		}
		return nil, err
	}

	s.journal(events)
	return events, nil
}

// Seat starts a table directly, as the "start" command would.
func (s *Session) Seat(names []string, mode engine.Mode) ([]engine.Event, error) {
	if mode == "" {
		mode = s.defaultMode
	}
	events, err := s.game.Start(names, mode)
	if err != nil {
		return nil, err
	}
	s.journal(events)
	return events, nil
}

// SeatLineup starts a table from a saved lineup.
func (s *Session) SeatLineup(l *data.Lineup) ([]engine.Event, error) {
	var mode engine.Mode
	if l.Mode != "" {
		m, err := engine.ParseMode(l.Mode)
		if err != nil {
			return nil, fmt.Errorf("lineup %s: %w", l.Name, err)
		}
		mode = m
	}
	return s.Seat(l.Players, mode)
}

// Close releases the journal.
func (s *Session) Close() error {
	return s.store.Close()
}

func (s *Session) dispatch(astCmd *parser.Command) ([]engine.Event, error) {
	switch {
	case astCmd.Start != nil:
		return command.ExecuteStart(astCmd.Start, s.game, s.defaultMode)
	case astCmd.Score != nil:
		return command.ExecuteScore(astCmd.Score, s.game, s.registry)
	case astCmd.Count != nil:
		return command.ExecuteCount(astCmd.Count, s.game)
	case astCmd.Strike != nil:
		return command.ExecuteStrike(astCmd.Strike, s.game)
	case astCmd.Straight != nil:
		return command.ExecuteStraight(astCmd.Straight, s.game)
	case astCmd.Combo != nil:
		return command.ExecuteCombo(astCmd.Combo, s.game)
	case astCmd.Sheet != nil:
		return command.ExecuteSheet(astCmd.Sheet, s.game)
	case astCmd.Rank != nil:
		return command.ExecuteRank(astCmd.Rank, s.game)
	case astCmd.Hint != nil:
		return command.ExecuteHint(astCmd.Hint, s.game)
	case astCmd.Reset != nil:
		return command.ExecuteReset(astCmd.Reset, s.game)
	case astCmd.Help != nil:
		return command.ExecuteHelp(astCmd.Help)
	}
	return nil, fmt.Errorf("unsupported command pattern")
}

// journal appends state-changing events. The game has already applied them,
// so a failing journal is reported but does not undo the move.
func (s *Session) journal(events []engine.Event) {
	for _, evt := range events {
		if evt.Type() == engine.EventNotice {
			continue
		}
		if err := s.store.Append(evt); err != nil {
			log.Printf("failed to journal %s event: %v", evt.Type(), err)
			return
		}
	}
}
