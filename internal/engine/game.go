package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/suderio/eskalero/internal/score"
)

const (
	MinPlayers = 2
	MaxPlayers = 5
)

// Game is the scorekeeping state machine for one table. It validates
// commands, turns them into events and applies them. A Game is not safe for
// concurrent use; hot-seat play drives it from a single loop.
type Game struct {
	state *GameState
	newID func() string
}

// Option customizes a Game.
type Option func(*Game)

// WithIDGenerator replaces the UUID generator used for player ids.
func WithIDGenerator(fn func() string) Option {
	return func(g *Game) { g.newID = fn }
}

// NewGame returns a game in the NotStarted phase.
func NewGame(opts ...Option) *Game {
	g := &Game{
		state: NewGameState(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Start seats 2 to 5 players in the given order and deals each an empty
// sheet for mode. The first name takes the first turn.
func (g *Game) Start(names []string, mode Mode) ([]Event, error) {
	if g.state.Started {
		return nil, ErrAlreadyStarted
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfiguration, mode)
	}
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return nil, fmt.Errorf("%w: need %d to %d players, got %d", ErrInvalidConfiguration, MinPlayers, MaxPlayers, len(names))
	}

	seats := make([]Seat, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: player %d has an empty name", ErrInvalidConfiguration, i+1)
		}
		seats[i] = Seat{ID: g.newID(), Name: name}
	}

	return g.commit(&GameStartedEvent{Mode: mode, Seats: seats})
}

// Submit records value into the given cell of the current player's sheet
// and passes the turn. A nil value is a cancelled entry. Rejections leave
// the game untouched; ErrNotYourTurn, ErrCellAlreadySet and ErrMissingValue
// match ErrSilentIgnore.
func (g *Game) Submit(playerID string, column int, category score.Category, value *int) ([]Event, error) {
	if !g.state.Started {
		return nil, ErrNotStarted
	}
	if value == nil {
		return nil, ErrMissingValue
	}
	current, _ := g.state.CurrentPlayer()
	if playerID != current.ID {
		return nil, ErrNotYourTurn
	}
	if column < 0 || column >= len(current.Columns) {
		return nil, fmt.Errorf("%w: column %d of %d", ErrInvalidCell, column+1, len(current.Columns))
	}
	if !category.Valid() {
		return nil, fmt.Errorf("%w: category %q", ErrInvalidCell, category)
	}
	if *value < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeValue, *value)
	}
	if _, set := current.Columns[column][category]; set {
		return nil, ErrCellAlreadySet
	}

	next := g.state.Players[(g.state.CurrentTurn+1)%len(g.state.Players)]
	return g.commit(
		&ScoreRecordedEvent{
			PlayerID: current.ID,
			Name:     current.Name,
			Column:   column,
			Category: category,
			Value:    *value,
		},
		&TurnPassedEvent{From: current.Name, To: next.Name},
	)
}

// Reset discards the players and returns to NotStarted.
func (g *Game) Reset() []Event {
	evts, _ := g.commit(&GameResetEvent{})
	return evts
}

func (g *Game) commit(evts ...Event) ([]Event, error) {
	for _, evt := range evts {
		if err := evt.Apply(g.state); err != nil {
			return nil, err
		}
	}
	return evts, nil
}

// Phase reports NotStarted, InProgress or Complete.
func (g *Game) Phase() Phase { return g.state.Phase() }

// IsComplete reports whether no unset cell remains.
func (g *Game) IsComplete() bool { return g.state.IsComplete() }

// Mode returns the mode of the running game.
func (g *Game) Mode() Mode { return g.state.Mode }

// CurrentPlayerID is the id of the player allowed to submit, or "" before
// the game starts.
func (g *Game) CurrentPlayerID() string {
	if p, ok := g.state.CurrentPlayer(); ok {
		return p.ID
	}
	return ""
}

// Players returns a deep copy of the seated players.
func (g *Game) Players() []*Player {
	return g.state.Clone().Players
}

// Snapshot returns a deep copy of the whole state.
func (g *Game) Snapshot() *GameState {
	return g.state.Clone()
}

// Total sums every set cell of the player; unset cells count 0.
func (g *Game) Total(playerID string) (int, error) {
	p, ok := g.state.Player(playerID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}
	return p.Total(), nil
}

// ColumnTotal sums one column of the player's sheet.
func (g *Game) ColumnTotal(playerID string, column int) (int, error) {
	p, ok := g.state.Player(playerID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}
	if column < 0 || column >= len(p.Columns) {
		return 0, fmt.Errorf("%w: column %d", ErrInvalidCell, column+1)
	}
	return p.Columns[column].Total(), nil
}

// OpenCells counts the player's unset cells.
func (g *Game) OpenCells(playerID string) (int, error) {
	p, ok := g.state.Player(playerID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownPlayer, playerID)
	}
	return p.Open(), nil
}

// Ranking lists players by total, highest first, ties in seating order.
func (g *Game) Ranking() []Standing { return g.state.Ranking() }

// Winner is the first entry of the ranking.
func (g *Game) Winner() (Standing, bool) {
	r := g.state.Ranking()
	if len(r) == 0 {
		return Standing{}, false
	}
	return r[0], true
}
