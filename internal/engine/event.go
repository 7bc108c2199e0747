package engine

import (
	"fmt"

	"github.com/suderio/eskalero/internal/score"
)

type EventType string

const (
	EventGameStarted   EventType = "GameStarted"
	EventScoreRecorded EventType = "ScoreRecorded"
	EventTurnPassed    EventType = "TurnPassed"
	EventGameReset     EventType = "GameReset"
	EventNotice        EventType = "Notice"
)

// Event is the building block of the event-sourced engine.
type Event interface {
	Type() EventType
	Apply(state *GameState) error
	Message() string
}

// Seat is a player identity fixed when the game starts.
type Seat struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GameStartedEvent seats the players and hands out empty sheets.
type GameStartedEvent struct {
	Mode  Mode   `json:"mode"`
	Seats []Seat `json:"seats"`
}

func (e *GameStartedEvent) Type() EventType { return EventGameStarted }
func (e *GameStartedEvent) Apply(state *GameState) error {
	players := make([]*Player, len(e.Seats))
	for i, seat := range e.Seats {
		cols := make([]Column, e.Mode.Columns())
		for c := range cols {
			cols[c] = make(Column, len(score.Categories))
		}
		players[i] = &Player{ID: seat.ID, Name: seat.Name, Columns: cols}
	}
	state.Started = true
	state.Mode = e.Mode
	state.Players = players
	state.CurrentTurn = 0
	return nil
}
func (e *GameStartedEvent) Message() string {
	names := make([]string, len(e.Seats))
	for i, s := range e.Seats {
		names[i] = s.Name
	}
	return fmt.Sprintf("Game started (%s) with %v.", e.Mode, names)
}

// ScoreRecordedEvent writes one cell of a player's sheet.
type ScoreRecordedEvent struct {
	PlayerID string         `json:"player_id"`
	Name     string         `json:"name"`
	Column   int            `json:"column"`
	Category score.Category `json:"category"`
	Value    int            `json:"value"`
}

func (e *ScoreRecordedEvent) Type() EventType { return EventScoreRecorded }
func (e *ScoreRecordedEvent) Apply(state *GameState) error {
	p, ok := state.Player(e.PlayerID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlayer, e.PlayerID)
	}
	if e.Column < 0 || e.Column >= len(p.Columns) {
		return fmt.Errorf("%w: column %d", ErrInvalidCell, e.Column+1)
	}
	col := p.Columns[e.Column]
	if _, set := col[e.Category]; set {
		return fmt.Errorf("%w: %s column %d row %s", ErrCellAlreadySet, p.Name, e.Column+1, e.Category)
	}
	col[e.Category] = e.Value
	return nil
}
func (e *ScoreRecordedEvent) Message() string {
	if e.Value == 0 {
		return fmt.Sprintf("%s strikes %s (column %d).", e.Name, e.Category.Name(), e.Column+1)
	}
	return fmt.Sprintf("%s scores %d on %s (column %d).", e.Name, e.Value, e.Category.Name(), e.Column+1)
}

// TurnPassedEvent moves the turn pointer to the next seat.
type TurnPassedEvent struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (e *TurnPassedEvent) Type() EventType { return EventTurnPassed }
func (e *TurnPassedEvent) Apply(state *GameState) error {
	if len(state.Players) == 0 {
		return nil
	}
	state.CurrentTurn = (state.CurrentTurn + 1) % len(state.Players)
	return nil
}
func (e *TurnPassedEvent) Message() string {
	return fmt.Sprintf("%s's turn.", e.To)
}

// GameResetEvent discards the table and returns to the setup state.
type GameResetEvent struct{}

func (e *GameResetEvent) Type() EventType { return EventGameReset }
func (e *GameResetEvent) Apply(state *GameState) error {
	state.Started = false
	state.Players = make([]*Player, 0)
	state.CurrentTurn = 0
	state.Mode = Classic
	return nil
}
func (e *GameResetEvent) Message() string { return "Game reset." }

// NoticeEvent answers a query; it never changes state and is not journaled.
type NoticeEvent struct {
	Text string
}

func (e *NoticeEvent) Type() EventType              { return EventNotice }
func (e *NoticeEvent) Apply(state *GameState) error { return nil }
func (e *NoticeEvent) Message() string              { return e.Text }
