package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/suderio/eskalero/internal/score"
)

// Mode selects how many columns each player fills.
type Mode string

const (
	Classic Mode = "classic"
	Triple  Mode = "triple"
)

// ParseMode accepts the mode names plus the German sheet labels.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "klassisch", "1":
		return Classic, nil
	case "triple", "3-fach", "3fach", "3":
		return Triple, nil
	}
	return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidConfiguration, s)
}

// Columns returns the number of score columns per player.
func (m Mode) Columns() int {
	if m == Triple {
		return 3
	}
	return 1
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return m == Classic || m == Triple }

// Phase is the lifecycle position of a game.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Complete
)

func (p Phase) String() string {
	switch p {
	case InProgress:
		return "in progress"
	case Complete:
		return "complete"
	}
	return "not started"
}

// Column maps each category to its recorded score. A missing key is an
// unset cell; a zero is a strike.
type Column map[score.Category]int

// Total sums the recorded cells.
func (c Column) Total() int {
	sum := 0
	for _, v := range c {
		sum += v
	}
	return sum
}

// Open counts the unset cells.
func (c Column) Open() int {
	n := 0
	for _, cat := range score.Categories {
		if _, ok := c[cat]; !ok {
			n++
		}
	}
	return n
}

// Player is one seat at the table with its score columns.
type Player struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Total is the grand total over every column.
func (p *Player) Total() int {
	sum := 0
	for _, c := range p.Columns {
		sum += c.Total()
	}
	return sum
}

// Open counts the player's unset cells over every column.
func (p *Player) Open() int {
	n := 0
	for _, c := range p.Columns {
		n += c.Open()
	}
	return n
}

func (p *Player) clone() *Player {
	cp := &Player{ID: p.ID, Name: p.Name, Columns: make([]Column, len(p.Columns))}
	for i, c := range p.Columns {
		col := make(Column, len(c))
		for k, v := range c {
			col[k] = v
		}
		cp.Columns[i] = col
	}
	return cp
}

// Standing is a player's place in the ranking.
type Standing struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Total    int    `json:"total"`
}

// GameState is the projection of a game built from applied events.
type GameState struct {
	Started     bool      `json:"started"`
	Mode        Mode      `json:"mode"`
	Players     []*Player `json:"players"`
	CurrentTurn int       `json:"current_turn"`
}

// NewGameState creates an empty, not yet started state.
func NewGameState() *GameState {
	return &GameState{
		Mode:    Classic,
		Players: make([]*Player, 0),
	}
}

// Phase derives the lifecycle position from the cells.
func (s *GameState) Phase() Phase {
	if !s.Started {
		return NotStarted
	}
	if s.IsComplete() {
		return Complete
	}
	return InProgress
}

// IsComplete reports whether every cell of every column is set.
func (s *GameState) IsComplete() bool {
	if !s.Started || len(s.Players) == 0 {
		return false
	}
	for _, p := range s.Players {
		if p.Open() > 0 {
			return false
		}
	}
	return true
}

// Player looks up a player by id.
func (s *GameState) Player(id string) (*Player, bool) {
	for _, p := range s.Players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// CurrentPlayer returns the player whose turn it is.
func (s *GameState) CurrentPlayer() (*Player, bool) {
	if len(s.Players) == 0 {
		return nil, false
	}
	return s.Players[s.CurrentTurn], true
}

// Ranking sorts players by total descending. Ties keep seating order, so
// the first seat among equals wins.
func (s *GameState) Ranking() []Standing {
	out := make([]Standing, len(s.Players))
	for i, p := range s.Players {
		out[i] = Standing{PlayerID: p.ID, Name: p.Name, Total: p.Total()}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Clone returns a deep copy safe to hand to renderers.
func (s *GameState) Clone() *GameState {
	cp := &GameState{
		Started:     s.Started,
		Mode:        s.Mode,
		CurrentTurn: s.CurrentTurn,
		Players:     make([]*Player, len(s.Players)),
	}
	for i, p := range s.Players {
		cp.Players[i] = p.clone()
	}
	return cp
}
