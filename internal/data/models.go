package data

import (
	"fmt"
	"strings"
)

// Lineup is a saved seating: who plays, in which order, and on which sheet.
type Lineup struct {
	Name    string   `yaml:"name"`
	Mode    string   `yaml:"mode,omitempty"`
	Players []string `yaml:"players"`
}

// Validate checks the lineup holds something a table can be started with.
// Player count and mode are checked again when the game starts.
func (l *Lineup) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("lineup has no name")
	}
	if strings.ContainsAny(l.Name, `/\`) {
		return fmt.Errorf("lineup name %q must not contain path separators", l.Name)
	}
	if len(l.Players) == 0 {
		return fmt.Errorf("lineup %s has no players", l.Name)
	}
	for i, p := range l.Players {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("lineup %s: player %d has no name", l.Name, i+1)
		}
	}
	return nil
}

func fileName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-") + ".yaml"
}
