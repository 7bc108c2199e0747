package engine

import "fmt"

// Projector folds a journal of events back into a GameState. It is used to
// read transcripts; live play goes through Game.
type Projector struct{}

func NewProjector() *Projector {
	return &Projector{}
}

// Build applies events in order onto a fresh state. Notices are skipped.
func (p *Projector) Build(events []Event) (*GameState, error) {
	state := NewGameState()
	for i, evt := range events {
		if evt.Type() == EventNotice {
			continue
		}
		if err := evt.Apply(state); err != nil {
			return nil, fmt.Errorf("event %d (%s): %w", i+1, evt.Type(), err)
		}
	}
	return state, nil
}
