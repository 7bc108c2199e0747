package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/suderio/eskalero/internal/engine"
)

// EventWrapper serializes polymorphic engine events to JSONL.
type EventWrapper struct {
	Type engine.EventType `json:"type"`
	Data json.RawMessage  `json:"data"`
}

// JournalStore is an append-only transcript of a table, one event per line.
type JournalStore struct {
	file *os.File
}

// NewJournalStore opens or creates a JSONL journal at the given path.
func NewJournalStore(path string) (*JournalStore, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	return &JournalStore{file: file}, nil
}

// Path returns the file backing the journal.
func (s *JournalStore) Path() string {
	return s.file.Name()
}

// Append marshals an engine Event and appends it as a JSONL line.
func (s *JournalStore) Append(evt engine.Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	line, err := json.Marshal(EventWrapper{Type: evt.Type(), Data: data})
	if err != nil {
		return fmt.Errorf("failed to marshal wrapper: %w", err)
	}

	if _, err := s.file.Write(append(line, '\n')); err != nil {
		return err
	}
	return s.file.Sync()
}

// Load reads every event of the journal back.
func (s *JournalStore) Load() ([]engine.Event, error) {
	if _, err := s.file.Seek(0, 0); err != nil {
		return nil, err
	}

	var events []engine.Event
	scanner := bufio.NewScanner(s.file)
	for scanner.Scan() {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var wrapper EventWrapper
		if err := json.Unmarshal(scanner.Bytes(), &wrapper); err != nil {
			return nil, fmt.Errorf("failed to decode event wrapper: %w", err)
		}

		evt, err := unmarshalEvent(wrapper.Type, wrapper.Data)
		if err != nil {
			return nil, err
		}
		events = append(events, evt)
	}

	return events, scanner.Err()
}

// Close closes the underlying file.
func (s *JournalStore) Close() error {
	return s.file.Close()
}

// NopStore discards everything. It backs sessions played without a journal.
type NopStore struct{}

func (NopStore) Append(engine.Event) error      { return nil }
func (NopStore) Load() ([]engine.Event, error) { return nil, nil }
func (NopStore) Close() error                  { return nil }

// unmarshalEvent reconstructs a concrete Event from its type discriminator and JSON data.
func unmarshalEvent(typeName engine.EventType, data json.RawMessage) (engine.Event, error) {
	var evt engine.Event

	switch typeName {
	case engine.EventGameStarted:
		evt = &engine.GameStartedEvent{}
	case engine.EventScoreRecorded:
		evt = &engine.ScoreRecordedEvent{}
	case engine.EventTurnPassed:
		evt = &engine.TurnPassedEvent{}
	case engine.EventGameReset:
		evt = &engine.GameResetEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", typeName)
	}

	if err := json.Unmarshal(data, evt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", typeName, err)
	}
	return evt, nil
}
