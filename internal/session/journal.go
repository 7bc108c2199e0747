package session

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const journalExt = ".jsonl"

// JournalDir organizes transcripts in one directory, one file per table,
// named after the time the table was opened.
type JournalDir struct {
	Dir string
}

func NewJournalDir(dir string) *JournalDir {
	return &JournalDir{Dir: dir}
}

// Create makes sure the directory exists and returns the path for a new
// journal opened at t.
func (j *JournalDir) Create(t time.Time) (string, error) {
	if err := os.MkdirAll(j.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", j.Dir, err)
	}
	return filepath.Join(j.Dir, t.Format("20060102-150405")+journalExt), nil
}

// List returns the journal names, oldest first.
func (j *JournalDir) List() ([]string, error) {
	entries, err := os.ReadDir(j.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), journalExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), journalExt))
	}
	sort.Strings(names)
	return names, nil
}

// Resolve returns the path of a journal by name. An empty name selects the
// most recent one.
func (j *JournalDir) Resolve(name string) (string, error) {
	if name == "" {
		names, err := j.List()
		if err != nil {
			return "", err
		}
		if len(names) == 0 {
			return "", fmt.Errorf("no journals found in %s", j.Dir)
		}
		name = names[len(names)-1]
	}

	path := filepath.Join(j.Dir, strings.TrimSuffix(name, journalExt)+journalExt)
	if stat, err := os.Stat(path); err != nil || stat.IsDir() {
		return "", fmt.Errorf("journal not found: %s", path)
	}
	return path, nil
}
