package data

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const lineupDir = "lineups"

// Loader reads and writes lineups. Reads search the data directories in
// order; writes always go to the first one.
type Loader struct {
	dataDirs []string
}

// NewLoader initializes a new Loader with the given data directory fallback hierarchy
func NewLoader(dataDirs []string) *Loader {
	return &Loader{
		dataDirs: dataDirs,
	}
}

// LoadLineup finds a lineup by name in the data directories.
func (l *Loader) LoadLineup(name string) (*Lineup, error) {
	var lu Lineup
	ref := filepath.Join(lineupDir, fileName(name))
	if err := l.load(ref, &lu); err != nil {
		return nil, err
	}
	if lu.Name == "" {
		lu.Name = name
	}
	return &lu, nil
}

// SaveLineup writes a lineup into the first data directory, replacing any
// lineup of the same name there.
func (l *Loader) SaveLineup(lu *Lineup) (string, error) {
	if err := lu.Validate(); err != nil {
		return "", err
	}
	if len(l.dataDirs) == 0 {
		return "", fmt.Errorf("no data directory configured")
	}

	dir := filepath.Join(l.dataDirs[0], lineupDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	out, err := yaml.Marshal(lu)
	if err != nil {
		return "", fmt.Errorf("failed to encode lineup %s: %w", lu.Name, err)
	}
	path := filepath.Join(dir, fileName(lu.Name))
	if err := os.WriteFile(path, out, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// ListLineups returns the names of every lineup found, each once. A
// lineup in an earlier directory shadows one of the same name later on.
func (l *Loader) ListLineups() ([]string, error) {
	seen := make(map[string]bool)
	var names []string
	for _, dir := range l.dataDirs {
		entries, err := os.ReadDir(filepath.Join(dir, lineupDir))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
				continue
			}
			name := strings.TrimSuffix(e.Name(), ".yaml")
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names, nil
}

func (l *Loader) load(ref string, target interface{}) error {
	for _, dir := range l.dataDirs {
		path := filepath.Join(dir, ref)
		f, err := os.Open(path)
		if err == nil {
			defer f.Close()
			decoder := yaml.NewDecoder(f)
			if err := decoder.Decode(target); err != nil {
				return fmt.Errorf("failed to decode yaml reference %s: %w", ref, err)
			}
			return nil
		}
	}
	return fmt.Errorf("could not find or open reference %s in any available data directory", ref)
}
