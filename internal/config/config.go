package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const DefaultMode = "triple"

// Settings are the defaults a table is opened with. Each field can come
// from the config file, a .env file or the environment.
type Settings struct {
	DataDir    string `env:"ESKALERO_DATA_DIR"`
	JournalDir string `env:"ESKALERO_JOURNAL_DIR"`
	Mode       string `env:"ESKALERO_MODE"`
	Plain      bool   `env:"ESKALERO_PLAIN"`
	NoJournal  bool   `env:"ESKALERO_NO_JOURNAL"`
}

// Load overlays the environment on base. Variables in the given .env files
// (default ".env") are loaded first, without overriding variables already
// set; missing files are ignored. Empty directories fall back to
// ~/.eskalero and ~/.eskalero/journals.
func Load(base Settings, envFiles ...string) (Settings, error) {
	if err := loadDotEnv(envFiles...); err != nil {
		return base, err
	}

	s := base
	if err := env.Parse(&s); err != nil {
		return base, fmt.Errorf("parse env: %w", err)
	}

	if s.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return base, fmt.Errorf("cannot locate home directory: %w", err)
		}
		s.DataDir = filepath.Join(home, ".eskalero")
	}
	if s.JournalDir == "" {
		s.JournalDir = filepath.Join(s.DataDir, "journals")
	}
	if s.Mode == "" {
		s.Mode = DefaultMode
	}
	return s, nil
}

func loadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}
