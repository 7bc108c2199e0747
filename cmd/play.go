/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/suderio/eskalero/internal/data"
	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play [player...]",
	Short: "Open a score table",
	Long: `Opens an interactive score table. Players given as arguments (or
through --lineup) are seated right away; otherwise use the start command.
Usage:
	> start with: Anna and: Bert mode: triple
	> combo col: 2 row: P main: A pair: K
	> straight large served`,
	Args: cobra.MaximumNArgs(engine.MaxPlayers),
	Run: func(cmd *cobra.Command, args []string) {
		s := settings()

		modeFlag, _ := cmd.Flags().GetString("mode")
		lineupName, _ := cmd.Flags().GetString("lineup")
		journalPath, _ := cmd.Flags().GetString("journal")
		noJournal, _ := cmd.Flags().GetBool("no-journal")
		plain, _ := cmd.Flags().GetBool("plain")
		if modeFlag != "" {
			s.Mode = modeFlag
		}
		noJournal = noJournal || s.NoJournal
		plain = plain || s.Plain

		mode, err := engine.ParseMode(s.Mode)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		var store session.Store
		if !noJournal {
			path := journalPath
			if path == "" {
				path, err = session.NewJournalDir(s.JournalDir).Create(time.Now())
				if err != nil {
					fmt.Printf("Error preparing journal: %v\n", err)
					os.Exit(1)
				}
			}
			js, err := session.NewJournalStore(path)
			if err != nil {
				fmt.Printf("Error opening journal: %v\n", err)
				os.Exit(1)
			}
			store = js
		}

		app, err := session.NewSession(store, mode)
		if err != nil {
			fmt.Printf("Failed to bootstrap game session: %v\n", err)
			os.Exit(1)
		}
		defer app.Close()

		var seated []engine.Event
		switch {
		case lineupName != "":
			lineup, err := data.NewLoader([]string{s.DataDir}).LoadLineup(lineupName)
			if err != nil {
				fmt.Printf("Error loading lineup: %v\n", err)
				os.Exit(1)
			}
			if modeFlag != "" {
				lineup.Mode = modeFlag
			}
			seated, err = app.SeatLineup(lineup)
			if err != nil {
				fmt.Printf("Error seating lineup %s: %v\n", lineupName, err)
				os.Exit(1)
			}
		case len(args) > 0:
			seated, err = app.Seat(args, mode)
			if err != nil {
				fmt.Printf("Error seating players: %v\n", err)
				os.Exit(1)
			}
		}

		if plain {
			err = RunPlain(app, os.Stdin, os.Stdout, seated)
		} else {
			err = RunTUI(app, seated)
		}
		if err != nil {
			fmt.Printf("Fatal Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().StringP("mode", "m", "", "sheet mode: classic or triple (default from config, then triple)")
	playCmd.Flags().StringP("lineup", "l", "", "seat a saved lineup")
	playCmd.Flags().StringP("journal", "j", "", "write the journal to this file instead of the journal directory")
	playCmd.Flags().Bool("no-journal", false, "do not write a journal for this table")
	playCmd.Flags().Bool("plain", false, "line mode instead of the full-screen interface")
}
