/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/suderio/eskalero/internal/command"
	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/session"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log [journal]",
	Short: "Print a table's journal and its standings",
	Long: `Reads a journal (the latest one when none is named) and replays it
through the event Projector to print what happened and how the table
stood at the end. Journals are read only; a table cannot be resumed.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		journals := session.NewJournalDir(settings().JournalDir)

		if list, _ := cmd.Flags().GetBool("list"); list {
			names, err := journals.List()
			if err != nil {
				fmt.Printf("Error listing journals: %v\n", err)
				os.Exit(1)
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return
		}

		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		path, err := journals.Resolve(name)
		if err != nil {
			fmt.Printf("Error finding journal: %v\n", err)
			os.Exit(1)
		}

		store, err := session.NewJournalStore(path)
		if err != nil {
			fmt.Printf("Error opening journal: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		events, err := store.Load()
		if err != nil {
			fmt.Printf("Error reading journal: %v\n", err)
			os.Exit(1)
		}

		state, err := engine.NewProjector().Build(events)
		if err != nil {
			fmt.Printf("Error replaying journal: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Journal %s: %d events.\n\n", path, len(events))
		for _, evt := range events {
			if evt.Type() == engine.EventTurnPassed {
				continue
			}
			fmt.Println(evt.Message())
		}

		if !state.Started {
			return
		}
		fmt.Println()
		fmt.Println(command.FormatSheet(state))
		fmt.Println(command.FormatRanking(state.Ranking()))
		if state.IsComplete() {
			fmt.Println("The sheet is full.")
		} else {
			fmt.Println("The table was left unfinished.")
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.Flags().Bool("list", false, "list the journals instead")
}
