/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suderio/eskalero/internal/data"
	"github.com/suderio/eskalero/internal/engine"
)

// lineupCmd represents the lineup command
var lineupCmd = &cobra.Command{
	Use:   "lineup",
	Short: "Manage saved lineups",
	Long: `A lineup stores who plays and on which sheet, so a regular table
can be seated with 'eskalero play --lineup <name>'.

Lineups are YAML files under <data_dir>/lineups.`,
}

var lineupCreateCmd = &cobra.Command{
	Use:   "create <name> <player> <player>...",
	Short: "Save a lineup",
	Args:  cobra.RangeArgs(1+engine.MinPlayers, 1+engine.MaxPlayers),
	Run: func(cmd *cobra.Command, args []string) {
		mode, _ := cmd.Flags().GetString("mode")
		if mode != "" {
			m, err := engine.ParseMode(mode)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			mode = string(m)
		}

		loader := data.NewLoader([]string{settings().DataDir})
		path, err := loader.SaveLineup(&data.Lineup{Name: args[0], Mode: mode, Players: args[1:]})
		if err != nil {
			fmt.Printf("Error creating lineup: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Successfully created lineup!\n")
		fmt.Printf("Stored at: %s\n", path)
	},
}

var lineupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved lineups",
	Run: func(cmd *cobra.Command, args []string) {
		loader := data.NewLoader([]string{settings().DataDir})
		names, err := loader.ListLineups()
		if err != nil {
			fmt.Printf("Error listing lineups: %v\n", err)
			os.Exit(1)
		}
		if len(names) == 0 {
			fmt.Println("No lineups saved yet.")
			return
		}
		for _, name := range names {
			lu, err := loader.LoadLineup(name)
			if err != nil {
				fmt.Printf("- %s (unreadable: %v)\n", name, err)
				continue
			}
			mode := lu.Mode
			if mode == "" {
				mode = "default mode"
			}
			fmt.Printf("- %s: %s (%s)\n", lu.Name, strings.Join(lu.Players, ", "), mode)
		}
	},
}

func init() {
	rootCmd.AddCommand(lineupCmd)
	lineupCmd.AddCommand(lineupCreateCmd)
	lineupCmd.AddCommand(lineupListCmd)

	lineupCreateCmd.Flags().StringP("mode", "m", "", "sheet mode for this lineup: classic or triple")
}
