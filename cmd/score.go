package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suderio/eskalero/internal/command"
	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/rules"
)

var scoreCmd = &cobra.Command{
	Use:   "score <expression>",
	Short: "Price a throw without opening a table",
	Long: `Evaluates a scoring expression and prints the points it is worth.
Examples:
	eskalero score "combo('P', false, 'A', 'K')"
	eskalero score "count('K', 3)" --col 3
	eskalero score "straight(true, true)"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		col, _ := cmd.Flags().GetInt("col")
		if col < 1 || col > engine.Triple.Columns() {
			fmt.Printf("Error: column must be between 1 and %d\n", engine.Triple.Columns())
			os.Exit(1)
		}

		reg, err := rules.NewRegistry()
		if err != nil {
			fmt.Printf("Failed to initialize rules registry: %v\n", err)
			os.Exit(1)
		}

		base, err := reg.EvalScore(strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		tier := command.Tier(engine.Triple, col-1)
		if tier == 1 {
			fmt.Printf("%d\n", base)
			return
		}
		fmt.Printf("%d (×%d = %d)\n", base, tier, base*tier)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().IntP("col", "c", 1, "triple-mode column the points go to")
}
