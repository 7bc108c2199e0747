package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/eskalero/internal/engine"
)

// defaultsCmd stores table defaults in the config file
var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Save the default sheet mode and directories",
	Long: `Writes the given settings to the config file ($HOME/.eskalero.yaml
unless --config says otherwise). Without flags, asks for the default mode.`,
	Run: func(cmd *cobra.Command, args []string) {
		mode, _ := cmd.Flags().GetString("mode")
		plain, _ := cmd.Flags().GetBool("plain")

		if mode == "" && !cmd.Flags().Changed("plain") && !rootCmd.PersistentFlags().Changed("data_dir") && !rootCmd.PersistentFlags().Changed("journal_dir") {
			fmt.Print("default mode (classic/triple): ")
			scanner := bufio.NewScanner(os.Stdin)
			if scanner.Scan() {
				mode = strings.TrimSpace(scanner.Text())
			}
		}

		if mode != "" {
			m, err := engine.ParseMode(mode)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			viper.Set("mode", string(m))
		}
		if cmd.Flags().Changed("plain") {
			viper.Set("plain", plain)
		}
		// data_dir and journal_dir are bound to their flags already.

		err := viper.WriteConfig()
		if err != nil {
			err = viper.SafeWriteConfig()
			if err != nil {
				home, _ := os.UserHomeDir()
				err = viper.WriteConfigAs(filepath.Join(home, ".eskalero.yaml"))
			}
		}
		if err != nil {
			fmt.Printf("Error saving configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Defaults saved successfully.")
	},
}

func init() {
	rootCmd.AddCommand(defaultsCmd)
	defaultsCmd.Flags().StringP("mode", "m", "", "default sheet mode: classic or triple")
	defaultsCmd.Flags().Bool("plain", false, "use line mode by default")
}
