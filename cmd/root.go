/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suderio/eskalero/internal/config"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eskalero",
	Short: "Score sheet for Eskalero poker dice",
	Long: `eskalero keeps the score sheet of an Eskalero (Pokelinger Eskalari)
table: 2 to 5 players, one column in classic mode or three columns
(×1, ×2, ×3) in triple mode. Dice are rolled at the table; the sheet
checks turns, prices combinations and ranks the players.

Start a table with 'eskalero play Anna Bert'.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.eskalero.yaml)")
	rootCmd.PersistentFlags().String("data_dir", "", "directory holding lineups (default is $HOME/.eskalero)")
	rootCmd.PersistentFlags().String("journal_dir", "", "directory holding journals (default is <data_dir>/journals)")
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data_dir"))
	viper.BindPFlag("journal_dir", rootCmd.PersistentFlags().Lookup("journal_dir"))
}

// initConfig reads in config file if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".eskalero")
	}

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// settings resolves the table defaults: the config file first, then .env
// and the environment, then any flag given on the command line.
func settings() config.Settings {
	base := config.Settings{
		DataDir:    viper.GetString("data_dir"),
		JournalDir: viper.GetString("journal_dir"),
		Mode:       viper.GetString("mode"),
		Plain:      viper.GetBool("plain"),
		NoJournal:  viper.GetBool("no_journal"),
	}
	s, err := config.Load(base)
	if err != nil {
		fmt.Printf("Error reading configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags win over everything else.
	if rootCmd.PersistentFlags().Changed("data_dir") {
		if s.JournalDir == filepath.Join(s.DataDir, "journals") {
			s.JournalDir = filepath.Join(viper.GetString("data_dir"), "journals")
		}
		s.DataDir = viper.GetString("data_dir")
	}
	if rootCmd.PersistentFlags().Changed("journal_dir") {
		s.JournalDir = viper.GetString("journal_dir")
	}
	return s
}
