package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	dbPath     string
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "dayledger",
	Short: "dayledger keeps today's food log and rolls it over at midnight",
	Long:  "dayledger is a local-first daily nutrition ledger: log food by meal, track calories and macros against goals, and keep a rolling history of past days.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}
