package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect dayledger configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration and stored state keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(func(e *env) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "KEY\tVALUE")
			fmt.Fprintf(out, "db_path\t%s\n", e.cfg.DBPath)
			fmt.Fprintf(out, "log_level\t%s\n", e.cfg.LogLevel)
			fmt.Fprintf(out, "timezone\t%s\n", e.clock.Location())
			fmt.Fprintf(out, "locale\t%s\n", e.clock.Locale())
			fmt.Fprintf(out, "rollover_interval\t%s\n", e.cfg.RolloverInterval)
			fmt.Fprintf(out, "history_limit\t%d\n", e.cfg.HistoryLimit)

			keys, err := e.store.Keys()
			if err != nil {
				return err
			}
			for _, k := range keys {
				fmt.Fprintf(out, "stored\t%s\n", k)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
}
