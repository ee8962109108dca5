package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/saadjs/dayledger/internal/rollover"
)

var rolloverCmd = &cobra.Command{
	Use:   "rollover",
	Short: "Check for a day change and archive the finished day",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(func(e *env) error {
			rolled := e.rolledOver
			if e.ledger.CheckAndRollover() {
				rolled = true
			}
			if err := e.pinDate(""); err != nil {
				return err
			}
			day := e.ledger.Current()
			if rolled {
				fmt.Fprintf(cmd.OutOrStdout(), "Rolled over to %s\n", day.Date)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Already on %s (%d entries)\n", day.Date, len(day.Foods))
			return nil
		})
	},
}

var dateCmd = &cobra.Command{
	Use:   "date <YYYY-MM-DD>",
	Short: "Switch the active day to another date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(func(e *env) error {
			if err := e.ledger.ChangeDate(args[0]); err != nil {
				return err
			}
			day := e.ledger.Current()
			if err := e.pinDate(day.Date); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active date: %s (%d entries, %s kcal)\n", day.Date, len(day.Foods), formatNumber(day.TotalCalories))
			return nil
		})
	},
}

var watchFor time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the ledger open and roll it over at midnight",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(func(e *env) error {
			interval, err := e.cfg.Interval()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if watchFor > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, watchFor)
				defer cancel()
			}

			out := cmd.OutOrStdout()
			w := rollover.New(e.ledger, e.logger,
				rollover.WithInterval(interval),
				rollover.OnRollover(func(today string) {
					if err := e.pinDate(""); err != nil {
						e.logger.Warn("clear pinned date failed", zap.Error(err))
					}
					fmt.Fprintf(out, "Rolled over to %s\n", today)
				}),
			)
			// Start hands out to the scheduler goroutine for the immediate check,
			// so this goroutine must not write to it afterwards.
			fmt.Fprintf(out, "Watching %s (checking every %s)\n", e.ledger.Current().Date, interval)
			if err := w.Start(); err != nil {
				return err
			}
			<-ctx.Done()
			return w.Stop()
		})
	},
}

func init() {
	rootCmd.AddCommand(rolloverCmd, dateCmd, watchCmd)
	watchCmd.Flags().DurationVar(&watchFor, "for", 0, "Stop after this long (0 runs until interrupted)")
}
