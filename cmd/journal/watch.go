package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	jlifecycle "github.com/aretw0/journal/pkg/adapters/lifecycle"
)

var watchCmd = &cobra.Command{
	Use:   "watch [pattern]",
	Short: "Print entry changes until interrupted",
	Long:  `Print CREATE, MODIFY and DELETE events for entries whose filename matches pattern (doublestar syntax, default "*.txt").`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := "*.txt"
		if len(args) == 1 {
			pattern = args[0]
		}

		sess, err := openSession(slog.Default())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		events, err := sess.service.Watch(ctx, pattern)
		if err != nil {
			return fmt.Errorf("watching %s: %w", sess.service.Location(), err)
		}

		source := jlifecycle.NewSource(events)
		if err := source.Start(ctx); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Watching %s\n", sess.service.Location())
		for e := range source.Events() {
			fmt.Fprintln(out, e.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
