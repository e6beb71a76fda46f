package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [title]",
	Short: "Show the filename a save of title would use",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(slog.Default())
		if err != nil {
			return err
		}

		sess.service.Refresh(cmd.Context())
		name, err := sess.service.Resolve(args[0])
		if err != nil {
			return fmt.Errorf("resolving name: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
