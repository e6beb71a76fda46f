package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete an entry",
	Long:  `Delete permanently removes an entry. The name may be a filename or a title.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(slog.Default())
		if err != nil {
			return err
		}

		name := noteName(args[0])
		if err := sess.service.DeleteNote(cmd.Context(), name); err != nil {
			return fmt.Errorf("deleting journal entry: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Journal entry deleted: %s\n", name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
