package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/journal/internal/platform"
)

// reveal is replaced in tests.
var reveal = platform.Reveal

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Open the notes directory in the file browser",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(slog.Default())
		if err != nil {
			return err
		}

		dir := sess.service.Location()
		if err := reveal(dir); err != nil {
			if errors.Is(err, platform.ErrDirectoryNotFound) {
				return errors.New("export directory not found")
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
