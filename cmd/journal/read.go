package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	readJSON bool
)

var readCmd = &cobra.Command{
	Use:   "read [name]",
	Short: "Print an entry",
	Long:  `Print the body of an entry. The name may be a filename ("Day 1_2.txt") or a title ("Day 1").`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(slog.Default())
		if err != nil {
			return err
		}

		note, err := sess.service.LoadNote(cmd.Context(), noteName(args[0]))
		if err != nil {
			return fmt.Errorf("reading journal entry: %w", err)
		}

		if readJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(note); err != nil {
				return fmt.Errorf("encoding JSON: %w", err)
			}
			return nil
		}

		fmt.Fprint(cmd.OutOrStdout(), note.Body)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().BoolVar(&readJSON, "json", false, "Output in JSON format")
}
