package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	writeTitle     string
	writeBody      string
	writeOverwrite string
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Save an entry",
	Long: `Save a new entry under a name derived from its title. An existing entry is
never replaced unless --overwrite names it. Use --body - to read the body from stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if writeTitle == "" && writeOverwrite == "" {
			return fmt.Errorf("cannot save without a title")
		}

		body := writeBody
		if body == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading body from stdin: %w", err)
			}
			body = string(data)
		}

		sess, err := openSession(slog.Default())
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		name := noteName(writeOverwrite)
		if writeOverwrite != "" {
			err = sess.service.WriteNote(ctx, name, body)
		} else {
			// resolve against the current listing, not an empty index
			sess.service.Refresh(ctx)
			name, err = sess.service.SaveNote(ctx, writeTitle, body)
		}
		if err != nil {
			return fmt.Errorf("saving journal entry: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Journal entry saved to: %s\n", filepath.Join(sess.service.Location(), name))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVarP(&writeTitle, "title", "t", "", "Entry title")
	writeCmd.Flags().StringVarP(&writeBody, "body", "b", "", "Entry body, or - for stdin")
	writeCmd.Flags().StringVar(&writeOverwrite, "overwrite", "", "Replace this exact entry instead of resolving a new name")
}
