package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aretw0/journal/internal/tui"
	"github.com/aretw0/journal/pkg/core"
	"github.com/aretw0/journal/pkg/settings"
)

// logFileName receives the panel's logs so they do not draw over the UI.
const logFileName = "journal.log"

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Open the journal editor",
	Long: `Open the terminal editor with a Journal tab (title, body, Save/New/Load/Delete)
and a Settings tab (panel size, open export directory, reset).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := resolveBase()
		if err != nil {
			return err
		}
		logger, closeLog, err := fileLogger(base)
		if err != nil {
			return err
		}
		defer closeLog()

		sess, err := openSession(logger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		var events <-chan core.Event
		if sess.settings.Watch {
			events, err = sess.service.Watch(ctx, "*"+core.NoteExt)
			if err != nil {
				logger.Warn("watching disabled", "error", err)
				events = nil
			}
		}

		return tui.Run(tui.Config{
			Service:  sess.service,
			Context:  ctx,
			Settings: sess.settings,
			Events:   events,
			SaveSettings: func(s settings.Settings) error {
				return saveLayout(sess.base, s.Layout)
			},
		})
	},
}

// fileLogger opens the panel log under base.
func fileLogger(base string) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(base, 0755); err != nil {
		return nil, nil, fmt.Errorf("creating base directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(base, logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

// saveLayout persists only the panel size, so flag and environment overrides
// of the other settings never leak into the file.
func saveLayout(base string, layout settings.Layout) error {
	s, _ := settings.Load(base)
	s.Layout = layout
	return settings.Save(base, s)
}

func init() {
	rootCmd.AddCommand(panelCmd)
}
