package main

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/aretw0/journal/pkg/settings"
)

type statusReport struct {
	Base         string            `json:"base"`
	SettingsFile string            `json:"settings_file"`
	Settings     settings.Settings `json:"settings"`
	Service      map[string]any    `json:"service"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the resolved configuration and index as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(slog.Default())
		if err != nil {
			return err
		}
		sess.service.Refresh(cmd.Context())

		report := statusReport{
			Base:         sess.base,
			SettingsFile: settings.Path(sess.base),
			Settings:     sess.settings,
			Service:      describe(sess.service),
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	},
}

// describe labels a component's state with its type.
func describe(c interface {
	introspection.Introspectable
	introspection.Component
}) map[string]any {
	return map[string]any{
		"type":  c.ComponentType(),
		"state": c.State(),
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
