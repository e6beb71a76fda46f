package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/journal/pkg/settings"
)

var (
	setWidth        int
	setHeight       int
	setDirName      string
	setAtomicWrites bool
	setWatch        bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show the settings file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := resolveBase()
		if err != nil {
			return err
		}
		return printSettings(cmd, base, loadSettings(base))
	},
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default panel size",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := resolveBase()
		if err != nil {
			return err
		}

		s, _ := settings.Load(base)
		s.Reset()
		if err := settings.Save(base, s); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Settings reset to default values.")
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change settings",
	Long:  `Change the given settings and save them. Sizes are clamped to the panel slider bounds.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := resolveBase()
		if err != nil {
			return err
		}

		s, _ := settings.Load(base)
		flags := cmd.Flags()
		if flags.Changed("width") {
			s.Layout.Width = setWidth
		}
		if flags.Changed("height") {
			s.Layout.Height = setHeight
		}
		if flags.Changed("dir-name") {
			s.DirName = setDirName
		}
		if flags.Changed("atomic-writes") {
			s.AtomicWrites = setAtomicWrites
		}
		if flags.Changed("watch") {
			s.Watch = setWatch
		}
		s.Clamp()

		if err := settings.Save(base, s); err != nil {
			return err
		}
		return printSettings(cmd, base, s)
	},
}

func printSettings(cmd *cobra.Command, base string, s settings.Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", settings.Path(base))
	_, err = out.Write(data)
	return err
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsSetCmd)

	settingsSetCmd.Flags().IntVar(&setWidth, "width", settings.DefaultWidth, "Panel width")
	settingsSetCmd.Flags().IntVar(&setHeight, "height", settings.DefaultHeight, "Panel height")
	settingsSetCmd.Flags().StringVar(&setDirName, "dir-name", settings.DefaultDirName, "Notes directory name")
	settingsSetCmd.Flags().BoolVar(&setAtomicWrites, "atomic-writes", false, "Write entries through a temp file and rename")
	settingsSetCmd.Flags().BoolVar(&setWatch, "watch", true, "Watch the notes directory while the panel is open")
}
