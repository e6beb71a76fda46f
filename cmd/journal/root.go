package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/journal/internal/platform"
	"github.com/aretw0/journal/pkg/core"
	"github.com/aretw0/journal/pkg/settings"
)

// Environment variables read when the matching flag is not set.
const (
	envBase = "JOURNAL_BASE"
	envDir  = "JOURNAL_DIR"
)

var (
	verbose  bool
	baseFlag string
	dirFlag  string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "A plain-text journal kept as one file per entry",
	Long: `Journal stores each entry as <title>.txt in a notes directory and never
overwrites an existing entry: saving a title twice writes <title>_2.txt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&baseFlag, "base", "", "Base directory holding journal.yaml and the notes directory (env "+envBase+")")
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "Notes directory name under the base (env "+envDir+")")
}

// resolveBase picks the base directory: --base, then $JOURNAL_BASE, then the
// nearest parent holding journal.yaml, then the per-user default. Under
// go run/go test the result is re-rooted into the temp dir.
func resolveBase() (string, error) {
	base := baseFlag
	if base == "" {
		base = os.Getenv(envBase)
	}
	if base == "" {
		if cwd, err := os.Getwd(); err == nil {
			if found, err := platform.FindBase(cwd); err == nil {
				base = found
			}
		}
	}
	if base == "" {
		def, err := platform.DefaultBase()
		if err != nil {
			return "", fmt.Errorf("resolving base directory: %w", err)
		}
		base = def
	}
	return platform.ResolveBasePath(base, platform.IsDevRun()), nil
}

// loadSettings reads the settings of base. A broken file is reported and
// replaced by the defaults.
func loadSettings(base string) settings.Settings {
	s, err := settings.Load(base)
	if err != nil {
		slog.Warn("using default settings", "error", err)
	}
	if dir := dirFlag; dir != "" {
		s.DirName = dir
	} else if dir := os.Getenv(envDir); dir != "" {
		s.DirName = dir
	}
	return s
}

// session is what most commands need: the resolved base, its settings and a
// service over the notes directory.
type session struct {
	base     string
	settings settings.Settings
	service  *core.Service
}

func openSession(logger *slog.Logger, opts ...platform.Option) (*session, error) {
	base, err := resolveBase()
	if err != nil {
		return nil, err
	}
	s := loadSettings(base)

	opts = append([]platform.Option{
		platform.WithLogger(logger),
		platform.WithSettings(s),
		// the base is already re-rooted by resolveBase
		platform.WithDevSafety(false),
	}, opts...)

	svc, err := platform.New(base, opts...)
	if err != nil {
		return nil, fmt.Errorf("initializing journal: %w", err)
	}
	return &session{base: base, settings: s, service: svc}, nil
}

// noteName accepts either a filename or a bare title.
func noteName(arg string) string {
	if core.IsNoteFile(arg) {
		return arg
	}
	return arg + core.NoteExt
}
