package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/specialistvlad/gamebook/internal/app"
	"github.com/specialistvlad/gamebook/internal/editor"
	"github.com/specialistvlad/gamebook/internal/nodeid"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// flagValues holds the raw values bound to the command's flags.
type flagValues struct {
	adventure   string
	dir         string
	entry       string
	maxBranches int
	logLevel    string
	logFormat   string
	logFile     string
	configFile  string
}

func newRootCommand(v *flagValues, run func(args []string)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gamebook [ADVENTURE_FILE]",
		Short: "Play, edit, and check choose-your-own-adventure stories",
		Long: `Gamebook opens an interactive menu for choose-your-own-adventure stories.
An adventure is a graph of named nodes, each with a prompt and numbered
choices leading to other nodes. Adventures are stored as JSON, YAML (.yaml,
.yml) or HCL (.hcl) files.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(_ *cobra.Command, args []string) {
			run(args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&v.adventure, "adventure", "a", "", "Adventure file to open at startup.")
	flags.StringVar(&v.dir, "dir", ".", "Directory whose adventure files the open command lists.")
	flags.StringVar(&v.entry, "entry", nodeid.Entry.String(), "Identifier of the node every run starts at.")
	flags.IntVar(&v.maxBranches, "max-branches", editor.DefaultMaxBranches, "Largest number of choices the editor accepts per node (1-99).")
	flags.StringVar(&v.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&v.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&v.logFile, "log-file", "", "Write logs to this file instead of stderr.")
	flags.StringVar(&v.configFile, "config", "", "YAML settings file; flags given on the command line take precedence.")
	return cmd
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var v flagValues
	var positional []string
	ran := false
	cmd := newRootCommand(&v, func(args []string) {
		ran = true
		positional = args
	})
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if !ran {
		// Help or version output was printed instead of running.
		return nil, true, nil
	}
	slog.Debug("Arguments parsed successfully.")

	if v.configFile != "" {
		s, err := readSettings(v.configFile)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		applySettings(cmd.Flags(), &v, s)
		slog.Debug("Settings file applied.", "path", v.configFile)
	}

	path := v.adventure
	if !cmd.Flags().Changed("adventure") && len(positional) > 0 {
		path = positional[0]
	}
	slog.Debug("Adventure path determined.", "path", path)

	entry, err := nodeid.Parse(strings.TrimSpace(v.entry))
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid entry: " + err.Error()}
	}

	// NewConfig treats zero as unset; on the command line it is an error.
	if v.maxBranches == 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("max-branches must be between 1 and %d, got 0", app.MaxBranchesLimit)}
	}

	config, err := app.NewConfig(app.Config{
		AdventurePath: path,
		AdventureDir:  v.dir,
		EntryID:       entry,
		MaxBranches:   v.maxBranches,
		LogFormat:     v.logFormat,
		LogLevel:      v.logLevel,
		LogFile:       v.logFile,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// applySettings copies file values into v for every flag that was not set
// on the command line.
func applySettings(flags *pflag.FlagSet, v *flagValues, s *settings) {
	setString := func(name string, dst *string, src *string) {
		if src != nil && !flags.Changed(name) {
			*dst = *src
		}
	}
	setString("adventure", &v.adventure, s.Adventure)
	setString("dir", &v.dir, s.Dir)
	setString("entry", &v.entry, s.Entry)
	setString("log-level", &v.logLevel, s.LogLevel)
	setString("log-format", &v.logFormat, s.LogFormat)
	setString("log-file", &v.logFile, s.LogFile)
	if s.MaxBranches != nil && !flags.Changed("max-branches") {
		v.maxBranches = *s.MaxBranches
	}
}
