package main

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/polar3/config"
)

// app is the state shared by all subcommands, filled in by the root
// command's PersistentPreRunE.
type app struct {
	cfg   config.Config
	log   zerolog.Logger
	runID string
}

func newRootCmd() *cobra.Command {
	var (
		a         = &app{}
		cfgPath   string
		logLevel  string
		logFormat string
	)
	root := &cobra.Command{
		Use:           "polar3",
		Short:         "Batched 3x3 closest-rotation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if cfgPath != "" {
				var err error
				if cfg, err = config.Load(cfgPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.runID = uuid.NewString()
			a.log = newLogger(cmd.ErrOrStderr(), cfg.Log, a.runID)
			a.log.Debug().Str("command", cmd.Name()).Str("config", cfgPath).Msg("starting")
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&logLevel, "log-level", "", "log level (overrides config)")
	pf.StringVar(&logFormat, "log-format", "", "log format: auto, console or json (overrides config)")

	root.AddCommand(
		newGenCmd(a),
		newSolveCmd(a),
		newCheckCmd(a),
		newSVDCmd(a),
	)
	return root
}

// newLogger builds the command logger. "auto" selects the console writer when
// w is a terminal and JSON otherwise.
func newLogger(w io.Writer, lc config.LogConfig, runID string) zerolog.Logger {
	level, err := zerolog.ParseLevel(lc.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	console := lc.Format == config.FormatConsole
	if lc.Format == config.FormatAuto {
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			console = true
		}
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	return zerolog.New(w).Level(level).With().Timestamp().Str("run_id", runID).Logger()
}
