// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	flagConfig    = "config"
	flagEps       = "eps"
	flagMaxPasses = "max-passes"
	flagLogLevel  = "log-level"
	flagFormat    = "format"
)

// app carries what every subcommand needs: writers, resolved config and logger.
type app struct {
	stdout io.Writer
	stderr io.Writer
	cfg    Config
	format string
	log    zerolog.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	a := &app{stdout: stdout, stderr: stderr, cfg: defaultConfig(), format: formatText}
	a.log = newLogger(stderr, zerolog.InfoLevel)

	return a
}

// newLogger returns a human-readable console logger on w, colored only when
// w is a terminal.
func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func newRootCmd(a *app) *cobra.Command {
	var (
		configPath string
		eps        = epsilonValue(a.cfg.Epsilon)
		maxPasses  int
		logLevel   string
	)

	root := &cobra.Command{
		Use:   "gsokit",
		Short: "Gram–Schmidt, QR, Gram and exact elimination on YAML matrices",
		Long: `gsokit orthonormalizes bases with adaptive re-orthogonalization,
factors them as Q·R, and computes Gram matrices, lattice covolumes,
reduced row echelon forms and inverses exactly over the rationals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if configPath != "" {
				var err error
				if cfg, err = loadConfig(configPath, cfg); err != nil {
					return err
				}
			}
			flags := cmd.Flags()
			if flags.Changed(flagEps) {
				cfg.Epsilon = float64(eps)
			}
			if flags.Changed(flagMaxPasses) {
				cfg.MaxPasses = maxPasses
			}
			if flags.Changed(flagLogLevel) {
				cfg.LogLevel = logLevel
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			level, _ := zerolog.ParseLevel(cfg.LogLevel)
			a.cfg = cfg
			a.log = newLogger(a.stderr, level)
			a.log.Debug().Float64("epsilon", cfg.Epsilon).Int("max_passes", cfg.MaxPasses).
				Str("format", a.format).Msg("configuration resolved")
			if a.format != formatText && a.format != formatYAML {
				return fmt.Errorf("unknown format %q (want %s or %s)", a.format, formatText, formatYAML)
			}

			return nil
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, flagConfig, "", "YAML config file (epsilon, max_passes, log_level)")
	pf.Var(&eps, flagEps, "stability threshold of the flush-to-zero test")
	pf.IntVar(&maxPasses, flagMaxPasses, a.cfg.MaxPasses, "refinement pass cap per column")
	pf.StringVar(&logLevel, flagLogLevel, a.cfg.LogLevel, "log level (debug, info, warn, error)")
	pf.StringVar(&a.format, flagFormat, formatText, "output format (text, yaml)")

	root.AddCommand(
		newGSOCmd(a),
		newQRCmd(a),
		newGramCmd(a),
		newCovolumeCmd(a),
		newRREFCmd(a),
		newInverseCmd(a),
	)

	return root
}
