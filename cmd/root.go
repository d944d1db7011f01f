// SPDX-License-Identifier: MIT

// Package cmd contains the commands of the untou3 binary.
package cmd

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/untou3/internal/logger"
)

const (
	logFormatFlag = "log-format"
	logLevelFlag  = "log-level"
	workersFlag   = "workers"
	outputFlag    = "output"

	defaultLogFormat = "text"
	defaultLogLevel  = "info"
	defaultWorkers   = 1
	defaultOutput    = outputText
)

// app carries the state shared by all subcommands of one root command.
type app struct {
	v   *viper.Viper
	log logger.Logger

	// newLogger builds the logger from the configured format and level.
	newLogger func(format, level string) (logger.Logger, error)
}

func newZapLogger(format, level string) (logger.Logger, error) {
	l, err := logger.NewLogger(format, level)
	if err != nil {
		return nil, err
	}

	return l, nil
}

// NewRootCommand returns the untou3 command tree. Settings are read from
// flags, environment variables prefixed with UNTOU3, or config.yaml (in that
// order).
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{v: newViper(), log: logger.NewNoopLogger(), newLogger: newZapLogger})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "untou3",
		Short: "Reduce U(N) irreps into U(3) irreps for harmonic-oscillator shells",
		Long: `Reduce U(N) irreps into U(3) irreps for harmonic-oscillator shells.

A U(N) irrep [f] with labels in [0,4] is given in multiplicity form
R = [r4 r3 r2 r1 r0], where rk counts the labels equal to k. For the
shell n the number of labels is N = (n+1)(n+2)/2.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String(logFormatFlag, defaultLogFormat, "log format: text or json")
	flags.String(logLevelFlag, defaultLogLevel, "log level: none, debug, info, warn or error")
	flags.Int(workersFlag, defaultWorkers, "goroutines used for the reduction; 1 keeps it serial")
	flags.StringP(outputFlag, "o", defaultOutput, "output format: text, json or yaml")
	mustBindPFlags(a.v, flags.Lookup(logFormatFlag), flags.Lookup(logLevelFlag), flags.Lookup(workersFlag), flags.Lookup(outputFlag))

	root.AddCommand(
		newReduceCommand(a),
		newPathsCommand(a),
		newLowerCommand(a),
		newDiffsCommand(a),
	)

	return root
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("UNTOU3")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, path := range []string{"/etc/untou3", "$HOME/.untou3", "."} {
		v.AddConfigPath(path)
	}

	return v
}

// setup loads the config file and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	log, err := a.newLogger(a.v.GetString(logFormatFlag), a.v.GetString(logLevelFlag))
	if err != nil {
		return err
	}
	a.log = log.With(zap.String("run_id", uuid.NewString()), zap.String("command", cmd.Name()))

	if a.v.GetInt(workersFlag) < 1 {
		return fmt.Errorf("--%s must be >= 1", workersFlag)
	}
	if procs := runtime.GOMAXPROCS(0); a.workers() > procs {
		a.log.Warn("workers exceed GOMAXPROCS", zap.Int("workers", a.workers()), zap.Int("gomaxprocs", procs))
	}
	switch a.output() {
	case outputText, outputJSON, outputYAML:
	default:
		return fmt.Errorf("unknown output format: %s", a.output())
	}

	return nil
}

func (a *app) workers() int {
	return a.v.GetInt(workersFlag)
}

func (a *app) output() string {
	return a.v.GetString(outputFlag)
}
