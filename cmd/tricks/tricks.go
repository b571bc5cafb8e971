// SPDX-License-Identifier: MIT
// Package: tricks/cmd/tricks
//
// tricks.go — cobra commands and viper configuration.

package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tricks/demo"
	"github.com/katalvlaran/tricks/internal/log"
)

const (
	configF    = "config"
	logLevelF  = "log-level"
	noPauseF   = "no-pause"
	sectionF   = "section"
	fibCountF  = "fib-count"
	thresholdF = "threshold"
	pairsF     = "pairs"
	scaleF     = "scale"

	envPrefix = "TRICKS"

	configFlagUsage = "The YAML configuration file."
	logLevelUsage   = "Options: debug, info, warn, error."
	noPauseUsage    = "Do not wait for Enter between sections."
	sectionUsage    = "Run only the named section (repeatable). Options: class, generators, pointers."
	fibCountUsage   = "How many Fibonacci values the generators section pulls (1-93)."
	thresholdUsage  = "Print the first Fibonacci value above this threshold."
	pairsUsage      = "Number of (i, i*scale) pairs fed to the dispatch table."
	scaleUsage      = "Multiplier for the second member of each pair."
)

// Version is overridden at build time with -ldflags.
var Version = "0.1.0"

// Config is the effective command line configuration.
type Config struct {
	LogLevel log.Level   `mapstructure:"log-level" yaml:"log-level"`
	NoPause  bool        `mapstructure:"no-pause" yaml:"no-pause"`
	Sections []string    `mapstructure:"section" yaml:"section,omitempty"`
	Demo     demo.Config `mapstructure:",squash" yaml:",inline"`
}

// NewCmd builds the tricks root command with its list and config subcommands.
// All flags are persistent so subcommands resolve the same configuration.
func NewCmd() *cobra.Command {
	defaults := demo.DefaultConfig()
	defaultLevel := log.INFO

	tricksCmd := &cobra.Command{
		Use:           "tricks [flags]",
		Short:         "A console walkthrough of records, lazy sequences and dispatch tables.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := tricksCmd.PersistentFlags()
	pf.String(configF, "", configFlagUsage)
	pf.Var(&defaultLevel, logLevelF, logLevelUsage)
	pf.Bool(noPauseF, false, noPauseUsage)
	pf.StringSlice(sectionF, nil, sectionUsage)
	pf.Int(fibCountF, defaults.FibCount, fibCountUsage)
	pf.Uint64(thresholdF, defaults.Threshold, thresholdUsage)
	pf.Int(pairsF, defaults.PairCount, pairsUsage)
	pf.Float64(scaleF, defaults.Scale, scaleUsage)

	tricksCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, err := log.New(cfg.LogLevel)
		if err != nil {
			return errors.Wrap(err, "build logger")
		}
		defer logger.Sync() //nolint:errcheck

		sections, err := demo.Sections(cfg.Demo)
		if err != nil {
			return err
		}
		runner := demo.NewRunner(sections,
			demo.WithOutput(cmd.OutOrStdout()),
			demo.WithInput(cmd.InOrStdin()),
			demo.WithPause(!cfg.NoPause),
			demo.WithLogger(logger),
		)
		logger.Debugw("Resolved configuration", "sections", cfg.Sections, "fib-count", cfg.Demo.FibCount)
		return runner.Run(cmd.Context(), cfg.Sections...)
	}

	tricksCmd.AddCommand(listCmd(), configCmd())

	return tricksCmd
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the demo sections.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sections, err := demo.Sections(demo.DefaultConfig())
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Section", "Description"})
			for _, s := range sections {
				table.Append([]string{s.Name, s.Title})
			}
			table.Render()

			return nil
		},
	}
}

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err = enc.Encode(cfg); err != nil {
				return errors.Wrap(err, "encode config")
			}

			return enc.Close()
		},
	}
}

// loadConfig resolves flags, TRICKS_* environment variables and the optional
// config file, in that order of precedence, and validates the result.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()
	cfgFile, err := cmd.Flags().GetString(configF)
	if err != nil {
		return nil, err
	}
	if cfgFile != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(cfgFile)
		if err = v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", cfgFile)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err = v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	cfg := new(Config)
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err = v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	// Sections validates cfg.Demo.
	sections, err := demo.Sections(cfg.Demo)
	if err != nil {
		return nil, err
	}
	known := demo.Names(sections)
	for _, name := range cfg.Sections {
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("--%s %q: %w", sectionF, name, demo.ErrUnknownSection)
		}
	}

	return cfg, nil
}
