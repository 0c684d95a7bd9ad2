// Package command builds the cobra front ends of the textstats tools.
//
// Every tool accepts a single input file argument. Flags are bound into a viper
// instance so each of them can also come from a TEXTSTATS_* environment variable
// or from the file named by --config.
package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/hyp3rd/ewrap"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hyp3rd/textstats"
	"github.com/hyp3rd/textstats/internal/constants"
	"github.com/hyp3rd/textstats/internal/sentinel"
)

const (
	flagOutput       = "output"
	flagRecord       = "record"
	flagRecordFormat = "record-format"
	flagLogLevel     = "log-level"
	flagConfig       = "config"
)

var shortDescriptions = map[textstats.Tool]string{
	textstats.ToolStatistics: "Compute mean, median, mode, variance and standard deviation of a list of numbers",
	textstats.ToolConversion: "Convert a list of numbers to binary and hexadecimal",
	textstats.ToolWordCount:  "Count the frequency of every word of a text file",
}

// New returns the command of tool.
func New(tool textstats.Tool) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:           string(tool) + " input_file",
		Short:         shortDescriptions[tool],
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return usage(cmd, tool, ewrap.Newf("expected 1 argument, got %d", len(args)))
			}

			return run(cmd, v, tool, args[0])
		},
	}

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usage(cmd, tool, err)
	})

	flags := cmd.Flags()
	flags.StringP(flagOutput, "o", tool.DefaultOutputFile(), "report file the results are appended to")
	flags.String(flagRecord, "", "file receiving a structured record of every run (disabled when empty)")
	flags.String(flagRecordFormat, constants.DefaultRecordFormat, "record encoding: json, msgpack or cbor")
	flags.String(flagLogLevel, constants.DefaultLogLevel, "log level: debug, info, warn or error")
	flags.String(flagConfig, "", "optional configuration file")

	return cmd
}

// Execute runs cmd and returns the process exit code.
func Execute(cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}

	return 0
}

func usage(cmd *cobra.Command, tool textstats.Tool, err error) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s input_file\n", tool)

	return ewrap.Wrap(sentinel.ErrUsage, err.Error())
}

func run(cmd *cobra.Command, v *viper.Viper, tool textstats.Tool, path string) error {
	cfg, err := loadConfig(cmd, v, tool)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)

		return err
	}

	logger, err := NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)

		return err
	}

	defer func() { _ = logger.Sync() }()

	sugar := logger.Sugar().With("tool", string(tool))

	svc, err := NewService(tool, sugar)
	if err != nil {
		return err
	}

	sugar.Debugw("configuration resolved",
		"output", cfg.OutputFile, "record", cfg.RecordFile, "record_format", cfg.RecordFormat)

	runner := textstats.NewRunner(cfg,
		textstats.WithService(svc),
		textstats.WithConsole(cmd.OutOrStdout()),
		textstats.WithLogger(sugar),
	)

	return runner.Run(cmd.Context(), path)
}

// loadConfig resolves the flags in viper order: explicit flag, environment,
// config file, flag default.
func loadConfig(cmd *cobra.Command, v *viper.Viper, tool textstats.Tool) (*textstats.Config, error) {
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return nil, ewrap.Wrap(err, "bind flags")
	}

	if file := v.GetString(flagConfig); file != "" {
		v.SetConfigFile(file)

		err = v.ReadInConfig()
		if err != nil {
			return nil, ewrap.Wrapf(err, "read config %s", file)
		}
	}

	return textstats.NewConfig(tool,
		textstats.WithOutputFile(v.GetString(flagOutput)),
		textstats.WithRecordFile(v.GetString(flagRecord)),
		textstats.WithRecordFormat(v.GetString(flagRecordFormat)),
		textstats.WithLogLevel(v.GetString(flagLogLevel)),
	), nil
}
