package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/finger-cli/internal/application"
	"github.com/bnema/finger-cli/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func Execute() error {
	return newRootCmd().Execute()
}

type rootOptions struct {
	layout     layoutState
	noMatch    bool
	output     string
	noColor    bool
	debug      bool
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{layout: defaultLayout(), output: string(outputText)}

	rootCmd := &cobra.Command{
		Use:   "finger [flags] [user ...]",
		Short: "Display information about local users",
		Long: "finger reports account details, login session, idle time, mail status and personal " +
			"files (.plan, .project, .pgpkey) for local users. Each user argument is matched against " +
			"login names and, unless -m is given, against words of the users' real names. With no " +
			"arguments the first logged-in user is reported.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFinger(cmd, opts, args)
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	applyVersion(rootCmd)

	flags := rootCmd.Flags()
	flags.SortFlags = false
	addLayoutFlag(flags, &opts.layout, "long", "l", "multi-line output (default)", useLong)
	addLayoutFlag(flags, &opts.layout, "no-plan", "p", "long output without .plan, .project and .pgpkey", useLongWithoutPlan)
	addLayoutFlag(flags, &opts.layout, "short", "s", "one line per user", useShort)
	flags.BoolVarP(&opts.noMatch, "no-match", "m", false, "match login names only, not real names")
	flags.StringVarP(&opts.output, "output", "o", string(outputText), "output format: text, json or toml")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable styled text output")
	flags.BoolVar(&opts.debug, "debug", false, "log debug details to stderr")
	flags.StringVar(&opts.configPath, "config", "", "config file (default $HOME/.finger/config.toml, then /etc/finger/config.toml)")

	return rootCmd
}

func runFinger(cmd *cobra.Command, opts *rootOptions, args []string) error {
	output, err := parseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	cfg, err := config.Load(viper.New(), opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, opts.debug)
	if cfg.File != "" {
		logger.WithField("path", cfg.File).Debug("config file loaded")
	}

	app, err := wireApp(cfg, logger)
	if err != nil {
		return err
	}

	serviceOpts := application.Options{
		Format:         opts.layout.format,
		PersonalFiles:  opts.layout.personalFiles,
		MatchNames:     !opts.noMatch,
		MaxUsers:       cfg.Limits.MaxUsers,
		MaxQueryLength: cfg.Limits.MaxQueryLength,
	}

	var results fingerResults
	lookup := func(ctx context.Context, emit application.EmitFunc) error {
		return app.service.Finger(ctx, args, serviceOpts, emit)
	}

	var runErr error
	if output == outputText && !opts.debug && app.isTerminal(cmd.ErrOrStderr()) {
		runErr = runLookupSpinner(cmd.Context(), cmd.ErrOrStderr(), logger, lookup, results.add)
	} else {
		runErr = lookup(cmd.Context(), results.add)
	}

	if err := writeFingerOutput(cmd, app, results, output, serviceOpts, !opts.noColor); err != nil {
		return err
	}

	return runErr
}
