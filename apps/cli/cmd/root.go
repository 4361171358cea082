package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/abdul-hamid-achik/quest/packages/core/config"
	"github.com/abdul-hamid-achik/quest/packages/core/env"
	"github.com/abdul-hamid-achik/quest/packages/core/parser"
	"github.com/abdul-hamid-achik/quest/packages/core/quest"
	"github.com/abdul-hamid-achik/quest/packages/logging"
	"github.com/abdul-hamid-achik/quest/packages/output"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	questFile  string
	envFile    string
	configFile string
	verbose    int
	noColor    bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "quest",
		Short: "Named HTTP requests, resolved from layered config and secrets.",
		Long: `quest sends the HTTP "quests" declared in a YAML file.

Headers, query params and URL vars are declared globally or per quest,
can pull secrets from the environment or a .env file, and can be
overridden on the command line.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.questFile, "file", "f", config.DefaultQuestFile, "Quest file to read (env: QUEST_FILE)")
	pf.StringVarP(&opts.envFile, "env", "e", config.DefaultEnvFile, "Env file merged under the process environment (env: QUEST_ENV_FILE)")
	pf.StringVar(&opts.configFile, "config", "", "Path to settings file (default: quest.config.{json,yaml} or .questrc)")
	pf.CountVar(&opts.verbose, "verbose", "Log to stderr (--verbose for info, repeat for debug)")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable colored output (env: QUEST_NO_COLOR)")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	rootCmd.AddCommand(
		newGoCmd(opts),
		newListCmd(opts),
		newValidateCmd(opts),
		newInitCmd(opts),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return rootCmd
}

// Execute runs the CLI and exits with the code matching the returned error.
func Execute(v, bt string) {
	version = v
	buildTime = bt

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		output.NewConsoleFormatter(output.WithWriter(os.Stderr), output.WithNoColor(noColor(rootCmd))).FormatError(err)
		os.Exit(ExitCode(err))
	}
}

// noColor resolves the color setting for error output the same way commands
// do: settings file and QUEST_NO_COLOR, with an explicit --no-color winning.
func noColor(rootCmd *cobra.Command) bool {
	pf := rootCmd.PersistentFlags()
	if f := pf.Lookup("no-color"); f != nil && f.Changed {
		v, _ := pf.GetBool("no-color")
		return v
	}
	configFile, _ := pf.GetString("config")
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return false
	}
	return cfg.GetNoColor()
}

// session is the per-invocation state built from settings and flags.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (o *globalOptions) load(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadConfig(o.configFile)
	if err != nil {
		return nil, configError(err)
	}

	flags := cmd.Flags()
	override := &config.Config{}
	if flags.Changed("file") {
		override.QuestFile = o.questFile
	}
	if flags.Changed("env") {
		override.EnvFile = o.envFile
	}
	if flags.Changed("no-color") {
		override.NoColor = config.BoolPtr(o.noColor)
	}
	cfg = cfg.Merge(override)

	level := logging.LevelFromVerbosity(o.verbose)
	if o.verbose == 0 && cfg.LogLevel != "" {
		l, ok := logging.ParseLevel(cfg.LogLevel)
		if !ok {
			return nil, configError(fmt.Errorf("invalid log_level %q (expected debug, info, warn or error)", cfg.LogLevel))
		}
		level = l
	}

	logger := logging.WithRunID(logging.New(cmd.ErrOrStderr(), level)).With("cmd", cmd.Name())
	logger.Debug("settings loaded",
		"file", cfg.QuestFile,
		"env_file", cfg.EnvFile,
		"timeout", cfg.Timeout,
	)

	return &session{cfg: cfg, logger: logger}, nil
}

func (s *session) document() (*quest.Document, error) {
	doc, err := parser.ParseFile(s.cfg.QuestFile)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("quest file loaded", "path", s.cfg.QuestFile, "quests", len(doc.Quests))
	return doc, nil
}

// environment returns the lookup used for valueFrom entries. A missing env
// file is not an error.
func (s *session) environment() (quest.Lookup, error) {
	vars, err := env.LoadDotEnv(s.cfg.EnvFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.logger.Debug("no env file", "path", s.cfg.EnvFile)
		return env.OS(), nil
	case err != nil:
		return nil, configError(err)
	}

	s.logger.Debug("env file loaded", "path", s.cfg.EnvFile, "vars", len(vars))
	return env.Chain(env.OS(), env.FromMap(vars)), nil
}

func (s *session) formatter(cmd *cobra.Command, format string) (output.Formatter, error) {
	f, err := output.NewFormatter(format, cmd.OutOrStdout(), s.cfg.GetNoColor())
	if err != nil {
		return nil, usageError(err)
	}
	return f, nil
}

func (s *session) console(cmd *cobra.Command) *output.ConsoleFormatter {
	return output.NewConsoleFormatter(output.WithWriter(cmd.OutOrStdout()), output.WithNoColor(s.cfg.GetNoColor()))
}
