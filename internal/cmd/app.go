package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/klauern/hookrun/internal/config"
	"github.com/klauern/hookrun/internal/constants"
	"github.com/klauern/hookrun/internal/core"
	"github.com/klauern/hookrun/internal/hooks"
	"github.com/klauern/hookrun/internal/logger"
	"github.com/klauern/hookrun/internal/symbols"
	"github.com/urfave/cli/v3"
)

// Runtime holds everything a subcommand needs to resolve and run hooks
type Runtime struct {
	Config   *config.Config
	Context  *core.HookContext
	Registry *core.Registry
	Engine   *core.Engine
	// Symbols is nil when the call family is disabled
	Symbols *symbols.Table

	log *logger.Logger
}

// Close releases the log file, if any.
func (rt *Runtime) Close() error {
	if rt.log != nil {
		return rt.log.Close()
	}
	return nil
}

// Setup builds the Runtime for an invocation of the root command.
type Setup func(cmd *cli.Command) (*Runtime, error)

// NewRuntime registers the built-in actions for cfg and wires an engine around ctx.
func NewRuntime(cfg *config.Config, ctx *core.HookContext, table *symbols.Table) *Runtime {
	rt := &Runtime{Config: cfg, Context: ctx, Registry: core.NewRegistry()}
	opts := hooks.Options{}
	if cfg.SymbolsEnabled() && table != nil {
		opts.Symbols = table
		rt.Symbols = table
	}
	hooks.RegisterBuiltins(rt.Registry, ctx, opts)
	rt.Engine = core.NewEngine(rt.Registry, ctx)
	return rt
}

// LoadConfig reads path, or discovers the config files when path is empty.
// Discovery finding nothing yields the default config.
func LoadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	cfg, err := config.Discover(config.NewXDGConfig(), cwd)
	if errors.Is(err, config.ErrNoConfig) {
		return config.Default(), nil
	}
	return cfg, err
}

// DefaultSetup loads configuration, applies the global flags and builds a Runtime
// backed by the real filesystem, the configured shell and the process-wide symbol table.
func DefaultSetup(cmd *cli.Command) (*Runtime, error) {
	cfg, err := LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	applyLogFlags(&cfg.Logging, cmd.String("log-level"), cmd.String("log-file"), cmd.Bool("log"), config.NewXDGConfig())

	root := cmd.Root()
	lg, err := logger.New(cfg.Logging, root.ErrWriter)
	if err != nil {
		return nil, err
	}

	ctx := core.DefaultHookContext(lg.Logger)
	ctx.CommandRunner = &core.ShellRunner{
		Shell:  cfg.ShellOrDefault(),
		Stdin:  os.Stdin,
		Stdout: root.Writer,
		Stderr: root.ErrWriter,
	}
	rt := NewRuntime(cfg, ctx, symbols.Default)
	rt.log = lg
	return rt, nil
}

// applyLogFlags overrides logging settings from the global flags. --log-file wins
// over --log, which selects the rotating file under the config directory.
func applyLogFlags(lc *config.LoggingConfig, level, file string, enable bool, x *config.XDGConfig) {
	if level != "" {
		lc.Level = level
	}
	switch {
	case file != "":
		lc.File = file
	case enable && lc.File == "":
		lc.File = x.GetLogPath()
	}
}

// NewApp creates the root command
func NewApp(setup Setup, versionInfo VersionInfo) *cli.Command {
	return &cli.Command{
		Name:  constants.BinaryName,
		Usage: "Run ordered lifecycle hook actions",
		Description: `Runs configured lists of hook specifications ("[!]<action>:<argument>") at named
lifecycle phases. Actions include filesystem changes, command execution and calls
into registered process-wide functions.`,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a hooks config file (.yml, .yaml, .toml or .json)",
				Sources: cli.EnvVars("HOOKRUN_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level: debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:    "log",
				Aliases: []string{"l"},
				Value:   false,
				Usage:   "Also write JSON logs to logs/hookrun.log under the config directory",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Also write JSON logs to this rotating file",
			},
		},
		Commands: []*cli.Command{
			NewRunCmd(setup),
			NewExecCmd(setup),
			NewListCmd(setup),
			NewValidateCmd(setup),
			NewSymbolsCmd(setup),
			NewVersionCmd(versionInfo),
		},
	}
}

// withRuntime runs fn with a freshly built Runtime and closes it afterwards
func withRuntime(setup Setup, fn func(ctx context.Context, cmd *cli.Command, rt *Runtime) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = rt.Close() }()
		return fn(ctx, cmd, rt)
	}
}
