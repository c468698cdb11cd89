package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/klauern/hookrun/internal/config"
	"github.com/klauern/hookrun/internal/core"
	"github.com/urfave/cli/v3"
)

// NewValidateCmd creates the command that checks a config without running anything
func NewValidateCmd(setup Setup) *cli.Command {
	return &cli.Command{
		Name:        "validate",
		Usage:       "Check the hooks configuration without running it",
		Description: `Report malformed hook specifications and unknown actions in every configured phase.`,
		Action: withRuntime(setup, func(_ context.Context, cmd *cli.Command, rt *Runtime) error {
			out := cmd.Root().Writer
			cfg := rt.Config

			if len(cfg.Sources) == 0 {
				fmt.Fprintln(out, "No hooks config file found; nothing to validate.")
				return nil
			}
			fmt.Fprintf(out, "Config: %s\n", strings.Join(cfg.Sources, ", "))
			fmt.Fprintln(out, strings.Repeat("-", 52))

			problems := 0
			if err := config.Validate(cfg); err != nil {
				fmt.Fprintf(out, "✗ %v\n", err)
				problems++
			}
			for _, p := range cfg.Phases {
				errs := core.ValidateSpecs(rt.Registry, p.Hooks)
				if len(errs) == 0 {
					mode := "non-fatal"
					if p.Fatal {
						mode = "fatal"
					}
					fmt.Fprintf(out, "✓ %s: %d hook(s), %s\n", p.Name, len(p.Hooks), mode)
					continue
				}
				for _, err := range errs {
					fmt.Fprintf(out, "✗ %s: %v\n", p.Name, err)
				}
				problems += len(errs)
			}

			if problems > 0 {
				return fmt.Errorf("validation failed: %d problem(s)", problems)
			}
			fmt.Fprintln(out, "Configuration OK")
			return nil
		}),
	}
}
