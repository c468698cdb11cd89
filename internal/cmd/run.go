package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/klauern/hookrun/internal/config"
	"github.com/urfave/cli/v3"
)

// NewRunCmd creates the command that runs configured phases
func NewRunCmd(setup Setup) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run the hooks of one or more configured phases",
		ArgsUsage: "<phase> [phase...]",
		Description: `Run the hook lists of the named phases, in the order given. A phase marked
fatal in the config, or any phase when --fatal is set, aborts the process on the
first failing hook.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "fatal",
				Aliases: []string{"f"},
				Value:   false,
				Usage:   "Treat every hook failure as fatal",
			},
		},
		Action: withRuntime(setup, func(_ context.Context, cmd *cli.Command, rt *Runtime) error {
			names := cmd.Args().Slice()
			if len(names) == 0 {
				return fmt.Errorf("at least one argument required: <phase>")
			}

			// Resolve every phase before running any of them
			phases := make([]config.Phase, 0, len(names))
			for _, name := range names {
				p, ok := rt.Config.Phase(name)
				if !ok {
					return fmt.Errorf("phase '%s' not found.\nAvailable phases: %s",
						name, strings.Join(rt.Config.PhaseNames(), ", "))
				}
				phases = append(phases, p)
			}

			forceFatal := cmd.Bool("fatal")
			for _, p := range phases {
				rt.Engine.Run(p.Hooks, p.Name, p.Fatal || forceFatal)
			}
			return nil
		}),
	}
}
