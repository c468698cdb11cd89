package cmd

import (
	"context"
	"fmt"

	"github.com/klauern/hookrun/internal/constants"
	"github.com/urfave/cli/v3"
)

// NewExecCmd creates the command that runs hook specifications given on the command line
func NewExecCmd(setup Setup) *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Run hook specifications given as arguments",
		ArgsUsage: "<[!]action:argument> [...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "phase",
				Aliases: []string{"p"},
				Value:   constants.DefaultPhase,
				Usage:   "Phase label used in log output",
			},
			&cli.BoolFlag{
				Name:    "fatal",
				Aliases: []string{"f"},
				Value:   false,
				Usage:   "Abort on the first failing hook",
			},
		},
		Action: withRuntime(setup, func(_ context.Context, cmd *cli.Command, rt *Runtime) error {
			specs := cmd.Args().Slice()
			if len(specs) == 0 {
				return fmt.Errorf("at least one hook specification required")
			}
			rt.Engine.Run(specs, cmd.String("phase"), cmd.Bool("fatal"))
			return nil
		}),
	}
}
