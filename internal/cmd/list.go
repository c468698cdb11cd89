package cmd

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/klauern/hookrun/internal/core"
	"github.com/urfave/cli/v3"
)

// NewListCmd creates the command listing registered actions
func NewListCmd(setup Setup) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Usage:       "List available hook actions",
		Description: `List all registered hook actions, in registration order, with their argument format.`,
		Action: withRuntime(setup, func(_ context.Context, cmd *cli.Command, rt *Runtime) error {
			out := cmd.Root().Writer
			fmt.Fprintln(out, "Available hook actions:")
			fmt.Fprintln(out)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range rt.Registry.Entries() {
				fmt.Fprintf(tw, "  %s\t%s\n", e.Name, core.UsageOf(e.Handler))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Prefix an action with '!' to keep its name and argument out of the logs.")
			return nil
		}),
	}
}
