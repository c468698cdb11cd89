package cmd

import (
	"context"
	"fmt"

	"github.com/klauern/hookrun/internal/symbols"
	"github.com/urfave/cli/v3"
)

// NewSymbolsCmd creates the command listing process-wide symbols callable from hooks
func NewSymbolsCmd(setup Setup) *cli.Command {
	return &cli.Command{
		Name:  "symbols",
		Usage: "List functions available to the call, callret, callint and callintret actions",
		Action: withRuntime(setup, func(_ context.Context, cmd *cli.Command, rt *Runtime) error {
			out := cmd.Root().Writer
			if rt.Symbols == nil {
				fmt.Fprintln(out, "Symbol invocation is disabled (symbols: false).")
				return nil
			}
			names := rt.Symbols.Names()
			if len(names) == 0 {
				fmt.Fprintln(out, "No symbols registered.")
				return nil
			}
			for _, name := range names {
				fn, _ := rt.Symbols.Resolve(name)
				sig, _ := symbols.SignatureOf(fn)
				fmt.Fprintf(out, "  %s %s\n", name, sig)
			}
			return nil
		}),
	}
}
