package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/klauern/hookrun/internal/cmd"
	"github.com/klauern/hookrun/internal/symbols"
)

// Set via -ldflags at release time
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := symbols.RegisterRuntime(symbols.Default); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := cmd.NewApp(cmd.DefaultSetup, cmd.VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
		GoVer:   runtime.Version(),
	})
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
