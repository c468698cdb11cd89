package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// VersionInfo holds version information
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	GoVer   string
}

// NewVersionCmd creates a new version command
func NewVersionCmd(versionInfo VersionInfo) *cli.Command {
	return &cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Show version information",
		Action: func(_ context.Context, cmd *cli.Command) error {
			out := cmd.Root().Writer
			fmt.Fprintf(out, "hookrun version %s\n", versionInfo.Version)
			fmt.Fprintf(out, "commit: %s\n", versionInfo.Commit)
			fmt.Fprintf(out, "date: %s\n", versionInfo.Date)
			fmt.Fprintf(out, "go: %s\n", versionInfo.GoVer)
			return nil
		},
	}
}
