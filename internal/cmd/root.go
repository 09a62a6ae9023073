// Package cmd wires the command-line surface to the listing pipeline.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/lsgo/internal/config"
	"github.com/harrison/lsgo/internal/core"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Exit codes. Configuration errors are detected before any filesystem
// access and abort the run; filesystem errors never do.
const (
	ExitOK          = 0
	ExitDiagnostics = 1
	ExitConfigError = 2
)

// NewRootCommand creates the root cobra command for lsgo. The resulting
// exit code of a successful parse is written to exitCode.
func NewRootCommand(exitCode *int) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "lsgo [flags] [path]...",
		Short: "List directory contents with colors, icons and trees",
		Long: `lsgo lists the given paths (default: the current directory) as a grid,
a one-line or long listing, or a tree.

Colors and icons are enabled automatically when the output is an
interactive terminal and can be forced or suppressed explicitly. Defaults
may be placed in ~/.config/lsgo/config.yaml; command-line flags override
them.

Unreachable paths are reported on the error stream and skipped; the run
continues and exits with status 1. Configuration errors exit with status 2
before anything is read from the filesystem.`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if !cmd.Flags().Changed("config") {
				path = config.DefaultFilePath()
			}
			flags, err := config.LoadFile(path, config.Default())
			if err != nil {
				return err
			}
			flags, err = config.FromFlagSet(cmd.Flags(), flags)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{"."}
			}
			if exitCode != nil {
				*exitCode = core.New(flags).Run(args)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	config.RegisterFlags(fs)
	fs.StringVar(&configPath, "config", "", "read defaults from this config file")

	return cmd
}

// Execute parses the command line and runs the pipeline, returning the
// process exit code.
func Execute() int {
	exitCode := ExitOK
	cmd := NewRootCommand(&exitCode)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lsgo: %v\n", err)
		return ExitConfigError
	}
	return exitCode
}
