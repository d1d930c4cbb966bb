package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// Execute runs cmd with args. A help flag anywhere before a "--" terminator
// prints help and succeeds, whatever else the arguments contain; only
// --no-color is kept alongside it.
func Execute(ctx context.Context, cmd *cobra.Command, args []string) error {
	if helpRequested(args) {
		helpArgs := []string{"--help"}
		if containsFlag(args, "--"+FlagNoColor) {
			helpArgs = append(helpArgs, "--"+FlagNoColor)
		}
		args = helpArgs
	}
	// A nil slice makes cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// containsFlag reports whether flag appears in args before a "--" terminator
func containsFlag(args []string, flag string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		if arg == flag {
			return true
		}
	}
	return false
}

// helpRequested reports whether args ask for help: "--help", "-h", or a
// shorthand group such as "-vh"
func helpRequested(args []string) bool {
	for _, arg := range args {
		switch {
		case arg == "--":
			return false
		case arg == "--help":
			return true
		case strings.HasPrefix(arg, "--"):
			continue
		case strings.HasPrefix(arg, "-") && strings.ContainsRune(arg[1:], 'h'):
			return true
		}
	}
	return false
}
