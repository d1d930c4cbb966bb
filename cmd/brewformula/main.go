package main

import (
	"context"
	"io"
	"os"

	"github.com/arthur-debert/brewformula/internal/cli"
	"github.com/arthur-debert/brewformula/pkg/errors"
	"github.com/arthur-debert/brewformula/pkg/ui"
	"github.com/spf13/afero"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the root command and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := cli.NewRootCmd(cli.Options{FS: afero.NewOsFs()})
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := cli.Execute(ctx, rootCmd, args)
	if err == nil {
		return 0
	}

	diag := ui.NewDiagnostics(stderr, cli.NoColor(rootCmd))
	diag.Error(errors.UserMessage(err))
	if hint, ok := cli.Suggestion(err); ok {
		diag.Hint(hint)
	}

	// Usage and validation failures are the caller's mistake: show how to
	// call the tool
	if errors.ShowsUsage(err) {
		diag.Usage(rootCmd.UsageString())
	}

	return 1
}
