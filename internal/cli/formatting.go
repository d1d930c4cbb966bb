package cli

import (
	"fmt"
	"text/template"

	"github.com/arthur-debert/brewformula/pkg/ui"
	"github.com/charmbracelet/x/ansi"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const usageTemplate = `{{bold "Usage:"}}
  {{.UseLine}}{{if .HasExample}}

{{bold "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableLocalFlags}}

{{bold "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}
`

// formatBold returns the string formatted as bold using pterm. Callers
// writing to a plain destination strip the codes again.
func formatBold(s string) string {
	return pterm.Bold.Sprint(s)
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold": formatBold,
	})
}

// helpFunc prints the long description and usage, styled only when the
// command's output is a color terminal and --no-color is not set
func helpFunc(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	format := ui.FormatFor(out, NoColor(cmd))

	long := ui.RenderMarkdown(cmd.Long, format)
	usage := cmd.UsageString()
	if format != ui.FormatTerminal {
		usage = ansi.Strip(usage)
	}

	fmt.Fprintf(out, "%s\n\n%s", long, usage)
}
