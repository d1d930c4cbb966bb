package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/brewformula/internal/version"
	"github.com/arthur-debert/brewformula/pkg/config"
	"github.com/arthur-debert/brewformula/pkg/errors"
	"github.com/arthur-debert/brewformula/pkg/formula"
	"github.com/arthur-debert/brewformula/pkg/logging"
	"github.com/arthur-debert/brewformula/pkg/output"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// DetailSuggestion is the error detail key holding a "did you mean" flag name
const DetailSuggestion = "suggestion"

// Options wires the root command to its environment
type Options struct {
	// FS receives the formula when --output is given; defaults to the OS
	// filesystem
	FS afero.Fs
}

type rootFlags struct {
	params      formula.Params
	configPath  string
	printConfig bool
	verbosity   int
	logFile     bool
	noColor     bool
	logCloser   io.Closer
}

// closeLog releases the log file opened for --log-file, if any
func (f *rootFlags) closeLog() {
	if f.logCloser != nil {
		_ = f.logCloser.Close()
		f.logCloser = nil
	}
}

// NewRootCmd creates and returns the root command
func NewRootCmd(opts Options) *cobra.Command {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}

	initTemplateFormatting()

	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:     MsgRootUse,
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    noPositionalArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			flags.logCloser = logging.SetupLogger(flags.verbosity, logging.Options{
				Out:     cmd.ErrOrStderr(),
				LogFile: flags.logFile,
				NoColor: flags.noColor,
			})
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &flags, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	f := rootCmd.Flags()
	f.StringVar(&flags.params.Owner, FlagOwner, "", MsgFlagOwner)
	f.StringVar(&flags.params.Repo, FlagRepo, "", MsgFlagRepo)
	f.StringVar(&flags.params.Tag, FlagTag, "", MsgFlagTag)
	f.StringVar(&flags.params.SHAArm64, FlagSHAArm64, "", MsgFlagSHAArm64)
	f.StringVar(&flags.params.SHAX86, FlagSHAX86, "", MsgFlagSHAX86)
	f.StringVar(&flags.params.OutputPath, FlagOutput, "", MsgFlagOutput)
	f.StringVar(&flags.configPath, FlagConfig, "", MsgFlagConfig)
	f.BoolVar(&flags.printConfig, FlagPrintConfig, false, MsgFlagPrintConfig)
	f.CountVarP(&flags.verbosity, FlagVerbose, "v", MsgFlagVerbose)
	f.BoolVar(&flags.logFile, FlagLogFile, false, MsgFlagLogFile)
	f.BoolVar(&flags.noColor, FlagNoColor, false, MsgFlagNoColor)
	f.SortFlags = false

	rootCmd.SetUsageTemplate(usageTemplate)
	rootCmd.SetHelpFunc(helpFunc)
	rootCmd.SetVersionTemplate(fmt.Sprintf(versionTemplate, version.Commit, version.Date))
	rootCmd.SetFlagErrorFunc(flagError)

	return rootCmd
}

func run(cmd *cobra.Command, flags *rootFlags, opts Options) error {
	defer flags.closeLog()

	if flags.printConfig {
		settings, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		out, err := settings.TOML()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	}

	req, err := formula.NewRequest(flags.params)
	if err != nil {
		return err
	}

	done := logging.LogOperationStart(logging.GetLogger("cli"), "generate")
	defer done()

	settings, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}

	log.Info().
		Str("owner", req.Owner()).
		Str("repo", req.Repo()).
		Str("tag", req.Tag()).
		Str("version", req.Version()).
		Msg("Rendering formula")

	document := formula.Render(req, settings)

	return output.NewWriter(opts.FS, cmd.OutOrStdout()).Write(document, req.OutputPath())
}

// noPositionalArgs rejects any argument that is not a flag
func noPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.Newf(errors.ErrUsage, MsgErrUnexpectedArg, args[0])
	}
	return nil
}

// flagError turns pflag parse failures into USAGE errors, attaching the
// closest known flag name for unknown long flags
func flagError(cmd *cobra.Command, err error) error {
	usageErr := errors.Wrap(err, errors.ErrUsage, "invalid arguments")

	if name, ok := unknownFlagName(err); ok {
		if suggestion := suggestFlag(cmd.Flags(), name); suggestion != "" {
			usageErr.WithDetail(DetailSuggestion, suggestion)
		}
	}

	return usageErr
}

// Suggestion returns the "did you mean" hint carried by err, if any
func Suggestion(err error) (string, bool) {
	name, ok := errors.GetErrorDetails(err)[DetailSuggestion].(string)
	if !ok || name == "" {
		return "", false
	}
	return fmt.Sprintf(MsgHintSuggestion, name), true
}

// NoColor reports whether --no-color was given to cmd
func NoColor(cmd *cobra.Command) bool {
	noColor, err := cmd.Flags().GetBool(FlagNoColor)
	return err == nil && noColor
}
