package cli

// Command descriptions
const (
	MsgRootUse   = "brewformula"
	MsgRootShort = "Generate the Homebrew formula for a vartui release"
	MsgRootLong  = `# brewformula

Generates the **Homebrew formula** for one release of a prebuilt binary.
The formula downloads the arm64 or x86_64 archive of the release and
installs its binary.

Checksums are taken as given: compute them when building the release
archives and pass them in. The formula is printed to stdout unless
` + "`--output`" + ` names a file.`

	MsgRootExample = `  brewformula --owner acme --repo vartui --tag v1.4.0 \
    --sha-arm64 3f1c... --sha-x86_64 9b2e...
  brewformula --owner acme --repo vartui --tag v1.4.0 \
    --sha-arm64 3f1c... --sha-x86_64 9b2e... --output Formula/vartui.rb`
)

// Flag names
const (
	FlagOwner       = "owner"
	FlagRepo        = "repo"
	FlagTag         = "tag"
	FlagSHAArm64    = "sha-arm64"
	FlagSHAX86      = "sha-x86_64"
	FlagOutput      = "output"
	FlagConfig      = "config"
	FlagPrintConfig = "print-config"
	FlagVerbose     = "verbose"
	FlagLogFile     = "log-file"
	FlagNoColor     = "no-color"
)

// Flag descriptions
const (
	MsgFlagOwner       = "Account or organization hosting the repository (required)"
	MsgFlagRepo        = "Repository name (required)"
	MsgFlagTag         = "Release tag, e.g. v1.4.0 (required)"
	MsgFlagSHAArm64    = "SHA256 of the arm64 archive (required)"
	MsgFlagSHAX86      = "SHA256 of the x86_64 archive (required)"
	MsgFlagOutput      = "Write the formula to this file instead of stdout"
	MsgFlagConfig      = "TOML or YAML file overriding the formula settings"
	MsgFlagPrintConfig = "Print the effective formula settings as TOML and exit"
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagLogFile     = "Also append logs to $XDG_STATE_HOME/brewformula/brewformula.log"
	MsgFlagNoColor     = "Disable colored diagnostics"
)

// Error and hint messages
const (
	MsgErrUnexpectedArg = "unexpected argument %q: all values are passed with flags"
	MsgHintSuggestion   = "Did you mean --%s?"
)

const versionTemplate = `brewformula {{.Version}}
  commit: %s
  built:  %s
`
