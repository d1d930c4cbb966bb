package formula

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/arthur-debert/brewformula/pkg/config"
	"github.com/arthur-debert/brewformula/pkg/logging"
)

// Target CPU architectures, as they appear in archive names
const (
	ArchArm64 = "arm64"
	ArchX86   = "x86_64"
)

//go:embed templates/formula.rb.tmpl
var formulaTemplate string

var tmpl = template.Must(template.New("formula").
	Funcs(template.FuncMap{"rb": RubyString}).
	Option("missingkey=error").
	Parse(formulaTemplate))

var rubyEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `#{`, `\#{`)

// RubyString escapes s for use inside a Ruby double-quoted string literal.
// Values without backslashes, quotes or "#{" are returned unchanged.
func RubyString(s string) string {
	return rubyEscaper.Replace(s)
}

// ArchEntry pairs the archive URL of one architecture with its checksum
type ArchEntry struct {
	Arch   string
	URL    string
	SHA256 string
}

// Document is the data the formula template is executed with
type Document struct {
	ClassName  string
	Desc       string
	Homepage   string
	Version    string
	Platform   string
	Arm64      ArchEntry
	X86        ArchEntry
	Binary     string
	TestMarker string
}

// Renderer renders formulas with a fixed set of settings
type Renderer struct {
	settings config.FormulaSettings
}

// NewRenderer creates a renderer for the given settings
func NewRenderer(settings config.Settings) *Renderer {
	return &Renderer{settings: settings.Formula}
}

// Render is a shorthand for NewRenderer(settings).Render(req)
func Render(req *Request, settings config.Settings) string {
	return NewRenderer(settings).Render(req)
}

// Render produces the formula text for req, without a trailing newline.
// The template is embedded and the request is validated, so a failure here
// is a bug and panics.
func (r *Renderer) Render(req *Request) string {
	logger := logging.GetLogger("formula")
	doc := r.Document(req)

	var buf strings.Builder
	if err := tmpl.Execute(&buf, doc); err != nil {
		panic(fmt.Sprintf("formula template failed: %v", err))
	}

	logger.Debug().
		Str("class", doc.ClassName).
		Str("version", doc.Version).
		Str("arm64", doc.Arm64.URL).
		Str("x86_64", doc.X86.URL).
		Msg("Rendered formula")

	return strings.TrimSuffix(buf.String(), "\n")
}

// Document builds the template data for req
func (r *Renderer) Document(req *Request) Document {
	s := r.settings
	return Document{
		ClassName:  ClassName(s.Name),
		Desc:       s.Desc,
		Homepage:   Homepage(s.HomepageBase, req.Owner(), req.Repo()),
		Version:    req.Version(),
		Platform:   s.Platform,
		Arm64:      r.archEntry(req, ArchArm64, req.SHAArm64()),
		X86:        r.archEntry(req, ArchX86, req.SHAX86()),
		Binary:     s.Binary,
		TestMarker: s.TestMarker,
	}
}

func (r *Renderer) archEntry(req *Request, arch, sha string) ArchEntry {
	asset := AssetName(req.Repo(), req.Tag(), r.settings.Platform, arch, r.settings.ArchiveExt)
	return ArchEntry{
		Arch:   arch,
		URL:    ReleaseAssetURL(r.settings.HomepageBase, req.Owner(), req.Repo(), req.Tag(), asset),
		SHA256: sha,
	}
}

// Homepage returns the project page: <base>/<owner>/<repo>
func Homepage(base, owner, repo string) string {
	return strings.TrimSuffix(base, "/") + "/" + owner + "/" + repo
}

// AssetName returns the archive file name published for one architecture,
// e.g. widget-v2.0.0-macos-arm64.tar.gz
func AssetName(repo, tag, platform, arch, ext string) string {
	return fmt.Sprintf("%s-%s-%s-%s.%s", repo, tag, platform, arch, ext)
}

// ReleaseAssetURL returns the download URL of a release asset
func ReleaseAssetURL(base, owner, repo, tag, asset string) string {
	return fmt.Sprintf("%s/releases/download/%s/%s", Homepage(base, owner, repo), tag, asset)
}
