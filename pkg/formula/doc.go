// Package formula turns release metadata into a Homebrew formula.
//
// # Overview
//
// A release pipeline knows the owner, repository and tag of a release plus
// the SHA256 of each per-architecture archive. From those values this
// package builds a validated Request and renders a formula that downloads
// the matching archive for arm64 or x86_64 and installs a single binary:
//
//	req, err := formula.NewRequest(formula.Params{
//	    Owner:    "acme",
//	    Repo:     "widget",
//	    Tag:      "v2.0.0",
//	    SHAArm64: "AAA",
//	    SHAX86:   "BBB",
//	})
//	if err != nil {
//	    return err
//	}
//	doc := formula.Render(req, config.Default())
//
// # Document shape
//
// Homebrew tooling parses the output, so the field order is fixed:
// class declaration, desc, homepage, version, one on_<platform> block with
// an arm/else branch pairing url and sha256, def install, test do.
//
// Archive URLs follow the GitHub release layout:
//
//	<base>/<owner>/<repo>/releases/download/<tag>/<repo>-<tag>-<platform>-<arch>.<ext>
//
// # Versions
//
// The version field is the tag with one leading "v" removed. Nothing else
// is stripped: "version-1.0" becomes "ersion-1.0".
//
// Rendering is deterministic. The same request and settings always give the
// same bytes; nothing depends on time, environment or map ordering.
package formula
