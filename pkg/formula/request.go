package formula

import (
	"strings"

	"github.com/arthur-debert/brewformula/pkg/errors"
)

// Flag names of the required inputs, in the order they are reported
const (
	FieldOwner    = "owner"
	FieldRepo     = "repo"
	FieldTag      = "tag"
	FieldSHAArm64 = "sha-arm64"
	FieldSHAX86   = "sha-x86_64"
)

// MsgMissingRequired prefixes the validation error for empty inputs
const MsgMissingRequired = "missing required arguments"

// Params carries raw command line values before validation
type Params struct {
	Owner    string
	Repo     string
	Tag      string
	SHAArm64 string
	// SHAX86 is the checksum of the x86_64 archive
	SHAX86     string
	OutputPath string
}

// Request is a validated, immutable set of formula inputs. It only exists
// when every required field is present.
type Request struct {
	owner      string
	repo       string
	tag        string
	shaArm64   string
	shaX86     string
	outputPath string
}

// NewRequest validates params and builds a Request. When required fields are
// empty it returns an ErrValidation error naming all of them; the "missing"
// detail holds the flag names.
func NewRequest(p Params) (*Request, error) {
	required := []struct {
		name  string
		value string
	}{
		{FieldOwner, p.Owner},
		{FieldRepo, p.Repo},
		{FieldTag, p.Tag},
		{FieldSHAArm64, p.SHAArm64},
		{FieldSHAX86, p.SHAX86},
	}

	var missing []string
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, "--"+r.name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Newf(errors.ErrValidation, "%s: %s", MsgMissingRequired, strings.Join(missing, ", ")).
			WithDetail("missing", missing)
	}

	return &Request{
		owner:      p.Owner,
		repo:       p.Repo,
		tag:        p.Tag,
		shaArm64:   p.SHAArm64,
		shaX86:     p.SHAX86,
		outputPath: p.OutputPath,
	}, nil
}

// Owner returns the account or organization hosting the repository
func (r *Request) Owner() string { return r.owner }

// Repo returns the repository name
func (r *Request) Repo() string { return r.repo }

// Tag returns the release tag
func (r *Request) Tag() string { return r.tag }

// SHAArm64 returns the checksum of the arm64 archive
func (r *Request) SHAArm64() string { return r.shaArm64 }

// SHAX86 returns the checksum of the x86_64 archive
func (r *Request) SHAX86() string { return r.shaX86 }

// OutputPath returns the destination file, or "" for stdout
func (r *Request) OutputPath() string { return r.outputPath }

// Version returns the tag without its leading "v"
func (r *Request) Version() string { return DeriveVersion(r.tag) }
