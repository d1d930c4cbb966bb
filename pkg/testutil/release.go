package testutil

// Release holds the values of one release as passed on the command line
type Release struct {
	Owner    string
	Repo     string
	Tag      string
	SHAArm64 string
	SHAX86   string
}

// DefaultRelease returns the release used across the CLI tests
func DefaultRelease() Release {
	return Release{
		Owner:    "acme",
		Repo:     "widget",
		Tag:      "v2.0.0",
		SHAArm64: "AAA",
		SHAX86:   "BBB",
	}
}

// Args returns the required flags for r followed by extra. Empty fields
// are left out so tests can omit a required flag by clearing it.
func (r Release) Args(extra ...string) []string {
	pairs := []struct{ flag, value string }{
		{"--owner", r.Owner},
		{"--repo", r.Repo},
		{"--tag", r.Tag},
		{"--sha-arm64", r.SHAArm64},
		{"--sha-x86_64", r.SHAX86},
	}

	var args []string
	for _, p := range pairs {
		if p.value != "" {
			args = append(args, p.flag, p.value)
		}
	}
	return append(args, extra...)
}
