package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/pflag"
)

// maxSuggestionDistance is the largest edit distance still offered as a
// "did you mean" hint
const maxSuggestionDistance = 2

const unknownFlagPrefix = "unknown flag: --"

// unknownFlagName extracts the flag name from a pflag "unknown flag" error
func unknownFlagName(err error) (string, bool) {
	msg := err.Error()
	if !strings.HasPrefix(msg, unknownFlagPrefix) {
		return "", false
	}
	return strings.TrimPrefix(msg, unknownFlagPrefix), true
}

// suggestFlag returns the known flag closest to name, or "" when none is
// within maxSuggestionDistance. Ties go to the flag declared first.
func suggestFlag(flags *pflag.FlagSet, name string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1

	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		if d := levenshtein.ComputeDistance(name, f.Name); d < bestDistance {
			best = f.Name
			bestDistance = d
		}
	})

	return best
}
