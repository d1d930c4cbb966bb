package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsFlag(t *testing.T) {
	assert.True(t, containsFlag([]string{"--bogus", "--no-color", "-h"}, "--no-color"))
	assert.False(t, containsFlag([]string{"-h", "--", "--no-color"}, "--no-color"))
	assert.False(t, containsFlag(nil, "--no-color"))
}

func TestHelpRequested(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no_args", args: nil, want: false},
		{name: "long", args: []string{"--help"}, want: true},
		{name: "short", args: []string{"-h"}, want: true},
		{name: "shorthand_group", args: []string{"-vh"}, want: true},
		{name: "after_bad_flag", args: []string{"--bogus", "--help"}, want: true},
		{name: "before_bad_flag", args: []string{"--help", "--bogus"}, want: true},
		{name: "after_terminator", args: []string{"--", "--help"}, want: false},
		{name: "long_flag_containing_h", args: []string{"--sha-arm64", "abc"}, want: false},
		{name: "verbose_only", args: []string{"-vv"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helpRequested(tt.args))
		})
	}
}
