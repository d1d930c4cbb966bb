package cli

import (
	"fmt"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestUnknownFlagName(t *testing.T) {
	name, ok := unknownFlagName(fmt.Errorf("unknown flag: --ownr"))
	assert.True(t, ok)
	assert.Equal(t, "ownr", name)

	_, ok = unknownFlagName(fmt.Errorf("flag needs an argument: --owner"))
	assert.False(t, ok)
}

func TestSuggestFlag(t *testing.T) {
	flags := NewRootCmd(Options{FS: afero.NewMemMapFs()}).Flags()

	tests := []struct {
		name string
		want string
	}{
		{name: "ownr", want: "owner"},
		{name: "reop", want: "repo"},
		{name: "sha-arm", want: "sha-arm64"},
		{name: "outptu", want: "output"},
		{name: "bogus", want: ""},
		{name: "completely-unrelated", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, suggestFlag(flags, tt.name))
		})
	}
}
