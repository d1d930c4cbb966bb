package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveVersion(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{"v1.2.3", "1.2.3"},
		{"1.2.3", "1.2.3"},
		{"v", ""},
		{"", ""},
		{"vv1.0", "v1.0"},
		{"version-1.0", "ersion-1.0"},
		{"V1.0", "V1.0"},
		{"release-v1.0", "release-v1.0"},
		{"v2.0.0-rc.1", "2.0.0-rc.1"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveVersion(tt.tag))
		})
	}
}
