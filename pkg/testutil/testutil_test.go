package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelease_Args(t *testing.T) {
	t.Run("all_fields", func(t *testing.T) {
		args := DefaultRelease().Args("--output", "out.rb")

		assert.Equal(t, []string{
			"--owner", "acme",
			"--repo", "widget",
			"--tag", "v2.0.0",
			"--sha-arm64", "AAA",
			"--sha-x86_64", "BBB",
			"--output", "out.rb",
		}, args)
	})

	t.Run("cleared_fields_are_omitted", func(t *testing.T) {
		r := DefaultRelease()
		r.Tag = ""
		r.SHAX86 = ""

		assert.Equal(t, []string{
			"--owner", "acme",
			"--repo", "widget",
			"--sha-arm64", "AAA",
		}, r.Args())
	})
}

func TestFileHelpers(t *testing.T) {
	dir := t.TempDir()

	path := CreateFile(t, dir, filepath.Join("nested", "file.txt"), "content")
	assert.Equal(t, "content", ReadFile(t, path))

	AssertNoFile(t, filepath.Join(dir, "missing.txt"))
}

func TestFSHelpers(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "a/b.txt", []byte("hello"), 0644))

	assert.Equal(t, "hello", ReadFSFile(t, fs, "a/b.txt"))
	AssertFSNoFile(t, fs, "a/c.txt")
}
