// Package testutil provides helpers shared by the brewformula tests.
//
// Key components:
//   - Release: a complete set of release values and the CLI arguments for it
//   - file helpers for the OS filesystem (CreateFile, ReadFile, AssertNoFile)
//   - afero helpers for in-memory filesystems (ReadFSFile, AssertFSNoFile)
//
// Each test should be isolated: use t.TempDir() or afero.NewMemMapFs().
package testutil
