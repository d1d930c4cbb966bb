// Package output delivers the rendered formula.
//
// Without a destination the document is printed to stdout, followed by one
// newline and nothing else, so it can be piped straight into a tap
// repository. With a destination the parent directories are created, the
// whole file is replaced and a single confirmation line with the path is
// printed instead.
//
// Files go through an afero.Fs; tests use afero.NewMemMapFs.
package output
