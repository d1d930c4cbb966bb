package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/arthur-debert/brewformula/pkg/errors"
	"github.com/arthur-debert/brewformula/pkg/logging"
	"github.com/spf13/afero"
)

// File modes for generated output
const (
	DirPerm  = 0755
	FilePerm = 0644
)

// MsgWrittenFormat confirms a file write on stdout
const MsgWrittenFormat = "Formula written to %s\n"

// Writer delivers a rendered document either to a file or to stdout
type Writer struct {
	fs     afero.Fs
	stdout io.Writer
}

// NewWriter creates a Writer that writes files through fs and prints to stdout
func NewWriter(fs afero.Fs, stdout io.Writer) *Writer {
	return &Writer{fs: fs, stdout: stdout}
}

// Write emits document followed by a single newline. With an empty
// outputPath the document goes to stdout and nothing else is printed.
// Otherwise parent directories are created, the file is replaced as a whole
// and its path is reported on stdout.
func (w *Writer) Write(document, outputPath string) error {
	logger := logging.GetLogger("output")
	content := document + "\n"

	if outputPath == "" {
		if _, err := io.WriteString(w.stdout, content); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "failed to write to stdout")
		}
		return nil
	}

	dir := filepath.Dir(outputPath)
	if err := w.fs.MkdirAll(dir, DirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}

	if err := afero.WriteFile(w.fs, outputPath, []byte(content), FilePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", outputPath).
			WithDetail("path", outputPath)
	}

	logger.Info().
		Str("path", outputPath).
		Int("bytes", len(content)).
		Msg("Wrote formula")

	if _, err := fmt.Fprintf(w.stdout, MsgWrittenFormat, outputPath); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write to stdout")
	}
	return nil
}
