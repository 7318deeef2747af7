// Package security provides input limits and file preflight checks for colorcue.
package security

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jmylchreest/colorcue/internal/errs"
)

var (
	// ErrSizeLimit is returned once a LimitedReader has delivered its budget.
	ErrSizeLimit = fmt.Errorf("%w: input size limit exceeded", errs.ErrInvalidInput)

	// ErrIsDirectory is returned when a file was expected but a directory found.
	ErrIsDirectory = errors.New("expected a file but directory given")

	// ErrExists is returned when an output file exists and overwriting was not allowed.
	ErrExists = errors.New("file already exists")
)

// LimitedReader wraps an io.Reader and limits the total bytes that can be read.
// This prevents decompression bomb attacks when reading compressed word lists.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
// A non-positive limit returns r unchanged.
func NewLimitedReader(r io.Reader, maxBytes int64) io.Reader {
	if maxBytes <= 0 {
		return r
	}
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}

// CheckReadableFile verifies that path exists and is not a directory.
func CheckReadableFile(path string) (fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, errs.IO("open "+path, err)
	}
	if info.IsDir() {
		return nil, errs.IO("open "+path, ErrIsDirectory)
	}
	return info, nil
}

// CheckWritableTarget verifies that path can be written as a file. It
// reports whether the file already exists; an existing file is an error
// unless overwrite is set.
func CheckWritableTarget(path string, overwrite bool) (exists bool, err error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, errs.IO("write "+path, err)
	case info.IsDir():
		return true, errs.IO("write "+path, ErrIsDirectory)
	case !overwrite:
		return true, errs.IO("write "+path, ErrExists)
	}
	return true, nil
}

// ValidateFilePath validates a file path within an archive to prevent
// directory traversal.
func ValidateFilePath(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("%w: empty file path", errs.ErrInvalidInput)
	}
	if filepath.IsAbs(filePath) || !filepath.IsLocal(filePath) {
		return fmt.Errorf("%w: archive path %q escapes the archive", errs.ErrInvalidInput, filePath)
	}
	return nil
}
