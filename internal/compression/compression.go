// Package compression opens word lists that may be compressed or archived.
package compression

import (
	"archive/tar"
	"archive/zip"
	"compress/bzip2"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/colorcue/internal/errs"
	"github.com/jmylchreest/colorcue/internal/security"
)

// Format identifies how a word list file is packed.
type Format int

// Supported formats.
const (
	FormatPlain Format = iota
	FormatGzip
	FormatXz
	FormatBzip2
	FormatTarGz
	FormatTarXz
	FormatTarBz2
	FormatZip
)

// ErrNoFile is returned when an archive holds no regular file.
var ErrNoFile = fmt.Errorf("%w: archive contains no word list", errs.ErrInvalidInput)

// String returns the usual file extension of the format.
func (f Format) String() string {
	switch f {
	case FormatGzip:
		return ".gz"
	case FormatXz:
		return ".xz"
	case FormatBzip2:
		return ".bz2"
	case FormatTarGz:
		return ".tar.gz"
	case FormatTarXz:
		return ".tar.xz"
	case FormatTarBz2:
		return ".tar.bz2"
	case FormatZip:
		return ".zip"
	}
	return "plain"
}

// DetectFormat derives the format from a file name.
func DetectFormat(name string) Format {
	name = strings.ToLower(name)
	switch {
	case strings.HasSuffix(name, ".tar.gz"), strings.HasSuffix(name, ".tgz"):
		return FormatTarGz
	case strings.HasSuffix(name, ".tar.xz"), strings.HasSuffix(name, ".txz"):
		return FormatTarXz
	case strings.HasSuffix(name, ".tar.bz2"), strings.HasSuffix(name, ".tbz"), strings.HasSuffix(name, ".tbz2"):
		return FormatTarBz2
	case strings.HasSuffix(name, ".zip"):
		return FormatZip
	case strings.HasSuffix(name, ".gz"):
		return FormatGzip
	case strings.HasSuffix(name, ".xz"):
		return FormatXz
	case strings.HasSuffix(name, ".bz2"):
		return FormatBzip2
	}
	return FormatPlain
}

// readCloser pairs a decoded stream with the closers of everything under it.
type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (rc *readCloser) Close() error {
	var errList []error
	for i := len(rc.closers) - 1; i >= 0; i-- {
		errList = append(errList, rc.closers[i].Close())
	}
	return errors.Join(errList...)
}

// Open opens the word list at path, decompressing it according to its
// extension. Archives yield their best candidate file (see selectFile).
// Decompressed content beyond maxBytes fails with security.ErrSizeLimit;
// a non-positive maxBytes disables the limit.
func Open(path string, maxBytes int64) (io.ReadCloser, error) {
	f, err := os.Open(path) // #nosec G304 - word list path is chosen by the user
	if err != nil {
		return nil, errs.IO("open word list", err)
	}

	r, err := open(f, DetectFormat(path))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	r.Reader = security.NewLimitedReader(r.Reader, maxBytes)
	return r, nil
}

func open(f *os.File, format Format) (*readCloser, error) {
	rc := &readCloser{Reader: f, closers: []io.Closer{f}}

	switch format {
	case FormatPlain:
		return rc, nil
	case FormatZip:
		return openZip(f, rc)
	}

	stream, err := decompress(f, format)
	if err != nil {
		return nil, err
	}
	rc.Reader = stream
	if c, ok := stream.(io.Closer); ok {
		rc.closers = append(rc.closers, c)
	}

	switch format {
	case FormatTarGz, FormatTarXz, FormatTarBz2:
		member, err := tarMember(stream)
		if err != nil {
			return nil, err
		}
		rc.Reader = member
	}
	return rc, nil
}

// decompress wraps r in the stream decoder of format.
func decompress(r io.Reader, format Format) (io.Reader, error) {
	switch format {
	case FormatGzip, FormatTarGz:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create gzip reader: %w", errs.ErrInvalidInput, err)
		}
		return gzr, nil
	case FormatXz, FormatTarXz:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create xz reader: %w", errs.ErrInvalidInput, err)
		}
		return xzr, nil
	case FormatBzip2, FormatTarBz2:
		return bzip2.NewReader(r), nil
	}
	return r, nil
}

// selectFile ranks archive members: text files first, then anything
// regular. Unsafe paths rank zero and are never chosen.
func selectFile(name string) int {
	if security.ValidateFilePath(name) != nil {
		return 0
	}
	base := strings.ToLower(filepath.Base(name))
	switch {
	case strings.HasPrefix(base, "."):
		return 0
	case strings.HasSuffix(base, ".txt"), strings.HasSuffix(base, ".lst"), strings.HasSuffix(base, ".dic"), base == "words":
		return 90
	}
	return 10
}

// tarMember returns the first regular member with a safe, non-hidden path.
// Tar streams cannot rewind, so members are not ranked as in zip archives.
func tarMember(r io.Reader) (io.Reader, error) {
	tr := tar.NewReader(r)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil, ErrNoFile
		}
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read tar archive: %w", errs.ErrInvalidInput, err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		if selectFile(header.Name) > 0 {
			return tr, nil
		}
	}
}

func openZip(f *os.File, rc *readCloser) (*readCloser, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, errs.IO("stat word list", err)
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create zip reader: %w", errs.ErrInvalidInput, err)
	}

	var best *zip.File
	bestPriority := 0
	for _, zf := range zr.File {
		if zf.FileInfo().IsDir() {
			continue
		}
		if priority := selectFile(zf.Name); priority > bestPriority {
			best, bestPriority = zf, priority
		}
	}
	if best == nil {
		return nil, ErrNoFile
	}

	member, err := best.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %w", errs.ErrInvalidInput, best.Name, err)
	}
	rc.Reader = member
	rc.closers = append(rc.closers, member)
	return rc, nil
}
