package csvfile

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression suffixes recognized on both import and export.
const (
	extGzip = ".gz"
	extZstd = ".zst"
)

// splitCompression returns the path with any compression suffix removed,
// plus that suffix ("" when uncompressed).
func splitCompression(path string) (string, string) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case extGzip, extZstd:
		return path[:len(path)-len(ext)], ext
	default:
		return path, ""
	}
}

// decompress wraps r according to the compression suffix of path.
// The returned closer releases decoder state; it does not close r.
func decompress(r io.Reader, path string) (io.ReadCloser, error) {
	_, ext := splitCompression(path)
	switch ext {
	case extGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		return zr, nil
	case extZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

// compress wraps w according to the compression suffix of path. Close
// must be called to flush the compressed stream; it does not close w.
func compress(w io.Writer, path string) (io.WriteCloser, error) {
	_, ext := splitCompression(path)
	switch ext {
	case extGzip:
		return gzip.NewWriter(w), nil
	case extZstd:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd writer: %w", err)
		}
		return enc, nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
