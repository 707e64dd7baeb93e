package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// decodedReader keeps the decompressor and the underlying file
// together so one Close tears down both layers.
type decodedReader struct {
	io.Reader
	close func() error
}

func (r *decodedReader) Close() error {
	return r.close()
}

// OpenInput opens path for reading, transparently decompressing .gz
// and .zst files by extension. Codec concurrency is pinned to one;
// the trim itself is single-threaded and the reader stays that way.
func OpenInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read gzip stream %s: %w", path, err)
		}
		return &decodedReader{Reader: gz, close: func() error {
			if err := gz.Close(); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		}}, nil
	case ".zst":
		dec, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read zstd stream %s: %w", path, err)
		}
		return &decodedReader{Reader: dec, close: func() error {
			dec.Close()
			return f.Close()
		}}, nil
	}
	return f, nil
}

// WriteOutput writes data to path, compressing by extension the same
// way OpenInput decompresses. An empty path or "-" streams to stdout
// as-is.
func WriteOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := encodeTo(f, path, data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func encodeTo(f *os.File, path string, data []byte) error {
	switch filepath.Ext(path) {
	case ".gz":
		zw := gzip.NewWriter(f)
		if _, err := zw.Write(data); err != nil {
			return err
		}
		return zw.Close()
	case ".zst":
		zw, err := zstd.NewWriter(f, zstd.WithEncoderCRC(false), zstd.WithEncoderConcurrency(1), zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return err
		}
		if _, err := zw.Write(data); err != nil {
			zw.Close()
			return err
		}
		return zw.Close()
	}
	_, err := f.Write(data)
	return err
}
