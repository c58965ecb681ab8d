package output

import (
	"errors"
	"fmt"
	"github.com/klauspost/compress/zstd"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ZstdExt marks destinations that are written zstd-compressed.
const ZstdExt = ".zst"

// File is an output that appears at its destination path only once
// Commit succeeds. Until then it is written to a temporary file in the same
// directory.
type File struct {
	path string
	tmp  *os.File
	zw   *zstd.Encoder
	w    io.Writer
}

// Create opens a temporary file next to path. It fails, without creating
// anything, if the directory is missing or not writable.
func Create(path string) (*File, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := createTemp(dir, base)
	if err != nil {
		return nil, fmt.Errorf("could not open output file %q: %w", path, err)
	}

	f := &File{path: path, tmp: tmp, w: tmp}
	if strings.HasSuffix(path, ZstdExt) {
		zw, err := zstd.NewWriter(tmp)
		if err != nil {
			f.Abort()
			return nil, fmt.Errorf("zstd writer for %q: %w", path, err)
		}
		f.zw = zw
		f.w = zw
	}

	return f, nil
}

// createTemp opens a new hidden file in dir named after base. Unlike os.CreateTemp it
// uses mode 0666, so the final file gets the same umask-filtered permissions
// as one made by os.Create.
func createTemp(dir, base string) (*os.File, error) {
	for try := 0; ; try++ {
		name := filepath.Join(dir, "."+base+"."+strconv.FormatUint(rand.Uint64(), 36)+".tmp")

		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0o666)
		if errors.Is(err, os.ErrExist) && try < 100 {
			continue
		}

		return f, err
	}
}

// Path returns the destination path.
func (f *File) Path() string {
	return f.path
}

func (f *File) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

// Commit flushes and closes the file and moves it to its destination.
func (f *File) Commit() error {
	if f.zw != nil {
		if err := f.zw.Close(); err != nil {
			f.Abort()
			return fmt.Errorf("closing zstd stream: %w", err)
		}
	}
	if err := f.tmp.Sync(); err != nil {
		f.Abort()
		return fmt.Errorf("syncing %q: %w", f.tmp.Name(), err)
	}
	if err := f.tmp.Close(); err != nil {
		_ = os.Remove(f.tmp.Name())
		return fmt.Errorf("closing %q: %w", f.tmp.Name(), err)
	}
	if err := os.Rename(f.tmp.Name(), f.path); err != nil {
		_ = os.Remove(f.tmp.Name())
		return fmt.Errorf("moving output into place: %w", err)
	}

	return nil
}

// Abort discards everything written. It is safe to call after Commit
// failed.
func (f *File) Abort() {
	if f.zw != nil {
		_ = f.zw.Close()
	}
	_ = f.tmp.Close()
	_ = os.Remove(f.tmp.Name())
}
