package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DirSink writes exports into a local directory, replacing files of the
// same name.
type DirSink struct {
	dir string
}

func NewDirSink(dir string) *DirSink {
	if dir == "" {
		dir = "."
	}
	return &DirSink{dir: dir}
}

func (s *DirSink) Put(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", name, err)
	}

	dest := filepath.Join(s.dir, name)
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", fmt.Errorf("rename %s: %w", name, err)
	}
	return dest, nil
}
