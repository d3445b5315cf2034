package sheetfix

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// snapshot is a copy-aside of one file, taken before mutation. Exactly one of
// Restore or Discard runs on every exit path; both are safe to call once.
type snapshot struct {
	path   string
	backup string
}

// takeSnapshot copies path into a sibling temp file (same directory, so
// Restore is a rename on the same filesystem).
func takeSnapshot(path string) (*snapshot, error) {
	src, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}
	defer src.Close()

	dir, base := filepath.Split(path)
	dst, err := os.CreateTemp(dir, base+".bak-*")
	if err != nil {
		return nil, fmt.Errorf("create backup: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return nil, fmt.Errorf("copy backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("close backup: %w", err)
	}
	return &snapshot{path: path, backup: dst.Name()}, nil
}

// Restore puts the original bytes back, replacing whatever the correction
// left behind.
func (s *snapshot) Restore() error {
	if err := os.Rename(s.backup, s.path); err != nil {
		return fmt.Errorf("restore %s: %w", s.path, err)
	}
	return nil
}

// Discard removes the backup, keeping the (possibly rewritten) target.
func (s *snapshot) Discard() {
	_ = os.Remove(s.backup)
}
