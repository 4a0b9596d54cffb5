package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeFileAtomic replaces filename by staging the payload in a temp file
// in the same directory and renaming it into place. A crash mid-save
// leaves the previous snapshot intact rather than a truncated file; the
// temp file must share the directory because renames across filesystems
// are not atomic.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir, base := filepath.Split(filename)
	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to stage snapshot: %w", err)
	}
	tmpPath := tmp.Name()
	// No-op once the rename has happened; otherwise clears the failed stage.
	defer os.Remove(tmpPath)

	// CreateTemp opens 0600; widen to the requested mode before the file
	// becomes visible under its final name.
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set snapshot permissions: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to stage snapshot: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close staged snapshot: %w", err)
	}

	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}
	return nil
}
