package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// TempFilePrefix marks staging files for in-progress record writes.
	// Loads and the vault watcher skip anything carrying it.
	TempFilePrefix = "almanac-tmp-"

	recordPerm     = 0o644
	collectionPerm = 0o755
)

// writeRecordFile persists one record atomically: the bytes are staged
// in a temp file inside the record's collection directory, then renamed
// over the destination. Staging in the same directory keeps the rename
// on one filesystem, so a concurrent reader sees either the old record
// or the new one, never a partial write.
func writeRecordFile(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, collectionPerm); err != nil {
		return fmt.Errorf("failed to create collection directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to stage record: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Sync()
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to stage record %s: %w", filepath.Base(filename), err)
	}

	if err := os.Chmod(tmpName, recordPerm); err != nil {
		return fmt.Errorf("failed to chmod staged record: %w", err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		return fmt.Errorf("failed to finalize record %s: %w", filepath.Base(filename), err)
	}
	return nil
}
