// file: internal/fileops/safe_operations.go
// version: 2.0.0
// guid: 8f7e6d5c-4b3a-2918-7f6e-5d4c3b2a1908

package fileops

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// BackupConfig controls whether an existing file is copied aside before it is overwritten
type BackupConfig struct {
	// Dir is where backups are written. Empty disables backups. Relative paths
	// are resolved against the directory of the file being backed up.
	Dir string
	// MaxBackups limits the number of backups kept per file; 0 keeps all of them
	MaxBackups int
}

// DefaultBackupConfig returns a config with backups disabled
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{
		Dir:        "",
		MaxBackups: 5,
	}
}

// Enabled reports whether backups should be taken
func (c BackupConfig) Enabled() bool {
	return c.Dir != ""
}

// WriteFileAtomic replaces path with data. The bytes are written to a temporary
// file in the same directory which is then renamed over the target, so readers
// never observe a partially written file. A symlink is followed and its target
// rewritten. An existing file keeps its permissions; perm applies to new files.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	path, err := resolveTarget(path)
	if err != nil {
		return err
	}
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// resolveTarget follows symlinks in path. A path that does not exist yet is
// returned unchanged.
func resolveTarget(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, nil
		}
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	return resolved, nil
}

// BackupFile copies path into the backup directory under a timestamped name and
// prunes old backups beyond MaxBackups. It returns the backup path, or "" when
// backups are disabled or path does not exist yet.
func BackupFile(path string, config BackupConfig) (string, error) {
	if !config.Enabled() {
		return "", nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	backupDir := config.Dir
	if !filepath.IsAbs(backupDir) {
		backupDir = filepath.Join(filepath.Dir(path), backupDir)
	}
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000000000")
	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s.%s.backup", filepath.Base(path), timestamp))

	if err := copyFile(path, backupPath); err != nil {
		return "", fmt.Errorf("failed to backup existing file: %w", err)
	}

	if err := cleanupOldBackups(backupDir, filepath.Base(path), config.MaxBackups); err != nil {
		// Non-fatal: the backup itself succeeded
		log.Printf("[WARN] failed to cleanup old backups: %v", err)
	}

	return backupPath, nil
}

// ListBackups returns the backups of baseName in dir, oldest first
func ListBackups(dir, baseName string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, fmt.Sprintf("%s.*.backup", baseName)))
	if err != nil {
		return nil, err
	}
	// Timestamps are fixed width, so lexical order is chronological
	sort.Strings(matches)
	return matches, nil
}

// cleanupOldBackups removes excess backup files
func cleanupOldBackups(dir, baseName string, maxBackups int) error {
	if maxBackups <= 0 {
		return nil
	}

	matches, err := ListBackups(dir, baseName)
	if err != nil {
		return err
	}
	if len(matches) <= maxBackups {
		return nil
	}

	toRemove := len(matches) - maxBackups
	for i := 0; i < toRemove; i++ {
		if err := os.Remove(matches[i]); err != nil {
			log.Printf("[WARN] failed to remove old backup %s: %v", matches[i], err)
		}
	}
	return nil
}

// copyFile copies a file from src to dst, keeping the source permissions
func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}
	if err := destFile.Sync(); err != nil {
		return err
	}

	sourceInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.Chmod(dst, sourceInfo.Mode())
}
