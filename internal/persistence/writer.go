package persistence

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/valyala/bytebufferpool"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
)

const (
	TempSuffix   = ".tmp"
	BackupSuffix = ".bak"
)

var ErrNoBackup = errors.New("no backup file")

func TempPath(path string) string   { return path + TempSuffix }
func BackupPath(path string) string { return path + BackupSuffix }

// Save atomically rewrites path with members, one per line.
//
// The members are staged in path.tmp, the current contents of path are copied
// to path.bak (or path.bak is removed when path does not exist), and path.tmp
// is renamed over path. An interrupted save leaves
// path untouched. An empty member list truncates path.
func Save(path string, members []string) error {
	tmpFile := TempPath(path)

	if err := os.Remove(tmpFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return svurlerrors.PersistFailed("remove stale temp", tmpFile, err)
	}

	if err := writeStaging(tmpFile, members); err != nil {
		os.Remove(tmpFile)
		return svurlerrors.PersistFailed("write temp", tmpFile, err)
	}

	backup := BackupPath(path)
	if err := copyFile(path, backup); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			os.Remove(tmpFile)
			return svurlerrors.PersistFailed("backup", backup, err)
		}
		// No previous generation, so an older backup must not survive.
		if err := os.Remove(backup); err != nil && !errors.Is(err, fs.ErrNotExist) {
			os.Remove(tmpFile)
			return svurlerrors.PersistFailed("remove stale backup", backup, err)
		}
	}

	if err := os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return svurlerrors.PersistFailed("rename", path, err)
	}

	syncDir(filepath.Dir(path))
	return nil
}

func writeStaging(tmpFile string, members []string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for _, member := range members {
		buf.WriteString(member)
		buf.WriteByte('\n')
	}

	file, err := os.OpenFile(tmpFile, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(buf.B); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	return file.Close()
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create backup file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy to backup file: %w", err)
	}
	if err := out.Sync(); err != nil {
		return fmt.Errorf("failed to sync backup file: %w", err)
	}
	return out.Close()
}

// syncDir is best effort: not every platform supports fsync on directories.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	d.Sync()
	d.Close()
}

// Append adds a single line to the end of path, creating it if needed. A
// missing trailing newline in the existing file is repaired first.
func Append(path, line string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0644)
	if err != nil {
		return svurlerrors.PersistFailed("append", path, err)
	}
	defer file.Close()

	data := line + "\n"
	needsNewline, err := endsWithoutNewline(file)
	if err != nil {
		return svurlerrors.PersistFailed("append", path, err)
	}
	if needsNewline {
		data = "\n" + data
	}

	if _, err := file.WriteString(data); err != nil {
		return svurlerrors.PersistFailed("append", path, err)
	}
	if err := file.Sync(); err != nil {
		return svurlerrors.PersistFailed("append", path, err)
	}
	return nil
}

func endsWithoutNewline(file *os.File) (bool, error) {
	info, err := file.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}
	last := make([]byte, 1)
	if _, err := file.ReadAt(last, info.Size()-1); err != nil {
		return false, err
	}
	return last[0] != '\n', nil
}

// HasBackup reports whether path.bak exists.
func HasBackup(path string) (bool, error) {
	_, err := os.Stat(BackupPath(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, svurlerrors.PersistFailed("stat backup", BackupPath(path), err)
}

// Restore renames path.bak over path. It returns ErrNoBackup if there is
// nothing to restore.
func Restore(path string) error {
	if err := os.Rename(BackupPath(path), path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoBackup, BackupPath(path))
		}
		return svurlerrors.PersistFailed("restore", path, err)
	}
	syncDir(filepath.Dir(path))
	return nil
}
