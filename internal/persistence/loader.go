package persistence

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	svurlerrors "github.com/lojhan/svurl/internal/errors"
)

const maxLineSize = 1024 * 1024

// LoadSet reads the newline-delimited file at path into an ordered list of
// distinct members. A missing file is created empty. Any other access failure
// is returned as a fatal FileAccess error.
func LoadSet(path string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := checkReadable(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, svurlerrors.FileAccess(path, err)
		}
		if err := createEmpty(path); err != nil {
			return nil, svurlerrors.FileAccess(path, err)
		}
		logger.Info("created set file", zap.String("path", path))
		return []string{}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, svurlerrors.FileAccess(path, err)
	}
	defer file.Close()

	members, err := readMembers(file)
	if err != nil {
		return nil, svurlerrors.FileAccess(path, err)
	}

	logger.Debug("loaded set file", zap.String("path", path), zap.Int("members", len(members)))
	return members, nil
}

func readMembers(file *os.File) ([]string, error) {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	seen := make(map[string]struct{})
	members := make([]string, 0)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		// Blank lines are never members, so a stray empty line cannot be
		// selected or opened.
		if line == "" {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		members = append(members, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read set file: %w", err)
	}
	return members, nil
}

func createEmpty(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create set file: %w", err)
	}
	return file.Close()
}
