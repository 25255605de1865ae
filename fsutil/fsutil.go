// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jongio/script-core/echo"
)

// File permissions
const (
	// DirPermission is the default permission for creating directories (rwxr-x---)
	DirPermission = 0750
	// FilePermission is the default permission for creating files (rw-r--r--)
	FilePermission = 0644
)

// echoOp starts an echo line with the "fs" prefix and the operation name.
func echoOp(op string) *echo.Echo {
	return echo.New().
		Styled("fs", echo.BrightBlack).
		Styled(op, echo.Bold, echo.Cyan)
}

// echoPath appends a display-quoted path to an echo line.
func echoPath(e *echo.Echo, path string) *echo.Echo {
	return e.Styled(echo.Quote(path), echo.Bold, echo.Underline)
}

// Rename renames (moves) a file or directory.
func Rename(from, to string) error {
	echoPath(echoPath(echoOp("rename"), from).Put("->"), to).End()
	return os.Rename(from, to)
}

// Copy copies a regular file, returning the number of bytes copied.
// The destination is created or truncated with the source's permission
// bits.
func Copy(from, to string) (int64, error) {
	echoPath(echoPath(echoOp("copy"), from).Put("->"), to).End()

	src, err := os.Open(from)
	if err != nil {
		return 0, err
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return 0, err
	}

	dst, err := os.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	return n, err
}

// HardLink creates a hard link to an existing file.
func HardLink(original, link string) error {
	echoPath(echoPath(echoOp("hard_link"), original).Put("->"), link).End()
	return os.Link(original, link)
}

// CreateDir creates a single directory.
func CreateDir(path string) error {
	echoPath(echoOp("create_dir"), path).End()
	return os.Mkdir(path, DirPermission)
}

// CreateDirAll creates a directory along with any missing parents.
func CreateDirAll(path string) error {
	echoPath(echoOp("create_dir_all"), path).End()
	return os.MkdirAll(path, DirPermission)
}

// Stat returns file metadata.
func Stat(path string) (os.FileInfo, error) {
	echoPath(echoOp("stat"), path).End()
	return os.Stat(path)
}

// ReadDir lists a directory's entries.
func ReadDir(path string) ([]os.DirEntry, error) {
	echoPath(echoOp("read_dir"), path).End()
	return os.ReadDir(path)
}

// Read reads a file's contents.
func Read(path string) ([]byte, error) {
	echoPath(echoOp("read"), path).End()
	return os.ReadFile(path)
}

// ReadString reads a file's contents as a string.
func ReadString(path string) (string, error) {
	echoPath(echoOp("read_string"), path).End()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Write writes data to a file, creating it if necessary.
func Write(path string, data []byte) error {
	echoPath(echoOp("write").Putf("%d bytes", len(data)).Put("->"), path).End()
	return os.WriteFile(path, data, FilePermission)
}

// WriteString writes a string to a file, creating it if necessary.
func WriteString(path, data string) error {
	return Write(path, []byte(data))
}

// RemoveFile removes a single file.
func RemoveFile(path string) error {
	echoPath(echoOp("remove_file"), path).End()
	return os.Remove(path)
}

// RemoveDir removes an empty directory.
func RemoveDir(path string) error {
	echoPath(echoOp("remove_dir"), path).End()
	return os.Remove(path)
}

// RemoveDirAll removes a directory and everything under it.
func RemoveDirAll(path string) error {
	echoPath(echoOp("remove_dir_all"), path).End()
	return os.RemoveAll(path)
}

// AtomicWriteFile writes data to a file atomically: the bytes go to a
// temp file in the same directory, which is then renamed over the
// target, so the target is never left in a partial state.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	echoPath(echoOp("atomic_write").Putf("%d bytes", len(data)).Put("->"), path).End()
	return atomicWrite(path, data, perm)
}

func atomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = tmpFile.Close() }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// Set permissions before the rename so the final file never appears
	// with the temp file's mode.
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
