package ports

import (
	"os"
)

// FileSystem provides the file system operations the hardening steps need.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	Exists(path string) bool
	Remove(path string) error
	MkdirAll(path string, perm os.FileMode) error
	Rename(oldPath, newPath string) error
	CopyFile(src, dest string) error
	Readlink(path string) (string, error)
	Symlink(target, link string) error
}
