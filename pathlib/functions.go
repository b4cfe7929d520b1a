package pathlib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/disc0nn3ct/SAST-RPA/common"
)

func Abs(path string) (string, error) {
	fullpath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(fullpath), nil
}

func Exists(pathname string) bool {
	_, err := os.Stat(pathname)
	return err == nil
}

func IsFile(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && stat.Mode().IsRegular()
}

func IsDir(pathname string) bool {
	stat, err := os.Stat(pathname)
	return err == nil && stat.IsDir()
}

// EnsureDirectory makes sure that the given directory exists, creating
// missing parents as needed, and returns its absolute form.
func EnsureDirectory(directory string) (string, error) {
	fullpath, err := Abs(directory)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(fullpath, 0o755); err != nil {
		return "", fmt.Errorf("could not create directory %q: %w", fullpath, err)
	}
	return fullpath, nil
}

func WriteFile(filename string, data []byte, mode os.FileMode) error {
	common.Trace("Writing file %q (%d bytes)", filename, len(data))
	return os.WriteFile(filename, data, mode)
}
