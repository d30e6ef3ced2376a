package helper

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const defaultPIDPath = "/var/run/farmchainx-apiserver.pid"

// GetPIDPath resolves the PID file location. Relative names resolve against
// the working directory when their parent directory exists.
func GetPIDPath(filename string) string {
	if filename == "" {
		return defaultPIDPath
	}
	if filepath.IsAbs(filename) {
		return filename
	}

	wd, err := os.Getwd()
	if err != nil || wd == "" {
		return defaultPIDPath
	}
	abs, err := filepath.Abs(filepath.Join(wd, filename))
	if err != nil {
		return defaultPIDPath
	}
	if _, err := os.Stat(filepath.Dir(abs)); err != nil {
		return defaultPIDPath
	}
	return abs
}

// WritePID writes the current process id to path, creating parent directories.
func WritePID(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create PID directory: %w", err)
	}
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())+"\n"), 0644)
}

// ReadPID returns the process id stored at path.
func ReadPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(string(data)))
}

// RemovePID deletes the PID file; a missing file is not an error.
func RemovePID(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
