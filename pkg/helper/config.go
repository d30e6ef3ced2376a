package helper

import (
	"os"
	"path/filepath"
)

const defaultCfgDir = "/etc/farmchainx"

// GetCfgPath returns the path to the configuration file.
//
// Lookup order:
// 1. an absolute filename is returned as is
// 2. ./{filename}
// 3. ./configs/{filename}
// 4. /etc/farmchainx/{filename}
func GetCfgPath(filename string) string {
	if filename == "" {
		panic("filename cannot be empty")
	}

	if filepath.IsAbs(filename) {
		return filename
	}

	if local := findInWorkDir(filename); local != "" {
		return local
	}

	return filepath.Join(defaultCfgDir, filename)
}

func findInWorkDir(filename string) string {
	wd, err := os.Getwd()
	if err != nil || wd == "" {
		return ""
	}

	for _, candidate := range []string{
		filepath.Join(wd, filename),
		filepath.Join(wd, "configs", filename),
	} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if abs, err := filepath.Abs(candidate); err == nil {
			return abs
		}
	}
	return ""
}
