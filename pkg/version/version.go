package version

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var Version string

// Get returns the embedded release version without surrounding whitespace
func Get() string {
	return strings.TrimSpace(Version)
}
