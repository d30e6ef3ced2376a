package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/farmchainx/farmchainx/pkg/helper"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type (
	// SuperAdminConfig describes the ADMIN account created at startup
	SuperAdminConfig struct {
		Email    string `yaml:"email"`
		Password string `yaml:"password"`
		FullName string `yaml:"full_name"`
	}

	// LoggerConfig represents the logger configuration
	LoggerConfig struct {
		Level      string `yaml:"level"`       // debug, info, warn, error
		Format     string `yaml:"format"`      // json, console
		Output     string `yaml:"output"`      // stdout, file
		FilePath   string `yaml:"file_path"`   // path to log file when output is file
		MaxSize    int    `yaml:"max_size"`    // max size of log file in MB
		MaxBackups int    `yaml:"max_backups"` // max number of backup files
		MaxAge     int    `yaml:"max_age"`     // max age of backup files in days
		Compress   bool   `yaml:"compress"`    // whether to compress backup files
		Color      bool   `yaml:"color"`       // whether to use color in console output
		Stacktrace bool   `yaml:"stacktrace"`  // whether to include stacktrace in error logs
		TimeZone   string `yaml:"time_zone"`   // time zone for log timestamps, e.g., "UTC", default is local
		TimeFormat string `yaml:"time_format"` // time format for log timestamps, default is "2006-01-02 15:04:05"
	}
)

type Type interface {
	APIServerConfig
}

// defaulter is implemented by configs that fill unset fields after parsing
type defaulter interface {
	setDefaults()
}

var envPattern = regexp.MustCompile(`\$\{(\w+)(?::([^}]*))?\}`)

// LoadConfig reads filename (resolved through helper.GetCfgPath), expands
// ${KEY} and ${KEY:default} placeholders and applies defaults. A .env file
// in the working directory is loaded first when present.
func LoadConfig[T Type](filename string) (*T, string, error) {
	_ = godotenv.Load()

	cfgPath := helper.GetCfgPath(filename)
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, cfgPath, err
	}

	var cfg T
	if err := yaml.Unmarshal(resolveEnv(data), &cfg); err != nil {
		return nil, cfgPath, fmt.Errorf("failed to parse %s: %w", cfgPath, err)
	}
	if d, ok := any(&cfg).(defaulter); ok {
		d.setDefaults()
	}
	return &cfg, cfgPath, nil
}

func resolveEnv(content []byte) []byte {
	return envPattern.ReplaceAllFunc(content, func(match []byte) []byte {
		m := envPattern.FindSubmatch(match)
		if value, ok := os.LookupEnv(string(m[1])); ok {
			return []byte(value)
		}
		return m[2]
	})
}
