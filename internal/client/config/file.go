package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/peersphere/peersphere/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is the DTO for JSON and YAML config files. Zero values leave
// the corresponding Config field untouched.
type FileConfig struct {
	APIBaseURL   string `json:"api_base_url" yaml:"api_base_url"`
	DBPath       string `json:"db_path" yaml:"db_path"`
	SessionScope string `json:"session_scope" yaml:"session_scope"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
	MessageLimit int    `json:"message_limit" yaml:"message_limit"`
}

// parseFile overlays cfg with the file named by -c/-config. Without the
// flag nothing happens. Read or decode errors panic.
func parseFile(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.DBPath != "" {
		cfg.DBPath = fc.DBPath
	}
	if fc.SessionScope != "" {
		cfg.SessionScope = SessionScope(fc.SessionScope)
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.MessageLimit != 0 {
		cfg.MessageLimit = fc.MessageLimit
	}
}
