package config

import (
	"fmt"
	"net/url"
	"os"
)

// SessionScope selects where the session record lives.
type SessionScope string

const (
	// ScopeTab keeps the session in memory for the lifetime of the process,
	// the terminal counterpart of a browser tab.
	ScopeTab SessionScope = "tab"
	// ScopePersistent stores the session in the local database so it
	// survives restarts.
	ScopePersistent SessionScope = "persistent"
)

// Config holds runtime settings for the PeerSphere CLI.
type Config struct {
	APIBaseURL   string
	DBPath       string
	SessionScope SessionScope
	LogLevel     string
	MessageLimit int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api"
	c.DBPath = "peersphere.db"
	c.SessionScope = ScopeTab
	c.LogLevel = "info"
	c.MessageLimit = 50
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil {
		return fmt.Errorf("invalid api base url %q: %w", c.APIBaseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api base url %q: want http(s)://host[/path]", c.APIBaseURL)
	}
	if c.DBPath == "" {
		return fmt.Errorf("db path is empty")
	}
	switch c.SessionScope {
	case ScopeTab, ScopePersistent:
	default:
		return fmt.Errorf("unknown session scope %q", c.SessionScope)
	}
	if c.MessageLimit <= 0 {
		return fmt.Errorf("message limit must be positive, got %d", c.MessageLimit)
	}
	return nil
}

// LoadConfig constructs a Config from os.Args, see Load.
func LoadConfig() *Config {
	return Load(os.Args[1:])
}

// Load applies defaults, then the environment, the config file and finally
// the flags found in args. Later sources take precedence over earlier ones.
// Unreadable sources panic; the caller should recover if desired.
func Load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, args)
	parseFile(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
