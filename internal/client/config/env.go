package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/peersphere/peersphere/internal/flagx"
)

const envPrefix = "PEERSPHERE_"

// parseEnv overlays cfg with PEERSPHERE_* values. A dotenv file (-e, or
// ./.env) supplies values the process environment does not define; the
// process environment itself is never modified.
func parseEnv(cfg *Config, args []string) {
	values := map[string]string{}

	envFile := flagx.EnvFileFlag(args)
	explicit := envFile != ""
	if !explicit {
		envFile = ".env"
	}

	fileValues, err := godotenv.Read(envFile)
	switch {
	case err == nil:
		values = fileValues
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		panic(err)
	}

	lookup := func(name string) (string, bool) {
		if v, ok := os.LookupEnv(envPrefix + name); ok {
			return v, true
		}
		v, ok := values[envPrefix+name]
		return v, ok
	}

	if v, ok := lookup("API_BASE_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup("DB_PATH"); ok && v != "" {
		cfg.DBPath = v
	}
	if v, ok := lookup("SESSION_SCOPE"); ok && v != "" {
		cfg.SessionScope = SessionScope(v)
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup("MESSAGE_LIMIT"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		cfg.MessageLimit = n
	}
}
