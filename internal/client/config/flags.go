package config

import (
	"flag"
	"io"

	"github.com/peersphere/peersphere/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the REST API
//	-d string   local database path
//	-s string   session scope
//	-l string   log level
//	-m int      messages fetched per group
//
// Only these flags are considered; args is filtered with flagx.FilterArgs
// so the config and env file flags do not trip the parser.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-l", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the PeerSphere API")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database path")
	scope := fs.String("s", string(cfg.SessionScope), "session scope (tab|persistent)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.IntVar(&cfg.MessageLimit, "m", cfg.MessageLimit, "messages fetched per group")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionScope = SessionScope(*scope)
}
