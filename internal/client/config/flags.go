package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/zenora/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only -a, -d, -t and -l are parsed; other arguments (e.g. -c) are
// filtered out first so that each config stage owns its own flags.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the Zenora API")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "local data directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
