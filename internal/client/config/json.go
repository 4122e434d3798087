package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/zenora/internal/flagx"
	"github.com/dmitrijs2005/zenora/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent
// fields leave the corresponding Config value untouched.
type JsonConfig struct {
	ServerURL      *string         `json:"server_url"`
	DataDir        *string         `json:"data_dir"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	RetryDelay     *timex.Duration `json:"retry_delay"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without the flag it does nothing; read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RetryDelay != nil {
		cfg.RetryDelay = jc.RetryDelay.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
