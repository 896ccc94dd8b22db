package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/hirepilot/hirepilot/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The request
// timeout is specified as a duration string like "90s" or "2m".
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	RequestTimeout string `json:"request_timeout"`
	ReportsDir     string `json:"reports_dir"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (flagx.JsonConfigFlags);
// when neither is set, no JSON is loaded. Read or unmarshal errors panic, as
// a broken explicit config file is not something to silently skip.
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.RequestTimeout)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if jc.ReportsDir != "" {
		cfg.ReportsDir = jc.ReportsDir
	}
}
