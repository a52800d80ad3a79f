package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/flagx"
	"github.com/dmitrijs2005/taskkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify durations either as strings like "3s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN          string         `json:"database_dsn"`
	DefaultTheme         string         `json:"default_theme"`
	ErrorDisplayDuration timex.Duration `json:"error_display_duration"`
}

// parseJson overlays cfg with values loaded from a JSON file. The file path
// comes from the -c or -config flags via flagx.JsonConfigFlags(); when no
// path is given, nothing is loaded. Empty JSON fields leave the current
// value untouched. Panics on read or unmarshal errors.
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

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.DefaultTheme != "" {
		cfg.DefaultTheme = jc.DefaultTheme
	}
	if jc.ErrorDisplayDuration.Duration != 0 {
		cfg.ErrorDisplayDuration = time.Duration(jc.ErrorDisplayDuration.Duration)
	}
}
