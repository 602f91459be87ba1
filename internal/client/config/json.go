package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mbelyaev/bookatable/internal/flagx"
	"github.com/mbelyaev/bookatable/internal/timex"
)

// JsonConfig is the JSON-file counterpart of Config. Interval fields use
// timex.Duration so both "10s" and integer nanoseconds parse.
type JsonConfig struct {
	ServerBaseURL  string         `json:"server_base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c or -config flags. If neither flag is set, nothing is loaded. A file
// that cannot be read or parsed causes a panic.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerBaseURL = c.ServerBaseURL
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
