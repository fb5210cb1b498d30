// Package main is a thin CLI around pkg/pilot, demonstrating the library
// against an already-running Chrome/Chromium started with
// --remote-debugging-port.
package main

import (
	"os"
	"time"

	"github.com/mstoykov/envconfig"

	"github.com/corvane/pilot/pkg/pilot"
)

// cliConfig holds the environment-driven knobs layered under the library's
// own pilot.Config (§9's "cmd/pilot never imported by pkg/pilot" boundary:
// envconfig is read here, never inside the library).
type cliConfig struct {
	pilot.Config
	Endpoint string        `envconfig:"PILOT_ENDPOINT" default:"http://localhost:9222"`
	LogLevel string        `envconfig:"PILOT_LOG_LEVEL" default:"info"`
	Timeout  time.Duration `envconfig:"PILOT_CLI_TIMEOUT" default:"30s"`
}

func loadConfig() (cliConfig, error) {
	cfg := cliConfig{}
	env := make(map[string]string, len(os.Environ()))
	for _, kv := range os.Environ() {
		for i := 0; i < len(kv); i++ {
			if kv[i] == '=' {
				env[kv[:i]] = kv[i+1:]
				break
			}
		}
	}
	err := envconfig.Process("", &cfg, func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	})
	return cfg, err
}
