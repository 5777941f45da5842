// SPDX-License-Identifier: EPL-2.0

package player

import (
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Config collects the runtime knobs for wiring a playback pipeline.
// Zero-config deployments run on DefaultConfig; everything can be
// overridden through PLAYDECK_* environment variables.
type Config struct {
	// SampleRate is the fallback rate handed to the sink before the first
	// track declares its own.
	SampleRate int

	// BufferCapacity is the per-buffer sample count of the sink adapter.
	BufferCapacity int

	// Stereo selects interleaved stereo output; mono keeps the left
	// channel only.
	Stereo bool

	// Channel is the hardware output channel handed to the raw sink.
	Channel int

	// LogLevel is a logrus level name ("info", "debug", ...).
	LogLevel string
}

func DefaultConfig() Config {
	return Config{
		SampleRate:     44100,
		BufferCapacity: 2048,
		Stereo:         true,
		Channel:        0,
		LogLevel:       "info",
	}
}

// ConfigFromEnv reads overrides from the environment on top of the
// defaults. Unset or malformed variables keep their default.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	cfg.SampleRate = envInt("PLAYDECK_SAMPLE_RATE", cfg.SampleRate)
	cfg.BufferCapacity = envInt("PLAYDECK_BUFFER_CAPACITY", cfg.BufferCapacity)
	cfg.Stereo = envBool("PLAYDECK_STEREO", cfg.Stereo)
	cfg.Channel = envInt("PLAYDECK_CHANNEL", cfg.Channel)

	if v := os.Getenv("PLAYDECK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}

// ApplyLogLevel configures the global logrus level from the config.
// An unparseable level name is left as-is.
func (c Config) ApplyLogLevel() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.WithField("level", c.LogLevel).Warn("unknown log level")
		return
	}
	logrus.SetLevel(level)
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}

	return b
}
