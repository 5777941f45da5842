// SPDX-License-Identifier: EPL-2.0

package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg := ConfigFromEnv()

	assert.Equal(t, 44100, cfg.SampleRate)
	assert.Equal(t, 2048, cfg.BufferCapacity)
	assert.True(t, cfg.Stereo)
	assert.Equal(t, 0, cfg.Channel)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("PLAYDECK_SAMPLE_RATE", "48000")
	t.Setenv("PLAYDECK_BUFFER_CAPACITY", "4096")
	t.Setenv("PLAYDECK_STEREO", "false")
	t.Setenv("PLAYDECK_CHANNEL", "2")
	t.Setenv("PLAYDECK_LOG_LEVEL", "debug")

	cfg := ConfigFromEnv()

	assert.Equal(t, 48000, cfg.SampleRate)
	assert.Equal(t, 4096, cfg.BufferCapacity)
	assert.False(t, cfg.Stereo)
	assert.Equal(t, 2, cfg.Channel)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfigFromEnv_MalformedKeepsDefaults(t *testing.T) {
	t.Setenv("PLAYDECK_SAMPLE_RATE", "not-a-number")
	t.Setenv("PLAYDECK_STEREO", "maybe")

	cfg := ConfigFromEnv()

	assert.Equal(t, 44100, cfg.SampleRate)
	assert.True(t, cfg.Stereo)
}
