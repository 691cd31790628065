package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigChannel(t *testing.T) {
	t.Parallel()

	cfg := Config{Topic: "consolidated-track.v1", Source: "1"}
	assert.Equal(t, "consolidated-track.v1:1", cfg.Channel())

	cfg = Config{Topic: "tracks", Source: "cam-2"}
	assert.Equal(t, "tracks:cam-2", cfg.Channel())
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.Equal(t, "consolidated-track.v1", cfg.Topic)
	assert.Equal(t, "1", cfg.Source)
	assert.Equal(t, "consolidated-track.v1:1", cfg.Channel())
}
