package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	require.NoError(t, c.Load(nil))
	assert.True(t, c.UseDenseBitmap)
	assert.False(t, c.UseBitExtractIntrinsic)
	assert.Equal(t, 3, c.EmptyRow)
	assert.Equal(t, 3, c.EmptyCol)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadOverridesFromArgs(t *testing.T) {
	var c Config
	require.NoError(t, c.Load([]string{
		"-use-dense-bitmap=false",
		"-empty-row=2",
		"-empty-col=3",
		"-log-level=debug",
	}))
	assert.False(t, c.UseDenseBitmap)
	assert.Equal(t, 2, c.EmptyRow)
	assert.Equal(t, 3, c.EmptyCol)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestFilterConfigTracksUseDenseBitmap(t *testing.T) {
	c := Config{UseDenseBitmap: true}
	assert.False(t, c.FilterConfig().ForceHashSet)

	c.UseDenseBitmap = false
	assert.True(t, c.FilterConfig().ForceHashSet)
}

func TestZerologLevelParsesAndFallsBack(t *testing.T) {
	c := Config{LogLevel: "warn"}
	assert.Equal(t, zerolog.WarnLevel, c.ZerologLevel())

	c.LogLevel = "not-a-level"
	assert.Equal(t, zerolog.InfoLevel, c.ZerologLevel())
}
