package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw    string
		want   zerolog.Level
		wantOK bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
	}
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")

	logger, closer, err := New(Options{Level: "debug", File: path, NoColor: true})
	require.NoError(t, err)
	logger.Debug().Str("item", "3").Msg("drag start")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "drag start")
	assert.Contains(t, string(data), "item=3")
}

func TestNew_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	_, closer, err := New(Options{Level: "off", File: path})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	assert.NoFileExists(t, path)

	_, _, err = New(Options{Level: "loud", File: path})
	assert.Error(t, err)
}

func TestNewWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, zerolog.WarnLevel, true)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
