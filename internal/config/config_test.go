package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/labelwiz/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 5*time.Minute, cfg.ReminderInterval)
	assert.Equal(t, 10, cfg.MaxColumnsWarning)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labelwiz.yaml")
	content := `
language: zh
reminder_interval: 90s
max_options_warning: "4"
metrics_addr: ":2112"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "zh", cfg.Language)
	assert.Equal(t, 90*time.Second, cfg.ReminderInterval)
	assert.Equal(t, 4, cfg.MaxOptionsWarning)
	assert.Equal(t, 10, cfg.MaxColumnsWarning, "unset keys keep defaults")
	assert.Equal(t, ":2112", cfg.MetricsAddr)
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"unknown key", map[string]any{"colour": "blue"}},
		{"bad language", map[string]any{"language": "fr"}},
		{"zero interval", map[string]any{"reminder_interval": "0s"}},
		{"bad duration", map[string]any{"reminder_interval": "soon"}},
		{"negative columns", map[string]any{"max_columns_warning": -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := config.Default()
			out, err := config.Decode(tt.raw, base)
			assert.Error(t, err)
			assert.Equal(t, base, out)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
