package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFrom_Defaults(t *testing.T) {
	s, err := LoadSettingsFrom(map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "console", s.Format)
	assert.Equal(t, ":8080", s.ListenAddr)
	assert.False(t, s.Debug)
	assert.Empty(t, s.ConstantsFile)
}

func TestLoadSettingsFrom_Overrides(t *testing.T) {
	s, err := LoadSettingsFrom(map[string]string{
		"NETTO_FORMAT":         "json",
		"NETTO_LISTEN_ADDR":    "127.0.0.1:9000",
		"NETTO_DEBUG":          "true",
		"NETTO_CONSTANTS_FILE": "../../testdata/constants.yaml",
	})
	require.NoError(t, err)
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, "127.0.0.1:9000", s.ListenAddr)
	assert.True(t, s.Debug)

	table, err := s.ConstantsTable()
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2025}, table.Years())
}

func TestLoadSettingsFrom_InvalidBool(t *testing.T) {
	_, err := LoadSettingsFrom(map[string]string{"NETTO_DEBUG": "maybe"})
	assert.Error(t, err)
}

func TestSettings_DefaultTable(t *testing.T) {
	table, err := Settings{}.ConstantsTable()
	require.NoError(t, err)
	assert.True(t, table.Supports(2024))
}

func TestLoadSettingsWithFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", "NETTO_FORMAT=csv\nNETTO_LISTEN_ADDR=:9999\n")
	t.Setenv("NETTO_LISTEN_ADDR", ":7000")

	s, err := LoadSettingsWithFile(path)
	require.NoError(t, err)
	assert.Equal(t, "csv", s.Format)
	assert.Equal(t, ":7000", s.ListenAddr, "process environment wins over the file")
}

func TestLoadSettingsWithFile_Missing(t *testing.T) {
	s, err := LoadSettingsWithFile(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.NotEmpty(t, s.ListenAddr)
}
