package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9090,
		"database_url": "postgres://localhost/gigbridge",
		"extractor_url": "http://extractor:8000",
		"top_skills_limit": 5,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/gigbridge", cfg.DatabaseURL)
	assert.Equal(t, "http://extractor:8000", cfg.ExtractorURL)
	assert.Equal(t, 5, cfg.TopSkillsLimit)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"port": `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"zero value", Config{}, false},
		{"valid port", Config{Port: 8080}, false},
		{"negative port", Config{Port: -1}, true},
		{"port too large", Config{Port: 70000}, true},
		{"negative top skills", Config{TopSkillsLimit: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000}
	defaults := Config{
		Port:         8080,
		DatabaseURL:  "postgres://default",
		ExtractorURL: "http://default-extractor",
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, 9000, merged.Port, "explicit value wins")
	assert.Equal(t, "postgres://default", merged.DatabaseURL)
	assert.Equal(t, "http://default-extractor", merged.ExtractorURL)
	assert.Equal(t, 3, merged.TopSkillsLimit, "built-in default applies")
}

func TestMergeWithDefaults_TopSkillsLimitFromDefaults(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{TopSkillsLimit: 7})

	assert.Equal(t, 7, merged.TopSkillsLimit)
}

func TestMergeWithDefaults_Port(t *testing.T) {
	tests := []struct {
		name     string
		explicit int
		file     int
		want     int
	}{
		{"flag wins over file", 9000, 9090, 9000},
		{"file applies when flag unset", 0, 9090, 9090},
		{"built-in default when neither set", 0, 0, DefaultPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := (&Config{Port: tt.explicit}).MergeWithDefaults(Config{Port: tt.file})
			assert.Equal(t, tt.want, merged.Port)
		})
	}
}
