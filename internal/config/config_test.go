package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "valid config",
			config:  Config{Gemini: GeminiConfig{APIKey: "k"}},
			wantErr: false,
		},
		{
			name:    "missing api key",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "command engine without command",
			config: Config{
				Gemini:   GeminiConfig{APIKey: "k"},
				Narrator: NarratorConfig{Engine: EngineCommand},
			},
			wantErr: true,
		},
		{
			name: "command engine with command",
			config: Config{
				Gemini:   GeminiConfig{APIKey: "k"},
				Narrator: NarratorConfig{Engine: EngineCommand, Command: "espeak-ng"},
			},
			wantErr: false,
		},
		{
			name: "unknown engine",
			config: Config{
				Gemini:   GeminiConfig{APIKey: "k"},
				Narrator: NarratorConfig{Engine: "festival"},
			},
			wantErr: true,
		},
		{
			name: "negative bullet count",
			config: Config{
				Gemini:     GeminiConfig{APIKey: "k"},
				Summarizer: SummarizerConfig{BulletCount: -1},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{Gemini: GeminiConfig{APIKey: "k"}}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, EngineGemini, cfg.Narrator.Engine)
	assert.Equal(t, 50, cfg.Summarizer.BulletCount)
	assert.Equal(t, "en", cfg.Transcript.Language)
	assert.Equal(t, "audio_outputs", cfg.Paths.Audio)
	assert.Equal(t, ".", cfg.Paths.Reports)
	assert.Equal(t, "YouTube Video Analysis", cfg.Report.Title)
	assert.False(t, cfg.Pipeline.RequireAudio)
}

func TestLoad(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
gemini:
  api_key: "file-key"
  model: "gemini-2.5-pro"

summarizer:
  bullet_count: 20

narrator:
  engine: "command"
  command: "espeak-ng"
  args: ["-w", "{output}", "--stdin"]

paths:
  reports: "out/reports"
  audio: "out/audio"

pipeline:
  require_audio: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 20, cfg.Summarizer.BulletCount)
	assert.Equal(t, []string{"-w", "{output}", "--stdin"}, cfg.Narrator.Args)
	assert.Equal(t, "out/audio", cfg.Paths.Audio)
	assert.True(t, cfg.Pipeline.RequireAudio)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("LOG_LEVEL", "debug")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("gemini:\n  api_key: file-key\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "google-key", cfg.Gemini.APIKey)
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
