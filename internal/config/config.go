package config

import "fmt"

type Config struct {
	Gemini     GeminiConfig     `yaml:"gemini"`
	Transcript TranscriptConfig `yaml:"transcript"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Report     ReportConfig     `yaml:"report"`
	Narrator   NarratorConfig   `yaml:"narrator"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
	Paths      PathsConfig      `yaml:"paths"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

type GeminiConfig struct {
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	TTSModel string `yaml:"tts_model"`
}

type TranscriptConfig struct {
	Language string `yaml:"language"`
}

type SummarizerConfig struct {
	BulletCount int `yaml:"bullet_count"`
}

type ReportConfig struct {
	Title     string `yaml:"title"`
	WriteDocx bool   `yaml:"write_docx"`
}

type NarratorConfig struct {
	Engine        string   `yaml:"engine"`
	Voice         string   `yaml:"voice"`
	Command       string   `yaml:"command"`
	Args          []string `yaml:"args"`
	Extension     string   `yaml:"extension"`
	MaxChunkChars int      `yaml:"max_chunk_chars"`
}

type PipelineConfig struct {
	RequireAudio bool `yaml:"require_audio"`
}

type PathsConfig struct {
	Reports string `yaml:"reports"`
	Audio   string `yaml:"audio"`
	Input   string `yaml:"input"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

const (
	EngineGemini  = "gemini"
	EngineCommand = "command"
)

func (c *Config) Validate() error {
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("gemini.api_key is required (or set GEMINI_API_KEY)")
	}

	switch c.Narrator.Engine {
	case "":
		c.Narrator.Engine = EngineGemini
	case EngineGemini:
	case EngineCommand:
		if c.Narrator.Command == "" {
			return fmt.Errorf("narrator.command is required for the command engine")
		}
	default:
		return fmt.Errorf("narrator.engine %q is not supported", c.Narrator.Engine)
	}

	if c.Summarizer.BulletCount < 0 {
		return fmt.Errorf("summarizer.bullet_count must not be negative")
	}

	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.TTSModel == "" {
		c.Gemini.TTSModel = "gemini-2.5-flash-preview-tts"
	}
	if c.Transcript.Language == "" {
		c.Transcript.Language = "en"
	}
	if c.Summarizer.BulletCount == 0 {
		c.Summarizer.BulletCount = 50
	}
	if c.Report.Title == "" {
		c.Report.Title = "YouTube Video Analysis"
	}
	if c.Narrator.Voice == "" {
		c.Narrator.Voice = "Kore"
	}
	if c.Narrator.Extension == "" {
		c.Narrator.Extension = "wav"
	}
	if c.Narrator.MaxChunkChars == 0 {
		c.Narrator.MaxChunkChars = 4000
	}
	if c.Paths.Reports == "" {
		c.Paths.Reports = "."
	}
	if c.Paths.Audio == "" {
		c.Paths.Audio = "audio_outputs"
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
