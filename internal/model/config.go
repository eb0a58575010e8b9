package model

import (
	"slices"
	"time"
)

// Config holds the complete jorfcheck configuration
type Config struct {
	HTTP    HTTPConfig    `yaml:"http" mapstructure:"http"`
	Gazette GazetteConfig `yaml:"gazette" mapstructure:"gazette"`
	Match   MatchConfig   `yaml:"match" mapstructure:"match"`
	OCR     OCRConfig     `yaml:"ocr" mapstructure:"ocr"`
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// HTTPConfig configures the document fetcher
type HTTPConfig struct {
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"` // 0 disables the client timeout
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	InsecureTLS   bool          `yaml:"insecure_tls" mapstructure:"insecure_tls"`
	HTTPProxy     string        `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy" mapstructure:"no_proxy"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// GazetteConfig describes where the Journal Officiel listings live
type GazetteConfig struct {
	BaseURL     string   `yaml:"base_url" mapstructure:"base_url"`
	ListingPath string   `yaml:"listing_path" mapstructure:"listing_path"` // fmt pattern taking the year
	Keywords    []string `yaml:"keywords" mapstructure:"keywords"`
	Years       []int    `yaml:"years" mapstructure:"years"`
}

// MatchConfig configures the line matcher
type MatchConfig struct {
	SurnameThreshold   int    `yaml:"surname_threshold" mapstructure:"surname_threshold"`
	GivenNameThreshold int    `yaml:"given_name_threshold" mapstructure:"given_name_threshold"`
	Scorer             string `yaml:"scorer" mapstructure:"scorer"` // partial_ratio, levenshtein
}

// OCRConfig configures page rendering and the OCR engine
type OCRConfig struct {
	Engine        string       `yaml:"engine" mapstructure:"engine"` // tesseract, gosseract, openai
	TesseractPath string       `yaml:"tesseract_path" mapstructure:"tesseract_path"`
	TessdataDir   string       `yaml:"tessdata_dir" mapstructure:"tessdata_dir"`
	Languages     []string     `yaml:"languages" mapstructure:"languages"`
	PdftoppmPath  string       `yaml:"pdftoppm_path" mapstructure:"pdftoppm_path"`
	DPI           int          `yaml:"dpi" mapstructure:"dpi"`
	OpenAI        OpenAIConfig `yaml:"openai" mapstructure:"openai"`
}

// OpenAIConfig configures the vision OCR engine. Any OpenAI-compatible endpoint works.
type OpenAIConfig struct {
	APIKey    string `yaml:"api_key" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// ServerConfig configures the web form
type ServerConfig struct {
	Addr         string        `yaml:"addr" mapstructure:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// LogConfig configures the structured logger
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text, json
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      2 * time.Minute,
			UserAgent:    "jorfcheck/0.1 (+https://github.com/ppiankov/jorfcheck)",
			MaxBodyBytes: 64 << 20,
		},
		Gazette: GazetteConfig{
			BaseURL:     "https://www.legifrance.gouv.fr",
			ListingPath: "/jorf/jorf-%d",
			Keywords:    []string{"naturalisation", "décret"},
			Years:       []int{2025, 2024, 2023, 2022, 2021, 2020},
		},
		Match: MatchConfig{
			SurnameThreshold:   90,
			GivenNameThreshold: 80,
			Scorer:             "partial_ratio",
		},
		OCR: OCRConfig{
			Engine:        "tesseract",
			TesseractPath: "/usr/bin/tesseract",
			PdftoppmPath:  "/usr/bin/pdftoppm",
			DPI:           200,
			OpenAI: OpenAIConfig{
				Model:     "gpt-4o-mini",
				MaxTokens: 4096,
			},
		},
		Server: ServerConfig{
			Addr:         ":8501",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 15 * time.Minute,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// YearAllowed reports whether year is one of the configured publication years
func (c GazetteConfig) YearAllowed(year int) bool {
	return slices.Contains(c.Years, year)
}
