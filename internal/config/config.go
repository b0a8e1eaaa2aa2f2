package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppConfig      *AppConfig
	BrowserConfig  *BrowserConfig
	AnalyzerConfig *AnalyzerConfig
}

type AppConfig struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

type BrowserConfig struct {
	Headless    bool   `envconfig:"BROWSER_HEADLESS" default:"true"`
	SlowMo      int    `envconfig:"BROWSER_SLOW_MO" default:"0"`
	Timeout     int    `envconfig:"BROWSER_TIMEOUT" default:"30000"`
	UserDataDir string `envconfig:"BROWSER_USER_DATA_DIR" default:""`
}

type AnalyzerConfig struct {
	// LinkLimit caps how many visible links one analysis collects.
	LinkLimit int `envconfig:"ANALYZER_LINK_LIMIT" default:"20"`
	// RenderLimit caps buttons and links in the condensed text rendering.
	RenderLimit int `envconfig:"ANALYZER_RENDER_LIMIT" default:"10"`
	// ExtraIDPatterns extends the generated-identifier pattern table with
	// additional regular expressions, comma separated.
	ExtraIDPatterns []string `envconfig:"ANALYZER_EXTRA_ID_PATTERNS"`
}

func GetConfig() (*Config, error) {
	_ = godotenv.Load()

	var conf Config

	if err := envconfig.Process("", &conf); err != nil {
		return nil, fmt.Errorf("read config from env vars: %w", err)
	}

	return &conf, nil
}
