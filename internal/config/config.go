package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// MaxSlides is the hard cap on slides per generated slideshow.
const MaxSlides = 70

type Config struct {
	AI        AIConfig        `mapstructure:"ai"`
	Images    ImagesConfig    `mapstructure:"images"`
	Slideshow SlideshowConfig `mapstructure:"slideshow"`
	Watch     WatchConfig     `mapstructure:"watch"`
}

type AIConfig struct {
	ActiveProvider string                      `mapstructure:"active_provider"`
	Providers      map[string]ProviderSettings `mapstructure:"providers"`
}

type ProviderSettings struct {
	Driver      string  `mapstructure:"driver"` // gemini, openai, groq
	Key         string  `mapstructure:"key"`
	Endpoint    string  `mapstructure:"endpoint"`
	Model       string  `mapstructure:"model"`
	Temperature float64 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

// Active returns the settings of the configured provider. The driver defaults
// to the provider name so a bare key entry is enough.
func (c *AIConfig) Active() (ProviderSettings, error) {
	settings, ok := c.Providers[c.ActiveProvider]
	if !ok {
		return ProviderSettings{}, fmt.Errorf("ai provider %q is not configured", c.ActiveProvider)
	}
	if settings.Driver == "" {
		settings.Driver = c.ActiveProvider
	}
	return settings, nil
}

type ImagesConfig struct {
	UnsplashKey string `mapstructure:"unsplash_key"`
}

type SlideshowConfig struct {
	Slides     int    `mapstructure:"slides"`
	MaxBullets int    `mapstructure:"max_bullets"`
	OutputDir  string `mapstructure:"output_dir"`
}

type WatchConfig struct {
	Dir string `mapstructure:"dir"`
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not found, using system environment variables")
	}

	viper.SetConfigFile("config.yaml") // Support optional config.yaml
	viper.AutomaticEnv()

	// Environment variable mappings
	mappings := []struct {
		key, env string
	}{
		{"ai.active_provider", "AI_PROVIDER"},

		// AI Providers
		{"ai.providers.gemini.key", "GEMINI_KEY"},
		{"ai.providers.gemini.model", "GEMINI_MODEL"},
		{"ai.providers.openai.key", "OPENAI_API_KEY"},
		{"ai.providers.openai.model", "OPENAI_MODEL"},
		{"ai.providers.openai.endpoint", "OPENAI_BASE_URL"},
		{"ai.providers.groq.key", "GROQ_API_KEY"},
		{"ai.providers.groq.model", "GROQ_MODEL"},
		{"ai.providers.groq.endpoint", "GROQ_BASE_URL"},

		// Images
		{"images.unsplash_key", "UNSPLASH_ACCESS_KEY"},

		// Slideshow output
		{"slideshow.slides", "SLIDE_COUNT"},
		{"slideshow.max_bullets", "MAX_BULLETS"},
		{"slideshow.output_dir", "OUTPUT_DIR"},

		// Watch mode
		{"watch.dir", "WATCH_DIR"},
	}

	for _, m := range mappings {
		viper.BindEnv(m.key, m.env)
	}

	// Defaults
	viper.SetDefault("ai.active_provider", "gemini")
	viper.SetDefault("ai.providers.gemini.model", "gemini-2.5-flash-preview-09-2025")
	viper.SetDefault("ai.providers.groq.endpoint", "https://api.groq.com/openai/v1")
	viper.SetDefault("ai.providers.groq.model", "deepseek-r1-distill-llama-70b")
	viper.SetDefault("slideshow.slides", 10)
	viper.SetDefault("slideshow.max_bullets", 5)
	viper.SetDefault("slideshow.output_dir", ".")
	viper.SetDefault("watch.dir", "topics")

	if err := viper.ReadInConfig(); err != nil {
		// Ignore if config.yaml is missing
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.Slideshow.Slides < 1 {
		cfg.Slideshow.Slides = 1
	}
	if cfg.Slideshow.Slides > MaxSlides {
		cfg.Slideshow.Slides = MaxSlides
	}
	if cfg.Slideshow.MaxBullets < 1 {
		cfg.Slideshow.MaxBullets = 5
	}

	return &cfg, nil
}
