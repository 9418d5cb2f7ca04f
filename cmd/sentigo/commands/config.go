package commands

import (
	"errors"

	"github.com/spf13/viper"
)

type Config struct {
	Train      string          `mapstructure:"train"`
	Test       string          `mapstructure:"test"`
	InputField string          `mapstructure:"input_field"`
	LabelField string          `mapstructure:"label_field"`
	Provider   string          `mapstructure:"provider"`
	Format     string          `mapstructure:"format"`
	Output     string          `mapstructure:"output"`
	Width      int             `mapstructure:"width"`
	FewShot    int             `mapstructure:"few_shot"`
	RPS        float64         `mapstructure:"rps"`
	LogFile    string          `mapstructure:"log_file"`
	Model      ModelConfig     `mapstructure:"model"`
	OpenAI     OpenAIConfig    `mapstructure:"openai"`
	Anthropic  AnthropicConfig `mapstructure:"anthropic"`
	Gemini     GeminiConfig    `mapstructure:"gemini"`
	Ollama     OllamaConfig    `mapstructure:"ollama"`
}

type ModelConfig struct {
	Name         string `mapstructure:"name"`
	MockResponse string `mapstructure:"mock_response"`
}

type OpenAIConfig struct {
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
}

type AnthropicConfig struct {
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
	MaxTokens      int    `mapstructure:"max_tokens"`
}

type GeminiConfig struct {
	Model          string `mapstructure:"model"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
}

type OllamaConfig struct {
	Model          string `mapstructure:"model"`
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries"`
	BackoffMillis  int    `mapstructure:"backoff_millis"`
}

func LoadConfig(path string) (Config, error) {
	cfg := Config{}
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".sentigo")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
