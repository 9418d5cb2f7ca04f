package commands

import (
	"fmt"
	"time"

	"sentigo/pkg/classify"
	"sentigo/pkg/core"
	"sentigo/pkg/model"
	"sentigo/pkg/observe"
)

func buildModel(provider, modelName, mockResponse string) (core.Model, error) {
	switch provider {
	case "", "mock":
		return model.MockModel{NameValue: modelName, ResponseText: mockResponse}, nil
	case "openai":
		m, err := model.NewOpenAIModelFromEnv(modelName)
		if err != nil {
			return nil, err
		}
		applyRetryConfig(&m.Timeout, &m.MaxRetries, &m.Backoff,
			appConfig.OpenAI.TimeoutSeconds, appConfig.OpenAI.MaxRetries, appConfig.OpenAI.BackoffMillis)
		return m, nil
	case "anthropic":
		m, err := model.NewAnthropicModelFromEnv(modelName)
		if err != nil {
			return nil, err
		}
		applyRetryConfig(&m.Timeout, &m.MaxRetries, &m.Backoff,
			appConfig.Anthropic.TimeoutSeconds, appConfig.Anthropic.MaxRetries, appConfig.Anthropic.BackoffMillis)
		if appConfig.Anthropic.MaxTokens > 0 {
			m.MaxTokens = appConfig.Anthropic.MaxTokens
		}
		return m, nil
	case "gemini":
		m, err := model.NewGeminiModelFromEnv(modelName)
		if err != nil {
			return nil, err
		}
		applyRetryConfig(&m.Timeout, &m.MaxRetries, &m.Backoff,
			appConfig.Gemini.TimeoutSeconds, appConfig.Gemini.MaxRetries, appConfig.Gemini.BackoffMillis)
		return m, nil
	case "ollama":
		m, err := model.NewOllamaModel(appConfig.Ollama.BaseURL, modelName)
		if err != nil {
			return nil, err
		}
		applyRetryConfig(&m.Timeout, &m.MaxRetries, &m.Backoff,
			appConfig.Ollama.TimeoutSeconds, appConfig.Ollama.MaxRetries, appConfig.Ollama.BackoffMillis)
		return m, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

func applyRetryConfig(timeout *time.Duration, maxRetries *int, backoff *time.Duration, timeoutSeconds, retries, backoffMillis int) {
	if timeoutSeconds > 0 {
		*timeout = time.Duration(timeoutSeconds) * time.Second
	}
	if retries > 0 {
		*maxRetries = retries
	}
	if backoffMillis > 0 {
		*backoff = time.Duration(backoffMillis) * time.Millisecond
	}
}

// buildPredictor wires a model and the prompt log observer into a predictor.
// When fewShot is positive the first fewShot training examples become static
// demonstrations.
func buildPredictor(provider, modelName, mockResponse string, fewShot int, demos []core.Example) (core.Predictor, error) {
	m, err := buildModel(provider, modelName, mockResponse)
	if err != nil {
		return nil, err
	}
	observer := observe.NewLogObserver(logger)

	if fewShot > 0 {
		if len(demos) == 0 {
			return nil, fmt.Errorf("few-shot prediction requires a training set")
		}
		if fewShot > len(demos) {
			fewShot = len(demos)
		}
		return classify.FewShot{
			Model:    m,
			Observer: observer,
			Demos:    demos[:fewShot],
		}, nil
	}

	return classify.Classifier{
		Model:    m,
		Observer: observer,
	}, nil
}
