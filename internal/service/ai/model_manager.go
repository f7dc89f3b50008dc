package ai

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/kapu/insta-insight-go/internal/util"
)

// ModelManager routes JSON generation to Gemini, falling back to OpenAI when
// Gemini fails and a fallback key is configured.
type ModelManager struct {
	gemini         *GeminiProvider
	openai         *OpenAIProvider
	logger         *zap.Logger
	enableFallback bool
}

type ModelManagerConfig struct {
	GeminiAPIKey       string
	OpenAIAPIKey       string
	DefaultGeminiModel string
	DefaultOpenAIModel string
	EnableFallback     bool
}

func NewModelManager(ctx context.Context, cfg ModelManagerConfig, logger *zap.Logger) (*ModelManager, error) {
	geminiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	defaultGemini := cfg.DefaultGeminiModel
	if defaultGemini == "" {
		defaultGemini = "gemini-2.5-flash"
	}

	defaultOpenAI := cfg.DefaultOpenAIModel
	if defaultOpenAI == "" {
		defaultOpenAI = "gpt-4.1-mini"
	}

	mm := &ModelManager{
		gemini:         NewGeminiProvider(geminiClient, defaultGemini, logger),
		logger:         logger,
		enableFallback: cfg.EnableFallback && cfg.OpenAIAPIKey != "",
	}
	logger.Info("Gemini provider ready", zap.String("model", mm.gemini.DefaultModel()))

	if cfg.OpenAIAPIKey != "" {
		mm.openai = NewOpenAIProvider(cfg.OpenAIAPIKey, defaultOpenAI, logger)
		logger.Info("OpenAI fallback enabled", zap.String("model", defaultOpenAI))
	} else {
		logger.Info("OpenAI fallback disabled (no API key)")
	}

	return mm, nil
}

// GenerateJSON renders prompt through the provider chain and decodes the
// (possibly fence-wrapped) response into dest.
func (mm *ModelManager) GenerateJSON(ctx context.Context, prompt string, preset ModelPreset, dest any, opts *GenerateOptions) (*GenerateMetadata, error) {
	if opts == nil {
		opts = &GenerateOptions{}
	}
	opts.JSONMode = true

	result, err := mm.gemini.Generate(ctx, prompt, preset, opts)
	var metadata *GenerateMetadata
	if err == nil {
		metadata = &GenerateMetadata{Provider: mm.gemini.Name(), Model: result.Model}
	} else {
		if !mm.enableFallback || mm.openai == nil {
			return nil, err
		}

		mm.logger.Warn("Gemini generation failed, trying OpenAI", zap.Error(err))
		result, err = mm.openai.Generate(ctx, prompt, preset, opts)
		if err != nil {
			return nil, fmt.Errorf("all generation providers failed: %w", err)
		}
		metadata = &GenerateMetadata{Provider: mm.openai.Name(), Model: result.Model, UsedFallback: true}
	}

	if err := DecodeModelJSON(result.Text, dest); err != nil {
		preview := util.TruncateString(StripCodeFence(result.Text), 200)
		mm.logger.Error("Failed to decode model response",
			zap.String("provider", metadata.Provider),
			zap.Error(err),
			zap.String("response_preview", preview),
		)
		return nil, fmt.Errorf("invalid JSON from %s: %w", metadata.Provider, err)
	}

	return metadata, nil
}

// ProviderStatus reports reachability of the configured providers. Pings run
// concurrently since neither depends on the other.
type ProviderStatus struct {
	Gemini bool
	OpenAI bool
}

func (mm *ModelManager) CheckProviders(ctx context.Context) ProviderStatus {
	var status ProviderStatus
	var wg conc.WaitGroup

	wg.Go(func() {
		status.Gemini = mm.gemini.Ping(ctx)
	})
	if mm.openai != nil {
		wg.Go(func() {
			status.OpenAI = mm.openai.Ping(ctx)
		})
	}
	wg.Wait()

	mm.logger.Debug("Provider health check",
		zap.Bool("gemini", status.Gemini),
		zap.Bool("openai", status.OpenAI),
	)

	return status
}
