package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/kapu/insta-insight-go/internal/config"
	"github.com/kapu/insta-insight-go/internal/service/ai"
	"github.com/kapu/insta-insight-go/internal/service/apify"
	"github.com/kapu/insta-insight-go/internal/web"
)

// Container bundles the assembled services behind the HTTP surface.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Handlers *web.Handlers

	Scraper  *apify.ScraperService
	Analyzer *ai.AnalyzerService
	Models   *ai.ModelManager
}

// Build assembles every service from configuration. All client construction
// happens here so the handlers receive ready dependencies and hold no
// package-level state.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Scraping stack
	apifyClient := apify.NewClient(&http.Client{Timeout: cfg.Apify.Timeout}, cfg.Apify.Token, logger)
	scraper := apify.NewScraperService(apifyClient, logger)

	// AI stack
	modelManager, err := ai.NewModelManager(ctx, ai.ModelManagerConfig{
		GeminiAPIKey:       cfg.Gemini.APIKey,
		OpenAIAPIKey:       cfg.OpenAI.APIKey,
		DefaultGeminiModel: cfg.Gemini.Model,
		DefaultOpenAIModel: "gpt-5-mini",
		EnableFallback:     cfg.OpenAI.EnableFallback,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create model manager: %w", err)
	}
	analyzer := ai.NewAnalyzerService(modelManager, logger)

	proxy := web.NewImageProxy(&http.Client{Timeout: cfg.Proxy.Timeout}, logger)
	handlers := web.NewHandlers(scraper, analyzer, modelManager, proxy, logger)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		Handlers: handlers,
		Scraper:  scraper,
		Analyzer: analyzer,
		Models:   modelManager,
	}, nil
}
