package web

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kapu/insta-insight-go/internal/constants"
	"github.com/kapu/insta-insight-go/internal/domain"
	"github.com/kapu/insta-insight-go/internal/service/ai"
	"github.com/kapu/insta-insight-go/pkg/errors"
)

// ProfileScraper is the scraping surface the handlers depend on.
type ProfileScraper interface {
	ScrapeProfiles(ctx context.Context, usernames []string, resultsLimit int, addParentData bool) *domain.ScrapeResult
	GetProfilePosts(ctx context.Context, username string, limit int) *domain.PostsResult
}

// InsightGenerator is the analysis surface the handlers depend on.
type InsightGenerator interface {
	AnalyzeProfile(ctx context.Context, summary domain.ProfileSummary) *domain.Insight
	ConversationStarters(ctx context.Context, req ai.StartersRequest) []domain.ConversationStarter
	ResponseSuggestions(ctx context.Context, req ai.SuggestionsRequest) []domain.ResponseSuggestion
}

// ProviderChecker reports reachability of the generation providers.
type ProviderChecker interface {
	CheckProviders(ctx context.Context) ai.ProviderStatus
}

// Handlers binds the HTTP surface to the scraping and analysis services.
type Handlers struct {
	scraper   ProfileScraper
	analyzer  InsightGenerator
	providers ProviderChecker
	proxy     *ImageProxy
	logger    *zap.Logger
}

func NewHandlers(scraper ProfileScraper, analyzer InsightGenerator, providers ProviderChecker, proxy *ImageProxy, logger *zap.Logger) *Handlers {
	return &Handlers{
		scraper:   scraper,
		analyzer:  analyzer,
		providers: providers,
		proxy:     proxy,
		logger:    logger,
	}
}

// respondAppError serializes a typed application error: its status code becomes
// the HTTP status, its code and message the JSON body.
func respondAppError(c *fiber.Ctx, appErr *errors.AppError) error {
	return c.Status(appErr.StatusCode).JSON(fiber.Map{
		"success": false,
		"error":   appErr.Message,
		"code":    appErr.Code,
	})
}

func respondValidation(c *fiber.Ctx, message, field string, value any) error {
	return respondAppError(c, errors.NewValidationError(message, field, value).AppError)
}

// normalizeUsername accepts a raw handle or a full profile URL and reduces it
// to a bare username. Empty output means the input was unusable.
func normalizeUsername(input string) string {
	trimmed := strings.TrimSpace(input)
	if strings.Contains(trimmed, "instagram.com") {
		trimmed = domain.UsernameFromURL(trimmed)
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, "@"))
}

// Health reports service liveness and generation-provider reachability.
func (h *Handlers) Health(c *fiber.Ctx) error {
	status := h.providers.CheckProviders(c.UserContext())
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"message": "Instagram Profile API is running",
		"providers": fiber.Map{
			"gemini": status.Gemini,
			"openai": status.OpenAI,
		},
	})
}

// UsernameToURL echoes the canonical profile URL for a handle.
func (h *Handlers) UsernameToURL(c *fiber.Ctx) error {
	username := normalizeUsername(c.Params("username"))
	if username == "" {
		return respondValidation(c, "Username is required", "username", c.Params("username"))
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"username": username,
		"url":      domain.UsernameToURL(username),
	})
}

// ScrapeProfiles handles the generic batch-scrape contract. Upstream failures
// come back as 200 with success=false; only request validation is an HTTP error.
func (h *Handlers) ScrapeProfiles(c *fiber.Ctx) error {
	var req ScrapeRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, "Invalid request body", "body", nil)
	}

	if len(req.Usernames) == 0 {
		return respondValidation(c, "At least one username is required", "usernames", nil)
	}

	usernames := make([]string, 0, len(req.Usernames))
	for _, raw := range req.Usernames {
		username := normalizeUsername(raw)
		if username == "" {
			return respondValidation(c, "Usernames must not be empty", "usernames", raw)
		}
		usernames = append(usernames, username)
	}

	result := h.scraper.ScrapeProfiles(c.UserContext(), usernames,
		req.Limit(constants.ScrapeDefaults.ResultsLimit),
		req.ParentData(constants.ScrapeDefaults.AddParentData))
	return c.JSON(result)
}

// ScrapeProfile handles the generic single-profile GET contract.
func (h *Handlers) ScrapeProfile(c *fiber.Ctx) error {
	username := normalizeUsername(c.Params("username"))
	if username == "" {
		return respondValidation(c, "Username is required", "username", c.Params("username"))
	}

	limit := c.QueryInt("results_limit", constants.ScrapeDefaults.ResultsLimit)
	addParentData := c.QueryBool("add_parent_data", constants.ScrapeDefaults.AddParentData)

	result := h.scraper.ScrapeProfiles(c.UserContext(), []string{username}, limit, addParentData)
	return c.JSON(result)
}

// ProfilePosts handles the posts-only contract.
func (h *Handlers) ProfilePosts(c *fiber.Ctx) error {
	username := normalizeUsername(c.Params("username"))
	if username == "" {
		return respondValidation(c, "Username is required", "username", c.Params("username"))
	}

	limit := c.QueryInt("limit", constants.ScrapeDefaults.PostsLimit)
	return c.JSON(h.scraper.GetProfilePosts(c.UserContext(), username, limit))
}

// ScrapeProfileForProduct handles the product-frontend contract: a profile URL
// in, a flattened profile out. Upstream failures are expressed through
// metadata.success so the frontend has a single shape to parse.
func (h *Handlers) ScrapeProfileForProduct(c *fiber.Ctx) error {
	var req ProfileURLRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, "Invalid request body", "body", nil)
	}

	username := normalizeUsername(req.ProfileURL)
	if username == "" {
		return respondValidation(c, "profileUrl is required", "profileUrl", req.ProfileURL)
	}

	result := h.scraper.ScrapeProfiles(c.UserContext(), []string{username},
		constants.ScrapeDefaults.PostsLimit, true)
	if !result.Success || len(result.Data) == 0 {
		h.logger.Warn("Product scrape returned no data", zap.String("username", username))
		return c.JSON(ProductFailure("Failed to scrape profile"))
	}

	return c.JSON(ProductProfileFromDomain(result.Data[0], constants.ScrapeDefaults.PostsLimit))
}

// AnalyzeProfile scrapes a profile and generates its insight in one call.
// Unlike the scrape endpoints, a failed fetch here is a hard 400: there is
// nothing meaningful to analyze.
func (h *Handlers) AnalyzeProfile(c *fiber.Ctx) error {
	var req ProfileURLRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, "Invalid request body", "body", nil)
	}

	username := normalizeUsername(req.ProfileURL)
	if username == "" {
		return respondValidation(c, "profileUrl is required", "profileUrl", req.ProfileURL)
	}

	result := h.scraper.ScrapeProfiles(c.UserContext(), []string{username},
		constants.ScrapeDefaults.PostsLimit, true)
	if !result.Success || len(result.Data) == 0 {
		return respondAppError(c, errors.NewAPIError("Failed to scrape profile for analysis",
			fiber.StatusBadRequest, map[string]any{"username": username}).AppError)
	}

	summary := domain.SummarizeProfile(result.Data[0], constants.AIInputLimits.MaxCaptionSample)
	insight := h.analyzer.AnalyzeProfile(c.UserContext(), summary)
	return c.JSON(insight)
}

// ConversationStarters generates openers from a prior profile analysis.
func (h *Handlers) ConversationStarters(c *fiber.Ctx) error {
	var req StartersRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, "Invalid request body", "body", nil)
	}
	req.ApplyDefaults()

	starters := h.analyzer.ConversationStarters(c.UserContext(), ai.StartersRequest{
		Interests:          req.ProfileAnalysis.Interests,
		PersonalityTraits:  req.ProfileAnalysis.PersonalityTraits,
		CommunicationStyle: req.ProfileAnalysis.CommunicationStyle,
		Language:           req.Language,
		Category:           req.Category,
		Tone:               req.Tone,
		Count:              req.Count,
	})

	return c.JSON(fiber.Map{
		"success":               true,
		"conversation_starters": starters,
	})
}

// ResponseSuggestions generates styled replies to a received message.
func (h *Handlers) ResponseSuggestions(c *fiber.Ctx) error {
	var req SuggestionsRequest
	if err := c.BodyParser(&req); err != nil {
		return respondValidation(c, "Invalid request body", "body", nil)
	}
	if strings.TrimSpace(req.Message) == "" {
		return respondValidation(c, "Message is required", "message", req.Message)
	}
	req.ApplyDefaults()

	suggestions := h.analyzer.ResponseSuggestions(c.UserContext(), ai.SuggestionsRequest{
		Message:  req.Message,
		Context:  req.Context,
		Language: req.Language,
		Styles:   req.Styles,
	})

	return c.JSON(fiber.Map{
		"success":     true,
		"suggestions": suggestions,
	})
}

// ProxyImage streams a remote image through the service.
func (h *Handlers) ProxyImage(c *fiber.Ctx) error {
	return h.proxy.Handle(c)
}
