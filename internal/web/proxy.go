package web

import (
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kapu/insta-insight-go/internal/constants"
	"github.com/kapu/insta-insight-go/pkg/errors"
)

// ImageProxy fetches CDN-hosted profile and post images server-side so the
// browser never talks to Instagram's CDN directly. Responses are marked
// cacheable and CORS-open.
type ImageProxy struct {
	client *http.Client
	logger *zap.Logger
}

func NewImageProxy(client *http.Client, logger *zap.Logger) *ImageProxy {
	if client == nil {
		client = &http.Client{Timeout: constants.APIConfig.ImageProxyTimeout}
	}
	return &ImageProxy{
		client: client,
		logger: logger,
	}
}

func (p *ImageProxy) Handle(c *fiber.Ctx) error {
	imageURL := c.Query("url")
	if imageURL == "" {
		return respondValidation(c, "url query parameter is required", "url", nil)
	}

	req, err := http.NewRequestWithContext(c.UserContext(), http.MethodGet, imageURL, nil)
	if err != nil {
		return respondValidation(c, "Invalid image URL", "url", imageURL)
	}
	req.Header.Set("User-Agent", constants.ImageProxyUserAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Error("Image fetch failed", zap.String("url", imageURL), zap.Error(err))
		return respondAppError(c, errors.NewServiceError("Failed to proxy image", "image-proxy", "fetch", err).AppError)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.logger.Warn("Image fetch returned non-200",
			zap.String("url", imageURL),
			zap.Int("status", resp.StatusCode),
		)
		return respondAppError(c, errors.NewAPIError("Failed to fetch image",
			fiber.StatusBadRequest, map[string]any{"upstream_status": resp.StatusCode}).AppError)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return respondAppError(c, errors.NewServiceError("Failed to read image", "image-proxy", "read", err).AppError)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}

	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
	return c.Send(body)
}
