package web

import "github.com/gofiber/fiber/v2"

// RegisterRoutes wires every endpoint onto the app. One path per contract:
// generic scraping on /scrape and the GET profile routes, the product frontend
// on POST /scrape-profile, analysis on its own POST routes.
func RegisterRoutes(app *fiber.App, h *Handlers) {
	app.Get("/health", h.Health)
	app.Get("/proxy-image", h.ProxyImage)
	app.Get("/username-to-url/:username", h.UsernameToURL)

	app.Post("/scrape", h.ScrapeProfiles)
	app.Get("/scrape-profile/:username", h.ScrapeProfile)
	app.Get("/profile/:username", h.ScrapeProfile)
	app.Get("/profile/:username/posts", h.ProfilePosts)

	app.Post("/scrape-profile", h.ScrapeProfileForProduct)
	app.Post("/analyze-profile", h.AnalyzeProfile)
	app.Post("/conversation-starters", h.ConversationStarters)
	app.Post("/response-suggestions", h.ResponseSuggestions)
}
