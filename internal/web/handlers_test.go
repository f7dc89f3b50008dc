package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/kapu/insta-insight-go/internal/domain"
	"github.com/kapu/insta-insight-go/internal/service/ai"
	"github.com/kapu/insta-insight-go/pkg/errors"
)

// errorBody is the serialized shape of a typed application error.
type errorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

type fakeScraper struct {
	result       *domain.ScrapeResult
	postsResult  *domain.PostsResult
	gotUsernames []string
	gotLimit     int
	gotParent    bool
}

func (f *fakeScraper) ScrapeProfiles(ctx context.Context, usernames []string, resultsLimit int, addParentData bool) *domain.ScrapeResult {
	f.gotUsernames = usernames
	f.gotLimit = resultsLimit
	f.gotParent = addParentData
	if f.result != nil {
		return f.result
	}
	return &domain.ScrapeResult{Success: false, Data: []domain.Profile{}, Message: "no fake result"}
}

func (f *fakeScraper) GetProfilePosts(ctx context.Context, username string, limit int) *domain.PostsResult {
	f.gotUsernames = []string{username}
	f.gotLimit = limit
	if f.postsResult != nil {
		return f.postsResult
	}
	return &domain.PostsResult{Success: false, Username: username, Posts: []domain.Post{}}
}

type fakeAnalyzer struct {
	insight           *domain.Insight
	gotStartersReq    ai.StartersRequest
	gotSuggestionsReq ai.SuggestionsRequest
	analyzeCalls      int
}

func (f *fakeAnalyzer) AnalyzeProfile(ctx context.Context, summary domain.ProfileSummary) *domain.Insight {
	f.analyzeCalls++
	if f.insight != nil {
		return f.insight
	}
	return &domain.Insight{}
}

func (f *fakeAnalyzer) ConversationStarters(ctx context.Context, req ai.StartersRequest) []domain.ConversationStarter {
	f.gotStartersReq = req
	return []domain.ConversationStarter{{ID: "starter-1", Text: "hello"}}
}

func (f *fakeAnalyzer) ResponseSuggestions(ctx context.Context, req ai.SuggestionsRequest) []domain.ResponseSuggestion {
	f.gotSuggestionsReq = req
	return []domain.ResponseSuggestion{{Type: "engaging", Text: "nice"}}
}

type fakeProviderChecker struct {
	status ai.ProviderStatus
	calls  int
}

func (f *fakeProviderChecker) CheckProviders(ctx context.Context) ai.ProviderStatus {
	f.calls++
	return f.status
}

func newTestApp(scraper *fakeScraper, analyzer *fakeAnalyzer) *fiber.App {
	return newTestAppWithProviders(scraper, analyzer, &fakeProviderChecker{})
}

func newTestAppWithProviders(scraper *fakeScraper, analyzer *fakeAnalyzer, providers *fakeProviderChecker) *fiber.App {
	app := fiber.New()
	proxy := NewImageProxy(nil, zap.NewNop())
	RegisterRoutes(app, NewHandlers(scraper, analyzer, providers, proxy, zap.NewNop()))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(body, dest); err != nil {
		t.Fatalf("decode body %q: %v", body, err)
	}
}

func TestHealth(t *testing.T) {
	providers := &fakeProviderChecker{status: ai.ProviderStatus{Gemini: true, OpenAI: false}}
	app := newTestAppWithProviders(&fakeScraper{}, &fakeAnalyzer{}, providers)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body struct {
		Status    string          `json:"status"`
		Providers map[string]bool `json:"providers"`
	}
	decodeBody(t, resp, &body)
	if body.Status != "healthy" {
		t.Errorf("status field = %q", body.Status)
	}
	if providers.calls != 1 {
		t.Errorf("provider check called %d times, want 1", providers.calls)
	}
	if !body.Providers["gemini"] || body.Providers["openai"] {
		t.Errorf("provider reachability not reported: %+v", body.Providers)
	}
}

func TestScrapeValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing usernames", `{}`},
		{"empty list", `{"usernames": []}`},
		{"whitespace username", `{"usernames": ["  "]}`},
		{"at-sign only", `{"usernames": ["@"]}`},
		{"invalid json", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scraper := &fakeScraper{}
			app := newTestApp(scraper, &fakeAnalyzer{})

			resp := postJSON(t, app, "/scrape", tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			if scraper.gotUsernames != nil {
				t.Error("validation failure must not reach the scraper")
			}

			var body errorBody
			decodeBody(t, resp, &body)
			if body.Code != errors.CodeValidation {
				t.Errorf("error code = %q, want %q", body.Code, errors.CodeValidation)
			}
			if body.Success || body.Error == "" {
				t.Errorf("error body malformed: %+v", body)
			}
		})
	}
}

func TestScrapeNormalizesAndDefaults(t *testing.T) {
	scraper := &fakeScraper{result: &domain.ScrapeResult{Success: true, Data: []domain.Profile{}}}
	app := newTestApp(scraper, &fakeAnalyzer{})

	resp := postJSON(t, app, "/scrape",
		`{"usernames": ["@jane.doe ", "https://www.instagram.com/john.roe/"]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	if len(scraper.gotUsernames) != 2 || scraper.gotUsernames[0] != "jane.doe" || scraper.gotUsernames[1] != "john.roe" {
		t.Errorf("usernames not normalized: %v", scraper.gotUsernames)
	}
	if scraper.gotLimit != 15 || !scraper.gotParent {
		t.Errorf("defaults not applied: limit=%d parent=%v", scraper.gotLimit, scraper.gotParent)
	}
}

func TestScrapeBusinessFailureIsStill200(t *testing.T) {
	scraper := &fakeScraper{result: &domain.ScrapeResult{
		Success: false,
		Data:    []domain.Profile{},
		Message: "No data found for the specified profiles",
	}}
	app := newTestApp(scraper, &fakeAnalyzer{})

	resp := postJSON(t, app, "/scrape", `{"usernames": ["ghost"]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 for business failure", resp.StatusCode)
	}

	var result domain.ScrapeResult
	decodeBody(t, resp, &result)
	if result.Success {
		t.Error("success should be false")
	}
}

func TestScrapeProfileGetRoute(t *testing.T) {
	scraper := &fakeScraper{result: &domain.ScrapeResult{Success: true, Data: []domain.Profile{}}}
	app := newTestApp(scraper, &fakeAnalyzer{})

	req := httptest.NewRequest(http.MethodGet, "/profile/jane.doe?results_limit=3&add_parent_data=false", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if scraper.gotLimit != 3 || scraper.gotParent {
		t.Errorf("query params not applied: limit=%d parent=%v", scraper.gotLimit, scraper.gotParent)
	}
}

func TestProfilePostsRoute(t *testing.T) {
	scraper := &fakeScraper{postsResult: &domain.PostsResult{
		Success: true, Username: "jane.doe", PostsCount: 1,
		Posts: []domain.Post{{ShortCode: "Cabc"}},
	}}
	app := newTestApp(scraper, &fakeAnalyzer{})

	req := httptest.NewRequest(http.MethodGet, "/profile/jane.doe/posts?limit=5", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if scraper.gotLimit != 5 {
		t.Errorf("limit = %d, want 5", scraper.gotLimit)
	}
}

func TestProductScrapeValidation(t *testing.T) {
	scraper := &fakeScraper{}
	app := newTestApp(scraper, &fakeAnalyzer{})

	resp := postJSON(t, app, "/scrape-profile", `{}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing profileUrl should be 400, got %d", resp.StatusCode)
	}
	if scraper.gotUsernames != nil {
		t.Error("validation failure must not reach the scraper")
	}
}

func TestProductScrapeUpstreamFailure(t *testing.T) {
	scraper := &fakeScraper{result: &domain.ScrapeResult{Success: false, Data: []domain.Profile{}}}
	app := newTestApp(scraper, &fakeAnalyzer{})

	resp := postJSON(t, app, "/scrape-profile", `{"profileUrl": "https://www.instagram.com/ghost/"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("product failures ride on 200, got %d", resp.StatusCode)
	}

	var product ProductProfile
	decodeBody(t, resp, &product)
	if product.Metadata.Success {
		t.Error("metadata.success should be false")
	}
	if product.Metadata.ErrorMessage == "" {
		t.Error("metadata.error_message should be set")
	}
}

func TestProductScrapeSuccess(t *testing.T) {
	scraper := &fakeScraper{result: &domain.ScrapeResult{
		Success: true,
		Data: []domain.Profile{{
			Username:       "jane.doe",
			FullName:       "Jane Doe",
			Biography:      "photographer",
			FollowersCount: 1200,
			IsVerified:     true,
			ProfilePicURL:  "https://cdn.example/pic.jpg",
			LatestPosts: []domain.Post{{
				ShortCode:  "Cabc",
				Caption:    "hello",
				LikesCount: 10,
				DisplayURL: "https://cdn.example/post.jpg",
				URL:        "https://www.instagram.com/p/Cabc/",
			}},
		}},
	}}
	app := newTestApp(scraper, &fakeAnalyzer{})

	resp := postJSON(t, app, "/scrape-profile", `{"profileUrl": "https://www.instagram.com/jane.doe/"}`)

	var product ProductProfile
	decodeBody(t, resp, &product)

	if product.DisplayName != "Jane Doe" || product.Username != "jane.doe" {
		t.Errorf("identity fields wrong: %+v", product)
	}
	if product.Platform != "instagram" || !product.Metadata.Success {
		t.Errorf("metadata wrong: %+v", product.Metadata)
	}
	if product.FollowerCount != 1200 || !product.IsVerified {
		t.Errorf("counters wrong: %+v", product)
	}
	if len(product.Posts) != 1 || product.Posts[0].ID != "Cabc" || product.Posts[0].ImageURL != "https://cdn.example/post.jpg" {
		t.Errorf("posts wrong: %+v", product.Posts)
	}
	if product.Metadata.ScrapedAt == "" {
		t.Error("scraped_at should be set")
	}
}

func TestAnalyzeProfileValidation(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	app := newTestApp(&fakeScraper{}, analyzer)

	resp := postJSON(t, app, "/analyze-profile", `{}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("missing profileUrl should be 400, got %d", resp.StatusCode)
	}
	if analyzer.analyzeCalls != 0 {
		t.Error("validation failure must not reach the analyzer")
	}
}

func TestAnalyzeProfileFetchFailureIs400(t *testing.T) {
	scraper := &fakeScraper{result: &domain.ScrapeResult{Success: false, Data: []domain.Profile{}}}
	analyzer := &fakeAnalyzer{}
	app := newTestApp(scraper, analyzer)

	resp := postJSON(t, app, "/analyze-profile", `{"profileUrl": "https://www.instagram.com/ghost/"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("failed fetch should be 400, got %d", resp.StatusCode)
	}
	if analyzer.analyzeCalls != 0 {
		t.Error("analyzer must not run without profile data")
	}

	var body errorBody
	decodeBody(t, resp, &body)
	if body.Code != errors.CodeAPIError {
		t.Errorf("error code = %q, want %q", body.Code, errors.CodeAPIError)
	}
}

func TestAnalyzeProfileSuccess(t *testing.T) {
	scraper := &fakeScraper{result: &domain.ScrapeResult{
		Success: true,
		Data:    []domain.Profile{{Username: "jane.doe", FollowersCount: 100}},
	}}
	analyzer := &fakeAnalyzer{insight: &domain.Insight{
		ConversationStarters: []string{"hi there"},
	}}
	app := newTestApp(scraper, analyzer)

	resp := postJSON(t, app, "/analyze-profile", `{"profileUrl": "https://www.instagram.com/jane.doe/"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var insight domain.Insight
	decodeBody(t, resp, &insight)
	if len(insight.ConversationStarters) != 1 {
		t.Errorf("insight not passed through: %+v", insight)
	}
}

func TestConversationStartersDefaults(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	app := newTestApp(&fakeScraper{}, analyzer)

	resp := postJSON(t, app, "/conversation-starters",
		`{"profile_analysis": {"interests": ["travel"]}}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	req := analyzer.gotStartersReq
	if req.Language != "en" || req.Tone != "casual" || req.Count != 8 {
		t.Errorf("defaults not applied: %+v", req)
	}
	if len(req.Interests) != 1 || req.Interests[0] != "travel" {
		t.Errorf("interests not carried: %+v", req.Interests)
	}

	var body struct {
		Starters []domain.ConversationStarter `json:"conversation_starters"`
	}
	decodeBody(t, resp, &body)
	if len(body.Starters) != 1 {
		t.Errorf("starters missing from response")
	}
}

func TestResponseSuggestionsDefaults(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	app := newTestApp(&fakeScraper{}, analyzer)

	resp := postJSON(t, app, "/response-suggestions", `{"message": "hey, how was the trip?"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	req := analyzer.gotSuggestionsReq
	if req.Language != "en" {
		t.Errorf("language default not applied: %q", req.Language)
	}
	want := []string{"engaging", "playful", "supportive", "professional"}
	if len(req.Styles) != len(want) {
		t.Fatalf("styles default not applied: %v", req.Styles)
	}
	for i, style := range want {
		if req.Styles[i] != style {
			t.Errorf("styles[%d] = %q, want %q", i, req.Styles[i], style)
		}
	}
}

func TestResponseSuggestionsRequiresMessage(t *testing.T) {
	app := newTestApp(&fakeScraper{}, &fakeAnalyzer{})

	resp := postJSON(t, app, "/response-suggestions", `{"message": "  "}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("blank message should be 400, got %d", resp.StatusCode)
	}
}

func TestUsernameToURLRoute(t *testing.T) {
	app := newTestApp(&fakeScraper{}, &fakeAnalyzer{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/username-to-url/jane.doe", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var body map[string]any
	decodeBody(t, resp, &body)
	if body["url"] != "https://www.instagram.com/jane.doe/" {
		t.Errorf("url = %v", body["url"])
	}
	if body["username"] != "jane.doe" {
		t.Errorf("username = %v", body["username"])
	}
}

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"jane.doe", "jane.doe"},
		{"@jane.doe", "jane.doe"},
		{" @jane.doe ", "jane.doe"},
		{"https://www.instagram.com/jane.doe/", "jane.doe"},
		{"https://www.instagram.com/jane.doe/p/Cabc/", "jane.doe"},
		{"@", ""},
		{"   ", ""},
		{"https://www.instagram.com/", ""},
	}

	for _, tt := range tests {
		if got := normalizeUsername(tt.input); got != tt.want {
			t.Errorf("normalizeUsername(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
