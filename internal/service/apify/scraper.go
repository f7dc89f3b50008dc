package apify

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/insta-insight-go/internal/constants"
	"github.com/kapu/insta-insight-go/internal/domain"
)

// profileActorInput is the input document of the Instagram profile actor.
type profileActorInput struct {
	Usernames     []string `json:"usernames"`
	ResultsLimit  int      `json:"resultsLimit"`
	AddParentData bool     `json:"addParentData"`
}

// rawPost mirrors a post record as the actor emits it.
type rawPost struct {
	ShortCode     string `json:"shortCode"`
	Caption       string `json:"caption"`
	LikesCount    int    `json:"likesCount"`
	CommentsCount int    `json:"commentsCount"`
	Timestamp     string `json:"timestamp"`
	DisplayURL    string `json:"displayUrl"`
	Type          string `json:"type"`
}

// rawProfile mirrors a profile record as the actor emits it. Every field is
// optional upstream; absent fields decode to zero values.
type rawProfile struct {
	Username       string    `json:"username"`
	FullName       string    `json:"fullName"`
	Biography      string    `json:"biography"`
	FollowersCount int       `json:"followersCount"`
	FollowingCount int       `json:"followingCount"`
	PostsCount     int       `json:"postsCount"`
	IsPrivate      bool      `json:"isPrivate"`
	IsVerified     bool      `json:"isVerified"`
	ProfilePicURL  string    `json:"profilePicUrl"`
	LatestPosts    []rawPost `json:"latestPosts"`
}

// ScraperService fetches Instagram profiles through the Apify profile actor.
type ScraperService struct {
	runner ActorRunner
	logger *zap.Logger
}

func NewScraperService(runner ActorRunner, logger *zap.Logger) *ScraperService {
	return &ScraperService{
		runner: runner,
		logger: logger,
	}
}

// ScrapeProfiles runs one actor job for the given usernames and materializes
// every dataset item into a Profile. Transport failures, failed runs and empty
// result sets all come back as Success=false with a message; this method never
// returns an error because every caller depends on the structured-result
// contract.
func (s *ScraperService) ScrapeProfiles(ctx context.Context, usernames []string, resultsLimit int, addParentData bool) *domain.ScrapeResult {
	if resultsLimit <= 0 {
		resultsLimit = constants.ScrapeDefaults.ResultsLimit
	}

	s.logger.Info("Scraping profiles",
		zap.Strings("usernames", usernames),
		zap.Int("results_limit", resultsLimit),
	)

	items, err := s.runner.RunActorSync(ctx, constants.APIConfig.ProfileActorID, profileActorInput{
		Usernames:     usernames,
		ResultsLimit:  resultsLimit,
		AddParentData: addParentData,
	})
	if err != nil {
		s.logger.Error("Profile scrape failed", zap.Error(err))
		return &domain.ScrapeResult{
			Success: false,
			Data:    []domain.Profile{},
			Message: fmt.Sprintf("Error: %v", err),
		}
	}

	if len(items) == 0 {
		return &domain.ScrapeResult{
			Success: false,
			Data:    []domain.Profile{},
			Message: "No data found for the specified profiles",
		}
	}

	profiles := make([]domain.Profile, 0, len(items))
	for _, item := range items {
		var raw rawProfile
		if err := json.Unmarshal(item, &raw); err != nil {
			// One malformed record must not abort the batch.
			s.logger.Warn("Skipping malformed dataset item", zap.Error(err))
			continue
		}
		profiles = append(profiles, mapProfile(raw))
	}

	return &domain.ScrapeResult{
		Success:         true,
		ProfilesScraped: len(profiles),
		TotalItems:      len(items),
		Data:            profiles,
		Message:         fmt.Sprintf("Successfully scraped %d profiles", len(profiles)),
	}
}

// GetProfilePosts fetches a single profile and returns only its posts, capped
// at limit, with canonical post URLs re-derived. Fetch failures produce an
// explicit empty result rather than an error.
func (s *ScraperService) GetProfilePosts(ctx context.Context, username string, limit int) *domain.PostsResult {
	if limit <= 0 {
		limit = constants.ScrapeDefaults.PostsLimit
	}

	result := s.ScrapeProfiles(ctx, []string{username}, limit, true)
	if !result.Success || len(result.Data) == 0 {
		return &domain.PostsResult{
			Success:    false,
			Username:   username,
			ProfileURL: domain.UsernameToURL(username),
			Posts:      []domain.Post{},
		}
	}

	profile := result.Data[0]
	posts := profile.LatestPosts
	if len(posts) > limit {
		posts = posts[:limit]
	}

	out := make([]domain.Post, 0, len(posts))
	for _, post := range posts {
		post.URL = domain.PostURL(post.ShortCode)
		out = append(out, post)
	}

	return &domain.PostsResult{
		Success:    true,
		Username:   username,
		ProfileURL: domain.UsernameToURL(username),
		PostsCount: len(out),
		Posts:      out,
	}
}

func mapProfile(raw rawProfile) domain.Profile {
	profile := domain.Profile{
		Username:       raw.Username,
		FullName:       raw.FullName,
		Biography:      raw.Biography,
		FollowersCount: raw.FollowersCount,
		FollowingCount: raw.FollowingCount,
		PostsCount:     raw.PostsCount,
		IsPrivate:      raw.IsPrivate,
		IsVerified:     raw.IsVerified,
		ProfilePicURL:  raw.ProfilePicURL,
		LatestPosts:    []domain.Post{},
	}

	if raw.Username != "" {
		profile.ProfileURL = domain.UsernameToURL(raw.Username)
	}

	for _, post := range raw.LatestPosts {
		profile.LatestPosts = append(profile.LatestPosts, domain.Post{
			ShortCode:     post.ShortCode,
			Caption:       post.Caption,
			LikesCount:    post.LikesCount,
			CommentsCount: post.CommentsCount,
			Timestamp:     post.Timestamp,
			DisplayURL:    post.DisplayURL,
			Type:          post.Type,
			URL:           domain.PostURL(post.ShortCode),
		})
	}

	return profile
}
