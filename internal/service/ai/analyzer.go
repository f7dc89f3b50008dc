package ai

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kapu/insta-insight-go/internal/constants"
	"github.com/kapu/insta-insight-go/internal/domain"
	"github.com/kapu/insta-insight-go/internal/prompt"
	"github.com/kapu/insta-insight-go/internal/util"
)

var hashtagPattern = regexp.MustCompile(`#\w+`)

// Generator abstracts the model manager so handlers and tests can substitute
// generation backends.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string, preset ModelPreset, dest any, opts *GenerateOptions) (*GenerateMetadata, error)
}

// AnalyzerService turns a scraped profile summary into an Insight. Every public
// method degrades to a deterministic local fallback instead of returning an
// error: malformed or missing model output is never surfaced to callers.
type AnalyzerService struct {
	generator Generator
	logger    *zap.Logger
}

func NewAnalyzerService(generator Generator, logger *zap.Logger) *AnalyzerService {
	return &AnalyzerService{
		generator: generator,
		logger:    logger,
	}
}

// contentStats holds the caption/engagement aggregates embedded in the prompt.
type contentStats struct {
	Captions       []string
	Hashtags       []string
	TotalEngage    int
	AvgEngage      float64
	EngagementRate float64
}

// collectContentStats samples up to MaxCaptionSample posts and aggregates
// captions, hashtags and engagement. The follower==0 guard on the engagement
// rate is mandatory.
func collectContentStats(summary domain.ProfileSummary) contentStats {
	stats := contentStats{}

	sample := summary.Posts[:util.Min(len(summary.Posts), constants.AIInputLimits.MaxCaptionSample)]

	for _, post := range sample {
		if post.Caption != "" {
			stats.Captions = append(stats.Captions, post.Caption)
			for _, tag := range hashtagPattern.FindAllString(strings.ToLower(post.Caption), -1) {
				if len(stats.Hashtags) >= constants.AIInputLimits.MaxHashtags || util.Contains(stats.Hashtags, tag) {
					continue
				}
				stats.Hashtags = append(stats.Hashtags, tag)
			}
		}
		stats.TotalEngage += post.Likes + post.Comments
	}

	if len(sample) > 0 {
		stats.AvgEngage = float64(stats.TotalEngage) / float64(len(sample))
	}
	if summary.FollowerCount > 0 {
		stats.EngagementRate = stats.AvgEngage / float64(summary.FollowerCount) * 100
	}

	return stats
}

// AnalyzeProfile produces an Insight for the given profile summary. The result
// always passes post-validation, whether it came from the model or the
// fallback path.
func (s *AnalyzerService) AnalyzeProfile(ctx context.Context, summary domain.ProfileSummary) *domain.Insight {
	stats := collectContentStats(summary)
	promptText := s.buildAnalysisPrompt(summary, stats)
	if len(promptText) > constants.AIInputLimits.MaxPromptLength {
		promptText = util.TruncateString(promptText, constants.AIInputLimits.MaxPromptLength)
	}

	var insight domain.Insight
	metadata, err := s.generator.GenerateJSON(ctx, promptText, PresetBalanced, &insight, nil)
	if err != nil {
		s.logger.Warn("Insight generation failed, using fallback analysis",
			zap.String("username", summary.Username),
			zap.Error(err),
		)
		insight = s.fallbackAnalysis(summary)
	} else {
		s.logger.Info("Insight generated",
			zap.String("username", summary.Username),
			zap.String("provider", metadata.Provider),
			zap.String("model", metadata.Model),
			zap.Bool("used_fallback", metadata.UsedFallback),
		)
	}

	// A well-formed but sparse response is still incomplete: validation runs
	// unconditionally on both paths.
	ValidateInsight(&insight)
	return &insight
}

func (s *AnalyzerService) buildAnalysisPrompt(summary domain.ProfileSummary, stats contentStats) string {
	postsText := "No recent posts available"
	if len(stats.Captions) > 0 {
		postsText = strings.Join(stats.Captions, "\n---\n")
	}

	hashtagsLine := "None detected"
	if len(stats.Hashtags) > 0 {
		hashtagsLine = strings.Join(stats.Hashtags, ", ")
	}

	topTags := stats.Hashtags
	if len(topTags) > 5 {
		topTags = topTags[:5]
	}
	topTagsJSON, err := json.Marshal(topTags)
	if err != nil || len(topTags) == 0 {
		topTagsJSON = []byte("[]")
	}

	avgPostsPerWeek := summary.PostCount
	if summary.PostCount > 52 {
		avgPostsPerWeek = util.Max(1, summary.PostCount/52)
	}

	avgLikes, avgComments := 50, 10
	if stats.AvgEngage > 0 {
		avgLikes = int(stats.AvgEngage * 0.8)
		avgComments = int(stats.AvgEngage * 0.2)
	}

	dataPoints := len(stats.Captions) + len(stats.Hashtags)
	if summary.Bio != "" {
		dataPoints++
	}

	return prompt.BuildAnalysisPrompt(prompt.AnalysisPromptData{
		DisplayName:     summary.DisplayName,
		Username:        summary.Username,
		Bio:             summary.Bio,
		FollowerCount:   summary.FollowerCount,
		FollowingCount:  summary.FollowingCount,
		PostCount:       summary.PostCount,
		EngagementRate:  stats.EngagementRate,
		PostsText:       postsText,
		HashtagsLine:    hashtagsLine,
		TopHashtagsJSON: string(topTagsJSON),
		AvgPostsPerWeek: avgPostsPerWeek,
		AvgLikes:        avgLikes,
		AvgComments:     avgComments,
		AnalyzedAt:      time.Now().Format(time.RFC3339),
		DataPoints:      dataPoints,
	})
}

// fallbackAnalysis synthesizes an Insight from the profile alone: bio keywords
// drive the interests, everything else comes from the default tables and
// follower-count heuristics.
func (s *AnalyzerService) fallbackAnalysis(summary domain.ProfileSummary) domain.Insight {
	interests := detectInterestsFromBio(summary.Bio)
	if len(interests) == 0 {
		interests = defaultInterests()
	}
	if len(interests) > 4 {
		interests = interests[:4]
	}

	avgPostsPerWeek := 3
	if len(summary.Posts) > 0 {
		avgPostsPerWeek = util.Max(1, len(summary.Posts)/4)
	}

	avgLikes := constants.EngagementDefaults.MinLikes
	if estimate := float64(summary.FollowerCount) * constants.EngagementDefaults.LikesShare; estimate > avgLikes {
		avgLikes = estimate
	}
	avgComments := constants.EngagementDefaults.MinComments
	if estimate := float64(summary.FollowerCount) * constants.EngagementDefaults.CommentsShare; estimate > avgComments {
		avgComments = estimate
	}

	dataPoints := len(summary.Posts)
	if summary.Bio != "" {
		dataPoints++
	}

	return domain.Insight{
		PersonalityTraits:    defaultTraits(),
		Interests:            interests,
		ConversationStarters: templatedStarters(interests[0].Name),
		CommunicationStyle: domain.CommunicationStyle{
			Tone:               "friendly",
			FormalityLevel:     "casual",
			EmojiUsage:         "moderate",
			PostingFrequency:   "regular",
			EngagementStyle:    "moderate",
			LanguageComplexity: "moderate",
		},
		ContentAnalysis: domain.ContentAnalysis{
			TopHashtags: []string{"#lifestyle", "#instagram"},
			PostingPatterns: domain.PostingPatterns{
				MostActiveTime:      "evening",
				MostActiveDay:       "weekend",
				AveragePostsPerWeek: avgPostsPerWeek,
			},
			ContentThemes: []string{"lifestyle", "social"},
			EngagementMetrics: domain.EngagementMetrics{
				AverageLikes:    avgLikes,
				AverageComments: avgComments,
				EngagementRate:  constants.EngagementDefaults.FallbackRate,
			},
		},
		SocialSignals: &domain.SocialSignals{
			LifestyleIndicators:     []string{"social_media_active", "digitally_connected"},
			Values:                  []string{"authenticity", "connection"},
			RelationshipReadiness:   "open_to_connections",
			CommunicationPreference: "visual_and_text",
		},
		Metadata: &domain.InsightMetadata{
			AnalyzedAt:         time.Now().Format(time.RFC3339),
			ConfidenceScore:    0.65,
			DataPointsAnalyzed: dataPoints,
		},
	}
}

// ValidateInsight enforces the minimum populated lengths on an Insight,
// backfilling from the default tables in order. Callers rely on these
// guarantees regardless of where the insight came from.
func ValidateInsight(insight *domain.Insight) {
	if len(insight.PersonalityTraits) < constants.InsightMinimums.PersonalityTraits {
		defaults := defaultTraits()
		missing := 3 - len(insight.PersonalityTraits)
		insight.PersonalityTraits = append(insight.PersonalityTraits, defaults[:missing]...)
	}

	if len(insight.Interests) < constants.InsightMinimums.Interests {
		defaults := defaultInterests()
		missing := 4 - len(insight.Interests)
		insight.Interests = append(insight.Interests, defaults[:missing]...)
	}

	if len(insight.ConversationStarters) < constants.InsightMinimums.ConversationStarters {
		defaults := defaultStarters()
		missing := 3 - len(insight.ConversationStarters)
		insight.ConversationStarters = append(insight.ConversationStarters, defaults[:missing]...)
	}

	if insight.SocialSignals == nil {
		insight.SocialSignals = defaultSocialSignals()
	}
}

// StartersRequest carries the typed inputs of conversation-starter generation.
type StartersRequest struct {
	Interests          []string
	PersonalityTraits  []string
	CommunicationStyle string
	Language           string
	Category           string
	Tone               string
	Count              int
}

// ConversationStarters generates openers for a previously analyzed profile,
// falling back to the language-conditioned static table on any failure.
func (s *AnalyzerService) ConversationStarters(ctx context.Context, req StartersRequest) []domain.ConversationStarter {
	interests := req.Interests
	if len(interests) > 3 {
		interests = interests[:3]
	}
	traits := req.PersonalityTraits
	if len(traits) > 2 {
		traits = traits[:2]
	}

	style := req.CommunicationStyle
	if style == "" {
		style = "casual"
	}

	promptText := prompt.BuildStartersPrompt(prompt.StartersPromptData{
		Count:              req.Count,
		Language:           req.Language,
		Interests:          strings.Join(interests, ", "),
		PersonalityTraits:  strings.Join(traits, ", "),
		CommunicationStyle: style,
		Category:           req.Category,
		Tone:               req.Tone,
	})

	var starters []domain.ConversationStarter
	if _, err := s.generator.GenerateJSON(ctx, promptText, PresetCreative, &starters, nil); err != nil || len(starters) == 0 {
		s.logger.Warn("Starter generation failed, using static fallback",
			zap.String("language", req.Language),
			zap.Error(err),
		)
		return FallbackStarters(req.Language, req.Category, req.Tone, req.Count)
	}

	if req.Count > 0 && len(starters) > req.Count {
		starters = starters[:req.Count]
	}
	return starters
}

// SuggestionsRequest carries the typed inputs of response-suggestion generation.
type SuggestionsRequest struct {
	Message  string
	Context  string
	Language string
	Styles   []string
}

// ResponseSuggestions generates styled replies to a message, falling back to
// the language-conditioned static table on any failure.
func (s *AnalyzerService) ResponseSuggestions(ctx context.Context, req SuggestionsRequest) []domain.ResponseSuggestion {
	promptText := prompt.BuildSuggestionsPrompt(prompt.SuggestionsPromptData{
		Message:  req.Message,
		Context:  req.Context,
		Language: req.Language,
		Styles:   req.Styles,
	})

	var suggestions []domain.ResponseSuggestion
	if _, err := s.generator.GenerateJSON(ctx, promptText, PresetCreative, &suggestions, nil); err != nil || len(suggestions) == 0 {
		s.logger.Warn("Suggestion generation failed, using static fallback",
			zap.String("language", req.Language),
			zap.Error(err),
		)
		return FallbackSuggestions(req.Language)
	}
	return suggestions
}
