package domain

// PersonalityTrait is a single AI-derived personality observation.
type PersonalityTrait struct {
	Trait       string  `json:"trait"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
	Evidence    string  `json:"evidence"`
}

// Interest is a detected interest with a coarse category.
type Interest struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	Category   string  `json:"category"`
}

// CommunicationStyle describes how the account communicates.
type CommunicationStyle struct {
	Tone               string `json:"tone"`
	FormalityLevel     string `json:"formality_level"`
	EmojiUsage         string `json:"emoji_usage"`
	PostingFrequency   string `json:"posting_frequency"`
	EngagementStyle    string `json:"engagement_style"`
	LanguageComplexity string `json:"language_complexity"`
}

// PostingPatterns estimates when and how often the account posts.
type PostingPatterns struct {
	MostActiveTime      string `json:"most_active_time"`
	MostActiveDay       string `json:"most_active_day"`
	AveragePostsPerWeek int    `json:"average_posts_per_week"`
}

// EngagementMetrics holds per-post engagement estimates. Values are floats
// because heuristic estimates are fractions of the follower count.
type EngagementMetrics struct {
	AverageLikes    float64 `json:"average_likes"`
	AverageComments float64 `json:"average_comments"`
	EngagementRate  float64 `json:"engagement_rate"`
}

// ContentAnalysis aggregates hashtag, pattern and engagement observations.
type ContentAnalysis struct {
	TopHashtags       []string          `json:"top_hashtags"`
	PostingPatterns   PostingPatterns   `json:"posting_patterns"`
	ContentThemes     []string          `json:"content_themes"`
	EngagementMetrics EngagementMetrics `json:"engagement_metrics"`
}

// SocialSignals captures softer lifestyle/compatibility indicators.
type SocialSignals struct {
	LifestyleIndicators     []string `json:"lifestyle_indicators"`
	Values                  []string `json:"values"`
	RelationshipReadiness   string   `json:"relationship_readiness"`
	CommunicationPreference string   `json:"communication_preference"`
}

// InsightMetadata records provenance of an analysis.
type InsightMetadata struct {
	AnalyzedAt         string  `json:"analyzed_at"`
	ConfidenceScore    float64 `json:"confidence_score"`
	DataPointsAnalyzed int     `json:"data_points_analyzed"`
}

// Insight is the derived personality/interest analysis of a profile. After
// post-validation every list is guaranteed a minimum populated length.
type Insight struct {
	PersonalityTraits    []PersonalityTrait `json:"personality_traits"`
	Interests            []Interest         `json:"interests"`
	ConversationStarters []string           `json:"conversation_starters"`
	CommunicationStyle   CommunicationStyle `json:"communication_style"`
	ContentAnalysis      ContentAnalysis    `json:"content_analysis"`
	SocialSignals        *SocialSignals     `json:"social_signals"`
	Metadata             *InsightMetadata   `json:"metadata,omitempty"`
}

// ConversationStarter is a single generated opener.
type ConversationStarter struct {
	ID            string `json:"id"`
	Category      string `json:"category"`
	Tone          string `json:"tone"`
	Text          string `json:"text"`
	Context       string `json:"context"`
	CulturalNotes string `json:"cultural_notes"`
}

// ResponseSuggestion is a single generated reply in a given style.
type ResponseSuggestion struct {
	Type      string `json:"type"`
	Text      string `json:"text"`
	Reasoning string `json:"reasoning"`
}
