package prompt

// AnalysisPromptData holds the computed values embedded into the profile
// analysis prompt.
type AnalysisPromptData struct {
	DisplayName     string
	Username        string
	Bio             string
	FollowerCount   int
	FollowingCount  int
	PostCount       int
	EngagementRate  float64
	PostsText       string
	HashtagsLine    string
	TopHashtagsJSON string
	AvgPostsPerWeek int
	AvgLikes        int
	AvgComments     int
	AnalyzedAt      string
	DataPoints      int
}

// StartersPromptData holds the inputs for the conversation-starter prompt.
type StartersPromptData struct {
	Count              int
	Language           string
	Interests          string
	PersonalityTraits  string
	CommunicationStyle string
	Category           string
	Tone               string
}

// SuggestionsPromptData holds the inputs for the response-suggestion prompt.
type SuggestionsPromptData struct {
	Message  string
	Context  string
	Language string
	Styles   []string
}
