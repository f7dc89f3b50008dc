package constants

import "time"

var APIConfig = struct {
	ApifyBaseURL      string
	ProfileActorID    string
	ApifyTimeout      time.Duration
	GenerationTimeout time.Duration
	ImageProxyTimeout time.Duration
}{
	ApifyBaseURL:      "https://api.apify.com/v2",
	ProfileActorID:    "apify~instagram-profile-scraper",
	ApifyTimeout:      120 * time.Second,
	GenerationTimeout: 60 * time.Second,
	ImageProxyTimeout: 30 * time.Second,
}

var ScrapeDefaults = struct {
	ResultsLimit  int
	PostsLimit    int
	AddParentData bool
}{
	ResultsLimit:  15,
	PostsLimit:    10,
	AddParentData: true,
}

var AIInputLimits = struct {
	MaxCaptionSample int
	MaxHashtags      int
	MaxPromptLength  int
}{
	MaxCaptionSample: 10,
	MaxHashtags:      10,
	MaxPromptLength:  20000,
}

var InsightMinimums = struct {
	PersonalityTraits    int
	Interests            int
	ConversationStarters int
}{
	PersonalityTraits:    2,
	Interests:            2,
	ConversationStarters: 2,
}

var EngagementDefaults = struct {
	LikesShare    float64 // share of followers when no post sample exists
	CommentsShare float64
	MinLikes      float64
	MinComments   float64
	FallbackRate  float64
}{
	LikesShare:    0.03,
	CommentsShare: 0.005,
	MinLikes:      10,
	MinComments:   2,
	FallbackRate:  3.5,
}

// ImageProxyUserAgent mimics a desktop browser so CDNs serve the original bytes.
const ImageProxyUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
