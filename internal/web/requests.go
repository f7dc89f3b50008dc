package web

// Request bodies are explicit structs with named defaults applied after
// parsing; absent fields become well-typed zero values, never ad hoc map
// lookups.

// ScrapeRequest is the generic batch-scrape request body.
type ScrapeRequest struct {
	Usernames     []string `json:"usernames"`
	ResultsLimit  *int     `json:"results_limit"`
	AddParentData *bool    `json:"add_parent_data"`
}

func (r *ScrapeRequest) Limit(fallback int) int {
	if r.ResultsLimit != nil && *r.ResultsLimit > 0 {
		return *r.ResultsLimit
	}
	return fallback
}

func (r *ScrapeRequest) ParentData(fallback bool) bool {
	if r.AddParentData != nil {
		return *r.AddParentData
	}
	return fallback
}

// ProfileURLRequest is the product-frontend request body carrying a profile URL.
type ProfileURLRequest struct {
	ProfileURL string `json:"profileUrl"`
}

// ProfileAnalysisInput is the caller-supplied summary of a prior analysis used
// to seed conversation starters.
type ProfileAnalysisInput struct {
	Interests          []string `json:"interests"`
	PersonalityTraits  []string `json:"personality_traits"`
	CommunicationStyle string   `json:"communication_style"`
}

// StartersRequest is the conversation-starter request body.
type StartersRequest struct {
	ProfileAnalysis ProfileAnalysisInput `json:"profile_analysis"`
	Language        string               `json:"language"`
	Category        string               `json:"category"`
	Tone            string               `json:"tone"`
	Count           int                  `json:"count"`
}

func (r *StartersRequest) ApplyDefaults() {
	if r.Language == "" {
		r.Language = "en"
	}
	if r.Tone == "" {
		r.Tone = "casual"
	}
	if r.Count <= 0 {
		r.Count = 8
	}
}

// SuggestionsRequest is the response-suggestion request body.
type SuggestionsRequest struct {
	Message  string   `json:"message"`
	Context  string   `json:"context"`
	Language string   `json:"language"`
	Styles   []string `json:"styles"`
}

func (r *SuggestionsRequest) ApplyDefaults() {
	if r.Language == "" {
		r.Language = "en"
	}
	if len(r.Styles) == 0 {
		r.Styles = []string{"engaging", "playful", "supportive", "professional"}
	}
}
