package ai

import (
	"testing"
	"time"

	"github.com/kapu/insta-insight-go/internal/domain"
	"github.com/kapu/insta-insight-go/internal/prompt"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"unfenced", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  \n{\"a\":1}\n  ", `{"a":1}`},
		{"fence without newline", "```json{\"a\":1}```", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.input); got != tt.want {
				t.Errorf("StripCodeFence(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripCodeFenceIdempotent(t *testing.T) {
	input := "```json\n{\"a\": 1}\n```"
	once := StripCodeFence(input)
	if twice := StripCodeFence(once); twice != once {
		t.Errorf("second strip changed output: %q -> %q", once, twice)
	}
}

func TestDecodeModelJSON(t *testing.T) {
	var dest struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	fenced := "```json\n{\n  \"name\": \"jane\",\n  \"count\": 3\n}\n```"
	if err := DecodeModelJSON(fenced, &dest); err != nil {
		t.Fatalf("DecodeModelJSON failed: %v", err)
	}
	if dest.Name != "jane" || dest.Count != 3 {
		t.Errorf("unexpected decode result: %+v", dest)
	}
}

func TestDecodeModelJSONErrors(t *testing.T) {
	var dest map[string]any

	if err := DecodeModelJSON("", &dest); err == nil {
		t.Error("expected error for empty input")
	}
	if err := DecodeModelJSON("```json\n```", &dest); err == nil {
		t.Error("expected error for fence-only input")
	}
	if err := DecodeModelJSON("not json at all", &dest); err == nil {
		t.Error("expected error for non-JSON input")
	}
}

// The schema example embedded in the analysis prompt must round-trip through
// the tolerant decoder: if it stops parsing, the model is being shown a shape
// the service itself cannot read.
func TestAnalysisSchemaExampleRoundTrip(t *testing.T) {
	example := prompt.AnalysisSchemaExample(prompt.AnalysisPromptData{
		TopHashtagsJSON: `["#photo", "#travel"]`,
		AvgPostsPerWeek: 4,
		AvgLikes:        120,
		AvgComments:     14,
		EngagementRate:  2.7,
		AnalyzedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC).Format(time.RFC3339),
		DataPoints:      12,
	})

	var insight domain.Insight
	if err := DecodeModelJSON(example, &insight); err != nil {
		t.Fatalf("schema example does not decode: %v", err)
	}

	if len(insight.PersonalityTraits) != 3 {
		t.Errorf("expected 3 traits in example, got %d", len(insight.PersonalityTraits))
	}
	if len(insight.Interests) != 4 {
		t.Errorf("expected 4 interests in example, got %d", len(insight.Interests))
	}
	if len(insight.ConversationStarters) != 3 {
		t.Errorf("expected 3 starters in example, got %d", len(insight.ConversationStarters))
	}
	if insight.SocialSignals == nil {
		t.Error("expected social_signals in example")
	}
	if insight.Metadata == nil || insight.Metadata.DataPointsAnalyzed != 12 {
		t.Errorf("unexpected metadata: %+v", insight.Metadata)
	}
	if insight.ContentAnalysis.EngagementMetrics.EngagementRate != 2.7 {
		t.Errorf("engagement rate = %v, want 2.7", insight.ContentAnalysis.EngagementMetrics.EngagementRate)
	}
}
