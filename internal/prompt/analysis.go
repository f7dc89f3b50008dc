package prompt

import (
	"fmt"
	"strings"
)

// BuildAnalysisPrompt renders the full profile-analysis instruction block. The
// JSON schema embedded below is a contract with the response parser: field
// names, nesting and example values must stay aligned with domain.Insight.
func BuildAnalysisPrompt(data AnalysisPromptData) string {
	return fmt.Sprintf(`You are an expert social media analyst specializing in personality insights for dating and social networking apps. Analyze this Instagram profile and provide detailed insights that would help someone understand this person's personality, interests, and how to connect with them.

PROFILE DATA:
Name: %s
Username: @%s
Bio: "%s"
Followers: %s
Following: %s
Posts: %d
Engagement Rate: %.1f%%

RECENT POST CONTENT:
%s

HASHTAGS USED: %s

ANALYSIS INSTRUCTIONS:
1. Focus on personality traits that would be relevant for dating/friendship connections
2. Identify genuine interests (not just surface-level hobbies)
3. Create conversation starters that feel natural and engaging
4. Analyze communication style for compatibility insights
5. Provide realistic confidence scores based on evidence

Return ONLY a valid JSON object with this EXACT structure:

%s

IMPORTANT GUIDELINES:
- Base ALL insights on actual profile data provided
- Use confidence scores between 0.6-0.95 (be realistic)
- Focus on positive traits and genuine interests
- Make conversation starters specific and personalized
- Ensure all JSON is valid and properly formatted
- Categories for interests: art, travel, fitness, food, music, technology, wellness, sports, business, fashion`,
		data.DisplayName,
		data.Username,
		data.Bio,
		formatCount(data.FollowerCount),
		formatCount(data.FollowingCount),
		data.PostCount,
		data.EngagementRate,
		data.PostsText,
		data.HashtagsLine,
		AnalysisSchemaExample(data),
	)
}

// AnalysisSchemaExample renders the example response object shown to the model.
// Exported so tests can verify the example round-trips through the tolerant
// decoder unchanged.
func AnalysisSchemaExample(data AnalysisPromptData) string {
	return fmt.Sprintf(`{
  "personality_traits": [
    {
      "trait": "Creative",
      "confidence": 0.85,
      "description": "Demonstrates artistic expression and creative thinking through visual content and captions",
      "evidence": "Multiple artistic posts with thoughtful composition and creative captions"
    },
    {
      "trait": "Adventurous",
      "confidence": 0.72,
      "description": "Shows willingness to try new experiences and explore different places",
      "evidence": "Travel posts and trying new activities"
    },
    {
      "trait": "Social",
      "confidence": 0.68,
      "description": "Enjoys connecting with others and sharing experiences",
      "evidence": "Group photos and social event posts"
    }
  ],
  "interests": [
    {
      "name": "Photography",
      "confidence": 0.90,
      "category": "art"
    },
    {
      "name": "Travel",
      "confidence": 0.85,
      "category": "travel"
    },
    {
      "name": "Fitness",
      "confidence": 0.75,
      "category": "wellness"
    },
    {
      "name": "Food & Cooking",
      "confidence": 0.70,
      "category": "food"
    }
  ],
  "conversation_starters": [
    "I noticed you have a great eye for photography - what got you into capturing those kinds of moments?",
    "Your travel photos are incredible! What's been your favorite destination so far?",
    "I love your creative content - do you have any tips for someone just getting into [specific interest]?"
  ],
  "communication_style": {
    "tone": "warm",
    "formality_level": "casual",
    "emoji_usage": "moderate",
    "posting_frequency": "regular",
    "engagement_style": "interactive",
    "language_complexity": "moderate"
  },
  "content_analysis": {
    "top_hashtags": %s,
    "posting_patterns": {
      "most_active_time": "evening",
      "most_active_day": "weekend",
      "average_posts_per_week": %d
    },
    "content_themes": ["photography", "lifestyle", "travel", "food"],
    "engagement_metrics": {
      "average_likes": %d,
      "average_comments": %d,
      "engagement_rate": %.1f
    }
  },
  "social_signals": {
    "lifestyle_indicators": ["urban_professional", "creative_type", "social_butterfly"],
    "values": ["authenticity", "creativity", "adventure"],
    "relationship_readiness": "open_to_connections",
    "communication_preference": "visual_storytelling"
  },
  "metadata": {
    "analyzed_at": "%s",
    "confidence_score": 0.82,
    "data_points_analyzed": %d
  }
}`,
		data.TopHashtagsJSON,
		data.AvgPostsPerWeek,
		data.AvgLikes,
		data.AvgComments,
		data.EngagementRate,
		data.AnalyzedAt,
		data.DataPoints,
	)
}

// formatCount renders an integer with thousands separators ("12,345").
func formatCount(n int) string {
	s := fmt.Sprintf("%d", n)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	result := strings.Join(groups, ",")
	if negative {
		result = "-" + result
	}
	return result
}
