package ai

import (
	"fmt"
	"strings"

	"github.com/kapu/insta-insight-go/internal/domain"
	"github.com/kapu/insta-insight-go/internal/util"
)

// interestKeyword maps bio trigger words to an interest entry. Order matters:
// the first match becomes the headline interest in templated starters.
type interestKeyword struct {
	Name     string
	Category string
	Triggers []string
}

var interestKeywords = []interestKeyword{
	{Name: "Photography", Category: "photography", Triggers: []string{"photo", "camera", "shot", "capture", "lens"}},
	{Name: "Travel", Category: "travel", Triggers: []string{"travel", "explore", "adventure", "journey", "wanderlust"}},
	{Name: "Fitness", Category: "fitness", Triggers: []string{"fitness", "gym", "workout", "health", "running"}},
	{Name: "Food", Category: "food", Triggers: []string{"food", "cook", "chef", "recipe", "foodie"}},
	{Name: "Art", Category: "art", Triggers: []string{"art", "creative", "design", "artist", "paint"}},
	{Name: "Music", Category: "music", Triggers: []string{"music", "song", "concert", "band", "guitar"}},
}

// detectInterestsFromBio scans the case-folded bio against the keyword table.
func detectInterestsFromBio(bio string) []domain.Interest {
	bioLower := util.Normalize(bio)

	var detected []domain.Interest
	for _, kw := range interestKeywords {
		for _, trigger := range kw.Triggers {
			if strings.Contains(bioLower, trigger) {
				detected = append(detected, domain.Interest{
					Name:       kw.Name,
					Confidence: 0.75,
					Category:   kw.Category,
				})
				break
			}
		}
	}
	return detected
}

func defaultTraits() []domain.PersonalityTrait {
	return []domain.PersonalityTrait{
		{
			Trait:       "Authentic",
			Confidence:  0.70,
			Description: "Shows genuine personality through posts",
			Evidence:    "Natural and unfiltered content style",
		},
		{
			Trait:       "Social",
			Confidence:  0.65,
			Description: "Enjoys sharing experiences with others",
			Evidence:    "Active social media presence",
		},
		{
			Trait:       "Creative",
			Confidence:  0.60,
			Description: "Expresses creativity through content choices",
			Evidence:    "Thoughtful post composition",
		},
	}
}

func defaultInterests() []domain.Interest {
	return []domain.Interest{
		{Name: "Social Media", Confidence: 0.80, Category: "technology"},
		{Name: "Photography", Confidence: 0.70, Category: "art"},
		{Name: "Lifestyle", Confidence: 0.65, Category: "wellness"},
		{Name: "Communication", Confidence: 0.60, Category: "social"},
	}
}

func defaultStarters() []string {
	return []string{
		"I'd love to learn more about your interests - what are you most passionate about?",
		"Your profile shows great personality! What's something fun you've been up to lately?",
		"I noticed we might have some interests in common - what do you enjoy doing in your free time?",
	}
}

func defaultSocialSignals() *domain.SocialSignals {
	return &domain.SocialSignals{
		LifestyleIndicators:     []string{"social_media_savvy"},
		Values:                  []string{"authenticity"},
		RelationshipReadiness:   "open_to_connections",
		CommunicationPreference: "digital_native",
	}
}

func templatedStarters(headlineInterest string) []string {
	return []string{
		fmt.Sprintf("I noticed from your bio that you're into %s - what got you started with that?", strings.ToLower(headlineInterest)),
		"Your profile caught my attention! What's something you're really passionate about?",
		"I'd love to learn more about what makes you tick - what do you enjoy doing most?",
	}
}

// FallbackStarters returns the static conversation-starter table for a language
// code. Thai is served only on the explicit "th" code; every other code gets
// the English table.
func FallbackStarters(language, category, tone string, count int) []domain.ConversationStarter {
	if category == "" {
		category = "general"
	}

	var starters []domain.ConversationStarter
	if language == "th" {
		starters = []domain.ConversationStarter{
			{
				ID:            "starter-1",
				Category:      category,
				Tone:          tone,
				Text:          "สวัสดีครับ/ค่ะ เห็นว่าคุณสนใจเรื่องนี้ด้วยนะ อยากฟังความคิดเห็นของคุณเกี่ยวกับเรื่องนี้",
				Context:       "เริ่มต้นการสนทนาทั่วไป",
				CulturalNotes: "การทักทายแบบสุภาพในวัฒนธรรมไทย",
			},
			{
				ID:            "starter-2",
				Category:      category,
				Tone:          tone,
				Text:          "เห็นโปรไฟล์แล้วดูน่าสนใจมากเลย มีอะไรแนะนำไหมคะ?",
				Context:       "แสดงความสนใจในโปรไฟล์",
				CulturalNotes: "การแสดงความสนใจอย่างสุภาพ",
			},
		}
	} else {
		starters = []domain.ConversationStarter{
			{
				ID:            "starter-1",
				Category:      category,
				Tone:          tone,
				Text:          "I noticed we have some similar interests! What got you into that?",
				Context:       "Opening based on shared interests",
				CulturalNotes: "Shows genuine interest in learning about them",
			},
			{
				ID:            "starter-2",
				Category:      category,
				Tone:          tone,
				Text:          "Your profile caught my attention! What's something you're really passionate about lately?",
				Context:       "General opener showing interest",
				CulturalNotes: "Casual and engaging tone",
			},
		}
	}

	if count > 0 && count < len(starters) {
		starters = starters[:count]
	}
	return starters
}

// FallbackSuggestions returns the static response-suggestion table for a
// language code, with the same th/en selection rule as FallbackStarters.
func FallbackSuggestions(language string) []domain.ResponseSuggestion {
	if language == "th" {
		return []domain.ResponseSuggestion{
			{
				Type:      "engaging",
				Text:      "น่าสนใจมากเลย! อยากรู้รายละเอียดเพิ่มเติม",
				Reasoning: "แสดงความสนใจและขอข้อมูลเพิ่ม",
			},
			{
				Type:      "supportive",
				Text:      "เก่งมากเลยครับ/ค่ะ! ให้กำลังใจ",
				Reasoning: "ให้การสนับสนุนและกำลังใจ",
			},
		}
	}

	return []domain.ResponseSuggestion{
		{
			Type:      "engaging",
			Text:      "That's really interesting! I'd love to hear more about that.",
			Reasoning: "Shows genuine interest and encourages them to share more",
		},
		{
			Type:      "supportive",
			Text:      "That sounds amazing! You should be proud of that accomplishment.",
			Reasoning: "Provides positive reinforcement and acknowledgment",
		},
	}
}
