package prompt

import (
	"fmt"
	"strings"
)

// BuildStartersPrompt renders the conversation-starter generation prompt.
func BuildStartersPrompt(data StartersPromptData) string {
	category := data.Category
	if category == "" {
		category = "general"
	}

	return fmt.Sprintf(`Generate %d conversation starters in %s language for someone with these characteristics:

Interests: %s
Personality Traits: %s
Communication Style: %s
Preferred Category: %s
Preferred Tone: %s

Generate conversation starters that are:
1. Natural and engaging
2. Based on the person's interests
3. Appropriate for %s culture
4. In %s tone

Return ONLY a JSON array with this format:
[
  {
    "id": "starter-1",
    "category": "%s",
    "tone": "%s",
    "text": "Your conversation starter text here",
    "context": "Context about when to use this starter",
    "cultural_notes": "Any cultural considerations"
  }
]`,
		data.Count,
		data.Language,
		data.Interests,
		data.PersonalityTraits,
		data.CommunicationStyle,
		category,
		data.Tone,
		data.Language,
		data.Tone,
		category,
		data.Tone,
	)
}

// BuildSuggestionsPrompt renders the response-suggestion generation prompt.
func BuildSuggestionsPrompt(data SuggestionsPromptData) string {
	return fmt.Sprintf(`Generate response suggestions in %s language for this message: "%s"

Context: %s

Generate %d different response styles: %s

Each response should be:
1. Natural and contextually appropriate
2. Match the specified style
3. Be culturally appropriate for %s
4. Include reasoning for why this response works

Return ONLY a JSON array with this format:
[
  {
    "type": "engaging",
    "text": "Your response text here",
    "reasoning": "Why this response works well"
  }
]`,
		data.Language,
		data.Message,
		data.Context,
		len(data.Styles),
		strings.Join(data.Styles, ", "),
		data.Language,
	)
}
