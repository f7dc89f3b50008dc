package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var whitespaceRunPattern = regexp.MustCompile(`\s+`)

// StripCodeFence removes a surrounding markdown code fence from model output.
// Both language-tagged fences ("```json") and bare fences ("```") are accepted;
// unfenced text is returned trimmed and otherwise unchanged.
func StripCodeFence(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.HasPrefix(cleaned, "```json") {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "```json"))
	} else if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimSpace(strings.TrimPrefix(cleaned, "```"))
	}
	if strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimSpace(strings.TrimSuffix(cleaned, "```"))
	}

	return cleaned
}

// DecodeModelJSON decodes loosely-structured model output into dest. The raw
// text is treated as untrusted: the fence is stripped and whitespace runs are
// collapsed to single spaces before decoding, since models interleave
// formatting newlines that are not parser-clean.
func DecodeModelJSON(text string, dest any) error {
	cleaned := StripCodeFence(text)
	if cleaned == "" {
		return fmt.Errorf("empty model response")
	}

	cleaned = whitespaceRunPattern.ReplaceAllString(cleaned, " ")

	if err := json.Unmarshal([]byte(cleaned), dest); err != nil {
		return fmt.Errorf("decode model JSON: %w", err)
	}
	return nil
}
