package domain

import "strings"

const (
	// InstagramBaseURL is the canonical profile URL prefix.
	InstagramBaseURL = "https://www.instagram.com/"

	domainMarker = "instagram.com/"
)

// UsernameToURL converts an Instagram username to its canonical profile URL.
// A leading "@" and surrounding whitespace are stripped first.
func UsernameToURL(username string) string {
	clean := strings.TrimSpace(strings.ReplaceAll(username, "@", ""))
	return InstagramBaseURL + clean + "/"
}

// UsernameFromURL extracts the username from an Instagram profile URL. Sub-paths
// after the username (e.g. /p/<shortcode>/) are discarded. Inputs that do not
// contain the instagram.com marker are returned unchanged, so callers may pass a
// bare username where a URL is expected and get it back.
func UsernameFromURL(url string) string {
	idx := strings.LastIndex(url, domainMarker)
	if idx == -1 {
		return url
	}

	username := strings.TrimSuffix(url[idx+len(domainMarker):], "/")
	if slash := strings.Index(username, "/"); slash != -1 {
		username = username[:slash]
	}
	return username
}

// PostURL builds the canonical post URL for a short code. Empty short codes
// yield an empty URL, not a degenerate one.
func PostURL(shortCode string) string {
	if shortCode == "" {
		return ""
	}
	return InstagramBaseURL + "p/" + shortCode + "/"
}
