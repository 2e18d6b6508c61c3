package service

import "strings"

// searchPrefix forces a web lookup regardless of keywords.
const searchPrefix = "search:"

var searchKeywords = []string{"latest", "today", "current", "news", "trending", "who won", "real-time"}

// NeedsSearch reports whether the prompt asks for fresh information.
func NeedsSearch(prompt string) bool {
	lower := strings.ToLower(prompt)
	if strings.HasPrefix(lower, searchPrefix) {
		return true
	}
	for _, k := range searchKeywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
