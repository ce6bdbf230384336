// Package extraction derives naive signals from submitted text: section
// keywords, skill fragments, entity guesses and simple counts. Everything
// here is deterministic string work; no network, no randomness.
package extraction

import (
	"strings"

	"github.com/jonathan/presidential-roast/internal/types"
)

// Extract produces a SignalBundle for the given category and raw text.
// Calling it twice with identical input yields an identical bundle.
// An empty-after-trim input returns a bundle with all flags false; rejecting
// empty submissions is the caller's job, before the pipeline runs.
func Extract(category types.Category, rawText string) *types.SignalBundle {
	bundle := &types.SignalBundle{Category: category}

	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return bundle
	}

	bundle.TextLength = len(trimmed)
	bundle.WordCount = len(strings.Fields(trimmed))
	bundle.Preview = preview(trimmed, previewLength)

	switch category {
	case types.CategoryResume:
		extractResume(bundle, trimmed)
	case types.CategoryIdea:
		extractIdea(bundle, trimmed)
	case types.CategoryTwitter:
		extractTwitter(bundle, trimmed)
	}

	return bundle
}

// previewLength is how much of the submission gets echoed back verbatim.
const previewLength = 40

// preview returns the first n bytes of text without splitting a word,
// trimming any trailing partial token.
func preview(text string, n int) string {
	if len(text) <= n {
		return text
	}
	cut := text[:n]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut)
}

// containsAny reports whether the lowercased text contains any of the terms.
func containsAny(lower string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// matchedTerms returns the subset of terms contained in the lowercased text.
func matchedTerms(lower string, terms []string) []string {
	var matched []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			matched = append(matched, term)
		}
	}
	return matched
}
