// Package types defines the shared data structures passed between pipeline stages.
package types

import "strings"

// Category identifies what kind of content is being roasted.
type Category string

// Category constants define the supported submission kinds
const (
	// CategoryIdea is a business or product idea
	CategoryIdea Category = "idea"
	// CategoryResume is resume or qualification text
	CategoryResume Category = "resume"
	// CategoryTwitter is a social media handle
	CategoryTwitter Category = "twitter"
)

// Valid reports whether the category is one of the supported kinds.
func (c Category) Valid() bool {
	switch c {
	case CategoryIdea, CategoryResume, CategoryTwitter:
		return true
	}
	return false
}

// Submission is a single roast request. It is immutable and discarded after
// one pipeline run; nothing here is persisted unless the archive is enabled.
type Submission struct {
	Category Category `json:"type" validate:"required"`
	RawText  string   `json:"content" validate:"required"`
}

// SignalBundle holds the read-only facts extracted from a submission.
// A bundle is scoped to one pipeline run and never shared across requests.
type SignalBundle struct {
	Category Category

	// Resume signals
	HasEducation  bool
	HasExperience bool
	HasSkills     bool
	Skills        []string // extracted skill fragments, original casing
	Buzzwords     []string // matched corporate buzzwords, lowercase
	Entity        string   // best-guess company or institution name, may be empty

	// Idea signals
	MentionsTech     bool
	MentionsProduct  bool
	MentionsService  bool
	MentionsPlatform bool
	MentionsFinance  bool
	HasAppReference  bool // literal "app" substring
	IsDetailed       bool // word count > 50

	// Twitter signals
	Handle         string // handle with leading @ stripped
	HasNumbers     bool
	HasUnderscores bool
	IsAllCaps      bool
	CommonTerms    []string // matched vanity terms (crypto, nft, guru, ...)

	// Shared across categories
	Preview    string // first ~40 chars of the trimmed submission, original casing
	WordCount  int
	TextLength int
}

// Empty reports whether the bundle carries no usable signal at all.
func (b *SignalBundle) Empty() bool {
	return b.TextLength == 0 && strings.TrimSpace(b.Handle) == ""
}

// RoastResult is the final packaged outcome of one pipeline run.
// Score is a pure function of Text; IsExecutiveOrder is an independent
// random draw and RewardTokens a step function of Score.
type RoastResult struct {
	Text             string `json:"roast"`
	Score            int    `json:"score"`
	IsExecutiveOrder bool   `json:"isExecutiveOrder"`
	RewardTokens     int    `json:"rewardTokens"`
	ImageURL         string `json:"imageUrl"`
	Analysis         string `json:"analysis,omitempty"`
}
