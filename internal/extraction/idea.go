package extraction

import (
	"strings"

	"github.com/jonathan/presidential-roast/internal/types"
)

// Per-topic keyword sets for idea submissions.
var (
	techKeywords     = []string{"app", "ai", "software", "tech", "algorithm", "digital", "automation", "robot"}
	productKeywords  = []string{"product", "device", "gadget", "tool", "invention", "prototype"}
	serviceKeywords  = []string{"service", "subscription", "delivery", "consulting", "on-demand", "booking"}
	platformKeywords = []string{"platform", "marketplace", "network", "social", "community", "sharing"}
	financeKeywords  = []string{"money", "finance", "investment", "crypto", "revenue", "profit", "monetize", "bank"}
)

// detailedWordCount is the threshold above which an idea counts as detailed.
const detailedWordCount = 50

// extractIdea fills idea-specific topic flags and the detail flag.
func extractIdea(bundle *types.SignalBundle, text string) {
	lower := strings.ToLower(text)

	bundle.MentionsTech = containsAny(lower, techKeywords)
	bundle.MentionsProduct = containsAny(lower, productKeywords)
	bundle.MentionsService = containsAny(lower, serviceKeywords)
	bundle.MentionsPlatform = containsAny(lower, platformKeywords)
	bundle.MentionsFinance = containsAny(lower, financeKeywords)
	bundle.HasAppReference = strings.Contains(lower, "app")
	bundle.IsDetailed = bundle.WordCount > detailedWordCount
}
