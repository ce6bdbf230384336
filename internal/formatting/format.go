// Package formatting packages roast text and score into the final result:
// the executive-order flag, the reward-token tier, and a reaction image.
package formatting

import (
	"fmt"
	"math/rand/v2"

	"github.com/jonathan/presidential-roast/internal/types"
)

// executiveOrderProbability is the chance a roast gets stamped as an
// executive order. The draw is independent of the score.
const executiveOrderProbability = 0.10

// highScoreThreshold selects which image pool a result draws from.
const highScoreThreshold = 70

// Reaction image pools. The pick within the chosen pool is uniform.
var (
	highScoreImages = []string{
		"https://media.giphy.com/media/j6ZlX8ghxNFRknObVk/giphy.gif",
		"https://media.giphy.com/media/1ube10l4xArN6/giphy.gif",
	}
	lowScoreImages = []string{
		"https://media.giphy.com/media/xTiTnHXbRoaZ1B1Mo8/giphy.gif",
		"https://media.giphy.com/media/xTiTnvFvRnmYGl6CEE/giphy.gif",
	}
)

// RewardTokens maps a score to its reward-token amount. The bands are fixed
// product policy on the 0-100 scale.
func RewardTokens(score int) int {
	switch {
	case score >= 90:
		return 100
	case score >= 80:
		return 75
	case score >= 70:
		return 50
	case score >= 50:
		return 25
	default:
		return 10
	}
}

// Format assembles the final RoastResult for a (text, score) pair. With an
// identically-seeded rng the output is fully deterministic; in production the
// executive-order flag and image pick are independent random draws.
func Format(text string, score int, rng *rand.Rand) types.RoastResult {
	pool := lowScoreImages
	if score >= highScoreThreshold {
		pool = highScoreImages
	}

	return types.RoastResult{
		Text:             text,
		Score:            score,
		IsExecutiveOrder: rng.Float64() < executiveOrderProbability,
		RewardTokens:     RewardTokens(score),
		ImageURL:         pool[rng.IntN(len(pool))],
		Analysis:         Analysis(score),
	}
}

// Analysis produces the one-line presidential verdict shown under the roast.
func Analysis(score int) string {
	switch {
	case score >= 90:
		return fmt.Sprintf("Rated %d/100. A PERFECT roast. Maybe the most perfect roast in history.", score)
	case score >= 70:
		return fmt.Sprintf("Rated %d/100. Very strong roast, very powerful. People are talking.", score)
	case score >= 50:
		return fmt.Sprintf("Rated %d/100. A fine roast. Not my best work, but my worst is still tremendous.", score)
	default:
		return fmt.Sprintf("Rated %d/100. Low energy roast. The material was weak, frankly.", score)
	}
}
