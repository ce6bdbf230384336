// Package scoring computes the heuristic roast score. The score is a pure
// function of the text: identical input always yields the identical score.
// Randomness in the pipeline happens before scoring and is frozen into the
// text by the time this runs.
package scoring

import "strings"

// The canonical scale is 0-100. Earlier iterations of the product mixed a
// 1-10 scale into some paths; this package is the single source of truth now.
const (
	// MinScore and MaxScore bound the scale.
	MinScore = 0
	MaxScore = 100

	// BaseScore is the starting point before adjustments.
	BaseScore = 50

	// phraseBonus is added once per distinct emphasis phrase found.
	phraseBonus = 5

	// capsWeight and capsCap control the ALL-CAPS run term.
	capsWeight = 3
	capsCap    = 15

	// exclamationWeight and exclamationCap control the "!" term.
	exclamationWeight = 2
	exclamationCap    = 10

	// lengthDivisor and lengthCap control the length term.
	lengthDivisor = 50
	lengthCap     = 10
)

// emphasisPhrases is the fixed vocabulary of signature phrases. Each phrase
// contributes at most once no matter how often it appears.
var emphasisPhrases = []string{
	"tremendous", "huge", "bigly", "sad", "fake", "believe me",
	"loser", "winner", "the best", "nobody knows", "everyone says",
	"low energy",
}

// Score computes the heuristic score for a roast, clamped to [MinScore,
// MaxScore]. It is monotonic non-decreasing in the number of matched
// emphasis phrases, all else held constant.
func Score(text string) int {
	score := BaseScore
	lower := strings.ToLower(text)

	for _, phrase := range emphasisPhrases {
		if strings.Contains(lower, phrase) {
			score += phraseBonus
		}
	}

	score += capped(countCapsRuns(text)*capsWeight, capsCap)
	score += capped(strings.Count(text, "!")*exclamationWeight, exclamationCap)
	score += capped(len(text)/lengthDivisor, lengthCap)

	if score > MaxScore {
		return MaxScore
	}
	if score < MinScore {
		return MinScore
	}
	return score
}

// countCapsRuns counts maximal runs of consecutive uppercase letters with
// length >= 2. "SAD! HUGE win" has two runs; "iPhone" has none.
func countCapsRuns(text string) int {
	runs := 0
	runLen := 0
	for _, r := range text {
		if r >= 'A' && r <= 'Z' {
			runLen++
			continue
		}
		if runLen >= 2 {
			runs++
		}
		runLen = 0
	}
	if runLen >= 2 {
		runs++
	}
	return runs
}

func capped(value, cap int) int {
	if value > cap {
		return cap
	}
	return value
}
