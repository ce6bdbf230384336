package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_BaseOnly(t *testing.T) {
	assert.Equal(t, BaseScore, Score(""))
	assert.Equal(t, BaseScore, Score("a plain sentence with no emphasis at all"))
}

func TestScore_ExactBreakdown(t *testing.T) {
	// phrases: huge, believe me (+10); caps runs: HUGE, DISASTER (+6);
	// one "!" (+2); 46 chars (+0).
	text := "This idea is HUGE, believe me. Total DISASTER!"
	assert.Equal(t, 68, Score(text))
}

func TestScore_PhraseCountsOnce(t *testing.T) {
	once := Score("tremendous")
	twice := Score("tremendous tremendous")
	// Identical phrase set; only the length term may differ.
	assert.Equal(t, once, twice)
}

func TestScore_MonotonicInPhrases(t *testing.T) {
	base := "a roast without any signature words in it now"
	assert.Greater(t, Score(base+" tremendous"), Score(base))
	assert.Greater(t, Score(base+" tremendous bigly"), Score(base+" tremendous"))
}

func TestScore_CapsApply(t *testing.T) {
	// All terms at their caps: caps 15, exclamations 10, length 10, plus
	// the single "sad" phrase.
	text := strings.Repeat("SAD! ", 200)
	assert.Equal(t, BaseScore+5+15+10+10, Score(text))
}

func TestScore_ClampedToMax(t *testing.T) {
	text := strings.Join([]string{
		"tremendous", "huge", "bigly", "sad", "fake", "believe me",
		"loser", "winner", "the best", "nobody knows", "everyone says",
		"low energy",
	}, " ") + " TOTAL WIN!!! " + strings.Repeat("x", 600)
	assert.Equal(t, MaxScore, Score(text))
}

func TestScore_Deterministic(t *testing.T) {
	text := "FAKE news, low energy loser. SAD!"
	want := Score(text)
	for i := 0; i < 100; i++ {
		assert.Equal(t, want, Score(text))
	}
}

func TestCountCapsRuns(t *testing.T) {
	assert.Equal(t, 2, countCapsRuns("SAD! HUGE win"))
	assert.Equal(t, 0, countCapsRuns("iPhone"))
	assert.Equal(t, 0, countCapsRuns("A B C"))
	assert.Equal(t, 1, countCapsRuns("ends in CAPS"))
	assert.Equal(t, 0, countCapsRuns(""))
}
