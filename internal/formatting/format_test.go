package formatting

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestRewardTokens_Tiers(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{100, 100}, {90, 100},
		{89, 75}, {80, 75},
		{79, 50}, {70, 50},
		{69, 25}, {50, 25},
		{49, 10}, {0, 10},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RewardTokens(tc.score), "score %d", tc.score)
	}
}

func TestFormat_ImagePoolByScore(t *testing.T) {
	rng := seeded()
	high := Format("text", 85, rng)
	assert.Contains(t, highScoreImages, high.ImageURL)

	low := Format("text", 40, rng)
	assert.Contains(t, lowScoreImages, low.ImageURL)
}

func TestFormat_PoolBoundary(t *testing.T) {
	rng := seeded()
	assert.Contains(t, highScoreImages, Format("t", highScoreThreshold, rng).ImageURL)
	assert.Contains(t, lowScoreImages, Format("t", highScoreThreshold-1, rng).ImageURL)
}

func TestFormat_DeterministicWithSeed(t *testing.T) {
	first := Format("believe me", 73, seeded())
	second := Format("believe me", 73, seeded())
	require.Equal(t, first, second)
}

func TestFormat_ExecutiveOrderRate(t *testing.T) {
	rng := seeded()
	flagged := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if Format("t", 50, rng).IsExecutiveOrder {
			flagged++
		}
	}
	// p = 0.10; allow generous slack for the fixed seed.
	assert.InDelta(t, trials/10, flagged, float64(trials)*0.03)
}

func TestFormat_CarriesScoreAndTokens(t *testing.T) {
	result := Format("roast text", 92, seeded())

	assert.Equal(t, "roast text", result.Text)
	assert.Equal(t, 92, result.Score)
	assert.Equal(t, 100, result.RewardTokens)
	assert.Contains(t, result.Analysis, "92/100")
}

func TestAnalysis_Bands(t *testing.T) {
	assert.Contains(t, Analysis(95), "PERFECT")
	assert.Contains(t, Analysis(75), "powerful")
	assert.Contains(t, Analysis(55), "fine roast")
	assert.Contains(t, Analysis(20), "Low energy")
}
