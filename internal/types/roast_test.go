package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryIdea.Valid())
	assert.True(t, CategoryResume.Valid())
	assert.True(t, CategoryTwitter.Valid())
	assert.False(t, Category("haiku").Valid())
	assert.False(t, Category("").Valid())
}

func TestSubmissionJSONShape(t *testing.T) {
	var sub Submission
	require.NoError(t, json.Unmarshal([]byte(`{"type":"idea","content":"roast me"}`), &sub))

	assert.Equal(t, CategoryIdea, sub.Category)
	assert.Equal(t, "roast me", sub.RawText)
}

func TestRoastResultJSONShape(t *testing.T) {
	result := RoastResult{
		Text:             "SAD!",
		Score:            73,
		IsExecutiveOrder: true,
		RewardTokens:     50,
		ImageURL:         "https://example.com/x.gif",
		Analysis:         "Rated 73/100.",
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "SAD!", decoded["roast"])
	assert.Equal(t, float64(73), decoded["score"])
	assert.Equal(t, true, decoded["isExecutiveOrder"])
}

func TestSignalBundleEmpty(t *testing.T) {
	assert.True(t, (&SignalBundle{}).Empty())
	assert.False(t, (&SignalBundle{TextLength: 5}).Empty())
	assert.False(t, (&SignalBundle{Handle: "someone"}).Empty())
}
