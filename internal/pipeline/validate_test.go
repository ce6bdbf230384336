package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/presidential-roast/internal/types"
)

func TestValidateSubmission_Accepts(t *testing.T) {
	cases := []types.Submission{
		{Category: types.CategoryIdea, RawText: "An app for renting goats"},
		{Category: types.CategoryResume, RawText: "Education: State University, Skills: excel"},
		{Category: types.CategoryTwitter, RawText: "@handle"},
		{Category: types.CategoryTwitter, RawText: "h"},
	}
	for _, sub := range cases {
		assert.NoError(t, ValidateSubmission(sub), "%+v", sub)
	}
}

func TestValidateSubmission_MissingFields(t *testing.T) {
	err := ValidateSubmission(types.Submission{RawText: "some content here"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)

	err = ValidateSubmission(types.Submission{Category: types.CategoryIdea})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "content", verr.Field)
}

func TestValidateSubmission_UnknownCategory(t *testing.T) {
	err := ValidateSubmission(types.Submission{Category: "haiku", RawText: "roast my haiku"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)
	assert.Contains(t, verr.Message, "idea, resume, twitter")
}

func TestValidateSubmission_LengthPolicy(t *testing.T) {
	var verr *ValidationError

	err := ValidateSubmission(types.Submission{Category: types.CategoryIdea, RawText: "hi"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "at least 10")

	err = ValidateSubmission(types.Submission{Category: types.CategoryResume, RawText: "too short"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "at least 20")

	err = ValidateSubmission(types.Submission{
		Category: types.CategoryTwitter,
		RawText:  "@" + strings.Repeat("x", 31),
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "1-30")

	err = ValidateSubmission(types.Submission{Category: types.CategoryTwitter, RawText: "@"})
	assert.ErrorAs(t, err, &verr)
}

func TestValidateSubmission_MaxContentLength(t *testing.T) {
	err := ValidateSubmission(types.Submission{
		Category: types.CategoryIdea,
		RawText:  strings.Repeat("a", maxContentLength+1),
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "at most 10000")
}

func TestValidateSubmission_WhitespaceOnly(t *testing.T) {
	err := ValidateSubmission(types.Submission{Category: types.CategoryIdea, RawText: "          "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "content", verr.Field)
}
