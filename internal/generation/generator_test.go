package generation

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/presidential-roast/internal/types"
)

func newGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := New()
	require.NoError(t, err)
	return g
}

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(3, 5))
}

func TestGenerate_ResumeEchoesSignals(t *testing.T) {
	g := newGenerator(t)

	bundle := &types.SignalBundle{
		Category:      types.CategoryResume,
		HasEducation:  true,
		HasExperience: true,
		Entity:        "Acme Corp",
		Skills:        []string{"leadership", "excel"},
		Buzzwords:     []string{"synergy"},
	}

	text, err := g.Generate(bundle, seeded())
	require.NoError(t, err)

	assert.Contains(t, text, "Acme Corp")
	assert.Contains(t, text, "leadership")
	assert.Contains(t, text, "excel")
	assert.Contains(t, text, "synergy")
}

func TestGenerate_ResumeMissingEverything(t *testing.T) {
	g := newGenerator(t)

	text, err := g.Generate(&types.SignalBundle{Category: types.CategoryResume}, seeded())
	require.NoError(t, err)

	assert.Contains(t, text, "No real education")
	assert.Contains(t, text, "Zero experience")
	assert.Contains(t, text, "single skill")
}

func TestGenerate_IdeaAppBranch(t *testing.T) {
	g := newGenerator(t)

	withApp := &types.SignalBundle{
		Category:        types.CategoryIdea,
		HasAppReference: true,
		Preview:         "An app for everything",
		TextLength:      21,
	}
	text, err := g.Generate(withApp, seeded())
	require.NoError(t, err)
	assert.Contains(t, text, "of course it's an app")
	assert.Contains(t, text, "An app for everything")

	withoutApp := &types.SignalBundle{
		Category:   types.CategoryIdea,
		Preview:    "Selling rocks",
		TextLength: 13,
	}
	text, err = g.Generate(withoutApp, seeded())
	require.NoError(t, err)
	assert.Contains(t, text, "Not even an app?")
}

func TestGenerate_IdeaLengthCommentary(t *testing.T) {
	g := newGenerator(t)

	long := &types.SignalBundle{Category: types.CategoryIdea, TextLength: 250}
	text, err := g.Generate(long, seeded())
	require.NoError(t, err)
	assert.Contains(t, text, "whole ESSAY")

	medium := &types.SignalBundle{Category: types.CategoryIdea, TextLength: 150}
	text, err = g.Generate(medium, seeded())
	require.NoError(t, err)
	assert.Contains(t, text, "Decent amount of detail")
}

func TestGenerate_TwitterUnderscorePriority(t *testing.T) {
	g := newGenerator(t)

	// Underscores outrank the too-long branch even on a long handle.
	bundle := &types.SignalBundle{
		Category:       types.CategoryTwitter,
		Handle:         "the_real_crypto_king_2024",
		HasUnderscores: true,
	}
	text, err := g.Generate(bundle, seeded())
	require.NoError(t, err)

	assert.Contains(t, text, "@the_real_crypto_king_2024")
	assert.Contains(t, text, "underscores")
	assert.NotContains(t, text, "WAY too long")
}

func TestGenerate_TwitterShapeBranches(t *testing.T) {
	g := newGenerator(t)

	cases := []struct {
		handle string
		want   string
	}{
		{"averagejoe", "Very average"},
		{"abc", "Tiny little handle"},
		{"averagejoewithaverylongname", "WAY too long"},
	}
	for _, tc := range cases {
		bundle := &types.SignalBundle{Category: types.CategoryTwitter, Handle: tc.handle}
		text, err := g.Generate(bundle, seeded())
		require.NoError(t, err)
		assert.Contains(t, text, tc.want, "handle %q", tc.handle)
	}
}

func TestGenerate_DeterministicWithSeed(t *testing.T) {
	g := newGenerator(t)
	bundle := &types.SignalBundle{Category: types.CategoryTwitter, Handle: "somebody"}

	first, err := g.Generate(bundle, seeded())
	require.NoError(t, err)
	second, err := g.Generate(bundle, seeded())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_NeverEmpty(t *testing.T) {
	g := newGenerator(t)
	rng := rand.New(rand.NewPCG(9, 13))

	bundles := []*types.SignalBundle{
		{Category: types.CategoryResume},
		{Category: types.CategoryIdea},
		{Category: types.CategoryTwitter, Handle: "x"},
	}
	for i := 0; i < 1000; i++ {
		for _, bundle := range bundles {
			text, err := g.Generate(bundle, rng)
			require.NoError(t, err)
			require.NotEmpty(t, strings.TrimSpace(text))
		}
	}
}

func TestGenerate_UnknownCategory(t *testing.T) {
	g := newGenerator(t)
	_, err := g.Generate(&types.SignalBundle{Category: "haiku"}, seeded())
	assert.Error(t, err)
}

func TestFill(t *testing.T) {
	got := fill("They worked at {{.Entity}}, folks.", map[string]string{"Entity": "Initech"})
	assert.Equal(t, "They worked at Initech, folks.", got)

	// Unknown placeholders pass through untouched.
	got = fill("Hello {{.Nobody}}", map[string]string{"Entity": "x"})
	assert.Equal(t, "Hello {{.Nobody}}", got)
}
