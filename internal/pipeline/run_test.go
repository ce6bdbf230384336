package pipeline

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/presidential-roast/internal/types"
)

// fakeClient scripts the remote generator.
type fakeClient struct {
	text       string
	err        error
	lastSystem string
	lastPrompt string
	calls      int
}

func (f *fakeClient) GenerateWithPersona(_ context.Context, system, prompt string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastPrompt = prompt
	return f.text, f.err
}

func (f *fakeClient) Close() error { return nil }

func seededOptions(client *fakeClient) Options {
	opts := Options{
		NewRNG: func() *rand.Rand {
			return rand.New(rand.NewPCG(21, 42))
		},
	}
	if client != nil {
		opts.Client = client
	}
	return opts
}

func TestRun_OfflineIdea(t *testing.T) {
	p, err := New(seededOptions(nil))
	require.NoError(t, err)

	result, err := p.Run(t.Context(), types.Submission{
		Category: types.CategoryIdea,
		RawText:  "An app that delivers artisanal water to influencers",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.Text)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
	assert.NotEmpty(t, result.ImageURL)
	assert.NotEmpty(t, result.Analysis)
	assert.Positive(t, result.RewardTokens)
}

func TestRun_RejectsShortIdea(t *testing.T) {
	p, err := New(seededOptions(nil))
	require.NoError(t, err)

	_, err = p.Run(t.Context(), types.Submission{
		Category: types.CategoryIdea,
		RawText:  "hi",
	})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "content", verr.Field)
}

func TestRun_UsesRemoteWhenAvailable(t *testing.T) {
	client := &fakeClient{text: "A TREMENDOUS remote roast, believe me!"}
	p, err := New(seededOptions(client))
	require.NoError(t, err)

	result, err := p.Run(t.Context(), types.Submission{
		Category: types.CategoryResume,
		RawText:  "Education: State University. Experience: at Acme Corp.",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "A TREMENDOUS remote roast, believe me!", result.Text)
	assert.Contains(t, client.lastPrompt, "Acme Corp")
	assert.Contains(t, client.lastSystem, "CAPITAL LETTERS")
}

func TestRun_FallsBackOnRemoteError(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	p, err := New(seededOptions(client))
	require.NoError(t, err)

	result, err := p.Run(t.Context(), types.Submission{
		Category: types.CategoryIdea,
		RawText:  "A marketplace for renting out other people's pets",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
	assert.NotEmpty(t, result.Text)
}

func TestRun_FallsBackOnEmptyRemoteText(t *testing.T) {
	client := &fakeClient{text: ""}
	p, err := New(seededOptions(client))
	require.NoError(t, err)

	result, err := p.Run(t.Context(), types.Submission{
		Category: types.CategoryTwitter,
		RawText:  "@some_handle",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Text)
}

func TestRun_StripsHandlePrefixForRemote(t *testing.T) {
	client := &fakeClient{text: "roasted"}
	p, err := New(seededOptions(client))
	require.NoError(t, err)

	_, err = p.Run(t.Context(), types.Submission{
		Category: types.CategoryTwitter,
		RawText:  "@crypto_guru_99",
	})
	require.NoError(t, err)

	// The template supplies the "@", so the stripped handle must slot in
	// without doubling it.
	assert.Contains(t, client.lastPrompt, "Twitter Handle: @crypto_guru_99")
	assert.NotContains(t, client.lastPrompt, "@@")
}

func TestRun_DeterministicOffline(t *testing.T) {
	sub := types.Submission{
		Category: types.CategoryResume,
		RawText:  "Skills: leadership, excel. Worked at Initech.",
	}

	p1, err := New(seededOptions(nil))
	require.NoError(t, err)
	p2, err := New(seededOptions(nil))
	require.NoError(t, err)

	first, err := p1.Run(t.Context(), sub)
	require.NoError(t, err)
	second, err := p2.Run(t.Context(), sub)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
