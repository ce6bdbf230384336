// Package pipeline provides the high-level orchestration for one roast run:
// extract signals, generate text (remote LLM with local template fallback),
// score, and format. Each run is synchronous and stateless; nothing is
// shared across invocations.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jonathan/presidential-roast/internal/extraction"
	"github.com/jonathan/presidential-roast/internal/formatting"
	"github.com/jonathan/presidential-roast/internal/generation"
	"github.com/jonathan/presidential-roast/internal/llm"
	"github.com/jonathan/presidential-roast/internal/prompts"
	"github.com/jonathan/presidential-roast/internal/scoring"
	"github.com/jonathan/presidential-roast/internal/types"
)

// Options holds configuration for constructing a Pipeline.
type Options struct {
	// Client is the remote generator. Nil means offline: every run uses the
	// local template fallback. A missing API key at startup lands here.
	Client llm.Client

	// Timeout bounds the remote call; zero uses the llm default.
	Timeout time.Duration

	// NewRNG supplies the random source for generation and formatting.
	// Nil uses a fresh, independently-seeded source per run. Tests inject
	// a seeded source here.
	NewRNG func() *rand.Rand
}

// Pipeline runs submissions through the four stages.
type Pipeline struct {
	generator *generation.Generator
	client    llm.Client
	timeout   time.Duration
	newRNG    func() *rand.Rand
}

// New constructs a Pipeline, loading the embedded phrase tables.
func New(opts Options) (*Pipeline, error) {
	generator, err := generation.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load phrase tables: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = llm.DefaultTimeout
	}

	newRNG := opts.NewRNG
	if newRNG == nil {
		newRNG = func() *rand.Rand {
			return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}
	}

	return &Pipeline{
		generator: generator,
		client:    opts.Client,
		timeout:   timeout,
		newRNG:    newRNG,
	}, nil
}

// Run executes one full pipeline pass. The submission must already have
// passed ValidateSubmission; a failing remote generator is recovered here by
// the template fallback and never surfaces as an error.
func (p *Pipeline) Run(ctx context.Context, sub types.Submission) (types.RoastResult, error) {
	if err := ValidateSubmission(sub); err != nil {
		return types.RoastResult{}, err
	}

	bundle := extraction.Extract(sub.Category, sub.RawText)
	rng := p.newRNG()

	text, err := p.generateText(ctx, sub, bundle, rng)
	if err != nil {
		return types.RoastResult{}, err
	}

	score := scoring.Score(text)
	return formatting.Format(text, score, rng), nil
}

// generateText tries the remote generator first and falls back to the local
// templates on any failure, timeout, or empty response.
func (p *Pipeline) generateText(ctx context.Context, sub types.Submission, bundle *types.SignalBundle, rng *rand.Rand) (string, error) {
	if p.client != nil {
		text, err := p.generateRemote(ctx, sub)
		if err == nil && text != "" {
			return text, nil
		}
		log.Printf("[pipeline] remote generation failed, using template fallback: %v", err)
	}

	text, err := p.generator.Generate(bundle, rng)
	if err != nil {
		return "", fmt.Errorf("template generation failed: %w", err)
	}
	return text, nil
}

// generateRemote builds the persona prompt for the category and calls the
// remote generator with a timeout.
func (p *Pipeline) generateRemote(ctx context.Context, sub types.Submission) (string, error) {
	system, err := prompts.Get("roast.json", "persona-system")
	if err != nil {
		return "", err
	}
	template, err := prompts.Get("roast.json", fmt.Sprintf("roast-%s", sub.Category))
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(sub.RawText)
	if sub.Category == types.CategoryTwitter {
		content = strings.TrimPrefix(content, "@")
	}
	prompt := prompts.Format(template, map[string]string{"Content": content})

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.client.GenerateWithPersona(ctx, system, prompt)
}
