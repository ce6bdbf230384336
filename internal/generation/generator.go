// Package generation assembles template-based roasts from extracted signals.
// It is the local fallback for the remote generator and the only randomized
// stage of the pipeline: pool picks are uniform and independent per call,
// with the random source injected so tests can pin the output.
package generation

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/jonathan/presidential-roast/internal/types"
)

// Handle-shape thresholds for twitter submissions.
const (
	longHandleLength  = 15
	shortHandleLength = 5
)

// Idea length commentary thresholds, in characters.
const (
	longIdeaLength   = 200
	mediumIdeaLength = 100
)

// Generator renders roast text from phrase tables.
type Generator struct {
	tables map[types.Category]phraseTable
}

// New creates a Generator, loading and schema-checking the embedded phrase
// tables on first use.
func New() (*Generator, error) {
	loaded, err := loadTables()
	if err != nil {
		return nil, err
	}
	return &Generator{tables: loaded}, nil
}

// Generate renders a roast for the bundle's category. The result is a single
// paragraph, sentences joined by single spaces, never empty for a valid
// bundle. Identical bundles with an identically-seeded rng yield identical
// text.
func (g *Generator) Generate(bundle *types.SignalBundle, rng *rand.Rand) (string, error) {
	table, ok := g.tables[bundle.Category]
	if !ok {
		return "", fmt.Errorf("no phrase table for category %q", bundle.Category)
	}

	b := &sentenceBuilder{table: table, rng: rng}
	switch bundle.Category {
	case types.CategoryResume:
		resumeSentences(b, bundle)
	case types.CategoryIdea:
		ideaSentences(b, bundle)
	case types.CategoryTwitter:
		twitterSentences(b, bundle)
	}
	if b.err != nil {
		return "", b.err
	}

	return strings.Join(b.out, " "), nil
}

// sentenceBuilder accumulates sentences and carries the first error so the
// per-category assembly reads as a straight list of branches.
type sentenceBuilder struct {
	table phraseTable
	rng   *rand.Rand
	out   []string
	err   error
}

// add picks a fragment uniformly from the named pool and appends it,
// substituting {{.Key}} placeholders when data is non-nil.
func (b *sentenceBuilder) add(pool string, data map[string]string) {
	if b.err != nil {
		return
	}
	fragments, err := b.table.pool(pool)
	if err != nil {
		b.err = err
		return
	}
	sentence := fragments[b.rng.IntN(len(fragments))]
	if data != nil {
		sentence = fill(sentence, data)
	}
	b.out = append(b.out, sentence)
}

// resumeSentences builds the resume roast: fixed opening, one sentence per
// detected-flag branch, buzzword callout, fixed closing.
func resumeSentences(b *sentenceBuilder, bundle *types.SignalBundle) {
	b.add("opening", nil)

	if bundle.HasEducation {
		b.add("education_present", nil)
	} else {
		b.add("education_missing", nil)
	}

	switch {
	case bundle.HasExperience && bundle.Entity != "":
		b.add("experience_entity", map[string]string{"Entity": bundle.Entity})
	case bundle.HasExperience:
		b.add("experience_present", nil)
	default:
		b.add("experience_missing", nil)
	}

	switch {
	case len(bundle.Skills) >= 2:
		b.add("skills_two", map[string]string{"Skill1": bundle.Skills[0], "Skill2": bundle.Skills[1]})
	case len(bundle.Skills) == 1:
		b.add("skills_one", map[string]string{"Skill1": bundle.Skills[0]})
	case bundle.HasSkills:
		b.add("skills_generic", nil)
	default:
		b.add("skills_missing", nil)
	}

	if len(bundle.Buzzwords) > 0 {
		b.add("buzzword_callout", map[string]string{"Buzzword": bundle.Buzzwords[0]})
	}

	b.add("closing", nil)
}

// ideaSentences builds the idea roast: echoed opening, length commentary,
// one sentence per detected topic flag, critiques for unset flags, a
// competitor joke, the app branch, and a random closing.
func ideaSentences(b *sentenceBuilder, bundle *types.SignalBundle) {
	b.add("opening", map[string]string{"Preview": bundle.Preview})

	switch {
	case bundle.TextLength > longIdeaLength:
		b.add("length_long", nil)
	case bundle.TextLength > mediumIdeaLength:
		b.add("length_medium", nil)
	default:
		b.add("length_short", nil)
	}

	// Every matched topic flag contributes a sentence, not just the first.
	if bundle.MentionsTech {
		b.add("topic_tech", nil)
	}
	if bundle.MentionsProduct {
		b.add("topic_product", nil)
	}
	if bundle.MentionsService {
		b.add("topic_service", nil)
	}
	if bundle.MentionsFinance {
		b.add("topic_finance", nil)
	}

	if !bundle.MentionsTech {
		b.add("critique_innovation", nil)
	}
	if !bundle.MentionsPlatform {
		b.add("critique_market", nil)
	}
	if !bundle.IsDetailed {
		b.add("critique_detail", nil)
	}

	b.add("competitor", nil)

	if bundle.HasAppReference {
		b.add("has_app", nil)
	} else {
		b.add("no_app", nil)
	}

	b.add("closing", nil)
}

// twitterSentences builds the handle roast: echoed opening, one shape
// sentence chosen by priority, follower and content-quality picks, two fixed
// jabs, and a random closing.
func twitterSentences(b *sentenceBuilder, bundle *types.SignalBundle) {
	handle := map[string]string{"Handle": bundle.Handle}
	b.add("opening", handle)

	// Shape priority: multi-part name > too long > too short > default.
	switch {
	case bundle.HasUnderscores:
		b.add("shape_underscore", handle)
	case len(bundle.Handle) > longHandleLength:
		b.add("shape_long", handle)
	case len(bundle.Handle) < shortHandleLength:
		b.add("shape_short", handle)
	default:
		b.add("shape_default", handle)
	}

	b.add("followers", nil)
	b.add("content_quality", nil)
	b.add("compare", nil)
	b.add("engagement", nil)
	b.add("closing", nil)
}
