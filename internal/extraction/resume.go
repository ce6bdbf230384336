package extraction

import (
	"strings"
	"unicode"

	"github.com/jonathan/presidential-roast/internal/types"
)

// Keyword sets for section detection. Containment checks run against a
// lowercased copy; extracted substrings keep their original casing.
var (
	educationKeywords  = []string{"education", "university", "college", "degree", "school", "gpa", "graduated"}
	experienceKeywords = []string{"experience", "worked", "employed", "position", "job", "career", "intern"}
	skillsKeywords     = []string{"skills", "proficient", "familiar with", "expertise", "competent", "certified"}

	// Closed list of corporate buzzwords worth calling out.
	buzzwords = []string{
		"synergy", "leverage", "proactive", "dynamic", "self-starter",
		"results-driven", "team player", "detail-oriented", "go-getter",
		"thought leader", "passionate", "innovative", "disruptive",
	}

	// Fixed vocabularies used when no labeled skills section is found.
	technicalSkills = []string{
		"python", "java", "javascript", "typescript", "golang", "sql",
		"react", "node", "docker", "kubernetes", "aws", "machine learning",
	}
	softSkills = []string{
		"leadership", "communication", "teamwork", "management",
		"negotiation", "public speaking", "problem solving", "mentoring",
	}
	toolSkills = []string{
		"excel", "powerpoint", "photoshop", "figma", "jira", "salesforce",
		"tableau", "quickbooks",
	}

	// Capitalized words that are never company names on their own.
	entityStopwords = map[string]bool{
		"I": true, "The": true, "A": true, "An": true, "My": true,
		"Skills": true, "Experience": true, "Education": true,
		"Resume": true, "Summary": true, "Objective": true,
		"January": true, "February": true, "March": true, "April": true,
		"May": true, "June": true, "July": true, "August": true,
		"September": true, "October": true, "November": true, "December": true,
	}

	institutionMarkers = []string{"University", "College", "School"}
	degreeTokens       = []string{"B.S.", "B.A.", "M.S.", "M.A.", "MBA", "PhD", "Ph.D.", "BSc", "MSc"}
)

// maxExtractedSkills bounds how many skill fragments we keep.
const maxExtractedSkills = 5

// extractResume fills resume-specific signals.
func extractResume(bundle *types.SignalBundle, text string) {
	lower := strings.ToLower(text)

	bundle.HasEducation = containsAny(lower, educationKeywords)
	bundle.HasExperience = containsAny(lower, experienceKeywords)
	bundle.HasSkills = containsAny(lower, skillsKeywords)
	bundle.Buzzwords = matchedTerms(lower, buzzwords)

	bundle.Skills = extractSkills(text, lower)
	if len(bundle.Skills) > 0 {
		bundle.HasSkills = true
	}

	bundle.Entity = detectCompany(text)
	if bundle.Entity == "" {
		bundle.Entity = detectInstitution(text)
	}
}

// extractSkills looks for a labeled "Skills:" or "Expertise:" section first
// and falls back to the fixed vocabularies when no label is present.
func extractSkills(text, lower string) []string {
	if skills := labeledSection(text, "skills:"); len(skills) > 0 {
		return skills
	}
	if skills := labeledSection(text, "expertise:"); len(skills) > 0 {
		return skills
	}

	// Whole-word matches against the fixed vocabularies.
	var found []string
	for _, vocab := range [][]string{technicalSkills, softSkills, toolSkills} {
		for _, skill := range vocab {
			if containsWholeWord(lower, skill) {
				found = append(found, skill)
				if len(found) >= maxExtractedSkills {
					return found
				}
			}
		}
	}
	return found
}

// labeledSection finds a line-anchored, case-insensitive label and splits the
// remainder of that line on commas and periods. Fragments are trimmed and
// kept only when 4-19 characters long, which filters out stray initials and
// whole run-on sentences.
func labeledSection(text, label string) []string {
	for _, line := range strings.Split(text, "\n") {
		idx := strings.Index(strings.ToLower(line), label)
		if idx < 0 {
			continue
		}
		rest := line[idx+len(label):]
		var skills []string
		for _, fragment := range strings.FieldsFunc(rest, func(r rune) bool {
			return r == ',' || r == '.' || r == ';'
		}) {
			fragment = strings.TrimSpace(fragment)
			// A new label means the skills list is over.
			if strings.Contains(fragment, ":") {
				break
			}
			if len(fragment) >= 4 && len(fragment) < 20 {
				skills = append(skills, fragment)
			}
			if len(skills) >= maxExtractedSkills {
				break
			}
		}
		if len(skills) > 0 {
			return skills
		}
	}
	return nil
}

// containsWholeWord reports whether word appears in text bounded by
// non-letter characters. Multi-word vocabulary entries use plain containment.
func containsWholeWord(text, word string) bool {
	if strings.Contains(word, " ") {
		return strings.Contains(text, word)
	}
	idx := 0
	for {
		pos := strings.Index(text[idx:], word)
		if pos < 0 {
			return false
		}
		pos += idx
		beforeOK := pos == 0 || !unicode.IsLetter(rune(text[pos-1]))
		end := pos + len(word)
		afterOK := end >= len(text) || !unicode.IsLetter(rune(text[end]))
		if beforeOK && afterOK {
			return true
		}
		idx = pos + 1
	}
}

// detectCompany guesses a company name: the longest capitalized multi-word
// run following an "at", "for" or "with" preposition wins; otherwise the
// first generic capitalized run that survives the stopword filter.
func detectCompany(text string) string {
	words := strings.Fields(text)

	var best string
	for i, word := range words {
		w := strings.ToLower(strings.Trim(word, ".,;:"))
		if w != "at" && w != "for" && w != "with" {
			continue
		}
		run := capitalizedRun(words, i+1)
		if len(run) > len(best) {
			best = run
		}
	}
	if best != "" {
		return best
	}

	// Generic fallback: a multi-word capitalized run that survives the
	// stopword filter. Single capitalized words are too often just the
	// start of a sentence.
	for i := range words {
		if run := capitalizedRun(words, i); strings.Contains(run, " ") {
			return run
		}
	}
	return ""
}

// capitalizedRun collects consecutive capitalized words starting at index
// start, skipping runs that begin with a stopword. Trailing punctuation ends
// the run but stays off the result.
func capitalizedRun(words []string, start int) string {
	var run []string
	for i := start; i < len(words) && len(run) < 4; i++ {
		word := strings.Trim(words[i], ".,;:()")
		if word == "" || !startsUpper(word) {
			break
		}
		if len(run) == 0 && entityStopwords[word] {
			return ""
		}
		run = append(run, word)
		// Punctuation in the original token terminates the phrase.
		if strings.ContainsAny(words[i], ".,;:") {
			break
		}
	}
	return strings.Join(run, " ")
}

func startsUpper(word string) bool {
	for _, r := range word {
		return unicode.IsUpper(r)
	}
	return false
}

// detectInstitution looks for a capitalized run adjacent to a University/
// College/School marker, then falls back to a degree-abbreviation token.
func detectInstitution(text string) string {
	words := strings.Fields(text)
	for i, word := range words {
		trimmed := strings.Trim(word, ".,;:")
		for _, marker := range institutionMarkers {
			if trimmed != marker {
				continue
			}
			// Walk back over capitalized words preceding the marker.
			start := i
			for start > 0 && startsUpper(strings.Trim(words[start-1], ".,;:")) &&
				!entityStopwords[strings.Trim(words[start-1], ".,;:")] && i-start < 3 {
				start--
			}
			var parts []string
			for j := start; j <= i; j++ {
				parts = append(parts, strings.Trim(words[j], ".,;:"))
			}
			return strings.Join(parts, " ")
		}
	}
	for _, word := range words {
		trimmed := strings.Trim(word, ",;:")
		for _, degree := range degreeTokens {
			if trimmed == degree {
				return degree
			}
		}
	}
	return ""
}
