package filter

import (
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// MatchSkills returns the subset of target skills that appear in text
// (case- and accent-insensitive substring match) and the match score as a
// percentage of the target list, rounded and clamped to [0, 100].
// An empty target list always scores 0.
func MatchSkills(targets []string, text string) ([]string, int) {
	if len(targets) == 0 {
		return nil, 0
	}

	haystack := normalizeText(text)
	var matched []string
	for _, target := range targets {
		needle := normalizeText(strings.TrimSpace(target))
		if needle == "" {
			continue
		}
		if strings.Contains(haystack, needle) {
			matched = append(matched, target)
		}
	}
	return matched, score(len(matched), len(targets))
}

// MatchSkillLists matches a target list against an extracted skill list.
// A target counts as matched when it contains, or is contained in, any
// extracted skill.
func MatchSkillLists(targets, skills []string) ([]string, int) {
	if len(targets) == 0 || len(skills) == 0 {
		return nil, 0
	}

	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = normalizeText(strings.TrimSpace(s)); s != "" {
			normalized = append(normalized, s)
		}
	}

	var matched []string
	for _, target := range targets {
		needle := normalizeText(strings.TrimSpace(target))
		if needle == "" {
			continue
		}
		for _, skill := range normalized {
			if strings.Contains(skill, needle) || strings.Contains(needle, skill) {
				matched = append(matched, target)
				break
			}
		}
	}
	return matched, score(len(matched), len(targets))
}

func score(matched, total int) int {
	if total == 0 {
		return 0
	}
	s := int(math.Round(float64(matched) / float64(total) * 100))
	if s > 100 {
		return 100
	}
	if s < 0 {
		return 0
	}
	return s
}
