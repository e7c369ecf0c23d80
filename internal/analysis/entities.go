package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/jonathan/extension-forge/internal/types"
)

// domainRe matches bare domain names after normalization has stripped
// URL schemes and slashes.
var domainRe = regexp.MustCompile(`\b((?:[a-z0-9][a-z0-9\-]*\.)+(?:com|org|net|io|edu|gov))\b`)

// ExtractEntities extracts literal values from the normalized prompt, grouped
// by category. Extraction runs independently of intent scoring.
//
// When a token is covered by more than one category, precedence is fixed:
// site > time-window > visual-attribute > data-type. A literal claimed by an
// earlier category is not re-extracted by a later one.
func ExtractEntities(normalized string, cfg *RuleConfig) map[types.EntityCategory][]string {
	entities := make(map[types.EntityCategory][]string)
	var claimed []string

	// Target sites: explicit domains plus known site names mapped to domains.
	var sites []string
	sites = append(sites, domainRe.FindAllString(normalized, -1)...)
	siteNames := lo.Keys(cfg.SocialSites)
	sort.Strings(siteNames)
	for _, name := range siteNames {
		if containsTerm(normalized, name) {
			sites = append(sites, cfg.SocialSites[name])
			claimed = append(claimed, name)
		}
	}
	sites = lo.Uniq(sites)
	sort.Strings(sites)
	if len(sites) > 0 {
		entities[types.EntitySite] = sites
	}

	// Time windows
	var windows []string
	for _, pattern := range cfg.TimePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			continue // invalid override patterns are rejected by LoadRules
		}
		for _, match := range re.FindAllString(normalized, -1) {
			windows = append(windows, strings.TrimSpace(match))
		}
	}
	windows = lo.Uniq(windows)
	sort.Strings(windows)
	if len(windows) > 0 {
		entities[types.EntityTimeWindow] = windows
		claimed = append(claimed, windows...)
	}

	// Visual attributes
	visual := matchVocabulary(normalized, cfg.VisualVocabulary, &claimed)
	if len(visual) > 0 {
		entities[types.EntityVisual] = visual
	}

	// Data types
	data := matchVocabulary(normalized, cfg.DataTypeVocabulary, &claimed)
	if len(data) > 0 {
		entities[types.EntityDataType] = data
	}

	return entities
}

// matchVocabulary returns the vocabulary terms found in the text, skipping
// any term already claimed (or contained in a claimed literal). Matched terms
// are added to the claimed list.
func matchVocabulary(normalized string, vocabulary []string, claimed *[]string) []string {
	var matched []string
	for _, term := range vocabulary {
		if !containsTerm(normalized, term) {
			continue
		}
		if isClaimed(*claimed, term) {
			continue
		}
		matched = append(matched, term)
		*claimed = append(*claimed, term)
	}
	sort.Strings(matched)
	return matched
}

// containsTerm reports whether term appears in the text on word boundaries.
// A trailing plural "s" on the match is tolerated so "phone numbers" still
// hits the "phone number" vocabulary entry.
func containsTerm(text, term string) bool {
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(term) + `s?\b`)
	if err != nil {
		return false
	}
	return re.MatchString(text)
}

// isClaimed reports whether term appears in a claimed literal on word
// boundaries. A raw substring check would let the site name "reddit" claim
// the visual term "red".
func isClaimed(claimed []string, term string) bool {
	for _, c := range claimed {
		if containsTerm(c, term) {
			return true
		}
	}
	return false
}
