package analysis

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/jonathan/extension-forge/internal/types"
)

// Analyze classifies the prompt into a FeatureSet using the given rule
// tables. It never fails: a prompt with no qualifying intents falls back to
// the default minimal feature set (a single UI-interaction intent whose
// bundle is a basic popup).
func Analyze(prompt string, cfg *RuleConfig) *types.FeatureSet {
	if cfg == nil {
		cfg = DefaultRules()
	}

	normalized := Normalize(prompt)

	features := &types.FeatureSet{
		Prompt:           prompt,
		NormalizedPrompt: normalized,
		Intents:          scoreIntents(normalized, cfg),
		Entities:         ExtractEntities(normalized, cfg),
		ColorScheme:      detectColor(normalized, cfg),
	}

	if len(features.Intents) == 0 {
		// Default fallback: recovered locally, never surfaced as failure.
		features.Fallback = true
		features.Intents = []types.Intent{{
			Category:   types.IntentUIInteraction,
			Confidence: 0,
			Threshold:  cfg.Intents[types.IntentUIInteraction].Threshold,
		}}
	}

	features.Permissions = inferPermissions(normalized, features, cfg)
	features.RequiredFiles = DeriveRequiredFiles(features)

	return features
}

// scoreIntents computes a confidence score per category and keeps the
// categories whose score meets the threshold (inclusive). The classifier is
// multi-label: several intents may qualify at once.
//
// Confidence formula: min(weight * matches / 2, 1.0) — two distinct keyword
// hits at weight 1.0 saturate the score.
func scoreIntents(normalized string, cfg *RuleConfig) []types.Intent {
	var intents []types.Intent

	for category, rule := range cfg.Intents {
		matches := 0
		for _, keyword := range rule.Keywords {
			if strings.Contains(normalized, keyword) {
				matches++
			}
		}
		if matches == 0 {
			continue
		}

		confidence := rule.Weight * float64(matches) / 2
		if confidence > 1.0 {
			confidence = 1.0
		}

		if confidence >= rule.Threshold {
			intents = append(intents, types.Intent{
				Category:   category,
				Confidence: confidence,
				Threshold:  rule.Threshold,
			})
		}
	}

	types.SortIntents(intents)
	return intents
}

// inferPermissions applies the keyword→permission trigger table, then adds
// the implicit grants the qualified intents require.
func inferPermissions(normalized string, features *types.FeatureSet, cfg *RuleConfig) []string {
	permSet := make(map[string]bool)

	perms := lo.Keys(cfg.PermissionTriggers)
	sort.Strings(perms)
	for _, perm := range perms {
		for _, trigger := range cfg.PermissionTriggers[perm] {
			if strings.Contains(normalized, trigger) {
				permSet[perm] = true
				break
			}
		}
	}

	// Implicit grants
	if features.HasIntent(types.IntentContentModification) {
		permSet["activeTab"] = true
	}
	if features.HasIntent(types.IntentDataStorage) {
		permSet["storage"] = true
	}
	if features.HasIntent(types.IntentBackgroundAutomation) && len(features.EntityValues(types.EntityTimeWindow)) > 0 {
		permSet["alarms"] = true
	}

	permissions := lo.Keys(permSet)
	sort.Strings(permissions)
	return permissions
}

// DeriveRequiredFiles maps the qualified intent set (and the entities and
// permissions that travel with it) to the set of output file roles. The
// mapping is a pure function: re-deriving from the same FeatureSet always
// yields the same set.
func DeriveRequiredFiles(features *types.FeatureSet) []types.FileRole {
	roleSet := make(map[types.FileRole]bool)

	if features.Fallback {
		// Minimal bundle: popup markup and script only.
		roleSet[types.RolePopupMarkup] = true
		roleSet[types.RolePopupScript] = true
	} else {
		if features.HasIntent(types.IntentUIInteraction) {
			roleSet[types.RolePopupMarkup] = true
			roleSet[types.RolePopupScript] = true
			roleSet[types.RoleStylesheet] = true
		}
		if features.HasIntent(types.IntentContentModification) {
			roleSet[types.RoleContentScript] = true
			if len(features.EntityValues(types.EntityVisual)) > 0 {
				roleSet[types.RoleStylesheet] = true
			}
		}
		if features.HasIntent(types.IntentBackgroundAutomation) {
			roleSet[types.RoleBackgroundScript] = true
			if features.HasPermission("declarativeNetRequest") {
				roleSet[types.RoleRulesFile] = true
			}
		}
	}

	roles := lo.Keys(roleSet)
	types.SortRoles(roles)
	return roles
}

// detectColor returns the hex value for the first palette color word found
// in the prompt, or empty string when none matches.
func detectColor(normalized string, cfg *RuleConfig) string {
	for _, entry := range cfg.ColorPalette {
		if containsTerm(normalized, entry.Name) {
			return entry.Hex
		}
	}
	return ""
}
