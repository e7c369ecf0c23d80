package manifest

import (
	"strings"

	"github.com/jonathan/extension-forge/internal/types"
)

// genericName is used when no distinguishing entity or intent is found
const genericName = "Forge Extension"

// DeriveName builds a human-readable extension name by combining the
// dominant qualifying intent with the most specific entity found. The
// priority order is fixed so the same feature set always names the same way.
func DeriveName(features *types.FeatureSet) string {
	sites := features.EntityValues(types.EntitySite)
	dataTypes := features.EntityValues(types.EntityDataType)

	switch {
	case features.HasIntent(types.IntentBackgroundAutomation) && features.HasPermission("declarativeNetRequest"):
		if len(sites) == 1 {
			return titleize(domainBase(sites[0])) + " Blocker"
		}
		return "Site Blocker"

	case features.HasIntent(types.IntentContentModification):
		switch {
		case hasValue(dataTypes, "phone number"), hasValue(dataTypes, "phone"):
			return "Phone Number Highlighter"
		case hasValue(dataTypes, "email"):
			return "Email Highlighter"
		case len(features.EntityValues(types.EntityVisual)) > 0:
			return "Page Highlighter"
		default:
			return "Page Modifier"
		}

	case features.HasIntent(types.IntentUIInteraction) && !features.Fallback:
		switch {
		case hasValue(dataTypes, "date"):
			return "Date Popup"
		case hasValue(dataTypes, "time"):
			return "Clock Popup"
		default:
			return "Quick Popup"
		}

	case features.HasIntent(types.IntentDataStorage):
		return "Preference Keeper"

	case features.HasIntent(types.IntentBrowserIntegration):
		return "Tab Companion"
	}

	return genericName
}

// domainBase returns the site name without its TLD, e.g. "facebook.com" → "facebook"
func domainBase(domain string) string {
	if idx := strings.Index(domain, "."); idx > 0 {
		return domain[:idx]
	}
	return domain
}

// titleize uppercases the first letter of a lowercase word
func titleize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

// hasValue reports whether the list contains the given literal
func hasValue(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
