// Package types provides type definitions for structured data used throughout the extension-forge system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// IntentCategory identifies a high-level purpose classified from the prompt
type IntentCategory string

// Intent categories recognized by the analyzer
const (
	IntentUIInteraction        IntentCategory = "ui_interaction"
	IntentContentModification  IntentCategory = "content_modification"
	IntentBackgroundAutomation IntentCategory = "background_automation"
	IntentDataStorage          IntentCategory = "data_storage"
	IntentBrowserIntegration   IntentCategory = "browser_integration"
)

// Intent represents a qualified intent with its confidence score and the
// threshold that qualified it
type Intent struct {
	Category   IntentCategory `json:"category"`
	Confidence float64        `json:"confidence"`
	Threshold  float64        `json:"threshold"`
}

// EntityCategory identifies a family of literal values extracted from the prompt
type EntityCategory string

// Entity categories recognized by the analyzer
const (
	EntitySite       EntityCategory = "site"
	EntityVisual     EntityCategory = "visual_attribute"
	EntityDataType   EntityCategory = "data_type"
	EntityTimeWindow EntityCategory = "time_window"
)

// FileRole identifies the role of an output file in the generated extension
type FileRole string

// File roles an extension bundle may contain
const (
	RolePopupMarkup      FileRole = "popup_markup"
	RolePopupScript      FileRole = "popup_script"
	RoleContentScript    FileRole = "content_script"
	RoleBackgroundScript FileRole = "background_script"
	RoleRulesFile        FileRole = "rules_file"
	RoleStylesheet       FileRole = "stylesheet"
)

// roleFilenames maps each file role to its path relative to the extension root
var roleFilenames = map[FileRole]string{
	RolePopupMarkup:      "popup.html",
	RolePopupScript:      "popup.js",
	RoleContentScript:    "content.js",
	RoleBackgroundScript: "background.js",
	RoleRulesFile:        "rules.json",
	RoleStylesheet:       "styles.css",
}

// Filename returns the output filename for the role, or empty string for an
// unknown role
func (r FileRole) Filename() string {
	return roleFilenames[r]
}

// FeatureSet is the analyzer's complete inferred description of what the
// extension must do. It is immutable once produced.
type FeatureSet struct {
	Prompt           string                      `json:"prompt"`
	NormalizedPrompt string                      `json:"normalized_prompt"`
	Intents          []Intent                    `json:"intents"`
	Entities         map[EntityCategory][]string `json:"entities"`
	Permissions      []string                    `json:"permissions"`
	RequiredFiles    []FileRole                  `json:"required_files"`
	ColorScheme      string                      `json:"color_scheme,omitempty"`
	Fallback         bool                        `json:"fallback,omitempty"`
}

// HasIntent reports whether the given category qualified
func (f *FeatureSet) HasIntent(category IntentCategory) bool {
	for _, intent := range f.Intents {
		if intent.Category == category {
			return true
		}
	}
	return false
}

// HasPermission reports whether the given permission was inferred
func (f *FeatureSet) HasPermission(permission string) bool {
	for _, p := range f.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// RequiresFile reports whether the given file role is part of the bundle
func (f *FeatureSet) RequiresFile(role FileRole) bool {
	for _, r := range f.RequiredFiles {
		if r == role {
			return true
		}
	}
	return false
}

// EntityValues returns the extracted literals for a category (nil if none)
func (f *FeatureSet) EntityValues(category EntityCategory) []string {
	return f.Entities[category]
}

// SortIntents orders intents by category name so serialized output is stable
func SortIntents(intents []Intent) {
	sort.Slice(intents, func(i, j int) bool {
		return intents[i].Category < intents[j].Category
	})
}

// SortRoles orders file roles by name so serialized output is stable
func SortRoles(roles []FileRole) {
	sort.Slice(roles, func(i, j int) bool {
		return roles[i] < roles[j]
	})
}
