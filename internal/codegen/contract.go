// Package codegen synthesizes the extension source files from templates
// parameterized by the analyzed feature set.
package codegen

import "github.com/jonathan/extension-forge/internal/types"

// Message names shared by the popup and content script templates. Both sides
// are rendered from the same constant, so popup→content messaging always
// matches what the content script listens for.
const (
	MessageHighlight = "forge.highlight"
	MessageExecute   = "forge.execute"
)

// messageAction picks the message name the popup sends and the content
// script handles. Empty when no content script is generated (the popup then
// has no one to talk to).
func messageAction(features *types.FeatureSet) string {
	if !features.RequiresFile(types.RoleContentScript) {
		return ""
	}
	if highlightTarget(features) != "" {
		return MessageHighlight
	}
	return MessageExecute
}

// highlightTarget returns which data type the content script should
// highlight, or empty string for a generic content script.
func highlightTarget(features *types.FeatureSet) string {
	for _, dt := range features.EntityValues(types.EntityDataType) {
		switch dt {
		case "phone number", "phone":
			return "phone"
		case "email":
			return "email"
		}
	}
	return ""
}
