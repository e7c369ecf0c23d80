package manifest

import (
	"fmt"
	"strings"

	"github.com/jonathan/extension-forge/internal/types"
)

// Version stamped into every generated manifest
const extensionVersion = "1.0.0"

// maxDescriptionChars bounds the prompt excerpt used as the description
const maxDescriptionChars = 100

// recognizedPermissions is the fixed permission vocabulary the builder
// accepts. Anything else is a ValidationError.
var recognizedPermissions = map[string]bool{
	"activeTab":             true,
	"tabs":                  true,
	"storage":               true,
	"scripting":             true,
	"webRequest":            true,
	"declarativeNetRequest": true,
	"alarms":                true,
	"notifications":         true,
	"contextMenus":          true,
	"history":               true,
	"bookmarks":             true,
}

// Build constructs a ManifestDescriptor from the analyzed feature set.
// It is a pure, deterministic function of its input.
func Build(features *types.FeatureSet) (*types.ManifestDescriptor, error) {
	if features == nil {
		return nil, &ValidationError{Message: "feature set is nil"}
	}

	for _, perm := range features.Permissions {
		if !recognizedPermissions[perm] {
			return nil, &ValidationError{
				Message: fmt.Sprintf("unrecognized permission %q", perm),
			}
		}
	}

	name := DeriveName(features)

	descriptor := &types.ManifestDescriptor{
		ManifestVersion: 3,
		Name:            name,
		Version:         extensionVersion,
		Description:     describe(features.Prompt),
		Permissions:     features.Permissions,
	}

	if features.RequiresFile(types.RolePopupMarkup) {
		descriptor.Action = &types.Action{
			DefaultPopup: types.RolePopupMarkup.Filename(),
			DefaultTitle: name,
		}
	}

	if features.RequiresFile(types.RoleBackgroundScript) {
		descriptor.Background = &types.Background{
			ServiceWorker: types.RoleBackgroundScript.Filename(),
		}
	}

	if features.RequiresFile(types.RoleContentScript) {
		cs := types.ContentScript{
			Matches: []string{"<all_urls>"},
			JS:      []string{types.RoleContentScript.Filename()},
			RunAt:   "document_idle",
		}
		if features.RequiresFile(types.RoleStylesheet) {
			cs.CSS = []string{types.RoleStylesheet.Filename()}
		}
		descriptor.ContentScripts = []types.ContentScript{cs}
	}

	if features.RequiresFile(types.RoleRulesFile) {
		descriptor.DeclarativeNetRequest = &types.DeclarativeNetRequest{
			RuleResources: []types.RuleResource{{
				ID:      "ruleset_1",
				Enabled: true,
				Path:    types.RoleRulesFile.Filename(),
			}},
		}
		descriptor.HostPermissions = hostPermissions(features.EntityValues(types.EntitySite))
	}

	if err := descriptor.Validate(); err != nil {
		return nil, &ValidationError{
			Message: "built manifest failed structural validation",
			Cause:   err,
		}
	}

	return descriptor, nil
}

// describe builds the manifest description from a prompt excerpt
func describe(prompt string) string {
	excerpt := strings.TrimSpace(prompt)
	if excerpt == "" {
		excerpt = "a basic popup"
	}
	if len(excerpt) > maxDescriptionChars {
		excerpt = excerpt[:maxDescriptionChars]
	}
	return "Generated extension: " + excerpt
}

// hostPermissions maps blocked site domains to host match patterns
func hostPermissions(sites []string) []string {
	if len(sites) == 0 {
		return []string{"<all_urls>"}
	}
	patterns := make([]string, 0, len(sites)+1)
	for _, site := range sites {
		patterns = append(patterns, fmt.Sprintf("*://*.%s/*", site))
	}
	patterns = append(patterns, "<all_urls>")
	return patterns
}
