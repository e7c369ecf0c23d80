package codegen

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/jonathan/extension-forge/internal/types"
)

// highlightClass is the CSS class the content script applies to matches
const highlightClass = "fx-highlight"

// defaultAccent is the stylesheet accent when no color was detected
const defaultAccent = "#4285f4"

// JS regex literals per highlight target
var highlightPatterns = map[string]string{
	"phone": `/(?:\+?1[-.]?)?(?:\(?\d{3}\)?[-.]?)?\d{3}[-.]?\d{4}\b/g`,
	"email": `/[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}/g`,
}

// popupData parameterizes the popup markup and script templates
type popupData struct {
	Title             string
	ButtonLabel       string
	IncludeStylesheet bool
	ShowDate          bool
	MessageAction     string
}

// contentData parameterizes the content script template
type contentData struct {
	HighlightPattern string
	HighlightClass   string
	MessageAction    string
}

// backgroundData parameterizes the background service worker template
type backgroundData struct {
	BlockedSites []string
	UseAlarms    bool
}

// stylesheetData parameterizes the stylesheet template
type stylesheetData struct {
	Accent         string
	HighlightClass string
}

// Generate synthesizes one file per role in the feature set's required file
// list, parameterized by the extracted entities. Pure string substitution;
// no code execution, no network.
func Generate(features *types.FeatureSet, manifest *types.ManifestDescriptor) (*types.ExtensionBundle, error) {
	if features == nil || manifest == nil {
		return nil, &Error{Message: "feature set and manifest are required"}
	}

	var files []types.GeneratedFile
	action := messageAction(features)

	if features.RequiresFile(types.RolePopupMarkup) {
		data := popupData{
			Title:             manifest.Name,
			ButtonLabel:       buttonLabel(features),
			IncludeStylesheet: features.RequiresFile(types.RoleStylesheet),
			ShowDate:          showsDate(features),
			MessageAction:     action,
		}
		markup, err := render("popup_html", popupHTMLTemplate, data)
		if err != nil {
			return nil, err
		}
		files = append(files, types.GeneratedFile{Path: types.RolePopupMarkup.Filename(), Content: markup})

		script, err := render("popup_js", popupScriptTemplate, data)
		if err != nil {
			return nil, err
		}
		files = append(files, types.GeneratedFile{Path: types.RolePopupScript.Filename(), Content: script})
	}

	if features.RequiresFile(types.RoleContentScript) {
		data := contentData{
			HighlightPattern: highlightPatterns[highlightTarget(features)],
			HighlightClass:   highlightClass,
			MessageAction:    action,
		}
		script, err := render("content_js", contentScriptTemplate, data)
		if err != nil {
			return nil, err
		}
		files = append(files, types.GeneratedFile{Path: types.RoleContentScript.Filename(), Content: script})
	}

	if features.RequiresFile(types.RoleBackgroundScript) {
		data := backgroundData{
			UseAlarms: features.HasPermission("alarms"),
		}
		if features.HasPermission("declarativeNetRequest") {
			data.BlockedSites = features.EntityValues(types.EntitySite)
		}
		script, err := render("background_js", backgroundScriptTemplate, data)
		if err != nil {
			return nil, err
		}
		files = append(files, types.GeneratedFile{Path: types.RoleBackgroundScript.Filename(), Content: script})
	}

	if features.RequiresFile(types.RoleRulesFile) {
		rules, err := renderRules(features.EntityValues(types.EntitySite))
		if err != nil {
			return nil, err
		}
		files = append(files, types.GeneratedFile{Path: types.RoleRulesFile.Filename(), Content: rules})
	}

	if features.RequiresFile(types.RoleStylesheet) {
		accent := features.ColorScheme
		if accent == "" {
			accent = defaultAccent
		}
		sheet, err := render("styles_css", stylesheetTemplate, stylesheetData{
			Accent:         accent,
			HighlightClass: highlightClass,
		})
		if err != nil {
			return nil, err
		}
		files = append(files, types.GeneratedFile{Path: types.RoleStylesheet.Filename(), Content: sheet})
	}

	if err := checkCollisions(files); err != nil {
		return nil, err
	}

	return &types.ExtensionBundle{Manifest: manifest, Files: files}, nil
}

// render executes a named template over the given data
func render(name, text string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("failed to parse %s template", name), Cause: err}
	}
	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", &Error{Message: fmt.Sprintf("failed to execute %s template", name), Cause: err}
	}
	return out.String(), nil
}

// netRule models one declarativeNetRequest blocking rule
type netRule struct {
	ID       int           `json:"id"`
	Priority int           `json:"priority"`
	Action   ruleAction    `json:"action"`
	Cond     ruleCondition `json:"condition"`
}

type ruleAction struct {
	Type string `json:"type"`
}

type ruleCondition struct {
	URLFilter     string   `json:"urlFilter"`
	ResourceTypes []string `json:"resourceTypes"`
}

// renderRules emits the rules.json content. When no target sites were
// extracted the rule set is empty rather than absent, keeping the manifest's
// declared ruleset and permissions consistent.
func renderRules(sites []string) (string, error) {
	rules := make([]netRule, 0, len(sites))
	for i, site := range sites {
		rules = append(rules, netRule{
			ID:       i + 1,
			Priority: 1,
			Action:   ruleAction{Type: "block"},
			Cond: ruleCondition{
				URLFilter:     "||" + site,
				ResourceTypes: []string{"main_frame", "sub_frame"},
			},
		})
	}

	out, err := json.MarshalIndent(rules, "", "  ")
	if err != nil {
		return "", &Error{Message: "failed to marshal blocking rules", Cause: err}
	}
	return string(out) + "\n", nil
}

// buttonLabel picks the popup button caption from the dominant feature
func buttonLabel(features *types.FeatureSet) string {
	switch {
	case showsDate(features):
		return "Refresh"
	case highlightTarget(features) == "phone":
		return "Find Phone Numbers"
	case highlightTarget(features) == "email":
		return "Find Emails"
	case features.RequiresFile(types.RoleContentScript):
		return "Run on Page"
	default:
		return "Run Action"
	}
}

// showsDate reports whether the popup should display the current date
func showsDate(features *types.FeatureSet) bool {
	for _, dt := range features.EntityValues(types.EntityDataType) {
		if dt == "date" || dt == "time" {
			return true
		}
	}
	return false
}

// checkCollisions rejects duplicate output paths
func checkCollisions(files []types.GeneratedFile) error {
	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if seen[f.Path] {
			return &Error{Message: fmt.Sprintf("duplicate output path %q", f.Path)}
		}
		seen[f.Path] = true
	}
	return nil
}
