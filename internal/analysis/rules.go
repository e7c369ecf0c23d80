// Package analysis provides the prompt analyzer: keyword-driven intent
// classification, entity extraction, and permission inference.
package analysis

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/extension-forge/internal/types"
)

// IntentRule holds the keyword table for one intent category
type IntentRule struct {
	Keywords  []string `yaml:"keywords"`
	Threshold float64  `yaml:"threshold"`
	Weight    float64  `yaml:"weight"`
}

// ColorEntry maps a color word to its hex value. Entries are ordered;
// the first word found in the prompt wins.
type ColorEntry struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
}

// RuleConfig holds every table the analyzer consults. It is treated as
// immutable once constructed; tests substitute alternate tables instead of
// mutating shared state.
type RuleConfig struct {
	Intents            map[types.IntentCategory]IntentRule `yaml:"intents"`
	PermissionTriggers map[string][]string                 `yaml:"permission_triggers"`
	SocialSites        map[string]string                   `yaml:"social_sites"`
	VisualVocabulary   []string                            `yaml:"visual_vocabulary"`
	DataTypeVocabulary []string                            `yaml:"data_type_vocabulary"`
	TimePatterns       []string                            `yaml:"time_patterns"`
	ColorPalette       []ColorEntry                        `yaml:"color_palette"`
}

// DefaultRules returns the built-in rule tables.
func DefaultRules() *RuleConfig {
	return &RuleConfig{
		Intents: map[types.IntentCategory]IntentRule{
			types.IntentUIInteraction: {
				Keywords:  []string{"popup", "button", "menu", "interface", "display", "show", "view", "click", "toolbar"},
				Threshold: 0.7,
				Weight:    1.0,
			},
			types.IntentContentModification: {
				Keywords: []string{"modify", "change", "highlight", "extract", "replace", "inject", "webpage",
					"website", "page", "dom", "text", "element", "find", "search"},
				Threshold: 0.6,
				Weight:    1.2,
			},
			types.IntentBackgroundAutomation: {
				Keywords: []string{"background", "automate", "block", "filter", "monitor", "schedule",
					"alarm", "timer", "startup", "browser opens", "always running"},
				Threshold: 0.7,
				Weight:    1.1,
			},
			types.IntentDataStorage: {
				Keywords:  []string{"save", "store", "remember", "persist", "settings", "preferences", "storage"},
				Threshold: 0.6,
				Weight:    0.8,
			},
			types.IntentBrowserIntegration: {
				Keywords:  []string{"tabs", "browser", "navigation", "url", "address", "omnibox", "bookmarks"},
				Threshold: 0.7,
				Weight:    0.9,
			},
		},
		PermissionTriggers: map[string][]string{
			"activeTab":             {"current page", "this page", "active tab", "current tab", "this website", "current website"},
			"tabs":                  {"all tabs", "browser tabs", "multiple tabs", "switch tab", "tab information", "open tab"},
			"storage":               {"save", "store", "remember", "persist", "settings", "preferences", "local storage"},
			"scripting":             {"inject", "execute script", "run script", "modify page"},
			"webRequest":            {"web request", "network", "http request"},
			"declarativeNetRequest": {"block", "blocking", "filter url", "block website", "block site"},
			"alarms":                {"alarm", "timer", "schedule", "periodic", "interval", "every minute", "every hour"},
			"notifications":         {"notification", "notify", "alert", "remind"},
			"contextMenus":          {"right click", "context menu", "right-click menu"},
			"history":               {"history", "browsing history", "visited"},
			"bookmarks":             {"bookmark", "bookmarks", "favorite"},
		},
		SocialSites: map[string]string{
			"facebook":  "facebook.com",
			"twitter":   "twitter.com",
			"tiktok":    "tiktok.com",
			"instagram": "instagram.com",
			"youtube":   "youtube.com",
			"reddit":    "reddit.com",
			"linkedin":  "linkedin.com",
			"snapchat":  "snapchat.com",
		},
		VisualVocabulary: []string{
			"color", "style", "theme", "font", "size", "highlight", "border",
			"red", "blue", "green", "yellow", "orange", "purple", "dark", "light",
		},
		DataTypeVocabulary: []string{
			"phone number", "date", "time", "phone", "email", "image", "link", "url", "text", "number",
		},
		TimePatterns: []string{
			`\b\d{1,2}\s*(?:am|pm)\b`,
			`\bwork hours\b`,
			`\bevery\s+(?:\d+\s+)?(?:second|minute|hour|day)s?\b`,
			`\b(?:daily|hourly|periodically)\b`,
		},
		ColorPalette: []ColorEntry{
			{Name: "red", Hex: "#ff4444"},
			{Name: "blue", Hex: "#4285f4"},
			{Name: "green", Hex: "#34a853"},
			{Name: "yellow", Hex: "#fbbc05"},
			{Name: "orange", Hex: "#ff9800"},
			{Name: "purple", Hex: "#9c27b0"},
			{Name: "dark", Hex: "#2d2d2d"},
			{Name: "light", Hex: "#ffffff"},
			{Name: "black", Hex: "#000000"},
			{Name: "white", Hex: "#ffffff"},
		},
	}
}

// LoadRules loads rule tables from a YAML file. Sections missing from the
// file fall back to the built-in defaults, so an override file only needs to
// name the tables it changes.
func LoadRules(path string) (*RuleConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", path, err)
	}

	var loaded RuleConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse rules YAML %s: %w", path, err)
	}

	merged := loaded.mergeWithDefaults(DefaultRules())
	for _, pattern := range merged.TimePatterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return nil, fmt.Errorf("invalid time pattern %q in %s: %w", pattern, path, err)
		}
	}
	return merged, nil
}

// mergeWithDefaults fills empty sections from defaults and returns the result
func (c *RuleConfig) mergeWithDefaults(defaults *RuleConfig) *RuleConfig {
	merged := *c
	if len(merged.Intents) == 0 {
		merged.Intents = defaults.Intents
	}
	if len(merged.PermissionTriggers) == 0 {
		merged.PermissionTriggers = defaults.PermissionTriggers
	}
	if len(merged.SocialSites) == 0 {
		merged.SocialSites = defaults.SocialSites
	}
	if len(merged.VisualVocabulary) == 0 {
		merged.VisualVocabulary = defaults.VisualVocabulary
	}
	if len(merged.DataTypeVocabulary) == 0 {
		merged.DataTypeVocabulary = defaults.DataTypeVocabulary
	}
	if len(merged.TimePatterns) == 0 {
		merged.TimePatterns = defaults.TimePatterns
	}
	if len(merged.ColorPalette) == 0 {
		merged.ColorPalette = defaults.ColorPalette
	}
	return &merged
}
