package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/extension-forge/internal/analysis"
	"github.com/jonathan/extension-forge/internal/types"
)

func analyzed(t *testing.T, prompt string) *types.FeatureSet {
	t.Helper()
	return analysis.Analyze(prompt, nil)
}

func TestBuild_PopupExtension(t *testing.T) {
	descriptor, err := Build(analyzed(t, "show a popup with today's date"))
	require.NoError(t, err)

	assert.Equal(t, 3, descriptor.ManifestVersion)
	assert.Equal(t, "Date Popup", descriptor.Name)
	assert.Equal(t, "1.0.0", descriptor.Version)

	require.NotNil(t, descriptor.Action)
	assert.Equal(t, "popup.html", descriptor.Action.DefaultPopup)
	assert.Nil(t, descriptor.Background)
	assert.Empty(t, descriptor.ContentScripts)
	assert.Nil(t, descriptor.DeclarativeNetRequest)
}

func TestBuild_ContentExtension(t *testing.T) {
	descriptor, err := Build(analyzed(t, "Make an extension that highlights all phone numbers on any website."))
	require.NoError(t, err)

	assert.Equal(t, "Phone Number Highlighter", descriptor.Name)
	assert.Nil(t, descriptor.Action, "no popup files, no action entry")

	require.Len(t, descriptor.ContentScripts, 1)
	cs := descriptor.ContentScripts[0]
	assert.Equal(t, []string{"<all_urls>"}, cs.Matches)
	assert.Equal(t, []string{"content.js"}, cs.JS)
	assert.Equal(t, []string{"styles.css"}, cs.CSS)
	assert.Equal(t, "document_idle", cs.RunAt)

	assert.Contains(t, descriptor.Permissions, "activeTab")
}

func TestBuild_BlockingExtension(t *testing.T) {
	descriptor, err := Build(analyzed(t, "Block Facebook and TikTok every time the browser opens."))
	require.NoError(t, err)

	require.NotNil(t, descriptor.Background)
	assert.Equal(t, "background.js", descriptor.Background.ServiceWorker)

	require.NotNil(t, descriptor.DeclarativeNetRequest)
	require.Len(t, descriptor.DeclarativeNetRequest.RuleResources, 1)
	rr := descriptor.DeclarativeNetRequest.RuleResources[0]
	assert.Equal(t, "ruleset_1", rr.ID)
	assert.True(t, rr.Enabled)
	assert.Equal(t, "rules.json", rr.Path)

	assert.Contains(t, descriptor.Permissions, "declarativeNetRequest")
	assert.Contains(t, descriptor.HostPermissions, "*://*.facebook.com/*")
	assert.Contains(t, descriptor.HostPermissions, "*://*.tiktok.com/*")
}

func TestBuild_FallbackExtension(t *testing.T) {
	descriptor, err := Build(analyzed(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "Forge Extension", descriptor.Name)
	require.NotNil(t, descriptor.Action)
	assert.Empty(t, descriptor.Permissions)
}

func TestBuild_UnrecognizedPermission(t *testing.T) {
	features := analyzed(t, "show a popup")
	features.Permissions = append(features.Permissions, "debugger")

	_, err := Build(features)
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "debugger")
}

func TestBuild_NilFeatureSet(t *testing.T) {
	_, err := Build(nil)
	assert.Error(t, err)
}

func TestBuild_LongPromptDescriptionTruncated(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "show a popup "
	}

	descriptor, err := Build(analyzed(t, long))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(descriptor.Description), len("Generated extension: ")+100)
}

func TestDeriveName_Priorities(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected string
	}{
		{"single site blocker", "block and filter facebook every day", "Facebook Blocker"},
		{"multi site blocker", "Block Facebook and TikTok every time the browser opens.", "Site Blocker"},
		{"email highlighter", "highlight emails on the page", "Email Highlighter"},
		{"generic page modifier", "change the webpage somehow", "Page Modifier"},
		{"clock popup", "show a popup with the current time", "Clock Popup"},
		{"generic popup", "display a popup menu", "Quick Popup"},
		{"storage", "remember my settings", "Preference Keeper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveName(analysis.Analyze(tt.prompt, nil)))
		})
	}
}
