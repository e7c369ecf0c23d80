package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/extension-forge/internal/types"
)

func TestAnalyze_DatePopupPrompt(t *testing.T) {
	features := Analyze("show a popup with today's date", nil)

	require.Len(t, features.Intents, 1)
	assert.Equal(t, types.IntentUIInteraction, features.Intents[0].Category)
	assert.GreaterOrEqual(t, features.Intents[0].Confidence, features.Intents[0].Threshold)
	assert.False(t, features.Fallback)

	assert.Contains(t, features.EntityValues(types.EntityDataType), "date")

	assert.ElementsMatch(t, []types.FileRole{
		types.RolePopupMarkup, types.RolePopupScript, types.RoleStylesheet,
	}, features.RequiredFiles)
}

func TestAnalyze_HighlightPhoneNumbersPrompt(t *testing.T) {
	features := Analyze("Make an extension that highlights all phone numbers on any website.", nil)

	assert.True(t, features.HasIntent(types.IntentContentModification))
	assert.False(t, features.HasIntent(types.IntentUIInteraction))
	assert.False(t, features.HasIntent(types.IntentBackgroundAutomation))

	assert.Contains(t, features.EntityValues(types.EntityDataType), "phone number")
	assert.Contains(t, features.EntityValues(types.EntityVisual), "highlight")

	// Content modification always implies activeTab
	assert.True(t, features.HasPermission("activeTab"))

	// Content script plus a stylesheet for the visual entity; no popup files
	assert.ElementsMatch(t, []types.FileRole{
		types.RoleContentScript, types.RoleStylesheet,
	}, features.RequiredFiles)
}

func TestAnalyze_ColorTermNextToSiteNameKeepsStylesheet(t *testing.T) {
	features := Analyze("change reddit pages to red", nil)

	assert.True(t, features.HasIntent(types.IntentContentModification))
	assert.Contains(t, features.EntityValues(types.EntityVisual), "red")
	assert.True(t, features.RequiresFile(types.RoleStylesheet))
}

func TestAnalyze_BlockSitesPrompt(t *testing.T) {
	features := Analyze("Block Facebook and TikTok every time the browser opens.", nil)

	assert.True(t, features.HasIntent(types.IntentBackgroundAutomation))
	assert.False(t, features.HasIntent(types.IntentBrowserIntegration),
		"a single weak keyword hit must stay below threshold")

	assert.ElementsMatch(t, []string{"facebook.com", "tiktok.com"}, features.EntityValues(types.EntitySite))

	assert.True(t, features.HasPermission("declarativeNetRequest"))

	assert.True(t, features.RequiresFile(types.RoleBackgroundScript))
	assert.True(t, features.RequiresFile(types.RoleRulesFile))
}

func TestAnalyze_ScheduledBlockingGetsAlarms(t *testing.T) {
	features := Analyze("block facebook.com on a schedule during work hours", nil)

	assert.True(t, features.HasIntent(types.IntentBackgroundAutomation))
	assert.Equal(t, []string{"work hours"}, features.EntityValues(types.EntityTimeWindow))

	// Trigger keyword plus an implicit grant for scheduled background work
	assert.True(t, features.HasPermission("alarms"))
	assert.True(t, features.HasPermission("declarativeNetRequest"))
}

func TestAnalyze_EmptyPromptFallsBack(t *testing.T) {
	features := Analyze("", nil)

	assert.True(t, features.Fallback)
	require.Len(t, features.Intents, 1)
	assert.Equal(t, types.IntentUIInteraction, features.Intents[0].Category)
	assert.Zero(t, features.Intents[0].Confidence)

	// Minimal bundle: no stylesheet for the fallback popup
	assert.ElementsMatch(t, []types.FileRole{
		types.RolePopupMarkup, types.RolePopupScript,
	}, features.RequiredFiles)
	assert.Empty(t, features.Permissions)
}

func TestAnalyze_MatchlessPromptFallsBack(t *testing.T) {
	features := Analyze("quantum flux capacitor calibration", nil)

	assert.True(t, features.Fallback)
	require.Len(t, features.Intents, 1)
	assert.Equal(t, types.IntentUIInteraction, features.Intents[0].Category)
}

func TestAnalyze_MultiLabelClassification(t *testing.T) {
	features := Analyze("show a popup button to highlight text on the page and save my preferences", nil)

	assert.True(t, features.HasIntent(types.IntentUIInteraction))
	assert.True(t, features.HasIntent(types.IntentContentModification))
	assert.True(t, features.HasIntent(types.IntentDataStorage))

	assert.True(t, features.HasPermission("storage"))
	assert.True(t, features.HasPermission("activeTab"))
}

func TestAnalyze_Deterministic(t *testing.T) {
	prompt := "block facebook and youtube, highlight phone numbers in blue, save settings"

	first := Analyze(prompt, nil)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Analyze(prompt, nil))
	}
}

func TestAnalyze_ConfidenceAtThresholdQualifies(t *testing.T) {
	cfg := DefaultRules()
	cfg.Intents = map[types.IntentCategory]IntentRule{
		types.IntentUIInteraction: {
			Keywords:  []string{"popup"},
			Threshold: 0.5,
			Weight:    1.0,
		},
	}

	// One match at weight 1.0 scores exactly 0.5; the comparison is inclusive.
	features := Analyze("popup", cfg)
	require.Len(t, features.Intents, 1)
	assert.InDelta(t, 0.5, features.Intents[0].Confidence, 1e-9)
	assert.False(t, features.Fallback)
}

func TestAnalyze_ConfidenceCappedAtOne(t *testing.T) {
	features := Analyze("show display view click popup button menu toolbar interface", nil)

	require.True(t, features.HasIntent(types.IntentUIInteraction))
	for _, intent := range features.Intents {
		assert.LessOrEqual(t, intent.Confidence, 1.0)
	}
}

func TestAnalyze_CustomRuleTables(t *testing.T) {
	cfg := DefaultRules()
	cfg.Intents = map[types.IntentCategory]IntentRule{
		types.IntentDataStorage: {
			Keywords:  []string{"stash", "hoard"},
			Threshold: 0.4,
			Weight:    1.0,
		},
	}

	features := Analyze("stash my notes somewhere", cfg)
	assert.True(t, features.HasIntent(types.IntentDataStorage))
	assert.False(t, features.HasIntent(types.IntentUIInteraction))
}

func TestDeriveRequiredFiles_RulesFileRequiresBlockingPermission(t *testing.T) {
	features := &types.FeatureSet{
		Intents: []types.Intent{{Category: types.IntentBackgroundAutomation, Confidence: 0.8, Threshold: 0.7}},
	}

	roles := DeriveRequiredFiles(features)
	assert.NotContains(t, roles, types.RoleRulesFile,
		"no rules file without the declarativeNetRequest permission")

	features.Permissions = []string{"declarativeNetRequest"}
	roles = DeriveRequiredFiles(features)
	assert.Contains(t, roles, types.RoleRulesFile)
}

func TestNormalize_StripsPunctuationAndCase(t *testing.T) {
	assert.Equal(t, "block facebook.com now", Normalize("  Block FACEBOOK.COM, now!  "))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, []string{"a", "b"}, Tokenize("a b"))
	assert.Nil(t, Tokenize(""))
}
