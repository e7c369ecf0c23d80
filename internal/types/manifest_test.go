package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDescriptor() *ManifestDescriptor {
	return &ManifestDescriptor{
		ManifestVersion: 3,
		Name:            "Date Popup",
		Version:         "1.0.0",
		Action:          &Action{DefaultPopup: "popup.html"},
	}
}

func TestManifestDescriptor_Validate(t *testing.T) {
	assert.NoError(t, validDescriptor().Validate())
}

func TestManifestDescriptor_Validate_WrongVersion(t *testing.T) {
	descriptor := validDescriptor()
	descriptor.ManifestVersion = 2
	assert.Error(t, descriptor.Validate())
}

func TestManifestDescriptor_Validate_EmptyName(t *testing.T) {
	descriptor := validDescriptor()
	descriptor.Name = ""
	assert.Error(t, descriptor.Validate())
}

func TestManifestDescriptor_EntryPoints(t *testing.T) {
	descriptor := &ManifestDescriptor{
		ManifestVersion: 3,
		Name:            "Blocker",
		Version:         "1.0.0",
		Background:      &Background{ServiceWorker: "background.js"},
		ContentScripts: []ContentScript{{
			Matches: []string{"<all_urls>"},
			JS:      []string{"content.js"},
			CSS:     []string{"styles.css"},
		}},
		DeclarativeNetRequest: &DeclarativeNetRequest{
			RuleResources: []RuleResource{{ID: "ruleset_1", Enabled: true, Path: "rules.json"}},
		},
	}

	assert.ElementsMatch(t,
		[]string{"background.js", "content.js", "styles.css", "rules.json"},
		descriptor.EntryPoints())
}

func TestManifestDescriptor_JSONOmitsEmptySections(t *testing.T) {
	data, err := json.Marshal(validDescriptor())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "background")
	assert.NotContains(t, raw, "content_scripts")
	assert.NotContains(t, raw, "declarative_net_request")
	assert.NotContains(t, raw, "permissions")
}

func TestFeatureSet_Helpers(t *testing.T) {
	features := &FeatureSet{
		Intents:       []Intent{{Category: IntentUIInteraction, Confidence: 1, Threshold: 0.7}},
		Entities:      map[EntityCategory][]string{EntityDataType: {"date"}},
		Permissions:   []string{"storage"},
		RequiredFiles: []FileRole{RolePopupMarkup, RolePopupScript},
	}

	assert.True(t, features.HasIntent(IntentUIInteraction))
	assert.False(t, features.HasIntent(IntentDataStorage))
	assert.True(t, features.HasPermission("storage"))
	assert.False(t, features.HasPermission("tabs"))
	assert.True(t, features.RequiresFile(RolePopupMarkup))
	assert.False(t, features.RequiresFile(RoleRulesFile))
	assert.Equal(t, []string{"date"}, features.EntityValues(EntityDataType))
	assert.Nil(t, features.EntityValues(EntitySite))
}

func TestFileRole_Filename(t *testing.T) {
	assert.Equal(t, "popup.html", RolePopupMarkup.Filename())
	assert.Equal(t, "rules.json", RoleRulesFile.Filename())
	assert.Empty(t, FileRole("bogus").Filename())
}

func TestGenerateRequest_Validate(t *testing.T) {
	valid := &GenerateRequest{Prompt: "show a popup"}
	assert.NoError(t, valid.Validate())

	tooShort := &GenerateRequest{Prompt: "hi"}
	assert.Error(t, tooShort.Validate())

	empty := &GenerateRequest{}
	assert.Error(t, empty.Validate())
}

func TestAnalyzeRequest_Validate(t *testing.T) {
	empty := &AnalyzeRequest{}
	assert.NoError(t, empty.Validate(), "analysis accepts an empty prompt")
}
