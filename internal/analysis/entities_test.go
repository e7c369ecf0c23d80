package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/extension-forge/internal/types"
)

func TestExtractEntities_ExplicitDomains(t *testing.T) {
	entities := ExtractEntities(Normalize("block news.example.com and reddit.com"), DefaultRules())

	assert.ElementsMatch(t, []string{"news.example.com", "reddit.com"}, entities[types.EntitySite])
}

func TestExtractEntities_SocialSiteNamesMapToDomains(t *testing.T) {
	entities := ExtractEntities(Normalize("hide everything on facebook and youtube"), DefaultRules())

	assert.ElementsMatch(t, []string{"facebook.com", "youtube.com"}, entities[types.EntitySite])
}

func TestExtractEntities_DomainAndNameDeduplicated(t *testing.T) {
	entities := ExtractEntities(Normalize("block facebook.com and facebook"), DefaultRules())

	assert.Equal(t, []string{"facebook.com"}, entities[types.EntitySite])
}

func TestExtractEntities_TimeWindows(t *testing.T) {
	entities := ExtractEntities(Normalize("check for updates every 5 minutes and at 9 am"), DefaultRules())

	assert.Contains(t, entities[types.EntityTimeWindow], "every 5 minutes")
	assert.Contains(t, entities[types.EntityTimeWindow], "9 am")
}

func TestExtractEntities_ClaimedLiteralNotReExtracted(t *testing.T) {
	// A vocabulary term contained in an already-claimed literal is skipped, so
	// the earlier category keeps ownership of the text.
	cfg := DefaultRules()
	cfg.DataTypeVocabulary = []string{"work", "date"}

	entities := ExtractEntities(Normalize("block sites during work hours, save the date"), cfg)

	assert.Equal(t, []string{"work hours"}, entities[types.EntityTimeWindow])
	assert.NotContains(t, entities[types.EntityDataType], "work")
	assert.Contains(t, entities[types.EntityDataType], "date")
}

func TestExtractEntities_SiteClaimDoesNotSwallowSubstringTerms(t *testing.T) {
	// "reddit" claims the site literal, but "red" is a separate word and
	// must still surface as a visual attribute.
	entities := ExtractEntities(Normalize("change reddit pages to red"), DefaultRules())

	assert.Equal(t, []string{"reddit.com"}, entities[types.EntitySite])
	assert.Contains(t, entities[types.EntityVisual], "red")
}

func TestExtractEntities_VisualClaimsBeforeDataType(t *testing.T) {
	entities := ExtractEntities(Normalize("highlight links in green"), DefaultRules())

	assert.ElementsMatch(t, []string{"green", "highlight"}, entities[types.EntityVisual])
	assert.Contains(t, entities[types.EntityDataType], "link")
}

func TestExtractEntities_PluralForms(t *testing.T) {
	entities := ExtractEntities(Normalize("find all phone numbers and emails"), DefaultRules())

	assert.Contains(t, entities[types.EntityDataType], "phone number")
	assert.Contains(t, entities[types.EntityDataType], "email")
}

func TestExtractEntities_EmptyPrompt(t *testing.T) {
	entities := ExtractEntities("", DefaultRules())

	assert.Empty(t, entities)
}

func TestContainsTerm_WordBoundaries(t *testing.T) {
	assert.True(t, containsTerm("save the date", "date"))
	assert.True(t, containsTerm("all the dates", "date"))
	assert.False(t, containsTerm("update the page", "date"), "date inside update must not match")
}
