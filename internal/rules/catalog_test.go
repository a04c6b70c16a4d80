package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NishaKushwah2004/AccessWAI/internal/config"
	"github.com/NishaKushwah2004/AccessWAI/internal/types"
)

func ruleByID(t *testing.T, c *Catalog, id string) Rule {
	t.Helper()
	for _, r := range c.Rules() {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("rule %s not registered", id)
	return Rule{}
}

func TestMissingAltText(t *testing.T) {
	rule := ruleByID(t, NewCatalog(), "MISSING_ALT_TEXT")

	assert.True(t, rule.Match(`<img src="x.png">`, Context{LineNumber: 1}))
	assert.True(t, rule.Match(`<IMG SRC="x.png">`, Context{LineNumber: 1}), "matching is case-insensitive")
	assert.False(t, rule.Match(`<img src="x.png" alt="A photo">`, Context{LineNumber: 1}))
	assert.False(t, rule.Match(`<img src="x.png" alt="">`, Context{LineNumber: 1}), "empty alt is a different rule")
	assert.False(t, rule.Match(`<p>no images here</p>`, Context{LineNumber: 1}))
}

func TestEmptyAltText(t *testing.T) {
	rule := ruleByID(t, NewCatalog(), "EMPTY_ALT_TEXT")

	assert.True(t, rule.Match(`<img alt="" src="banner.png">`, Context{}))
	assert.False(t, rule.Match(`<img alt="" src="swirl.png" class="decorative">`, Context{}))
	assert.False(t, rule.Match(`<img alt="Logo" src="logo.png">`, Context{}))
}

func TestButtonWithoutText(t *testing.T) {
	rule := ruleByID(t, NewCatalog(), "BUTTON_NO_TEXT")

	assert.True(t, rule.Match(`<button class="close"></button>`, Context{}))
	assert.True(t, rule.Match(`<button><svg viewBox="0 0 24 24"></svg></button>`, Context{}))
	assert.True(t, rule.Match(`<button><i class="fa fa-close"></i></button>`, Context{}))
	assert.False(t, rule.Match(`<button>Save changes</button>`, Context{}))
}

func TestMissingFormLabel(t *testing.T) {
	rule := ruleByID(t, NewCatalog(), "MISSING_FORM_LABEL")
	require.Equal(t, 2, rule.ContextWindow)

	line := `<input type="text" name="email">`

	assert.True(t, rule.Match(line, Context{Window: []string{"<div>", line, "</div>"}}))
	assert.False(t, rule.Match(line, Context{Window: []string{`<label for="email">Email</label>`, line}}),
		"label within the window satisfies the rule")
	assert.False(t, rule.Match(`<input type="text" aria-label="Email">`, Context{Window: []string{}}))
	assert.False(t, rule.Match(`<input type="text" aria-labelledby="email-label">`, Context{Window: []string{}}))
	assert.False(t, rule.Match(`<input type="hidden" name="csrf">`, Context{Window: []string{}}))
	assert.False(t, rule.Match(`<input type="submit" value="Go">`, Context{Window: []string{}}))
	assert.False(t, rule.Match(`<input type="button" value="Go">`, Context{Window: []string{}}))
}

func TestColorContrast(t *testing.T) {
	rule := ruleByID(t, NewCatalog(), "COLOR_CONTRAST")

	assert.True(t, rule.Match(`<p style="color: #777777">dim</p>`, Context{}))
	assert.True(t, rule.Match(`<span style="font-size:12px;color:#abc">x</span>`, Context{}))
	assert.False(t, rule.Match(`<p style="color: red">named colors are not flagged</p>`, Context{}))
	assert.False(t, rule.Match(`<p class="muted">no inline style</p>`, Context{}))
}

func TestHeadingHierarchyCutoff(t *testing.T) {
	rule := ruleByID(t, NewCatalog(), "HEADING_HIERARCHY")

	assert.True(t, rule.Match(`<h3>Early section</h3>`, Context{LineNumber: 1}))
	assert.True(t, rule.Match(`<h6>Deep</h6>`, Context{LineNumber: HeadingEarlyCutoff}))
	assert.False(t, rule.Match(`<h3>Late section</h3>`, Context{LineNumber: HeadingEarlyCutoff + 1}))
	assert.False(t, rule.Match(`<h2>Top levels are fine</h2>`, Context{LineNumber: 1}))
}

func TestMissingLanguageAttribute(t *testing.T) {
	rule := ruleByID(t, NewCatalog(), "MISSING_LANG")

	assert.True(t, rule.Match(`<html>`, Context{}))
	assert.True(t, rule.Match(`<html class="no-js">`, Context{}))
	assert.False(t, rule.Match(`<html lang="en">`, Context{}))
}

func TestNonSemanticInteractive(t *testing.T) {
	rule := ruleByID(t, NewCatalog(), "NON_SEMANTIC_INTERACTIVE")

	assert.True(t, rule.Match(`<div onclick="open()">Open</div>`, Context{}))
	assert.True(t, rule.Match(`<div onClick={handleOpen}>Open</div>`, Context{}))
	assert.False(t, rule.Match(`<div onclick="open()" role="button">Open</div>`, Context{}))
	assert.False(t, rule.Match(`<div>static content</div>`, Context{}))
}

func TestNonDescriptiveLinkText(t *testing.T) {
	rule := ruleByID(t, NewCatalog(), "LINK_TEXT")

	for _, phrase := range []string{"click here", "read more", "here", "more", "Click Here"} {
		assert.True(t, rule.Match(`<a href="/docs">`+phrase+`</a>`, Context{}), phrase)
	}
	assert.False(t, rule.Match(`<a href="/docs">Read the install guide</a>`, Context{}))
}

func TestMissingARIALandmark(t *testing.T) {
	rule := ruleByID(t, NewCatalog(), "MISSING_LANDMARK")

	assert.True(t, rule.Match(`<div className="site-header">`, Context{}))
	assert.True(t, rule.Match(`<div className="nav-links">`, Context{}))
	assert.False(t, rule.Match(`<div className="site-footer" role="contentinfo">`, Context{}))
	assert.False(t, rule.Match(`<div className="card">`, Context{}))
}

func TestApplyConfig(t *testing.T) {
	catalog := NewCatalog()
	err := catalog.ApplyConfig(&config.Config{
		Rules: map[string]config.RuleConfig{
			"MISSING_ALT_TEXT": {Disabled: true},
			"LINK_TEXT":        {Severity: "high"},
		},
	})
	require.NoError(t, err)

	assert.True(t, ruleByID(t, catalog, "MISSING_ALT_TEXT").Disabled)
	assert.Equal(t, types.SeverityHigh, ruleByID(t, catalog, "LINK_TEXT").Severity)
	assert.False(t, ruleByID(t, catalog, "MISSING_LANG").Disabled, "unconfigured rules are untouched")
}

func TestApplyConfigRejectsUnknownSeverity(t *testing.T) {
	// An issue with a severity outside the four buckets would be counted
	// in no summary bucket and inflate the score.
	for _, severity := range []string{"moderate", "CRITICAL", "info"} {
		catalog := NewCatalog()
		err := catalog.ApplyConfig(&config.Config{
			Rules: map[string]config.RuleConfig{
				"LINK_TEXT": {Severity: severity},
			},
		})
		require.Error(t, err, severity)
		assert.Equal(t, types.SeverityMedium, ruleByID(t, catalog, "LINK_TEXT").Severity,
			"rule keeps its default severity")
	}
}

func TestCatalogRegistrationOrderStable(t *testing.T) {
	var ids []string
	for _, r := range NewCatalog().Rules() {
		ids = append(ids, r.ID)
	}
	require.Equal(t, []string{
		"MISSING_ALT_TEXT",
		"EMPTY_ALT_TEXT",
		"BUTTON_NO_TEXT",
		"MISSING_FORM_LABEL",
		"COLOR_CONTRAST",
		"HEADING_HIERARCHY",
		"MISSING_LANG",
		"NON_SEMANTIC_INTERACTIVE",
		"LINK_TEXT",
		"MISSING_LANDMARK",
	}, ids)
}
