package rules

import (
	"fmt"

	"github.com/NishaKushwah2004/AccessWAI/internal/config"
	"github.com/NishaKushwah2004/AccessWAI/internal/types"
)

// HeadingEarlyCutoff is the line number below which an h3-h6 heading is
// flagged as appearing too early in the document. The value is fixed for
// compatibility with the original heuristic.
const HeadingEarlyCutoff = 50

// Context carries what a matcher may inspect beyond the line itself.
type Context struct {
	// LineNumber is the 1-indexed position of the line in its file.
	LineNumber int
	// Window holds the candidate line plus up to ContextWindow lines on
	// each side, in file order. Empty for rules with no context window.
	Window []string
}

// MatchFunc decides whether a rule fires on a given line.
type MatchFunc func(line string, ctx Context) bool

// Rule defines an accessibility check
type Rule struct {
	ID          string
	Type        string
	Severity    types.Severity
	Description string
	Suggestion  string
	// ContextWindow is the number of neighboring lines either side the
	// matcher needs to see. Zero means the rule is decided per line.
	ContextWindow int
	Disabled      bool
	Match         MatchFunc
}

// Catalog manages the registered accessibility rules
type Catalog struct {
	rules []Rule
}

// NewCatalog creates a catalog with the default rules registered.
func NewCatalog() *Catalog {
	catalog := &Catalog{
		rules: []Rule{},
	}

	catalog.registerDefaultRules()

	return catalog
}

// Rules returns the registered rules in registration order.
func (c *Catalog) Rules() []Rule {
	return c.rules
}

// ApplyConfig applies per-rule configuration to the catalog. A severity
// override must name one of the four known severities: anything else
// would put the rule's issues in no summary bucket.
func (c *Catalog) ApplyConfig(cfg *config.Config) error {
	for i := range c.rules {
		rule := &c.rules[i]
		ruleConfig, ok := cfg.Rules[rule.ID]
		if !ok {
			continue
		}
		if ruleConfig.Disabled {
			rule.Disabled = true
		}
		if ruleConfig.Severity != "" {
			severity := types.Severity(ruleConfig.Severity)
			if !severity.Valid() {
				return fmt.Errorf("invalid severity %q for rule %s", ruleConfig.Severity, rule.ID)
			}
			rule.Severity = severity
		}
	}
	return nil
}

// registerRule is a helper to register rules
func (c *Catalog) registerRule(rule Rule) {
	c.rules = append(c.rules, rule)
}

// registerDefaultRules registers the built-in WCAG 2.1 heuristics. Rules
// are independent: one line may accumulate issues from several of them,
// and overlapping matches are intentionally not deduplicated.
func (c *Catalog) registerDefaultRules() {
	c.registerRule(Rule{
		ID:          "MISSING_ALT_TEXT",
		Type:        "Missing Alt Text",
		Severity:    types.SeverityCritical,
		Description: "Image element is missing an alt attribute",
		Suggestion:  "Add descriptive alt text, e.g. <img src=\"photo.jpg\" alt=\"Team at the 2024 offsite\">",
		Match: func(line string, _ Context) bool {
			return imgTagRe.MatchString(line) && !altAttrRe.MatchString(line)
		},
	})

	c.registerRule(Rule{
		ID:          "EMPTY_ALT_TEXT",
		Type:        "Empty Alt Text",
		Severity:    types.SeverityMedium,
		Description: "Image has an empty alt attribute but does not appear to be decorative",
		Suggestion:  "Add descriptive alt text, or mark the image as decorative if it conveys no information",
		Match: func(line string, _ Context) bool {
			return emptyAltImgRe.MatchString(line) && !markedDecorative(line)
		},
	})

	c.registerRule(Rule{
		ID:          "BUTTON_NO_TEXT",
		Type:        "Button Without Text",
		Severity:    types.SeverityHigh,
		Description: "Button has no visible text content",
		Suggestion:  "Add text content or an aria-label so screen readers can announce the button's purpose",
		Match: func(line string, _ Context) bool {
			return bareButtonRe.MatchString(line)
		},
	})

	c.registerRule(Rule{
		ID:            "MISSING_FORM_LABEL",
		Type:          "Missing Form Label",
		Severity:      types.SeverityHigh,
		Description:   "Form input has no associated label or aria-label",
		Suggestion:    "Associate a <label> with the input, or add aria-label/aria-labelledby",
		ContextWindow: 2,
		Match: func(line string, ctx Context) bool {
			if !inputTagRe.MatchString(line) {
				return false
			}
			if ariaLabelRe.MatchString(line) || skippedInputRe.MatchString(line) {
				return false
			}
			return !anyLineMatches(ctx.Window, labelTagRe)
		},
	})

	c.registerRule(Rule{
		ID:          "COLOR_CONTRAST",
		Type:        "Potential Color Contrast Issue",
		Severity:    types.SeverityMedium,
		Description: "Inline style sets a literal hex color; contrast ratio needs manual verification",
		Suggestion:  "Verify the color pair meets a 4.5:1 contrast ratio (WCAG 1.4.3), or move colors to a reviewed stylesheet",
		Match: func(line string, _ Context) bool {
			return inlineHexRe.MatchString(line)
		},
	})

	c.registerRule(Rule{
		ID:          "HEADING_HIERARCHY",
		Type:        "Heading Hierarchy",
		Severity:    types.SeverityLow,
		Description: "A low-level heading (h3-h6) appears early in the document, suggesting skipped heading levels",
		Suggestion:  "Start the page with h1 and nest headings without skipping levels",
		Match: func(line string, ctx Context) bool {
			return ctx.LineNumber <= HeadingEarlyCutoff && earlyHeadingRe.MatchString(line)
		},
	})

	c.registerRule(Rule{
		ID:          "MISSING_LANG",
		Type:        "Missing Language Attribute",
		Severity:    types.SeverityHigh,
		Description: "The <html> element has no lang attribute",
		Suggestion:  "Declare the document language, e.g. <html lang=\"en\">",
		Match: func(line string, _ Context) bool {
			return htmlTagRe.MatchString(line) && !langAttrRe.MatchString(line)
		},
	})

	c.registerRule(Rule{
		ID:          "NON_SEMANTIC_INTERACTIVE",
		Type:        "Non-Semantic Interactive Element",
		Severity:    types.SeverityHigh,
		Description: "A <div> handles clicks without role=\"button\"",
		Suggestion:  "Use a <button> element, or add role=\"button\" plus keyboard handling",
		Match: func(line string, _ Context) bool {
			return clickableDivRe.MatchString(line) && !roleButtonRe.MatchString(line)
		},
	})

	c.registerRule(Rule{
		ID:          "LINK_TEXT",
		Type:        "Non-Descriptive Link Text",
		Severity:    types.SeverityMedium,
		Description: "Link text does not describe the link's destination",
		Suggestion:  "Replace generic phrases like \"click here\" with text that names the destination",
		Match: func(line string, _ Context) bool {
			return vagueAnchorRe.MatchString(line)
		},
	})

	c.registerRule(Rule{
		ID:          "MISSING_LANDMARK",
		Type:        "Missing ARIA Landmark",
		Severity:    types.SeverityLow,
		Description: "Container named like a landmark region has no role attribute",
		Suggestion:  "Use the semantic element (<header>, <nav>, <main>, <footer>) or add the matching role",
		Match: func(line string, _ Context) bool {
			return landmarkClassRe.MatchString(line) && !roleAttrRe.MatchString(line)
		},
	})
}
