package rules

import (
	"regexp"
	"strings"
)

// Helper predicates shared by rule matchers. Matching is case-insensitive
// and line-oriented throughout.

var (
	imgTagRe        = regexp.MustCompile(`(?i)<img\b`)
	altAttrRe       = regexp.MustCompile(`(?i)\balt\s*=`)
	emptyAltImgRe   = regexp.MustCompile(`(?i)<img[^>]*\balt\s*=\s*["']\s*["'][^>]*\bsrc\s*=`)
	bareButtonRe    = regexp.MustCompile(`(?i)<button[^>]*>\s*(</button>|<(svg|i|img)\b)`)
	inputTagRe      = regexp.MustCompile(`(?i)<input\b`)
	ariaLabelRe     = regexp.MustCompile(`(?i)\baria-label(ledby)?\s*=`)
	skippedInputRe  = regexp.MustCompile(`(?i)\btype\s*=\s*["']?(hidden|submit|button)\b`)
	labelTagRe      = regexp.MustCompile(`(?i)<label\b`)
	inlineHexRe     = regexp.MustCompile(`(?i)\bstyle\s*=\s*["'][^"']*color\s*:\s*#[0-9a-f]{3,6}\b`)
	earlyHeadingRe  = regexp.MustCompile(`(?i)<h[3-6]\b`)
	htmlTagRe       = regexp.MustCompile(`(?i)<html\b`)
	langAttrRe      = regexp.MustCompile(`(?i)\blang\s*=`)
	clickableDivRe  = regexp.MustCompile(`(?i)<div[^>]*\bonclick\s*=`)
	roleButtonRe    = regexp.MustCompile(`(?i)\brole\s*=\s*["']button["']`)
	vagueAnchorRe   = regexp.MustCompile(`(?i)<a\b[^>]*>\s*(click here|read more|here|more)\s*<`)
	landmarkClassRe = regexp.MustCompile(`(?i)<div[^>]*\bclassName\s*=\s*["'][^"']*(header|nav|main|footer)`)
	roleAttrRe      = regexp.MustCompile(`(?i)\brole\s*=`)
)

// anyLineMatches reports whether pattern matches any line in the window.
func anyLineMatches(window []string, pattern *regexp.Regexp) bool {
	for _, line := range window {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

// markedDecorative reports whether the line carries a marker indicating
// the image is intentionally decorative.
func markedDecorative(line string) bool {
	return strings.Contains(strings.ToLower(line), "decorative")
}
