// Package prescan recognizes split artifacts on a raw line before
// tokenization: URLs, emails, filenames and XML tags that tokenization
// has broken apart with whitespace, plus XML character escapes and
// unusual punctuation combinations. Matches are blanked out so they
// cannot mask the later per-token checks.
package prescan

import (
	"regexp"
	"strings"

	"textcheck/internal/category"
)

// Match is one recognized artifact.
type Match struct {
	Tag  category.Tag
	Text string
}

type pattern struct {
	tag category.Tag
	re  *regexp.Regexp
	// needsSpace accepts a match only if whitespace survives inside it;
	// without it an intact URL would be consumed here instead of being
	// classified as a clean token.
	needsSpace bool
	// escOnly patterns also run on lines without the URL/email triggers.
	escOnly bool
}

const wordChars = `[-\w~%+&=?#]`

// patterns run in order; the most specific come first so a well-formed
// broken URL is never re-classified by a fuzzy fallback.
var patterns = []pattern{
	{category.BrokenURL, regexp.MustCompile(
		`(?:https?\s*:\s*/\s*/|www\s*\.)\s*(?:` + wordChars + `+\s*[./:]\s*)+` + wordChars + `*`), true, false},
	{category.BrokenEmail, regexp.MustCompile(
		`[-\w.]+\s*@\s*[-\w]+(?:\s*\.\s*[-\w]+)+`), true, false},
	{category.BrokenFilename, regexp.MustCompile(
		`[-\w]+(?:\s*\.\s*[-\w]+)*\s*\.\s*(?:cgi|doc|docx|gif|htm|html|jpeg|jpg|mp3|mp4|pdf|php|png|ppt|txt|xls|xml|zip)\b`), true, false},
	{category.BrokenURLFuzzy, regexp.MustCompile(
		`(?:https?\s*:|www)\S*(?:\s+[./]\s*\S+)+`), true, false},
	{category.BrokenEmailFuzzy, regexp.MustCompile(
		`\S+\s+@\s+\S+`), true, false},
	{category.SplitXML, regexp.MustCompile(
		`<\s*/?\s*[A-Za-z][^<>]*\s[^<>]*>`), true, false},
	{category.XMLEscDec, regexp.MustCompile(`&\s*#\s*[0-9]+\s*;`), false, true},
	{category.XMLEscHex, regexp.MustCompile(`&\s*#\s*[xX]\s*[0-9a-fA-F]+\s*;`), false, true},
	{category.XMLEscStd, regexp.MustCompile(`&\s*(?:amp|lt|gt|quot|apos)\s*;`), false, true},
	{category.XMLEscABC, regexp.MustCompile(`&\s*[A-Za-z]+\s*;`), false, true},
	{category.UnusualPunctComb, regexp.MustCompile(`\\\s*"|[!?][!?]+|,,+|;;+`), false, false},
}

var brokenEmailTriggerRe = regexp.MustCompile(`\s@\s`)
var backslashQuoteRe = regexp.MustCompile(`\\\s*"`)

// hasTriggers reports whether the full pattern list is worth running.
// Lines without any trigger substring only get the escape sub-list.
func hasTriggers(line string) bool {
	if strings.Contains(line, "http") || strings.Contains(line, "www") {
		return true
	}
	if brokenEmailTriggerRe.MatchString(line) {
		return true
	}
	if backslashQuoteRe.MatchString(line) {
		return true
	}
	if amp := strings.IndexByte(line, '&'); amp >= 0 && strings.IndexByte(line[amp:], ';') > 0 {
		return true
	}
	return false
}

// Scan repeatedly applies the pattern list to line, blanking each match
// before re-looping, and returns the cleaned line plus all matches in
// recognition order. Blanking replaces matched non-space bytes with
// spaces, preserving the positions of everything else on the line.
func Scan(line string) (string, []Match) {
	full := hasTriggers(line)
	var matches []Match
	buf := []byte(line)
	for {
		matched := false
		for _, p := range patterns {
			if !full && !p.escOnly {
				continue
			}
			lo, hi, ok := findAcceptable(p, string(buf))
			if !ok {
				continue
			}
			matches = append(matches, Match{Tag: p.tag, Text: string(buf[lo:hi])})
			blank(buf, lo, hi)
			matched = true
			break
		}
		if !matched {
			break
		}
	}
	return string(buf), matches
}

// findAcceptable returns the first match of p in s that satisfies the
// needsSpace requirement.
func findAcceptable(p pattern, s string) (int, int, bool) {
	off := 0
	for off < len(s) {
		loc := p.re.FindStringIndex(s[off:])
		if loc == nil {
			return 0, 0, false
		}
		lo, hi := off+loc[0], off+loc[1]
		if !p.needsSpace || strings.ContainsAny(s[lo:hi], " \t") {
			return lo, hi, true
		}
		if hi == lo {
			off = lo + 1
		} else {
			off = hi
		}
	}
	return 0, 0, false
}

func blank(buf []byte, lo, hi int) {
	for i := lo; i < hi; i++ {
		if buf[i] != ' ' && buf[i] != '\t' {
			buf[i] = ' '
		}
	}
}
