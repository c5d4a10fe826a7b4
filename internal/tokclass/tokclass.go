// Package tokclass assigns whole-token category tags: fast tracks for
// trivially benign tokens, special token types (URL, email, ...),
// unsplit-punctuation rules with their benign exemptions, mixed-script
// detection, Devanagari nukta analysis and length checks. Residual
// character-level tags are delegated to charclass.
package tokclass

import (
	"strings"
	"unicode/utf8"

	"textcheck/internal/category"
	"textcheck/internal/charclass"
	"textcheck/internal/lang"
	"textcheck/internal/store"
)

// Classifier classifies whole tokens under a language policy.
type Classifier struct {
	Policy       *lang.Policy
	LongTokenMin int
	chars        *charclass.Classifier
}

// New returns a token classifier with its embedded character classifier.
func New(policy *lang.Policy, longTokenMin int) *Classifier {
	return &Classifier{
		Policy:       policy,
		LongTokenMin: longTokenMin,
		chars:        charclass.New(policy),
	}
}

// Classify runs all whole-token checks on token and dispatches to the
// character classifier. It reports whether the token took a fast-track
// exit.
func (tc *Classifier) Classify(token, location string, n charclass.Noter) bool {
	if token == "" {
		return true
	}
	if tc.fastTrack(token, location, n) {
		return true
	}

	special := specialTokenType(token)
	switch special {
	case specialEmail:
		n.Note(category.Email, token, location, store.ModeUnconditional, "")
	case specialURL:
		n.Note(category.URL, token, location, store.ModeUnconditional, "")
	case specialHashtag:
		n.Note(category.Hashtag, token, location, store.ModeUnconditional, "")
	case specialHandle:
		n.Note(category.Handle, token, location, store.ModeUnconditional, "")
	case specialXML:
		n.Note(category.XMLToken, token, location, store.ModeUnconditional, "")
	case specialInfo:
		n.Note(category.InfoToken, token, location, store.ModeUnconditional, "")
	default:
		// A clean special token is exempt from the unsplit checks and
		// from the suspicious-URL heuristic; this order is part of the
		// output contract.
		if suspiciousURLRe.MatchString(token) || embeddedDomainRe.MatchString(token) {
			n.Note(category.SuspiciousURL, token, location, store.ModeUnconditional, "")
		}
		tc.unsplitChecks(token, location, n)
	}

	tc.mixedScriptChecks(token, location, n)
	tc.nuktaChecks(token, location, n)
	tc.lengthChecks(token, location, n)

	tc.chars.Classify(token, location, n)
	return false
}

// fastTrack handles tokens that are benign by construction: pure ASCII
// letters, pure ASCII digits, single ASCII punctuation, pure plain
// Arabic letters and pure CJK ideographs. The emitted tags are
// byte-identical to what the slow path would produce.
func (tc *Classifier) fastTrack(token, location string, n charclass.Noter) bool {
	if len(token) < tc.LongTokenMin && isASCIILetters(token) {
		if strings.EqualFold(token, "cannot") {
			n.Note(category.UnsplitNot, token, location, store.ModeUnconditional, "")
		}
		n.Note(category.ASCIILetter, token, location, store.ModeUnconditional, "")
		return true
	}
	if len(token) < tc.LongTokenMin && isASCIIDigits(token) {
		return true
	}
	if len(token) == 1 && isASCIIPunct(token[0]) {
		return true
	}
	if len(token) < 40 && isPlainArabicLetters(token) {
		n.Note(category.ArabicLetter, token, location, store.ModeUnconditional, "")
		return true
	}
	if len(token) < 60 && isPlainCJK(token) {
		n.Note(category.CJK, token, location, store.ModeUnconditional, "")
		return true
	}
	return false
}

// lengthChecks counts UTF-8 lead bytes only, so ill-formed input
// cannot inflate the codepoint count.
func (tc *Classifier) lengthChecks(token, location string, n charclass.Noter) {
	leads := 0
	for i := 0; i < len(token); i++ {
		if token[i]&0xC0 != 0x80 {
			leads++
		}
	}
	if leads >= 30 {
		n.Note(category.LongToken30, token, location, store.ModeUnconditional, "")
	}
	if leads >= tc.LongTokenMin && !longTokenAllowlist[strings.ToLower(token)] {
		n.Note(category.LongToken20, token, location, store.ModeUnconditional, "")
	}
}

// longTokenAllowlist holds words that are long but legitimate.
var longTokenAllowlist = map[string]bool{
	"counterrevolutionary": true,
	"internationalization": true,
	"institutionalization": true,
	"uncharacteristically": true,
	"electroencephalogram": true,
	"compartmentalization": true,
	"disproportionately":   true,
	"telecommunications":   true,
	"misunderstandings":    true,
	"responsibilities":     true,
}

func isASCIILetters(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return len(s) > 0
}

func isASCIIDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func isASCIIPunct(c byte) bool {
	return c >= 0x21 && c <= 0x7E &&
		!(c >= '0' && c <= '9') && !(c >= 'A' && c <= 'Z') && !(c >= 'a' && c <= 'z')
}

// isPlainArabicLetters accepts only Arabic letters that the character
// classifier would tag as plain ARABIC_LETTER: the variant yeh/kaf
// codepoints, tatweel, digits and punctuation disqualify the token
// from the fast track so their specific tags still fire.
func isPlainArabicLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == utf8.RuneError {
			return false
		}
		switch {
		case r >= 0x0621 && r <= 0x063A:
		case r == 0x0641 || r == 0x0642:
		case r >= 0x0644 && r <= 0x0649:
		default:
			return false
		}
	}
	return true
}

func isPlainCJK(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == utf8.RuneError {
			return false
		}
		switch {
		case r >= 0x4E00 && r <= 0x9FFF:
		case r >= 0x3400 && r <= 0x4DBF:
		default:
			return false
		}
	}
	return true
}
