// Package lang maps language codes to analysis policies: categories
// whose hits are expected for the language, characters that are part
// of the language's alphabet, and benign token patterns.
package lang

import (
	"fmt"
	"strings"

	"textcheck/internal/category"
)

// ValidCodes is the fixed list of accepted language codes.
var ValidCodes = []string{
	"ar", "ara", "chi", "dar", "de", "en", "eng", "es", "far",
	"fr", "fre", "gr", "jp", "kin", "mlg", "ru", "som", "ur", "zh",
}

// Normalize applies code aliases. Currently only en -> eng.
func Normalize(code string) string {
	if code == "en" {
		return "eng"
	}
	return code
}

// Valid reports whether code is on the accepted list (before aliasing).
func Valid(code string) bool {
	for _, c := range ValidCodes {
		if c == code {
			return true
		}
	}
	return false
}

// Policy is the per-language analysis policy. The zero policy (empty
// code) suppresses nothing and allows nothing, which is also what an
// unknown code yields.
type Policy struct {
	Code string

	suppress    map[category.Tag]struct{}
	allowed     map[rune]struct{}
	benignWords map[string]struct{}
	apoPrefixes []string
	apoSuffixes []string
	abbrevs     map[string]struct{}
	vowelApo    bool
}

// For returns the policy for a language code. The code is normalized
// first; unknown codes yield the empty policy.
func For(code string) *Policy {
	code = Normalize(code)
	p := &Policy{Code: code}
	spec, ok := policies[code]
	if !ok {
		return p
	}
	p.suppress = make(map[category.Tag]struct{}, len(spec.suppress))
	for _, tag := range spec.suppress {
		p.suppress[tag] = struct{}{}
	}
	p.allowed = make(map[rune]struct{}, len(spec.allowed))
	for _, r := range spec.allowed {
		p.allowed[r] = struct{}{}
	}
	p.benignWords = make(map[string]struct{}, len(spec.benignWords))
	for _, w := range spec.benignWords {
		p.benignWords[strings.ToLower(w)] = struct{}{}
	}
	p.abbrevs = make(map[string]struct{}, len(spec.abbrevs))
	for _, a := range spec.abbrevs {
		p.abbrevs[a] = struct{}{}
	}
	p.apoPrefixes = spec.apoPrefixes
	p.apoSuffixes = spec.apoSuffixes
	p.vowelApo = spec.vowelApo
	return p
}

// Suppresses reports whether the category is of-course-expected for the
// language and should be displayed without examples by default.
func (p *Policy) Suppresses(tag category.Tag) bool {
	if p == nil {
		return false
	}
	_, ok := p.suppress[tag]
	return ok
}

// AllowedChar reports whether r belongs to the language's alphabet.
// The character classifier upgrades such codepoints to LANGUAGE_SPECIFIC.
func (p *Policy) AllowedChar(r rune) bool {
	if p == nil {
		return false
	}
	_, ok := p.allowed[r]
	return ok
}

// BenignWord reports whether the lowercased token is a known benign
// word for the language (e.g. English o'clock).
func (p *Policy) BenignWord(token string) bool {
	if p == nil {
		return false
	}
	_, ok := p.benignWords[strings.ToLower(token)]
	return ok
}

// BenignApoToken reports whether the token's apostrophe use follows a
// language-specific stem-prefix or suffix convention.
func (p *Policy) BenignApoToken(token string) bool {
	if p == nil {
		return false
	}
	lower := strings.ToLower(token)
	for _, pre := range p.apoPrefixes {
		if strings.HasPrefix(lower, pre) && len(lower) > len(pre) {
			return true
		}
	}
	for _, suf := range p.apoSuffixes {
		if strings.HasSuffix(lower, suf) && len(lower) > len(suf) {
			return true
		}
	}
	return false
}

// Abbrev reports whether the token (with its trailing period) is a
// known title, month or similar abbreviation for the language.
func (p *Policy) Abbrev(token string) bool {
	if p == nil {
		return false
	}
	_, ok := p.abbrevs[token]
	return ok
}

// VowelApo reports whether vowel-apostrophe-vowel sequences are part of
// the language's orthography (Somali).
func (p *Policy) VowelApo() bool {
	return p != nil && p.vowelApo
}

// Override merges user-supplied policy extensions (from textcheck.toml)
// into the policy. Unknown category names are an error.
func (p *Policy) Override(allowedChars string, suppress, benignWords []string) error {
	if p.allowed == nil {
		p.allowed = make(map[rune]struct{})
	}
	for _, r := range allowedChars {
		p.allowed[r] = struct{}{}
	}
	if len(suppress) > 0 {
		if p.suppress == nil {
			p.suppress = make(map[category.Tag]struct{})
		}
		byName := make(map[string]category.Tag, category.Count)
		for _, tag := range category.All() {
			byName[tag.Name()] = tag
		}
		for _, name := range suppress {
			tag, ok := byName[name]
			if !ok {
				return fmt.Errorf("lang: unknown category %q in policy override", name)
			}
			p.suppress[tag] = struct{}{}
		}
	}
	if p.benignWords == nil {
		p.benignWords = make(map[string]struct{})
	}
	for _, w := range benignWords {
		p.benignWords[strings.ToLower(w)] = struct{}{}
	}
	return nil
}
