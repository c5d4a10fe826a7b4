package tokclass

import (
	"strings"
	"unicode/utf8"

	"textcheck/internal/category"
	"textcheck/internal/charclass"
	"textcheck/internal/store"
)

// scriptMix is a coarse per-token presence profile used only by the
// mixed-script rules; the character classifier does the fine-grained
// per-codepoint work.
type scriptMix struct {
	asciiLetter bool
	asciiDigit  bool
	asciiPunct  bool
	latinExt    bool
	arabic      bool
	cyrillic    bool
	georgian    bool
	cjk         bool
	other       bool
}

func profileScripts(token string) scriptMix {
	var m scriptMix
	for _, r := range token {
		switch {
		case r == utf8.RuneError:
		case r < 0x80:
			switch {
			case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
				m.asciiLetter = true
			case r >= '0' && r <= '9':
				m.asciiDigit = true
			case r > 0x20:
				m.asciiPunct = true
			}
		case r >= 0x00C0 && r <= 0x024F, r >= 0x1E00 && r <= 0x1EFF:
			m.latinExt = true
		case r >= 0x0600 && r <= 0x06FF, r >= 0x0750 && r <= 0x077F,
			r >= 0x08A0 && r <= 0x08FF, r >= 0xFB50 && r <= 0xFDFF,
			r >= 0xFE70 && r <= 0xFEFE:
			m.arabic = true
		case r >= 0x0400 && r <= 0x052F:
			m.cyrillic = true
		case r >= 0x10A0 && r <= 0x10FF, r >= 0x1C90 && r <= 0x1CBF,
			r >= 0x2D00 && r <= 0x2D2F:
			m.georgian = true
		case r >= 0x2E80 && r <= 0x9FFF, r >= 0x3400 && r <= 0x4DBF,
			r >= 0xF900 && r <= 0xFAFF, r >= 0x20000 && r <= 0x3134F:
			m.cjk = true
		default:
			m.other = true
		}
	}
	return m
}

// arabicASCIIPrefixes are Arabic clitic prefixes that legitimately
// attach to digits or Latin material (article, prepositions,
// conjunction and their combinations).
var arabicASCIIPrefixes = []string{
	"وال", "بال", "لل", "وب", "ال", "ب", "ل", "و",
}

func isASCIIAlnum(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}

// mixedScriptChecks detects tokens that combine scripts which never
// legitimately co-occur inside one token. Only the script pairs below
// are flagged; Latin+Greek in particular is not.
func (tc *Classifier) mixedScriptChecks(token, location string, n charclass.Noter) {
	m := profileScripts(token)
	note := func(tag category.Tag) {
		n.Note(tag, token, location, store.ModeUnconditional, "")
	}

	hasASCII := m.asciiLetter || m.asciiDigit
	if hasASCII && m.arabic {
		if tail, ok := splitArabicPrefix(token); ok && isASCIIAlnum(tail) {
			note(category.ArabicPrefixASCII)
		} else {
			note(category.MixedArabicASCII)
		}
	}
	if hasASCII && m.cjk {
		note(category.MixedCJKASCII)
	}
	if (m.asciiLetter || m.latinExt) && m.cyrillic {
		note(category.MixedCyrillicLatin)
	}

	pureCyrillic := m.cyrillic && !m.asciiLetter && !m.asciiDigit && !m.latinExt &&
		!m.arabic && !m.cjk && !m.georgian
	if pureCyrillic && m.asciiPunct {
		note(punctPositionTag(token,
			category.CyrillicPunctPrefix, category.CyrillicPunctSuffix,
			category.CyrillicPunctPeriod, category.CyrillicPunctMixed))
	}
	pureGeorgian := m.georgian && !m.asciiLetter && !m.asciiDigit && !m.latinExt &&
		!m.arabic && !m.cjk && !m.cyrillic
	if pureGeorgian && m.asciiPunct {
		note(punctPositionTag(token,
			category.GeorgianPunctPrefix, category.GeorgianPunctSuffix,
			category.GeorgianPunctPeriod, category.GeorgianPunctMixed))
	}
}

// splitArabicPrefix strips the longest known Arabic prefix and returns
// the remainder.
func splitArabicPrefix(token string) (string, bool) {
	for _, pre := range arabicASCIIPrefixes {
		if strings.HasPrefix(token, pre) {
			return token[len(pre):], true
		}
	}
	return "", false
}

// punctPositionTag classifies a script+punctuation token by where the
// ASCII punctuation sits: leading only, trailing only (with a
// period-only special case), or anywhere else.
func punctPositionTag(token string, prefix, suffix, period, mixed category.Tag) category.Tag {
	runes := []rune(token)
	isPunct := func(r rune) bool {
		return r < 0x80 && r > 0x20 &&
			!(r >= '0' && r <= '9') && !(r >= 'A' && r <= 'Z') && !(r >= 'a' && r <= 'z')
	}
	lead := 0
	for lead < len(runes) && isPunct(runes[lead]) {
		lead++
	}
	trail := 0
	for trail < len(runes)-lead && isPunct(runes[len(runes)-1-trail]) {
		trail++
	}
	internal := false
	for _, r := range runes[lead : len(runes)-trail] {
		if isPunct(r) {
			internal = true
			break
		}
	}
	switch {
	case internal, lead > 0 && trail > 0:
		return mixed
	case lead > 0:
		return prefix
	case trail == 1 && runes[len(runes)-1] == '.':
		return period
	case trail > 0:
		return suffix
	}
	return mixed
}
