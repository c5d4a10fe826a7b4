package tokclass

import (
	"textcheck/internal/category"
	"textcheck/internal/charclass"
	"textcheck/internal/store"
)

const (
	devNukta    = 0x093C
	devVowelLo  = 0x093E
	devVowelHi  = 0x094C
	devLegacyLo = 0x0958
	devLegacyHi = 0x095F
)

// nuktaBases are the Devanagari consonants that regularly take an
// explicit nukta to form loan-word consonants (qa, khha, ghha, za,
// dddha, rha, fa, yya).
var nuktaBases = map[rune]bool{
	0x0915: true, // ka
	0x0916: true, // kha
	0x0917: true, // ga
	0x091C: true, // ja
	0x0921: true, // dda
	0x0922: true, // ddha
	0x092B: true, // pha
	0x092F: true, // ya
}

// precomposedNukta are the standalone precomposed nukta consonants
// outside the legacy U+0958..U+095F range.
var precomposedNukta = map[rune]bool{
	0x0929: true, // nnna
	0x0931: true, // rra
	0x0934: true, // llla
}

// nuktaChecks analyzes Devanagari nukta usage: separately-encoded
// nuktas on expected vs unexpected bases, precomposed forms, and the
// vowel-sign-before-nukta ordering error.
func (tc *Classifier) nuktaChecks(token, location string, n charclass.Noter) {
	note := func(tag category.Tag) {
		n.Note(tag, token, location, store.ModeUnconditional, "")
	}
	var prev rune
	for _, r := range token {
		switch {
		case r == devNukta:
			switch {
			case prev >= devVowelLo && prev <= devVowelHi:
				note(category.DisVsgnNukta)
			case nuktaBases[prev]:
				note(category.StdSepNukta)
			default:
				note(category.AltSepNukta)
			}
		case precomposedNukta[r]:
			note(category.StdCmpNukta)
		case r >= devLegacyLo && r <= devLegacyHi:
			note(category.AltCmpNukta)
		}
		prev = r
	}
}
