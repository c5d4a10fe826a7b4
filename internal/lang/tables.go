package lang

import "textcheck/internal/category"

type policySpec struct {
	suppress    []category.Tag
	allowed     string
	benignWords []string
	apoPrefixes []string
	apoSuffixes []string
	abbrevs     []string
	vowelApo    bool
}

// engAbbrevs covers titles and months, each in the capitalization forms
// that occur in real corpora (mixed case and all-caps).
var engAbbrevs = []string{
	"Mr.", "MR.", "Mrs.", "MRS.", "Ms.", "MS.", "Dr.", "DR.", "Prof.", "PROF.",
	"Gen.", "GEN.", "Col.", "COL.", "Capt.", "CAPT.", "Sgt.", "SGT.",
	"Rev.", "REV.", "Hon.", "HON.", "Sen.", "SEN.", "Rep.", "REP.",
	"Gov.", "GOV.", "St.", "ST.", "Jr.", "JR.", "Sr.", "SR.",
	"Jan.", "JAN.", "Feb.", "FEB.", "Mar.", "MAR.", "Apr.", "APR.",
	"Jun.", "JUN.", "Jul.", "JUL.", "Aug.", "AUG.",
	"Sep.", "SEP.", "Sept.", "SEPT.", "Oct.", "OCT.", "Nov.", "NOV.", "Dec.", "DEC.",
	"No.", "NO.", "Nos.", "NOS.", "etc.", "ETC.",
}

// mlgBibleBooks are Malagasy bible book abbreviations, written with a
// trailing period in scripture references.
var mlgBibleBooks = []string{
	"Gen.", "Eks.", "Lev.", "Nom.", "Deo.", "Jos.", "Mpits.", "Rota.",
	"Sam.", "Mpan.", "Tant.", "Ezra.", "Neh.", "Est.", "Joba.", "Sal.",
	"Ohab.", "Mpit.", "Ton.", "Isa.", "Jer.", "Fit.", "Ezek.", "Dan.",
	"Hos.", "Joe.", "Amo.", "Oba.", "Jon.", "Mik.", "Nah.", "Hab.",
	"Zef.", "Hag.", "Zak.", "Mal.", "Mat.", "Mar.", "Lio.", "Jao.",
	"Asa.", "Rom.", "Kor.", "Gal.", "Efe.", "Fil.", "Kol.", "Tes.",
	"Tim.", "Tit.", "Heb.", "Jak.", "Pet.", "Joda.", "Apok.",
}

// kinApoPrefixes are Kinyarwanda stem prefixes that legitimately end in
// an apostrophe before a vowel-initial stem.
var kinApoPrefixes = []string{
	"n'", "rw'", "y'", "cy'", "bw'", "w'", "b'", "k'", "tw'", "mw'",
	"ry'", "z'", "ni'", "nk'", "ng'",
}

var policies = map[string]policySpec{
	"ara": {suppress: []category.Tag{category.ArabicLetter}},
	"ar":  {suppress: []category.Tag{category.ArabicLetter}},
	"chi": {suppress: []category.Tag{category.CJK}},
	"zh":  {suppress: []category.Tag{category.CJK}},
	"jp":  {suppress: []category.Tag{category.CJK}},
	"dar": {
		suppress: []category.Tag{category.ArabicLetter},
		allowed:  "پچژگیک",
	},
	"far": {
		suppress: []category.Tag{category.ArabicLetter},
		allowed:  "پچژگیک",
	},
	"ur": {
		suppress: []category.Tag{category.ArabicLetter},
		allowed:  "ٹڈڑںہھےۓیک",
	},
	"de": {
		suppress: []category.Tag{category.ASCIILetter},
		allowed:  "äöüÄÖÜß",
	},
	"es": {
		suppress: []category.Tag{category.ASCIILetter},
		allowed:  "áéíóúüñÁÉÍÓÚÜÑ",
	},
	"fr": {
		suppress: []category.Tag{category.ASCIILetter},
		allowed:  "àâæçéèêëîïôœùûüÿÀÂÆÇÉÈÊËÎÏÔŒÙÛÜŸ",
	},
	"fre": {
		suppress: []category.Tag{category.ASCIILetter},
		allowed:  "àâæçéèêëîïôœùûüÿÀÂÆÇÉÈÊËÎÏÔŒÙÛÜŸ",
	},
	"gr": {suppress: []category.Tag{category.Greek}},
	"ru": {suppress: []category.Tag{category.Cyrillic}},
	"eng": {
		suppress:    []category.Tag{category.ASCIILetter},
		benignWords: []string{"o'clock"},
		abbrevs:     engAbbrevs,
	},
	"kin": {
		suppress:    []category.Tag{category.ASCIILetter},
		apoPrefixes: kinApoPrefixes,
	},
	"mlg": {
		suppress:    []category.Tag{category.ASCIILetter},
		apoSuffixes: []string{"n'", "'ny"},
		abbrevs:     mlgBibleBooks,
	},
	"som": {
		suppress: []category.Tag{category.ASCIILetter},
		vowelApo: true,
	},
}
