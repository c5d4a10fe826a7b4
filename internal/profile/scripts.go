package profile

import (
	"sort"
	"unicode"
)

type scriptRange struct {
	lo, hi rune
	name   string
}

// scriptRanges flattens the stdlib script tables into one sorted slice
// for binary search. Built once at init.
var scriptRanges = buildScriptRanges()

func buildScriptRanges() []scriptRange {
	var out []scriptRange
	for name, table := range unicode.Scripts {
		for _, r := range table.R16 {
			if r.Stride == 1 {
				out = append(out, scriptRange{rune(r.Lo), rune(r.Hi), name})
				continue
			}
			for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
				out = append(out, scriptRange{cp, cp, name})
			}
		}
		for _, r := range table.R32 {
			if r.Stride == 1 {
				out = append(out, scriptRange{rune(r.Lo), rune(r.Hi), name})
				continue
			}
			for cp := rune(r.Lo); cp <= rune(r.Hi); cp += rune(r.Stride) {
				out = append(out, scriptRange{cp, cp, name})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].lo < out[j].lo })
	return out
}

// scriptName returns the Unicode script of cp, or "Unknown".
func scriptName(cp rune) string {
	i := sort.Search(len(scriptRanges), func(i int) bool { return scriptRanges[i].hi >= cp })
	if i < len(scriptRanges) && scriptRanges[i].lo <= cp {
		return scriptRanges[i].name
	}
	return "Unknown"
}

type blockRange struct {
	lo, hi rune
	name   string
}

// blockTable names the Unicode blocks the dump reports on. Blocks not
// listed fall back to the script name.
var blockTable = []blockRange{
	{0x0000, 0x001F, "C0_CONTROL"},
	{0x0020, 0x007F, "BASIC_LATIN"},
	{0x0080, 0x009F, "C1_CONTROL"},
	{0x00A0, 0x00FF, "LATIN_1_SUPPLEMENT"},
	{0x0100, 0x017F, "LATIN_EXTENDED_A"},
	{0x0180, 0x024F, "LATIN_EXTENDED_B"},
	{0x0250, 0x02AF, "IPA_EXTENSIONS"},
	{0x0300, 0x036F, "COMBINING_DIACRITICAL_MARKS"},
	{0x0370, 0x03FF, "GREEK"},
	{0x0400, 0x04FF, "CYRILLIC"},
	{0x0500, 0x052F, "CYRILLIC_SUPPLEMENT"},
	{0x0530, 0x058F, "ARMENIAN"},
	{0x0590, 0x05FF, "HEBREW"},
	{0x0600, 0x06FF, "ARABIC"},
	{0x0660, 0x0669, "ARABIC_INDIC_DIGIT"},
	{0x06F0, 0x06F9, "EXTENDED_ARABIC_INDIC_DIGIT"},
	{0x0700, 0x074F, "SYRIAC"},
	{0x0780, 0x07BF, "THAANA"},
	{0x0900, 0x097F, "DEVANAGARI"},
	{0x2000, 0x200A, "SPACE"},
	{0x200B, 0x200F, "ZERO_WIDTH"},
	{0x2010, 0x2027, "GENERAL_PUNCTUATION"},
	{0x202A, 0x202E, "DIRECTIONAL"},
	{0x2030, 0x205E, "GENERAL_PUNCTUATION"},
	{0x2070, 0x209F, "SUPERSCRIPTS_AND_SUBSCRIPTS"},
	{0x20A0, 0x20CF, "CURRENCY_SYMBOLS"},
	{0x2100, 0x214F, "LETTERLIKE_SYMBOLS"},
	{0x2150, 0x2188, "NUMBER_FORMS"},
	{0xD800, 0xDFFF, "LOW_SURROGATES"},
	{0xFB00, 0xFB4F, "ALPHABETIC_PRESENTATION_FORMS"},
	{0xFB50, 0xFDFF, "ARABIC_PRESENTATION_FORMS_A"},
	{0xFE00, 0xFE0F, "VARIATION_SELECTORS"},
	{0xFE70, 0xFEFF, "ARABIC_PRESENTATION_FORMS_B"},
	{0xFF00, 0xFFEF, "FULLWIDTH_LATIN"},
	{0xFFFD, 0xFFFD, "REPLACEMENT"},
	{0xE0100, 0xE01EF, "VARIATION_SELECTORS_SUPPLEMENT"},
}

// blockName returns the reporting block of cp. The digit sub-ranges of
// the Arabic block take precedence over the enclosing block.
func blockName(cp rune) string {
	best := ""
	for _, b := range blockTable {
		if cp >= b.lo && cp <= b.hi {
			best = b.name // later, narrower entries override
		}
	}
	if best != "" {
		return best
	}
	if s := scriptName(cp); s != "Unknown" {
		return s
	}
	return "UNASSIGNED"
}
