package charclass

import (
	"fmt"
	"sort"

	"textcheck/internal/category"
)

// rangeClass assigns one primary category to a codepoint range.
// When sub is set it refines the block into specific tags (Arabic
// letter variants, Tibetan letters vs punctuation, etc.).
type rangeClass struct {
	lo, hi rune
	tag    category.Tag
	char   bool
	sub    func(cp rune) (category.Tag, bool)
}

func arabicBlock(cp rune) (category.Tag, bool) {
	switch cp {
	case 0x0640:
		return category.ArabicTatweel, true
	case 0x0643:
		return category.ArabicLetterKaf, true
	case 0x064A:
		return category.ArabicLetterYeh, true
	case 0x06A9:
		return category.FarsiLetterKeheh, true
	case 0x06CC:
		return category.FarsiLetterYeh, true
	case 0x060C, 0x061B, 0x061E, 0x061F, 0x066A, 0x066B, 0x066C, 0x066D, 0x06D4:
		return category.ArabicPunct, true
	}
	if cp >= 0x0660 && cp <= 0x0669 {
		return category.ArabicDigit, true
	}
	if cp >= 0x06F0 && cp <= 0x06F9 {
		return category.ExtArabicDigit, true
	}
	return category.ArabicLetter, false
}

func tibetanBlock(cp rune) (category.Tag, bool) {
	if cp >= 0x0F40 && cp <= 0x0FBC {
		return category.TibetanLetter, false
	}
	return category.TibetanPunct, true
}

func georgianBlock(cp rune) (category.Tag, bool) {
	if cp >= 0x10F1 && cp <= 0x10F6 {
		return category.GeorgianArchaic, false
	}
	return category.Georgian, false
}

func privateUseBlock(cp rune) (category.Tag, bool) {
	// The pIqaD convention squats on U+F8D0..U+F8FF.
	if cp >= 0xF8D0 && cp <= 0xF8FF {
		return category.Klingon, false
	}
	return category.PrivateUse, false
}

func latin1Signs(cp rune) (category.Tag, bool) {
	switch cp {
	case 0x00B2, 0x00B3, 0x00B9, 0x00BC, 0x00BD, 0x00BE:
		return category.MiscSymbol, true
	case 0x00B5:
		return category.LetterlikeSymbol, true
	}
	return category.NonASCIIPunct, true
}

// ranges is the primary decision table, sorted by lo and
// non-overlapping. Classification is a binary search here after the
// position-sensitive checks (BOM, language policy, ligatures) ran.
var ranges = []rangeClass{
	{0x0080, 0x009F, category.ControlChar, false, nil},
	{0x00A0, 0x00A0, category.NonASCIIWhitespace, true, nil},
	{0x00A1, 0x00BF, 0, false, latin1Signs},
	{0x00C0, 0x00D6, category.LatinPlusAlpha, false, nil},
	{0x00D7, 0x00D7, category.MathematicalOperator, true, nil},
	{0x00D8, 0x00F6, category.LatinPlusAlpha, false, nil},
	{0x00F7, 0x00F7, category.MathematicalOperator, true, nil},
	{0x00F8, 0x024F, category.LatinPlusAlpha, false, nil},
	{0x0250, 0x02FF, category.IPA, false, nil},
	{0x0300, 0x036F, category.CombiningDiacritic, false, nil},
	{0x0370, 0x03FF, category.Greek, false, nil},
	{0x0400, 0x052F, category.Cyrillic, false, nil},
	{0x0530, 0x058F, category.Armenian, false, nil},
	{0x0590, 0x05FF, category.Hebrew, false, nil},
	{0x0600, 0x06FF, 0, false, arabicBlock},
	{0x0700, 0x074F, category.Syriac, false, nil},
	{0x0750, 0x077F, category.ArabicLetter, false, nil},
	{0x0780, 0x07BF, category.Thaana, false, nil},
	{0x08A0, 0x08FF, category.ArabicLetter, false, nil},
	{0x0900, 0x097F, category.Devanagari, false, nil},
	{0x0980, 0x09FF, category.Bengali, false, nil},
	{0x0A00, 0x0A7F, category.Gurmukhi, false, nil},
	{0x0A80, 0x0AFF, category.Gujarati, false, nil},
	{0x0B00, 0x0B7F, category.Oriya, false, nil},
	{0x0B80, 0x0BFF, category.Tamil, false, nil},
	{0x0C00, 0x0C7F, category.Telugu, false, nil},
	{0x0C80, 0x0CFF, category.Kannada, false, nil},
	{0x0D00, 0x0D7F, category.Malayalam, false, nil},
	{0x0D80, 0x0DFF, category.Sinhala, false, nil},
	{0x0E00, 0x0E7F, category.Thai, false, nil},
	{0x0E80, 0x0EFF, category.Lao, false, nil},
	{0x0F00, 0x0FFF, 0, false, tibetanBlock},
	{0x1000, 0x109F, category.Myanmar, false, nil},
	{0x10A0, 0x10CF, category.GeorgianAsomtavruli, false, nil},
	{0x10D0, 0x10FF, 0, false, georgianBlock},
	{0x1100, 0x11FF, category.Hangul, false, nil},
	{0x1200, 0x139F, category.Ethiopic, false, nil},
	{0x13A0, 0x13FF, category.Cherokee, false, nil},
	{0x1400, 0x167F, category.CanadianSyllabic, false, nil},
	{0x1680, 0x1680, category.NonASCIIWhitespace, true, nil},
	{0x1681, 0x169F, category.Ogham, false, nil},
	{0x16A0, 0x16FF, category.Runic, false, nil},
	{0x1780, 0x17FF, category.Khmer, false, nil},
	{0x1800, 0x180D, category.Mongolian, false, nil},
	{0x180E, 0x180E, category.ZeroWidth, false, nil},
	{0x180F, 0x18AF, category.Mongolian, false, nil},
	{0x19E0, 0x19FF, category.Khmer, false, nil},
	{0x1A00, 0x1A1F, category.Buginese, false, nil},
	{0x1AB0, 0x1AFF, category.CombiningDiacritic, false, nil},
	{0x1B80, 0x1BBF, category.Sundanese, false, nil},
	{0x1C90, 0x1CBF, category.GeorgianEmphasis, false, nil},
	{0x1D00, 0x1DBF, category.IPA, false, nil},
	{0x1DC0, 0x1DFF, category.CombiningDiacritic, false, nil},
	{0x1E00, 0x1EFF, category.LatinPlusAlpha, false, nil},
	{0x1F00, 0x1FFF, category.Greek, false, nil},
	{0x2000, 0x200A, category.NonASCIIWhitespace, true, nil},
	{0x200B, 0x200B, category.ZeroWidth, false, nil},
	{0x200C, 0x200D, category.Joiner, false, nil},
	{0x200E, 0x200F, category.Directional, false, nil},
	{0x2010, 0x2027, category.NonASCIIPunct, true, nil},
	{0x2028, 0x2029, category.NonASCIIWhitespace, true, nil},
	{0x202A, 0x202E, category.Directional, false, nil},
	{0x202F, 0x202F, category.NonASCIIWhitespace, true, nil},
	{0x2030, 0x205E, category.NonASCIIPunct, true, nil},
	{0x205F, 0x205F, category.NonASCIIWhitespace, true, nil},
	{0x2060, 0x2064, category.ZeroWidth, false, nil},
	{0x2066, 0x2069, category.Directional, false, nil},
	{0x2070, 0x209F, category.MiscSymbol, true, nil},
	{0x20A0, 0x20CF, category.NonASCIIPunct, true, nil},
	{0x20D0, 0x20FF, category.CombiningDiacritic, false, nil},
	{0x2100, 0x214F, category.LetterlikeSymbol, true, nil},
	{0x2150, 0x218F, category.MiscSymbol, true, nil},
	{0x2190, 0x21FF, category.ArrowSymbol, true, nil},
	{0x2200, 0x22FF, category.MathematicalOperator, true, nil},
	{0x2300, 0x245F, category.TechnicalSymbol, true, nil},
	{0x2460, 0x24FF, category.EnclosedAlphanumeric, false, nil},
	{0x2500, 0x259F, category.BoxDrawing, false, nil},
	{0x25A0, 0x25FF, category.GeometricShape, true, nil},
	{0x2600, 0x27BF, category.MiscSymbol, true, nil},
	{0x27C0, 0x27EF, category.MathematicalOperator, true, nil},
	{0x27F0, 0x27FF, category.ArrowSymbol, true, nil},
	{0x2800, 0x28FF, category.TechnicalSymbol, true, nil},
	{0x2900, 0x297F, category.ArrowSymbol, true, nil},
	{0x2980, 0x2AFF, category.MathematicalOperator, true, nil},
	{0x2B00, 0x2BFF, category.ArrowSymbol, true, nil},
	{0x2C80, 0x2CFF, category.Coptic, false, nil},
	{0x2D00, 0x2D2F, category.GeorgianNuskhuri, false, nil},
	{0x2DE0, 0x2DFF, category.Cyrillic, false, nil},
	{0x2E00, 0x2E7F, category.NonASCIIPunct, true, nil},
	{0x2E80, 0x2FDF, category.CJK, false, nil},
	{0x3000, 0x3000, category.NonASCIIWhitespace, true, nil},
	{0x3001, 0x303F, category.NonASCIIPunct, true, nil},
	{0x3040, 0x30FF, category.CJK, false, nil},
	{0x3130, 0x318F, category.Hangul, false, nil},
	{0x31C0, 0x31EF, category.CJK, false, nil},
	{0x3200, 0x32FF, category.EnclosedAlphanumeric, false, nil},
	{0x3300, 0x33FF, category.CJKSqLatinAbbrev, false, nil},
	{0x3400, 0x4DBF, category.CJK, false, nil},
	{0x4E00, 0x9FFF, category.CJK, false, nil},
	{0xA000, 0xA4CF, category.Yi, false, nil},
	{0xA4D0, 0xA4FF, category.Lisu, false, nil},
	{0xA640, 0xA69F, category.Cyrillic, false, nil},
	{0xA980, 0xA9DF, category.Javanese, false, nil},
	{0xAAE0, 0xAAFF, category.MeeteiMayek, false, nil},
	{0xABC0, 0xABFF, category.MeeteiMayek, false, nil},
	{0xAC00, 0xD7FF, category.Hangul, false, nil},
	{0xE000, 0xF8FF, 0, false, privateUseBlock},
	{0xF900, 0xFAFF, category.CJK, false, nil},
	{0xFB00, 0xFB0F, category.Ligature, false, nil},
	{0xFB13, 0xFB17, category.Armenian, false, nil},
	{0xFB1D, 0xFB4F, category.Hebrew, false, nil},
	{0xFB50, 0xFDFF, category.ArabicPresentation, false, nil},
	{0xFE00, 0xFE0F, category.VariationSelector, false, nil},
	{0xFE20, 0xFE2F, category.CombiningDiacritic, false, nil},
	{0xFE30, 0xFE6F, category.NonASCIIPunct, true, nil},
	{0xFE70, 0xFEFE, category.ArabicPresentation, false, nil},
	// U+FEFF handled positionally (BOM vs stray zero-width).
	{0xFF00, 0xFFEF, category.Fullwidth, false, nil},
	{0xFFFC, 0xFFFC, category.ReplacementObject, false, nil},
	{0xFFFD, 0xFFFD, category.ReplacementChar, false, nil},
	{0x10330, 0x1034F, category.Gothic, false, nil},
	{0x10900, 0x1091F, category.Phoenician, false, nil},
	{0x12000, 0x1247F, category.Cuneiform, false, nil},
	{0x13000, 0x1342F, category.EgyptianHieroglyph, false, nil},
	{0x1D400, 0x1D7FF, category.MathAlphanum, false, nil},
	{0x1F100, 0x1F1FF, category.EnclosedAlphanumeric, false, nil},
	{0x1F300, 0x1F5FF, category.MiscSymbol, true, nil},
	{0x1F600, 0x1F64F, category.MiscSymbol, true, nil},
	{0x1F680, 0x1F6FF, category.MiscSymbol, true, nil},
	{0x1F800, 0x1F8FF, category.ArrowSymbol, true, nil},
	{0x1F900, 0x1F9FF, category.MiscSymbol, true, nil},
	{0x20000, 0x2A6DF, category.CJK, false, nil},
	{0x2A700, 0x2EBEF, category.CJK, false, nil},
	{0x2F800, 0x2FA1F, category.CJK, false, nil},
	{0x30000, 0x3134F, category.CJK, false, nil},
	{0xE0000, 0xE007F, category.TagChars, true, nil},
	{0xE0100, 0xE01EF, category.VariationSelector, false, nil},
	{0xF0000, 0x10FFFD, category.PrivateUse, false, nil},
}

// lookupRange finds the table entry covering cp, resolving sub-block
// refinements. The second result reports whether the category carries
// the offending character into its _CHAR sibling.
func lookupRange(cp rune) (category.Tag, bool, bool) {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].hi >= cp })
	if i == len(ranges) || ranges[i].lo > cp {
		return 0, false, false
	}
	rc := ranges[i]
	if rc.sub != nil {
		tag, withChar := rc.sub(cp)
		return tag, withChar, true
	}
	return rc.tag, rc.char, true
}

func init() {
	for i := 1; i < len(ranges); i++ {
		if ranges[i].lo <= ranges[i-1].hi {
			panic(fmt.Sprintf("charclass: range table out of order at %#x", ranges[i].lo))
		}
	}
}
