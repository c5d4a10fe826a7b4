package report

import (
	"encoding/json"
	"io"

	"textcheck/internal/analyzer"
	"textcheck/internal/category"
)

// notableTags are the token-level categories exported under the
// "notable-token" key of the structured dump.
var notableTags = []category.Tag{
	category.Email, category.URL, category.Hashtag, category.Handle,
	category.XMLToken, category.InfoToken, category.SuspiciousURL,
	category.MixedArabicASCII, category.ArabicPrefixASCII,
	category.MixedCJKASCII, category.MixedCyrillicLatin,
	category.CyrillicPunctPrefix, category.CyrillicPunctSuffix,
	category.CyrillicPunctPeriod, category.CyrillicPunctMixed,
	category.GeorgianPunctPrefix, category.GeorgianPunctSuffix,
	category.GeorgianPunctPeriod, category.GeorgianPunctMixed,
	category.StdSepNukta, category.AltSepNukta, category.StdCmpNukta,
	category.AltCmpNukta, category.DisVsgnNukta,
	category.LongToken20, category.LongToken30,
}

// patternTags are the punctuation-pattern categories exported under
// the "pattern" key.
var patternTags = []category.Tag{
	category.UnsplitPunctAlphaHyphen, category.UnsplitPunct,
	category.UnsplitApoS, category.UnsplitApoV, category.UnsplitNot,
	category.UnsplitPeriod, category.NumUnsplitPeriod,
	category.BenUnsplitPeriod, category.BenUnsplitApo, category.BenUnsplitPunct,
	category.BrokenURL, category.BrokenEmail, category.BrokenFilename,
	category.BrokenURLFuzzy, category.BrokenEmailFuzzy,
	category.SplitXML, category.XMLEscDec, category.XMLEscHex,
	category.XMLEscStd, category.XMLEscABC, category.UnusualPunctComb,
}

// WriteJSON renders the structured dump.
func WriteJSON(w io.Writer, a *analyzer.Analyzer) error {
	var letter, number, other, blocks, nonCanonical, conflicts map[string]any
	if prof := a.Profile(); prof != nil {
		letter, number, other, blocks, nonCanonical, conflicts = prof.Sections()
	} else {
		letter = map[string]any{}
		number = map[string]any{}
		other = map[string]any{}
		blocks = map[string]any{}
		nonCanonical = map[string]any{}
		conflicts = map[string]any{}
	}

	dump := map[string]any{
		"n_lines":       a.Lines,
		"n_characters":  a.Characters,
		"letter-script": letter,
		"number-script": number,
		"other-script":  other,
		"non-canonical": nonCanonical,
		"char-conflict": conflicts,
		"notable-token": tagSection(a, notableTags),
		"pattern":       tagSection(a, patternTags),
		"block":         blocks,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(dump)
}

// tagSection renders the store's records for the given categories,
// keyed by category name, then by example token.
func tagSection(a *analyzer.Analyzer, tags []category.Tag) map[string]any {
	out := make(map[string]any)
	for _, tag := range tags {
		rec := a.Store.Record(tag)
		if rec == nil {
			continue
		}
		tokens := make(map[string]any, len(rec.Order))
		for _, token := range rec.Order {
			ex := rec.Examples[token]
			locs := make([]any, 0, len(ex.Locations))
			for _, loc := range ex.Locations {
				locs = append(locs, loc)
			}
			tokens[token] = map[string]any{
				"count": ex.Occurrences,
				"ex":    locs,
			}
		}
		out[tag.Name()] = map[string]any{
			"count":    rec.Count,
			"examples": tokens,
		}
	}
	return out
}
