package tokclass

import (
	"regexp"
	"strings"

	"textcheck/internal/category"
	"textcheck/internal/charclass"
	"textcheck/internal/lang"
	"textcheck/internal/store"
)

var (
	alphaHyphenRe = regexp.MustCompile(`(?i)^[a-z]+-+`)

	internalHyphenRe  = regexp.MustCompile("[a-z'`]-[a-z'`]")
	leadingHyphenRe   = regexp.MustCompile("^-[a-z'`]")
	embeddedDashNumRe = regexp.MustCompile(`--+[0-9]`)
	trailingPunctRe   = regexp.MustCompile(`[A-Za-z0-9][!-/:-@\[-` + "`" + `{-~]+$`)
	digitCommaAlphaRe = regexp.MustCompile(`[0-9],[a-z]`)

	apoSRe   = regexp.MustCompile(`(?i)(?:'s|s')$`)
	apoVRe   = regexp.MustCompile(`(?i)'(?:d|ll|m|ve)$`)
	apoNotRe = regexp.MustCompile(`(?i)n't$`)

	numPeriodRe      = regexp.MustCompile(`^[0-9]+\.$`)
	trailingPeriodRe = regexp.MustCompile(`[A-Za-z0-9]\.$`)

	capAbbrevRe   = regexp.MustCompile(`^(?:[A-Z]\.)+$`)
	numGroupRe    = regexp.MustCompile(`^[0-9]{1,3}(?:[.,][0-9]{3})+\.?$`)
	domainLikeRe  = regexp.MustCompile(`^[-A-Za-z0-9]+(?:\.[-A-Za-z0-9]+)+\.?$`)
	emailLikeRe   = regexp.MustCompile(`^\S+@\S+\.\S+\.?$`)
	dateRe        = regexp.MustCompile(`^[0-9]{1,4}[./-][0-9]{1,2}(?:[./-][0-9]{1,4})?\.?$`)
	timeRe        = regexp.MustCompile(`^[0-9]{1,2}:[0-9]{2}(?::[0-9]{2})?$`)
	markerRe      = regexp.MustCompile(`^::(?:article|emphasis|quote|section|title|footnote)`)
	somaliVowelRe = regexp.MustCompile(`^[A-Za-z]*[aeiouAEIOU]'[aeiou][a-z]*$`)
)

// fixedPeriodAbbrevs are benign regardless of language.
var fixedPeriodAbbrevs = map[string]bool{
	"a.m.": true, "p.m.": true, "A.M.": true, "P.M.": true,
	"i.e.": true, "e.g.": true, "vs.": true, "v.": true, "cf.": true,
}

// bareClitics are tokens that are already correctly split-off clitics.
var bareClitics = map[string]bool{
	"'d": true, "'ll": true, "'m": true, "n't": true, "'re": true,
	"'s": true, "'ve": true, "c'": true, "d'": true, "l'": true,
}

// unsplitChecks applies the unsplit-punctuation rules with their benign
// exemptions. Within each group the benign arm is checked first and
// wins over the problem arm.
func (tc *Classifier) unsplitChecks(token, location string, n charclass.Noter) {
	note := func(tag category.Tag) {
		n.Note(tag, token, location, store.ModeUnconditional, "")
	}

	if alphaHyphenRe.MatchString(token) {
		note(category.UnsplitPunctAlphaHyphen)
	}

	// Apostrophe group.
	lower := strings.ToLower(token)
	switch {
	case bareClitics[lower], tc.Policy.BenignWord(token), tc.Policy.BenignApoToken(token):
		if strings.ContainsAny(token, "'’") {
			note(category.BenUnsplitApo)
		}
	case apoNotRe.MatchString(token), lower == "cannot":
		note(category.UnsplitNot)
	case apoVRe.MatchString(token):
		note(category.UnsplitApoV)
	case apoSRe.MatchString(token):
		note(category.UnsplitApoS)
	}

	// Period group.
	if strings.Contains(token, ".") {
		switch {
		case benignPeriod(token, tc.Policy):
			note(category.BenUnsplitPeriod)
		case numPeriodRe.MatchString(token):
			note(category.NumUnsplitPeriod)
		case trailingPeriodRe.MatchString(token):
			note(category.UnsplitPeriod)
		}
	}

	// General punctuation group.
	switch {
	case dateRe.MatchString(token), timeRe.MatchString(token),
		markerRe.MatchString(token),
		tc.Policy.VowelApo() && somaliVowelRe.MatchString(token):
		note(category.BenUnsplitPunct)
	case internalHyphenRe.MatchString(lower), leadingHyphenRe.MatchString(lower),
		embeddedDashNumRe.MatchString(token),
		trailingPunctRe.MatchString(token) && !strings.HasSuffix(token, "."),
		digitCommaAlphaRe.MatchString(lower):
		note(category.UnsplitPunct)
	}
}

func benignPeriod(token string, pol *lang.Policy) bool {
	switch {
	case capAbbrevRe.MatchString(token):
		return true
	case fixedPeriodAbbrevs[token]:
		return true
	case numGroupRe.MatchString(token):
		return true
	case filenameRe.MatchString(strings.TrimSuffix(token, ".")):
		return true
	case domainLikeRe.MatchString(token):
		return true
	case emailLikeRe.MatchString(token):
		return true
	case pol.Abbrev(token):
		return true
	}
	return false
}
