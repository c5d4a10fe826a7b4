// Package profile collects the per-codepoint data behind the
// structured dump: script membership of letters/numbers/other
// characters, per-block character inventories, non-canonical (NFC)
// token forms, and script conflicts within tokens.
package profile

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/runenames"
)

// Example caps keep the dump bounded regardless of corpus size.
const (
	maxCharExamples   = 5
	maxScriptExamples = 5
)

// CharInfo is the inventory entry for one distinct character.
type CharInfo struct {
	Char  rune
	Count uint64
	Ex    [][2]string // [token, location]
}

// ScriptInfo aggregates one script within one of the three script
// sections.
type ScriptInfo struct {
	Count uint64
	Ex    [][2]string
}

// NonCanonical records a token whose NFC form differs from its raw
// form.
type NonCanonical struct {
	Orig      string
	Norm      string
	OrigCount uint64
	NormCount uint64
	Changes   string
}

// ConflictInfo is one representative character of a script conflict.
type ConflictInfo struct {
	Char  rune
	Token string
	Loc   string
	Count uint64
}

// Collector accumulates profile data for one analyzer (or shard).
type Collector struct {
	letterScript map[string]*ScriptInfo
	numberScript map[string]*ScriptInfo
	otherScript  map[string]*ScriptInfo

	blocks    map[string]map[rune]*CharInfo
	seenOrder []string

	nonCanonical map[string]*NonCanonical
	normTargets  map[string]string // norm form -> orig token key

	conflicts map[string]map[rune]*ConflictInfo
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{
		letterScript: make(map[string]*ScriptInfo),
		numberScript: make(map[string]*ScriptInfo),
		otherScript:  make(map[string]*ScriptInfo),
		blocks:       make(map[string]map[rune]*CharInfo),
		nonCanonical: make(map[string]*NonCanonical),
		normTargets:  make(map[string]string),
		conflicts:    make(map[string]map[rune]*ConflictInfo),
	}
}

// Token feeds one token into the collector.
func (c *Collector) Token(token, loc string) {
	scriptsSeen := make(map[string]rune, 2)
	for _, r := range token {
		if r == utf8.RuneError {
			continue
		}
		script := scriptName(r)
		switch {
		case unicode.IsLetter(r):
			c.bumpScript(c.letterScript, script, token, loc)
			if script != "Common" && script != "Inherited" {
				if _, ok := scriptsSeen[script]; !ok {
					scriptsSeen[script] = r
				}
			}
		case unicode.IsNumber(r):
			c.bumpScript(c.numberScript, script, token, loc)
		default:
			c.bumpScript(c.otherScript, script, token, loc)
		}
		c.bumpBlock(r, token, loc)
	}
	c.noteConflicts(scriptsSeen, token, loc)
	c.noteNonCanonical(token)
}

func (c *Collector) bumpScript(m map[string]*ScriptInfo, script, token, loc string) {
	info := m[script]
	if info == nil {
		info = &ScriptInfo{}
		m[script] = info
	}
	info.Count++
	if len(info.Ex) < maxScriptExamples {
		info.Ex = append(info.Ex, [2]string{token, loc})
	}
}

func (c *Collector) bumpBlock(r rune, token, loc string) {
	block := blockName(r)
	chars := c.blocks[block]
	if chars == nil {
		chars = make(map[rune]*CharInfo)
		c.blocks[block] = chars
		c.seenOrder = append(c.seenOrder, block)
	}
	info := chars[r]
	if info == nil {
		info = &CharInfo{Char: r}
		chars[r] = info
	}
	info.Count++
	if len(info.Ex) < maxCharExamples {
		info.Ex = append(info.Ex, [2]string{token, loc})
	}
}

func (c *Collector) noteConflicts(scriptsSeen map[string]rune, token, loc string) {
	if len(scriptsSeen) < 2 {
		return
	}
	names := make([]string, 0, len(scriptsSeen))
	for s := range scriptsSeen {
		names = append(names, s)
	}
	sort.Strings(names)
	key := strings.Join(names, "+")
	chars := c.conflicts[key]
	if chars == nil {
		chars = make(map[rune]*ConflictInfo)
		c.conflicts[key] = chars
	}
	for _, r := range scriptsSeen {
		info := chars[r]
		if info == nil {
			info = &ConflictInfo{Char: r, Token: token, Loc: loc}
			chars[r] = info
		}
		info.Count++
	}
}

// noteNonCanonical tracks tokens whose NFC normalization changes them.
// Occurrences of the normalized form are counted from the point the
// non-canonical form was first seen.
func (c *Collector) noteNonCanonical(token string) {
	if orig, ok := c.normTargets[token]; ok {
		c.nonCanonical[orig].NormCount++
	}
	if norm.NFC.IsNormalString(token) {
		return
	}
	normalized := norm.NFC.String(token)
	entry := c.nonCanonical[token]
	if entry == nil {
		entry = &NonCanonical{
			Orig:    token,
			Norm:    normalized,
			Changes: describeChanges(token, normalized),
		}
		c.nonCanonical[token] = entry
		c.normTargets[normalized] = token
	}
	entry.OrigCount++
}

// describeChanges renders the first differing segment as "x -> y" in
// U+XXXX notation.
func describeChanges(orig, normalized string) string {
	or, nr := []rune(orig), []rune(normalized)
	lo := 0
	for lo < len(or) && lo < len(nr) && or[lo] == nr[lo] {
		lo++
	}
	ohi, nhi := len(or), len(nr)
	for ohi > lo && nhi > lo && or[ohi-1] == nr[nhi-1] {
		ohi--
		nhi--
	}
	var b strings.Builder
	for i, r := range or[lo:ohi] {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "U+%04X", r)
	}
	b.WriteString(" -> ")
	for i, r := range nr[lo:nhi] {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "U+%04X", r)
	}
	return b.String()
}

// Merge folds a shard collector into c.
func (c *Collector) Merge(other *Collector) {
	mergeScripts := func(dst, src map[string]*ScriptInfo) {
		for script, info := range src {
			d := dst[script]
			if d == nil {
				dst[script] = info
				continue
			}
			d.Count += info.Count
			for _, ex := range info.Ex {
				if len(d.Ex) >= maxScriptExamples {
					break
				}
				d.Ex = append(d.Ex, ex)
			}
		}
	}
	mergeScripts(c.letterScript, other.letterScript)
	mergeScripts(c.numberScript, other.numberScript)
	mergeScripts(c.otherScript, other.otherScript)

	for block, chars := range other.blocks {
		dchars := c.blocks[block]
		if dchars == nil {
			c.blocks[block] = chars
			c.seenOrder = append(c.seenOrder, block)
			continue
		}
		for r, info := range chars {
			d := dchars[r]
			if d == nil {
				dchars[r] = info
				continue
			}
			d.Count += info.Count
			for _, ex := range info.Ex {
				if len(d.Ex) >= maxCharExamples {
					break
				}
				d.Ex = append(d.Ex, ex)
			}
		}
	}

	for token, entry := range other.nonCanonical {
		d := c.nonCanonical[token]
		if d == nil {
			c.nonCanonical[token] = entry
			c.normTargets[entry.Norm] = token
			continue
		}
		d.OrigCount += entry.OrigCount
		d.NormCount += entry.NormCount
	}

	for key, chars := range other.conflicts {
		dchars := c.conflicts[key]
		if dchars == nil {
			c.conflicts[key] = chars
			continue
		}
		for r, info := range chars {
			d := dchars[r]
			if d == nil {
				dchars[r] = info
				continue
			}
			d.Count += info.Count
		}
	}
}

// charID renders a codepoint as U+XXXX.
func charID(r rune) string { return fmt.Sprintf("U+%04X", r) }

// charName returns the canonical Unicode name of r.
func charName(r rune) string { return runenames.Name(r) }

// unicodeForm labels the normalization state of s.
func unicodeForm(s string) string {
	switch {
	case norm.NFC.IsNormalString(s):
		return "NFC"
	case norm.NFD.IsNormalString(s):
		return "NFD"
	default:
		return "non-NFC"
	}
}
