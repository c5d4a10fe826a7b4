package profile

import "sort"

// Sections renders the collected data into the JSON-shaped maps of the
// structured dump. Keys are the domain terms (script names, block
// names, conflict pairs).
func (c *Collector) Sections() (letter, number, other, blocks, nonCanonical, conflicts map[string]any) {
	letter = scriptSection(c.letterScript)
	number = scriptSection(c.numberScript)
	other = scriptSection(c.otherScript)

	blocks = make(map[string]any, len(c.blocks))
	for block, chars := range c.blocks {
		section := make(map[string]any, len(chars))
		for r, info := range chars {
			section[string(info.Char)] = map[string]any{
				"char":  string(info.Char),
				"id":    charID(r),
				"name":  charName(r),
				"count": info.Count,
				"ex":    exList(info.Ex),
			}
		}
		blocks[block] = section
	}

	nonCanonical = make(map[string]any, len(c.nonCanonical))
	for orig, e := range c.nonCanonical {
		nonCanonical[orig] = map[string]any{
			"orig":       e.Orig,
			"norm":       e.Norm,
			"orig-count": e.OrigCount,
			"norm-count": e.NormCount,
			"orig-form":  unicodeForm(e.Orig),
			"norm-form":  unicodeForm(e.Norm),
			"changes":    e.Changes,
		}
	}

	conflicts = make(map[string]any, len(c.conflicts))
	for key, chars := range c.conflicts {
		runes := make([]rune, 0, len(chars))
		for r := range chars {
			runes = append(runes, r)
		}
		sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
		var list []any
		for _, r := range runes {
			info := chars[r]
			list = append(list, map[string]any{
				"char":  string(info.Char),
				"id":    charID(r),
				"name":  charName(r),
				"count": info.Count,
				"ex":    []any{[]any{info.Token, info.Loc}},
			})
		}
		conflicts[key] = list
	}
	return letter, number, other, blocks, nonCanonical, conflicts
}

func scriptSection(m map[string]*ScriptInfo) map[string]any {
	out := make(map[string]any, len(m))
	for script, info := range m {
		out[script] = map[string]any{
			"count": info.Count,
			"ex":    exList(info.Ex),
		}
	}
	return out
}

func exList(ex [][2]string) []any {
	out := make([]any, 0, len(ex))
	for _, e := range ex {
		out = append(out, []any{e[0], e[1]})
	}
	return out
}

// LetterScriptsByCount returns letter scripts sorted by descending
// count, for the report's summary section.
func (c *Collector) LetterScriptsByCount() []string {
	names := make([]string, 0, len(c.letterScript))
	for s := range c.letterScript {
		names = append(names, s)
	}
	sort.Slice(names, func(i, j int) bool {
		ci, cj := c.letterScript[names[i]].Count, c.letterScript[names[j]].Count
		if ci != cj {
			return ci > cj
		}
		return names[i] < names[j]
	})
	return names
}

// LetterScriptCount returns the letter count for one script.
func (c *Collector) LetterScriptCount(script string) uint64 {
	if info := c.letterScript[script]; info != nil {
		return info.Count
	}
	return 0
}

// ControlCharCount sums the C0/C1 control block inventories.
func (c *Collector) ControlCharCount() uint64 {
	var n uint64
	for _, block := range []string{"C0_CONTROL", "C1_CONTROL"} {
		for _, info := range c.blocks[block] {
			n += info.Count
		}
	}
	return n
}

// TatweelCount returns how many Arabic tatweel characters were seen.
func (c *Collector) TatweelCount() uint64 {
	if chars := c.blocks["ARABIC"]; chars != nil {
		if info := chars[0x0640]; info != nil {
			return info.Count
		}
	}
	return 0
}
