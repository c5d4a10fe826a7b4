// Package report renders the finished aggregate: the human-readable
// category report and the structured JSON dump.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"textcheck/internal/analyzer"
	"textcheck/internal/category"
	"textcheck/internal/store"
)

// Options control report rendering.
type Options struct {
	ShowAll     bool
	Summary     bool
	SentenceIDs bool
}

var (
	headerColor = color.New(color.Bold)
	noteColor   = color.New(color.Faint)
)

// WriteText renders the category report in registry order.
func WriteText(w io.Writer, a *analyzer.Analyzer, opts Options) error {
	code := a.Cfg.LangCode
	if code == "" {
		code = "none"
	}
	if _, err := fmt.Fprintf(w, "Analysed %d tokens in %d lines (language code: %s)\n",
		a.Tokens, a.Lines, code); err != nil {
		return err
	}

	locLabel := "line"
	if opts.SentenceIDs {
		locLabel = "sent"
	}

	for _, tag := range category.All() {
		rec := a.Store.Record(tag)
		count := uint64(0)
		if rec != nil {
			count = rec.Count
		}
		suppressed := a.Policy.Suppresses(tag)
		switch {
		case count == 0 && !opts.ShowAll:
			continue
		case count == 0:
			writeHeader(w, tag, 0)
		case suppressed && !opts.ShowAll:
			writeHeader(w, tag, count)
			fmt.Fprintf(w, "  %s\n", noteColor.Sprintf(
				"(expected for language %s; examples omitted)", a.Cfg.LangCode))
		case suppressed:
			writeHeader(w, tag, count)
			writeExamples(w, rec, a.Store.MaxLocations, locLabel)
			fmt.Fprintf(w, "  %s\n", noteColor.Sprintf(
				"(expected for language %s)", a.Cfg.LangCode))
		default:
			writeHeader(w, tag, count)
			writeExamples(w, rec, a.Store.MaxLocations, locLabel)
		}
	}

	if opts.Summary {
		writeSummary(w, a)
	}
	return nil
}

func writeHeader(w io.Writer, tag category.Tag, count uint64) {
	fmt.Fprintf(w, "\n%s (%s) (%s)\n",
		headerColor.Sprint(tag.Name()), tag.Description(), instances(count))
}

func instances(n uint64) string {
	if n == 1 {
		return "1 instance"
	}
	return fmt.Sprintf("%d instances", n)
}

// writeExamples prints the bounded examples, sorted by descending
// occurrence count, then case-insensitive alphabetically. A location
// list cut off by the cap gets a trailing ellipsis inside the
// parenthesis; a category that dropped further distinct examples gets
// a final ellipsis line.
func writeExamples(w io.Writer, rec *store.Record, maxLocations int, locLabel string) {
	tokens := append([]string(nil), rec.Order...)
	sort.SliceStable(tokens, func(i, j int) bool {
		oi, oj := rec.Examples[tokens[i]].Occurrences, rec.Examples[tokens[j]].Occurrences
		if oi != oj {
			return oi > oj
		}
		return strings.ToLower(tokens[i]) < strings.ToLower(tokens[j])
	})

	pad := 0
	for _, t := range tokens {
		if wd := runewidth.StringWidth(t); wd > pad && wd <= 28 {
			pad = wd
		}
	}
	for _, t := range tokens {
		ex := rec.Examples[t]
		locs := strings.Join(ex.Locations, ", ")
		more := ""
		if ex.Occurrences > uint64(maxLocations) {
			more = ", …"
		}
		fmt.Fprintf(w, "  %s (%s; %s %s%s)\n",
			runewidth.FillRight(t, pad), instances(ex.Occurrences), locLabel, locs, more)
	}
	if rec.ExamplesFull {
		fmt.Fprintln(w, "  …")
	}
}

// writeSummary prints the headline issues: scripts by volume, control
// characters, tatweel.
func writeSummary(w io.Writer, a *analyzer.Analyzer) {
	fmt.Fprintf(w, "\nSummary:\n")
	fmt.Fprintf(w, "  %d tokens, %d fast-tracked, %d characters\n",
		a.Tokens, a.FastTrack, a.Characters)
	prof := a.Profile()
	if prof == nil {
		return
	}
	for _, script := range prof.LetterScriptsByCount() {
		fmt.Fprintf(w, "  %s letters: %d\n", script, prof.LetterScriptCount(script))
	}
	if n := prof.ControlCharCount(); n > 0 {
		fmt.Fprintf(w, "  control characters: %d\n", n)
	}
	if n := prof.TatweelCount(); n > 0 {
		fmt.Fprintf(w, "  Arabic tatweel: %d\n", n)
	}
}
