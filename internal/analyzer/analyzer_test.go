package analyzer

import (
	"context"
	"strings"
	"testing"

	"textcheck/internal/category"
)

func analyze(t *testing.T, text string, cfg Config) *Analyzer {
	t.Helper()
	cfg.Validate(func(string, ...any) {})
	a := New(cfg)
	if err := a.Run(context.Background(), strings.NewReader(text)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return a
}

func TestEndToEnd_MixedScriptWord(t *testing.T) {
	// Latin H, Cyrillic е, two Latin l, Greek ο, then "!".
	a := analyze(t, "Hеllο!\n", Config{})
	for _, tag := range []category.Tag{
		category.ASCIILetter, category.Cyrillic, category.Greek, category.MixedCyrillicLatin,
	} {
		if got := a.Store.Count(tag); got != 1 {
			t.Errorf("%s count = %d, want 1", tag.Name(), got)
		}
	}
	if a.Tokens != 1 || a.Lines != 1 {
		t.Errorf("tokens=%d lines=%d, want 1/1", a.Tokens, a.Lines)
	}
}

func TestEndToEnd_Cannot(t *testing.T) {
	a := analyze(t, "cannot\n", Config{})
	if got := a.Store.Count(category.ASCIILetter); got != 1 {
		t.Errorf("ASCII_LETTER count = %d, want 1", got)
	}
	if got := a.Store.Count(category.UnsplitNot); got != 1 {
		t.Errorf("UNSPLIT_NOT count = %d, want 1", got)
	}
	if a.FastTrack != 1 {
		t.Errorf("fast-track count = %d, want 1", a.FastTrack)
	}
}

func TestEndToEnd_Email(t *testing.T) {
	a := analyze(t, "president@whitehouse.org\n", Config{})
	if got := a.Store.Count(category.Email); got != 1 {
		t.Errorf("EMAIL count = %d, want 1", got)
	}
	if got := a.Store.Count(category.UnsplitPeriod); got != 0 {
		t.Errorf("UNSPLIT_PERIOD count = %d, want 0", got)
	}
	if got := a.Store.Count(category.SuspiciousURL); got != 0 {
		t.Errorf("SUSPICIOUS_URL count = %d, want 0", got)
	}
}

func TestEndToEnd_BrokenURL(t *testing.T) {
	a := analyze(t, "www . example . com / path\n", Config{})
	if got := a.Store.Count(category.BrokenURL); got != 1 {
		t.Errorf("BROKEN_URL count = %d, want 1", got)
	}
	if got := a.Store.Count(category.UnsplitPeriod); got != 0 {
		t.Errorf("UNSPLIT_PERIOD after blanking = %d, want 0", got)
	}
	if got := a.Store.Count(category.NumUnsplitPeriod); got != 0 {
		t.Errorf("NUM_UNSPLIT_PERIOD after blanking = %d, want 0", got)
	}
}

func TestEndToEnd_Overlong(t *testing.T) {
	a := analyze(t, "\xC0\x80\n", Config{})
	if got := a.Store.Count(category.UTF8NonShortest); got != 1 {
		t.Errorf("UTF8_NON_SHORTEST count = %d, want 1", got)
	}
	if got := a.Store.Count(category.NonUTF8); got != 0 {
		t.Errorf("NON_UTF8 count = %d, want 0", got)
	}
}

func TestEndToEnd_SuperscriptWithLanguage(t *testing.T) {
	a := analyze(t, "25km²\n", Config{LangCode: "eng"})
	if got := a.Store.Count(category.ASCIILetter); got != 1 {
		t.Errorf("ASCII_LETTER count = %d, want 1", got)
	}
	if got := a.Store.Count(category.NonASCIIPunct); got != 0 {
		t.Errorf("NON_ASCII_PUNCT count = %d, want 0", got)
	}
	if got := a.Store.Count(category.MiscSymbolChar); got != 1 {
		t.Errorf("MISC_SYMBOL_CHAR count = %d, want 1", got)
	}
}

func TestLanguageSuppressionKeepsCounts(t *testing.T) {
	a := analyze(t, "سلام دنيا\n", Config{LangCode: "ara"})
	if got := a.Store.Count(category.ArabicLetter); got != 2 {
		t.Errorf("ARABIC_LETTER count = %d, want 2 (suppression is display-only)", got)
	}
	if !a.Policy.Suppresses(category.ArabicLetter) {
		t.Error("policy does not suppress ARABIC_LETTER for ara")
	}
}

func TestConfigValidate_Clamps(t *testing.T) {
	var warned []string
	warn := func(format string, args ...any) { warned = append(warned, format) }

	cfg := Config{MaxExamples: 5000, MaxLocations: 500, LangCode: "qq"}
	cfg.Validate(warn)
	if cfg.MaxExamples != DefaultMaxExamples {
		t.Errorf("MaxExamples = %d, want default", cfg.MaxExamples)
	}
	if cfg.MaxLocations != DefaultMaxLocations {
		t.Errorf("MaxLocations = %d, want default", cfg.MaxLocations)
	}
	if cfg.LangCode != "" {
		t.Errorf("LangCode = %q, want cleared", cfg.LangCode)
	}
	if len(warned) != 3 {
		t.Errorf("warnings = %d, want 3", len(warned))
	}

	cfg = Config{LangCode: "en"}
	cfg.Validate(warn)
	if cfg.LangCode != "eng" {
		t.Errorf("LangCode = %q, want eng", cfg.LangCode)
	}
}

func TestLocationBound(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("λόγος\n")
	}
	cfg := Config{MaxLocations: 5}
	a := analyze(t, b.String(), cfg)
	rec := a.Store.Record(category.Greek)
	if rec.Count != 40 {
		t.Errorf("count = %d, want 40", rec.Count)
	}
	ex := rec.Examples["λόγος"]
	if len(ex.Locations) != 5 {
		t.Errorf("locations = %d, want 5", len(ex.Locations))
	}
	if ex.Occurrences != 40 {
		t.Errorf("occurrences = %d, want 40", ex.Occurrences)
	}
}

func TestSentenceIDLocations(t *testing.T) {
	cfg := Config{SentenceIDs: true}
	cfg.Validate(func(string, ...any) {})
	a := New(cfg)
	if err := a.Run(context.Background(), strings.NewReader("sent-9 λόγος\n")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	ex := a.Store.Record(category.Greek).Examples["λόγος"]
	if len(ex.Locations) != 1 || ex.Locations[0] != "sent-9" {
		t.Errorf("locations = %v, want [sent-9]", ex.Locations)
	}
}

func TestCancellationKeepsPartialData(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	a := New(Config{MaxExamples: 20, MaxLocations: 10, LongTokenMin: 20})
	if err := a.Run(ctx, strings.NewReader("hello\nworld\n")); err != nil {
		t.Fatalf("Run after cancel: %v", err)
	}
	if a.Lines != 0 {
		t.Errorf("lines = %d, want 0 (cancelled before first line)", a.Lines)
	}
}

func TestParallelMatchesSequentialCounts(t *testing.T) {
	text := strings.Repeat("Hеllο! cannot www.broken 1234. dog's\n", 13)

	cfg := Config{}
	cfg.Validate(func(string, ...any) {})

	seq := New(cfg)
	if err := seq.Run(context.Background(), strings.NewReader(text)); err != nil {
		t.Fatalf("sequential: %v", err)
	}
	par := New(cfg)
	if err := par.RunParallel(context.Background(), strings.NewReader(text), 4); err != nil {
		t.Fatalf("parallel: %v", err)
	}

	if seq.Tokens != par.Tokens || seq.Lines != par.Lines || seq.FastTrack != par.FastTrack {
		t.Errorf("counters differ: seq %d/%d/%d par %d/%d/%d",
			seq.Lines, seq.Tokens, seq.FastTrack, par.Lines, par.Tokens, par.FastTrack)
	}
	for _, tag := range category.All() {
		if seq.Store.Count(tag) != par.Store.Count(tag) {
			t.Errorf("%s: seq %d != par %d", tag.Name(), seq.Store.Count(tag), par.Store.Count(tag))
		}
	}
}
