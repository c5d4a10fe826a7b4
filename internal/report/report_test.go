package report

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"textcheck/internal/analyzer"
	"textcheck/internal/category"
	"textcheck/internal/store"
)

func init() {
	// Deterministic output under test.
	color.NoColor = true
}

func analyze(t *testing.T, text string, cfg analyzer.Config) *analyzer.Analyzer {
	t.Helper()
	cfg.Validate(func(string, ...any) {})
	a := analyzer.New(cfg)
	if err := a.Run(context.Background(), strings.NewReader(text)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return a
}

func render(t *testing.T, a *analyzer.Analyzer, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteText(&buf, a, opts); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	return buf.String()
}

func TestSummaryLine(t *testing.T) {
	a := analyze(t, "hello world\n", analyzer.Config{LangCode: "eng"})
	out := render(t, a, Options{})
	if !strings.HasPrefix(out, "Analysed 2 tokens in 1 lines (language code: eng)\n") {
		t.Errorf("summary line missing: %q", strings.SplitN(out, "\n", 2)[0])
	}

	a = analyze(t, "hello\n", analyzer.Config{})
	out = render(t, a, Options{})
	if !strings.Contains(out, "(language code: none)") {
		t.Errorf("no-language summary: %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestRegistryOrder(t *testing.T) {
	// NON_UTF8 is declared before GREEK, GREEK before UNSPLIT_APO_S;
	// the report must follow declaration order regardless of counts.
	a := analyze(t, "dog's λόγος \xC0\x80x\n", analyzer.Config{})
	out := render(t, a, Options{})
	iNon := strings.Index(out, "UTF8_NON_SHORTEST")
	iGreek := strings.Index(out, "\nGREEK")
	iApo := strings.Index(out, "UNSPLIT_APO_S")
	if iNon < 0 || iGreek < 0 || iApo < 0 {
		t.Fatalf("missing sections: %d %d %d\n%s", iNon, iGreek, iApo, out)
	}
	if !(iNon < iGreek && iGreek < iApo) {
		t.Errorf("section order violated: %d %d %d", iNon, iGreek, iApo)
	}
}

func TestDisplayMatrix(t *testing.T) {
	text := "سلام dog's\n"

	t.Run("zero count omitted by default", func(t *testing.T) {
		a := analyze(t, text, analyzer.Config{LangCode: "ara"})
		out := render(t, a, Options{})
		if strings.Contains(out, "CYRILLIC") {
			t.Error("zero-count category printed")
		}
	})
	t.Run("zero count header with show-all", func(t *testing.T) {
		a := analyze(t, text, analyzer.Config{LangCode: "ara", ShowAll: true})
		out := render(t, a, Options{ShowAll: true})
		if !strings.Contains(out, "CYRILLIC") || !strings.Contains(out, "(0 instances)") {
			t.Error("zero-count header missing with show-all")
		}
	})
	t.Run("suppressed category hides examples", func(t *testing.T) {
		a := analyze(t, text, analyzer.Config{LangCode: "ara"})
		out := render(t, a, Options{})
		if !strings.Contains(out, "ARABIC_LETTER") {
			t.Fatal("suppressed category header missing")
		}
		if strings.Contains(out, "سلام") {
			t.Error("suppressed category printed examples")
		}
		if !strings.Contains(out, "expected for language ara") {
			t.Error("suppression note missing")
		}
	})
	t.Run("show-all prints suppressed examples plus note", func(t *testing.T) {
		a := analyze(t, text, analyzer.Config{LangCode: "ara", ShowAll: true})
		out := render(t, a, Options{ShowAll: true})
		if !strings.Contains(out, "سلام") {
			t.Error("examples missing with show-all")
		}
		if !strings.Contains(out, "expected for language ara") {
			t.Error("note missing with show-all")
		}
	})
}

func TestExampleSorting(t *testing.T) {
	// banana occurs twice; Apple and cherry once each. Ties sort
	// case-insensitively, so вишня (cherry) precedes Яблоко (Apple).
	text := "банан банан Яблоко вишня\n"
	a := analyze(t, text, analyzer.Config{})
	out := render(t, a, Options{})
	sec := out[strings.Index(out, "\nCYRILLIC"):]
	iB := strings.Index(sec, "банан")
	iA := strings.Index(sec, "Яблоко")
	iC := strings.Index(sec, "вишня")
	if !(iB >= 0 && iA >= 0 && iC >= 0) {
		t.Fatalf("examples missing in %q", sec)
	}
	if !(iB < iC && iB < iA) {
		t.Errorf("most frequent example not first: %d %d %d", iB, iA, iC)
	}
}

func TestLocationEllipsis(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 7; i++ {
		b.WriteString("λόγος\n")
	}
	a := analyze(t, b.String(), analyzer.Config{MaxLocations: 3})
	out := render(t, a, Options{})
	if !strings.Contains(out, ", …)") {
		t.Errorf("location ellipsis missing:\n%s", out)
	}
}

func TestExamplesFullEllipsis(t *testing.T) {
	var b strings.Builder
	for _, w := range []string{"альфа", "бета", "гамма", "дельта"} {
		b.WriteString(w + "\n")
	}
	a := analyze(t, b.String(), analyzer.Config{MaxExamples: 2})
	out := render(t, a, Options{})
	if !strings.Contains(out, "\n  …\n") {
		t.Errorf("examples-full ellipsis missing:\n%s", out)
	}
}

func TestWriteJSON_Shape(t *testing.T) {
	a := analyze(t, "Hеllο! cannot\n", analyzer.Config{WithProfile: true})
	var buf bytes.Buffer
	if err := WriteJSON(&buf, a); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var dump map[string]any
	if err := json.Unmarshal(buf.Bytes(), &dump); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{
		"n_lines", "n_characters", "letter-script", "number-script",
		"other-script", "non-canonical", "char-conflict", "notable-token",
		"pattern", "block",
	} {
		if _, ok := dump[key]; !ok {
			t.Errorf("missing top-level key %q", key)
		}
	}
	letter := dump["letter-script"].(map[string]any)
	if _, ok := letter["Latin"]; !ok {
		t.Errorf("letter-script missing Latin: %v", letter)
	}
	notable := dump["notable-token"].(map[string]any)
	if _, ok := notable[category.MixedCyrillicLatin.Name()]; !ok {
		t.Errorf("notable-token missing %s: %v", category.MixedCyrillicLatin.Name(), notable)
	}
}

func TestSortStability(t *testing.T) {
	// Equal-occurrence examples in case-insensitive alphabetical order.
	rec := &store.Record{
		Order: []string{"zeta", "Alpha", "beta"},
		Examples: map[string]*store.Example{
			"zeta":  {Occurrences: 1, Locations: []string{"1"}},
			"Alpha": {Occurrences: 1, Locations: []string{"2"}},
			"beta":  {Occurrences: 1, Locations: []string{"3"}},
		},
	}
	var buf bytes.Buffer
	writeExamples(&buf, rec, 10, "line")
	out := buf.String()
	iA := strings.Index(out, "Alpha")
	iB := strings.Index(out, "beta")
	iZ := strings.Index(out, "zeta")
	if !(iA < iB && iB < iZ) {
		t.Errorf("sort order: %q", out)
	}
}
