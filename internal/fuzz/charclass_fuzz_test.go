package fuzztests

import (
	"testing"

	"textcheck/internal/category"
	"textcheck/internal/charclass"
	"textcheck/internal/lang"
	"textcheck/internal/store"
	"textcheck/internal/tokclass"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzCharClassify(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		token := string(input)

		st := store.New(20, 10)
		c := charclass.New(lang.For(""))
		c.Classify(token, "1", st)

		// Per-token dedup: no non-_CHAR category may exceed one note
		// for a single classifier call.
		for _, tag := range category.All() {
			if tag.IsCharTag() {
				continue
			}
			if n := st.Count(tag); n > 1 {
				t.Fatalf("%s counted %d times for one token %q", tag.Name(), n, token)
			}
		}
	})
}

func FuzzTokenClassify(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(_ *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = input[:maxFuzzInput]
		}
		st := store.New(20, 10)
		tc := tokclass.New(lang.For("eng"), 20)
		tc.Classify(string(input), "1", st)
	})
}
