package input

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  hello  world  ", "hello world"},
		{"\ta\t\tb\t", "a b"},
		{"one", "one"},
		// Non-ASCII whitespace is content, not a separator.
		{"a b", "a b"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplit(t *testing.T) {
	if got := Split(""); got != nil {
		t.Errorf("Split(empty) = %v, want nil", got)
	}
	if got := Split("a b c"); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Split = %v", got)
	}
}

func TestReader_LineNumbers(t *testing.T) {
	rd := NewReader(strings.NewReader("first line\n  second  line\n"), false)
	ln, ok, err := rd.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if ln.Number != 1 || ln.Location != "1" || ln.Text != "first line" {
		t.Errorf("line 1 = %+v", ln)
	}
	if ln.RuneCount != 10 {
		t.Errorf("rune count = %d, want 10", ln.RuneCount)
	}
	ln, _, _ = rd.Next()
	if ln.Number != 2 || ln.Location != "2" || ln.Text != "second line" {
		t.Errorf("line 2 = %+v", ln)
	}
	if _, ok, _ := rd.Next(); ok {
		t.Error("expected end of input")
	}
}

func TestReader_SentenceIDs(t *testing.T) {
	rd := NewReader(strings.NewReader("s-104 some text\nsolo\n"), true)
	ln, _, _ := rd.Next()
	if ln.Location != "s-104" || ln.Text != "some text" {
		t.Errorf("sid line = %+v", ln)
	}
	ln, _, _ = rd.Next()
	if ln.Location != "solo" || ln.Text != "" {
		t.Errorf("sid-only line = %+v", ln)
	}
}
