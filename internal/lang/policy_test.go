package lang

import (
	"testing"

	"textcheck/internal/category"
)

func TestNormalize(t *testing.T) {
	if got := Normalize("en"); got != "eng" {
		t.Errorf("Normalize(en) = %q, want eng", got)
	}
	if got := Normalize("ara"); got != "ara" {
		t.Errorf("Normalize(ara) = %q, want ara", got)
	}
}

func TestValid(t *testing.T) {
	for _, code := range ValidCodes {
		if !Valid(code) {
			t.Errorf("Valid(%q) = false", code)
		}
	}
	if Valid("xx") {
		t.Error("Valid(xx) = true")
	}
}

func TestSuppression(t *testing.T) {
	tests := []struct {
		code string
		tag  category.Tag
	}{
		{"ara", category.ArabicLetter},
		{"eng", category.ASCIILetter},
		{"en", category.ASCIILetter},
		{"zh", category.CJK},
		{"ru", category.Cyrillic},
		{"gr", category.Greek},
	}
	for _, tt := range tests {
		p := For(tt.code)
		if !p.Suppresses(tt.tag) {
			t.Errorf("For(%q).Suppresses(%s) = false", tt.code, tt.tag.Name())
		}
		if p.Suppresses(category.NonUTF8) {
			t.Errorf("For(%q) suppresses NON_UTF8", tt.code)
		}
	}
}

func TestUnknownCodeYieldsEmptyPolicy(t *testing.T) {
	p := For("xx")
	if p.Suppresses(category.ASCIILetter) || p.AllowedChar('ä') || p.BenignWord("o'clock") {
		t.Error("unknown code must yield the empty policy")
	}
}

func TestAllowedChars(t *testing.T) {
	de := For("de")
	for _, r := range "äöüÄÖÜß" {
		if !de.AllowedChar(r) {
			t.Errorf("de does not allow %c", r)
		}
	}
	if de.AllowedChar('é') {
		t.Error("de allows é")
	}
	fr := For("fre")
	if !fr.AllowedChar('œ') {
		t.Error("fre does not allow œ")
	}
}

func TestBenignApoToken(t *testing.T) {
	kin := For("kin")
	if !kin.BenignApoToken("n'ubwo") {
		t.Error("kin prefix n' not recognized")
	}
	if kin.BenignApoToken("n'") {
		t.Error("bare prefix with no stem accepted")
	}
	mlg := For("mlg")
	if !mlg.BenignApoToken("tranon'ny") {
		t.Error("mlg suffix 'ny not recognized")
	}
}

func TestOverride(t *testing.T) {
	p := For("eng")
	if err := p.Override("ñ", []string{"CJK"}, []string{"y'all"}); err != nil {
		t.Fatalf("Override: %v", err)
	}
	if !p.AllowedChar('ñ') {
		t.Error("override allowed char missing")
	}
	if !p.Suppresses(category.CJK) {
		t.Error("override suppression missing")
	}
	if !p.BenignWord("Y'ALL") {
		t.Error("override benign word missing (case-insensitive)")
	}
	if err := p.Override("", []string{"NOT_A_TAG"}, nil); err == nil {
		t.Error("unknown category accepted in override")
	}
}
