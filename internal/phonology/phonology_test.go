package phonology

import (
	"testing"

	"gonhanh/internal/syllable"
	"gonhanh/internal/vbuffer"
)

func parse(s string, modern bool) (syllable.View, bool) {
	tail := make([]vbuffer.CharRecord, 0, len(s))
	for _, ch := range s {
		tail = append(tail, vbuffer.CharRecord{Base: ch})
	}
	return syllable.Parse(tail, modern)
}

func TestValidateOK(t *testing.T) {
	view, ok := parse("chao", true)
	if r := Validate(view, ok, false); r != OK {
		t.Errorf("Validate(chao) = %v, want OK", r)
	}
}

func TestValidateNoVowel(t *testing.T) {
	view, ok := parse("ch", true)
	if r := Validate(view, ok, false); r != NoVowel {
		t.Errorf("Validate(ch) = %v, want NoVowel", r)
	}
}

func TestValidateBadInitial(t *testing.T) {
	view, ok := parse("zoe", true)
	if r := Validate(view, ok, false); r != BadInitial {
		t.Errorf("Validate(zoe) = %v, want BadInitial", r)
	}
}

func TestValidateForeignInitialAllowed(t *testing.T) {
	view, ok := parse("zoe", true)
	if r := Validate(view, ok, true); r != OK {
		t.Errorf("Validate(zoe, allowForeign) = %v, want OK", r)
	}
}

func TestValidateBadSpellingCBeforeFrontVowel(t *testing.T) {
	view, ok := parse("ce", true)
	if r := Validate(view, ok, false); r != BadSpelling {
		t.Errorf("Validate(ce) = %v, want BadSpelling", r)
	}
}

func TestValidateKBeforeBackVowelIsBad(t *testing.T) {
	view, ok := parse("ka", true)
	if r := Validate(view, ok, false); r != BadSpelling {
		t.Errorf("Validate(ka) = %v, want BadSpelling", r)
	}
}

func TestValidateBadFinal(t *testing.T) {
	view, ok := parse("hoab", true)
	if r := Validate(view, ok, false); r != BadFinal {
		t.Errorf("Validate(hoab) = %v, want BadFinal", r)
	}
}

func TestValidateGoodFinal(t *testing.T) {
	view, ok := parse("hoan", true)
	if r := Validate(view, ok, false); r != OK {
		t.Errorf("Validate(hoan) = %v, want OK", r)
	}
}
