package tables

import "testing"

func TestComposeTonedCircumflex(t *testing.T) {
	if got := Compose('a', MarkCircumflex, ToneAcute, false); got != 'ấ' {
		t.Errorf("Compose(a, circumflex, acute) = %q, want ấ", got)
	}
}

func TestComposeHornUpper(t *testing.T) {
	if got := Compose('u', MarkHorn, ToneNone, true); got != 'Ư' {
		t.Errorf("Compose(u, horn, none, upper) = %q, want Ư", got)
	}
}

func TestComposePlainVowel(t *testing.T) {
	if got := Compose('a', MarkNone, ToneNone, false); got != 'a' {
		t.Errorf("Compose(a, none, none) = %q, want a", got)
	}
}

func TestDStroke(t *testing.T) {
	if DStroke(false) != 'đ' || DStroke(true) != 'Đ' {
		t.Errorf("DStroke mismatch")
	}
}

func TestBaseVowelAndToneOf(t *testing.T) {
	base, ok := BaseVowel('ồ')
	if !ok || base != 'o' {
		t.Fatalf("BaseVowel(ồ) = %q, %v, want o, true", base, ok)
	}
	if tone := ToneOf('ồ'); tone != ToneGrave {
		t.Errorf("ToneOf(ồ) = %v, want ToneGrave", tone)
	}
	if mark := MarkOf('ô'); mark != MarkCircumflex {
		t.Errorf("MarkOf(ô) = %v, want MarkCircumflex", mark)
	}
}

func TestMarkedBaseOfTonedVowel(t *testing.T) {
	marked, ok := MarkedBaseOf('ệ')
	if !ok || marked != 'ê' {
		t.Fatalf("MarkedBaseOf(ệ) = %q, %v, want ê, true", marked, ok)
	}
	if mark := MarkOf(marked); mark != MarkCircumflex {
		t.Errorf("MarkOf(MarkedBaseOf(ệ)) = %v, want MarkCircumflex", mark)
	}
}

func TestIsVowelChar(t *testing.T) {
	if !IsVowelChar('ữ') {
		t.Errorf("IsVowelChar(ữ) = false, want true")
	}
	if IsVowelChar('d') {
		t.Errorf("IsVowelChar(d) = true, want false")
	}
}
