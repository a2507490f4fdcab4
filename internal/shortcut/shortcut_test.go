package shortcut

import "testing"

func TestAddAndMatch(t *testing.T) {
	tbl := New()
	tbl.Add("vn", "Việt Nam")
	trigger, replacement, ok := tbl.Match("xin vn")
	if !ok || trigger != "vn" || replacement != "Việt Nam" {
		t.Fatalf("Match(xin vn) = %q, %q, %v", trigger, replacement, ok)
	}
}

func TestMatchLongestSuffixWins(t *testing.T) {
	tbl := New()
	tbl.Add("n", "short")
	tbl.Add("vn", "long")
	trigger, _, ok := tbl.Match("vn")
	if !ok || trigger != "vn" {
		t.Fatalf("Match(vn) trigger = %q, want vn", trigger)
	}
}

func TestMatchAfterRemoveAndReAdd(t *testing.T) {
	tbl := New()
	tbl.Add("ab", "first")
	tbl.Remove("ab")
	tbl.Add("ab", "second")
	_, replacement, ok := tbl.Match("ab")
	if !ok || replacement != "second" {
		t.Fatalf("Match(ab) replacement = %q, want second", replacement)
	}
}

func TestAddRejectsOverlong(t *testing.T) {
	long := make([]byte, MaxTrigger+1)
	for i := range long {
		long[i] = 'a'
	}
	tbl := New()
	if tbl.Add(string(long), "x") {
		t.Error("Add() with overlong trigger should fail")
	}
}

func TestNoMatch(t *testing.T) {
	tbl := New()
	tbl.Add("vn", "Việt Nam")
	if _, _, ok := tbl.Match("xyz"); ok {
		t.Error("Match(xyz) ok = true, want false")
	}
}

func TestClearAndLen(t *testing.T) {
	tbl := New()
	tbl.Add("a", "1")
	tbl.Add("b", "2")
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tbl.Len())
	}
	tbl.Clear()
	if tbl.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", tbl.Len())
	}
}
