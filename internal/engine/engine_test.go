package engine

import (
	"testing"

	"gonhanh/internal/flags"
	"gonhanh/internal/tables"
)

// typeKey is a small test helper: types ch as an unshifted lowercase
// keystroke (or uppercase, inferring caps from the rune) and returns the
// emitted Edit.
func typeKey(e *Engine, ch rune) Edit {
	key, shift, ok := tables.FromASCII(ch)
	if !ok {
		panic("typeKey: no keycode for " + string(ch))
	}
	caps := ch >= 'A' && ch <= 'Z'
	return e.ProcessKey(key, caps, false, shift)
}

func typeString(e *Engine, s string) Edit {
	var last Edit
	for _, ch := range s {
		last = typeKey(e, ch)
	}
	return last
}

func TestTelexBasicRepositioning(t *testing.T) {
	e := New()
	typeString(e, "hoai")
	edit := typeKey(e, 'f')
	if got := string(e.GetBuffer()); got != "hoài" {
		t.Fatalf("buffer = %q, want hoài", got)
	}
	if edit.Backspace != 2 || string(edit.Chars) != "ài" {
		t.Errorf("edit = %+v, want backspace=2 chars=ài", edit)
	}
}

func TestTelexCompoundHorn(t *testing.T) {
	e := New()
	typeString(e, "duo")
	typeKey(e, 'w')
	typeKey(e, 'c')
	if got := string(e.GetBuffer()); got != "dươc" {
		t.Fatalf("buffer = %q, want dươc", got)
	}
}

func TestTelexRevert(t *testing.T) {
	e := New()
	typeKey(e, 'a')
	typeKey(e, 's')
	edit := typeKey(e, 's')
	if got := string(e.GetBuffer()); got != "as" {
		t.Fatalf("buffer = %q, want as", got)
	}
	if edit.Backspace != 1 || string(edit.Chars) != "as" {
		t.Errorf("edit = %+v, want backspace=1 chars=as", edit)
	}
}

func TestTelexDStroke(t *testing.T) {
	e := New()
	typeString(e, "dda")
	if got := string(e.GetBuffer()); got != "đa" {
		t.Fatalf("buffer = %q, want đa", got)
	}
}

func TestVNIDStroke(t *testing.T) {
	e := New()
	e.SetMethod(flags.VNI)
	typeKey(e, 'd')
	typeKey(e, '9')
	typeKey(e, 'a')
	if got := string(e.GetBuffer()); got != "đa" {
		t.Fatalf("buffer = %q, want đa", got)
	}
}

func TestVNINumericTonePlacement(t *testing.T) {
	e := New()
	e.SetMethod(flags.VNI)
	typeString(e, "tieng")
	typeKey(e, '6')
	typeKey(e, '2')
	if got := string(e.GetBuffer()); got != "tiềng" {
		t.Fatalf("buffer = %q, want tiềng", got)
	}
}

func TestShortcutExpansionNotConsumed(t *testing.T) {
	e := New()
	e.AddShortcut("vn", "Việt Nam")
	typeKey(e, 'v')
	typeKey(e, 'n')
	edit := typeKey(e, ' ')
	if edit.Consumed {
		t.Error("shortcut expansion edit should not consume the break key")
	}
	if edit.Backspace != 2 || string(edit.Chars) != "Việt Nam" {
		t.Errorf("edit = %+v, want backspace=2 chars=Việt Nam", edit)
	}
}

func TestAutoCapitalizeAfterSentenceEnd(t *testing.T) {
	e := New()
	e.SetAutoCapitalize(true)
	typeKey(e, '.')
	typeKey(e, ' ')
	edit := typeKey(e, 'a')
	if string(edit.Chars) != "A" {
		t.Errorf("edit.Chars = %q, want A", string(edit.Chars))
	}
}

func TestOverflowDoesNotPanic(t *testing.T) {
	e := New()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panicked: %v", r)
		}
	}()
	for i := 0; i < 300; i++ {
		typeKey(e, 'a')
	}
	edit := typeKey(e, 's')
	if len(edit.Chars) == 0 {
		t.Error("expected a non-empty edit for the final tone keystroke")
	}
	if e.buf.Len() > vbufferCapacityForTest() {
		t.Errorf("buffer length %d exceeds capacity", e.buf.Len())
	}
}

func vbufferCapacityForTest() int { return 256 }

func TestModeInvarianceOnPlainLetters(t *testing.T) {
	e := New()
	edit := typeKey(e, 'b')
	if edit.Backspace != 0 || string(edit.Chars) != "b" {
		t.Errorf("edit = %+v, want backspace=0 chars=b", edit)
	}
}

func TestClearIdempotent(t *testing.T) {
	e := New()
	typeString(e, "hoai")
	e.Clear()
	e.Clear()
	if e.buf.Len() != 0 {
		t.Errorf("buf.Len() = %d, want 0", e.buf.Len())
	}
}

func TestRestoreEmitsRawTail(t *testing.T) {
	e := New()
	typeString(e, "chao")
	typeKey(e, 'f')
	composedLen := len(e.GetBuffer())
	edit := e.ProcessKey(tables.Esc, false, false, false)
	if edit.Action != ActionRestore {
		t.Fatalf("Action = %v, want ActionRestore", edit.Action)
	}
	if edit.Backspace != composedLen {
		t.Errorf("Backspace = %d, want %d", edit.Backspace, composedLen)
	}
	if string(edit.Chars) != "chaof" {
		t.Errorf("Chars = %q, want chaof", string(edit.Chars))
	}
}

func TestRestoreWordSeedsBuffer(t *testing.T) {
	e := New()
	e.RestoreWord("đã")
	buf := e.GetBuffer()
	if string(buf) != "đã" {
		t.Fatalf("GetBuffer() = %q, want đã", string(buf))
	}
}

func TestRestoreWordPreservesMarkOnTonedVowel(t *testing.T) {
	e := New()
	e.RestoreWord("việt")
	buf := e.GetBuffer()
	if string(buf) != "việt" {
		t.Fatalf("GetBuffer() = %q, want việt", string(buf))
	}
}

func TestDisabledEngineBypassesAllKeys(t *testing.T) {
	e := New()
	e.SetEnabled(false)
	edit := typeKey(e, 'a')
	if edit.Action != ActionNone {
		t.Errorf("Action = %v, want ActionNone while disabled", edit.Action)
	}
	if e.buf.Len() != 0 {
		t.Errorf("buf.Len() = %d, want 0 while disabled", e.buf.Len())
	}
}

func TestAllowForeignConsonantsAffectsEnglishAutoRestore(t *testing.T) {
	e := New()
	e.SetEnglishAutoRestore(true)
	e.SetAllowForeignConsonants(true)
	typeString(e, "zoe")
	edit := typeKey(e, ' ')
	if edit.Action == ActionRestore {
		t.Error("zoe should validate once foreign consonants are allowed, got Restore")
	}

	e2 := New()
	e2.SetEnglishAutoRestore(true)
	typeString(e2, "zoe")
	edit2 := typeKey(e2, ' ')
	if edit2.Action != ActionRestore {
		t.Error("zoe should fail validation and trigger Restore without AllowForeignConsonants")
	}
}
