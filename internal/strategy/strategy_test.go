package strategy

import (
	"testing"

	"gonhanh/internal/flags"
	"gonhanh/internal/tables"
	"gonhanh/internal/vbuffer"
)

func makeTail(s string) []vbuffer.CharRecord {
	out := make([]vbuffer.CharRecord, 0, len(s))
	for _, ch := range s {
		out = append(out, vbuffer.CharRecord{Base: ch})
	}
	return out
}

func TestTelexPlainLetter(t *testing.T) {
	d := For(flags.Telex)
	intent := d.Decode(tables.B, false, false, false, nil, flags.Default())
	if intent.Kind != ShortcutCandidate || intent.Base != 'b' {
		t.Fatalf("Decode(B) = %+v", intent)
	}
}

func TestTelexToneKey(t *testing.T) {
	d := For(flags.Telex)
	tail := makeTail("chao")
	intent := d.Decode(tables.F, false, false, false, tail, flags.Default())
	if intent.Kind != Tone || intent.ToneKind != tables.ToneGrave {
		t.Fatalf("Decode(F) = %+v", intent)
	}
}

func TestTelexDoubleLetterMark(t *testing.T) {
	d := For(flags.Telex)
	tail := makeTail("a")
	intent := d.Decode(tables.A, false, false, false, tail, flags.Default())
	if intent.Kind != Mark || intent.MarkKind != tables.MarkCircumflex || intent.TargetBase != 'a' {
		t.Fatalf("Decode(A) after 'a' = %+v", intent)
	}
}

func TestTelexDoubleLetterRevert(t *testing.T) {
	d := For(flags.Telex)
	tail := makeTail("a")
	tail[0].VowelMark = tables.MarkCircumflex
	tail[0].LastKey = tables.A
	intent := d.Decode(tables.A, false, false, false, tail, flags.Default())
	if intent.Kind != Mark || !intent.Revert {
		t.Fatalf("Decode(A) third time = %+v, want Revert", intent)
	}
}

func TestTelexWBreveAfterA(t *testing.T) {
	d := For(flags.Telex)
	tail := makeTail("a")
	intent := d.Decode(tables.W, false, false, false, tail, flags.Default())
	if intent.Kind != Mark || intent.MarkKind != tables.MarkBreve || intent.TargetBase != 'a' {
		t.Fatalf("Decode(W) after 'a' = %+v", intent)
	}
}

func TestTelexWLiteralUDiacriticNoContext(t *testing.T) {
	d := For(flags.Telex)
	intent := d.Decode(tables.W, false, false, false, nil, flags.Default())
	if intent.Kind != Letter || intent.Base != 'u' || intent.LetterMark != tables.MarkHorn {
		t.Fatalf("Decode(W) with no context = %+v", intent)
	}
}

func TestTelexDStroke(t *testing.T) {
	d := For(flags.Telex)
	tail := makeTail("d")
	intent := d.Decode(tables.D, false, false, false, tail, flags.Default())
	if intent.Kind != DStroke {
		t.Fatalf("Decode(D) after 'd' = %+v", intent)
	}
}

func TestTelexBreakKey(t *testing.T) {
	d := For(flags.Telex)
	intent := d.Decode(tables.Space, false, false, false, nil, flags.Default())
	if intent.Kind != BreakAndLetter || intent.Base != ' ' {
		t.Fatalf("Decode(Space) = %+v", intent)
	}
}

func TestVNITone(t *testing.T) {
	d := For(flags.VNI)
	tail := makeTail("chao")
	intent := d.Decode(tables.N2, false, false, false, tail, flags.Default())
	if intent.Kind != Tone || intent.ToneKind != tables.ToneGrave {
		t.Fatalf("Decode(N2) = %+v", intent)
	}
}

func TestVNIHornNucleusWide(t *testing.T) {
	d := For(flags.VNI)
	tail := makeTail("uo")
	intent := d.Decode(tables.N7, false, false, false, tail, flags.Default())
	if intent.Kind != Mark || intent.MarkKind != tables.MarkHorn || intent.TargetBase != 0 {
		t.Fatalf("Decode(N7) = %+v", intent)
	}
}

func TestVNIDigitWithNoVowelIsLiteral(t *testing.T) {
	d := For(flags.VNI)
	tail := makeTail("bc")
	intent := d.Decode(tables.N6, false, false, false, tail, flags.Default())
	if intent.Kind != Letter || intent.Base != '6' {
		t.Fatalf("Decode(N6) with no vowel = %+v", intent)
	}
}

func TestVNIRestoreKey(t *testing.T) {
	d := For(flags.VNI)
	intent := d.Decode(tables.N0, false, false, false, nil, flags.Default())
	if intent.Kind != Restore {
		t.Fatalf("Decode(N0) = %+v", intent)
	}
}
