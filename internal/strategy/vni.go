package strategy

import (
	"unicode"

	"gonhanh/internal/flags"
	"gonhanh/internal/syllable"
	"gonhanh/internal/tables"
	"gonhanh/internal/vbuffer"
)

type vniDecoder struct{}

var vniTones = map[tables.Code]tables.Tone{
	tables.N1: tables.ToneAcute,
	tables.N2: tables.ToneGrave,
	tables.N3: tables.ToneHook,
	tables.N4: tables.ToneTilde,
	tables.N5: tables.ToneDot,
}

func (vniDecoder) Decode(key tables.Code, shift, caps bool, ctrl bool, tail []vbuffer.CharRecord, fl flags.Flags) Intent {
	if ctrl {
		return Intent{Kind: Bypass, Key: key}
	}
	if key == tables.Esc {
		return Intent{Kind: Restore, Key: key}
	}
	if key == tables.Left || key == tables.Right || key == tables.Up || key == tables.Down {
		return Intent{Kind: Navigation, Key: key}
	}
	if key == tables.Delete {
		return Intent{Kind: Bypass, Key: key}
	}

	// Shifted digits (!@#$%...) are break keys, not tone triggers.
	if shift && tables.IsDigit(key) {
		ch, _ := tables.ASCII(key, true)
		return Intent{Kind: BreakAndLetter, Base: ch, Key: key}
	}

	if tone, ok := vniTones[key]; ok {
		return vniToneOrLiteral(key, tone, tail)
	}

	switch key {
	case tables.N6:
		return vniMarkOrLiteral(key, tables.MarkCircumflex, tail)
	case tables.N7:
		return vniMarkOrLiteral(key, tables.MarkHorn, tail)
	case tables.N8:
		return vniMarkOrLiteral(key, tables.MarkBreve, tail)
	case tables.N9:
		return vniDStroke(key, tail)
	case tables.N0:
		return Intent{Kind: Restore, Key: key}
	}

	if tables.IsBreak(key) {
		ch, _ := tables.ASCII(key, shift)
		return Intent{Kind: BreakAndLetter, Base: ch, Key: key}
	}
	if tables.IsLetter(key) {
		ch, _ := tables.ASCII(key, shift)
		return plainLetterIntent(key, ch, caps, tail)
	}
	ch, ok := tables.ASCII(key, shift)
	if !ok {
		return Intent{Kind: Bypass, Key: key}
	}
	return Intent{Kind: BreakAndLetter, Base: ch, Key: key}
}

func vniToneOrLiteral(key tables.Code, tone tables.Tone, tail []vbuffer.CharRecord) Intent {
	if lastTouchedSameKey(tail, key) {
		return Intent{Kind: Tone, Key: key, Revert: true}
	}
	if _, ok := syllable.Parse(tail, true); !ok {
		ch, _ := tables.ASCII(key, false)
		return Intent{Kind: Letter, Base: ch, Key: key}
	}
	return Intent{Kind: Tone, ToneKind: tone, Key: key}
}

// vniMarkOrLiteral picks the nucleus vowel a mark key addresses by
// scanning the syllable's vowel slots from the most recently typed
// backward, matching whichever base letters that mark can apply to. A
// horn on an o/u-adjacent nucleus targets both halves of the compound
// (TargetBase 0), mirroring Telex's 'w'. A digit with no eligible vowel in
// the nucleus is a plain literal digit (spec §4.6).
func vniMarkOrLiteral(key tables.Code, mark tables.Mark, tail []vbuffer.CharRecord) Intent {
	if lastTouchedSameKey(tail, key) {
		return Intent{Kind: Mark, Key: key, Revert: true}
	}

	view, ok := syllable.Parse(tail, true)
	if !ok {
		ch, _ := tables.ASCII(key, false)
		return Intent{Kind: Letter, Base: ch, Key: key}
	}

	switch mark {
	case tables.MarkBreve:
		for i := len(view.VowelIndex) - 1; i >= 0; i-- {
			idx := view.VowelIndex[i]
			if unicode.ToLower(tail[idx].Base) == 'a' {
				return Intent{Kind: Mark, MarkKind: mark, TargetBase: 'a', Key: key}
			}
		}
	case tables.MarkCircumflex:
		for i := len(view.VowelIndex) - 1; i >= 0; i-- {
			base := unicode.ToLower(tail[view.VowelIndex[i]].Base)
			if base == 'a' || base == 'e' || base == 'o' {
				return Intent{Kind: Mark, MarkKind: mark, TargetBase: base, Key: key}
			}
		}
	case tables.MarkHorn:
		for i := len(view.VowelIndex) - 1; i >= 0; i-- {
			base := unicode.ToLower(tail[view.VowelIndex[i]].Base)
			if base == 'o' || base == 'u' {
				return Intent{Kind: Mark, MarkKind: mark, TargetBase: 0, Key: key}
			}
		}
	}

	ch, _ := tables.ASCII(key, false)
	return Intent{Kind: Letter, Base: ch, Key: key}
}

func vniDStroke(key tables.Code, tail []vbuffer.CharRecord) Intent {
	if lastTouchedSameKey(tail, key) {
		return Intent{Kind: DStroke, Key: key, Revert: true}
	}
	if len(tail) > 0 {
		last := tail[len(tail)-1]
		if unicode.ToLower(last.Base) == 'd' && !last.Stroke {
			return Intent{Kind: DStroke, Key: key}
		}
	}
	ch, _ := tables.ASCII(key, false)
	return Intent{Kind: Letter, Base: ch, Key: key}
}
