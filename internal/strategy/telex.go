package strategy

import (
	"unicode"

	"gonhanh/internal/flags"
	"gonhanh/internal/tables"
	"gonhanh/internal/vbuffer"
)

type telexDecoder struct{}

var telexTones = map[tables.Code]tables.Tone{
	tables.S: tables.ToneAcute,
	tables.F: tables.ToneGrave,
	tables.R: tables.ToneHook,
	tables.X: tables.ToneTilde,
	tables.J: tables.ToneDot,
}

var telexCircumflexLetters = map[tables.Code]rune{
	tables.A: 'a',
	tables.E: 'e',
	tables.O: 'o',
}

func (telexDecoder) Decode(key tables.Code, shift, caps bool, ctrl bool, tail []vbuffer.CharRecord, fl flags.Flags) Intent {
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

	if tone, ok := telexTones[key]; ok {
		return toneIntent(key, tone, tail)
	}

	if base, ok := telexCircumflexLetters[key]; ok {
		if letterIntent, handled := doubleLetterIntent(key, base, tables.MarkCircumflex, tail); handled {
			return letterIntent
		}
		return plainLetterIntent(key, base, caps, tail)
	}

	if key == tables.D {
		if intent, handled := dStrokeIntent(key, tail); handled {
			return intent
		}
		return plainLetterIntent(key, 'd', caps, tail)
	}

	if key == tables.W {
		return telexW(key, caps, tail, fl)
	}

	if fl.BracketShortcut && (key == tables.LBracket || key == tables.RBracket) {
		base, mark := rune('o'), tables.MarkHorn
		if key == tables.RBracket {
			base, mark = 'u', tables.MarkHorn
		}
		if caps {
			base = unicode.ToUpper(base)
		}
		return Intent{Kind: Letter, Base: base, LetterMark: mark, Key: key}
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

// telexW decodes the single most context-sensitive Telex key: after 'a' it
// is breve (ă); after a nucleus containing o/u it is horn, marking both
// halves of a uô/ươ compound in one edit; otherwise, typed with no
// preceding vowel, it inserts a literal ư (spec §4.6: "w alone produces
// ư") unless SkipWShortcut is set, in which case it is a plain letter.
func telexW(key tables.Code, caps bool, tail []vbuffer.CharRecord, fl flags.Flags) Intent {
	if lastTouchedSameKey(tail, key) {
		return Intent{Kind: Mark, Key: key, Revert: true}
	}
	if hasVowelInNucleus(tail, 'a') {
		return Intent{Kind: Mark, MarkKind: tables.MarkBreve, TargetBase: 'a', Key: key}
	}
	if hasVowelInNucleus(tail, 'o') || hasVowelInNucleus(tail, 'u') {
		return Intent{Kind: Mark, MarkKind: tables.MarkHorn, TargetBase: 0, Key: key}
	}
	if fl.SkipWShortcut {
		return plainLetterIntent(key, 'w', caps, tail)
	}
	base := rune('u')
	if caps {
		base = unicode.ToUpper(base)
	}
	return Intent{Kind: Letter, Base: base, LetterMark: tables.MarkHorn, Key: key}
}

// doubleLetterIntent handles Telex's doubled-letter marks (aa, ee, oo). The
// same key both types the plain vowel and marks it, so the revert check
// cannot rely on lastTouchedSameKey alone (the plain letter's own LastKey
// already equals key) — it must also require the mark to already be set,
// so the first double-press marks and only the next one reverts.
func doubleLetterIntent(key tables.Code, base rune, mark tables.Mark, tail []vbuffer.CharRecord) (Intent, bool) {
	if len(tail) == 0 {
		return Intent{}, false
	}
	last := tail[len(tail)-1]
	if unicode.ToLower(last.Base) != base {
		return Intent{}, false
	}
	if last.VowelMark == mark && last.LastKey == key {
		return Intent{Kind: Mark, Key: key, Revert: true}, true
	}
	if last.VowelMark == tables.MarkNone {
		return Intent{Kind: Mark, MarkKind: mark, TargetBase: base, Key: key}, true
	}
	return Intent{}, false
}

// dStrokeIntent handles Telex's dd -> đ. Same same-key caveat as
// doubleLetterIntent: revert requires the stroke to already be set by this
// key, not just a LastKey match.
func dStrokeIntent(key tables.Code, tail []vbuffer.CharRecord) (Intent, bool) {
	if len(tail) == 0 {
		return Intent{}, false
	}
	last := tail[len(tail)-1]
	if unicode.ToLower(last.Base) != 'd' {
		return Intent{}, false
	}
	if last.Stroke && last.LastKey == key {
		return Intent{Kind: DStroke, Key: key, Revert: true}, true
	}
	if !last.Stroke {
		return Intent{Kind: DStroke, Key: key}, true
	}
	return Intent{}, false
}

func toneIntent(key tables.Code, tone tables.Tone, tail []vbuffer.CharRecord) Intent {
	if lastTouchedSameKey(tail, key) {
		return Intent{Kind: Tone, Key: key, Revert: true}
	}
	return Intent{Kind: Tone, ToneKind: tone, Key: key}
}

func plainLetterIntent(key tables.Code, base rune, caps bool, tail []vbuffer.CharRecord) Intent {
	if caps {
		base = unicode.ToUpper(base)
	}
	return Intent{Kind: ShortcutCandidate, Base: base, Key: key}
}
