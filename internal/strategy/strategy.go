// Package strategy implements the Telex and VNI input method strategies
// (spec §4.6, C6): total functions from a raw key plus modifier state to an
// Intent, the vocabulary the orchestrator (C8) dispatches on.
package strategy

import (
	"unicode"

	"gonhanh/internal/flags"
	"gonhanh/internal/syllable"
	"gonhanh/internal/tables"
	"gonhanh/internal/vbuffer"
)

// Kind is one of the Intent variants named in spec §4.6.
type Kind int

const (
	Letter Kind = iota
	Mark
	Tone
	DStroke
	BreakAndLetter
	Navigation
	Bypass
	ShortcutCandidate
	Restore
)

// Intent is a strategy's decision for one keystroke.
type Intent struct {
	Kind Kind

	// Letter/BreakAndLetter/ShortcutCandidate: Base is the ASCII letter to
	// append (what drives shortcut matching and the buffer's CharRecord);
	// LetterMark is MarkNone except for the bracket shortcuts, which insert
	// a fully-marked vowel (ơ/ư) in one step rather than overlaying a mark
	// onto an existing record.
	Base       rune
	LetterMark tables.Mark

	MarkKind   tables.Mark // for Mark
	ToneKind   tables.Tone // for Tone
	TargetBase rune        // for Mark: which vowel letter it addresses, 0 = nucleus-wide

	Key    tables.Code // the originating key, carried through for LastKey bookkeeping
	Revert bool        // true if this key would only double back over its own last edit
}

// Decoder is the small interface both Telex and VNI implement (spec §9:
// "Represent input methods as tagged variants implementing one small
// trait/interface decode(key, mods, view) → Intent").
type Decoder interface {
	Decode(key tables.Code, shift, caps, ctrl bool, tail []vbuffer.CharRecord, fl flags.Flags) Intent
}

// For selects the decoder for the engine's active method.
func For(m flags.Method) Decoder {
	if m == flags.VNI {
		return vniDecoder{}
	}
	return telexDecoder{}
}

// lastTouchedSameKey reports whether the most recent record in tail was
// last touched by key — the condition for a double-key revert (spec
// §4.5's "last_key field on each record drives this").
func lastTouchedSameKey(tail []vbuffer.CharRecord, key tables.Code) bool {
	if len(tail) == 0 {
		return false
	}
	return tail[len(tail)-1].LastKey == key
}

// findVowelByBase scans tail backward for the most recent vowel slot with
// the given base letter.
func findVowelByBase(tail []vbuffer.CharRecord, base rune) (int, bool) {
	for i := len(tail) - 1; i >= 0; i-- {
		if unicode.ToLower(tail[i].Base) == base && tables.IsVowelChar(tail[i].Base) {
			return i, true
		}
	}
	return 0, false
}

// hasVowelInNucleus reports whether the current trailing nucleus (per
// syllable.Parse) contains a vowel with the given base letter.
func hasVowelInNucleus(tail []vbuffer.CharRecord, base rune) bool {
	view, ok := syllable.Parse(tail, true)
	if !ok {
		return false
	}
	for _, idx := range view.VowelIndex {
		if unicode.ToLower(tail[idx].Base) == base {
			return true
		}
	}
	return false
}
