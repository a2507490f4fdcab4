// Package transform implements the diacritic/tone transform (spec §4.5,
// C5): applying or removing one vowel mark or tone on the correct syllable
// anchor, the uô/ươ compound horn, đ-stroke toggling, and double-key revert.
// Every candidate this package produces is meant to be validated by
// internal/phonology before the caller commits it — Apply here only
// builds the candidate tail; it never decides whether that candidate is an
// acceptable Vietnamese syllable.
package transform

import (
	"unicode"

	"gonhanh/internal/syllable"
	"gonhanh/internal/tables"
	"gonhanh/internal/vbuffer"
)

// Kind is the transform intent variant (spec §4.5).
type Kind int

const (
	SetMark Kind = iota
	RemoveMark
	SetTone
	ToggleDStroke
	RevertLast
)

// Intent is the input to Apply.
type Intent struct {
	Kind Kind

	Mark tables.Mark // for SetMark/RemoveMark
	Tone tables.Tone // for SetTone

	// TargetBase names the specific base vowel letter the key addresses
	// (e.g. 'a' for Telex's doubled "aa", 'e' for "ee"). Zero means the
	// mark is nucleus-wide: Telex 'w' and VNI '7' target every o/u in the
	// current nucleus, marking both halves of a uô/ươ compound in one edit.
	TargetBase rune

	Key     tables.Code // the key that produced this intent, recorded into LastKey
	Literal rune        // for RevertLast: the literal character to append after reverting
}

// Apply builds the candidate tail for intent over tail. ok is false when
// there is no slot for the intent to act on (e.g. a mark key pressed with
// no matching vowel in the buffer) — the caller should then fall back to
// treating the key as a plain letter.
func Apply(tail []vbuffer.CharRecord, intent Intent, modern bool) ([]vbuffer.CharRecord, bool) {
	switch intent.Kind {
	case SetMark:
		return applyMark(tail, intent, true)
	case RemoveMark:
		return applyMark(tail, intent, false)
	case SetTone:
		return applyTone(tail, intent, modern)
	case ToggleDStroke:
		return applyDStroke(tail, intent)
	case RevertLast:
		return applyRevert(tail, intent)
	}
	return tail, false
}

func applyMark(tail []vbuffer.CharRecord, intent Intent, set bool) ([]vbuffer.CharRecord, bool) {
	targets := markTargets(tail, intent)
	if len(targets) == 0 {
		return tail, false
	}

	out := cloneTail(tail)
	for _, i := range targets {
		if set {
			out[i].VowelMark = intent.Mark
		} else {
			out[i].VowelMark = tables.MarkNone
		}
		out[i].LastKey = intent.Key
	}
	return out, true
}

// markTargets finds which tail indices a mark intent addresses. A specific
// TargetBase scans backward for the most recent matching base vowel letter.
// TargetBase == 0 means "nucleus-wide": every vowel slot in the current
// nucleus whose base is 'o' or 'u' is targeted, so a single horn keystroke
// marks both halves of a uô/ươ compound (spec §4.5).
func markTargets(tail []vbuffer.CharRecord, intent Intent) []int {
	if intent.TargetBase != 0 {
		for i := len(tail) - 1; i >= 0; i-- {
			if unicode.ToLower(tail[i].Base) == intent.TargetBase && tables.IsVowelChar(tail[i].Base) {
				return []int{i}
			}
		}
		return nil
	}

	view, ok := syllable.Parse(tail, true)
	if !ok {
		return nil
	}
	var targets []int
	for _, idx := range view.VowelIndex {
		b := unicode.ToLower(tail[idx].Base)
		if b == 'o' || b == 'u' {
			targets = append(targets, idx)
		}
	}
	return targets
}

func applyTone(tail []vbuffer.CharRecord, intent Intent, modern bool) ([]vbuffer.CharRecord, bool) {
	view, ok := syllable.Parse(tail, modern)
	if !ok {
		return tail, false
	}

	out := cloneTail(tail)
	for _, idx := range view.VowelIndex {
		out[idx].Tone = tables.ToneNone
	}
	out[view.AnchorIndex].Tone = intent.Tone
	out[view.AnchorIndex].LastKey = intent.Key
	return out, true
}

func applyDStroke(tail []vbuffer.CharRecord, intent Intent) ([]vbuffer.CharRecord, bool) {
	for i := len(tail) - 1; i >= 0; i-- {
		if unicode.ToLower(tail[i].Base) == 'd' {
			out := cloneTail(tail)
			out[i].Stroke = !out[i].Stroke
			out[i].LastKey = intent.Key
			return out, true
		}
	}
	return tail, false
}

// applyRevert undoes the most recent mark/tone set by intent.Key and
// appends the literal trigger letter, per spec §4.5's double-key revert
// (Telex "ass" -> "as"; "aww" -> "aw").
func applyRevert(tail []vbuffer.CharRecord, intent Intent) ([]vbuffer.CharRecord, bool) {
	for i := len(tail) - 1; i >= 0; i-- {
		if tail[i].LastKey == intent.Key {
			out := cloneTail(tail)
			out[i].VowelMark = tables.MarkNone
			out[i].Tone = tables.ToneNone
			out[i].Stroke = false
			out = append(out, vbuffer.CharRecord{
				Base:      intent.Literal,
				CaseUpper: out[i].CaseUpper,
				LastKey:   intent.Key,
			})
			return out, true
		}
	}
	return tail, false
}

func cloneTail(tail []vbuffer.CharRecord) []vbuffer.CharRecord {
	out := make([]vbuffer.CharRecord, len(tail))
	copy(out, tail)
	return out
}
