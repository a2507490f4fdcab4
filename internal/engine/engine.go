// Package engine implements the per-keystroke orchestrator (spec §4.8, C8):
// it owns the configuration flags, the typing buffer, the shortcut table,
// and the capitalization/restore side-state, and turns every keystroke into
// an Edit by dispatching the active strategy's Intent through the transform
// and validator.
//
// Engine is a plain Go value with no global state of its own — the
// process-wide singleton and its mutex live in the ABI boundary (package
// abi), matching spec §9's "the host wrapper provides the global".
package engine

import (
	"strings"
	"unicode"

	"gonhanh/internal/flags"
	"gonhanh/internal/phonology"
	"gonhanh/internal/shortcut"
	"gonhanh/internal/strategy"
	"gonhanh/internal/syllable"
	"gonhanh/internal/tables"
	"gonhanh/internal/transform"
	"gonhanh/internal/vbuffer"
)

// Action is the outer kind of edit the engine is asking the host to make.
type Action uint8

const (
	ActionNone Action = iota
	ActionSend
	ActionRestore
)

// Edit is the atomic output of a keystroke (spec §3/§4.8/§6): delete
// Backspace characters behind the caret, then insert Chars, optionally
// consuming the key.
type Edit struct {
	Action    Action
	Backspace int
	Chars     []rune
	Consumed  bool
}

// state is the per-syllable composition state machine (spec §4.8).
type state uint8

const (
	stateEmpty state = iota
	stateComposing
	stateCommitted
)

// Engine is the composition core (spec §3's "Engine state").
type Engine struct {
	flags     flags.Flags
	buf       *vbuffer.Buffer
	rawTail   []rune
	shortcuts *shortcut.Table

	pendingCapitalize bool
	compositionState  state
}

// New returns a ready-to-use engine: enabled, Telex, modern tone placement
// (spec §6's ime_init: "initial state: disabled off, method = Telex").
func New() *Engine {
	return &Engine{
		flags:     flags.Default(),
		buf:       vbuffer.New(),
		shortcuts: shortcut.New(),
	}
}

// Flags returns a copy of the engine's current behaviour flags.
func (e *Engine) Flags() flags.Flags { return e.flags }

func (e *Engine) SetMethod(m flags.Method)          { e.flags.Method = m }
func (e *Engine) SetEnabled(b bool)                 { e.flags.Enabled = b }
func (e *Engine) SetModern(b bool)                  { e.flags.ModernTone = b }
func (e *Engine) SetFreeTone(b bool)                { e.flags.FreeTone = b }
func (e *Engine) SetSkipWShortcut(b bool)           { e.flags.SkipWShortcut = b }
func (e *Engine) SetBracketShortcut(b bool)         { e.flags.BracketShortcut = b }
func (e *Engine) SetEnglishAutoRestore(b bool)      { e.flags.EnglishAutoRestore = b }
func (e *Engine) SetAutoCapitalize(b bool)          { e.flags.AutoCapitalize = b }
func (e *Engine) SetAllowForeignConsonants(b bool)  { e.flags.AllowForeignConsonants = b }

// Clear drops the buffer only (spec §6's ime_clear).
func (e *Engine) Clear() {
	e.buf.Clear()
	e.rawTail = e.rawTail[:0]
	e.compositionState = stateEmpty
}

// ClearAll drops the buffer and the word-history/capitalization scratch
// (spec §6's ime_clear_all).
func (e *Engine) ClearAll() {
	e.Clear()
	e.pendingCapitalize = false
}

func (e *Engine) AddShortcut(trigger, replacement string) bool { return e.shortcuts.Add(trigger, replacement) }
func (e *Engine) RemoveShortcut(trigger string)                { e.shortcuts.Remove(trigger) }
func (e *Engine) ClearShortcuts()                               { e.shortcuts.Clear() }

// RestoreWord seeds the buffer from a word already on screen (spec §6's
// ime_restore_word), enabling backspace-into-word editing. Each rune
// becomes one record; marks and tones already present in word are
// decomposed back onto their base letter and tone/mark fields.
func (e *Engine) RestoreWord(word string) {
	e.Clear()
	for _, ch := range word {
		upper := unicode.IsUpper(ch)
		if unicode.ToLower(ch) == 'đ' {
			e.buf.Append(vbuffer.CharRecord{Base: 'd', Stroke: true, CaseUpper: upper})
			e.rawTail = append(e.rawTail, 'd')
			continue
		}
		base, ok := tables.BaseVowel(ch)
		if !ok {
			base = unicode.ToLower(ch)
		}
		rec := vbuffer.CharRecord{Base: base, CaseUpper: upper}
		if ok {
			if marked, ok := tables.MarkedBaseOf(ch); ok {
				rec.VowelMark = tables.MarkOf(marked)
			}
			rec.Tone = tables.ToneOf(ch)
		}
		e.buf.Append(rec)
		e.rawTail = append(e.rawTail, base)
	}
	if e.buf.Len() > 0 {
		e.compositionState = stateComposing
	}
}

// GetBuffer returns the composed text of the full buffer, for hosts that
// inject via select-all-and-retype (spec §6's ime_get_buffer).
func (e *Engine) GetBuffer() []rune {
	return []rune(e.buf.Text())
}

// ProcessKey is the engine's main entry point (spec §6's ime_key_ext).
func (e *Engine) ProcessKey(key tables.Code, caps, ctrl, shift bool) Edit {
	if ctrl || !e.flags.Enabled {
		return Edit{Action: ActionNone}
	}

	if key == tables.Delete {
		e.buf.PopLast()
		if len(e.rawTail) > 0 {
			e.rawTail = e.rawTail[:len(e.rawTail)-1]
		}
		if e.buf.Len() == 0 {
			e.compositionState = stateEmpty
		}
		return Edit{Action: ActionNone}
	}

	tail := e.buf.TailSinceBreak(0)
	intent := strategy.For(e.flags.Method).Decode(key, shift, caps, ctrl, tail, e.flags)

	switch intent.Kind {
	case strategy.Bypass:
		return Edit{Action: ActionNone}

	case strategy.Navigation:
		e.Clear()
		return Edit{Action: ActionNone}

	case strategy.Restore:
		return e.restore()

	case strategy.BreakAndLetter:
		return e.breakAndLetter(intent)

	case strategy.Letter:
		return e.appendLiteral(intent, tail, key)

	case strategy.ShortcutCandidate:
		return e.appendShortcutCandidate(intent, key)

	case strategy.Mark, strategy.Tone, strategy.DStroke:
		return e.applyTransform(intent, tail, key, caps)
	}

	return Edit{Action: ActionNone}
}

// ProcessKeyWithChar lets the host route a modifier-altered key into
// shortcut matching by supplying the Unicode scalar the OS would itself
// have produced (spec §6's ime_key_with_char), without the engine having
// to know the host's keyboard layout. Keys the strategy already
// understands are processed exactly as ProcessKey would; only keys with no
// ASCII rendering fall back to appending scalar literally.
func (e *Engine) ProcessKeyWithChar(key tables.Code, caps, ctrl, shift bool, scalar rune) Edit {
	if _, ok := tables.ASCII(key, shift); ok || tables.IsBreak(key) {
		return e.ProcessKey(key, caps, ctrl, shift)
	}
	if ctrl || !e.flags.Enabled || scalar == 0 {
		return Edit{Action: ActionNone}
	}
	rec := vbuffer.CharRecord{Base: unicode.ToLower(scalar), CaseUpper: unicode.IsUpper(scalar), LastKey: key}
	e.buf.Append(rec)
	e.rawTail = append(e.rawTail, scalar)
	e.compositionState = stateComposing
	return Edit{Action: ActionSend, Backspace: 0, Chars: []rune{rec.Scalar()}, Consumed: true}
}

func (e *Engine) restore() Edit {
	n := e.buf.Len()
	if n == 0 {
		return Edit{Action: ActionNone}
	}
	raw := append([]rune{}, e.rawTail...)

	e.buf.Clear()
	for _, ch := range raw {
		e.buf.Append(vbuffer.CharRecord{Base: unicode.ToLower(ch), CaseUpper: unicode.IsUpper(ch)})
	}
	e.rawTail = raw
	e.compositionState = stateComposing

	return Edit{Action: ActionRestore, Backspace: n, Chars: raw, Consumed: true}
}

func (e *Engine) breakAndLetter(intent strategy.Intent) Edit {
	asciiTail := strings.ToLower(string(e.rawTail))
	if trigger, replacement, ok := e.shortcuts.Match(asciiTail); ok {
		e.buf.Clear()
		e.rawTail = e.rawTail[:0]
		e.compositionState = stateEmpty
		e.setPendingCapitalizeFor(intent.Base)
		return Edit{Action: ActionSend, Backspace: len(trigger), Chars: []rune(replacement), Consumed: false}
	}

	restoreEdit := Edit{}
	fired := false
	if e.flags.EnglishAutoRestore && e.buf.Len() > 0 {
		view, parsedOK := syllable.Parse(e.buf.TailSinceBreak(0), e.flags.ModernTone)
		if phonology.Validate(view, parsedOK, e.flags.AllowForeignConsonants) != phonology.OK {
			restoreEdit = e.restore()
			fired = true
		}
	}

	e.buf.Clear()
	e.rawTail = e.rawTail[:0]
	e.compositionState = stateEmpty
	e.setPendingCapitalizeFor(intent.Base)

	if fired {
		return restoreEdit
	}
	return Edit{Action: ActionNone, Consumed: false}
}

func (e *Engine) setPendingCapitalizeFor(breakChar rune) {
	if !e.flags.AutoCapitalize {
		return
	}
	switch breakChar {
	case '.', '!', '?', '\n':
		e.pendingCapitalize = true
	}
}

func (e *Engine) appendLiteral(intent strategy.Intent, tail []vbuffer.CharRecord, key tables.Code) Edit {
	rec := vbuffer.CharRecord{
		Base:      unicode.ToLower(intent.Base),
		VowelMark: intent.LetterMark,
		CaseUpper: unicode.IsUpper(intent.Base),
		LastKey:   key,
	}
	e.buf.Append(rec)
	e.appendRaw(key, unicode.IsUpper(intent.Base))
	e.compositionState = stateComposing
	return Edit{Action: ActionSend, Backspace: 0, Chars: []rune{rec.Scalar()}, Consumed: true}
}

func (e *Engine) appendShortcutCandidate(intent strategy.Intent, key tables.Code) Edit {
	upper := unicode.IsUpper(intent.Base)
	if e.pendingCapitalize {
		upper = true
		e.pendingCapitalize = false
	}
	rec := vbuffer.CharRecord{Base: unicode.ToLower(intent.Base), CaseUpper: upper, LastKey: key}
	e.buf.Append(rec)
	e.appendRaw(key, upper)
	e.compositionState = stateComposing
	return Edit{Action: ActionSend, Backspace: 0, Chars: []rune{rec.Scalar()}, Consumed: true}
}

// applyTransform runs a Mark/Tone/DStroke intent (or its Revert variant)
// through transform.Apply, validates the candidate before committing it
// (spec §4.4's validator-first contract), and falls back to a plain
// literal append on rejection.
func (e *Engine) applyTransform(intent strategy.Intent, oldTail []vbuffer.CharRecord, key tables.Code, caps bool) Edit {
	lit, _ := tables.ASCII(key, false)
	if caps {
		lit = unicode.ToUpper(lit)
	}
	e.appendRaw(key, caps)

	var ti transform.Intent
	switch {
	case intent.Revert:
		ti = transform.Intent{Kind: transform.RevertLast, Key: key, Literal: lit}
	case intent.Kind == strategy.Mark:
		ti = transform.Intent{Kind: transform.SetMark, Mark: intent.MarkKind, TargetBase: intent.TargetBase, Key: key}
	case intent.Kind == strategy.Tone:
		ti = transform.Intent{Kind: transform.SetTone, Tone: intent.ToneKind, Key: key}
	case intent.Kind == strategy.DStroke:
		ti = transform.Intent{Kind: transform.ToggleDStroke, Key: key}
	}

	newTail, ok := transform.Apply(oldTail, ti, e.flags.ModernTone)
	// đ-stroke touches only the initial consonant slot, never the nucleus,
	// so it is exempt from phonology validation: requiring a vowel to
	// already exist would reject "dd" typed before any vowel follows.
	if ok && !intent.Revert && !e.flags.FreeTone && intent.Kind != strategy.DStroke {
		view, parsedOK := syllable.Parse(newTail, e.flags.ModernTone)
		if phonology.Validate(view, parsedOK, e.flags.AllowForeignConsonants) != phonology.OK {
			ok = false
		}
	}

	if !ok {
		rec := vbuffer.CharRecord{Base: unicode.ToLower(lit), CaseUpper: caps, LastKey: key}
		e.buf.Append(rec)
		e.compositionState = stateComposing
		return Edit{Action: ActionSend, Backspace: 0, Chars: []rune{rec.Scalar()}, Consumed: true}
	}

	backspace, chars := diff(oldTail, newTail)
	e.buf.ReplaceTail(len(oldTail), newTail)
	e.compositionState = stateComposing
	return Edit{Action: ActionSend, Backspace: backspace, Chars: chars, Consumed: true}
}

func (e *Engine) appendRaw(key tables.Code, caps bool) {
	ch, ok := tables.ASCII(key, false)
	if !ok {
		return
	}
	if caps {
		ch = unicode.ToUpper(ch)
	}
	e.rawTail = append(e.rawTail, ch)
}

// diff finds the shortest suffix of old that must be deleted and
// re-inserted to turn old into new, since the engine can only edit text at
// the caret by deleting trailing characters and retyping (spec §4.5: "diff
// the old tail against the new tail").
func diff(old, newTail []vbuffer.CharRecord) (backspace int, chars []rune) {
	i := 0
	minLen := len(old)
	if len(newTail) < minLen {
		minLen = len(newTail)
	}
	for i < minLen && old[i].Scalar() == newTail[i].Scalar() {
		i++
	}
	backspace = len(old) - i
	chars = make([]rune, 0, len(newTail)-i)
	for _, r := range newTail[i:] {
		chars = append(chars, r.Scalar())
	}
	return backspace, chars
}
