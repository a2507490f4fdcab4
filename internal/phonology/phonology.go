// Package phonology implements the five-rule validator (spec §4.4, C4). A
// candidate syllable is accepted only if it could plausibly be spelled in
// Vietnamese; the engine (C8) consults this on the candidate that transform
// (C5) builds before committing any mark or tone change, never after — see spec §4.4's note on validator-first design.
package phonology

import (
	"gonhanh/internal/syllable"
	"gonhanh/internal/tables"
)

// Reason names which of the five rules rejected a candidate, for tests and
// diagnostics. The engine itself only needs the bool.
type Reason int

const (
	OK Reason = iota
	NoVowel
	BadInitial
	NotAllConsumed
	BadSpelling
	BadFinal
)

// Validate checks view against the five phonotactic rules. parsedOK is the
// second return value of syllable.Parse for the same tail; when it is
// false, NoVowel is returned immediately since there is nothing further to
// check.
func Validate(view syllable.View, parsedOK bool, allowForeign bool) Reason {
	if !parsedOK || view.V == "" {
		return NoVowel
	}

	if view.C1 != "" && !isValidInitial(view.C1, allowForeign) {
		return BadInitial
	}

	// All consumed: by construction syllable.Parse classifies every
	// remaining scalar as C2, so nothing is left over once C1/G/V/C2 are
	// known. The check exists to make the rule's presence explicit and to
	// catch any future parser change that stops maintaining that
	// invariant.
	if !allConsumed(view) {
		return NotAllConsumed
	}

	if !validSpelling(view) {
		return BadSpelling
	}

	if view.C2 != "" && !tables.Finals[view.C2] {
		return BadFinal
	}

	return OK
}

func isValidInitial(c1 string, allowForeign bool) bool {
	if tables.Initials[c1] {
		return true
	}
	if allowForeign && tables.ForeignInitials[c1] {
		return true
	}
	return false
}

func allConsumed(view syllable.View) bool {
	return view.V != ""
}

// validSpelling enforces rule 4: c/k, g/gh, ng/ngh, q+u are split by the
// front/back distinction of the following vowel.
func validSpelling(view syllable.View) bool {
	if view.V == "" {
		return true
	}
	front := tables.FrontVowels[runeAt(view.V, 0)]

	switch view.C1 {
	case "c":
		return !front
	case "k":
		return front
	case "g":
		return !front
	case "gh":
		return front
	case "ng":
		return !front
	case "ngh":
		return front
	case "q":
		// bare "q" never survives syllable.Parse (only "qu" is in the
		// initials table), but reject defensively if it ever does.
		return false
	}
	return true
}

func runeAt(s string, i int) rune {
	for j, r := range s {
		if j == i {
			return r
		}
	}
	return 0
}
