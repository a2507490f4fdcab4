// Package syllable implements the syllable parser (spec §4.3, C3): it
// decomposes the buffer tail since the last break into initial consonant,
// glide, vowel nucleus, and final consonant, and locates the tone anchor —
// the slot that should carry the syllable's tone mark.
//
// The tone anchor algorithm is ported from the original engine's
// Phonology::find_tone_position (src/data/vowel.rs), which enumerates the
// one/two/three/four-or-more-vowel cases explicitly rather than deriving
// them from a general rule; this package keeps that same case ladder so its
// behaviour on edge cases (ưa vs. ươ, ươi vs. oai) matches exactly.
package syllable

import (
	"strings"
	"unicode"

	"gonhanh/internal/tables"
	"gonhanh/internal/vbuffer"
)

// View is the decomposition of a buffer tail (spec §3's "Syllable view").
type View struct {
	C1          string // initial consonant cluster, lowercase ASCII, "" if none
	G           rune   // medial glide consumed out of the initial cluster (only 'u' after "qu"), 0 if none
	V           string // vowel nucleus, lowercase ASCII base letters
	C2          string // final consonant cluster, lowercase ASCII, "" if none
	VowelIndex  []int  // tail indices of each vowel-run record, in order
	AnchorIndex int     // tail index of the slot that carries the tone
}

// vowelInfo mirrors the original engine's Vowel struct: a base vowel letter,
// whether it already carries a mark (circumflex/horn/breve), and its
// position.
type vowelInfo struct {
	base         rune
	hasDiacritic bool
	pos          int
}

// Parse decomposes tail (the buffer records since the last break) into a
// View. ok is false if no vowel was found yet (spec §4.3: "or None if no
// vowel exists yet") — C1 and G may still be populated even when ok is false,
// for callers that want to report a partial parse.
func Parse(tail []vbuffer.CharRecord, modern bool) (View, bool) {
	letters := make([]rune, 0, len(tail))
	for _, r := range tail {
		letters = append(letters, unicode.ToLower(r.Base))
	}
	s := string(letters)

	c1, glide, rest := splitInitial(s)

	vowelRun, vowelEnd := leadingVowelRun(rest)
	if vowelRun == "" {
		return View{C1: c1, G: glide}, false
	}

	c2 := rest[vowelEnd:]

	// Map rest-relative offsets back onto tail indices: rest begins at
	// index len(c1)+glideLen into the original tail.
	offset := len(c1)
	if glide != 0 {
		offset++
	}

	vowels := make([]vowelInfo, 0, len(vowelRun))
	idx := make([]int, 0, len(vowelRun))
	for i, ch := range vowelRun {
		pos := offset + i
		vowels = append(vowels, vowelInfo{
			base:         ch,
			hasDiacritic: tail[pos].VowelMark != tables.MarkNone,
			pos:          pos,
		})
		idx = append(idx, pos)
	}

	anchor := findTonePosition(vowels, c2 != "", modern)

	return View{
		C1:          c1,
		G:           glide,
		V:           vowelRun,
		C2:          c2,
		VowelIndex:  idx,
		AnchorIndex: anchor,
	}, true
}

// splitInitial consumes the longest valid initial consonant cluster from
// the front of s. "qu" splits into C1="q", glide='u'; all other clusters
// (including "gi", which fully absorbs its i) are returned whole as C1.
func splitInitial(s string) (c1 string, glide rune, rest string) {
	for n := 3; n >= 1; n-- {
		if len(s) < n {
			continue
		}
		cand := s[:n]
		if !tables.Initials[cand] && !tables.ForeignInitials[cand] {
			continue
		}
		if cand == "qu" {
			return "q", 'u', s[n:]
		}
		return cand, 0, s[n:]
	}
	return "", 0, s
}

// leadingVowelRun returns the longest run of contiguous base-vowel letters
// at the front of s, and the byte offset immediately after it.
func leadingVowelRun(s string) (run string, end int) {
	i := 0
	for i < len(s) && isBaseVowelLetter(rune(s[i])) {
		i++
	}
	return s[:i], i
}

func isBaseVowelLetter(ch rune) bool {
	switch ch {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// findTonePosition ports Phonology::find_tone_position verbatim.
func findTonePosition(vowels []vowelInfo, hasFinal bool, modern bool) int {
	n := len(vowels)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return vowels[0].pos
	}

	if n == 2 {
		v1, v2 := vowels[0], vowels[1]

		if hasFinal {
			return v2.pos
		}

		// ưa pattern: v1 has a diacritic, v2 doesn't -> mark v1.
		if v1.hasDiacritic && !v2.hasDiacritic {
			return v1.pos
		}

		if isCompoundVowel(v1.base, v2.base) {
			return v2.pos
		}

		if v2.hasDiacritic {
			return v2.pos
		}

		if isMedialPair(v1.base, v2.base) {
			if modern {
				return v2.pos
			}
			return v1.pos
		}

		if isMainGlidePair(v1.base, v2.base) {
			return v1.pos
		}

		return v2.pos
	}

	if n == 3 {
		k0, k1, k2 := vowels[0].base, vowels[1].base, vowels[2].base

		if vowels[1].hasDiacritic {
			return vowels[1].pos
		}
		if vowels[2].hasDiacritic {
			return vowels[2].pos
		}
		if k0 == 'u' && k1 == 'o' {
			return vowels[1].pos
		}
		if k0 == 'o' && k1 == 'a' {
			return vowels[1].pos
		}
		if k0 == 'u' && k1 == 'y' && k2 == 'e' {
			return vowels[2].pos
		}
	}

	mid := n / 2
	if vowels[mid].hasDiacritic {
		return vowels[mid].pos
	}
	for _, v := range vowels {
		if v.hasDiacritic {
			return v.pos
		}
	}
	return vowels[mid].pos
}

// isMedialPair reports a fixed medial+main pair: oa, oe, ua, uê, uy.
func isMedialPair(v1, v2 rune) bool {
	switch [2]rune{v1, v2} {
	case [2]rune{'o', 'a'}, [2]rune{'o', 'e'}, [2]rune{'u', 'a'},
		[2]rune{'u', 'e'}, [2]rune{'u', 'y'}:
		return true
	}
	return false
}

// isMainGlidePair reports a main+final-glide pair such as ai, ao, au, oi, ui.
func isMainGlidePair(v1, v2 rune) bool {
	isGlide := v2 == 'i' || v2 == 'y' || v2 == 'o' || v2 == 'u'
	if !isGlide {
		return false
	}
	return !isMedialPair(v1, v2) && !isCompoundVowel(v1, v2)
}

// isCompoundVowel reports the uô/ươ/iê compound nucleus.
func isCompoundVowel(v1, v2 rune) bool {
	switch [2]rune{v1, v2} {
	case [2]rune{'u', 'o'}, [2]rune{'i', 'e'}:
		return true
	}
	return false
}

// String renders the decomposition for diagnostics/tests.
func (v View) String() string {
	var b strings.Builder
	b.WriteString(v.C1)
	if v.G != 0 {
		b.WriteRune(v.G)
	}
	b.WriteString(v.V)
	b.WriteString(v.C2)
	return b.String()
}
