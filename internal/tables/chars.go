package tables

import "unicode"

// Mark is a non-tone vowel diacritic: circumflex, horn, or breve.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkCircumflex
	MarkHorn
	MarkBreve
)

// Tone is one of the five Vietnamese tones, or absent.
type Tone uint8

const (
	ToneNone Tone = iota
	ToneAcute
	ToneGrave
	ToneHook
	ToneTilde
	ToneDot
)

// vowelTable mirrors the original engine's 12x5 base-vowel-by-tone matrix:
// each row is the base letter followed by its five toned forms in
// acute/grave/hook/tilde/dot order.
var vowelTable = [12]struct {
	base  rune
	toned [5]rune
}{
	{'a', [5]rune{'á', 'à', 'ả', 'ã', 'ạ'}},
	{'ă', [5]rune{'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'}},
	{'â', [5]rune{'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'}},
	{'e', [5]rune{'é', 'è', 'ẻ', 'ẽ', 'ẹ'}},
	{'ê', [5]rune{'ế', 'ề', 'ể', 'ễ', 'ệ'}},
	{'i', [5]rune{'í', 'ì', 'ỉ', 'ĩ', 'ị'}},
	{'o', [5]rune{'ó', 'ò', 'ỏ', 'õ', 'ọ'}},
	{'ô', [5]rune{'ố', 'ồ', 'ổ', 'ỗ', 'ộ'}},
	{'ơ', [5]rune{'ớ', 'ờ', 'ở', 'ỡ', 'ợ'}},
	{'u', [5]rune{'ú', 'ù', 'ủ', 'ũ', 'ụ'}},
	{'ư', [5]rune{'ứ', 'ừ', 'ử', 'ữ', 'ự'}},
	{'y', [5]rune{'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'}},
}

// markedBase maps (base letter, mark) -> the marked base vowel, e.g.
// ('a', MarkCircumflex) -> 'â'. Only the letters that actually take marks
// appear here.
var markedBase = map[rune]map[Mark]rune{
	'a': {MarkCircumflex: 'â', MarkBreve: 'ă'},
	'e': {MarkCircumflex: 'ê'},
	'o': {MarkCircumflex: 'ô', MarkHorn: 'ơ'},
	'u': {MarkHorn: 'ư'},
}

// BaseWithMark applies mark to the unmarked base letter. If base does not
// take that mark, base is returned unchanged.
func BaseWithMark(base rune, mark Mark) rune {
	if mark == MarkNone {
		return base
	}
	if byMark, ok := markedBase[base]; ok {
		if marked, ok := byMark[mark]; ok {
			return marked
		}
	}
	return base
}

// applyTone looks a marked (or unmarked) base vowel up in vowelTable and
// returns its toned form.
func applyTone(marked rune, tone Tone) rune {
	if tone == ToneNone {
		return marked
	}
	for _, row := range vowelTable {
		if row.base == marked {
			return row.toned[tone-1]
		}
	}
	return marked
}

// Compose produces the single Unicode scalar implied by a buffer slot's
// (base, mark, tone, upper) state, matching spec §3's CharRecord invariant
// that this composition is always a defined Vietnamese letter or equal to
// base. D is handled by the caller via DStroke since it is not a vowel.
func Compose(base rune, mark Mark, tone Tone, upper bool) rune {
	marked := BaseWithMark(base, mark)
	toned := applyTone(marked, tone)
	if upper {
		return unicode.ToUpper(toned)
	}
	return toned
}

// DStroke returns đ or Đ.
func DStroke(upper bool) rune {
	if upper {
		return 'Đ'
	}
	return 'đ'
}

// IsVowelChar reports whether ch (in any case or tone) is a Vietnamese vowel
// letter.
func IsVowelChar(ch rune) bool {
	lower := unicode.ToLower(ch)
	for _, row := range vowelTable {
		if row.base == lower {
			return true
		}
		for _, t := range row.toned {
			if t == lower {
				return true
			}
		}
	}
	return false
}

// BaseVowel returns the unmarked, untoned base letter for ch, if ch is a
// Vietnamese vowel in any form.
func BaseVowel(ch rune) (rune, bool) {
	lower := unicode.ToLower(ch)
	for _, row := range vowelTable {
		if row.base == lower {
			return baseLetterOf(row.base), true
		}
		for _, t := range row.toned {
			if t == lower {
				return baseLetterOf(row.base), true
			}
		}
	}
	return 0, false
}

// MarkedBaseOf returns the marked-but-untoned base letter under ch, e.g.
// 'ệ' -> 'ê', 'ữ' -> 'ư', 'á' -> 'a'. Used to decompose a toned, marked
// vowel back into its mark (via MarkOf) and tone (via ToneOf) separately.
func MarkedBaseOf(ch rune) (rune, bool) {
	lower := unicode.ToLower(ch)
	for _, row := range vowelTable {
		if row.base == lower {
			return row.base, true
		}
		for _, t := range row.toned {
			if t == lower {
				return row.base, true
			}
		}
	}
	return 0, false
}

// baseLetterOf strips a, ă, â down to 'a' and so on, returning the plain
// six-letter vowel ('a','e','i','o','u','y') under a marked base.
func baseLetterOf(marked rune) rune {
	switch marked {
	case 'a', 'ă', 'â':
		return 'a'
	case 'e', 'ê':
		return 'e'
	case 'o', 'ô', 'ơ':
		return 'o'
	case 'u', 'ư':
		return 'u'
	default:
		return marked
	}
}

// ToneOf returns the tone a toned vowel character carries, or ToneNone if
// ch carries no tone.
func ToneOf(ch rune) Tone {
	lower := unicode.ToLower(ch)
	for _, row := range vowelTable {
		for i, t := range row.toned {
			if t == lower {
				return Tone(i + 1)
			}
		}
	}
	return ToneNone
}

// MarkOf returns the mark implied by a marked base letter, e.g. 'â' ->
// MarkCircumflex, 'ơ' -> MarkHorn, 'a' -> MarkNone.
func MarkOf(marked rune) Mark {
	switch marked {
	case 'â', 'ê', 'ô':
		return MarkCircumflex
	case 'ơ', 'ư':
		return MarkHorn
	case 'ă':
		return MarkBreve
	default:
		return MarkNone
	}
}
