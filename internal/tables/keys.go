// Package tables holds the static data the rest of the engine is built on:
// the macOS virtual keycode set, the vowel/tone composition matrix, and the
// permitted consonant cluster sets. Everything here is a pure, allocation-free
// lookup — no package-level mutable state, safe for concurrent reads.
package tables

// Code is a macOS virtual keycode, the reference key-code space named by
// spec §6 ("the reference mapping is the macOS virtual keycode set; hosts
// on other platforms must translate").
type Code uint16

// Letters.
const (
	A Code = 0
	S Code = 1
	D Code = 2
	F Code = 3
	H Code = 4
	G Code = 5
	Z Code = 6
	X Code = 7
	C Code = 8
	V Code = 9
	B Code = 11
	Q Code = 12
	W Code = 13
	E Code = 14
	R Code = 15
	Y Code = 16
	T Code = 17
	O Code = 31
	U Code = 32
	I Code = 34
	P Code = 35
	L Code = 37
	J Code = 38
	K Code = 40
	N Code = 45
	M Code = 46
)

// Numbers.
const (
	N1 Code = 18
	N2 Code = 19
	N3 Code = 20
	N4 Code = 21
	N5 Code = 23
	N6 Code = 22
	N7 Code = 26
	N8 Code = 28
	N9 Code = 25
	N0 Code = 29
)

// Special keys.
const (
	Space  Code = 49
	Delete Code = 51
	Tab    Code = 48
	Return Code = 36
	Enter  Code = 76
	Esc    Code = 53
	Left   Code = 123
	Right  Code = 124
	Down   Code = 125
	Up     Code = 126
)

// Punctuation.
const (
	Dot       Code = 47
	Comma     Code = 43
	Slash     Code = 44
	Semicolon Code = 41
	Quote     Code = 39
	LBracket  Code = 33
	RBracket  Code = 30
	Backslash Code = 42
	Minus     Code = 27
	Equal     Code = 24
	Backquote Code = 50
)

// IsBreak reports whether key terminates composition of the current syllable
// (space, navigation, punctuation). Break keys never delete anything; they
// only commit state.
func IsBreak(key Code) bool {
	switch key {
	case Space, Tab, Return, Enter, Esc, Left, Right, Up, Down,
		Dot, Comma, Slash, Semicolon, Quote, LBracket, RBracket,
		Backslash, Minus, Equal, Backquote:
		return true
	}
	return false
}

// IsVowel reports whether key is one of the six base vowel letters.
func IsVowel(key Code) bool {
	switch key {
	case A, E, I, O, U, Y:
		return true
	}
	return false
}

// IsLetter reports whether key is any of the 26 letter keys.
func IsLetter(key Code) bool {
	switch key {
	case A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P, Q, R, S, T, U, V, W, X, Y, Z:
		return true
	}
	return false
}

// IsConsonant reports whether key is a letter key that is not a vowel.
func IsConsonant(key Code) bool {
	return IsLetter(key) && !IsVowel(key)
}

// IsDigit reports whether key is one of the top-row number keys.
func IsDigit(key Code) bool {
	switch key {
	case N0, N1, N2, N3, N4, N5, N6, N7, N8, N9:
		return true
	}
	return false
}

var letterASCII = map[Code]rune{
	A: 'a', B: 'b', C: 'c', D: 'd', E: 'e', F: 'f', G: 'g', H: 'h',
	I: 'i', J: 'j', K: 'k', L: 'l', M: 'm', N: 'n', O: 'o', P: 'p',
	Q: 'q', R: 'r', S: 's', T: 't', U: 'u', V: 'v', W: 'w', X: 'x',
	Y: 'y', Z: 'z',
}

var digitASCII = map[Code]rune{
	N0: '0', N1: '1', N2: '2', N3: '3', N4: '4',
	N5: '5', N6: '6', N7: '7', N8: '8', N9: '9',
}

var digitShiftASCII = map[Code]rune{
	N1: '!', N2: '@', N3: '#', N4: '$', N5: '%',
	N6: '^', N7: '&', N8: '*', N9: '(', N0: ')',
}

var punctASCII = map[Code]rune{
	Dot: '.', Comma: ',', Slash: '/', Semicolon: ';', Quote: '\'',
	LBracket: '[', RBracket: ']', Backslash: '\\', Minus: '-',
	Equal: '=', Backquote: '`', Space: ' ', Return: '\n', Enter: '\n',
	Tab: '\t',
}

var punctShiftASCII = map[Code]rune{
	Dot: '>', Comma: '<', Slash: '?', Semicolon: ':', Quote: '"',
	LBracket: '{', RBracket: '}', Backslash: '|', Minus: '_',
	Equal: '+', Backquote: '~', Space: ' ', Return: '\n', Enter: '\n',
	Tab: '\t',
}

var asciiToCode map[rune]codeShift

type codeShift struct {
	code  Code
	shift bool
}

func init() {
	asciiToCode = make(map[rune]codeShift, len(letterASCII)+len(digitASCII)+len(digitShiftASCII)+len(punctASCII)+len(punctShiftASCII))
	for code, ch := range letterASCII {
		asciiToCode[ch] = codeShift{code, false}
	}
	for code, ch := range digitASCII {
		asciiToCode[ch] = codeShift{code, false}
	}
	for code, ch := range punctASCII {
		asciiToCode[ch] = codeShift{code, false}
	}
	for code, ch := range digitShiftASCII {
		asciiToCode[ch] = codeShift{code, true}
	}
	for code, ch := range punctShiftASCII {
		if _, exists := asciiToCode[ch]; exists {
			continue
		}
		asciiToCode[ch] = codeShift{code, true}
	}
}

// FromASCII is the inverse of ASCII: given a rune a terminal or pipe would
// deliver (uppercase letters included), it returns the virtual keycode and
// shift state that would have produced it on an unmodified US layout. This
// lets a host that only has characters, not raw keycodes, drive the engine.
func FromASCII(ch rune) (key Code, shift bool, ok bool) {
	if ch >= 'A' && ch <= 'Z' {
		cs, ok := asciiToCode[ch-'A'+'a']
		return cs.code, true, ok
	}
	cs, ok := asciiToCode[ch]
	return cs.code, cs.shift, ok
}

// ASCII maps a virtual keycode plus shift state to the ASCII rune an
// unmodified US keyboard layout would produce. Letter keys always come back
// lowercase — callers apply case separately via the caps/shift-letter
// convention the engine uses for Vietnamese casing. ok is false for keys with
// no direct ASCII rendering (navigation keys, Esc, Delete).
func ASCII(key Code, shift bool) (ch rune, ok bool) {
	if ch, ok = letterASCII[key]; ok {
		return ch, true
	}
	if shift {
		if ch, ok = digitShiftASCII[key]; ok {
			return ch, true
		}
		if ch, ok = punctShiftASCII[key]; ok {
			return ch, true
		}
	}
	if ch, ok = digitASCII[key]; ok {
		return ch, true
	}
	if ch, ok = punctASCII[key]; ok {
		return ch, true
	}
	return 0, false
}
