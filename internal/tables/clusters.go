package tables

// Initials is the set of permitted Vietnamese initial consonant clusters
// (spec §4.1), keyed by their lowercase ASCII spelling. q never appears
// alone — only as the "qu" cluster, where u is a medial glide rather than
// part of the nucleus.
var Initials = map[string]bool{
	"b": true, "c": true, "d": true, "g": true, "h": true, "k": true,
	"l": true, "m": true, "n": true, "p": true, "r": true, "s": true,
	"t": true, "v": true, "x": true,
	"ch": true, "gh": true, "gi": true, "kh": true, "ng": true,
	"ngh": true, "nh": true, "ph": true, "qu": true, "th": true, "tr": true,
}

// ForeignInitials is added to the permitted initial set only when the
// engine's AllowForeignConsonants flag is set (spec §6's
// ime_allow_foreign_consonants); z, w, j, f are not native Vietnamese
// initials but appear in loanwords and brand names.
var ForeignInitials = map[string]bool{
	"z": true, "w": true, "j": true, "f": true,
}

// Finals is the set of permitted Vietnamese final consonants.
var Finals = map[string]bool{
	"c": true, "ch": true, "m": true, "n": true, "ng": true,
	"nh": true, "p": true, "t": true,
}

// FrontVowels are the vowels that force c/k, g/gh, ng/ngh spelling splits
// (spec §4.4 rule 4): k, gh, ngh precede these; c, g, ng precede everything
// else.
var FrontVowels = map[rune]bool{
	'e': true, 'ê': true, 'i': true, 'y': true,
}
