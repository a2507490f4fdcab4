// Package flags holds the small bag of engine behaviour flags (spec §3's
// "Engine state... a bag of behaviour flags") that both the keystroke
// strategies (C6) and the orchestrator (C8) need to see, kept in its own
// package so neither has to import the other to share the type.
package flags

// Method selects the active keystroke convention.
type Method int

const (
	Telex Method = iota
	VNI
)

// Flags is the engine's full set of behaviour toggles, each one backed by
// an ime_* setter in spec §6.
type Flags struct {
	Method                  Method
	Enabled                 bool
	ModernTone              bool // ime_modern: hòa vs hoà placement
	FreeTone                bool // ime_free_tone: skip the validator, allow tone anywhere
	SkipWShortcut           bool // ime_skip_w_shortcut: disables Telex w -> ư
	BracketShortcut         bool // ime_bracket_shortcut: enables [ -> ơ, ] -> ư
	EnglishAutoRestore      bool // ime_english_auto_restore
	AutoCapitalize          bool // ime_auto_capitalize
	AllowForeignConsonants  bool // ime_allow_foreign_consonants: adds z, w, j, f to initials
}

// Default returns the engine's initial state (spec §6: "initial state:
// disabled off, method = Telex" — i.e. enabled).
func Default() Flags {
	return Flags{
		Method:     Telex,
		Enabled:    true,
		ModernTone: true,
	}
}
