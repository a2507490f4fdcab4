// Package config loads host configuration from an ini file using
// github.com/go-ini/ini, the same library and "best-effort defaults,
// explicit error only on malformed file" contract the teacher repository
// uses in pkg/config.Load.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	ini "github.com/go-ini/ini"

	"gonhanh/internal/flags"
)

// EngineConfig is the [engine] section, mapping 1:1 onto the ime_* setter
// functions spec §6 names.
type EngineConfig struct {
	Method                 string
	ModernTone             bool
	FreeTone               bool
	SkipWShortcut          bool
	BracketShortcut        bool
	EnglishAutoRestore     bool
	AutoCapitalize         bool
	AllowForeignConsonants bool
}

// Shortcut is one trigger = replacement pair from the [shortcuts] section.
type Shortcut struct {
	Trigger     string
	Replacement string
}

// Shortcuts is the [shortcuts] section: free-form trigger = replacement
// pairs, kept in file order since that order is the spec's tiebreak for
// equal-length triggers (the same order shortcut.Table preserves).
type Shortcuts []Shortcut

// Config is everything loaded from one ini file.
type Config struct {
	Engine    EngineConfig
	Shortcuts Shortcuts
}

func defaultConfig() Config {
	return Config{
		Engine: EngineConfig{
			Method:     "telex",
			ModernTone: true,
		},
	}
}

// Load reads path and returns the parsed Config. A missing path is not an
// error — the defaults are returned instead, matching
// pkg/config.Load's and internal/config.ResolveToggleConfig's convention.
// A malformed file (present but unparsable, or a directory) is an error.
func Load(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	engine := file.Section("engine")
	cfg.Engine.Method = engine.Key("method").MustString(cfg.Engine.Method)
	cfg.Engine.ModernTone = engine.Key("modern_tone").MustBool(cfg.Engine.ModernTone)
	cfg.Engine.FreeTone = engine.Key("free_tone").MustBool(cfg.Engine.FreeTone)
	cfg.Engine.SkipWShortcut = engine.Key("skip_w_shortcut").MustBool(cfg.Engine.SkipWShortcut)
	cfg.Engine.BracketShortcut = engine.Key("bracket_shortcut").MustBool(cfg.Engine.BracketShortcut)
	cfg.Engine.EnglishAutoRestore = engine.Key("english_auto_restore").MustBool(cfg.Engine.EnglishAutoRestore)
	cfg.Engine.AutoCapitalize = engine.Key("auto_capitalize").MustBool(cfg.Engine.AutoCapitalize)
	cfg.Engine.AllowForeignConsonants = engine.Key("allow_foreign_consonants").MustBool(cfg.Engine.AllowForeignConsonants)

	if sec, err := file.GetSection("shortcuts"); err == nil {
		for _, key := range sec.Keys() {
			cfg.Shortcuts = append(cfg.Shortcuts, Shortcut{Trigger: key.Name(), Replacement: key.Value()})
		}
	}

	return cfg, nil
}

// Apply pushes a loaded Config onto an engine, using the exact setters
// spec §6 names.
func Apply(e Applier, cfg Config) {
	switch cfg.Engine.Method {
	case "vni":
		e.SetMethod(flags.VNI)
	default:
		e.SetMethod(flags.Telex)
	}
	e.SetModern(cfg.Engine.ModernTone)
	e.SetFreeTone(cfg.Engine.FreeTone)
	e.SetSkipWShortcut(cfg.Engine.SkipWShortcut)
	e.SetBracketShortcut(cfg.Engine.BracketShortcut)
	e.SetEnglishAutoRestore(cfg.Engine.EnglishAutoRestore)
	e.SetAutoCapitalize(cfg.Engine.AutoCapitalize)
	e.SetAllowForeignConsonants(cfg.Engine.AllowForeignConsonants)
	for _, s := range cfg.Shortcuts {
		e.AddShortcut(s.Trigger, s.Replacement)
	}
}

// Applier is the subset of *engine.Engine's API Apply needs, kept as an
// interface so this package does not import internal/engine back.
type Applier interface {
	SetMethod(flags.Method)
	SetModern(bool)
	SetFreeTone(bool)
	SetSkipWShortcut(bool)
	SetBracketShortcut(bool)
	SetEnglishAutoRestore(bool)
	SetAutoCapitalize(bool)
	SetAllowForeignConsonants(bool)
	AddShortcut(trigger, replacement string) bool
}
