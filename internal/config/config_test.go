package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempIni(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "vnimectl.ini")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadMissingPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Engine.Method != "telex" || !cfg.Engine.ModernTone {
		t.Errorf("defaults = %+v", cfg.Engine)
	}
}

func TestLoadParsesEngineSection(t *testing.T) {
	path := writeTempIni(t, `
[engine]
method = vni
modern_tone = false
free_tone = true
allow_foreign_consonants = true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Engine.Method != "vni" {
		t.Errorf("Method = %q, want vni", cfg.Engine.Method)
	}
	if cfg.Engine.ModernTone {
		t.Error("ModernTone = true, want false")
	}
	if !cfg.Engine.FreeTone || !cfg.Engine.AllowForeignConsonants {
		t.Errorf("FreeTone/AllowForeignConsonants = %+v", cfg.Engine)
	}
}

func TestLoadParsesShortcuts(t *testing.T) {
	path := writeTempIni(t, `
[shortcuts]
vn = Việt Nam
hcm = Hồ Chí Minh
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Shortcuts) != 2 {
		t.Fatalf("len(Shortcuts) = %d, want 2", len(cfg.Shortcuts))
	}
	if cfg.Shortcuts[0].Trigger != "vn" || cfg.Shortcuts[0].Replacement != "Việt Nam" {
		t.Errorf("Shortcuts[0] = %+v, want {vn Việt Nam}", cfg.Shortcuts[0])
	}
	if cfg.Shortcuts[1].Trigger != "hcm" || cfg.Shortcuts[1].Replacement != "Hồ Chí Minh" {
		t.Errorf("Shortcuts[1] = %+v, want {hcm Hồ Chí Minh}", cfg.Shortcuts[1])
	}
}

func TestLoadPreservesShortcutFileOrder(t *testing.T) {
	path := writeTempIni(t, `
[shortcuts]
abc = one
ab = two
a = three
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"abc", "ab", "a"}
	if len(cfg.Shortcuts) != len(want) {
		t.Fatalf("len(Shortcuts) = %d, want %d", len(cfg.Shortcuts), len(want))
	}
	for i, trigger := range want {
		if cfg.Shortcuts[i].Trigger != trigger {
			t.Errorf("Shortcuts[%d].Trigger = %q, want %q", i, cfg.Shortcuts[i].Trigger, trigger)
		}
	}
}

func TestLoadDirectoryIsError(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir); err == nil {
		t.Error("Load(dir) error = nil, want error")
	}
}
