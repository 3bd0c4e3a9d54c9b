package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Player.Size != 20 {
		t.Errorf("player size = %v, want 20", cfg.Player.Size)
	}
	if cfg.Spawn.Chance != 0.02 {
		t.Errorf("spawn chance = %v, want 0.02", cfg.Spawn.Chance)
	}
	if len(cfg.Derived.Palette) != 5 {
		t.Fatalf("palette size = %d, want 5", len(cfg.Derived.Palette))
	}
	if cfg.Derived.TickInterval != time.Second/60 {
		t.Errorf("tick interval = %v, want %v", cfg.Derived.TickInterval, time.Second/60)
	}
	want := color.RGBA{R: 0xFF, G: 0x6B, B: 0x6B, A: 255}
	if cfg.Derived.PlayerColor != want {
		t.Errorf("player color = %v, want %v", cfg.Derived.PlayerColor, want)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("spawn:\n  max_fish: 12\ntick:\n  rate: 30\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Spawn.MaxFish != 12 {
		t.Errorf("max fish = %d, want 12", cfg.Spawn.MaxFish)
	}
	if cfg.Spawn.Chance != 0.02 {
		t.Errorf("spawn chance should keep default, got %v", cfg.Spawn.Chance)
	}
	if cfg.Derived.TickInterval != time.Second/30 {
		t.Errorf("tick interval = %v, want %v", cfg.Derived.TickInterval, time.Second/30)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero tick rate", "tick:\n  rate: 0\n"},
		{"bad palette color", "spawn:\n  palette: [\"#12345\"]\n"},
		{"bad player color", "player:\n  color: \"#GGGGGG\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#4ECDC4", color.RGBA{R: 0x4E, G: 0xCD, B: 0xC4, A: 255}, true},
		{"45B7D1", color.RGBA{R: 0x45, G: 0xB7, B: 0xD1, A: 255}, true},
		{"#FFF", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("ParseHexColor(%q) err = %v, want ok=%v", tt.in, err, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Defaults()
	cfg.Spawn.MaxFish = 77

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Spawn.MaxFish != 77 {
		t.Errorf("max fish = %d, want 77", loaded.Spawn.MaxFish)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}
