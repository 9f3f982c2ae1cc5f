package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tonhe/bwbar/internal/engine"
	"github.com/tonhe/bwbar/internal/render"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Theme != "solarized-dark" {
		t.Errorf("expected default theme 'solarized-dark', got %q", cfg.Theme)
	}
	if cfg.Refresh != 1 {
		t.Errorf("expected refresh 1, got %d", cfg.Refresh)
	}
	if cfg.Unit != "B" {
		t.Errorf("expected unit B, got %q", cfg.Unit)
	}
	if cfg.Color != "none" {
		t.Errorf("expected color none, got %q", cfg.Color)
	}
	if cfg.MaxHistory != 120 {
		t.Errorf("expected max history 120, got %d", cfg.MaxHistory)
	}
}

func TestConfigSaveLoad(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "config.toml")

	cfg := DefaultConfig()
	cfg.Theme = "dracula"
	cfg.Interfaces = []string{"eth0", "wlan0"}
	cfg.WarnRx = 1000

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.Theme != "dracula" {
		t.Errorf("expected theme 'dracula', got %q", loaded.Theme)
	}
	if !reflect.DeepEqual(loaded.Interfaces, []string{"eth0", "wlan0"}) {
		t.Errorf("unexpected interfaces %v", loaded.Interfaces)
	}
	if loaded.WarnRx != 1000 {
		t.Errorf("expected warn_rx 1000, got %d", loaded.WarnRx)
	}
}

func TestConfigLoadMissing(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("LoadConfig() should return defaults for missing file, got error: %v", err)
	}
	if cfg.Theme != "solarized-dark" {
		t.Errorf("expected default theme, got %q", cfg.Theme)
	}
}

func TestConfigLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := "interfaces = [\" eth0 \", \"\", \"averyveryverylongname0\"]\nunit = \"b\"\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	want := []string{"eth0", "averyveryverylo"}
	if !reflect.DeepEqual(cfg.Interfaces, want) {
		t.Errorf("expected %v, got %v", want, cfg.Interfaces)
	}
	if cfg.Unit != "b" || cfg.Refresh != 1 {
		t.Errorf("unexpected unit/refresh %q/%d", cfg.Unit, cfg.Refresh)
	}
}

func TestConfigLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("refresh = \"soon\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseInterfaces(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"eth0,wlan0", []string{"eth0", "wlan0"}},
		{" eth0 , ,wlan0,", []string{"eth0", "wlan0"}},
		{"", nil},
		{",,,", nil},
		{"enp0s31f6extra99", []string{"enp0s31f6extra9"}},
	}
	for _, tt := range tests {
		got := ParseInterfaces(tt.raw)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseInterfaces(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestParseInterfacesCap(t *testing.T) {
	names := make([]string, 40)
	for i := range names {
		names[i] = "eth" + string(rune('a'+i%26))
	}
	got := ParseInterfaces(strings.Join(names, ","))
	if len(got) != MaxInterfaces {
		t.Errorf("expected %d interfaces, got %d", MaxInterfaces, len(got))
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Interfaces = []string{"eth0"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}

	cfg = DefaultConfig()
	if err := cfg.Validate(); !errors.Is(err, ErrNoInterfaces) {
		t.Errorf("expected ErrNoInterfaces, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WifiOnly = true
	cfg.EthOnly = true
	cfg.Refresh = 0
	cfg.Unit = "x"
	cfg.Color = "rainbow"
	cfg.Theme = "nope"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected errors")
	}
	if !errors.Is(err, ErrNoInterfaces) || !errors.Is(err, ErrConflictingFilters) {
		t.Errorf("missing sentinel errors in %v", err)
	}
	for _, frag := range []string{"refresh", "unit", "color", "theme"} {
		if !strings.Contains(err.Error(), frag) {
			t.Errorf("expected %q in %v", frag, err)
		}
	}
}

func TestFilter(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Filter() != engine.FilterNone {
		t.Error("expected no filter")
	}
	cfg.WifiOnly = true
	if cfg.Filter() != engine.FilterWirelessOnly {
		t.Error("expected wireless-only filter")
	}
	cfg.WifiOnly, cfg.EthOnly = false, true
	if cfg.Filter() != engine.FilterWiredOnly {
		t.Error("expected wired-only filter")
	}
}

func TestRenderOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Unit = "b"
	cfg.SI = true
	cfg.CritTx = 9
	opts := cfg.RenderOptions()
	if opts.Unit != render.UnitBits || opts.Divisor != render.DivisorSI {
		t.Errorf("unexpected unit/divisor %c/%d", opts.Unit, opts.Divisor)
	}
	if opts.Thresholds.CritTx != 9 {
		t.Errorf("expected crit tx 9, got %d", opts.Thresholds.CritTx)
	}
	if d := DefaultConfig().RenderOptions(); d.Unit != render.UnitBytes || d.Divisor != render.DivisorIEC {
		t.Errorf("unexpected defaults %+v", d)
	}
}
