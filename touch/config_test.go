package touch

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "touch.yaml")
	conf := `bus: "1"
addr: 0x15
int_pin: GPIO4
reset_pin: GPIO17
reset_hold_ms: 25
poll_ms: 50
`
	if err := os.WriteFile(path, []byte(conf), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Bus != "1" || cfg.Addr != 0x15 || cfg.IntPin != "GPIO4" || cfg.ResetPin != "GPIO17" {
		t.Errorf("wiring %+v not preserved", cfg)
	}
	if cfg.ResetHoldMs != 25 {
		t.Errorf("reset hold %d, want 25", cfg.ResetHoldMs)
	}
	if cfg.ResetSettleMs != 0 {
		t.Errorf("reset settle %d, want driver default 0", cfg.ResetSettleMs)
	}
	if cfg.PollMs != 50 {
		t.Errorf("poll %d, want 50", cfg.PollMs)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "touch.yaml")
	if err := os.WriteFile(path, []byte("addr: 0x15\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IntPin != "GPIO4" || cfg.ResetPin != "GPIO17" || cfg.PollMs != 100 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigBad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "touch.yaml")
	if err := os.WriteFile(path, []byte("bus: [unterminated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("malformed config accepted")
	}
}
