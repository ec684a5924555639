package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/oomph-ac/museum/input"
	"github.com/oomph-ac/museum/movement"
	"github.com/sirupsen/logrus"
)

func TestSaveDefaultAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("unexpected error saving defaults: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected an error when the settings file already exists")
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error loading settings: %v", err)
	}
	cfg, err := s.MovementConfig()
	if err != nil {
		t.Fatalf("unexpected error building movement config: %v", err)
	}
	def := movement.DefaultConfig()
	if cfg.MoveSpeed != def.MoveSpeed || cfg.RotationSpeed != def.RotationSpeed || cfg.EyeHeight != def.EyeHeight {
		t.Fatalf("round tripped config %+v does not match defaults %+v", cfg, def)
	}
	km, err := s.Keymap()
	if err != nil {
		t.Fatalf("unexpected error building keymap: %v", err)
	}
	if km["w"] != input.ActionForward || km[" "] != input.ActionAscend || km["e"] != input.ActionInteract {
		t.Fatalf("unexpected keymap %v", km)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte(`
[Movement]
MoveSpeed = 0.5
CollisionResponse = "slide"

[Input.Keys]
i = "forward"
k = "backward"
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error loading settings: %v", err)
	}
	cfg, err := s.MovementConfig()
	if err != nil {
		t.Fatalf("unexpected error building movement config: %v", err)
	}
	if cfg.MoveSpeed != 0.5 || cfg.Response != movement.ResponseSlide {
		t.Fatalf("expected file values to apply, got %+v", cfg)
	}
	if cfg.EyeHeight != movement.DefaultConfig().EyeHeight {
		t.Fatalf("missing values should keep their defaults, got eye height %v", cfg.EyeHeight)
	}
	km, err := s.Keymap()
	if err != nil {
		t.Fatalf("unexpected error building keymap: %v", err)
	}
	if len(km) != 2 || km["i"] != input.ActionForward {
		t.Fatalf("expected file bindings to replace the defaults, got %v", km)
	}
}

func TestInvalidValues(t *testing.T) {
	s := DefaultSettings()
	s.Movement.CollisionResponse = "bounce"
	if _, err := s.MovementConfig(); err == nil {
		t.Fatalf("expected an error for an unknown collision response")
	}

	s = DefaultSettings()
	s.Movement.MoveSpeed = -1
	if _, err := s.MovementConfig(); err == nil {
		t.Fatalf("expected an error for a negative move speed")
	}

	s = DefaultSettings()
	s.Input.Keys = map[string]string{"q": "jump"}
	if _, err := s.Keymap(); err == nil {
		t.Fatalf("expected an error for an unknown action")
	}
}

func TestLogLevel(t *testing.T) {
	s := DefaultSettings()
	if l, err := s.LogLevel(); err != nil || l != logrus.InfoLevel {
		t.Fatalf("expected info level, got %v %v", l, err)
	}
	s.Debug.Enabled = true
	if l, _ := s.LogLevel(); l != logrus.DebugLevel {
		t.Fatalf("debug mode should force the debug level, got %v", l)
	}
	s.Debug.LogLevel = "loud"
	if _, err := s.LogLevel(); err == nil {
		t.Fatalf("expected an error for an unknown level")
	}
}
