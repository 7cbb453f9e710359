package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.toml")
	data := `
[game]
level = "crypt"
debug = true

[logging]
level = "debug"
development = true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game.Level != "crypt" || !cfg.Game.Debug {
		t.Fatalf("game section not applied: %+v", cfg.Game)
	}
	if cfg.Game.TPS != 60 || cfg.Window.Width != 960 {
		t.Fatalf("defaults should survive: %+v", cfg)
	}
	if !cfg.Logging.Development || cfg.Logging.Level != "debug" {
		t.Fatalf("logging section not applied: %+v", cfg.Logging)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	cases := []struct {
		name string
		path string
	}{
		{"missing_explicit_file", filepath.Join(dir, "absent.toml")},
		{"bad_syntax", write("bad.toml", "[game\nlevel = 1")},
		{"bad_tps", write("tps.toml", "[game]\ntps = 0\n")},
		{"bad_level", write("level.toml", "[logging]\nlevel = \"loud\"\n")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.path); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestMissingDefaultPathUsesDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(DefaultPath)
	if err != nil {
		t.Fatalf("missing default config should not fail: %v", err)
	}
	if cfg.Game.Level != "dungeon" {
		t.Fatalf("expected defaults, got %+v", cfg.Game)
	}
}

func TestNewLogger(t *testing.T) {
	for _, dev := range []bool{false, true} {
		log, err := LoggingConfig{Level: "warn", Development: dev}.NewLogger()
		if err != nil {
			t.Fatalf("dev=%v: %v", dev, err)
		}
		if log.Core().Enabled(-1) {
			t.Fatalf("debug should be disabled at warn level")
		}
		_ = log.Sync()
	}
	if _, err := (LoggingConfig{Level: "chatty"}).NewLogger(); err == nil {
		t.Fatalf("unknown level should fail")
	}
}
