package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

func TestLoadCatalogFromEmbedded(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = old })

	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if cat.Player.Health != 3 || cat.Player.MoveSpeed != 100 || cat.Player.ThrowSpeed != 300 {
		t.Fatalf("unexpected player tuning %+v", cat.Player)
	}
	if cat.Player.RecoverMS != 250 || cat.Player.AnimPrefix != "faune" {
		t.Fatalf("unexpected player presentation %+v", cat.Player)
	}
	if cat.Weapon.Capacity != 3 {
		t.Fatalf("expected knife capacity 3, got %d", cat.Weapon.Capacity)
	}
	if cat.Enemy.Speed != 50 || cat.Enemy.Direction != "right" {
		t.Fatalf("unexpected lizard %+v", cat.Enemy)
	}
	if cat.Loot.Coins <= 0 {
		t.Fatalf("chest should hold coins")
	}
	if cat.Player.Color.A != 255 {
		t.Fatalf("player color should be opaque, got %+v", cat.Player.Color)
	}
}

func TestDiskOverridesEmbedded(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = old })

	if err := os.WriteFile(filepath.Join(Dir, "chest.yaml"), []byte("name: chest\ncoins: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec, err := LoadSpec[LootSpec]("prefabs/chest.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Coins != 7 {
		t.Fatalf("expected disk override, got %d coins", spec.Coins)
	}
}

func TestLoadSpecErrors(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = old })

	if _, err := LoadSpec[LootSpec]("nope.yaml"); err == nil {
		t.Fatalf("missing prefab should fail")
	}
	if err := os.WriteFile(filepath.Join(Dir, "chest.yaml"), []byte("color: [1, 2]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSpec[LootSpec]("chest.yaml"); err == nil {
		t.Fatalf("non-scalar color should fail")
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}, false},
		{"00ff0080", color.NRGBA{G: 255, A: 128}, false},
		{"#12345", color.NRGBA{}, true},
		{"#gg0000", color.NRGBA{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err=%v wantErr=%v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

func TestScriptPaths(t *testing.T) {
	cases := map[string]string{
		"wander.tengo":                 "scripts/wander.tengo",
		"scripts/wander.tengo":         "scripts/wander.tengo",
		"prefabs/scripts/wander.tengo": "scripts/wander.tengo",
	}
	for in, want := range cases {
		if got := cleanScriptPath(in); got != want {
			t.Fatalf("cleanScriptPath(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := LoadScript("wander.tengo"); err != nil {
		t.Fatalf("embedded script: %v", err)
	}
}

func TestWatcherReportsPrefabWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(zaptest.NewLogger(t), dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(dir, "lizard.yaml")
	if err := os.WriteFile(target, []byte("speed: 80\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != target {
			t.Fatalf("expected %s, got %s", target, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no event for %s", target)
	}
}

func TestWatched(t *testing.T) {
	for path, want := range map[string]bool{
		"prefabs/player.yaml":          true,
		"prefabs/scripts/wander.tengo": true,
		"prefabs/README.md":            false,
		"level.YML":                    true,
	} {
		if got := Watched(path); got != want {
			t.Fatalf("Watched(%q) = %v, want %v", path, got, want)
		}
	}
}
