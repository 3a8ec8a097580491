package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/hubastard/grove-toolkit/engine/ui"
)

// isolate points the config lookup at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("TOOLKITDEMO_CONFIG", "")
	return dir
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)
	got, used, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if used != "" {
		t.Fatalf("read unexpected file %q", used)
	}
	want := Config{
		Window: WindowConfig{
			Title:       "Grove UI Toolkit Demo",
			Width:       1280,
			Height:      800,
			VSync:       true,
			IdleTimeout: 500 * time.Millisecond,
		},
		UI:    UIConfig{FontSize: 18, Theme: "dark"},
		Debug: DebugConfig{ProfilerSamples: 1024},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, `
[window]
width = 1024
continuous = true
idle_timeout = "2s"

[ui]
theme = "light"
font_size = 22
`)
	t.Setenv("TOOLKITDEMO_CONFIG", path)
	t.Setenv("TOOLKITDEMO_WINDOW_WIDTH", "1600")
	t.Setenv("TOOLKITDEMO_DEBUG_OVERLAY", "true")

	got, used, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if used != path {
		t.Fatalf("used %q, want %q", used, path)
	}
	if got.Window.Width != 1600 {
		t.Errorf("width = %d, want env override 1600", got.Window.Width)
	}
	if got.Window.Height != 800 {
		t.Errorf("height = %d, want default 800", got.Window.Height)
	}
	if !got.Window.Continuous || got.Window.IdleTimeout != 2*time.Second {
		t.Errorf("window = %+v", got.Window)
	}
	if got.UI.FontSize != 22 || got.Theme() != ui.ThemeLight {
		t.Errorf("ui = %+v", got.UI)
	}
	if !got.Debug.Overlay {
		t.Error("debug overlay env override ignored")
	}

	cc := got.Core()
	if cc.Width != 1600 || !cc.Continuous || cc.ClearColor != [4]float32(ui.LightVisuals().Background) {
		t.Errorf("core config = %+v", cc)
	}
}

func TestLoadConfigFromUserConfigDir(t *testing.T) {
	dir := isolate(t)
	sub := filepath.Join(dir, "grove-toolkit")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	path := writeConfig(t, sub, "[ui]\ntheme = \"light\"\n")
	got, used, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if used != path || got.UI.Theme != "light" {
		t.Fatalf("used=%q theme=%q", used, got.UI.Theme)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		body string
	}{
		{"unknown theme", "[ui]\ntheme = \"sepia\"\n"},
		{"tiny font", "[ui]\nfont_size = 2\n"},
		{"zero width", "[window]\nwidth = 0\n"},
		{"malformed", "[window\nwidth = "},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dir := isolate(t)
			t.Setenv("TOOLKITDEMO_CONFIG", writeConfig(t, dir, tc.body))
			if _, _, err := LoadConfig(); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("TOOLKITDEMO_CONFIG", filepath.Join(dir, "nope.toml"))
	if _, _, err := LoadConfig(); err == nil {
		t.Fatal("missing explicit config file was not reported")
	}
}
