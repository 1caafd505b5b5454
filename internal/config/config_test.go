package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/starfield"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"tilde expands to home", "~/music", filepath.Join(home, "music")},
		{"absolute path unchanged", "/usr/local/music", "/usr/local/music"},
		{"relative path unchanged", "music/albums", "music/albums"},
		{"empty string unchanged", "", ""},
		{"tilde only", "~", home},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandPath(tt.input))
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()
	require.Len(t, paths, 2)
	assert.Equal(t, "config.toml", paths[len(paths)-1])
	assert.Equal(t, filepath.Join("starfield", "config.toml"), filepath.Join(filepath.Base(filepath.Dir(paths[0])), filepath.Base(paths[0])))
}

func TestLoadFrom_MissingFilesAreSkipped(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	sc, err := cfg.SceneConfig()
	require.NoError(t, err)
	assert.Equal(t, starfield.DefaultSceneConfig().Target, sc.Target)
	assert.Equal(t, starfield.DefaultPalette(), sc.Palette)
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "window = [unterminated")
	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	a := writeConfig(t, t.TempDir(), "[window]\ntitle = \"first\"\nwidth = 800\n")
	b := writeConfig(t, t.TempDir(), "[window]\ntitle = \"second\"\n")

	cfg, err := LoadFrom(a, b)
	require.NoError(t, err)
	w := cfg.GetWindowConfig()
	assert.Equal(t, "second", w.Title)
	assert.Equal(t, 800, w.Width)
}

func TestSceneConfigOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
log_level = "debug"

[target]
name = "Test Star"
link = "https://example.com"
x = 500
y_ratio = 0.5
activation_radius = 30
hover_duration = 0.2

[stars]
narrow_count = 100
use_opacity = false

[gesture]
tap_slop = 6

[palette.background]
hex = "#000000"

[palette.target_glow]
hex = "#ff0000"
alpha = 0.5
`)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, cfg.GetLogLevel())

	sc, err := cfg.SceneConfig()
	require.NoError(t, err)

	assert.Equal(t, "Test Star", sc.Target.Name)
	assert.Equal(t, "https://example.com", sc.Target.Link)
	assert.Equal(t, 500.0, sc.Target.X)
	assert.Equal(t, 0.5, sc.Target.YRatio)
	assert.Equal(t, 30.0, sc.Target.ActivationRadius)
	assert.Equal(t, 24.0, sc.Target.GlowRadius, "unset keeps default")
	assert.InDelta(t, 0.2, sc.Target.HoverDuration, 1e-6)

	assert.Equal(t, 100, sc.Stars.NarrowCount)
	assert.Equal(t, 250, sc.Stars.WideCount)
	assert.False(t, sc.StarOpacity)
	assert.Equal(t, 6.0, sc.Gesture.TapSlop)
	assert.Equal(t, 6.0, sc.Gesture.HorizontalThreshold)

	assert.Equal(t, starfield.Color{R: 0, G: 0, B: 0, A: 1}, sc.Palette.Background)
	assert.Equal(t, starfield.Color{R: 1, G: 0, B: 0, A: 0.5}, sc.Palette.TargetGlow)
	assert.Equal(t, starfield.DefaultPalette().StarCore, sc.Palette.StarCore)
}

func TestSceneConfigDefaultHoverSnaps(t *testing.T) {
	sc, err := (&Config{}).SceneConfig()
	require.NoError(t, err)
	assert.Zero(t, sc.Target.HoverDuration)
	assert.Equal(t, 1.1, sc.Target.HoverScale)
}

func TestSceneConfigBadColor(t *testing.T) {
	cfg := &Config{Palette: PaletteConfig{Line: ColorSpec{Hex: "#zzz"}}}
	_, err := cfg.SceneConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "palette.line")
}

func TestSceneConfigGlowOrder(t *testing.T) {
	cfg := &Config{Target: TargetConfig{GlowRadius: 40}}
	_, err := cfg.SceneConfig()
	assert.Error(t, err)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("8fd4ff")
	require.NoError(t, err)
	assert.InDelta(t, 143.0/255, c.R, 1e-9)
	assert.InDelta(t, 212.0/255, c.G, 1e-9)
	assert.InDelta(t, 1.0, c.B, 1e-9)
	assert.Equal(t, 1.0, c.A)

	c, err = ParseHex("#fff")
	require.NoError(t, err)
	assert.Equal(t, starfield.Color{R: 1, G: 1, B: 1, A: 1}, c)

	_, err = ParseHex("#gg0000")
	assert.Error(t, err)
}

func TestGetWindowConfigDefaults(t *testing.T) {
	w := (&Config{}).GetWindowConfig()
	assert.Equal(t, "Starfield", w.Title)
	assert.Equal(t, 960, w.Width)
	assert.Equal(t, 600, w.Height)
	require.NotNil(t, w.Resizable)
	assert.True(t, *w.Resizable)
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, (&Config{LogLevel: tt.in}).GetLogLevel(), tt.in)
	}
}

func TestTracks(t *testing.T) {
	cfg := &Config{}
	assert.Len(t, cfg.Tracks(), 8)

	cfg.Playlist.AudioDir = "/music"
	tracks := cfg.Tracks()
	assert.Equal(t, filepath.Join("/music", "assets/love_lockdown.mp3"), tracks[1].AudioSrc)

	cfg.Playlist.Tracks = []TrackConfig{
		{Title: "A", Artist: "B", Year: 2008, ReleaseDate: "2008-01-01", AudioSrc: "/abs/a.mp3"},
	}
	tracks = cfg.Tracks()
	require.Len(t, tracks, 1)
	assert.Equal(t, "/abs/a.mp3", tracks[0].AudioSrc)
	assert.Equal(t, "A", tracks[0].Title)
}
