package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/phanxgames/starfield"
	"github.com/phanxgames/starfield/internal/playlist"
)

const (
	appName        = "starfield"
	configFileName = "config.toml"
)

type Config struct {
	LogLevel string `koanf:"log_level"` // "debug", "info", "warn" or "error" (default: "info")

	Window   WindowConfig   `koanf:"window"`
	Target   TargetConfig   `koanf:"target"`
	Stars    StarsConfig    `koanf:"stars"`
	Gesture  GestureConfig  `koanf:"gesture"`
	Palette  PaletteConfig  `koanf:"palette"`
	Playlist PlaylistConfig `koanf:"playlist"`
}

// WindowConfig holds desktop window settings.
type WindowConfig struct {
	Title     string `koanf:"title"`
	Width     int    `koanf:"width"`
	Height    int    `koanf:"height"`
	FPS       bool   `koanf:"fps"`
	Resizable *bool  `koanf:"resizable"` // default: true
}

// TargetConfig overrides the clickable star. Zero values keep the defaults.
type TargetConfig struct {
	Name             string  `koanf:"name"`
	Link             string  `koanf:"link"`
	X                float64 `koanf:"x"`
	YRatio           float64 `koanf:"y_ratio"`
	Margin           float64 `koanf:"margin"`
	ActivationRadius float64 `koanf:"activation_radius"`
	GlowRadius       float64 `koanf:"glow_radius"`
	GlowGradient     float64 `koanf:"glow_gradient"`
	HoverDuration    float32 `koanf:"hover_duration"` // seconds; default 0 snaps
}

// StarsConfig overrides star density.
type StarsConfig struct {
	NarrowThreshold float64 `koanf:"narrow_threshold"`
	NarrowCount     int     `koanf:"narrow_count"`
	WideCount       int     `koanf:"wide_count"`
	UseOpacity      *bool   `koanf:"use_opacity"` // default: true
}

// GestureConfig overrides the gesture thresholds, in logical pixels.
type GestureConfig struct {
	HorizontalThreshold float64 `koanf:"horizontal_threshold"`
	DominanceMargin     float64 `koanf:"dominance_margin"`
	VerticalThreshold   float64 `koanf:"vertical_threshold"`
	TapSlop             float64 `koanf:"tap_slop"`
}

// ColorSpec is a hex color plus an optional alpha. A zero Alpha keeps the
// default color's alpha.
type ColorSpec struct {
	Hex   string  `koanf:"hex"` // "#rrggbb" or "#rgb"
	Alpha float64 `koanf:"alpha"`
}

// PaletteConfig overrides scene colors. Empty entries keep the defaults.
type PaletteConfig struct {
	Background ColorSpec `koanf:"background"`
	Line       ColorSpec `koanf:"line"`
	StarGlow   ColorSpec `koanf:"star_glow"`
	StarCore   ColorSpec `koanf:"star_core"`
	TargetGlow ColorSpec `koanf:"target_glow"`
	TargetRing ColorSpec `koanf:"target_ring"`
	TargetCore ColorSpec `koanf:"target_core"`
}

// PlaylistConfig replaces the built-in track list when Tracks is non-empty.
type PlaylistConfig struct {
	Tracks   []TrackConfig `koanf:"tracks"`
	AudioDir string        `koanf:"audio_dir"` // base for relative audio_src paths
}

// TrackConfig is one playlist entry.
type TrackConfig struct {
	Title       string `koanf:"title"`
	Artist      string `koanf:"artist"`
	Year        int    `koanf:"year"`
	ReleaseDate string `koanf:"release_date"`
	AudioSrc    string `koanf:"audio_src"`
}

// Load reads config files from the standard search paths. Missing files are
// skipped; a file that exists but fails to parse is an error.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order, later files overriding
// earlier ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Playlist.AudioDir != "" {
		cfg.Playlist.AudioDir = expandPath(cfg.Playlist.AudioDir)
	}
	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/starfield/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./config.toml (pwd, highest priority)
		configFileName,
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetWindowConfig returns the window settings with defaults applied.
func (c *Config) GetWindowConfig() WindowConfig {
	w := c.Window
	if w.Title == "" {
		w.Title = "Starfield"
	}
	if w.Width <= 0 {
		w.Width = 960
	}
	if w.Height <= 0 {
		w.Height = 600
	}
	if w.Resizable == nil {
		t := true
		w.Resizable = &t
	}
	return w
}

// GetLogLevel parses LogLevel, defaulting to info.
func (c *Config) GetLogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SceneConfig merges the overrides onto starfield.DefaultSceneConfig.
func (c *Config) SceneConfig() (starfield.SceneConfig, error) {
	sc := starfield.DefaultSceneConfig()

	t := c.Target
	setString(&sc.Target.Name, t.Name)
	setString(&sc.Target.Link, t.Link)
	setFloat(&sc.Target.X, t.X)
	if t.YRatio > 0 && t.YRatio < 1 {
		sc.Target.YRatio = t.YRatio
	}
	setFloat(&sc.Target.Margin, t.Margin)
	setFloat(&sc.Target.ActivationRadius, t.ActivationRadius)
	setFloat(&sc.Target.GlowRadius, t.GlowRadius)
	setFloat(&sc.Target.GlowGradient, t.GlowGradient)
	if t.HoverDuration > 0 {
		sc.Target.HoverDuration = t.HoverDuration
	}
	if sc.Target.GlowGradient < sc.Target.GlowRadius {
		return sc, fmt.Errorf("target: glow_gradient %v is smaller than glow_radius %v",
			sc.Target.GlowGradient, sc.Target.GlowRadius)
	}

	s := c.Stars
	setFloat(&sc.Stars.NarrowThreshold, s.NarrowThreshold)
	setInt(&sc.Stars.NarrowCount, s.NarrowCount)
	setInt(&sc.Stars.WideCount, s.WideCount)
	if s.UseOpacity != nil {
		sc.StarOpacity = *s.UseOpacity
	}

	g := c.Gesture
	setFloat(&sc.Gesture.HorizontalThreshold, g.HorizontalThreshold)
	setFloat(&sc.Gesture.DominanceMargin, g.DominanceMargin)
	setFloat(&sc.Gesture.VerticalThreshold, g.VerticalThreshold)
	setFloat(&sc.Gesture.TapSlop, g.TapSlop)

	p := c.Palette
	for _, e := range []struct {
		name string
		spec ColorSpec
		dst  *starfield.Color
	}{
		{"background", p.Background, &sc.Palette.Background},
		{"line", p.Line, &sc.Palette.Line},
		{"star_glow", p.StarGlow, &sc.Palette.StarGlow},
		{"star_core", p.StarCore, &sc.Palette.StarCore},
		{"target_glow", p.TargetGlow, &sc.Palette.TargetGlow},
		{"target_ring", p.TargetRing, &sc.Palette.TargetRing},
		{"target_core", p.TargetCore, &sc.Palette.TargetCore},
	} {
		col, err := e.spec.apply(*e.dst)
		if err != nil {
			return sc, fmt.Errorf("palette.%s: %w", e.name, err)
		}
		*e.dst = col
	}

	return sc, nil
}

// Tracks returns the configured playlist, or the built-in one when none is
// configured. Relative audio paths are resolved against AudioDir.
func (c *Config) Tracks() []playlist.Track {
	if len(c.Playlist.Tracks) == 0 {
		tracks := playlist.DefaultTracks()
		for i := range tracks {
			tracks[i].AudioSrc = c.resolveAudio(tracks[i].AudioSrc)
		}
		return tracks
	}
	tracks := make([]playlist.Track, 0, len(c.Playlist.Tracks))
	for _, t := range c.Playlist.Tracks {
		tracks = append(tracks, playlist.Track{
			Title:       t.Title,
			Artist:      t.Artist,
			Year:        t.Year,
			ReleaseDate: t.ReleaseDate,
			AudioSrc:    c.resolveAudio(t.AudioSrc),
		})
	}
	return tracks
}

func (c *Config) resolveAudio(src string) string {
	if src == "" || c.Playlist.AudioDir == "" || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(c.Playlist.AudioDir, src)
}

// apply parses the spec over base. An empty Hex keeps base's color.
func (cs ColorSpec) apply(base starfield.Color) (starfield.Color, error) {
	out := base
	if cs.Hex != "" {
		col, err := ParseHex(cs.Hex)
		if err != nil {
			return base, err
		}
		out.R, out.G, out.B = col.R, col.G, col.B
	}
	if cs.Alpha > 0 {
		out.A = min(cs.Alpha, 1)
	}
	return out, nil
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHex(hex string) (starfield.Color, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return starfield.Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	c = c.Clamped()
	return starfield.Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
