// Command starfield opens the panning night sky in a window, with the 2008
// playlist on the number keys.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/starfield"
	"github.com/phanxgames/starfield/internal/config"
	"github.com/phanxgames/starfield/internal/playlist"
)

const (
	panelLineHeight = 16
	panelMargin     = 8
)

func main() {
	if err := run(); err != nil {
		slog.Error("starfield", "error", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "config file (default: XDG config dir, then ./config.toml)")
		list       = flag.Bool("list", false, "print the playlist and exit")
		debug      = flag.Bool("debug", false, "log scene stats and gesture transitions to stderr")
		showFPS    = flag.Bool("fps", false, "show the FPS overlay")
		scriptPath = flag.String("script", "", "JSON input script to replay, exiting when it finishes")
		shotDir    = flag.String("screenshots", "screenshots", "directory for script screenshots")
	)
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	level := cfg.GetLogLevel()
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	tracks := cfg.Tracks()
	if *list {
		fmt.Println(playlist.Render(tracks, time.Now()))
		return nil
	}

	sceneCfg, err := cfg.SceneConfig()
	if err != nil {
		return fmt.Errorf("scene config: %w", err)
	}
	scene := starfield.NewScene(sceneCfg)
	scene.SetDebugMode(*debug)
	scene.ScreenshotDir = *shotDir
	scene.SetLinkOpener(starfield.LinkOpenerFunc(func(url string) error {
		slog.Info("opening link", "url", url)
		return openLink(url)
	}))
	scene.OnTap(func(ctx starfield.TapContext) {
		slog.Debug("tap", "x", ctx.X, "y", ctx.Y, "world_x", ctx.WorldX, "hit", ctx.Hit)
	})
	scene.OnIntent(func(ctx starfield.IntentContext) {
		slog.Debug("gesture", "pointer", ctx.PointerID, "from", ctx.From, "to", ctx.To)
	})

	var runner *starfield.TestRunner
	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		runner, err = starfield.LoadTestScript(data)
		if err != nil {
			return err
		}
		scene.SetTestRunner(runner)
	}

	player := playlist.NewPlayer(tracks)
	defer player.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	win := cfg.GetWindowConfig()
	slog.Info("starting",
		"title", win.Title, "size", fmt.Sprintf("%dx%d", win.Width, win.Height),
		"target", sceneCfg.Target.Name, "tracks", len(tracks))

	err = starfield.RunContext(ctx, scene, starfield.RunConfig{
		Title:     win.Title,
		Width:     win.Width,
		Height:    win.Height,
		ShowFPS:   win.FPS || *showFPS,
		Resizable: *win.Resizable,
		OnUpdate: func() error {
			handlePlaylistKeys(player)
			if runner != nil && runner.Done() {
				return ebiten.Termination
			}
			return nil
		},
		OnDraw: func(screen *ebiten.Image) {
			drawPanel(screen, player)
		},
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	slog.Info("stopped", "frames", scene.Frame())
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		return config.LoadFrom(path)
	}
	return config.Load()
}

// handlePlaylistKeys maps keys 1-9 to tracks. Pressing the key of the
// loaded track pauses or resumes it.
func handlePlaylistKeys(p *playlist.Player) {
	n := min(len(p.Tracks()), 9)
	for i := 0; i < n; i++ {
		if !inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			continue
		}
		if err := p.Play(i); err != nil {
			slog.Warn("playlist", "track", i+1, "error", err)
			continue
		}
		t := p.Tracks()[i]
		slog.Info("playlist", "track", t.Title, "artist", t.Artist, "state", p.State())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.Stop()
	}
}

// drawPanel prints the playlist in the bottom-left corner.
func drawPanel(screen *ebiten.Image, p *playlist.Player) {
	lines := playlist.PanelLines(p.Tracks(), p.Current(), p.State())
	y := screen.Bounds().Dy() - panelMargin - len(lines)*panelLineHeight
	for _, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, panelMargin, y)
		y += panelLineHeight
	}
}
