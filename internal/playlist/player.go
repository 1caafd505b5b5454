package playlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

type State int

const (
	Stopped State = iota
	Playing
	Paused
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	default:
		return "stopped"
	}
}

// ErrNoTrack is returned by Play for an index outside the playlist.
var ErrNoTrack = errors.New("no such track")

// speakerRate is the output rate the speaker is opened at. Tracks with a
// different rate are resampled.
const speakerRate = beep.SampleRate(44100)

var speakerInitialized bool

// Player plays one track of a playlist at a time. Call it from a single
// goroutine; only the end-of-track flag is touched by the speaker.
type Player struct {
	tracks   []Track
	current  int
	state    State
	ctrl     *beep.Ctrl
	streamer beep.StreamSeekCloser
	finished *atomic.Bool
}

// NewPlayer creates a stopped player for tracks.
func NewPlayer(tracks []Track) *Player {
	return &Player{tracks: tracks, current: -1, finished: new(atomic.Bool)}
}

// Tracks returns the playlist.
func (p *Player) Tracks() []Track { return p.tracks }

// Play starts track i. If i is already loaded it toggles pause instead, so a
// second press of the same key pauses and a third resumes.
func (p *Player) Play(i int) error {
	if i < 0 || i >= len(p.tracks) {
		return fmt.Errorf("play %d: %w", i+1, ErrNoTrack)
	}
	if i == p.current && p.State() != Stopped {
		p.Toggle()
		return nil
	}
	p.Stop()

	path := p.tracks[i].AudioSrc
	if ext := strings.ToLower(filepath.Ext(path)); ext != ".mp3" {
		return fmt.Errorf("play %s: unsupported format %q", path, ext)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("play: %w", err)
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("decode %s: %w", path, err)
	}

	if !speakerInitialized {
		if err := speaker.Init(speakerRate, speakerRate.N(time.Second/10)); err != nil {
			_ = streamer.Close()
			return fmt.Errorf("init speaker: %w", err)
		}
		speakerInitialized = true
	}

	var src beep.Streamer = streamer
	if format.SampleRate != speakerRate {
		src = beep.Resample(4, format.SampleRate, speakerRate, streamer)
	}

	p.streamer = streamer
	p.ctrl = &beep.Ctrl{Streamer: src}
	p.current = i
	p.state = Playing
	finished := new(atomic.Bool)
	p.finished = finished

	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		finished.Store(true)
	})))
	return nil
}

// Toggle pauses a playing track or resumes a paused one.
func (p *Player) Toggle() {
	if p.ctrl == nil {
		return
	}
	switch p.State() {
	case Playing:
		speaker.Lock()
		p.ctrl.Paused = true
		speaker.Unlock()
		p.state = Paused
	case Paused:
		speaker.Lock()
		p.ctrl.Paused = false
		speaker.Unlock()
		p.state = Playing
	}
}

// Stop halts playback and releases the file.
func (p *Player) Stop() {
	if p.state == Stopped && p.streamer == nil {
		return
	}
	if speakerInitialized {
		speaker.Clear()
	}
	if p.streamer != nil {
		_ = p.streamer.Close() // closes the underlying file
		p.streamer = nil
	}
	p.ctrl = nil
	p.state = Stopped
}

// State returns the playback state. A track that ran to the end reports
// Stopped.
func (p *Player) State() State {
	if p.state != Stopped && p.finished.Load() {
		return Stopped
	}
	return p.state
}

// Current returns the loaded track index, or -1 when nothing has played.
func (p *Player) Current() int {
	return p.current
}
