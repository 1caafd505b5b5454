// Package playlist holds the songs shown alongside the sky and plays them.
package playlist

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// releaseLayout is the release_date format in config and DefaultTracks.
const releaseLayout = "2006-01-02"

// Track is one playlist entry.
type Track struct {
	Title       string
	Artist      string
	Year        int
	ReleaseDate string // YYYY-MM-DD
	AudioSrc    string
}

// DefaultTracks returns the built-in 2008 playlist.
func DefaultTracks() []Track {
	return []Track{
		{Title: "I'll Be Lovin' U Long Time", Artist: "Mariah Carey", Year: 2008, ReleaseDate: "2008-07-01", AudioSrc: "assets/ill_be_lovin_u_long_time.mp3"},
		{Title: "Love Lockdown", Artist: "Kanye West", Year: 2008, ReleaseDate: "2008-09-18", AudioSrc: "assets/love_lockdown.mp3"},
		{Title: "One Of The Boys", Artist: "Katy Perry", Year: 2008, ReleaseDate: "2008-06-17", AudioSrc: "assets/one_of_the_boys.mp3"},
		{Title: "Viva La Vida", Artist: "Coldplay", Year: 2008, ReleaseDate: "2008-05-25", AudioSrc: "assets/viva_la_vida.mp3"},
		{Title: "Electric Feel", Artist: "MGMT", Year: 2008, ReleaseDate: "2008-06-23", AudioSrc: "assets/electric_feel.mp3"},
		{Title: "You Found Me", Artist: "The Fray", Year: 2008, ReleaseDate: "2008-11-21", AudioSrc: "assets/you_found_me.mp3"},
		{Title: "Only You", Artist: "Joshua Radin", Year: 2008, ReleaseDate: "2008-01-01", AudioSrc: "assets/only_you.mp3"},
		{Title: "Untouched", Artist: "The Veronicas", Year: 2008, ReleaseDate: "2008-12-06", AudioSrc: "assets/untouched.mp3"},
	}
}

// ParseReleaseDate parses a YYYY-MM-DD release date.
func ParseReleaseDate(s string) (time.Time, error) {
	t, err := time.Parse(releaseLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse release date %q: %w", s, err)
	}
	return t, nil
}

// FormatReleaseDate renders "2008-07-01" as "July 1, 2008". Strings that do
// not parse are returned unchanged.
func FormatReleaseDate(s string) string {
	t, err := ParseReleaseDate(s)
	if err != nil {
		return s
	}
	return t.Format("January 2, 2006")
}

// Subtitle returns the "year · date" line shown under the artist.
func Subtitle(t Track) string {
	return fmt.Sprintf("%d · %s", t.Year, FormatReleaseDate(t.ReleaseDate))
}

// Age returns how long before now the track was released, e.g.
// "17 years ago". Empty when the release date does not parse.
func Age(t Track, now time.Time) string {
	released, err := ParseReleaseDate(t.ReleaseDate)
	if err != nil {
		return ""
	}
	return humanize.RelTime(released, now, "ago", "from now")
}

var (
	iconStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8fd4ff")).PaddingRight(1)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#dfe7ff"))
	artistStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#c8dcff"))
	subtitleStyle = lipgloss.NewStyle().Faint(true)
	indexStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8fd4ff")).Width(3)
	cardStyle     = lipgloss.NewStyle().MarginBottom(1)
)

// Render returns the playlist as styled terminal text, one card per track.
func Render(tracks []Track, now time.Time) string {
	cards := make([]string, 0, len(tracks))
	for i, t := range tracks {
		sub := Subtitle(t)
		if age := Age(t, now); age != "" {
			sub += " (" + age + ")"
		}
		meta := lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(t.Title),
			artistStyle.Render(t.Artist),
			subtitleStyle.Render(sub),
		)
		card := lipgloss.JoinHorizontal(lipgloss.Top,
			indexStyle.Render(hotkey(i)),
			iconStyle.Render("✧"),
			meta,
		)
		cards = append(cards, cardStyle.Render(card))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

// PanelLines returns plain lines for the in-window playlist panel. current
// is the playing index or -1.
func PanelLines(tracks []Track, current int, state State) []string {
	lines := make([]string, 0, len(tracks)+1)
	lines = append(lines, "Playlist (press 1-9)")
	for i, t := range tracks {
		mark := " "
		if i == current {
			switch state {
			case Playing:
				mark = ">"
			case Paused:
				mark = "="
			}
		}
		lines = append(lines, fmt.Sprintf("%s%s %s - %s", mark, hotkey(i), t.Title, t.Artist))
	}
	return lines
}

// hotkey is the key label for track i. Only the first nine have one.
func hotkey(i int) string {
	if i < 0 || i > 8 {
		return " "
	}
	return fmt.Sprintf("%d", i+1)
}
