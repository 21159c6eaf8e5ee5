// Package statusline turns the tracker's ordered entries into a
// compact status summary: one clickable segment per active context,
// abbreviated names, colored by display tag.
package statusline

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"chantrack/internal/track"
)

var (
	bracketStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	plainStyle   = lipgloss.NewStyle()
)

// Options configures how the summary is rendered.
type Options struct {
	// MinLength and Mode are forwarded to the name shortener.
	MinLength int
	Mode      track.Aggressiveness
	// ShowCounts appends "(n)" to segments with more than one unseen
	// message.
	ShowCounts bool
	// Shortenable gates which names may be abbreviated; nil allows all.
	Shortenable func(string) bool
	// Colors maps a display tag to a terminal color.
	Colors map[track.Tag]string
}

// Segment is one rendered unit of the summary, keeping the context
// handle so the host can make it clickable.
type Segment struct {
	Context track.Context
	Label   string
	Tag     track.Tag
}

// Formatter renders tracker entries. It caches shortening results and
// invalidates them whenever an option changes.
type Formatter struct {
	opts    Options
	cache   track.ShortenCache
	version uint64
}

// New builds a formatter.
func New(opts Options) *Formatter {
	if opts.MinLength < 1 {
		opts.MinLength = 1
	}
	return &Formatter{opts: opts}
}

// Mode returns the current shortening mode.
func (f *Formatter) Mode() track.Aggressiveness { return f.opts.Mode }

// SetMode switches the shortening mode and invalidates the cache.
func (f *Formatter) SetMode(mode track.Aggressiveness) {
	if f.opts.Mode == mode {
		return
	}
	f.opts.Mode = mode
	f.version++
}

// ShowCounts reports whether counts are rendered.
func (f *Formatter) ShowCounts() bool { return f.opts.ShowCounts }

// SetShowCounts toggles count rendering.
func (f *Formatter) SetShowCounts(show bool) {
	if f.opts.ShowCounts == show {
		return
	}
	f.opts.ShowCounts = show
	f.version++
}

// Segments builds one segment per entry, in entry order. name resolves
// a context handle to its full display name; universe lists every known
// name, active or not, so abbreviations stay globally unambiguous.
func (f *Formatter) Segments(entries []track.Entry, name func(track.Context) string, universe []string) []Segment {
	active := make([]string, len(entries))
	for i, e := range entries {
		active[i] = name(e.Context)
	}
	short := f.cache.Get(universe, active, f.opts.Shortenable, f.opts.MinLength, f.opts.Mode, f.version)

	segs := make([]Segment, len(entries))
	for i, e := range entries {
		label := short[i]
		if f.opts.ShowCounts && e.Count > 1 {
			label = fmt.Sprintf("%s(%d)", label, e.Count)
		}
		segs[i] = Segment{Context: e.Context, Label: label, Tag: e.Tag}
	}
	return segs
}

// Render joins segments into the final status string, truncated to
// maxWidth terminal cells (0 disables truncation). The shape follows
// the classic mode-line convention: " [seg1,seg2,...]".
func (f *Formatter) Render(segs []Segment, maxWidth int) string {
	if len(segs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(bracketStyle.Render("["))
	for i, seg := range segs {
		if i > 0 {
			b.WriteString(bracketStyle.Render(","))
		}
		b.WriteString(f.styleFor(seg.Tag).Render(seg.Label))
	}
	b.WriteString(bracketStyle.Render("]"))
	out := b.String()
	if maxWidth > 0 {
		out = ansi.Truncate(out, maxWidth, "…")
	}
	return out
}

func (f *Formatter) styleFor(tag track.Tag) lipgloss.Style {
	if color, ok := f.opts.Colors[tag]; ok && color != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return plainStyle
}
