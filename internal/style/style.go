// Package style maps semantic tags to terminal styling. Rendering code only
// ever asks for a tag; whether that turns into ANSI sequences or plain text
// is decided once, when the Styler is built.
package style

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Tag names a semantic role of a piece of text.
type Tag string

const (
	Spring  Tag = "spring"
	Summer  Tag = "summer"
	Autumn  Tag = "autumn"
	Winter  Tag = "winter"
	Weekday Tag = "weekday"
	Sunday  Tag = "sunday"
	Header  Tag = "header"
	Today   Tag = "today"
	Heading Tag = "heading"
	Time    Tag = "time"
	Red     Tag = "red"
	Blue    Tag = "blue"
	Green   Tag = "green"
	Yellow  Tag = "yellow"
)

// Color modes accepted by New.
const (
	ModeAuto   = "auto"
	ModeAlways = "always"
	ModeNever  = "never"
)

// Styler wraps text in the styles for the given tags. Later tags never
// override attributes already set by earlier ones.
type Styler interface {
	Style(text string, tags ...Tag) string
}

// Plain is a Styler that never emits escape sequences.
type Plain struct{}

func (Plain) Style(text string, _ ...Tag) string {
	return text
}

// ANSI styles text through a lipgloss renderer bound to an output.
type ANSI struct {
	renderer *lipgloss.Renderer
	styles   map[Tag]lipgloss.Style
}

// NewANSI builds an ANSI styler for w. When force is set the 16-color
// profile is used even if w is not a terminal.
func NewANSI(w io.Writer, force bool) *ANSI {
	r := lipgloss.NewRenderer(w)
	if force {
		r.SetColorProfile(termenv.ANSI)
	}

	black := lipgloss.Color("0")
	s := map[Tag]lipgloss.Style{
		Spring:  r.NewStyle().Foreground(black).Background(lipgloss.Color("2")),
		Summer:  r.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
		Autumn:  r.NewStyle().Foreground(black).Background(lipgloss.Color("3")),
		Winter:  r.NewStyle().Foreground(black).Background(lipgloss.Color("4")),
		Weekday: r.NewStyle().Foreground(lipgloss.Color("4")),
		Sunday:  r.NewStyle().Foreground(lipgloss.Color("9")),
		Header:  r.NewStyle().Foreground(lipgloss.Color("10")),
		Today:   r.NewStyle().Reverse(true),
		Heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		Time:    r.NewStyle().Foreground(lipgloss.Color("10")),
		Red:     r.NewStyle().Foreground(lipgloss.Color("9")),
		Blue:    r.NewStyle().Foreground(lipgloss.Color("12")),
		Green:   r.NewStyle().Foreground(lipgloss.Color("2")),
		Yellow:  r.NewStyle().Foreground(lipgloss.Color("11")),
	}

	return &ANSI{renderer: r, styles: s}
}

func (a *ANSI) Style(text string, tags ...Tag) string {
	if len(tags) == 0 {
		return text
	}
	st := a.renderer.NewStyle()
	for _, tag := range tags {
		if s, ok := a.styles[tag]; ok {
			st = st.Inherit(s)
		}
	}
	return st.Render(text)
}

// New picks a Styler for the given color mode. Unknown modes behave like auto.
func New(mode string, w io.Writer) Styler {
	switch strings.ToLower(mode) {
	case ModeNever:
		return Plain{}
	case ModeAlways:
		return NewANSI(w, true)
	default:
		return NewANSI(w, false)
	}
}

// ParseTag resolves a configured color name to a Tag.
func ParseTag(name string) (Tag, bool) {
	switch t := Tag(strings.ToLower(strings.TrimSpace(name))); t {
	case Red, Blue, Green, Yellow, Heading, Time,
		Spring, Summer, Autumn, Winter, Weekday, Sunday, Header, Today:
		return t, true
	}
	return "", false
}
