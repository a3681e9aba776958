package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/runnerr0/ppcal/internal/event"
	"github.com/runnerr0/ppcal/internal/style"
)

// keywordColor colors descriptions containing keyword.
type keywordColor struct {
	keyword string
	tag     style.Tag
}

// presenter prints event listings.
type presenter struct {
	out      io.Writer
	styler   style.Styler
	keywords []keywordColor
}

func (a *app) presenter() *presenter {
	var highlight map[string]string
	if a.cfg != nil {
		highlight = a.cfg.Highlight
	}
	return newPresenter(a.out, a.styler(), highlight)
}

// newPresenter orders keywords longest first, then alphabetically, so the
// most specific match wins and output does not depend on map order.
func newPresenter(out io.Writer, s style.Styler, highlight map[string]string) *presenter {
	p := &presenter{out: out, styler: s}
	for kw, color := range highlight {
		tag, ok := style.ParseTag(color)
		if !ok {
			log.Warnf("highlight %q: unknown color %q", kw, color)
			continue
		}
		if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
			p.keywords = append(p.keywords, keywordColor{keyword: kw, tag: tag})
		}
	}
	sort.Slice(p.keywords, func(i, j int) bool {
		a, b := p.keywords[i].keyword, p.keywords[j].keyword
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		return a < b
	})
	return p
}

// describe styles a description by its first matching keyword.
func (p *presenter) describe(desc string) string {
	low := strings.ToLower(desc)
	for _, k := range p.keywords {
		if strings.Contains(low, k.keyword) {
			return p.styler.Style(desc, k.tag)
		}
	}
	return desc
}

// today prints the listing shown under the month view.
func (p *presenter) today(entries []event.Entry) {
	if len(entries) == 0 {
		fmt.Fprintf(p.out, "\n📅 %s  # to add an event\n", p.styler.Style("ppcal add", style.Heading))
		return
	}
	p.list("Events for today:", entries)
}

// list prints a heading and one line per entry.
func (p *presenter) list(heading string, entries []event.Entry) {
	fmt.Fprintf(p.out, "\n📅 %s\n", p.styler.Style(heading, style.Heading))
	for _, e := range entries {
		fmt.Fprintf(p.out, " - %s %s\n", p.styler.Style(e.Time.Label(), style.Time), p.describe(e.Description))
	}
}

// numbered prints entries with 1-based ordinals for selection.
func (p *presenter) numbered(heading string, entries []event.Entry) {
	fmt.Fprintf(p.out, "\n🗑️ %s\n", heading)
	for i, e := range entries {
		fmt.Fprintf(p.out, "[%d] %s %s\n", i+1, e.Time.Label(), e.Description)
	}
}
