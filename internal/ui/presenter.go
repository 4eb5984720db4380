package ui

import (
	"strings"
	"time"

	"github.com/samdwyer/dungeonsgambit/internal/encounter"
	"github.com/samdwyer/dungeonsgambit/internal/entity"
)

// FloatDuration is how long a stat delta floats on screen.
const FloatDuration = 1200 * time.Millisecond

// FloatingDelta is a stat change shown briefly near the hero.
type FloatingDelta struct {
	entity.StatDelta
	Age time.Duration
}

type floating struct {
	delta entity.StatDelta
	at    time.Time
}

// Presenter animates encounter advisories. Blocking advisories type out
// their text over the message duration; hits only update the status line
// and float their deltas.
type Presenter struct {
	clock    encounter.Clock
	duration time.Duration

	message  encounter.Advisory
	hasMsg   bool
	shownAt  time.Time
	status   string
	floating []floating
}

var _ encounter.Presenter = (*Presenter)(nil)

// NewPresenter creates a presenter whose text animations last duration.
func NewPresenter(clock encounter.Clock, duration time.Duration) *Presenter {
	return &Presenter{clock: clock, duration: duration}
}

// Announce implements encounter.Presenter.
func (p *Presenter) Announce(a encounter.Advisory) {
	now := p.clock.Now()
	for _, d := range a.Deltas {
		p.floating = append(p.floating, floating{delta: d, at: now})
	}
	if !a.Blocking() {
		p.status = a.Text
		return
	}
	p.message = a
	p.hasMsg = true
	p.shownAt = now
}

// TextAnimationFinished implements encounter.AnimationStatus.
func (p *Presenter) TextAnimationFinished() bool {
	if !p.hasMsg {
		return true
	}
	return !p.clock.Now().Before(p.shownAt.Add(p.duration))
}

// Message returns the current advisory, if any.
func (p *Presenter) Message() (encounter.Advisory, bool) {
	return p.message, p.hasMsg
}

// VisibleText returns the part of the current message typed out so far.
func (p *Presenter) VisibleText() string {
	if !p.hasMsg {
		return ""
	}
	if p.TextAnimationFinished() || p.duration <= 0 {
		return p.message.Text
	}
	runes := []rune(p.message.Text)
	elapsed := p.clock.Now().Sub(p.shownAt)
	n := int(int64(len(runes)) * int64(elapsed) / int64(p.duration))
	return string(runes[:min(n, len(runes))])
}

// Status returns the latest hit line.
func (p *Presenter) Status() string { return p.status }

// Floating returns the deltas still on screen, dropping expired ones.
func (p *Presenter) Floating() []FloatingDelta {
	now := p.clock.Now()
	live := p.floating[:0]
	var out []FloatingDelta
	for _, f := range p.floating {
		age := now.Sub(f.at)
		if age >= FloatDuration {
			continue
		}
		live = append(live, f)
		out = append(out, FloatingDelta{StatDelta: f.delta, Age: age})
	}
	p.floating = live
	return out
}

// Clear drops the message, status and floating deltas.
func (p *Presenter) Clear() {
	p.message = encounter.Advisory{}
	p.hasMsg = false
	p.status = ""
	p.floating = nil
}

// Lines splits a message for centered display.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
