package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsgambit/internal/encounter"
	"github.com/samdwyer/dungeonsgambit/internal/telemetry"
	"github.com/samdwyer/dungeonsgambit/internal/ui"
)

// startRun deals a fresh hero and deck and begins the shuffle.
func (g *Game) startRun(ctx context.Context) {
	g.session = encounter.NewSession(ctx, g.registry, g.heroDef, g.rng, g.clock.Now())
	g.machine = encounter.NewMachine(g.session, g.presenter, g.clock,
		encounter.WithLogger(g.logger),
		encounter.WithTiming(encounter.Timing{
			IntroDuration: g.cfg.IntroDuration,
			TurnDelay:     g.cfg.TurnDelay,
			RevealDelay:   g.cfg.RevealDelay,
		}),
	)
	g.presenter.Clear()
	g.logger.Printf("run %s started, %d cards", g.session.ID, g.session.Deck.Size())
	g.setState(ctx, StateShuffle)
}

// endRun discards the hero and deck and returns to the title.
func (g *Game) endRun(ctx context.Context) {
	if s := g.session; s != nil {
		alive, xp := false, 0
		if s.Hero != nil {
			alive, xp = s.Hero.IsAlive(), s.Hero.Experience
		}

		tracer := telemetry.Tracer("game")
		_, span := tracer.Start(ctx, "session.end")
		span.SetAttributes(
			attribute.String("run.id", s.ID.String()),
			attribute.Bool("hero.alive", alive),
			attribute.Int("hero.experience", xp),
			attribute.Int("cards_drawn", s.CardsDrawn),
			attribute.Int("enemies_defeated", s.EnemiesDefeated),
			attribute.Int64("duration_ms", g.clock.Now().Sub(s.StartedAt).Milliseconds()),
		)
		span.End()

		g.logger.Printf("run %s ended: %d XP, %d enemies defeated", s.ID, xp, s.EnemiesDefeated)
	}
	g.session = nil
	g.machine = nil
	g.presenter.Clear()
	g.setState(ctx, StateTitle)
}

// roomView collects what the renderer needs from the current run.
func (g *Game) roomView() ui.RoomView {
	view := ui.RoomView{
		Hero:      g.session.Hero,
		Remaining: g.session.Deck.Remaining(),
		State:     g.machine.State().String(),
		Message:   g.presenter.VisibleText(),
		Status:    g.presenter.Status(),
		Floating:  g.presenter.Floating(),
	}
	if enc := g.machine.Encounter(); enc != nil {
		view.Card = enc.Card
	}
	return view
}
