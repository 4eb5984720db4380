package encounter

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsgambit/internal/deck"
	"github.com/samdwyer/dungeonsgambit/internal/entity"
	"github.com/samdwyer/dungeonsgambit/internal/gamedata"
	"github.com/samdwyer/dungeonsgambit/internal/telemetry"
)

// Session owns everything that lives for one run: the hero, the deck and
// the run's bookkeeping. It is discarded when the run ends.
type Session struct {
	ID        uuid.UUID
	Hero      *entity.Hero
	Deck      *deck.Deck
	StartedAt time.Time

	CardsDrawn      int
	EnemiesDefeated int
}

// NewSession creates a fresh hero and a freshly shuffled deck.
func NewSession(ctx context.Context, registry *gamedata.CardRegistry, heroDef gamedata.HeroDef, rng *rand.Rand, now time.Time) *Session {
	tracer := telemetry.Tracer("session")
	ctx, span := tracer.Start(ctx, "session.start")
	defer span.End()

	s := &Session{
		ID:        uuid.New(),
		Hero:      entity.NewHero(heroDef),
		Deck:      deck.Build(ctx, registry, rng),
		StartedAt: now,
	}

	span.SetAttributes(
		attribute.String("run.id", s.ID.String()),
		attribute.Int("deck.size", s.Deck.Size()),
		attribute.Int("hero.health", s.Hero.Health),
	)
	return s
}

// NewSessionWith wraps an existing hero and deck, for callers that build
// their own.
func NewSessionWith(hero *entity.Hero, d *deck.Deck, now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Hero:      hero,
		Deck:      d,
		StartedAt: now,
	}
}

// Encounter is the card currently being resolved.
type Encounter struct {
	Card  *entity.Card
	Turns int // Attacks resolved so far, both sides
}
