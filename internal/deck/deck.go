// Package deck assembles and draws the shuffled card deck for a run.
package deck

import (
	"context"
	"math/rand"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeonsgambit/internal/entity"
	"github.com/samdwyer/dungeonsgambit/internal/gamedata"
	"github.com/samdwyer/dungeonsgambit/internal/telemetry"
)

// exitSpread is how far from the middle the dungeon exit may land.
const exitSpread = 3

// Deck is the ordered draw pile for one run. Index 0 is drawn first.
type Deck struct {
	cards []*entity.Card
	drawn int
}

// New creates a deck from cards in the given draw order.
func New(cards []*entity.Card) *Deck {
	return &Deck{cards: cards}
}

// Build assembles a run's deck: the starter pool is shuffled, then the
// dungeon exit card is inserted at len/2 +/- 3, clamped to the pile.
func Build(ctx context.Context, registry *gamedata.CardRegistry, rng *rand.Rand) *Deck {
	tracer := telemetry.Tracer("deck")
	_, span := tracer.Start(ctx, "deck.build")
	defer span.End()

	pool := registry.StarterPool()
	cards := make([]*entity.Card, 0, len(pool)+1)
	for _, def := range pool {
		cards = append(cards, entity.NewCardFromDef(def))
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	exitPos := len(cards)/2 + rng.Intn(2*exitSpread+1) - exitSpread
	exitPos = max(0, min(exitPos, len(cards)))
	cards = append(cards, nil)
	copy(cards[exitPos+1:], cards[exitPos:])
	cards[exitPos] = entity.NewCardFromDef(registry.Exit())

	span.SetAttributes(
		attribute.Int("deck.size", len(cards)),
		attribute.Int("deck.exit_position", exitPos),
	)
	return New(cards)
}

// Draw pops the next card. It returns false when the deck is empty.
func (d *Deck) Draw() (*entity.Card, bool) {
	if d.Remaining() == 0 {
		return nil, false
	}
	card := d.cards[d.drawn]
	d.drawn++
	return card, true
}

// Peek returns the next card without drawing it, or nil when empty.
func (d *Deck) Peek() *entity.Card {
	if d.Remaining() == 0 {
		return nil
	}
	return d.cards[d.drawn]
}

// Remaining returns how many cards are left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.drawn
}

// Size returns the total number of cards the deck was built with.
func (d *Deck) Size() int {
	return len(d.cards)
}
