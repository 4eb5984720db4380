package encounter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/dungeonsgambit/internal/combat"
	"github.com/samdwyer/dungeonsgambit/internal/entity"
	"github.com/samdwyer/dungeonsgambit/internal/gamedata"
	"github.com/samdwyer/dungeonsgambit/internal/loot"
	"github.com/samdwyer/dungeonsgambit/internal/telemetry"
)

// ErrNoEncounter is reported when a timed step finds no active card.
var ErrNoEncounter = errors.New("encounter: no active card")

// Timing holds the fixed delays of the game room.
type Timing struct {
	IntroDuration time.Duration // Battle start animation before the first turn
	TurnDelay     time.Duration // Auto-advance between combat turns
	RevealDelay   time.Duration // Loot and level-up reveal before and after applying
}

// DefaultTiming matches the pacing of the original game.
func DefaultTiming() Timing {
	return Timing{
		IntroDuration: 2 * time.Second,
		TurnDelay:     time.Second,
		RevealDelay:   2 * time.Second,
	}
}

// Signal tells the caller of Activate what the room wants next.
type Signal int

const (
	// SignalNone - stay in the game room
	SignalNone Signal = iota
	// SignalReturnToTitle - the run is over; discard the session
	SignalReturnToTitle
)

// Machine is the game room state machine for one session.
type Machine struct {
	session   *Session
	presenter Presenter
	clock     Clock
	timing    Timing
	logger    *log.Logger

	combat *combat.Resolver
	loot   *loot.Resolver

	state     SubState
	encounter *Encounter
	scheduler Scheduler
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets where defensive recoveries are reported.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) { m.logger = l }
}

// WithTiming overrides DefaultTiming.
func WithTiming(t Timing) Option {
	return func(m *Machine) { m.timing = t }
}

// NewMachine creates a game room in StateIdle for the session.
func NewMachine(session *Session, presenter Presenter, clock Clock, opts ...Option) *Machine {
	m := &Machine{
		session:   session,
		presenter: presenter,
		clock:     clock,
		timing:    DefaultTiming(),
		logger:    log.New(io.Discard, "", 0),
		combat:    combat.NewResolver(),
		loot:      loot.NewResolver(),
		state:     StateIdle,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current sub-state.
func (m *Machine) State() SubState { return m.state }

// Encounter returns the active encounter, or nil.
func (m *Machine) Encounter() *Encounter { return m.encounter }

// Session returns the session this room plays.
func (m *Machine) Session() *Session { return m.session }

// Pending reports whether an auto-advance step is armed.
func (m *Machine) Pending() bool { return m.scheduler.Armed() }

// Tick runs the pending auto-advance step if it is due.
func (m *Machine) Tick(ctx context.Context) {
	m.scheduler.Tick(ctx, m.clock.Now())
}

// Activate handles a tap. onCard is true when the tap hit the deck or the
// drawn card; dismissing taps are accepted anywhere. Taps are ignored while
// the presenter's text animation is still playing.
func (m *Machine) Activate(ctx context.Context, onCard bool) Signal {
	if !m.presenter.TextAnimationFinished() {
		return SignalNone
	}

	switch m.state {
	case StateIdle:
		if onCard {
			m.draw(ctx)
		}
	case StatePlayerTurn:
		if onCard {
			m.scheduler.Disarm()
			m.playerAttack(ctx)
		}
	case StateCombatEndVictory:
		m.claimVictory(ctx)
	case StateCombatEndDefeat:
		m.scheduler.Disarm()
		return SignalReturnToTitle
	case StateEquipmentAdded:
		m.toIdle(ctx)
	case StateDungeonExitAnimation:
		m.showReward(ctx)
	case StateRewardScreen:
		m.scheduler.Disarm()
		return SignalReturnToTitle
	case StateCombatStart, StateEnemyTurn, StateEquipmentFound, StateLevelUpFound, StateLevelUpAdded:
		// Timer driven.
	}
	return SignalNone
}

// draw pops the next card and starts the matching flow.
func (m *Machine) draw(ctx context.Context) {
	tracer := telemetry.Tracer("encounter")
	ctx, span := tracer.Start(ctx, "deck.draw")
	defer span.End()

	card, ok := m.session.Deck.Draw()
	if !ok {
		span.SetAttributes(attribute.Bool("deck.empty", true))
		m.encounter = &Encounter{Card: entity.NewMessageCard("Deck Empty")}
		m.presenter.Announce(Advisory{Category: CategoryMessage, Text: "Deck Empty"})
		return
	}

	m.session.CardsDrawn++
	m.encounter = &Encounter{Card: card}
	span.SetAttributes(
		attribute.String("card.name", card.Name),
		attribute.String("card.type", string(card.Type)),
		attribute.Int("deck.remaining", m.session.Deck.Remaining()),
	)

	switch card.Type {
	case gamedata.CardEnemy:
		m.startCombat(ctx)
	case gamedata.CardEquipment:
		m.transition(ctx, StateEquipmentFound)
		m.presenter.Announce(Advisory{Category: CategoryLoot, Text: "Treasure!"})
		m.arm(m.timing.RevealDelay, m.applyEquipment)
	case gamedata.CardLevelUp:
		m.transition(ctx, StateLevelUpFound)
		m.presenter.Announce(Advisory{Category: CategoryLevelUp, Text: "Level Up!"})
		m.arm(m.timing.RevealDelay, m.applyLevelUp)
	case gamedata.CardDungeonExit:
		m.transition(ctx, StateDungeonExitAnimation)
		m.presenter.Announce(Advisory{Category: CategoryExit, Text: "You Survived!\nClaim Your Reward!"})
	default:
		m.presenter.Announce(Advisory{Category: CategoryMessage, Text: card.Name})
	}
}

// =============================================================================
// Combat
// =============================================================================

func (m *Machine) startCombat(ctx context.Context) {
	if m.session.Hero == nil {
		m.recover(ctx, "start combat", combat.ErrNoHero)
		return
	}
	enemy := m.encounter.Card
	corrected := combat.PrepareEnemy(m.session.Hero, enemy)

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.start")
	span.SetAttributes(
		attribute.String("run.id", m.session.ID.String()),
		attribute.String("enemy", enemy.Name),
		attribute.Int("enemy.health", enemy.CurrentHealth),
		attribute.Int("enemy.defense", enemy.CurrentDefense),
		attribute.Bool("enemy.softlock_corrected", corrected),
		attribute.Int("combat.max_rounds", combat.MaxRounds(m.session.Hero, enemy)),
		attribute.Int("hero.attack", m.session.Hero.Attack),
		attribute.Int("hero.defense", m.session.Hero.Defense),
	)
	span.End()

	m.transition(ctx, StateCombatStart)
	m.presenter.Announce(Advisory{Category: CategoryBattleStart, Text: "Battle\nStart!"})
	m.arm(m.timing.IntroDuration, m.beginPlayerTurn)
}

func (m *Machine) beginPlayerTurn(ctx context.Context) {
	m.transition(ctx, StatePlayerTurn)
	m.arm(m.timing.TurnDelay, m.playerAttack)
}

func (m *Machine) playerAttack(ctx context.Context) {
	var enemy *entity.Card
	if m.encounter != nil {
		enemy = m.encounter.Card
	}
	result, err := m.combat.ResolvePlayerAttack(m.session.Hero, enemy)
	if err != nil {
		m.recover(ctx, "player attack", err)
		return
	}
	m.recordTurn(ctx, "hero", result)

	if result.Outcome == combat.OutcomeVictory {
		m.endCombat(ctx, "victory")
		m.transition(ctx, StateCombatEndVictory)
		m.presenter.Announce(Advisory{
			Category: CategoryVictory,
			Text:     fmt.Sprintf("Victory!\n+%dXP", enemy.XPGain),
			XP:       enemy.XPGain,
		})
		return
	}

	m.transition(ctx, StateEnemyTurn)
	m.arm(m.timing.TurnDelay, m.enemyAttack)
}

func (m *Machine) enemyAttack(ctx context.Context) {
	var enemy *entity.Card
	if m.encounter != nil {
		enemy = m.encounter.Card
	}
	result, err := m.combat.ResolveEnemyAttack(m.session.Hero, enemy)
	if err != nil {
		m.recover(ctx, "enemy attack", err)
		return
	}
	m.recordTurn(ctx, enemy.Name, result)

	if result.Outcome == combat.OutcomeDefeat {
		m.endCombat(ctx, "defeat")
		m.transition(ctx, StateCombatEndDefeat)
		m.presenter.Announce(Advisory{Category: CategoryDefeat, Text: "Defeat!"})
		return
	}

	m.beginPlayerTurn(ctx)
}

// recordTurn traces a resolved attack and shows its floating numbers.
func (m *Machine) recordTurn(ctx context.Context, actor string, result combat.AttackResult) {
	m.encounter.Turns++

	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.turn")
	span.SetAttributes(
		attribute.String("actor", actor),
		attribute.Int("damage", result.Damage),
		attribute.Int("turn", m.encounter.Turns),
		attribute.String("outcome", result.Outcome.String()),
	)
	if result.Broken != nil {
		span.SetAttributes(attribute.String("equipment.broken", result.Broken.Name))
	}
	span.End()

	m.presenter.Announce(Advisory{Category: CategoryHit, Text: result.Message, Deltas: result.Deltas})
}

func (m *Machine) endCombat(ctx context.Context, outcome string) {
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "combat.end")
	span.SetAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("turns_taken", m.encounter.Turns),
		attribute.Int("hero_hp_remaining", m.session.Hero.Health),
	)
	span.End()
}

// claimVictory awards the enemy's XP once the victory screen is dismissed.
func (m *Machine) claimVictory(ctx context.Context) {
	if m.session.Hero == nil {
		m.recover(ctx, "claim victory", combat.ErrNoHero)
		return
	}
	if m.encounter != nil && m.encounter.Card != nil {
		m.session.Hero.GainExperience(m.encounter.Card.XPGain)
		m.session.EnemiesDefeated++
	}
	m.toIdle(ctx)
}

// =============================================================================
// Loot and level-ups
// =============================================================================

func (m *Machine) applyEquipment(ctx context.Context) {
	if m.encounter == nil {
		m.recover(ctx, "apply equipment", ErrNoEncounter)
		return
	}

	tracer := telemetry.Tracer("loot")
	_, span := tracer.Start(ctx, "loot.apply")
	result, err := m.loot.ApplyEquipment(m.session.Hero, m.encounter.Card)
	if err != nil {
		span.End()
		m.recover(ctx, "apply equipment", err)
		return
	}
	span.SetAttributes(
		attribute.String("card", m.encounter.Card.Name),
		attribute.String("loot.kind", string(result.Kind)),
		attribute.Int("xp", result.XP),
	)
	span.End()

	m.transition(ctx, StateEquipmentAdded)
	m.presenter.Announce(Advisory{Category: CategoryLoot, Text: result.Message, Deltas: result.Deltas})
	m.arm(m.timing.RevealDelay, m.toIdle)
}

func (m *Machine) applyLevelUp(ctx context.Context) {
	if m.encounter == nil {
		m.recover(ctx, "apply level up", ErrNoEncounter)
		return
	}

	tracer := telemetry.Tracer("loot")
	_, span := tracer.Start(ctx, "levelup.apply")
	result, err := m.loot.ApplyLevelUp(m.session.Hero, m.encounter.Card)
	if err != nil {
		span.End()
		m.recover(ctx, "apply level up", err)
		return
	}
	span.SetAttributes(
		attribute.String("card", m.encounter.Card.Name),
		attribute.Int("boosts", len(result.Deltas)),
	)
	span.End()

	m.transition(ctx, StateLevelUpAdded)
	m.presenter.Announce(Advisory{Category: CategoryLevelUp, Text: result.Message, Deltas: result.Deltas})
	m.arm(m.timing.RevealDelay, m.toIdle)
}

// =============================================================================
// Exit
// =============================================================================

func (m *Machine) showReward(ctx context.Context) {
	if m.session.Hero == nil {
		m.recover(ctx, "show reward", combat.ErrNoHero)
		return
	}
	m.transition(ctx, StateRewardScreen)
	m.presenter.Announce(Advisory{
		Category: CategoryReward,
		Text: fmt.Sprintf("Reward\n%dXP earned\n%d enemies defeated\n%d cards left unexplored",
			m.session.Hero.Experience, m.session.EnemiesDefeated, m.session.Deck.Remaining()),
		XP: m.session.Hero.Experience,
	})
}

// =============================================================================
// Helpers
// =============================================================================

func (m *Machine) arm(delay time.Duration, action Action) {
	m.scheduler.Arm(m.clock.Now(), delay, action)
}

// toIdle clears the encounter and waits for the next draw.
func (m *Machine) toIdle(ctx context.Context) {
	m.scheduler.Disarm()
	m.encounter = nil
	m.transition(ctx, StateIdle)
}

// recover handles a step that found the room inconsistent: it is reported
// and the room returns to idle.
func (m *Machine) recover(ctx context.Context, step string, err error) {
	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.recover")
	span.RecordError(err)
	span.SetStatus(codes.Error, step)
	span.SetAttributes(attribute.String("state", m.state.String()))
	span.End()

	m.logger.Printf("encounter: %s in %s: %v; returning to idle", step, m.state, err)
	m.toIdle(ctx)
}

func (m *Machine) transition(ctx context.Context, next SubState) {
	if m.state == next {
		return
	}
	tracer := telemetry.Tracer("encounter")
	_, span := tracer.Start(ctx, "encounter.transition")
	span.SetAttributes(
		attribute.String("from", m.state.String()),
		attribute.String("to", next.String()),
	)
	span.End()
	m.state = next
}
