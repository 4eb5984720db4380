// Package combat resolves the hero's and the enemy's attacks, including
// equipment degradation and the pre-combat softlock correction.
package combat

import (
	"errors"

	"github.com/samdwyer/dungeonsgambit/internal/entity"
)

var (
	// ErrNoHero is returned when a turn is resolved without a hero.
	ErrNoHero = errors.New("combat: no hero")
	// ErrNoEnemy is returned when a turn is resolved without an active enemy.
	ErrNoEnemy = errors.New("combat: no active enemy")
)

// Outcome is the combat phase that follows a resolved attack.
type Outcome int

const (
	// OutcomeEnemyTurn - the enemy survived the hero's attack
	OutcomeEnemyTurn Outcome = iota
	// OutcomePlayerTurn - the hero survived the enemy's attack
	OutcomePlayerTurn
	// OutcomeVictory - the enemy's HP reached zero
	OutcomeVictory
	// OutcomeDefeat - the hero's HP reached zero
	OutcomeDefeat
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeEnemyTurn:
		return "enemy_turn"
	case OutcomePlayerTurn:
		return "player_turn"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// AttackResult contains the outcome of resolving one attack.
type AttackResult struct {
	Outcome  Outcome
	Damage   int           // Damage dealt to the defender
	Degraded bool          // Attacker-side stat dropped by one this hit
	Broken   *entity.Card  // Equipment that broke this hit, if any
	Deltas   []entity.StatDelta
	Message  string // Human-readable description
}

// Resolver applies attacks between the hero and the active enemy.
type Resolver struct{}

// NewResolver creates a new combat resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolvePlayerAttack applies the hero's attack to the enemy.
//
// Damage is computed from the stats before this hit's degradation. While the
// hero's attack is above its floor, each hit also wears the enemy's defense
// down by one and the hero's attack down by one; once attack reaches the
// floor the oldest weapon breaks.
func (r *Resolver) ResolvePlayerAttack(hero *entity.Hero, enemy *entity.Card) (AttackResult, error) {
	if hero == nil {
		return AttackResult{}, ErrNoHero
	}
	if enemy == nil {
		return AttackResult{}, ErrNoEnemy
	}

	damage := max(0, hero.Attack-enemy.CurrentDefense)
	result := AttackResult{Damage: damage}

	if hero.Attack > hero.MinAttack {
		if lost := enemy.ReduceDefense(1); lost > 0 {
			result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatEnemyDefense, Amount: -lost})
		}
		result.Degraded = hero.DegradeAttack()
		result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatAttack, Amount: -1})

		if hero.Attack <= hero.MinAttack {
			result.Broken = hero.BreakOldestWeapon()
		}
	}

	enemy.TakeDamage(damage)
	result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatEnemyHealth, Amount: -damage})
	result.Message = "Hero hits " + enemy.Name + " for " + itoa(damage) + "!"
	if result.Broken != nil {
		result.Message += " " + result.Broken.Name + " broke!"
	}

	if !enemy.IsAlive() {
		result.Outcome = OutcomeVictory
	} else {
		result.Outcome = OutcomeEnemyTurn
	}
	return result, nil
}

// ResolveEnemyAttack applies the enemy's attack to the hero. It mirrors
// ResolvePlayerAttack with the hero's defense and armor degrading.
func (r *Resolver) ResolveEnemyAttack(hero *entity.Hero, enemy *entity.Card) (AttackResult, error) {
	if hero == nil {
		return AttackResult{}, ErrNoHero
	}
	if enemy == nil {
		return AttackResult{}, ErrNoEnemy
	}

	damage := max(0, enemy.Attack-hero.Defense)
	result := AttackResult{Damage: damage}

	if hero.DegradeDefense() {
		result.Degraded = true
		result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatDefense, Amount: -1})

		if hero.Defense <= hero.MinDefense {
			result.Broken = hero.BreakOldestArmor()
		}
	}

	hero.TakeDamage(damage)
	result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatHealth, Amount: -damage})
	result.Message = enemy.Name + " hits Hero for " + itoa(damage) + "!"
	if result.Broken != nil {
		result.Message += " " + result.Broken.Name + " broke!"
	}

	if !hero.IsAlive() {
		result.Outcome = OutcomeDefeat
	} else {
		result.Outcome = OutcomePlayerTurn
	}
	return result, nil
}

// itoa is a simple int to string helper.
func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	if i < 0 {
		return "-" + itoa(-i)
	}
	digits := ""
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	return digits
}
