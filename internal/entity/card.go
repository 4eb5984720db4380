// Package entity provides the hero and the cards drawn during a run.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonsgambit/internal/gamedata"
)

// Card represents a single drawn card: an immutable template plus the
// runtime overlay that combat mutates.
type Card struct {
	Def *gamedata.CardDef // Template this card was built from (nil for message cards)

	Name           string
	Theme          string
	Type           gamedata.CardType
	Health         int // Enemy HP, potion heal, or level-up max HP boost
	Attack         int
	Defense        int
	Cost           int
	XPGain         int
	InventoryBoost int

	// Runtime overlay, only mutated while the card is the active enemy.
	CurrentHealth  int
	CurrentDefense int
}

// NewCardFromDef creates a card from a data-driven definition.
func NewCardFromDef(def *gamedata.CardDef) *Card {
	return &Card{
		Def:            def,
		Name:           def.Name,
		Theme:          def.Theme,
		Type:           def.Type,
		Health:         def.Health,
		Attack:         def.Attack,
		Defense:        def.Defense,
		Cost:           def.Cost,
		XPGain:         def.XPGain,
		InventoryBoost: def.InventoryBoost,
		CurrentHealth:  def.Health,
		CurrentDefense: def.Defense,
	}
}

// NewMessageCard creates a sentinel card that only carries a notice.
func NewMessageCard(text string) *Card {
	return &Card{
		Name:  text,
		Theme: "System",
		Type:  gamedata.CardMessage,
	}
}

// IsAlive returns true if the card has HP remaining.
func (c *Card) IsAlive() bool { return c.CurrentHealth > 0 }

// TakeDamage reduces current HP and returns the damage applied.
// HP may go negative; callers check IsAlive.
func (c *Card) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	c.CurrentHealth -= amount
	return amount
}

// ReduceDefense lowers current defense by amount, never below zero.
func (c *Card) ReduceDefense(amount int) int {
	if amount <= 0 || c.CurrentDefense <= 0 {
		return 0
	}
	actual := amount
	if actual > c.CurrentDefense {
		actual = c.CurrentDefense
	}
	c.CurrentDefense -= actual
	return actual
}

// IsPotion reports whether an equipment card heals instead of being worn.
func (c *Card) IsPotion() bool {
	return c.Type == gamedata.CardEquipment && c.Health > 0
}

// IsBag reports whether an equipment card adds equipment slots.
func (c *Card) IsBag() bool {
	return c.Type == gamedata.CardEquipment && c.InventoryBoost > 0
}

// IsWeapon reports whether worn equipment degrades with the hero's attack.
// Items granting both attack and defense are never degradable.
func (c *Card) IsWeapon() bool {
	return c.Type == gamedata.CardEquipment && c.Attack > 0 && c.Defense == 0
}

// IsArmor reports whether worn equipment degrades with the hero's defense.
func (c *Card) IsArmor() bool {
	return c.Type == gamedata.CardEquipment && c.Defense > 0 && c.Attack == 0
}

// Color returns the tcell color for this card's face.
func (c *Card) Color() tcell.Color {
	if c.Def != nil {
		return c.Def.TCellColor()
	}
	return gamedata.TypeColor(c.Type)
}
