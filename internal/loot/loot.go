// Package loot applies equipment pickups and level-up cards to the hero.
package loot

import (
	"fmt"
	"strings"

	"github.com/samdwyer/dungeonsgambit/internal/entity"
	"github.com/samdwyer/dungeonsgambit/internal/gamedata"
)

// Kind describes what happened to a picked-up equipment card.
type Kind string

const (
	KindHealed   Kind = "healed"   // Potion fully used
	KindOverheal Kind = "overheal" // Potion partly or wholly wasted, sold for XP
	KindBag      Kind = "bag"      // Bag worn, slots increased
	KindEquipped Kind = "equipped" // Item worn
	KindSold     Kind = "sold"     // No free slot, sold for XP
)

// Result contains the outcome of resolving a loot or level-up card.
type Result struct {
	Kind    Kind // Empty for level-up cards
	Healed  int
	XP      int
	Deltas  []entity.StatDelta
	Message string
}

// Resolver applies loot and level-up cards.
type Resolver struct{}

// NewResolver creates a new loot resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ApplyEquipment resolves a drawn equipment card against the hero.
//
// A potion heals up to MaxHealth; if any of the heal would be wasted the card
// is sold for its full XPGain instead of the wasted part. A bag is always worn
// and raises EquipmentSlots. Anything else is worn when a slot is free and
// sold for XPGain otherwise, so the equipment count never exceeds the slots.
func (r *Resolver) ApplyEquipment(hero *entity.Hero, card *entity.Card) (Result, error) {
	if hero == nil {
		return Result{}, fmt.Errorf("apply equipment: no hero")
	}
	if card == nil || card.Type != gamedata.CardEquipment {
		return Result{}, fmt.Errorf("apply equipment: not an equipment card")
	}

	switch {
	case card.IsPotion():
		return r.drinkPotion(hero, card), nil
	case card.IsBag():
		hero.CurrentEquipment = append(hero.CurrentEquipment, card)
		hero.EquipmentSlots += card.InventoryBoost
		return Result{
			Kind:    KindBag,
			Deltas:  []entity.StatDelta{{Stat: entity.StatSlots, Amount: card.InventoryBoost}},
			Message: fmt.Sprintf("%s equipped!\n+%d Slots", card.Name, card.InventoryBoost),
		}, nil
	case hero.HasFreeSlot():
		hero.Equip(card)
		result := Result{Kind: KindEquipped, Message: card.Name + " equipped!"}
		if card.Attack != 0 {
			result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatAttack, Amount: card.Attack})
		}
		if card.Defense != 0 {
			result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatDefense, Amount: card.Defense})
		}
		return result, nil
	default:
		xp := hero.GainExperience(card.XPGain)
		return Result{
			Kind:    KindSold,
			XP:      xp,
			Deltas:  []entity.StatDelta{{Stat: entity.StatExperience, Amount: xp}},
			Message: fmt.Sprintf("Inventory full!\n%s sold for %dXP", card.Name, xp),
		}, nil
	}
}

func (r *Resolver) drinkPotion(hero *entity.Hero, card *entity.Card) Result {
	healed := hero.Heal(card.Health)
	result := Result{Kind: KindHealed, Healed: healed}
	if healed > 0 {
		result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatHealth, Amount: healed})
	}

	if healed < card.Health {
		result.Kind = KindOverheal
		result.XP = hero.GainExperience(card.XPGain)
		result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatExperience, Amount: result.XP})
		result.Message = fmt.Sprintf("%s could not be fully used\nthe rest was sold for %dXP", card.Name, result.XP)
		return result
	}

	result.Message = fmt.Sprintf("%s!\n+%d HP", card.Name, healed)
	return result
}

// ApplyLevelUp resolves a level-up card. Boosts are permanent: health raises
// MaxHealth and Health, attack and defense raise both the floor and the
// current value. A card with no positive boost changes nothing.
func (r *Resolver) ApplyLevelUp(hero *entity.Hero, card *entity.Card) (Result, error) {
	if hero == nil {
		return Result{}, fmt.Errorf("apply level up: no hero")
	}
	if card == nil || card.Type != gamedata.CardLevelUp {
		return Result{}, fmt.Errorf("apply level up: not a level-up card")
	}

	var result Result
	if card.Health > 0 {
		hero.MaxHealth += card.Health
		hero.Health += card.Health
		result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatMaxHealth, Amount: card.Health})
	}
	if card.Attack > 0 {
		hero.MinAttack += card.Attack
		hero.Attack += card.Attack
		result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatMinAttack, Amount: card.Attack})
	}
	if card.Defense > 0 {
		hero.MinDefense += card.Defense
		hero.Defense += card.Defense
		result.Deltas = append(result.Deltas, entity.StatDelta{Stat: entity.StatMinDefense, Amount: card.Defense})
	}

	if len(result.Deltas) == 0 {
		result.Message = "No Stat Boosts!"
		return result, nil
	}

	lines := make([]string, 0, len(result.Deltas)+1)
	lines = append(lines, "Level Up Complete!")
	for _, d := range result.Deltas {
		lines = append(lines, d.String())
	}
	result.Message = strings.Join(lines, "\n")
	return result, nil
}
