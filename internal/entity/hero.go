package entity

import "github.com/samdwyer/dungeonsgambit/internal/gamedata"

// Hero is the player's character for a single run.
//
// Attack and Defense are the current effective values including worn
// equipment; MinAttack and MinDefense are the unarmed floors that combat
// degradation never goes below. CurrentEquipment is ordered oldest first.
type Hero struct {
	Health    int
	MaxHealth int

	Attack     int
	MinAttack  int
	Defense    int
	MinDefense int

	EquipmentSlots   int
	CurrentEquipment []*Card
	Experience       int
}

// NewHero creates a hero from a definition. The attack floor is at least 1
// so a fully degraded hero can still hurt an undefended enemy.
func NewHero(def gamedata.HeroDef) *Hero {
	attack := def.Attack
	if attack < 1 {
		attack = 1
	}
	defense := def.Defense
	if defense < 0 {
		defense = 0
	}
	health := def.Health
	if health < 1 {
		health = 1
	}
	slots := def.EquipmentSlots
	if slots < 0 {
		slots = 0
	}
	return &Hero{
		Health:           health,
		MaxHealth:        health,
		Attack:           attack,
		MinAttack:        attack,
		Defense:          defense,
		MinDefense:       defense,
		EquipmentSlots:   slots,
		CurrentEquipment: []*Card{},
	}
}

// IsAlive returns true if the hero has HP remaining.
func (h *Hero) IsAlive() bool { return h.Health > 0 }

// TakeDamage reduces HP and returns the damage applied.
func (h *Hero) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	h.Health -= amount
	return amount
}

// Heal restores HP up to MaxHealth and returns the amount actually healed.
func (h *Hero) Heal(amount int) int {
	if amount <= 0 || h.Health >= h.MaxHealth {
		return 0
	}
	actual := amount
	if h.Health+actual > h.MaxHealth {
		actual = h.MaxHealth - h.Health
	}
	h.Health += actual
	return actual
}

// GainExperience adds XP and returns the amount added.
func (h *Hero) GainExperience(amount int) int {
	if amount <= 0 {
		return 0
	}
	h.Experience += amount
	return amount
}

// HasFreeSlot reports whether another item can be worn.
func (h *Hero) HasFreeSlot() bool {
	return len(h.CurrentEquipment) < h.EquipmentSlots
}

// Equip appends an item and adds its attack and defense to the current stats.
// Slot capacity is the caller's concern.
func (h *Hero) Equip(item *Card) {
	h.CurrentEquipment = append(h.CurrentEquipment, item)
	h.Attack += item.Attack
	h.Defense += item.Defense
}

// DegradeAttack lowers attack by one toward MinAttack.
// Returns false if attack was already at the floor.
func (h *Hero) DegradeAttack() bool {
	if h.Attack <= h.MinAttack {
		return false
	}
	h.Attack--
	return true
}

// DegradeDefense lowers defense by one toward MinDefense.
// Returns false if defense was already at the floor.
func (h *Hero) DegradeDefense() bool {
	if h.Defense <= h.MinDefense {
		return false
	}
	h.Defense--
	return true
}

// BreakOldestWeapon removes the oldest weapon, subtracting its attack
// (floored at MinAttack). Returns nil if no weapon is worn.
func (h *Hero) BreakOldestWeapon() *Card {
	i := h.oldestIndex((*Card).IsWeapon)
	if i < 0 {
		return nil
	}
	item := h.removeAt(i)
	h.Attack = max(h.Attack-item.Attack, h.MinAttack)
	return item
}

// BreakOldestArmor removes the oldest armor, subtracting its defense
// (floored at MinDefense). Returns nil if no armor is worn.
func (h *Hero) BreakOldestArmor() *Card {
	i := h.oldestIndex((*Card).IsArmor)
	if i < 0 {
		return nil
	}
	item := h.removeAt(i)
	h.Defense = max(h.Defense-item.Defense, h.MinDefense)
	return item
}

// oldestIndex returns the lowest equipment index matching the predicate, or -1.
func (h *Hero) oldestIndex(match func(*Card) bool) int {
	for i, item := range h.CurrentEquipment {
		if match(item) {
			return i
		}
	}
	return -1
}

func (h *Hero) removeAt(i int) *Card {
	item := h.CurrentEquipment[i]
	h.CurrentEquipment = append(h.CurrentEquipment[:i], h.CurrentEquipment[i+1:]...)
	return item
}
