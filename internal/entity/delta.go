package entity

import "fmt"

// Stat names a value that a resolution changed.
type Stat int

const (
	StatHealth Stat = iota
	StatMaxHealth
	StatAttack
	StatMinAttack
	StatDefense
	StatMinDefense
	StatSlots
	StatExperience
	StatEnemyHealth
	StatEnemyDefense
)

// String returns a short label for the stat.
func (s Stat) String() string {
	switch s {
	case StatHealth:
		return "HP"
	case StatMaxHealth:
		return "Max HP"
	case StatAttack:
		return "ATK"
	case StatMinAttack:
		return "Min ATK"
	case StatDefense:
		return "DEF"
	case StatMinDefense:
		return "Min DEF"
	case StatSlots:
		return "Slots"
	case StatExperience:
		return "XP"
	case StatEnemyHealth:
		return "Enemy HP"
	case StatEnemyDefense:
		return "Enemy DEF"
	default:
		return "?"
	}
}

// StatDelta is a floating change shown next to a stat after a resolution.
// It is display information only; the hero and card already hold the result.
type StatDelta struct {
	Stat   Stat
	Amount int
}

// String formats the delta with an explicit sign, e.g. "+5 XP".
func (d StatDelta) String() string {
	return fmt.Sprintf("%+d %s", d.Amount, d.Stat)
}
