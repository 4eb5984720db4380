package combat

import "github.com/samdwyer/dungeonsgambit/internal/entity"

// SettledDamage returns the damage each side deals per hit once the hero's
// remaining attack degradation has played out: the hero at MinAttack against
// the enemy's worn-down defense, and the enemy against the hero's MinDefense.
func SettledDamage(hero *entity.Hero, enemy *entity.Card) (heroDamage, enemyDamage int) {
	wear := hero.Attack - hero.MinAttack
	settledDefense := max(0, enemy.CurrentDefense-wear)
	heroDamage = max(0, hero.MinAttack-settledDefense)
	enemyDamage = max(0, enemy.Attack-hero.MinDefense)
	return heroDamage, enemyDamage
}

// PrepareEnemy is applied once when an enemy card is drawn. If neither side
// would deal damage after degradation settles, the enemy's defense is lowered
// to hero.Attack-1 so the settled hero deals at least one damage per hit.
// Returns true if the enemy was changed. Afterwards MaxRounds bounds the fight.
func PrepareEnemy(hero *entity.Hero, enemy *entity.Card) bool {
	if hero == nil || enemy == nil || enemy.CurrentDefense <= 0 {
		return false
	}

	heroDamage, enemyDamage := SettledDamage(hero, enemy)
	if heroDamage > 0 || enemyDamage > 0 {
		return false
	}

	enemy.CurrentDefense = max(0, hero.Attack-1)
	return true
}

// MaxRounds bounds the number of hero+enemy attack rounds a fight can last
// once PrepareEnemy has run. At least one side's settled damage is positive,
// so that side finishes the other after its own degradation has played out.
func MaxRounds(hero *entity.Hero, enemy *entity.Card) int {
	heroDamage, enemyDamage := SettledDamage(hero, enemy)
	bound := 0
	if heroDamage > 0 {
		bound = (hero.Attack - hero.MinAttack) + max(0, enemy.CurrentHealth)
	}
	if enemyDamage > 0 {
		byEnemy := (hero.Defense - hero.MinDefense) + max(0, hero.Health)
		if bound == 0 || byEnemy < bound {
			bound = byEnemy
		}
	}
	return bound
}
