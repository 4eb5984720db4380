package loot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonsgambit/internal/entity"
	"github.com/samdwyer/dungeonsgambit/internal/gamedata"
)

func newHero() *entity.Hero {
	return entity.NewHero(gamedata.HeroDef{Health: 5, Attack: 1, Defense: 0, EquipmentSlots: 3})
}

func card(def gamedata.CardDef) *entity.Card {
	if def.Type == "" {
		def.Type = gamedata.CardEquipment
	}
	if def.Name == "" {
		def.Name = "Card"
	}
	return entity.NewCardFromDef(&def)
}

func TestPotionOverhealSellsForXP(t *testing.T) {
	r := NewResolver()
	hero := newHero()
	hero.Health = 3

	result, err := r.ApplyEquipment(hero, card(gamedata.CardDef{Name: "Big Potion", Health: 10, XPGain: 5}))
	require.NoError(t, err)

	assert.Equal(t, KindOverheal, result.Kind)
	assert.Equal(t, 5, hero.Health)
	assert.Equal(t, 2, result.Healed)
	assert.Equal(t, 5, hero.Experience)
	assert.Equal(t, 5, result.XP)
	assert.Empty(t, hero.CurrentEquipment, "potions are never worn")
}

func TestPotionAtFullHealth(t *testing.T) {
	r := NewResolver()
	hero := newHero()

	result, err := r.ApplyEquipment(hero, card(gamedata.CardDef{Health: 3, XPGain: 10}))
	require.NoError(t, err)

	assert.Equal(t, KindOverheal, result.Kind)
	assert.Zero(t, result.Healed)
	assert.Equal(t, 5, hero.Health)
	assert.Equal(t, 10, hero.Experience)
	assert.Equal(t, []entity.StatDelta{{Stat: entity.StatExperience, Amount: 10}}, result.Deltas)
}

func TestPotionFullyUsed(t *testing.T) {
	r := NewResolver()
	hero := newHero()
	hero.Health = 1

	result, err := r.ApplyEquipment(hero, card(gamedata.CardDef{Name: "Healing Potion", Health: 3, XPGain: 10}))
	require.NoError(t, err)

	assert.Equal(t, KindHealed, result.Kind)
	assert.Equal(t, 4, hero.Health)
	assert.Zero(t, hero.Experience)
	assert.Equal(t, "Healing Potion!\n+3 HP", result.Message)
}

func TestBagAlwaysWorn(t *testing.T) {
	r := NewResolver()
	hero := newHero()
	for i := 0; i < 3; i++ {
		_, err := r.ApplyEquipment(hero, card(gamedata.CardDef{Defense: 1}))
		require.NoError(t, err)
	}
	require.False(t, hero.HasFreeSlot())

	bag := card(gamedata.CardDef{Name: "Backpack", InventoryBoost: 2, XPGain: 10})
	result, err := r.ApplyEquipment(hero, bag)
	require.NoError(t, err)

	assert.Equal(t, KindBag, result.Kind)
	assert.Equal(t, 5, hero.EquipmentSlots)
	assert.Len(t, hero.CurrentEquipment, 4)
	assert.Same(t, bag, hero.CurrentEquipment[3])
	assert.LessOrEqual(t, len(hero.CurrentEquipment), hero.EquipmentSlots)
	assert.True(t, hero.HasFreeSlot())
}

func TestEquipUntilFullThenSell(t *testing.T) {
	r := NewResolver()
	hero := newHero()

	sword := card(gamedata.CardDef{Name: "Rusty Sword", Attack: 1, XPGain: 10})
	result, err := r.ApplyEquipment(hero, sword)
	require.NoError(t, err)
	assert.Equal(t, KindEquipped, result.Kind)
	assert.Equal(t, 2, hero.Attack)
	assert.Equal(t, 1, hero.MinAttack, "equipment never raises the floor")
	assert.Equal(t, []entity.StatDelta{{Stat: entity.StatAttack, Amount: 1}}, result.Deltas)

	shield := card(gamedata.CardDef{Name: "Worn Shield", Defense: 2, XPGain: 10})
	_, err = r.ApplyEquipment(hero, shield)
	require.NoError(t, err)
	assert.Equal(t, 2, hero.Defense)

	_, err = r.ApplyEquipment(hero, card(gamedata.CardDef{Name: "Leather Vest", Defense: 1, XPGain: 10}))
	require.NoError(t, err)
	assert.Len(t, hero.CurrentEquipment, 3)

	result, err = r.ApplyEquipment(hero, card(gamedata.CardDef{Name: "Spare Sword", Attack: 3, XPGain: 15}))
	require.NoError(t, err)
	assert.Equal(t, KindSold, result.Kind)
	assert.Equal(t, 15, hero.Experience)
	assert.Equal(t, 2, hero.Attack)
	assert.Len(t, hero.CurrentEquipment, 3)
	assert.Contains(t, result.Message, "sold for 15XP")
}

func TestApplyEquipmentRejectsWrongCards(t *testing.T) {
	r := NewResolver()

	_, err := r.ApplyEquipment(nil, card(gamedata.CardDef{Attack: 1}))
	assert.Error(t, err)
	_, err = r.ApplyEquipment(newHero(), nil)
	assert.Error(t, err)
	_, err = r.ApplyEquipment(newHero(), card(gamedata.CardDef{Type: gamedata.CardEnemy, Health: 1}))
	assert.Error(t, err)
}

func TestLevelUpRaisesFloor(t *testing.T) {
	r := NewResolver()
	hero := newHero()
	hero.Attack = 2

	result, err := r.ApplyLevelUp(hero, card(gamedata.CardDef{Type: gamedata.CardLevelUp, Name: "Strength Training", Attack: 1}))
	require.NoError(t, err)

	assert.Equal(t, 2, hero.MinAttack)
	assert.Equal(t, 3, hero.Attack)
	assert.Equal(t, "Level Up Complete!\n+1 Min ATK", result.Message)
}

func TestLevelUpAllStats(t *testing.T) {
	r := NewResolver()
	hero := newHero()
	hero.Health = 2

	result, err := r.ApplyLevelUp(hero, card(gamedata.CardDef{Type: gamedata.CardLevelUp, Health: 5, Attack: 1, Defense: 2}))
	require.NoError(t, err)

	assert.Equal(t, 10, hero.MaxHealth)
	assert.Equal(t, 7, hero.Health)
	assert.Equal(t, 2, hero.MinAttack)
	assert.Equal(t, 2, hero.Attack)
	assert.Equal(t, 2, hero.MinDefense)
	assert.Equal(t, 2, hero.Defense)
	assert.Len(t, result.Deltas, 3)
}

func TestLevelUpWithoutBoosts(t *testing.T) {
	r := NewResolver()
	hero := newHero()
	before := *hero

	result, err := r.ApplyLevelUp(hero, card(gamedata.CardDef{Type: gamedata.CardLevelUp, Name: "Critical Strike", Cost: 40}))
	require.NoError(t, err)

	assert.Equal(t, "No Stat Boosts!", result.Message)
	assert.Empty(t, result.Deltas)
	assert.Equal(t, before, *hero)

	_, err = r.ApplyLevelUp(hero, card(gamedata.CardDef{Attack: 1}))
	assert.Error(t, err, "equipment cards are not level-ups")
}
