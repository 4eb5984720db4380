// Package encounter drives the game room: drawing cards, the combat turn
// sequence, loot and level-up reveals, and the dungeon exit.
package encounter

// SubState is the game room's current encounter phase.
type SubState int

const (
	// StateIdle - waiting for the player to tap the deck
	StateIdle SubState = iota
	// StateCombatStart - the battle intro is playing
	StateCombatStart
	// StatePlayerTurn - the hero attacks on tap or when the turn timer fires
	StatePlayerTurn
	// StateEnemyTurn - the enemy attacks when the turn timer fires
	StateEnemyTurn
	// StateCombatEndVictory - enemy defeated, waiting for a dismissing tap
	StateCombatEndVictory
	// StateCombatEndDefeat - hero defeated, waiting for a dismissing tap
	StateCombatEndDefeat
	// StateEquipmentFound - equipment revealed, applied when the timer fires
	StateEquipmentFound
	// StateEquipmentAdded - equipment outcome shown
	StateEquipmentAdded
	// StateLevelUpFound - level-up revealed, applied when the timer fires
	StateLevelUpFound
	// StateLevelUpAdded - level-up outcome shown
	StateLevelUpAdded
	// StateDungeonExitAnimation - exit message playing, waiting for a tap
	StateDungeonExitAnimation
	// StateRewardScreen - run summary, a tap returns to the title
	StateRewardScreen
)

// String returns a human-readable state name.
func (s SubState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCombatStart:
		return "combat_start"
	case StatePlayerTurn:
		return "player_turn"
	case StateEnemyTurn:
		return "enemy_turn"
	case StateCombatEndVictory:
		return "combat_end_victory"
	case StateCombatEndDefeat:
		return "combat_end_defeat"
	case StateEquipmentFound:
		return "equipment_found"
	case StateEquipmentAdded:
		return "equipment_added"
	case StateLevelUpFound:
		return "level_up_found"
	case StateLevelUpAdded:
		return "level_up_added"
	case StateDungeonExitAnimation:
		return "dungeon_exit_animation"
	case StateRewardScreen:
		return "reward_screen"
	default:
		return "unknown"
	}
}

// InCombat reports whether an enemy fight is in progress.
func (s SubState) InCombat() bool {
	switch s {
	case StateCombatStart, StatePlayerTurn, StateEnemyTurn:
		return true
	default:
		return false
	}
}
