package gamedata

// =============================================================================
// CARD DATA
// =============================================================================
//
// Every card in a run is built from a CardDef template. The starter deck lists
// each template once with a count; deck assembly expands the counts, shuffles,
// and then inserts the single dungeon exit card near the middle.
//
// Stat fields mean different things per card type:
//
//   enemy:        health/attack/defense are the enemy's stats, xpGain is awarded
//                 once the victory screen is dismissed
//   equipment:    health > 0 is a potion, inventoryBoost > 0 is a bag, otherwise
//                 attack/defense are added to the hero while equipped; xpGain is
//                 the sell value
//   level_up:     health raises max HP, attack/defense raise the hero's floors
//   dungeon_exit: ends the run with the reward screen
//   message:      not in the deck; produced for notices such as "Deck Empty"
//
// JSON Schema:
// ------------
// {
//   "id": "rusty_sword",
//   "name": "Rusty Sword",
//   "theme": "Starter",
//   "type": "equipment",
//   "attack": 1,
//   "xpGain": 10,
//   "color": "#B0B0B0",
//   "count": 1
// }

// CardType identifies how a drawn card is resolved.
type CardType string

const (
	CardEnemy       CardType = "enemy"
	CardEquipment   CardType = "equipment"
	CardLevelUp     CardType = "level_up"
	CardDungeonExit CardType = "dungeon_exit"
	CardMessage     CardType = "message"
)

// Valid reports whether t is one of the known card types.
func (t CardType) Valid() bool {
	switch t {
	case CardEnemy, CardEquipment, CardLevelUp, CardDungeonExit, CardMessage:
		return true
	default:
		return false
	}
}

// Label returns the card type as shown on a card face (e.g. "Level Up").
func (t CardType) Label() string {
	switch t {
	case CardEnemy:
		return "Enemy"
	case CardEquipment:
		return "Equipment"
	case CardLevelUp:
		return "Level Up"
	case CardDungeonExit:
		return "Dungeon Exit"
	case CardMessage:
		return "Message"
	default:
		return "Unknown"
	}
}

// CardDef defines a card template loaded from JSON.
type CardDef struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Theme          string   `json:"theme"`
	Type           CardType `json:"type"`
	Health         int      `json:"health,omitempty"`
	Attack         int      `json:"attack,omitempty"`
	Defense        int      `json:"defense,omitempty"`
	Cost           int      `json:"cost,omitempty"` // XP price; unused by the starter rules
	XPGain         int      `json:"xpGain,omitempty"`
	InventoryBoost int      `json:"inventoryBoost,omitempty"`
	Color          string   `json:"color,omitempty"` // Hex color for the card face
	Count          int      `json:"count,omitempty"` // Copies in the starter deck
}

// CardsFile represents the structure of cards.json.
type CardsFile struct {
	Starter []CardDef `json:"starter"`
	Exit    CardDef   `json:"exit"`
}

// LoadCards loads card definitions from the embedded cards.json file.
func LoadCards() (CardsFile, error) {
	return Load[CardsFile]("cards.json")
}
