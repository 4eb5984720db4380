package gamedata

// HeroDef defines the hero's starting stats loaded from JSON.
type HeroDef struct {
	Health         int `json:"health"`         // Starting and maximum hit points
	Attack         int `json:"attack"`         // Unarmed attack, also the starting floor
	Defense        int `json:"defense"`        // Unarmed defense, also the starting floor
	EquipmentSlots int `json:"equipmentSlots"` // Items that can be worn at once
}

// LoadHero loads the hero definition from the embedded hero.json file.
func LoadHero() (HeroDef, error) {
	return Load[HeroDef]("hero.json")
}

// MustLoadHero loads the hero definition, panicking on error.
func MustLoadHero() HeroDef {
	def, err := LoadHero()
	if err != nil {
		panic(err)
	}
	return def
}
