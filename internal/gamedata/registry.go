package gamedata

import (
	"errors"
	"fmt"
)

// CardRegistry holds loaded card definitions and provides lookup utilities.
type CardRegistry struct {
	starter []CardDef
	byID    map[string]*CardDef
	exit    *CardDef
}

// NewCardRegistry creates a registry from loaded card definitions.
func NewCardRegistry(file CardsFile) (*CardRegistry, error) {
	if len(file.Starter) == 0 {
		return nil, errors.New("no starter cards defined")
	}
	if file.Exit.Type != CardDungeonExit {
		return nil, fmt.Errorf("exit card %q has type %q, want %q", file.Exit.ID, file.Exit.Type, CardDungeonExit)
	}

	registry := &CardRegistry{
		starter: file.Starter,
		byID:    make(map[string]*CardDef, len(file.Starter)+1),
	}
	for i := range registry.starter {
		def := &registry.starter[i]
		if !def.Type.Valid() {
			return nil, fmt.Errorf("card %q has unknown type %q", def.ID, def.Type)
		}
		if def.Count < 0 {
			return nil, fmt.Errorf("card %q has negative count %d", def.ID, def.Count)
		}
		if _, dup := registry.byID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %q", def.ID)
		}
		registry.byID[def.ID] = def
	}

	exit := file.Exit
	registry.exit = &exit
	registry.byID[exit.ID] = registry.exit
	return registry, nil
}

// LoadCardRegistry loads and creates a registry from the embedded cards.json.
func LoadCardRegistry() (*CardRegistry, error) {
	file, err := LoadCards()
	if err != nil {
		return nil, err
	}
	return NewCardRegistry(file)
}

// MustLoadCardRegistry loads a registry, panicking on error.
func MustLoadCardRegistry() *CardRegistry {
	registry, err := LoadCardRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the card definition with the given ID, or nil if not found.
func (r *CardRegistry) GetByID(id string) *CardDef {
	return r.byID[id]
}

// Starter returns one definition per distinct starter card.
func (r *CardRegistry) Starter() []CardDef {
	return r.starter
}

// StarterPool expands the starter definitions by their counts.
func (r *CardRegistry) StarterPool() []*CardDef {
	pool := make([]*CardDef, 0, r.StarterSize())
	for i := range r.starter {
		for n := 0; n < r.starter[i].Count; n++ {
			pool = append(pool, &r.starter[i])
		}
	}
	return pool
}

// StarterSize returns the number of cards in the expanded starter pool.
func (r *CardRegistry) StarterSize() int {
	total := 0
	for _, def := range r.starter {
		total += def.Count
	}
	return total
}

// Exit returns the dungeon exit card definition.
func (r *CardRegistry) Exit() *CardDef {
	return r.exit
}

// Count returns the number of distinct card definitions, exit included.
func (r *CardRegistry) Count() int {
	return len(r.byID)
}
