package encounter

import "github.com/samdwyer/dungeonsgambit/internal/entity"

// Category tells the presentation layer what kind of message to show.
type Category int

const (
	CategoryMessage Category = iota
	CategoryBattleStart
	CategoryHit
	CategoryVictory
	CategoryDefeat
	CategoryLoot
	CategoryLevelUp
	CategoryExit
	CategoryReward
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case CategoryMessage:
		return "message"
	case CategoryBattleStart:
		return "battle_start"
	case CategoryHit:
		return "hit"
	case CategoryVictory:
		return "victory"
	case CategoryDefeat:
		return "defeat"
	case CategoryLoot:
		return "loot"
	case CategoryLevelUp:
		return "level_up"
	case CategoryExit:
		return "exit"
	case CategoryReward:
		return "reward"
	default:
		return "unknown"
	}
}

// Advisory is what the state machine asks the presentation layer to show
// after a transition.
type Advisory struct {
	Category Category
	Text     string
	XP       int // Set for victories
	Deltas   []entity.StatDelta
}

// Blocking reports whether the advisory plays a main text animation that
// must finish before taps are accepted. Hit numbers only float.
func (a Advisory) Blocking() bool {
	return a.Category != CategoryHit
}

// AnimationStatus is the one thing the state machine reads back from the
// presentation layer.
type AnimationStatus interface {
	TextAnimationFinished() bool
}

// Presenter receives advisories and reports animation status.
type Presenter interface {
	AnimationStatus
	Announce(a Advisory)
}
