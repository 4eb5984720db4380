package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/dungeonsgambit/internal/encounter"
	"github.com/samdwyer/dungeonsgambit/internal/entity"
	"github.com/samdwyer/dungeonsgambit/internal/gamedata"
)

func newSimScreen(t *testing.T, w, h int) (*Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenWith(sim)
	require.NoError(t, err)
	sim.SetSize(w, h)
	t.Cleanup(screen.Close)
	return screen, sim
}

// screenText returns the whole screen as newline-separated rows.
func screenText(sim tcell.SimulationScreen) string {
	w, h := sim.Size()
	var b strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := sim.GetContent(x, y)
			if r == 0 {
				r = ' '
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}
	tests := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 4, true},
		{6, 4, false},
		{5, 5, false},
		{1, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestLayoutRegionsDoNotOverlap(t *testing.T) {
	l := NewLayout(100, 30)
	assert.LessOrEqual(t, l.Deck.X+l.Deck.W, l.Card.X)
	assert.LessOrEqual(t, l.Card.X+l.Card.W, l.Hero.X)
	assert.Greater(t, l.Message.Y, l.Card.Y+l.Card.H-1)

	dx, dy := l.Deck.Center()
	assert.True(t, l.OnCard(dx, dy))
	cx, cy := l.Card.Center()
	assert.True(t, l.OnCard(cx, cy))
	hx, hy := l.Hero.Center()
	assert.False(t, l.OnCard(hx, hy))
	assert.False(t, l.OnCard(0, l.Status))
}

func TestLayoutSmallTerminal(t *testing.T) {
	l := NewLayout(20, 10)
	assert.Equal(t, 0, l.Deck.X)
	assert.GreaterOrEqual(t, l.Message.H, 0)
}

func TestPresenterTextAnimation(t *testing.T) {
	clock := encounter.NewFakeClock(time.Now())
	p := NewPresenter(clock, 2*time.Second)
	assert.True(t, p.TextAnimationFinished(), "nothing to animate")

	p.Announce(encounter.Advisory{Category: encounter.CategoryVictory, Text: "Victory!", XP: 5})
	assert.False(t, p.TextAnimationFinished())
	assert.Equal(t, "", p.VisibleText())

	clock.Advance(time.Second)
	assert.Equal(t, "Vict", p.VisibleText())
	assert.False(t, p.TextAnimationFinished())

	clock.Advance(time.Second)
	assert.True(t, p.TextAnimationFinished())
	assert.Equal(t, "Victory!", p.VisibleText())

	msg, ok := p.Message()
	require.True(t, ok)
	assert.Equal(t, 5, msg.XP)
}

func TestPresenterHitsDoNotBlock(t *testing.T) {
	clock := encounter.NewFakeClock(time.Now())
	p := NewPresenter(clock, 2*time.Second)

	p.Announce(encounter.Advisory{
		Category: encounter.CategoryHit,
		Text:     "Hero hits Rat for 1!",
		Deltas:   []entity.StatDelta{{Stat: entity.StatEnemyHealth, Amount: -1}},
	})
	assert.True(t, p.TextAnimationFinished())
	assert.Equal(t, "Hero hits Rat for 1!", p.Status())
	_, ok := p.Message()
	assert.False(t, ok)

	floats := p.Floating()
	require.Len(t, floats, 1)
	assert.Equal(t, -1, floats[0].Amount)

	clock.Advance(FloatDuration)
	assert.Empty(t, p.Floating())
}

func TestPresenterClear(t *testing.T) {
	clock := encounter.NewFakeClock(time.Now())
	p := NewPresenter(clock, time.Second)
	p.Announce(encounter.Advisory{Category: encounter.CategoryDefeat, Text: "Defeat!",
		Deltas: []entity.StatDelta{{Stat: entity.StatHealth, Amount: -3}}})

	p.Clear()
	assert.True(t, p.TextAnimationFinished())
	assert.Equal(t, "", p.VisibleText())
	assert.Empty(t, p.Floating())
}

func TestLines(t *testing.T) {
	assert.Nil(t, Lines(""))
	assert.Equal(t, []string{"Battle", "Start!"}, Lines("Battle\nStart!"))
}

func TestCardLines(t *testing.T) {
	enemy := entity.NewCardFromDef(&gamedata.CardDef{Name: "Orc", Type: gamedata.CardEnemy, Health: 5, Attack: 1, XPGain: 50})
	enemy.CurrentHealth = -2
	assert.Equal(t, []string{"HP  0/5", "ATK 1", "DEF 0", "50XP"}, CardLines(enemy))

	bag := entity.NewCardFromDef(&gamedata.CardDef{Name: "Backpack", Type: gamedata.CardEquipment, InventoryBoost: 1, XPGain: 10})
	assert.Equal(t, []string{"+1 Slots", "Sells 10XP"}, CardLines(bag))

	boost := entity.NewCardFromDef(&gamedata.CardDef{Name: "HP Boost", Type: gamedata.CardLevelUp, Health: 5})
	assert.Equal(t, []string{"+5 Max HP"}, CardLines(boost))
}

func TestRenderTitle(t *testing.T) {
	screen, sim := newSimScreen(t, 80, 24)
	r := NewRenderer(screen)

	r.RenderTitle(false)
	text := screenText(sim)
	assert.Contains(t, text, title)
	assert.NotContains(t, text, "press space")

	r.RenderTitle(true)
	assert.Contains(t, screenText(sim), "press space")
}

func TestRenderRoom(t *testing.T) {
	screen, sim := newSimScreen(t, 100, 30)
	r := NewRenderer(screen)

	hero := entity.NewHero(gamedata.HeroDef{Health: 5, Attack: 1, EquipmentSlots: 3})
	goblin := entity.NewCardFromDef(&gamedata.CardDef{Name: "Goblin", Type: gamedata.CardEnemy, Health: 2, Attack: 1, XPGain: 20, Color: "#3FA34D"})

	r.RenderRoom(RoomView{
		Hero:      hero,
		Card:      goblin,
		Remaining: 12,
		State:     "player_turn",
		Message:   "Battle\nStart!",
		Status:    "Hero hits Goblin for 1!",
		Floating:  []FloatingDelta{{StatDelta: entity.StatDelta{Stat: entity.StatEnemyHealth, Amount: -1}}},
	})

	text := screenText(sim)
	assert.Contains(t, text, "player_turn")
	assert.Contains(t, text, "Goblin")
	assert.Contains(t, text, "HP  2/2")
	assert.Contains(t, text, " 12 ")
	assert.Contains(t, text, "5/5")
	assert.Contains(t, text, "Battle")
	assert.Contains(t, text, "Start!")
	assert.Contains(t, text, "Hero hits Goblin for 1!")
	assert.Contains(t, text, "-1 Enemy HP")
}

func TestRenderShuffle(t *testing.T) {
	screen, sim := newSimScreen(t, 80, 24)
	NewRenderer(screen).RenderShuffle(0.5)
	text := screenText(sim)
	assert.Contains(t, text, "Shuffling...")
	assert.Contains(t, text, "█")
	assert.Contains(t, text, "░")
}

func TestEventsStopsWhenClosedWithoutReader(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenWith(sim)
	require.NoError(t, err)

	events := screen.Events()
	for i := 0; i < 20; i++ {
		sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	}
	require.Eventually(t, func() bool { return len(events) == cap(events) },
		time.Second, 5*time.Millisecond, "event buffer never filled")

	screen.Close()

	received := 0
	timeout := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				assert.Equal(t, cap(events), received, "no events forwarded after Close")
				return
			}
			received++
		case <-timeout:
			t.Fatal("events channel not closed after Close")
		}
	}
}

func TestCloseTwice(t *testing.T) {
	screen, _ := newSimScreen(t, 10, 5)
	screen.Close()
	assert.NotPanics(t, screen.Close)
}
