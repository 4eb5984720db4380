package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonsgambit/internal/entity"
	"github.com/samdwyer/dungeonsgambit/internal/gamedata"
)

const title = "DUNGEON'S GAMBIT"

// RoomView is everything the game room needs drawn for one frame.
type RoomView struct {
	Hero      *entity.Hero
	Card      *entity.Card // Active encounter card, or nil
	Remaining int          // Cards left in the deck
	State     string       // Encounter sub-state, shown in the header
	Message   string       // Typed-out advisory text
	Status    string
	Floating  []FloatingDelta
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Layout returns the room layout for the current terminal size.
func (r *Renderer) Layout() Layout {
	w, h := r.screen.Size()
	return NewLayout(w, h)
}

// RenderTitle draws the title screen. The prompt appears once taps are
// accepted.
func (r *Renderer) RenderTitle(ready bool) {
	r.screen.Clear()
	w, h := r.screen.Size()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.centered(w, h/2-2, title, titleStyle)
	r.centered(w, h/2, "a dungeon crawl in one deck", tcell.StyleDefault.Foreground(tcell.ColorGray))
	if ready {
		r.centered(w, h/2+3, "tap or press space to begin", tcell.StyleDefault.Foreground(tcell.ColorWhite))
	}

	r.screen.Show()
}

// RenderShuffle draws the shuffle transition. progress runs from 0 to 1.
func (r *Renderer) RenderShuffle(progress float64) {
	r.screen.Clear()
	w, h := r.screen.Size()

	progress = max(0, min(1, progress))
	r.centered(w, h/2-2, "Shuffling...", tcell.StyleDefault.Foreground(tcell.ColorYellow))

	barWidth := min(30, w-4)
	filled := int(float64(barWidth) * progress)
	x := (w - barWidth) / 2
	for i := 0; i < barWidth; i++ {
		ch := '░'
		if i < filled {
			ch = '█'
		}
		r.screen.SetContent(x+i, h/2, ch, tcell.StyleDefault.Foreground(tcell.ColorSilver))
	}

	r.screen.Show()
}

// RenderRoom draws the game room.
func (r *Renderer) RenderRoom(view RoomView) {
	r.screen.Clear()
	l := r.Layout()

	header := title
	if view.State != "" {
		header += "  [" + view.State + "]"
	}
	r.screen.SetString(1, 0, header, tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))

	r.drawDeck(l.Deck, view.Remaining)
	if view.Card != nil {
		r.drawCard(l.Card, view.Card)
	}
	if view.Hero != nil {
		r.drawHero(l.Hero, view.Hero, view.Floating)
	}

	msgStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	for i, line := range Lines(view.Message) {
		if i >= l.Message.H {
			break
		}
		r.centered(l.Width, l.Message.Y+i, line, msgStyle)
	}
	if view.Status != "" {
		r.screen.SetString(1, l.Status, view.Status, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	r.screen.Show()
}

func (r *Renderer) drawDeck(rect Rect, remaining int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorPurple)
	if remaining == 0 {
		style = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	r.box(rect, style)
	for y := rect.Y + 1; y < rect.Y+rect.H-1; y++ {
		for x := rect.X + 1; x < rect.X+rect.W-1; x++ {
			r.screen.SetContent(x, y, '▒', style)
		}
	}
	label := fmt.Sprintf(" %d ", remaining)
	r.screen.SetString(rect.X+(rect.W-len(label))/2, rect.Y+rect.H/2, label, style.Bold(true))
	r.screen.SetString(rect.X, rect.Y+rect.H, "Deck", tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (r *Renderer) drawCard(rect Rect, card *entity.Card) {
	color := card.Color()
	border := tcell.StyleDefault.Foreground(color)
	r.box(rect, border)

	name := tcell.StyleDefault.Foreground(color).Bold(true)
	r.inBox(rect, 1, card.Name, name)
	r.inBox(rect, 2, card.Type.Label(), tcell.StyleDefault.Foreground(tcell.ColorGray))

	text := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, line := range CardLines(card) {
		r.inBox(rect, 4+i, line, text)
	}
}

// CardLines returns the stat lines printed on a card face.
func CardLines(card *entity.Card) []string {
	var lines []string
	switch card.Type {
	case gamedata.CardEnemy:
		lines = append(lines,
			fmt.Sprintf("HP  %d/%d", max(0, card.CurrentHealth), card.Health),
			fmt.Sprintf("ATK %d", card.Attack),
			fmt.Sprintf("DEF %d", card.CurrentDefense),
		)
		lines = append(lines, fmt.Sprintf("%dXP", card.XPGain))
	case gamedata.CardEquipment:
		if card.Health > 0 {
			lines = append(lines, fmt.Sprintf("Heal %d", card.Health))
		}
		if card.Attack > 0 {
			lines = append(lines, fmt.Sprintf("+%d ATK", card.Attack))
		}
		if card.Defense > 0 {
			lines = append(lines, fmt.Sprintf("+%d DEF", card.Defense))
		}
		if card.InventoryBoost > 0 {
			lines = append(lines, fmt.Sprintf("+%d Slots", card.InventoryBoost))
		}
		lines = append(lines, fmt.Sprintf("Sells %dXP", card.XPGain))
	case gamedata.CardLevelUp:
		if card.Health > 0 {
			lines = append(lines, fmt.Sprintf("+%d Max HP", card.Health))
		}
		if card.Attack > 0 {
			lines = append(lines, fmt.Sprintf("+%d Min ATK", card.Attack))
		}
		if card.Defense > 0 {
			lines = append(lines, fmt.Sprintf("+%d Min DEF", card.Defense))
		}
	case gamedata.CardDungeonExit:
		lines = append(lines, "The way out")
	}
	return lines
}

func (r *Renderer) drawHero(rect Rect, hero *entity.Hero, floats []FloatingDelta) {
	label := tcell.StyleDefault.Foreground(tcell.ColorGray)
	value := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)

	r.screen.SetString(rect.X, rect.Y, "Hero", tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true))
	rows := []struct {
		name  string
		value string
	}{
		{"HP", fmt.Sprintf("%d/%d", max(0, hero.Health), hero.MaxHealth)},
		{"ATK", fmt.Sprintf("%d (min %d)", hero.Attack, hero.MinAttack)},
		{"DEF", fmt.Sprintf("%d (min %d)", hero.Defense, hero.MinDefense)},
		{"Slots", fmt.Sprintf("%d/%d", len(hero.CurrentEquipment), hero.EquipmentSlots)},
		{"XP", fmt.Sprintf("%d", hero.Experience)},
	}
	for i, row := range rows {
		y := rect.Y + 2 + i
		r.screen.SetString(rect.X, y, row.name, label)
		r.screen.SetString(rect.X+6, y, row.value, value)
	}

	y := rect.Y + 2 + len(rows) + 1
	for _, item := range hero.CurrentEquipment {
		if y >= rect.Y+rect.H {
			break
		}
		r.screen.SetString(rect.X, y, "- "+item.Name, tcell.StyleDefault.Foreground(item.Color()))
		y++
	}

	// Newest deltas sit lowest and drift up as they age.
	for i, f := range floats {
		rise := int(f.Age * 3 / FloatDuration)
		fy := rect.Y + rect.H - 1 - (len(floats) - 1 - i) - rise
		style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
		if f.Amount < 0 {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
		}
		r.screen.SetString(rect.X+rect.W-10, fy, f.String(), style)
	}
}

func (r *Renderer) box(rect Rect, style tcell.Style) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	right, bottom := rect.X+rect.W-1, rect.Y+rect.H-1
	for x := rect.X + 1; x < right; x++ {
		r.screen.SetContent(x, rect.Y, tcell.RuneHLine, style)
		r.screen.SetContent(x, bottom, tcell.RuneHLine, style)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		r.screen.SetContent(rect.X, y, tcell.RuneVLine, style)
		r.screen.SetContent(right, y, tcell.RuneVLine, style)
	}
	r.screen.SetContent(rect.X, rect.Y, tcell.RuneULCorner, style)
	r.screen.SetContent(right, rect.Y, tcell.RuneURCorner, style)
	r.screen.SetContent(rect.X, bottom, tcell.RuneLLCorner, style)
	r.screen.SetContent(right, bottom, tcell.RuneLRCorner, style)
}

// inBox centers text on row dy of rect, clipped to the border.
func (r *Renderer) inBox(rect Rect, dy int, text string, style tcell.Style) {
	runes := []rune(text)
	inner := rect.W - 2
	if len(runes) > inner {
		runes = runes[:inner]
	}
	x := rect.X + 1 + (inner-len(runes))/2
	r.screen.SetString(x, rect.Y+dy, string(runes), style)
}

func (r *Renderer) centered(width, y int, text string, style tcell.Style) {
	x := max(0, (width-len([]rune(text)))/2)
	r.screen.SetString(x, y, text, style)
}
