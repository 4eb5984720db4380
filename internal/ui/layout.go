package ui

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the middle cell of r.
func (r Rect) Center() (x, y int) {
	return r.X + r.W/2, r.Y + r.H/2
}

const (
	deckWidth  = 12
	deckHeight = 8
	cardWidth  = 22
	cardHeight = 12
	heroWidth  = 24
	gap        = 3
	topMargin  = 3
)

// Layout places the game room's regions for a terminal size.
type Layout struct {
	Width, Height int

	Deck    Rect // Face-down draw pile
	Card    Rect // Active encounter card
	Hero    Rect // Hero stats panel
	Message Rect // Advisory text
	Status  int  // Row for the latest hit line
}

// NewLayout centers the room in a width x height terminal.
func NewLayout(width, height int) Layout {
	total := deckWidth + gap + cardWidth + gap + heroWidth
	left := max(0, (width-total)/2)

	l := Layout{Width: width, Height: height}
	l.Deck = Rect{X: left, Y: topMargin, W: deckWidth, H: deckHeight}
	l.Card = Rect{X: l.Deck.X + deckWidth + gap, Y: topMargin, W: cardWidth, H: cardHeight}
	l.Hero = Rect{X: l.Card.X + cardWidth + gap, Y: topMargin, W: heroWidth, H: cardHeight}

	msgY := topMargin + cardHeight + 1
	l.Message = Rect{X: 0, Y: msgY, W: width, H: max(0, height-msgY-2)}
	l.Status = max(0, height-1)
	return l
}

// OnCard reports whether a tap at (x, y) hits the deck or the active card.
func (l Layout) OnCard(x, y int) bool {
	return l.Deck.Contains(x, y) || l.Card.Contains(x, y)
}
