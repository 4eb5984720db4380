package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// TypeColor is the fallback card face color when a definition has none.
func TypeColor(t CardType) tcell.Color {
	switch t {
	case CardEnemy:
		return tcell.ColorRed
	case CardEquipment:
		return tcell.ColorSilver
	case CardLevelUp:
		return tcell.ColorYellow
	case CardDungeonExit:
		return tcell.ColorAqua
	default:
		return tcell.ColorWhite
	}
}

// TCellColor returns the card's face color, falling back to its type color.
func (c *CardDef) TCellColor() tcell.Color {
	if c.Color == "" {
		return TypeColor(c.Type)
	}
	color, err := ParseHexColor(c.Color)
	if err != nil {
		return TypeColor(c.Type)
	}
	return color
}
