// Package ui is the raylib window frontend: arena, leaderboard, overlays and
// the speed multiplier field.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cellwars/components"
)

// Theme holds UI styling constants.
type Theme struct {
	Background   rl.Color
	ScoreboardBg rl.Color
	Divider      rl.Color
	TextLight    rl.Color
	TextMuted    rl.Color
	BarBg        rl.Color
	Overlay      rl.Color
	FieldBg      rl.Color
	FieldFocus   rl.Color

	Padding      int32
	EntryHeight  int32
	BarHeight    int32
	FontSmall    int32
	FontMain     int32
	FontTitle    int32
	FontMedium   int32
	FontLarge    int32
	DividerWidth float32
	FieldHeight  int32
	ButtonHeight int32
	LeaderboardY int32
	FirstEntryY  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:   rl.Color{R: 25, G: 25, B: 25, A: 255},
		ScoreboardBg: rl.Color{R: 35, G: 35, B: 35, A: 255},
		Divider:      rl.Color{R: 100, G: 100, B: 100, A: 255},
		TextLight:    rl.Color{R: 220, G: 220, B: 220, A: 255},
		TextMuted:    rl.Color{R: 180, G: 180, B: 180, A: 255},
		BarBg:        rl.Color{R: 50, G: 50, B: 50, A: 255},
		Overlay:      rl.Color{R: 25, G: 25, B: 25, A: 200},
		FieldBg:      rl.Color{R: 50, G: 50, B: 50, A: 255},
		FieldFocus:   rl.Color{R: 120, G: 160, B: 220, A: 255},

		Padding:      10,
		EntryHeight:  55,
		BarHeight:    10,
		FontSmall:    14,
		FontMain:     16,
		FontTitle:    22,
		FontMedium:   36,
		FontLarge:    80,
		DividerWidth: 2,
		FieldHeight:  24,
		ButtonHeight: 28,
		LeaderboardY: 50,
		FirstEntryY:  80,
	}
}

// toRL converts a simulation color to an opaque raylib color.
func toRL(c components.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
