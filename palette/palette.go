// Package palette generates team display colors.
package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/cellwars/components"
	"github.com/pthm-cable/cellwars/config"
)

// NoTeam is the color used for a draw, when no team survived.
var NoTeam = components.Color{R: 200, G: 200, B: 200}

// Params controls color generation in CIE LCh(ab) space.
// Chroma and lightness use the 0-100 scale.
type Params struct {
	Chroma    float64
	LightEven float64
	LightOdd  float64
}

// ParamsFromConfig extracts palette parameters from config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		Chroma:    cfg.Palette.Chroma,
		LightEven: cfg.Palette.LightEven,
		LightOdd:  cfg.Palette.LightOdd,
	}
}

// Teams returns n colors with hues spaced evenly around the wheel.
// Lightness alternates between even and odd teams so neighbours stay distinct.
func Teams(n int, p Params) []components.Color {
	colors := make([]components.Color, n)
	for i := range colors {
		hue := float64(i) * 360.0 / float64(n)
		light := p.LightEven
		if i%2 == 1 {
			light = p.LightOdd
		}
		c := colorful.Hcl(hue, p.Chroma/100, light/100).Clamped()
		r, g, b := c.RGB255()
		colors[i] = components.Color{R: r, G: g, B: b}
	}
	return colors
}

// Dim scales a color toward black by factor f in [0,1].
func Dim(c components.Color, f float64) components.Color {
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	out := src.BlendLab(colorful.Color{}, 1-f).Clamped()
	r, g, b := out.RGB255()
	return components.Color{R: r, G: g, B: b}
}
