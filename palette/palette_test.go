package palette

import (
	"testing"

	"github.com/pthm-cable/cellwars/components"
	"github.com/pthm-cable/cellwars/config"
)

func defaultParams(t *testing.T) Params {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	return ParamsFromConfig(cfg)
}

func TestTeamsDistinct(t *testing.T) {
	colors := Teams(8, defaultParams(t))
	if len(colors) != 8 {
		t.Fatalf("got %d colors, want 8", len(colors))
	}

	seen := make(map[components.Color]int)
	for i, c := range colors {
		if j, ok := seen[c]; ok {
			t.Errorf("team %d and team %d share color %+v", j, i, c)
		}
		seen[c] = i
	}
}

func TestTeamsDeterministic(t *testing.T) {
	p := defaultParams(t)
	a := Teams(5, p)
	b := Teams(5, p)
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("color %d differs between calls: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestTeamsAlternateLightness(t *testing.T) {
	colors := Teams(2, Params{Chroma: 0, LightEven: 90, LightOdd: 20})

	// Zero chroma gives greys, so lightness alone decides brightness
	if colors[0].R <= colors[1].R {
		t.Errorf("even team %+v should be lighter than odd team %+v", colors[0], colors[1])
	}
}

func TestDim(t *testing.T) {
	c := components.Color{R: 200, G: 100, B: 50}

	if got := Dim(c, 1); got != c {
		t.Errorf("Dim(c, 1) = %+v, want unchanged %+v", got, c)
	}
	if got := Dim(c, 0); got != (components.Color{}) {
		t.Errorf("Dim(c, 0) = %+v, want black", got)
	}
}
