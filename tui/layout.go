// Package tui is the terminal frontend, drawing the arena with tcell.
package tui

import "math"

// sidebarWidth is the column count reserved for the leaderboard.
const sidebarWidth = 30

// layout maps arena coordinates onto terminal cells.
type layout struct {
	cols, rows int // arena area in cells
	sidebarX   int
	arenaW     float64
	arenaH     float64
}

func newLayout(screenW, screenH int, arenaW, arenaH float64) layout {
	cols := max(screenW-sidebarWidth, 10)
	rows := max(screenH, 5)
	return layout{
		cols:     cols,
		rows:     rows,
		sidebarX: cols,
		arenaW:   arenaW,
		arenaH:   arenaH,
	}
}

// cell returns the terminal cell containing arena point (x, y).
func (l layout) cell(x, y float64) (int, int) {
	col := int(x / l.arenaW * float64(l.cols))
	row := int(y / l.arenaH * float64(l.rows))
	return clamp(col, 0, l.cols-1), clamp(row, 0, l.rows-1)
}

// disc returns the cells covered by a circle, always at least its center.
func (l layout) disc(x, y, radius float64) [][2]int {
	cx, cy := l.cell(x, y)
	rx := radius / l.arenaW * float64(l.cols)
	ry := radius / l.arenaH * float64(l.rows)
	if rx < 1 && ry < 1 {
		return [][2]int{{cx, cy}}
	}

	var out [][2]int
	fx := x / l.arenaW * float64(l.cols)
	fy := y / l.arenaH * float64(l.rows)
	for row := int(math.Floor(fy - ry)); row <= int(math.Ceil(fy+ry)); row++ {
		if row < 0 || row >= l.rows {
			continue
		}
		for col := int(math.Floor(fx - rx)); col <= int(math.Ceil(fx+rx)); col++ {
			if col < 0 || col >= l.cols {
				continue
			}
			dx := (float64(col) + 0.5 - fx) / rx
			dy := (float64(row) + 0.5 - fy) / ry
			if dx*dx+dy*dy <= 1 {
				out = append(out, [2]int{col, row})
			}
		}
	}
	if len(out) == 0 {
		out = append(out, [2]int{cx, cy})
	}
	return out
}

// bar splits a bar of width cells into filled and empty parts.
func bar(fraction float64, width int) (filled, empty int) {
	fraction = math.Max(0, math.Min(1, fraction))
	filled = int(math.Round(fraction * float64(width)))
	return filled, width - filled
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
