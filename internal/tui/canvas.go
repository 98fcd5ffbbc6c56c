package tui

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera maps world coordinates onto the character canvas. Terminal cells
// are roughly twice as tall as wide, so y is compressed by half.
type Camera struct {
	Pos  mgl64.Vec2
	Zoom float64
}

const (
	minZoom = 0.005
	maxZoom = 10.0
)

func (c *Camera) WorldToScreen(p mgl64.Vec2, w, h int) (int, int) {
	x := (p.X()-c.Pos.X())*c.Zoom + float64(w)/2
	y := (p.Y()-c.Pos.Y())*c.Zoom*0.5 + float64(h)/2
	return int(x), int(y)
}

func (c *Camera) ScreenToWorld(sx, sy, w, h int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(sx)-float64(w)/2)/c.Zoom + c.Pos.X(),
		(float64(sy)-float64(h)/2)/(c.Zoom*0.5) + c.Pos.Y(),
	}
}

// Pan moves the camera by a screen-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.Pos = c.Pos.Add(mgl64.Vec2{dx / c.Zoom, dy / c.Zoom})
}

// Scale multiplies the zoom, clamped to keep the view usable.
func (c *Camera) Scale(factor float64) {
	c.Zoom *= factor
	if c.Zoom < minZoom {
		c.Zoom = minZoom
	}
	if c.Zoom > maxZoom {
		c.Zoom = maxZoom
	}
}

// Canvas is a rune grid rebuilt every frame.
type Canvas struct {
	w, h  int
	cells [][]rune
}

func NewCanvas(w, h int) *Canvas {
	cells := make([][]rune, h)
	for i := range cells {
		cells[i] = make([]rune, w)
	}
	c := &Canvas{w: w, h: h, cells: cells}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
}

func (c *Canvas) Set(x, y int, r rune) {
	if x >= 0 && x < c.w && y >= 0 && y < c.h {
		c.cells[y][x] = r
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow((c.w + 1) * c.h)
	for y, row := range c.cells {
		b.WriteString(string(row))
		if y < c.h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
