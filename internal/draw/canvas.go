package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/arcadeworks/steroids/internal/geometry"
)

// Canvas is a drawing buffer with 2x vertical resolution using
// half-block characters. World coordinates (Y-up, origin bottom left)
// are scaled to fit the actual terminal and flipped into screen space.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int    // termHeight * 2
	pixels         []bool // [y*termWidth + x]

	world  geometry.Bounds
	scaleX float64 // termWidth / world.Width
	scaleY float64 // subPixelHeight / world.Height

	// 0-based terminal offsets for centering in oversized terminals.
	offsetCol int
	offsetRow int

	renderBuf       strings.Builder
	intersectionBuf []float64
}

// NewCanvas creates a canvas mapping the given world bounds onto a
// terminal of termWidth x termHeight cells.
func NewCanvas(termWidth, termHeight int, world geometry.Bounds) *Canvas {
	c := &Canvas{world: world}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adapts the canvas to new terminal dimensions. World bounds
// are unchanged; only the scaling updates.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.world.Width
	c.scaleY = float64(subPixelHeight) / c.world.Height
}

// SetOffset sets the column and row offset used when rendering, for
// centering the play field in a terminal bigger than it needs.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

func (c *Canvas) OffsetCol() int { return c.offsetCol }
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// TerminalWidth returns the terminal column count the canvas renders to.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count the canvas renders to.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// toPixel converts a world point to sub-pixel canvas coordinates,
// flipping Y so that world-up is screen-up. Truncation keeps both
// world edges inside the pixel grid.
func (c *Canvas) toPixel(v geometry.Vector) (int, int) {
	px := int(math.Floor(v.X * c.scaleX))
	py := c.subPixelHeight - 1 - int(math.Floor(v.Y*c.scaleY))
	return px, py
}

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// DrawPoint sets the single sub-pixel closest to the world point.
func (c *Canvas) DrawPoint(v geometry.Vector) {
	c.setPixel(c.toPixel(v))
}

// DrawSegment draws a line between two world points using Bresenham's
// algorithm in sub-pixel space.
func (c *Canvas) DrawSegment(a, b geometry.Vector) {
	x1, y1 := c.toPixel(a)
	x2, y2 := c.toPixel(b)

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws the outline through the world-space vertices, and
// optionally fills the interior with a scanline pass.
func (c *Canvas) DrawPolygon(verts []geometry.Vector, filled bool) {
	if len(verts) < 3 {
		return
	}
	if filled {
		c.fillPolygon(verts)
	}
	for i := range verts {
		c.DrawSegment(verts[i], verts[(i+1)%len(verts)])
	}
}

// fillPolygon runs a scanline fill in sub-pixel space.
func (c *Canvas) fillPolygon(verts []geometry.Vector) {
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, v := range verts {
		_, py := c.toPixel(v)
		fy := float64(py)
		if fy < minY {
			minY = fy
		}
		if fy > maxY {
			maxY = fy
		}
	}

	for y := int(minY); y <= int(maxY); y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]
		n := len(verts)
		for i := 0; i < n; i++ {
			x1, py1 := c.toPixel(verts[i])
			x2, py2 := c.toPixel(verts[(i+1)%n])
			fy1, fy2 := float64(py1), float64(py2)
			if (fy1 <= scanY && fy2 > scanY) || (fy2 <= scanY && fy1 > scanY) {
				t := (scanY - fy1) / (fy2 - fy1)
				intersections = append(intersections, float64(x1)+t*float64(x2-x1))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)
		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// maxChunkSize caps single writes for smooth flow over SSH. 1400 bytes
// stays under a typical MTU.
const maxChunkSize = 1400

// Render writes the canvas to w using half-block characters, skipping
// empty cells. Output is chunked for network writers.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12)

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}

	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box around the play field when the terminal is
// larger than the render area on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1
	hasV := c.offsetRow >= 1

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, strings.Repeat("─", c.termWidth))
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, strings.Repeat("─", c.termWidth))
		}
	}
	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// WorldToTerminal converts a world point to a 1-based terminal
// position, for placing text overlays next to canvas-drawn objects.
func (c *Canvas) WorldToTerminal(v geometry.Vector) (col, row int) {
	px, py := c.toPixel(v)
	return px + 1, py/2 + 1
}
