package draw

import (
	"math"
	"strconv"
	"strings"
)

// Canvas is a color drawing buffer with 2x vertical resolution using
// half-block characters. Game code draws in logical coordinates; the
// canvas scales them to whatever terminal it is rendered on.
type Canvas struct {
	termWidth      int
	termHeight     int
	subPixelHeight int // termHeight * 2

	// Sub-pixel color buffer, row-major. set marks which are drawn.
	pixels []Color
	set    []bool

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	// Offset for centering when the terminal is larger than needed.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder
	numBuf    [20]byte
}

// NewScaledCanvas creates a canvas that scales logical coordinates to the
// given terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{logicalWidth: logicalWidth, logicalHeight: logicalHeight}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 1 {
		termWidth = 1
	}
	if termHeight < 1 {
		termHeight = 1
	}
	subPixelHeight := termHeight * 2
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.set = make([]bool, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}
	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// Size returns the terminal dimensions the canvas renders to.
func (c *Canvas) Size() (width, height int) {
	return c.termWidth, c.termHeight
}

// Clear erases the canvas.
func (c *Canvas) Clear() {
	clear(c.set)
}

func (c *Canvas) setPixel(px, py int, col Color) {
	if px >= 0 && px < c.termWidth && py >= 0 && py < c.subPixelHeight {
		i := py*c.termWidth + px
		c.pixels[i] = col
		c.set[i] = true
	}
}

// FillRect fills a logical-coordinate rectangle. y grows downward.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	x0 := int(math.Round(x * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	x1 := int(math.Round((x + w) * c.scaleX))
	y1 := int(math.Round((y + h) * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.setPixel(px, py, col)
		}
	}
}

// Render writes the canvas as half-block characters with 24-bit colors.
// Rows are written with explicit cursor moves so a partial terminal
// redraw never smears.
func (c *Canvas) Render(cw *ChunkWriter) {
	c.renderBuf.Reset()

	for row := 0; row < c.termHeight; row++ {
		cw.MoveCursor(1, row+1)

		topBase := (row * 2) * c.termWidth
		botBase := (row*2 + 1) * c.termWidth
		var curFG, curBG Color
		fgActive, bgActive := false, false

		for x := 0; x < c.termWidth; x++ {
			topSet := c.set[topBase+x]
			botSet := c.set[botBase+x]
			top := c.pixels[topBase+x]
			bot := c.pixels[botBase+x]

			switch {
			case topSet && botSet:
				if !fgActive || curFG != top {
					c.writeSGR(38, top)
					curFG, fgActive = top, true
				}
				if !bgActive || curBG != bot {
					c.writeSGR(48, bot)
					curBG, bgActive = bot, true
				}
				c.renderBuf.WriteRune('▀')
			case topSet:
				if bgActive {
					c.renderBuf.WriteString("\033[49m")
					bgActive = false
				}
				if !fgActive || curFG != top {
					c.writeSGR(38, top)
					curFG, fgActive = top, true
				}
				c.renderBuf.WriteRune('▀')
			case botSet:
				if bgActive {
					c.renderBuf.WriteString("\033[49m")
					bgActive = false
				}
				if !fgActive || curFG != bot {
					c.writeSGR(38, bot)
					curFG, fgActive = bot, true
				}
				c.renderBuf.WriteRune('▄')
			default:
				if bgActive {
					c.renderBuf.WriteString("\033[49m")
					bgActive = false
				}
				c.renderBuf.WriteByte(' ')
			}
		}
		c.renderBuf.WriteString("\033[0m")
		cw.WriteString(c.renderBuf.String())
		c.renderBuf.Reset()
	}
}

// writeSGR appends a 24-bit color sequence; mode 38 sets the foreground,
// 48 the background.
func (c *Canvas) writeSGR(mode int, col Color) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(mode), 10))
	c.renderBuf.WriteString(";2;")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.R), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.G), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col.B), 10))
	c.renderBuf.WriteByte('m')
}
