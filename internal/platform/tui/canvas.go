package tui

import (
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// Glyphs used to draw sprites as terminal cells.
const (
	glyphSky        = ' '
	glyphPipe       = '█'
	glyphPipeLip    = '▓'
	glyphBird       = '@'
	glyphBirdDead   = 'x'
	glyphFly        = 'W'
	glyphFlyFalling = 'M'
	glyphBullet     = '-'
	glyphGrass      = '▀'
	glyphDirt       = '▒'
	glyphDirtAlt    = '░'
)

// birdWings cycles through the wing positions of the bird's animation.
var birdWings = []rune{'v', '-', '^'}

// CellCanvas draws a pixel playfield into a character Screen.
// Sprites become blocks of glyphs covering every cell their rectangle
// touches, scaled from playfield pixels to the cell grid.
type CellCanvas struct {
	screen *core.Screen
	scaleX float64
	scaleY float64
	rows   int // Screen rows given to the playfield
}

// NewCellCanvas maps a playW x playH playfield onto the first rows of screen.
func NewCellCanvas(screen *core.Screen, playW, playH, rows int) *CellCanvas {
	c := &CellCanvas{screen: screen}
	c.Resize(playW, playH, rows)
	return c
}

// Resize recomputes the scale after the screen or playfield changed.
func (c *CellCanvas) Resize(playW, playH, rows int) {
	rows = min(rows, c.screen.Height())
	c.rows = max(rows, 1)
	c.scaleX = float64(c.screen.Width()) / float64(max(playW, 1))
	c.scaleY = float64(c.rows) / float64(max(playH, 1))
}

// cellRect converts a playfield rectangle to cells [x0,x1) x [y0,y1).
// Anything with a positive size covers at least one cell.
func (c *CellCanvas) cellRect(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.Left() * c.scaleX))
	y0 = int(math.Floor(r.Top() * c.scaleY))
	x1 = int(math.Ceil(r.Right() * c.scaleX))
	y1 = int(math.Ceil(r.Bottom() * c.scaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, min(y1, c.rows)
}

// Blit draws a sprite as glyphs.
func (c *CellCanvas) Blit(s core.Sprite, dst core.Rect, opts core.BlitOptions) {
	x0, y0, x1, y1 := c.cellRect(dst)
	if y0 >= y1 {
		return
	}

	switch s {
	case core.SpriteBackground:
		c.screen.FillRect(x0, y0, x1, y1, glyphSky, core.ColorDefault)

	case core.SpritePipe:
		c.screen.FillRect(x0, y0, x1, y1, glyphPipe, core.ColorGreen)
		// The lip faces the opening
		lip := y0
		if opts.FlipV {
			lip = y1 - 1
		}
		c.screen.FillRect(x0, lip, x1, lip+1, glyphPipeLip, core.ColorBrightGreen)

	case core.SpriteBird:
		if opts.Angle <= -90 {
			c.screen.FillRect(x0, y0, x1, y1, glyphBirdDead, core.ColorYellow)
			return
		}
		c.screen.FillRect(x0, y0, x1, y1, glyphBird, core.ColorYellow)
		wing := birdWings[opts.Frame%len(birdWings)]
		c.screen.SetColored(x0, y0, wing, core.ColorBrightYellow)

	case core.SpriteFly:
		if opts.Angle != 0 {
			c.screen.FillRect(x0, y0, x1, y1, glyphFlyFalling, core.ColorGray)
			return
		}
		c.screen.FillRect(x0, y0, x1, y1, glyphFly, core.ColorMagenta)

	case core.SpriteBullet:
		c.screen.FillRect(x0, y0, x1, y1, glyphBullet, core.ColorBrightRed)

	case core.SpriteGround:
		c.screen.FillRect(x0, y0, x1, y0+1, glyphGrass, core.ColorGreen)
		for y := y0 + 1; y < y1; y++ {
			for x := max(x0, 0); x < x1; x++ {
				// Stripes anchored to the sprite's left edge so they scroll with it
				g := glyphDirt
				if (x-x0+y)%2 == 1 {
					g = glyphDirtAlt
				}
				c.screen.SetColored(x, y, g, core.ColorBrown)
			}
		}

	case core.SpriteRestart:
		c.screen.FillRect(x0, y0, x1, y1, ' ', core.ColorDefault)
		c.screen.DrawBox(x0, y0, x1-x0, y1-y0, core.ColorBrightWhite)
		label := "RESTART"
		cx := (x0+x1)/2 - len(label)/2
		c.screen.DrawText(cx, (y0+y1)/2, label, core.ColorBrightWhite)
	}
}

// Text draws a string centered on the cell under (cx, cy).
func (c *CellCanvas) Text(text string, cx, cy float64, col core.Color) {
	y := int(math.Floor(cy * c.scaleY))
	if y < 0 || y >= c.rows {
		return
	}
	x := int(math.Round(cx*c.scaleX)) - len([]rune(text))/2
	c.screen.DrawText(x, y, text, col)
}

var _ core.Canvas = (*CellCanvas)(nil)
