package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// textScale enlarges the 7x13 bitmap font to a readable size.
const textScale = 3

// ImageCanvas draws sprites and text onto an Ebitengine image.
type ImageCanvas struct {
	dst     *ebiten.Image
	sprites *spriteSheet
	face    text.Face
}

// NewImageCanvas creates a canvas with the built-in sprites and font.
func NewImageCanvas() *ImageCanvas {
	return &ImageCanvas{
		sprites: newSpriteSheet(),
		face:    text.NewGoXFace(basicfont.Face7x13),
	}
}

// SetTarget selects the image subsequent draws land on.
func (c *ImageCanvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

// Blit scales the sprite into dst, then flips and rotates it about its center.
func (c *ImageCanvas) Blit(s core.Sprite, dst core.Rect, opts core.BlitOptions) {
	img := c.sprites.frame(s, opts.Frame)
	if img == nil || c.dst == nil {
		return
	}
	w, h := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(dst.W/w, dst.H/h)
	if opts.FlipV {
		op.GeoM.Scale(1, -1)
	}
	if opts.Angle != 0 {
		// Counter-clockwise on screen, where y grows downwards
		op.GeoM.Rotate(-opts.Angle * math.Pi / 180)
	}
	cx, cy := dst.Center()
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterNearest

	c.dst.DrawImage(img, op)
}

// Text draws a string centered on (cx, cy).
func (c *ImageCanvas) Text(s string, cx, cy float64, col core.Color) {
	if c.dst == nil {
		return
	}
	r, g, b := col.RGB()

	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(color.RGBA{r, g, b, 255})

	text.Draw(c.dst, s, c.face, op)
}

var _ core.Canvas = (*ImageCanvas)(nil)
