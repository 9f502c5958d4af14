package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

var (
	colorSky      = color.RGBA{112, 197, 206, 255}
	colorPipe     = color.RGBA{84, 170, 52, 255}
	colorPipeLip  = color.RGBA{58, 128, 36, 255}
	colorBird     = color.RGBA{245, 200, 40, 255}
	colorBirdWing = color.RGBA{250, 245, 230, 255}
	colorBeak     = color.RGBA{232, 97, 23, 255}
	colorFly      = color.RGBA{60, 60, 70, 255}
	colorFlyWing  = color.RGBA{200, 220, 240, 255}
	colorBullet   = color.RGBA{241, 76, 76, 255}
	colorGrass    = color.RGBA{115, 191, 46, 255}
	colorDirt     = color.RGBA{222, 216, 149, 255}
	colorDirtDark = color.RGBA{208, 196, 124, 255}
	colorButton   = color.RGBA{232, 97, 23, 255}
	colorOutline  = color.RGBA{255, 255, 255, 255}
)

// spriteSheet holds the procedurally drawn frames of every sprite.
// The images are sized like the playfield entities they stand for, so a
// blit at the entity's own size draws them 1:1.
type spriteSheet struct {
	frames map[core.Sprite][]*ebiten.Image
}

func newSpriteSheet() *spriteSheet {
	sheet := &spriteSheet{frames: make(map[core.Sprite][]*ebiten.Image)}

	sky := ebiten.NewImage(8, 8)
	sky.Fill(colorSky)
	sheet.frames[core.SpriteBackground] = []*ebiten.Image{sky}

	sheet.frames[core.SpriteBird] = []*ebiten.Image{
		birdFrame(16), birdFrame(10), birdFrame(4),
	}
	sheet.frames[core.SpritePipe] = []*ebiten.Image{pipeImage()}
	sheet.frames[core.SpriteFly] = []*ebiten.Image{flyFrame(0), flyFrame(6)}

	bullet := ebiten.NewImage(16, 8)
	bullet.Fill(colorBullet)
	sheet.frames[core.SpriteBullet] = []*ebiten.Image{bullet}

	sheet.frames[core.SpriteGround] = []*ebiten.Image{groundImage()}
	sheet.frames[core.SpriteRestart] = []*ebiten.Image{restartImage()}

	return sheet
}

// frame returns the image for a sprite's animation frame, wrapping the index.
func (s *spriteSheet) frame(sprite core.Sprite, i int) *ebiten.Image {
	frames := s.frames[sprite]
	if len(frames) == 0 {
		return nil
	}
	if i < 0 {
		i = -i
	}
	return frames[i%len(frames)]
}

// fillRect paints a rectangle of img.
func fillRect(img *ebiten.Image, x0, y0, x1, y1 int, c color.Color) {
	img.SubImage(image.Rect(x0, y0, x1, y1)).(*ebiten.Image).Fill(c)
}

// birdFrame draws the bird with its wing at height wingY.
func birdFrame(wingY int) *ebiten.Image {
	img := ebiten.NewImage(34, 24)
	fillRect(img, 2, 2, 30, 22, colorBird)
	fillRect(img, 30, 10, 34, 15, colorBeak)
	fillRect(img, 22, 5, 26, 9, colorOutline)
	fillRect(img, 4, wingY, 16, wingY+5, colorBirdWing)
	return img
}

// pipeImage draws a pipe with its lip at the top; callers flip it for the
// upper half of a pair.
func pipeImage() *ebiten.Image {
	img := ebiten.NewImage(52, 320)
	img.Fill(colorPipe)
	fillRect(img, 0, 0, 52, 24, colorPipeLip)
	fillRect(img, 6, 24, 12, 320, colorGrass)
	return img
}

// flyFrame draws the fly with its wings raised by lift pixels.
func flyFrame(lift int) *ebiten.Image {
	img := ebiten.NewImage(40, 30)
	fillRect(img, 8, 12, 32, 28, colorFly)
	fillRect(img, 10, 4-lift/2+2, 20, 12, colorFlyWing)
	fillRect(img, 22, 4-lift/2+2, 32, 12, colorFlyWing)
	fillRect(img, 2, 16, 8, 22, colorBullet)
	return img
}

// groundImage draws a strip of ground with diagonal stripes.
func groundImage() *ebiten.Image {
	img := ebiten.NewImage(903, 110)
	img.Fill(colorDirt)
	fillRect(img, 0, 0, 903, 12, colorGrass)
	for x := 0; x < 903; x += 24 {
		fillRect(img, x, 12, x+12, 110, colorDirtDark)
	}
	return img
}

// restartImage draws the restart button.
func restartImage() *ebiten.Image {
	img := ebiten.NewImage(120, 42)
	img.Fill(colorOutline)
	fillRect(img, 3, 3, 117, 39, colorButton)
	// Play triangle
	for i := 0; i < 12; i++ {
		fillRect(img, 52+i, 9+i, 53+i, 33-i, colorOutline)
	}
	return img
}
