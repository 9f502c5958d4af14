package core

// Sprite identifies an image the platform knows how to draw.
// Games never load images themselves; they name a sprite and a destination
// rectangle and leave the pixels to the frontend.
type Sprite int

const (
	SpriteBackground Sprite = iota
	SpriteBird
	SpritePipe
	SpriteFly
	SpriteBullet
	SpriteGround
	SpriteRestart
)

// String returns a human-readable name for the sprite.
func (s Sprite) String() string {
	switch s {
	case SpriteBackground:
		return "background"
	case SpriteBird:
		return "bird"
	case SpritePipe:
		return "pipe"
	case SpriteFly:
		return "fly"
	case SpriteBullet:
		return "bullet"
	case SpriteGround:
		return "ground"
	case SpriteRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// BlitOptions modify how a sprite is drawn.
type BlitOptions struct {
	Frame int     // Animation frame index
	Angle float64 // Rotation in degrees, counter-clockwise, about the rect center
	FlipV bool    // Mirror vertically
}

// Canvas is the drawing surface a game renders into.
type Canvas interface {
	// Blit draws a sprite scaled into the destination rectangle.
	Blit(s Sprite, dst Rect, opts BlitOptions)
	// Text draws a string centered on (cx, cy).
	Text(text string, cx, cy float64, c Color)
}

// DrawCmd is one recorded Canvas call.
type DrawCmd struct {
	Sprite Sprite
	Dst    Rect
	Opts   BlitOptions

	IsText bool
	Text   string
	Color  Color
}

// DisplayList records Canvas calls so they can be replayed later.
// It lets the simulation draw while it updates, in its own fixed order,
// and lets a frontend present the frame whenever it is ready.
type DisplayList struct {
	cmds []DrawCmd
}

// Blit records a sprite draw.
func (d *DisplayList) Blit(s Sprite, dst Rect, opts BlitOptions) {
	d.cmds = append(d.cmds, DrawCmd{Sprite: s, Dst: dst, Opts: opts})
}

// Text records a text draw.
func (d *DisplayList) Text(text string, cx, cy float64, c Color) {
	d.cmds = append(d.cmds, DrawCmd{
		IsText: true,
		Text:   text,
		Dst:    Rect{X: cx, Y: cy},
		Color:  c,
	})
}

// Reset empties the list, keeping its storage.
func (d *DisplayList) Reset() {
	d.cmds = d.cmds[:0]
}

// Commands returns the recorded commands in draw order.
func (d *DisplayList) Commands() []DrawCmd {
	return d.cmds
}

// Replay issues every recorded command to c in order.
func (d *DisplayList) Replay(c Canvas) {
	for _, cmd := range d.cmds {
		if cmd.IsText {
			c.Text(cmd.Text, cmd.Dst.X, cmd.Dst.Y, cmd.Color)
			continue
		}
		c.Blit(cmd.Sprite, cmd.Dst, cmd.Opts)
	}
}

// Discard is a Canvas that draws nothing. Headless runs use it.
var Discard Canvas = discard{}

type discard struct{}

func (discard) Blit(Sprite, Rect, BlitOptions) {}

func (discard) Text(string, float64, float64, Color) {}
