package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func TestMapKeys(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		want    []core.Action
	}{
		{"nothing", nil, nil},
		{"space flaps", []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionJump}},
		{"left ctrl fires", []ebiten.Key{ebiten.KeyControlLeft}, []core.Action{core.ActionFire}},
		{"flap and fire together", []ebiten.Key{ebiten.KeyW, ebiten.KeyF}, []core.Action{core.ActionJump, core.ActionFire}},
		{"escape pauses", []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionPause}},
		{"r restarts", []ebiten.Key{ebiten.KeyR}, []core.Action{core.ActionRestart}},
		{"q quits", []ebiten.Key{ebiten.KeyQ}, []core.Action{core.ActionQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			down := make(map[ebiten.Key]bool)
			for _, k := range tt.pressed {
				down[k] = true
			}
			in := mapKeys(func(k ebiten.Key) bool { return down[k] })

			for _, a := range tt.want {
				if !in.Has(a) {
					t.Errorf("expected %s in frame", a)
				}
			}
			count := 0
			for _, set := range in.Actions {
				if set {
					count++
				}
			}
			if count != len(tt.want) {
				t.Errorf("frame has %d actions, expected %d", count, len(tt.want))
			}
		})
	}
}
