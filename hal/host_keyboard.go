//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeyboard maps window keys onto the board's buttons and joystick.
type hostKeyboard struct {
	buttons *virtualButtons
	stick   *hostJoystick
}

func newHostKeyboard(buttons *virtualButtons, stick *hostJoystick) *hostKeyboard {
	return &hostKeyboard{buttons: buttons, stick: stick}
}

var keyBindings = []struct {
	button Button
	keys   []ebiten.Key
}{
	{ButtonB, []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace}},
	{ButtonA, []ebiten.Key{ebiten.KeyX, ebiten.KeyTab}},
}

func (k *hostKeyboard) poll() {
	for _, kb := range keyBindings {
		if anyKey(kb.keys, inpututil.IsKeyJustPressed) {
			k.buttons.Set(kb.button, true)
		}
		if anyKey(kb.keys, inpututil.IsKeyJustReleased) && !anyKey(kb.keys, ebiten.IsKeyPressed) {
			k.buttons.Set(kb.button, false)
		}
	}

	left := ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	half := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	k.stick.set(stickRaw(left, right, half))
}

func anyKey(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, key := range keys {
		if pressed(key) {
			return true
		}
	}
	return false
}
