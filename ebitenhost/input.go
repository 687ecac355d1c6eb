// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gmath"
)

// touchIDs is reused between frames to avoid an allocation per Update.
var touchIDs []ebiten.TouchID

// Clicked reports the position of a touch or left mouse press that started
// this frame, in layout coordinates. Touches win over the mouse.
func Clicked() (gmath.Vec, bool) {
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		return vec(x, y), true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return vec(ebiten.CursorPosition()), true
	}

	return gmath.Vec{}, false
}

func vec(x, y int) gmath.Vec {
	return gmath.Vec{X: float64(x), Y: float64(y)}
}
