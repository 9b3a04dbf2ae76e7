package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem polls the keyboard and mouse
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds one frame of player input
type InputState struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	// Interact is the just-pressed edge of the interact key. It drives both
	// picking up and dropping.
	Interact bool

	MouseX        int
	MouseY        int
	PrimaryHeld   bool // left mouse button
	SecondaryHeld bool // right mouse button (aim)
	Space         bool

	Pause   bool
	Restart bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		Left:          ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:         ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:            ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:          ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Interact:      inpututil.IsKeyJustPressed(ebiten.KeyE),
		MouseX:        mx,
		MouseY:        my,
		PrimaryHeld:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		SecondaryHeld: ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
		Space:         ebiten.IsKeyPressed(ebiten.KeySpace),
		Pause:         inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart:       inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// Axes returns the raw movement axes in [-1, 1]. Opposite keys cancel.
// Screen y grows downward, so Up is negative.
func (in InputState) Axes() (h, v float64) {
	if in.Left {
		h--
	}
	if in.Right {
		h++
	}
	if in.Up {
		v--
	}
	if in.Down {
		v++
	}
	return h, v
}
