package replay

import "github.com/younwookim/keeper/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	I  bool `json:"i,omitempty"`  // Interact (just pressed)
	MX int  `json:"mx"`           // MouseX
	MY int  `json:"my"`           // MouseY
	P  bool `json:"p,omitempty"`  // Primary button held
	S  bool `json:"s,omitempty"`  // Secondary button held
	Sp bool `json:"sp,omitempty"` // Space held
	Ps bool `json:"ps,omitempty"` // Pause pressed
	Rs bool `json:"rs,omitempty"` // Restart pressed
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Session   string       `json:"session"` // uuid of the recorded run
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Encode converts a frame of input into its recorded form
func Encode(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		I:  in.Interact,
		MX: in.MouseX,
		MY: in.MouseY,
		P:  in.PrimaryHeld,
		S:  in.SecondaryHeld,
		Sp: in.Space,
		Ps: in.Pause,
		Rs: in.Restart,
	}
}

// Decode converts a recorded frame back into input
func Decode(fi FrameInput) system.InputState {
	return system.InputState{
		Left:          fi.L,
		Right:         fi.R,
		Up:            fi.U,
		Down:          fi.D,
		Interact:      fi.I,
		MouseX:        fi.MX,
		MouseY:        fi.MY,
		PrimaryHeld:   fi.P,
		SecondaryHeld: fi.S,
		Space:         fi.Sp,
		Pause:         fi.Ps,
		Restart:       fi.Rs,
	}
}
