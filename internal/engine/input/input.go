// Package input turns SDL2 events into radar actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Action is something the interactive host does in response to input.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionResize
	ActionScreenshot
	ActionCyclePlane
	ActionCycleSpin
	ActionCycleAxis
	ActionToggleAutoCenter
	ActionCenter
	ActionPan
	ActionZoomIn
	ActionZoomOut
	ActionToggleBBox
	ActionToggleGrid
	ActionForceRedraw
)

// Event is one translated input event.
type Event struct {
	Action Action
	Width  int // ActionResize
	Height int
	DX, DY int // ActionPan, in pixels with y up
}

// Bindings maps keys to actions.
var Bindings = map[sdl.Keycode]Action{
	sdl.K_ESCAPE:   ActionQuit,
	sdl.K_F12:      ActionScreenshot,
	sdl.K_p:        ActionCyclePlane,
	sdl.K_s:        ActionCycleSpin,
	sdl.K_a:        ActionCycleAxis,
	sdl.K_c:        ActionToggleAutoCenter,
	sdl.K_HOME:     ActionCenter,
	sdl.K_EQUALS:   ActionZoomIn,
	sdl.K_KP_PLUS:  ActionZoomIn,
	sdl.K_MINUS:    ActionZoomOut,
	sdl.K_KP_MINUS: ActionZoomOut,
	sdl.K_b:        ActionToggleBBox,
	sdl.K_g:        ActionToggleGrid,
	sdl.K_r:        ActionForceRedraw,
}

// Input handles all input processing.
type Input struct {
	events   []Event
	dragging bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to radar events.
// Returns true if the host should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Action: ActionQuit})
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Action: ActionResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			if a, ok := Bindings[e.Keysym.Sym]; ok {
				i.events = append(i.events, Event{Action: a})
				if a == ActionQuit {
					return true
				}
			}

		case *sdl.MouseButtonEvent:
			if e.Button == sdl.BUTTON_LEFT {
				i.dragging = e.Type == sdl.MOUSEBUTTONDOWN
			}

		case *sdl.MouseMotionEvent:
			if i.dragging && (e.XRel != 0 || e.YRel != 0) {
				// SDL's y grows downwards
				i.events = append(i.events, Event{Action: ActionPan, DX: int(e.XRel), DY: -int(e.YRel)})
			}

		case *sdl.MouseWheelEvent:
			switch {
			case e.Y > 0:
				i.events = append(i.events, Event{Action: ActionZoomIn})
			case e.Y < 0:
				i.events = append(i.events, Event{Action: ActionZoomOut})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Has reports whether action a happened during the last Update.
func (i *Input) Has(a Action) bool {
	for _, e := range i.events {
		if e.Action == a {
			return true
		}
	}
	return false
}
