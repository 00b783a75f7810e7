// Package input turns SDL2 events into the demo's input events.
package input

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventPointerDown
	EventPointerMove
	EventPointerUp
)

// Event is a processed input event. Pointer coordinates are in window units.
type Event struct {
	Type   EventType
	At     time.Time
	Key    sdl.Keycode
	Width  int
	Height int
	X      float64
	Y      float64
}

// Input polls SDL and buffers one frame of events.
type Input struct {
	events []Event
	now    func() time.Time
}

// New creates an input handler stamping events with the wall clock.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		now:    time.Now,
	}
}

// Update drains the SDL queue. It returns true when the window was closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false
	at := i.now()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit, At: at})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					At:     at,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{Type: EventKeyDown, At: at, Key: e.Keysym.Sym})
			}

		case *sdl.MouseMotionEvent:
			i.events = append(i.events, Event{Type: EventPointerMove, At: at, X: float64(e.X), Y: float64(e.Y)})

		case *sdl.MouseButtonEvent:
			if e.Button != sdl.BUTTON_LEFT {
				continue
			}
			typ := EventPointerDown
			if e.Type == sdl.MOUSEBUTTONUP {
				typ = EventPointerUp
			}
			i.events = append(i.events, Event{Type: typ, At: at, X: float64(e.X), Y: float64(e.Y)})
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}
