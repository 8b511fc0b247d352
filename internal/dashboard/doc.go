// Package dashboard runs the sidebar as a Bubble Tea program.
//
// # Architecture
//
// The package follows The Elm Architecture like every other Bubble Tea
// program:
//
//   - Model: wraps the panel state, the telemetry source, the renderer and
//     the input router
//   - Update: applies one telemetry frame per tick, routes mouse presses and
//     handles keys
//   - View: returns the last painted sidebar plus the settings overlay
//
// # Frame loop
//
// A frameTickMsg fires at the UI base frequency (20 Hz by default):
//
//  1. The source produces the next telemetry.Frame
//  2. panel.State.Apply classifies it and reports whether a redraw is owed
//  3. Only when it is, the renderer repaints the cached surface and the
//     state is marked rendered
//
// View never re-renders on its own, so fields refreshed between redraws
// become visible at the next gated redraw, exactly as on the car display.
//
// # Input
//
// Left-button presses are hit-tested by panel.Router against the settings
// button's rectangle from render.Layout. A hit is emitted to the configured
// panel.ActionSink and opens the settings overlay, a huh form embedded in
// the program.
//
// # Keyboard Shortcuts
//
//	q, Ctrl+C   - Quit
//	s           - Open settings (same as clicking the button)
//	?           - Toggle full help
//	Esc         - Close settings
package dashboard
