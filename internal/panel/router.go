package panel

import (
	"time"

	"github.com/google/uuid"
	"github.com/rileyhilliard/sidebar/internal/logger"
)

// Point is a position in panel-local coordinates.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. It contains its top-left corner and
// excludes X+W and Y+H.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Action is a logical result of a press.
type Action string

// ActionOpenSettings asks the host application to show settings.
const ActionOpenSettings Action = "open_settings"

// Region is a named hit region.
type Region struct {
	Name   string
	Bounds Rect
	Action Action
}

// Router maps presses to actions. Its regions are fixed at construction.
type Router struct {
	regions []Region
}

// NewRouter returns a router over regions, checked in order.
func NewRouter(regions ...Region) Router {
	rs := make([]Region, len(regions))
	copy(rs, regions)
	return Router{regions: rs}
}

// SettingsRouter returns the sidebar's router: a single settings region.
func SettingsRouter(settings Rect) Router {
	return NewRouter(Region{Name: "settings", Bounds: settings, Action: ActionOpenSettings})
}

// RoutePress returns the action of the first region containing p.
func (r Router) RoutePress(p Point) (Action, bool) {
	for _, region := range r.regions {
		if region.Bounds.Contains(p) {
			return region.Action, true
		}
	}
	return "", false
}

// Regions returns a copy of the router's regions.
func (r Router) Regions() []Region {
	rs := make([]Region, len(r.regions))
	copy(rs, r.regions)
	return rs
}

// Dispatch routes p and, on a hit, emits the event to sink. It returns the
// emitted event.
func (r Router) Dispatch(p Point, sink ActionSink) (Event, bool) {
	action, ok := r.RoutePress(p)
	if !ok {
		return Event{}, false
	}
	ev := NewEvent(action, p)
	sink.Emit(ev)
	return ev, true
}

// Event is one emitted action.
type Event struct {
	ID     string
	Action Action
	At     time.Time
	Point  Point
}

// NewEvent stamps an action with a fresh id and the current time.
func NewEvent(action Action, p Point) Event {
	return Event{
		ID:     uuid.NewString(),
		Action: action,
		At:     time.Now(),
		Point:  p,
	}
}

// ActionSink receives events. Emit must not block.
type ActionSink interface {
	Emit(Event)
}

// SinkFunc adapts a function to ActionSink.
type SinkFunc func(Event)

// Emit calls f.
func (f SinkFunc) Emit(ev Event) {
	f(ev)
}

// LogSink records every event.
type LogSink struct {
	Log logger.Logger
}

// Emit logs ev.
func (s LogSink) Emit(ev Event) {
	s.Log.Info("action %s id=%s at (%d,%d)", ev.Action, ev.ID, ev.Point.X, ev.Point.Y)
}

// MultiSink fans out to several sinks in order.
type MultiSink []ActionSink

// Emit forwards ev to every sink.
func (m MultiSink) Emit(ev Event) {
	for _, s := range m {
		s.Emit(ev)
	}
}
