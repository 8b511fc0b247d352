package panel

import (
	"github.com/rileyhilliard/sidebar/internal/hardware"
	"github.com/rileyhilliard/sidebar/internal/logger"
	"github.com/rileyhilliard/sidebar/internal/status"
	"github.com/rileyhilliard/sidebar/internal/telemetry"
)

// BatteryUnknownMax is the highest battery reading treated as "no reading".
// The battery/IP block is hidden at or below it.
const BatteryUnknownMax = 1

// Snapshot is an immutable copy of the panel state handed to renderers.
type Snapshot struct {
	ConnectivityLabel    string
	ConnectivitySeverity status.Severity

	NetworkLabel string
	SignalIcon   int

	TemperatureC        int
	TemperatureSeverity status.Severity

	InterfaceLabel    string
	InterfaceSeverity status.Severity

	BatteryIcon    int
	BatteryPercent int
	IPAddress      string
}

// ShowBattery reports whether the battery/IP region should be drawn.
func (s Snapshot) ShowBattery() bool {
	return s.BatteryPercent > BatteryUnknownMax
}

// State is the panel's retained view-model. It is owned by a single
// goroutine: frames are applied and snapshots taken sequentially.
type State struct {
	classifier status.Classifier
	cadence    Cadence
	log        logger.Logger

	view  Snapshot
	dirty bool
}

// New creates the panel state with its startup defaults: offline, no
// interface, and danger colours until real data arrives.
func New(classifier status.Classifier, cadence Cadence, log logger.Logger) *State {
	if log == nil {
		log = logger.Noop()
	}
	return &State{
		classifier: classifier,
		cadence:    cadence,
		log:        log,
		view:       defaultSnapshot(),
		dirty:      true,
	}
}

func defaultSnapshot() Snapshot {
	return Snapshot{
		ConnectivityLabel:    status.LabelOffline,
		ConnectivitySeverity: status.Danger,
		NetworkLabel:         status.NetworkLabel(telemetry.NetworkNone),
		TemperatureSeverity:  status.Danger,
		InterfaceLabel:       status.LabelNoInterface,
		InterfaceSeverity:    status.Danger,
	}
}

// Apply classifies f into the state and reports whether a redraw should be
// requested this cycle.
func (s *State) Apply(f telemetry.Frame) bool {
	before := s.view

	connectivityDue := s.cadence.ConnectivityDue(f.Index)
	if connectivityDue {
		c := s.classifier.Connectivity()
		s.view.ConnectivityLabel = c.Label
		s.view.ConnectivitySeverity = c.Severity
	}

	// Refreshed on every frame. Interface health is among them even though
	// it arrives on pandaState, so losing the interface shows at the next redraw.
	s.view.NetworkLabel = status.NetworkLabel(f.NetworkType)
	s.view.SignalIcon = status.SignalIcon(f.NetworkStrength)
	s.view.TemperatureC = status.Temperature(f.AmbientTempC)
	s.view.TemperatureSeverity = status.Thermal(f.ThermalStatus)
	iface := s.classifier.Interface(f)
	s.view.InterfaceLabel = iface.Label
	s.view.InterfaceSeverity = iface.Severity

	batteryDue := s.cadence.BatteryDue(f.Changed)
	if batteryDue {
		s.view.BatteryIcon = status.BatteryIcon(f.BatteryCharging)
		s.view.BatteryPercent = f.BatteryPercent
		s.view.IPAddress = f.IPAddress
	}

	if s.view != before {
		s.dirty = true
		if s.view.ConnectivityLabel != before.ConnectivityLabel {
			s.log.Info("connectivity %s -> %s", before.ConnectivityLabel, s.view.ConnectivityLabel)
		}
	}

	redraw := connectivityDue || batteryDue
	if redraw {
		s.log.Debug("frame %d: redraw (connectivity=%t battery=%t changed=%s)",
			f.Index, connectivityDue, batteryDue, f.Changed)
	}
	return redraw
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	return s.view
}

// Dirty reports whether the state changed since the last MarkRendered.
func (s *State) Dirty() bool {
	return s.dirty
}

// MarkRendered is called by the surface after it has drawn a snapshot.
func (s *State) MarkRendered() {
	s.dirty = false
}

// SetCapabilities swaps the platform capabilities used for classification,
// e.g. after the user changes them in settings. The next frame picks them up.
func (s *State) SetCapabilities(caps hardware.Capabilities) {
	s.classifier.Capabilities = caps
}

// Capabilities returns the capabilities currently in use.
func (s *State) Capabilities() hardware.Capabilities {
	return s.classifier.Capabilities
}

// Cadence returns the state's cadence.
func (s *State) Cadence() Cadence {
	return s.cadence
}
