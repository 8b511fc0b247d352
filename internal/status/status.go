// Package status maps raw telemetry onto the categorical states the sidebar
// shows: a short label and a severity tier per indicator. Every function here
// is total over its input domain; nothing fails.
package status

import (
	"fmt"
	"time"

	"github.com/rileyhilliard/sidebar/internal/hardware"
	"github.com/rileyhilliard/sidebar/internal/params"
	"github.com/rileyhilliard/sidebar/internal/telemetry"
)

// Severity drives the colour of an indicator.
type Severity int

const (
	Good Severity = iota
	Warning
	Danger
)

func (s Severity) String() string {
	switch s {
	case Good:
		return "good"
	case Warning:
		return "warning"
	case Danger:
		return "danger"
	default:
		return "unknown"
	}
}

// Indicator is a classified label plus its severity.
type Indicator struct {
	Label    string
	Severity Severity
}

// Connectivity labels.
const (
	LabelOnline  = "ONLINE"
	LabelOffline = "OFFLINE"
	LabelError   = "ERROR"
)

// Vehicle interface labels. Multi-line labels use "\n".
const (
	LabelNoInterface   = "NO\nINTERFACE"
	LabelVehicleOnline = "VEHICLE\nONLINE"
)

// OnlineThreshold is how recent the last backend ping must be for the device
// to count as online. It matches the backend's ping interval.
const OnlineThreshold = 70 * time.Second

// Connectivity classifies the age of the last ping. ok=false means no ping has
// ever been recorded.
func Connectivity(lastPing time.Duration, ok bool, now time.Duration) Indicator {
	if !ok {
		return Indicator{Label: LabelOffline, Severity: Warning}
	}
	return pingAge(float64(now) - float64(lastPing))
}

// pingAge classifies an age in nanoseconds. The comparison is done in float64
// so a corrupt timestamp (NaN, or far enough out to overflow int64) is never
// younger than the threshold.
func pingAge(age float64) Indicator {
	if age < float64(OnlineThreshold) {
		return Indicator{Label: LabelOnline, Severity: Good}
	}
	return Indicator{Label: LabelError, Severity: Danger}
}

// Thermal maps the device thermal band. Anything that is not green or yellow,
// including values this build does not know, is Danger.
func Thermal(ts telemetry.ThermalStatus) Severity {
	switch ts {
	case telemetry.ThermalGreen:
		return Good
	case telemetry.ThermalYellow:
		return Warning
	default:
		return Danger
	}
}

// Temperature converts the ambient reading to whole degrees, truncating.
func Temperature(c float64) int {
	return int(c)
}

// Interface classifies vehicle interface health.
//
// The satellite count replaces the generic label only on hardware that has a
// GNSS receiver and only while a drive is in progress.
func Interface(f telemetry.Frame, caps hardware.Capabilities) Indicator {
	// A missing interface reports no kind, so both mean the same thing.
	if f.InterfaceKind == telemetry.InterfaceUnknown || !f.InterfacePresent {
		return Indicator{Label: LabelNoInterface, Severity: Danger}
	}
	if caps.SatelliteTelemetry && f.Started {
		sev := Warning
		if f.GPSOK {
			sev = Good
		}
		return Indicator{Label: fmt.Sprintf("SAT CNT\n%d", f.SatelliteCount), Severity: sev}
	}
	return Indicator{Label: LabelVehicleOnline, Severity: Good}
}

// SignalIcon returns the icon index for a signal strength. Strength is already
// in [0,4]; sources validate it.
func SignalIcon(strength int) int {
	return strength
}

// BatteryIcon selects the battery artwork: 1 while charging, 0 otherwise.
func BatteryIcon(charging bool) int {
	if charging {
		return 1
	}
	return 0
}

var networkLabels = map[telemetry.NetworkType]string{
	telemetry.NetworkNone:     "--",
	telemetry.NetworkWiFi:     "WiFi",
	telemetry.NetworkCell2G:   "2G",
	telemetry.NetworkCell3G:   "3G",
	telemetry.NetworkCell4G:   "LTE",
	telemetry.NetworkCell5G:   "5G",
	telemetry.NetworkEthernet: "ETH",
}

// NetworkLabel is the short text shown under the signal icon.
func NetworkLabel(t telemetry.NetworkType) string {
	if label, ok := networkLabels[t]; ok {
		return label
	}
	return "--"
}

// Classifier binds the pure functions above to the collaborators they need:
// the params store, the platform capabilities and a boot clock.
type Classifier struct {
	Params       params.Reader
	Capabilities hardware.Capabilities
	Clock        hardware.Clock
}

// Connectivity looks up the last ping and classifies it against the clock.
func (c Classifier) Connectivity() Indicator {
	v, ok := c.Params.Get(params.KeyLastAthenaPingTime)
	if !ok {
		return Connectivity(0, false, 0)
	}
	return pingAge(float64(c.Clock.SinceBoot()) - v)
}

// Interface classifies f with the classifier's capabilities.
func (c Classifier) Interface(f telemetry.Frame) Indicator {
	return Interface(f, c.Capabilities)
}
