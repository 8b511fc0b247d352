package telemetry

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// NetworkType is the kind of uplink the device is using.
type NetworkType int

const (
	NetworkNone NetworkType = iota
	NetworkWiFi
	NetworkCell2G
	NetworkCell3G
	NetworkCell4G
	NetworkCell5G
	NetworkEthernet
)

var networkTypeNames = map[NetworkType]string{
	NetworkNone:     "none",
	NetworkWiFi:     "wifi",
	NetworkCell2G:   "cell2g",
	NetworkCell3G:   "cell3g",
	NetworkCell4G:   "cell4g",
	NetworkCell5G:   "cell5g",
	NetworkEthernet: "ethernet",
}

func (t NetworkType) String() string {
	if name, ok := networkTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseNetworkType parses the lowercase wire name of a network type.
func ParseNetworkType(s string) (NetworkType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for t, name := range networkTypeNames {
		if name == s {
			return t, nil
		}
	}
	return NetworkNone, fmt.Errorf("unknown network type %q", s)
}

// UnmarshalYAML accepts the wire name, e.g. "wifi" or "cell4g".
func (t *NetworkType) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseNetworkType(value.Value)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ThermalStatus is the device's own thermal band. Values beyond ThermalRed
// exist on the wire (e.g. danger) and must be tolerated.
type ThermalStatus int

const (
	ThermalGreen ThermalStatus = iota
	ThermalYellow
	ThermalRed
	ThermalDanger
)

var thermalNames = map[ThermalStatus]string{
	ThermalGreen:  "green",
	ThermalYellow: "yellow",
	ThermalRed:    "red",
	ThermalDanger: "danger",
}

func (s ThermalStatus) String() string {
	if name, ok := thermalNames[s]; ok {
		return name
	}
	return "unknown"
}

// UnmarshalYAML accepts "green", "yellow", "red", "danger" or a raw integer.
func (s *ThermalStatus) UnmarshalYAML(value *yaml.Node) error {
	v := strings.ToLower(strings.TrimSpace(value.Value))
	for status, name := range thermalNames {
		if name == v {
			*s = status
			return nil
		}
	}
	var raw int
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("unknown thermal status %q", value.Value)
	}
	*s = ThermalStatus(raw)
	return nil
}

// InterfaceKind identifies the vehicle interface board, if any.
type InterfaceKind int

const (
	InterfaceUnknown InterfaceKind = iota
	InterfaceValid
)

func (k InterfaceKind) String() string {
	if k == InterfaceValid {
		return "valid"
	}
	return "unknown"
}

// UnmarshalYAML accepts "valid" or "unknown".
func (k *InterfaceKind) UnmarshalYAML(value *yaml.Node) error {
	switch strings.ToLower(strings.TrimSpace(value.Value)) {
	case "valid":
		*k = InterfaceValid
	case "unknown", "":
		*k = InterfaceUnknown
	default:
		return fmt.Errorf("unknown interface kind %q", value.Value)
	}
	return nil
}

// Channel names a telemetry topic on the bus.
type Channel uint8

const (
	ChannelDeviceState Channel = iota
	ChannelPandaState
	ChannelLiveLocationKalman
)

func (c Channel) String() string {
	switch c {
	case ChannelDeviceState:
		return "deviceState"
	case ChannelPandaState:
		return "pandaState"
	case ChannelLiveLocationKalman:
		return "liveLocationKalman"
	default:
		return "unknown"
	}
}

// ChannelSet is a small set of channels, stored as a bitmask.
type ChannelSet uint8

// NewChannelSet returns a set holding the given channels.
func NewChannelSet(channels ...Channel) ChannelSet {
	var s ChannelSet
	for _, c := range channels {
		s = s.With(c)
	}
	return s
}

// With returns a copy of s that also contains c.
func (s ChannelSet) With(c Channel) ChannelSet {
	return s | 1<<c
}

// Has reports whether c is in the set.
func (s ChannelSet) Has(c Channel) bool {
	return s&(1<<c) != 0
}

// Empty reports whether no channel is in the set.
func (s ChannelSet) Empty() bool {
	return s == 0
}

func (s ChannelSet) String() string {
	var names []string
	for _, c := range []Channel{ChannelDeviceState, ChannelPandaState, ChannelLiveLocationKalman} {
		if s.Has(c) {
			names = append(names, c.String())
		}
	}
	return "{" + strings.Join(names, ",") + "}"
}
