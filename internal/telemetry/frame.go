package telemetry

// DeviceState is the payload of the deviceState channel.
type DeviceState struct {
	NetworkType     NetworkType   `yaml:"networkType"`
	NetworkStrength int           `yaml:"networkStrength"`
	ThermalStatus   ThermalStatus `yaml:"thermalStatus"`
	AmbientTempC    float64       `yaml:"ambientTempC"`
	Started         bool          `yaml:"started"`
	BatteryCharging bool          `yaml:"batteryCharging"`
	BatteryPercent  int           `yaml:"batteryPercent"`
	IPAddress       string        `yaml:"ipAddress"`
}

// PandaState is the payload of the pandaState channel.
type PandaState struct {
	Present bool          `yaml:"present"`
	Kind    InterfaceKind `yaml:"kind"`
}

// LiveLocation is the payload of the liveLocationKalman channel.
type LiveLocation struct {
	GPSOK          bool `yaml:"gpsOk"`
	SatelliteCount int  `yaml:"satelliteCount"`
}

// Update holds the messages published on each channel during one cycle.
// A nil field means the channel did not publish.
type Update struct {
	DeviceState  *DeviceState  `yaml:"deviceState,omitempty"`
	PandaState   *PandaState   `yaml:"pandaState,omitempty"`
	LiveLocation *LiveLocation `yaml:"liveLocationKalman,omitempty"`
}

// Frame is the latest known value of every monitored field at one cycle.
// Frames are values; consumers never share or mutate them.
type Frame struct {
	Index uint64

	NetworkType     NetworkType
	NetworkStrength int
	ThermalStatus   ThermalStatus
	AmbientTempC    float64

	InterfacePresent bool
	InterfaceKind    InterfaceKind
	Started          bool

	SatelliteCount int
	GPSOK          bool

	BatteryCharging bool
	BatteryPercent  int
	IPAddress       string

	// Changed lists the channels that published since the previous frame.
	Changed ChannelSet
}

// Source delivers frames one cycle at a time. Next returns io.EOF when a
// finite source is exhausted.
type Source interface {
	Next() (Frame, error)
}
