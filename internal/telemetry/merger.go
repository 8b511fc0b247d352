package telemetry

// Merger folds per-channel updates into frames. It keeps the latest message of
// every channel, so a frame always carries a full picture, and stamps each
// frame with a global cycle counter starting at 0.
type Merger struct {
	next    uint64
	device  DeviceState
	panda   PandaState
	located LiveLocation
}

// NewMerger returns a merger whose first frame has index 0.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge applies u and returns the frame for this cycle.
func (m *Merger) Merge(u Update) Frame {
	var changed ChannelSet
	if u.DeviceState != nil {
		m.device = *u.DeviceState
		changed = changed.With(ChannelDeviceState)
	}
	if u.PandaState != nil {
		m.panda = *u.PandaState
		changed = changed.With(ChannelPandaState)
	}
	if u.LiveLocation != nil {
		m.located = *u.LiveLocation
		changed = changed.With(ChannelLiveLocationKalman)
	}

	f := Frame{
		Index:            m.next,
		NetworkType:      m.device.NetworkType,
		NetworkStrength:  m.device.NetworkStrength,
		ThermalStatus:    m.device.ThermalStatus,
		AmbientTempC:     m.device.AmbientTempC,
		Started:          m.device.Started,
		BatteryCharging:  m.device.BatteryCharging,
		BatteryPercent:   m.device.BatteryPercent,
		IPAddress:        m.device.IPAddress,
		InterfacePresent: m.panda.Present,
		InterfaceKind:    m.panda.Kind,
		GPSOK:            m.located.GPSOK,
		SatelliteCount:   m.located.SatelliteCount,
		Changed:          changed,
	}
	m.next++
	return f
}

// Cycles returns how many frames have been produced.
func (m *Merger) Cycles() uint64 {
	return m.next
}
