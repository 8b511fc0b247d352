package telemetry

import "fmt"

// Synthetic is a deterministic Source for demos and soak tests. deviceState
// and pandaState publish at 2 Hz, liveLocationKalman on every cycle, and the
// values drift slowly so every indicator eventually changes state.
type Synthetic struct {
	merger    *Merger
	frequency uint64
}

// NewSynthetic returns a generator for a bus running at frequency cycles per
// second.
func NewSynthetic(frequency int) *Synthetic {
	if frequency < 2 {
		frequency = 2
	}
	return &Synthetic{merger: NewMerger(), frequency: uint64(frequency)}
}

var syntheticNetworks = []NetworkType{NetworkWiFi, NetworkCell4G, NetworkCell5G, NetworkNone}

// Next never fails.
func (s *Synthetic) Next() (Frame, error) {
	i := s.merger.Cycles()
	sec := i / s.frequency

	u := Update{
		LiveLocation: &LiveLocation{
			GPSOK:          sec%25 < 20,
			SatelliteCount: int(4 + sec%9),
		},
	}

	if i%(s.frequency/2) == 0 {
		temp := 30 + float64(sec%40)/2
		u.DeviceState = &DeviceState{
			NetworkType:     syntheticNetworks[(sec/30)%uint64(len(syntheticNetworks))],
			NetworkStrength: int((sec / 5) % 5),
			ThermalStatus:   syntheticThermal(temp),
			AmbientTempC:    temp,
			Started:         (sec/20)%3 != 0,
			BatteryCharging: (sec/60)%2 == 1,
			BatteryPercent:  int(100 - (sec/6)%100),
			IPAddress:       fmt.Sprintf("192.168.43.%d", 10+(sec/120)%5),
		}
		kind := InterfaceValid
		if sec%90 >= 80 {
			kind = InterfaceUnknown
		}
		u.PandaState = &PandaState{Present: kind == InterfaceValid, Kind: kind}
	}

	return s.merger.Merge(u), nil
}

func syntheticThermal(tempC float64) ThermalStatus {
	switch {
	case tempC < 38:
		return ThermalGreen
	case tempC < 44:
		return ThermalYellow
	default:
		return ThermalRed
	}
}
