package status

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/rileyhilliard/sidebar/internal/hardware"
	"github.com/rileyhilliard/sidebar/internal/params"
	"github.com/rileyhilliard/sidebar/internal/telemetry"
	"github.com/stretchr/testify/assert"
)

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev    Severity
		expect string
	}{
		{Good, "good"},
		{Warning, "warning"},
		{Danger, "danger"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.sev.String())
		})
	}
}

func TestConnectivity(t *testing.T) {
	now := 500 * time.Second

	tests := []struct {
		name   string
		age    time.Duration
		expect Indicator
	}{
		{"fresh", 0, Indicator{LabelOnline, Good}},
		{"a few seconds", 5 * time.Second, Indicator{LabelOnline, Good}},
		{"just under threshold", OnlineThreshold - time.Nanosecond, Indicator{LabelOnline, Good}},
		{"exactly threshold", OnlineThreshold, Indicator{LabelError, Danger}},
		{"just over threshold", OnlineThreshold + time.Nanosecond, Indicator{LabelError, Danger}},
		{"very stale", 400 * time.Second, Indicator{LabelError, Danger}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Connectivity(now-tt.age, true, now)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestConnectivity_AgeSweep(t *testing.T) {
	now := 10 * time.Minute
	for age := time.Duration(0); age <= 2*OnlineThreshold; age += 500 * time.Millisecond {
		got := Connectivity(now-age, true, now)
		if age < OnlineThreshold {
			assert.Equal(t, Good, got.Severity, "age %s", age)
		} else {
			assert.Equal(t, Danger, got.Severity, "age %s", age)
		}
	}
}

func TestConnectivity_Absent(t *testing.T) {
	got := Connectivity(0, false, time.Hour)
	assert.Equal(t, Indicator{LabelOffline, Warning}, got)
}

func TestThermal(t *testing.T) {
	assert.Equal(t, Good, Thermal(telemetry.ThermalGreen))
	assert.Equal(t, Warning, Thermal(telemetry.ThermalYellow))
	assert.Equal(t, Danger, Thermal(telemetry.ThermalRed))

	// Anything else falls back to danger
	for _, ts := range []telemetry.ThermalStatus{telemetry.ThermalDanger, -1, 17} {
		assert.Equal(t, Danger, Thermal(ts), "thermal %d", ts)
	}
}

func TestTemperature(t *testing.T) {
	assert.Equal(t, 41, Temperature(41.9))
	assert.Equal(t, 0, Temperature(0.4))
	assert.Equal(t, -3, Temperature(-3.7))
}

func TestInterface(t *testing.T) {
	tici := hardware.Capabilities{SatelliteTelemetry: true}
	plain := hardware.Capabilities{}

	valid := telemetry.Frame{InterfacePresent: true, InterfaceKind: telemetry.InterfaceValid, SatelliteCount: 9}

	tests := []struct {
		name   string
		frame  func() telemetry.Frame
		caps   hardware.Capabilities
		expect Indicator
	}{
		{
			name:   "unknown kind",
			frame:  func() telemetry.Frame { f := valid; f.InterfaceKind = telemetry.InterfaceUnknown; return f },
			caps:   tici,
			expect: Indicator{LabelNoInterface, Danger},
		},
		{
			name:   "not present",
			frame:  func() telemetry.Frame { f := valid; f.InterfacePresent = false; return f },
			caps:   plain,
			expect: Indicator{LabelNoInterface, Danger},
		},
		{
			name:   "valid, not started",
			frame:  func() telemetry.Frame { return valid },
			caps:   tici,
			expect: Indicator{LabelVehicleOnline, Good},
		},
		{
			name:   "started without satellite hardware",
			frame:  func() telemetry.Frame { f := valid; f.Started = true; f.GPSOK = true; return f },
			caps:   plain,
			expect: Indicator{LabelVehicleOnline, Good},
		},
		{
			name:   "started with gps fix",
			frame:  func() telemetry.Frame { f := valid; f.Started = true; f.GPSOK = true; return f },
			caps:   tici,
			expect: Indicator{"SAT CNT\n9", Good},
		},
		{
			name:   "started without gps fix",
			frame:  func() telemetry.Frame { f := valid; f.Started = true; f.SatelliteCount = 0; return f },
			caps:   tici,
			expect: Indicator{"SAT CNT\n0", Warning},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Interface(tt.frame(), tt.caps))
		})
	}
}

func TestSignalIcon(t *testing.T) {
	for s := 0; s <= 4; s++ {
		assert.Equal(t, s, SignalIcon(s))
	}
}

func TestBatteryIcon(t *testing.T) {
	assert.Equal(t, 1, BatteryIcon(true))
	assert.Equal(t, 0, BatteryIcon(false))
}

func TestNetworkLabel(t *testing.T) {
	tests := []struct {
		nt     telemetry.NetworkType
		expect string
	}{
		{telemetry.NetworkNone, "--"},
		{telemetry.NetworkWiFi, "WiFi"},
		{telemetry.NetworkCell2G, "2G"},
		{telemetry.NetworkCell3G, "3G"},
		{telemetry.NetworkCell4G, "LTE"},
		{telemetry.NetworkCell5G, "5G"},
		{telemetry.NetworkEthernet, "ETH"},
		{telemetry.NetworkType(99), "--"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.nt), func(t *testing.T) {
			assert.Equal(t, tt.expect, NetworkLabel(tt.nt))
		})
	}
}

func TestClassifier_Connectivity(t *testing.T) {
	store := params.NewMemStore()
	c := Classifier{
		Params: store,
		Clock:  hardware.FixedClock(200 * time.Second),
	}

	assert.Equal(t, Indicator{LabelOffline, Warning}, c.Connectivity())

	store.Set(params.KeyLastAthenaPingTime, float64(150*time.Second))
	assert.Equal(t, Indicator{LabelOnline, Good}, c.Connectivity())

	store.Set(params.KeyLastAthenaPingTime, float64(130*time.Second))
	assert.Equal(t, Indicator{LabelError, Danger}, c.Connectivity())
}

func TestClassifier_ConnectivityCorruptTimestamp(t *testing.T) {
	tests := []struct {
		name string
		ping float64
	}{
		{"nan", math.NaN()},
		{"negative infinity", math.Inf(-1)},
		{"overflows int64", -1e19},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := params.NewMemStore()
			store.Set(params.KeyLastAthenaPingTime, tt.ping)
			c := Classifier{Params: store, Clock: hardware.FixedClock(1000 * time.Second)}

			assert.Equal(t, Indicator{LabelError, Danger}, c.Connectivity())
		})
	}
}

func TestConnectivity_NoOverflow(t *testing.T) {
	got := Connectivity(time.Duration(math.MinInt64), true, time.Hour)
	assert.Equal(t, Indicator{LabelError, Danger}, got)
}

func TestClassifier_Interface(t *testing.T) {
	f := telemetry.Frame{InterfacePresent: true, InterfaceKind: telemetry.InterfaceValid, Started: true, SatelliteCount: 3}

	c := Classifier{Capabilities: hardware.Capabilities{SatelliteTelemetry: true}}
	assert.Equal(t, "SAT CNT\n3", c.Interface(f).Label)

	c.Capabilities.SatelliteTelemetry = false
	assert.Equal(t, LabelVehicleOnline, c.Interface(f).Label)
}
