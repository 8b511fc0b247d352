package panel

import (
	"testing"
	"time"

	"github.com/rileyhilliard/sidebar/internal/hardware"
	"github.com/rileyhilliard/sidebar/internal/logger"
	"github.com/rileyhilliard/sidebar/internal/params"
	"github.com/rileyhilliard/sidebar/internal/status"
	"github.com/rileyhilliard/sidebar/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore records how often the params store is consulted.
type countingStore struct {
	*params.MemStore
	gets int
}

func (s *countingStore) Get(key string) (float64, bool) {
	s.gets++
	return s.MemStore.Get(key)
}

type fixture struct {
	state *State
	store *countingStore
	now   *time.Duration
}

func newFixture(t *testing.T, caps hardware.Capabilities) fixture {
	t.Helper()
	now := 1000 * time.Second
	store := &countingStore{MemStore: params.NewMemStore()}
	c := status.Classifier{
		Params:       store,
		Capabilities: caps,
		Clock:        hardware.ClockFunc(func() time.Duration { return now }),
	}
	return fixture{state: New(c, NewCadence(20), logger.Noop()), store: store, now: &now}
}

func driveFrame(index uint64, changed ...telemetry.Channel) telemetry.Frame {
	return telemetry.Frame{
		Index:            index,
		NetworkType:      telemetry.NetworkCell4G,
		NetworkStrength:  3,
		ThermalStatus:    telemetry.ThermalYellow,
		AmbientTempC:     42.6,
		InterfacePresent: true,
		InterfaceKind:    telemetry.InterfaceValid,
		BatteryCharging:  true,
		BatteryPercent:   77,
		IPAddress:        "192.168.43.12",
		Changed:          telemetry.NewChannelSet(changed...),
	}
}

func TestNew_Defaults(t *testing.T) {
	fx := newFixture(t, hardware.Capabilities{})
	snap := fx.state.Snapshot()

	assert.Equal(t, status.LabelOffline, snap.ConnectivityLabel)
	assert.Equal(t, status.Danger, snap.ConnectivitySeverity)
	assert.Equal(t, "--", snap.NetworkLabel)
	assert.Equal(t, 0, snap.SignalIcon)
	assert.Equal(t, status.Danger, snap.TemperatureSeverity)
	assert.Equal(t, status.LabelNoInterface, snap.InterfaceLabel)
	assert.Equal(t, status.Danger, snap.InterfaceSeverity)
	assert.Equal(t, 0, snap.BatteryPercent)
	assert.False(t, snap.ShowBattery())
	assert.True(t, fx.state.Dirty(), "nothing has been rendered yet")
	assert.Equal(t, 20, fx.state.Cadence().BaseFrequency())
}

func TestApply_FirstFrameClassifiesEverything(t *testing.T) {
	fx := newFixture(t, hardware.Capabilities{})
	fx.store.Set(params.KeyLastAthenaPingTime, float64(*fx.now-10*time.Second))

	redraw := fx.state.Apply(driveFrame(0, telemetry.ChannelDeviceState, telemetry.ChannelPandaState))
	require.True(t, redraw)

	snap := fx.state.Snapshot()
	assert.Equal(t, status.LabelOnline, snap.ConnectivityLabel)
	assert.Equal(t, status.Good, snap.ConnectivitySeverity)
	assert.Equal(t, "LTE", snap.NetworkLabel)
	assert.Equal(t, 3, snap.SignalIcon)
	assert.Equal(t, 42, snap.TemperatureC)
	assert.Equal(t, status.Warning, snap.TemperatureSeverity)
	assert.Equal(t, status.LabelVehicleOnline, snap.InterfaceLabel)
	assert.Equal(t, status.Good, snap.InterfaceSeverity)
	assert.Equal(t, 1, snap.BatteryIcon)
	assert.Equal(t, 77, snap.BatteryPercent)
	assert.Equal(t, "192.168.43.12", snap.IPAddress)
	assert.True(t, fx.state.Dirty())
}

func TestApply_ConnectivityGate(t *testing.T) {
	fx := newFixture(t, hardware.Capabilities{})

	// Frame 0 samples the store: no ping yet
	fx.state.Apply(driveFrame(0))
	assert.Equal(t, 1, fx.store.gets)
	assert.Equal(t, status.LabelOffline, fx.state.Snapshot().ConnectivityLabel)
	assert.Equal(t, status.Warning, fx.state.Snapshot().ConnectivitySeverity)

	// A ping lands, but frames 1..119 keep the old classification
	fx.store.Set(params.KeyLastAthenaPingTime, float64(*fx.now))
	for i := uint64(1); i < 120; i++ {
		redraw := fx.state.Apply(driveFrame(i))
		assert.False(t, redraw, "frame %d", i)
	}
	assert.Equal(t, 1, fx.store.gets, "store is only read on gate frames")
	assert.Equal(t, status.LabelOffline, fx.state.Snapshot().ConnectivityLabel)

	// Frame 120 picks it up
	assert.True(t, fx.state.Apply(driveFrame(120)))
	assert.Equal(t, 2, fx.store.gets)
	assert.Equal(t, status.LabelOnline, fx.state.Snapshot().ConnectivityLabel)

	// Ping goes stale by frame 240
	*fx.now += 2 * status.OnlineThreshold
	assert.True(t, fx.state.Apply(driveFrame(240)))
	assert.Equal(t, status.LabelError, fx.state.Snapshot().ConnectivityLabel)
	assert.Equal(t, status.Danger, fx.state.Snapshot().ConnectivitySeverity)
}

func TestApply_BatteryGate(t *testing.T) {
	fx := newFixture(t, hardware.Capabilities{})
	fx.state.Apply(driveFrame(1, telemetry.ChannelDeviceState))
	require.Equal(t, 77, fx.state.Snapshot().BatteryPercent)

	next := driveFrame(2)
	next.BatteryPercent = 12
	next.BatteryCharging = false
	next.IPAddress = "10.0.0.9"

	// No deviceState/pandaState publish: battery/IP stay put, no redraw
	redraw := fx.state.Apply(next)
	assert.False(t, redraw)
	snap := fx.state.Snapshot()
	assert.Equal(t, 77, snap.BatteryPercent)
	assert.Equal(t, 1, snap.BatteryIcon)
	assert.Equal(t, "192.168.43.12", snap.IPAddress)

	// Location alone does not open the gate either
	next.Index = 3
	next.Changed = telemetry.NewChannelSet(telemetry.ChannelLiveLocationKalman)
	assert.False(t, fx.state.Apply(next))
	assert.Equal(t, 77, fx.state.Snapshot().BatteryPercent)

	// deviceState publishes: copied
	next.Index = 4
	next.Changed = telemetry.NewChannelSet(telemetry.ChannelDeviceState)
	assert.True(t, fx.state.Apply(next))
	snap = fx.state.Snapshot()
	assert.Equal(t, 12, snap.BatteryPercent)
	assert.Equal(t, 0, snap.BatteryIcon)
	assert.Equal(t, "10.0.0.9", snap.IPAddress)

	// pandaState alone also opens it
	next.Index = 5
	next.BatteryPercent = 13
	next.Changed = telemetry.NewChannelSet(telemetry.ChannelPandaState)
	assert.True(t, fx.state.Apply(next))
	assert.Equal(t, 13, fx.state.Snapshot().BatteryPercent)
}

func TestApply_UngatedFieldsRefreshWithoutRedraw(t *testing.T) {
	fx := newFixture(t, hardware.Capabilities{})
	fx.state.Apply(driveFrame(1, telemetry.ChannelDeviceState))
	fx.state.MarkRendered()

	f := driveFrame(2)
	f.NetworkType = telemetry.NetworkWiFi
	f.NetworkStrength = 1
	f.ThermalStatus = telemetry.ThermalRed
	f.AmbientTempC = 55.2
	f.InterfaceKind = telemetry.InterfaceUnknown

	redraw := fx.state.Apply(f)
	assert.False(t, redraw, "ungated fields never request a redraw by themselves")
	assert.True(t, fx.state.Dirty(), "but the state does change")

	snap := fx.state.Snapshot()
	assert.Equal(t, "WiFi", snap.NetworkLabel)
	assert.Equal(t, 1, snap.SignalIcon)
	assert.Equal(t, 55, snap.TemperatureC)
	assert.Equal(t, status.Danger, snap.TemperatureSeverity)
	assert.Equal(t, status.LabelNoInterface, snap.InterfaceLabel)
}

func TestApply_InterfaceLossWithoutPandaUpdate(t *testing.T) {
	fx := newFixture(t, hardware.Capabilities{})
	fx.state.Apply(driveFrame(1, telemetry.ChannelPandaState))
	require.Equal(t, status.LabelVehicleOnline, fx.state.Snapshot().InterfaceLabel)

	f := driveFrame(2)
	f.InterfacePresent = false
	require.True(t, f.Changed.Empty())

	assert.False(t, fx.state.Apply(f))
	snap := fx.state.Snapshot()
	assert.Equal(t, status.LabelNoInterface, snap.InterfaceLabel)
	assert.Equal(t, status.Danger, snap.InterfaceSeverity)
}

func TestApply_Idempotent(t *testing.T) {
	fx := newFixture(t, hardware.Capabilities{SatelliteTelemetry: true})

	first := driveFrame(7, telemetry.ChannelDeviceState, telemetry.ChannelPandaState)
	first.Started = true
	first.GPSOK = true
	first.SatelliteCount = 8

	fx.state.Apply(first)
	fx.state.MarkRendered()
	before := fx.state.Snapshot()

	second := first
	second.Index = 8
	second.Changed = telemetry.NewChannelSet()

	redraw := fx.state.Apply(second)
	assert.False(t, redraw)
	assert.Equal(t, before, fx.state.Snapshot())
	assert.False(t, fx.state.Dirty())
}

func TestApply_GateFiresWithoutChangeLeavesClean(t *testing.T) {
	fx := newFixture(t, hardware.Capabilities{})
	fx.state.Apply(driveFrame(1, telemetry.ChannelDeviceState))
	fx.state.MarkRendered()

	// Same values published again: redraw requested, nothing dirty
	assert.True(t, fx.state.Apply(driveFrame(2, telemetry.ChannelDeviceState)))
	assert.False(t, fx.state.Dirty())
}

func TestApply_SatelliteLabel(t *testing.T) {
	fx := newFixture(t, hardware.Capabilities{SatelliteTelemetry: true})

	f := driveFrame(1)
	f.Started = true
	f.SatelliteCount = 6
	fx.state.Apply(f)
	assert.Equal(t, "SAT CNT\n6", fx.state.Snapshot().InterfaceLabel)
	assert.Equal(t, status.Warning, fx.state.Snapshot().InterfaceSeverity)

	fx.state.SetCapabilities(hardware.Capabilities{})
	assert.False(t, fx.state.Capabilities().SatelliteTelemetry)
	f.Index = 2
	fx.state.Apply(f)
	assert.Equal(t, status.LabelVehicleOnline, fx.state.Snapshot().InterfaceLabel)
}

func TestApply_LogsConnectivityTransitions(t *testing.T) {
	log := logger.NewBufferLogger()
	store := params.NewMemStore()
	store.Set(params.KeyLastAthenaPingTime, float64(95*time.Second))
	c := status.Classifier{Params: store, Clock: hardware.FixedClock(100 * time.Second)}
	s := New(c, NewCadence(20), log)

	s.Apply(driveFrame(0))
	assert.True(t, log.Contains("OFFLINE -> ONLINE"))
}

func TestSnapshot_IsACopy(t *testing.T) {
	fx := newFixture(t, hardware.Capabilities{})
	snap := fx.state.Snapshot()
	snap.BatteryPercent = 99
	snap.ConnectivityLabel = "hacked"

	assert.Equal(t, 0, fx.state.Snapshot().BatteryPercent)
	assert.Equal(t, status.LabelOffline, fx.state.Snapshot().ConnectivityLabel)
}

func TestSnapshot_ShowBattery(t *testing.T) {
	tests := []struct {
		percent int
		expect  bool
	}{
		{0, false},
		{1, false},
		{2, true},
		{50, true},
		{100, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expect, Snapshot{BatteryPercent: tt.percent}.ShowBattery(), "percent %d", tt.percent)
	}
}
