// Package panel owns the sidebar's retained view-model.
//
// Frames flow through State.Apply, which runs the status classifiers and the
// two cadence gates and reports whether a redraw is owed. Renderers only ever
// see a Snapshot, a value copy of the state, so drawing can never feed back
// into classification.
//
// # Cadence
//
// Two gates run side by side and are never merged:
//
//   - Connectivity is re-evaluated only when the frame index is a multiple of
//     6 × the base frequency (every six seconds at 20 Hz). Between those
//     frames the previous result is kept and the params store is not read.
//   - The battery/IP block is copied only when deviceState or pandaState
//     published this cycle, so it does not flicker between messages.
//
// Network, signal, temperature and interface fields are refreshed on every
// frame. A redraw is requested only when one of the gates fires.
//
// # Input
//
// Router is a stateless hit test over fixed regions. A press inside the
// settings region yields ActionOpenSettings, which is handed to an ActionSink.
package panel
