package dashboard

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/sidebar/internal/panel"
	"github.com/rileyhilliard/sidebar/internal/render"
	"github.com/rileyhilliard/sidebar/internal/telemetry"
)

// RunHeadless drives the panel without a terminal UI, writing every redraw
// to w. It stops when the source ends or after maxFrames frames (0 means no
// limit). It returns the number of paints.
func RunHeadless(w io.Writer, state *panel.State, source telemetry.Source, r render.Renderer, maxFrames int) (int, error) {
	paints := 0
	for n := 0; maxFrames <= 0 || n < maxFrames; n++ {
		f, err := source.Next()
		if err == io.EOF {
			return paints, nil
		}
		if err != nil {
			return paints, err
		}
		if !state.Apply(f) {
			continue
		}
		if _, err := fmt.Fprintf(w, "── frame %d ──\n%s\n", f.Index, r.Render(state.Snapshot())); err != nil {
			return paints, err
		}
		state.MarkRendered()
		paints++
	}
	return paints, nil
}
