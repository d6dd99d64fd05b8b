package debugs

import (
	"github.com/reusee/weave/sessions"
)

type markerInfo struct {
	Channel string
	Segment int
	Offset  int
}

// SessionGlobals exposes session state to a tap REPL.
func SessionGlobals(session *sessions.Session) map[string]any {
	markers := make(map[string]any)
	for _, name := range session.Markers().Names() {
		marker, _ := session.Markers().Get(name)
		markers[name] = markerInfo{
			Channel: marker.Channel.Name(),
			Segment: marker.Position.Segment,
			Offset:  marker.Position.Offset,
		}
	}

	var segments []any
	top := session.Output().Top()
	for _, text := range top.Segments() {
		segments = append(segments, text)
	}

	return map[string]any{
		"id":       session.ID.String(),
		"format":   session.Format().Name,
		"channels": session.Result(),
		"top":      top.Name(),
		"segments": segments,
		"markers":  markers,
		"dist":     session.Distance,
		"copy":     session.CopyRegion,
	}
}
