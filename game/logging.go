package game

import (
	"log/slog"

	"github.com/pthm-cable/chroma/events"
)

// AttachLogging subscribes a structured-log observer to every gameplay
// event. Payload keys become log attributes.
func AttachLogging(bus *events.Bus) {
	bus.SubscribeAll(func(ev events.Event) {
		attrs := make([]any, 0, len(ev.Data)*2)
		for k, v := range ev.Data {
			attrs = append(attrs, k, v)
		}
		switch ev.Kind {
		case events.PlayerDied, events.HazardHit:
			slog.Warn(string(ev.Kind), attrs...)
		default:
			slog.Info(string(ev.Kind), attrs...)
		}
	})
}
