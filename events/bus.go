// Package events implements the publish/subscribe bus the simulation uses
// to notify external collaborators (HUD, logging, telemetry) without
// coupling to them. The bus is explicit process-wide state: the session
// creates one at start and passes it by reference, there is no singleton.
package events

import (
	"log/slog"
	"time"
)

// Kind identifies an event type.
type Kind string

const (
	EssenceAbsorbed    Kind = "essence_absorbed"
	HazardHit          Kind = "hazard_hit"
	PowerUpCollected   Kind = "powerup_collected"
	PowerUpExpired     Kind = "powerup_expired"
	ElementTransmuted  Kind = "element_transmuted"
	SpecialUsed        Kind = "special_used"
	RecipeCompleted    Kind = "recipe_completed"
	ChamberCleared     Kind = "chamber_cleared"
	PlayerDied         Kind = "player_died"
	LevelStarted       Kind = "level_started"
	LevelCompleted     Kind = "level_completed"
	SessionStateChange Kind = "session_state_change"
)

// Event is a fired notification. It is immutable once published; handlers
// must not mutate the payload map.
type Event struct {
	Kind      Kind
	Data      map[string]any
	Timestamp time.Time
}

// Handler consumes a single event.
type Handler func(Event)

// historySize bounds the retained event log.
const historySize = 100

// Bus dispatches events synchronously on the publishing goroutine. For a
// given event, type subscribers run before global subscribers, each group
// in subscription order. Subscriber lists are snapshotted before dispatch
// so a handler that subscribes or unsubscribes does not disturb the
// in-progress notification.
type Bus struct {
	nextToken int
	byKind    map[Kind][]subscription
	global    []subscription

	history []Event
	histPos int
}

type subscription struct {
	token   int
	handler Handler
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		byKind:  make(map[Kind][]subscription),
		history: make([]Event, 0, historySize),
	}
}

// Subscribe registers a handler for one event kind. The returned token
// identifies the subscription for Unsubscribe.
func (b *Bus) Subscribe(kind Kind, h Handler) int {
	b.nextToken++
	b.byKind[kind] = append(b.byKind[kind], subscription{b.nextToken, h})
	return b.nextToken
}

// SubscribeAll registers a handler for every event kind.
func (b *Bus) SubscribeAll(h Handler) int {
	b.nextToken++
	b.global = append(b.global, subscription{b.nextToken, h})
	return b.nextToken
}

// Unsubscribe removes a subscription by token. Unknown tokens are ignored.
func (b *Bus) Unsubscribe(token int) {
	for kind, subs := range b.byKind {
		b.byKind[kind] = removeToken(subs, token)
	}
	b.global = removeToken(b.global, token)
}

func removeToken(subs []subscription, token int) []subscription {
	for i, s := range subs {
		if s.token == token {
			return append(subs[:i:i], subs[i+1:]...)
		}
	}
	return subs
}

// Publish fires an event to the matching subscribers and records it in the
// history ring. A panicking handler is isolated: the failure is logged and
// the remaining handlers still run.
func (b *Bus) Publish(kind Kind, data map[string]any) {
	ev := Event{Kind: kind, Data: data, Timestamp: time.Now()}
	b.record(ev)

	// Snapshot both lists so handler-driven (un)subscription cannot
	// corrupt this dispatch.
	typed := append([]subscription(nil), b.byKind[kind]...)
	global := append([]subscription(nil), b.global...)

	for _, s := range typed {
		b.dispatch(s, ev)
	}
	for _, s := range global {
		b.dispatch(s, ev)
	}
}

func (b *Bus) dispatch(s subscription, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("event handler panicked", "kind", string(ev.Kind), "panic", r)
		}
	}()
	s.handler(ev)
}

func (b *Bus) record(ev Event) {
	if len(b.history) < historySize {
		b.history = append(b.history, ev)
		return
	}
	b.history[b.histPos] = ev
	b.histPos = (b.histPos + 1) % historySize
}

// History returns the retained events oldest-first. At most the last 100
// events are kept.
func (b *Bus) History() []Event {
	if len(b.history) < historySize {
		return append([]Event(nil), b.history...)
	}
	out := make([]Event, 0, historySize)
	out = append(out, b.history[b.histPos:]...)
	out = append(out, b.history[:b.histPos]...)
	return out
}

// Clear drops the retained history. Subscriptions are kept.
func (b *Bus) Clear() {
	b.history = b.history[:0]
	b.histPos = 0
}
