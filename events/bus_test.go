package events

import "testing"

func TestTypedBeforeGlobal(t *testing.T) {
	b := NewBus()
	var order []string

	b.SubscribeAll(func(Event) { order = append(order, "global-1") })
	b.Subscribe(EssenceAbsorbed, func(Event) { order = append(order, "typed-1") })
	b.Subscribe(EssenceAbsorbed, func(Event) { order = append(order, "typed-2") })
	b.SubscribeAll(func(Event) { order = append(order, "global-2") })

	b.Publish(EssenceAbsorbed, nil)

	want := []string{"typed-1", "typed-2", "global-1", "global-2"}
	if len(order) != len(want) {
		t.Fatalf("handlers ran %d times, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("dispatch order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestTypedSubscriberFilters(t *testing.T) {
	b := NewBus()
	hits := 0
	b.Subscribe(HazardHit, func(Event) { hits++ })

	b.Publish(EssenceAbsorbed, nil)
	b.Publish(HazardHit, nil)
	b.Publish(PlayerDied, nil)

	if hits != 1 {
		t.Errorf("typed handler ran %d times, want 1", hits)
	}
}

func TestPayloadDelivered(t *testing.T) {
	b := NewBus()
	var got Event
	b.Subscribe(EssenceAbsorbed, func(ev Event) { got = ev })

	b.Publish(EssenceAbsorbed, map[string]any{"color": "RED", "points": 20})

	if got.Kind != EssenceAbsorbed {
		t.Errorf("Kind = %s, want %s", got.Kind, EssenceAbsorbed)
	}
	if got.Data["color"] != "RED" || got.Data["points"] != 20 {
		t.Errorf("payload = %v", got.Data)
	}
	if got.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestPanicIsolation(t *testing.T) {
	b := NewBus()
	ran := false
	b.Subscribe(HazardHit, func(Event) { panic("handler bug") })
	b.Subscribe(HazardHit, func(Event) { ran = true })

	b.Publish(HazardHit, nil) // must not panic the publisher

	if !ran {
		t.Error("handler after the panicking one did not run")
	}
}

func TestSubscribeDuringDispatchDeferred(t *testing.T) {
	b := NewBus()
	lateRan := 0
	b.Subscribe(EssenceAbsorbed, func(Event) {
		b.Subscribe(EssenceAbsorbed, func(Event) { lateRan++ })
	})

	b.Publish(EssenceAbsorbed, nil)
	if lateRan != 0 {
		t.Error("handler subscribed mid-dispatch ran in the same dispatch")
	}

	b.Publish(EssenceAbsorbed, nil)
	if lateRan != 1 {
		t.Errorf("late handler ran %d times on next publish, want 1", lateRan)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := NewBus()
	n := 0
	tok := b.Subscribe(EssenceAbsorbed, func(Event) { n++ })
	gtok := b.SubscribeAll(func(Event) { n++ })

	b.Publish(EssenceAbsorbed, nil)
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}

	b.Unsubscribe(tok)
	b.Unsubscribe(gtok)
	b.Publish(EssenceAbsorbed, nil)
	if n != 2 {
		t.Errorf("handlers ran after unsubscribe: n = %d", n)
	}
}

func TestHistoryRing(t *testing.T) {
	b := NewBus()
	for i := 0; i < 150; i++ {
		b.Publish(EssenceAbsorbed, map[string]any{"seq": i})
	}

	h := b.History()
	if len(h) != 100 {
		t.Fatalf("history length = %d, want 100", len(h))
	}
	if h[0].Data["seq"] != 50 {
		t.Errorf("oldest retained seq = %v, want 50", h[0].Data["seq"])
	}
	if h[99].Data["seq"] != 149 {
		t.Errorf("newest retained seq = %v, want 149", h[99].Data["seq"])
	}

	b.Clear()
	if len(b.History()) != 0 {
		t.Error("history not empty after Clear")
	}

	b.Publish(HazardHit, nil)
	if len(b.History()) != 1 {
		t.Error("publish after Clear not recorded")
	}
}
