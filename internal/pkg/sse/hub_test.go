package sse

import (
	"testing"
)

func TestSubscribeAndPublish(t *testing.T) {
	hub := NewHub()

	events, cleanup := hub.Subscribe("attendance")
	defer cleanup()

	hub.Publish("attendance", Event{Topic: "attendance", Event: "attendance_result", Data: "payload"})

	select {
	case event := <-events:
		if event.Event != "attendance_result" {
			t.Errorf("event name = %s, want attendance_result", event.Event)
		}
		if event.Data != "payload" {
			t.Errorf("event data = %v, want payload", event.Data)
		}
	default:
		t.Fatal("expected a buffered event")
	}
}

func TestPublishIsTopicScoped(t *testing.T) {
	hub := NewHub()

	attendance, cleanupA := hub.Subscribe("attendance")
	defer cleanupA()
	geofence, cleanupG := hub.Subscribe("geofence")
	defer cleanupG()

	hub.Publish("geofence", Event{Topic: "geofence", Event: "geofence_status"})

	select {
	case <-attendance:
		t.Fatal("attendance subscriber received a geofence event")
	default:
	}

	select {
	case <-geofence:
	default:
		t.Fatal("geofence subscriber missed its event")
	}
}

func TestPublishSkipsSlowSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("attendance")
	defer cleanup()

	// Overflow the channel buffer; Publish must not block.
	for i := 0; i < 100; i++ {
		hub.Publish("attendance", Event{Topic: "attendance", Event: "attendance_result", Data: i})
	}
}

func TestCleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("attendance")
	if got := hub.SubscriberCount("attendance"); got != 1 {
		t.Fatalf("SubscriberCount = %d, want 1", got)
	}

	cleanup()
	if got := hub.SubscriberCount("attendance"); got != 0 {
		t.Errorf("SubscriberCount after cleanup = %d, want 0", got)
	}

	// Publishing to a topic with no subscribers is a no-op.
	hub.Publish("attendance", Event{Topic: "attendance"})
}

func TestMultipleSubscribersAllReceive(t *testing.T) {
	hub := NewHub()

	first, cleanup1 := hub.Subscribe("attendance")
	defer cleanup1()
	second, cleanup2 := hub.Subscribe("attendance")
	defer cleanup2()

	hub.Publish("attendance", Event{Topic: "attendance", Event: "attendance_result"})

	for i, ch := range []chan Event{first, second} {
		select {
		case <-ch:
		default:
			t.Errorf("subscriber %d missed the event", i)
		}
	}
}
