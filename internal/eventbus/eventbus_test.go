package eventbus

import "testing"

func TestBusPublishSubscribe(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Publish("hello")
	if v := <-ch; v != "hello" {
		t.Fatalf("expected hello got %v", v)
	}
	bus.Unsubscribe(ch)
	if n := bus.SubscriberCount(); n != 0 {
		t.Fatalf("expected 0 subscribers got %d", n)
	}
}

func TestBusSlowSubscriberDrops(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	// The buffer holds 8 events; further publishes must not block.
	for i := 0; i < 20; i++ {
		bus.Publish(i)
	}
	if v := <-ch; v != 0 {
		t.Fatalf("expected first event got %v", v)
	}
}

func TestBusClose(t *testing.T) {
	bus := New()
	ch1 := bus.Subscribe()
	ch2 := bus.Subscribe()
	bus.Close()
	if _, ok := <-ch1; ok {
		t.Fatalf("expected ch1 closed")
	}
	if _, ok := <-ch2; ok {
		t.Fatalf("expected ch2 closed")
	}
	// Publish and double Close after Close are no-ops.
	bus.Publish("late")
	bus.Close()
}

func TestBusSubscribeAfterClose(t *testing.T) {
	bus := New()
	bus.Close()
	ch := bus.Subscribe()
	if _, ok := <-ch; ok {
		t.Fatalf("expected closed channel")
	}
}

func TestBusUnsubscribeAfterClose(t *testing.T) {
	bus := New()
	ch := bus.Subscribe()
	bus.Close()
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("panic on Unsubscribe after Close: %v", r)
		}
	}()
	bus.Unsubscribe(ch)
}
