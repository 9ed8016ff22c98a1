package notify

import "testing"

func TestBroadcastSignalsEverySubscriber(t *testing.T) {
	n := New()

	ch1, cancel1 := n.Subscribe()
	ch2, cancel2 := n.Subscribe()
	defer cancel1()
	defer cancel2()

	n.Broadcast()

	for i, ch := range []<-chan struct{}{ch1, ch2} {
		select {
		case <-ch:
		default:
			t.Errorf("subscriber %d was not signalled", i+1)
		}
	}
}

func TestBroadcastNeverBlocksOnSlowListener(t *testing.T) {
	n := New()

	ch, cancel := n.Subscribe()
	defer cancel()

	// Nobody drains the channel between broadcasts; the second one must
	// coalesce instead of blocking.
	n.Broadcast()
	n.Broadcast()
	n.Broadcast()

	select {
	case <-ch:
	default:
		t.Fatal("subscriber was not signalled")
	}
	select {
	case <-ch:
		t.Error("signals were queued instead of coalesced")
	default:
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	n := New()

	ch, cancel := n.Subscribe()
	cancel()

	n.Broadcast()

	select {
	case <-ch:
		t.Error("unsubscribed channel was signalled")
	default:
	}
}
