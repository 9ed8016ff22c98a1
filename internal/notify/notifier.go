package notify

import "sync"

// Notifier is the process-wide data-changed signal. Every table save fires
// it once; listeners refetch whatever they render. It carries no payload
// and is not a correctness mechanism.
type Notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]chan struct{}
}

func New() *Notifier {
	return &Notifier{subs: make(map[int]chan struct{})}
}

// Subscribe returns a signal channel and an unsubscribe func. The channel
// has a buffer of one; a listener that is already signalled is not queued
// further.
func (n *Notifier) Subscribe() (<-chan struct{}, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++

	ch := make(chan struct{}, 1)
	n.subs[id] = ch

	return ch, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// Broadcast signals every subscriber without blocking. Delivery order
// across listeners is unspecified.
func (n *Notifier) Broadcast() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.subs {
		select {
		case ch <- struct{}{}:
		default:
			// already signalled
		}
	}
}
