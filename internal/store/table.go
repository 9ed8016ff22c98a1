package store

import (
	"context"
	"encoding/json"
	"log"

	"github.com/glowdesk/salon-manager/internal/metrics"
	"github.com/glowdesk/salon-manager/internal/notify"
)

// Table binds one entity type to one stored table. Save is
// last-writer-wins over the table's entire contents: no locking, no
// versioning, no merge.
type Table[T any] struct {
	name     string
	adapter  Adapter
	notifier *notify.Notifier
	pusher   *Pusher
}

func NewTable[T any](name string, adapter Adapter, notifier *notify.Notifier, pusher *Pusher) *Table[T] {
	return &Table[T]{
		name:     name,
		adapter:  adapter,
		notifier: notifier,
		pusher:   pusher,
	}
}

func (t *Table[T]) Name() string { return t.name }

// GetAll returns the full current contents. A missing table initializes
// the medium with an empty array; a decode failure falls back to empty.
// It never surfaces an error.
func (t *Table[T]) GetAll(ctx context.Context) []T {
	raw, err := t.adapter.Get(ctx, t.name)
	if err != nil {
		log.Printf("read %s: %v", t.name, err)
		return []T{}
	}

	if raw == nil {
		if err := t.adapter.PutAll(ctx, t.name, []byte("[]")); err != nil {
			log.Printf("init %s: %v", t.name, err)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		log.Printf("decode %s, falling back to empty: %v", t.name, err)
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// Save fully replaces the table, fires the change notifier and queues a
// best-effort mirror push. The local write is never reversed on push
// failure.
func (t *Table[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	if err := t.adapter.PutAll(ctx, t.name, data); err != nil {
		return err
	}

	metrics.TableSaves.WithLabelValues(t.name).Inc()
	t.notifier.Broadcast()
	t.pusher.Enqueue(t.name, records)

	return nil
}

// Add prepends a record and saves.
func (t *Table[T]) Add(ctx context.Context, record T) error {
	records := t.GetAll(ctx)
	return t.Save(ctx, append([]T{record}, records...))
}
