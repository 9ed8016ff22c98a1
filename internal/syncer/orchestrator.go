package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/glowdesk/salon-manager/internal/metrics"
	"github.com/glowdesk/salon-manager/internal/mirror"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/notify"
	"github.com/glowdesk/salon-manager/internal/store"
)

// Orchestrator coordinates the pull-on-start and the manual pull/push
// actions. Pulls write through the raw adapter, not Table.Save, so a
// pull never echoes back to the mirror.
type Orchestrator struct {
	mirror   *mirror.Client
	adapter  store.Adapter
	notifier *notify.Notifier

	startup sync.Once
}

func New(m *mirror.Client, adapter store.Adapter, notifier *notify.Notifier) *Orchestrator {
	return &Orchestrator{
		mirror:   m,
		adapter:  adapter,
		notifier: notifier,
	}
}

func (o *Orchestrator) Configured() bool {
	return o.mirror.IsConfigured()
}

// Pull fetches the full remote dataset, sanitizes it and overwrites every
// local table, then fires the change notifier exactly once. On any error
// before the overwrite loop no local table is touched.
func (o *Orchestrator) Pull(ctx context.Context) error {
	if !o.mirror.IsConfigured() {
		return fmt.Errorf("mirror not configured")
	}

	dataset, err := o.mirror.ReadAll(ctx)
	if err != nil {
		metrics.SyncPulls.WithLabelValues("failure").Inc()
		return err
	}

	for _, table := range models.AllTables() {
		rows, ok := dataset[table]
		if !ok {
			continue // tab absent remotely, keep local contents
		}

		sanitized := Sanitize(table, rows)
		data, err := json.Marshal(sanitized)
		if err != nil {
			log.Printf("sync: encode %s: %v", table, err)
			continue
		}
		if err := o.adapter.PutAll(ctx, table, data); err != nil {
			log.Printf("sync: overwrite %s: %v", table, err)
		}
	}

	metrics.SyncPulls.WithLabelValues("success").Inc()
	o.notifier.Broadcast()
	return nil
}

// PullOnce runs the startup pull a single time per process. Later pulls
// are manual only, so a mid-session pull cannot clobber local edits
// unless the user asks for it.
func (o *Orchestrator) PullOnce(ctx context.Context) {
	o.startup.Do(func() {
		if !o.mirror.IsConfigured() {
			return
		}
		if err := o.Pull(ctx); err != nil {
			log.Printf("startup sync failed: %v", err)
		}
	})
}

// PushAll replaces every remote tab with the local contents.
func (o *Orchestrator) PushAll(ctx context.Context) error {
	if !o.mirror.IsConfigured() {
		return fmt.Errorf("mirror not configured")
	}

	for _, table := range models.AllTables() {
		raw, err := o.adapter.Get(ctx, table)
		if err != nil {
			return fmt.Errorf("read %s: %w", table, err)
		}
		if raw == nil {
			raw = []byte("[]")
		}

		var records []map[string]any
		if err := json.Unmarshal(raw, &records); err != nil {
			log.Printf("sync: decode %s, pushing empty: %v", table, err)
			records = []map[string]any{}
		}

		if err := o.mirror.Write(ctx, table, records); err != nil {
			return err
		}
	}
	return nil
}
