package store

import (
	"context"
	"testing"

	"github.com/glowdesk/salon-manager/internal/notify"
)

type widget struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestTable(t *testing.T) (*Table[widget], *Memory, *notify.Notifier) {
	t.Helper()
	adapter := NewMemory()
	notifier := notify.New()
	return NewTable[widget]("widgets", adapter, notifier, nil), adapter, notifier
}

func TestGetAllInitializesMissingTable(t *testing.T) {
	table, adapter, _ := newTestTable(t)
	ctx := context.Background()

	got := table.GetAll(ctx)
	if len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}

	raw, err := adapter.Get(ctx, "widgets")
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[]" {
		t.Errorf("first read did not initialize the medium: got %q", raw)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	table, _, _ := newTestTable(t)
	ctx := context.Background()

	records := []widget{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	if err := table.Save(ctx, records); err != nil {
		t.Fatal(err)
	}

	got := table.GetAll(ctx)
	if len(got) != 2 || got[0] != records[0] || got[1] != records[1] {
		t.Errorf("round trip mismatch: got %v", got)
	}
}

func TestSaveIsFullReplace(t *testing.T) {
	table, _, _ := newTestTable(t)
	ctx := context.Background()

	if err := table.Save(ctx, []widget{{ID: "1"}, {ID: "2"}, {ID: "3"}}); err != nil {
		t.Fatal(err)
	}
	if err := table.Save(ctx, []widget{{ID: "9"}}); err != nil {
		t.Fatal(err)
	}

	got := table.GetAll(ctx)
	if len(got) != 1 || got[0].ID != "9" {
		t.Errorf("second save did not fully replace contents: got %v", got)
	}
}

func TestSaveFiresNotifierEachTime(t *testing.T) {
	table, _, notifier := newTestTable(t)
	ctx := context.Background()

	ch, cancel := notifier.Subscribe()
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := table.Save(ctx, []widget{{ID: "1"}}); err != nil {
			t.Fatal(err)
		}
		select {
		case <-ch:
		default:
			t.Fatalf("save %d did not signal the notifier", i+1)
		}
	}
}

func TestGetAllFallsBackToEmptyOnCorruptData(t *testing.T) {
	table, adapter, _ := newTestTable(t)
	ctx := context.Background()

	if err := adapter.PutAll(ctx, "widgets", []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	got := table.GetAll(ctx)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty slice on corrupt data, got %v", got)
	}
}

func TestAddPrepends(t *testing.T) {
	table, _, _ := newTestTable(t)
	ctx := context.Background()

	if err := table.Add(ctx, widget{ID: "old"}); err != nil {
		t.Fatal(err)
	}
	if err := table.Add(ctx, widget{ID: "new"}); err != nil {
		t.Fatal(err)
	}

	got := table.GetAll(ctx)
	if len(got) != 2 || got[0].ID != "new" || got[1].ID != "old" {
		t.Errorf("newest record should come first: got %v", got)
	}
}

func TestSaveNilBecomesEmptyArray(t *testing.T) {
	table, adapter, _ := newTestTable(t)
	ctx := context.Background()

	if err := table.Save(ctx, nil); err != nil {
		t.Fatal(err)
	}

	raw, err := adapter.Get(ctx, "widgets")
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "[]" {
		t.Errorf("nil save stored %q, want []", raw)
	}
}
