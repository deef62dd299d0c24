package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"options-desk/internal/ledger"
	"options-desk/internal/models"
)

func seedIDSet() map[string]bool {
	ids := make(map[string]bool)
	for _, o := range SeedOrders() {
		ids[o.ID] = true
	}
	return ids
}

func TestMergeWithSeedsStoredComplete(t *testing.T) {
	seeds := SeedOrders()
	stored := append([]*models.Order{{ID: "order-user-1", StrategyName: "Vertical"}}, seeds...)

	merged, changed := MergeWithSeeds(stored, seeds)
	if changed {
		t.Error("stored collection already has every seed, merge should report no change")
	}
	if len(merged) != len(stored) {
		t.Errorf("merged has %d orders, want stored %d as-is", len(merged), len(stored))
	}
}

func TestMergeWithSeedsPartialSeedSet(t *testing.T) {
	seeds := SeedOrders()
	// Stored state is missing 2 of the 6 seeds and has one user order plus
	// one stale copy of a seed id.
	stored := []*models.Order{
		{ID: "order-user-1", StrategyName: "Vertical"},
		{ID: "order-live-1", StrategyName: "Stale"},
		seeds[1], seeds[2], seeds[3], seeds[4],
	}

	merged, changed := MergeWithSeeds(stored, seeds)
	if !changed {
		t.Fatal("merge should report a change")
	}

	ids := make(map[string]int)
	for _, o := range merged {
		ids[o.ID]++
	}
	for id := range seedIDSet() {
		if ids[id] != 1 {
			t.Errorf("seed %s appears %d times, want exactly once", id, ids[id])
		}
	}
	if ids["order-user-1"] != 1 {
		t.Error("non-colliding stored order lost in merge")
	}
	// The stale stored copy of a seed id must be replaced by the seed.
	for _, o := range merged {
		if o.ID == "order-live-1" && o.StrategyName == "Stale" {
			t.Error("colliding stored order should be superseded by the seed")
		}
	}
	if len(merged) != 7 {
		t.Errorf("merged has %d orders, want 7", len(merged))
	}
}

func TestMergeWithSeedsEmptyStored(t *testing.T) {
	seeds := SeedOrders()
	merged, changed := MergeWithSeeds(nil, seeds)
	if !changed {
		t.Error("empty stored state should trigger a change")
	}
	if len(merged) != len(seeds) {
		t.Errorf("merged has %d orders, want the %d seeds", len(merged), len(seeds))
	}
}

func newTestBridge(t *testing.T) (*Bridge, *FileStore, *ledger.Ledger) {
	t.Helper()
	fs := NewFileStore(filepath.Join(t.TempDir(), "orders.json"))
	l := ledger.New(50000, zerolog.Nop())
	return NewBridge(fs, l, zerolog.Nop()), fs, l
}

func TestHydrateSeedsEmptyStorage(t *testing.T) {
	b, fs, l := newTestBridge(t)

	b.Hydrate()

	if got := len(l.Orders()); got != 6 {
		t.Errorf("ledger holds %d orders, want the 6 seeds", got)
	}

	// The merge is re-persisted.
	stored, err := fs.Load()
	if err != nil {
		t.Fatalf("Load after hydrate: %v", err)
	}
	if len(stored) != 6 {
		t.Errorf("stored %d orders, want 6", len(stored))
	}
}

func TestHydrateRecoversFromCorruptStorage(t *testing.T) {
	b, fs, l := newTestBridge(t)
	if err := os.WriteFile(fs.Path(), []byte("][ definitely not json"), 0644); err != nil {
		t.Fatal(err)
	}

	b.Hydrate()

	if got := len(l.Orders()); got != 6 {
		t.Errorf("ledger holds %d orders, want the 6 seeds", got)
	}
	stored, err := fs.Load()
	if err != nil {
		t.Fatalf("corrupt state not replaced: %v", err)
	}
	if len(stored) != 6 {
		t.Errorf("stored %d orders, want 6", len(stored))
	}
}

func TestHydrateMergesPartialStorage(t *testing.T) {
	b, fs, l := newTestBridge(t)

	seeds := SeedOrders()
	partial := append([]*models.Order{{
		ID:           "order-user-1",
		StrategyName: "Vertical",
		Legs:         []models.Leg{{ID: "leg-u1", Strike: 687, Type: models.OptionCall, Side: models.SideLong, Size: 1, Price: 7.77, Status: models.LegWorking}},
		TotalCost:    -777,
	}}, seeds[:4]...)
	if err := fs.Save(partial); err != nil {
		t.Fatal(err)
	}

	b.Hydrate()

	orders := l.Orders()
	if len(orders) != 7 {
		t.Fatalf("ledger holds %d orders, want 7", len(orders))
	}

	stored, err := fs.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 7 {
		t.Errorf("re-persisted %d orders, want 7", len(stored))
	}
}

func TestBridgePersistsLedgerMutations(t *testing.T) {
	b, fs, l := newTestBridge(t)
	if err := b.Start(false); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer b.Close()

	legs := []models.Leg{
		{ID: "leg-a", Strike: 687, Type: models.OptionCall, Side: models.SideLong, Size: 1, Price: 7.77},
	}
	order, err := l.Submit("Vertical", legs)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	stored, err := fs.Load()
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, o := range stored {
		if o.ID == order.ID {
			found = true
		}
	}
	if !found {
		t.Error("submitted order was not persisted")
	}

	l.Cancel(order.ID)
	stored, _ = fs.Load()
	for _, o := range stored {
		if o.ID == order.ID && o.Legs[0].Status != models.LegCanceled {
			t.Errorf("persisted leg status = %q, want Canceled", o.Legs[0].Status)
		}
	}
}
