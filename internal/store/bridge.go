package store

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	apperrors "options-desk/internal/errors"
	"options-desk/internal/ledger"
	"options-desk/internal/models"
)

// Bridge reconciles the order ledger with durable storage. On start it loads
// the stored collection, merges it with the seed set, and pushes the result
// into the ledger; afterwards it persists the full collection on every
// ledger mutation and re-runs the load/merge when another process rewrites
// the store.
type Bridge struct {
	store  OrderStore
	ledger *ledger.Ledger
	seeds  func() []*models.Order
	logger zerolog.Logger

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewBridge creates a bridge between the given store and ledger.
func NewBridge(s OrderStore, l *ledger.Ledger, logger zerolog.Logger) *Bridge {
	return &Bridge{
		store:  s,
		ledger: l,
		seeds:  SeedOrders,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Start hydrates the ledger from storage and subscribes to ledger changes.
// When watch is true it also watches the store for external rewrites.
func (b *Bridge) Start(watch bool) error {
	b.Hydrate()

	b.ledger.Subscribe(func(snap ledger.Snapshot) {
		if len(snap.Orders) == 0 {
			return
		}
		if err := b.store.Save(snap.Orders); err != nil {
			b.logger.Error().Err(err).Msg("Failed to persist orders")
		}
	})

	if !watch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return apperrors.Wrap(err, "creating storage watcher")
	}
	// Watch the directory; the file itself may not exist yet and atomic
	// renames replace its inode.
	if err := watcher.Add(filepath.Dir(b.store.Path())); err != nil {
		watcher.Close()
		return apperrors.Wrap(err, "watching storage directory")
	}
	b.watcher = watcher

	go b.watchLoop()
	return nil
}

// Close stops the storage watcher.
func (b *Bridge) Close() error {
	close(b.done)
	if b.watcher != nil {
		return b.watcher.Close()
	}
	return nil
}

// Hydrate loads the stored order collection, merges it with the seed set
// and replaces the ledger's collection with the result. Corrupt or missing
// state falls back to the seeds alone; the merge is re-persisted whenever
// it differs from what was stored.
func (b *Bridge) Hydrate() {
	stored, err := b.store.Load()
	if err != nil {
		// Malformed state is recovered locally, never surfaced.
		b.logger.Warn().Err(err).Msg("Discarding unreadable stored orders")
		stored = nil
	}

	merged, changed := MergeWithSeeds(stored, b.seeds())

	b.ledger.Replace(merged)
	if changed {
		if err := b.store.Save(merged); err != nil {
			b.logger.Error().Err(err).Msg("Failed to persist merged orders")
		}
	}
}

// MergeWithSeeds unions stored orders with the seed set. When the stored
// collection already contains every seed id it wins as-is (last writer
// wins, keyed by order id); otherwise stored orders that do not collide
// with a seed id are kept and the full seed set is appended. The bool
// result reports whether the merge differs from the stored input.
func MergeWithSeeds(stored, seeds []*models.Order) ([]*models.Order, bool) {
	seedIDs := make(map[string]bool, len(seeds))
	for _, s := range seeds {
		seedIDs[s.ID] = true
	}

	present := make(map[string]bool, len(stored))
	for _, o := range stored {
		present[o.ID] = true
	}
	hasAllSeeds := true
	for id := range seedIDs {
		if !present[id] {
			hasAllSeeds = false
			break
		}
	}
	if hasAllSeeds {
		return stored, false
	}

	merged := make([]*models.Order, 0, len(stored)+len(seeds))
	for _, o := range stored {
		if !seedIDs[o.ID] {
			merged = append(merged, o)
		}
	}
	merged = append(merged, seeds...)
	return merged, true
}

func (b *Bridge) watchLoop() {
	path := b.store.Path()
	for {
		select {
		case <-b.done:
			return
		case event, ok := <-b.watcher.Events:
			if !ok {
				return
			}
			if event.Name != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			b.logger.Debug().Str("path", path).Msg("Order storage changed externally")
			b.Hydrate()
		case err, ok := <-b.watcher.Errors:
			if !ok {
				return
			}
			b.logger.Warn().Err(err).Msg("Storage watcher error")
		}
	}
}
