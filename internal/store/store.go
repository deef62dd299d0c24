// Package store provides persistence for the order collection and the
// activity journal.
package store

import "options-desk/internal/models"

// OrderStore defines the durable home of the serialized order collection.
type OrderStore interface {
	// Load reads the stored order collection. A missing store yields an
	// empty collection; a corrupt one yields ErrMalformedState.
	Load() ([]*models.Order, error)
	// Save writes the full order collection, replacing previous contents.
	Save(orders []*models.Order) error
	// Path returns the location backing the store.
	Path() string
}
