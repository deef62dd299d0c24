package strategy

import (
	"math"
	"sync"

	"options-desk/internal/models"
)

// LegUpdate carries the changed fields of a leg edit. Nil fields are left
// untouched.
type LegUpdate struct {
	Strike     *float64
	Type       *models.OptionType
	Expiration *string
	Side       *models.Side
	Size       *int
	Price      *float64
}

// DraftStore holds the in-progress, unsubmitted leg collection for each
// strategy template, keyed by template name. Drafts are seeded lazily from
// the template on first access, so switching strategies never discards
// progress already made on a previously visited one.
type DraftStore struct {
	mu      sync.Mutex
	catalog []models.StrategyConfig
	byName  map[string]models.StrategyConfig
	drafts  map[string][]models.Leg
}

// NewDraftStore creates a draft store over the given strategy catalog.
func NewDraftStore(catalog []models.StrategyConfig) *DraftStore {
	byName := make(map[string]models.StrategyConfig, len(catalog))
	for _, cfg := range catalog {
		byName[cfg.Name] = cfg
	}
	return &DraftStore{
		catalog: catalog,
		byName:  byName,
		drafts:  make(map[string][]models.Leg),
	}
}

// Strategies returns the catalog in its defined order.
func (s *DraftStore) Strategies() []models.StrategyConfig {
	return s.catalog
}

// Legs returns a copy of the current draft for the named template, seeding
// it from the template on first access.
func (s *DraftStore) Legs(name string) []models.Leg {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Leg(nil), s.legsLocked(name)...)
}

func (s *DraftStore) legsLocked(name string) []models.Leg {
	legs, ok := s.drafts[name]
	if !ok {
		legs = BuildFromTemplate(s.byName[name].DefaultLegs)
		s.drafts[name] = legs
	}
	return legs
}

// TotalCost returns the live net premium preview of the named draft.
func (s *DraftStore) TotalCost(name string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalCost(s.legsLocked(name))
}

// UpdateLeg applies the changed fields to the matching leg. Unknown leg ids
// are a silent no-op. Numeric fields are coerced to safe values: size is
// clamped to at least 1, price and strike fall back to 0 when non-finite
// or negative.
func (s *DraftStore) UpdateLeg(name, legID string, upd LegUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.legsLocked(name)
	next := make([]models.Leg, len(current))
	copy(next, current)

	for i := range next {
		if next[i].ID != legID {
			continue
		}
		if upd.Strike != nil {
			next[i].Strike = safeNumber(*upd.Strike)
		}
		if upd.Type != nil {
			next[i].Type = *upd.Type
		}
		if upd.Expiration != nil {
			next[i].Expiration = *upd.Expiration
		}
		if upd.Side != nil {
			next[i].Side = *upd.Side
		}
		if upd.Size != nil {
			size := *upd.Size
			if size < 1 {
				size = 1
			}
			next[i].Size = size
		}
		if upd.Price != nil {
			next[i].Price = safeNumber(*upd.Price)
		}
		s.drafts[name] = next
		return
	}
}

// RemoveLeg drops the matching leg from the draft. Unknown leg ids are a
// silent no-op. Remaining legs keep their ids.
func (s *DraftStore) RemoveLeg(name, legID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.legsLocked(name)
	next := make([]models.Leg, 0, len(current))
	removed := false
	for _, leg := range current {
		if leg.ID == legID {
			removed = true
			continue
		}
		next = append(next, leg)
	}
	if removed {
		s.drafts[name] = next
	}
}

// AddPosition appends a new leg derived from the draft's last leg and
// returns it.
func (s *DraftStore) AddPosition(name string) models.Leg {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.legsLocked(name)
	leg := CloneAsNext(current)
	s.drafts[name] = append(append([]models.Leg(nil), current...), leg)
	return leg
}

// Reset discards the draft for the named template; the next access reseeds
// it from the template.
func (s *DraftStore) Reset(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, name)
}

func safeNumber(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
