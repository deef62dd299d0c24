package models

import "time"

// Order represents a submitted, immutable snapshot of strategy legs.
// After creation only the Status field of individual legs may change
// (via cancellation); Legs length, TotalCost and CreatedAt are frozen.
type Order struct {
	ID           string    `json:"id"`
	StrategyName string    `json:"strategyName"`
	Legs         []Leg     `json:"legs"`
	CreatedAt    time.Time `json:"createdAt"`
	TotalCost    float64   `json:"totalCost"`
	// ProfitLoss is populated externally (seed data only); the core never
	// computes it.
	ProfitLoss *float64 `json:"profitLoss,omitempty"`
}

// HasLegWithStatus reports whether any leg of the order is in status s.
func (o *Order) HasLegWithStatus(s LegStatus) bool {
	for _, l := range o.Legs {
		if l.Status == s {
			return true
		}
	}
	return false
}

// FullyConcluded reports whether every leg has reached a terminal status.
func (o *Order) FullyConcluded() bool {
	for _, l := range o.Legs {
		if !l.Status.IsTerminal() {
			return false
		}
	}
	return len(o.Legs) > 0
}

// HasCancelableLeg reports whether any leg is still Working or Partially filled.
func (o *Order) HasCancelableLeg() bool {
	for _, l := range o.Legs {
		if l.Status.IsOpen() {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the order, including its leg snapshot.
func (o *Order) Clone() *Order {
	cp := *o
	cp.Legs = append([]Leg(nil), o.Legs...)
	if o.ProfitLoss != nil {
		pl := *o.ProfitLoss
		cp.ProfitLoss = &pl
	}
	return &cp
}
