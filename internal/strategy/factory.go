// Package strategy provides leg construction, premium aggregation and the
// in-progress draft store for option strategies.
package strategy

import (
	"options-desk/internal/models"
)

// Default leg used when a new position is added to an empty draft.
const (
	defaultStrike     = 689
	defaultPrice      = 7.0
	defaultExpiration = "Feb 6"
)

// Clone derivation applied by CloneAsNext relative to the previous leg.
const (
	cloneStrikeStep = 2
	clonePriceStep  = 0.5
	clonePriceFloor = 0.5
)

// BuildFromTemplate materializes a template's blueprints into draft legs,
// assigning each a fresh id. Blueprint order and content are preserved.
// Draft legs carry no execution status.
func BuildFromTemplate(blueprints []models.LegBlueprint) []models.Leg {
	legs := make([]models.Leg, 0, len(blueprints))
	for _, bp := range blueprints {
		legs = append(legs, models.Leg{
			ID:         NextID("leg"),
			Strike:     bp.Strike,
			Type:       bp.Type,
			Expiration: bp.Expiration,
			Side:       bp.Side,
			Size:       bp.Size,
			Price:      bp.Price,
		})
	}
	return legs
}

// CloneAsNext derives a new leg from the last element of existing: strike
// two points higher, price half a point cheaper (floored at 0.5), all other
// fields copied, fresh id. An empty draft yields a fixed default leg.
func CloneAsNext(existing []models.Leg) models.Leg {
	if len(existing) == 0 {
		return models.Leg{
			ID:         NextID("leg"),
			Strike:     defaultStrike,
			Type:       models.OptionCall,
			Expiration: defaultExpiration,
			Side:       models.SideLong,
			Size:       1,
			Price:      defaultPrice,
		}
	}

	last := existing[len(existing)-1]
	price := last.Price - clonePriceStep
	if price < clonePriceFloor {
		price = clonePriceFloor
	}
	return models.Leg{
		ID:         NextID("leg"),
		Strike:     last.Strike + cloneStrikeStep,
		Type:       last.Type,
		Expiration: last.Expiration,
		Side:       last.Side,
		Size:       last.Size,
		Price:      price,
	}
}
