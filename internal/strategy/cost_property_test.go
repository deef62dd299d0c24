package strategy

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"options-desk/internal/models"
)

func legGen() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(1, 5000),
		gen.OneConstOf(models.SideLong, models.SideShort),
		gen.OneConstOf(models.OptionCall, models.OptionPut),
		gen.IntRange(1, 50),
		gen.Float64Range(0, 100),
	).Map(func(vals []interface{}) models.Leg {
		return models.Leg{
			ID:     NextID("leg"),
			Strike: vals[0].(float64),
			Side:   vals[1].(models.Side),
			Type:   vals[2].(models.OptionType),
			Size:   vals[3].(int),
			Price:  vals[4].(float64),
		}
	})
}

// Property: the net premium equals credits from short legs minus debits from
// long legs, each at price*size*100.
func TestProperty_TotalCostIsSignedSumOfContractCosts(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("net premium is signed contract-cost sum", prop.ForAll(
		func(legs []models.Leg) bool {
			var want float64
			for _, leg := range legs {
				cost := leg.Price * float64(leg.Size) * 100
				if leg.Side == models.SideLong {
					want -= cost
				} else {
					want += cost
				}
			}
			got := TotalCost(legs)
			return math.Abs(got-want) < 1e-9
		},
		gen.SliceOf(legGen()),
	))

	properties.Property("all-short strategies never cost money", prop.ForAll(
		func(legs []models.Leg) bool {
			for i := range legs {
				legs[i].Side = models.SideShort
			}
			return TotalCost(legs) >= 0
		},
		gen.SliceOf(legGen()),
	))

	properties.Property("flipping every side negates the total", prop.ForAll(
		func(legs []models.Leg) bool {
			total := TotalCost(legs)
			flipped := make([]models.Leg, len(legs))
			copy(flipped, legs)
			for i := range flipped {
				if flipped[i].Side == models.SideLong {
					flipped[i].Side = models.SideShort
				} else {
					flipped[i].Side = models.SideLong
				}
			}
			return math.Abs(TotalCost(flipped)+total) < 1e-9
		},
		gen.SliceOf(legGen()),
	))

	properties.TestingRun(t)
}

func TestTotalCostEmpty(t *testing.T) {
	if got := TotalCost(nil); got != 0 {
		t.Errorf("TotalCost(nil) = %g, want 0", got)
	}
	if got := TotalCost([]models.Leg{}); got != 0 {
		t.Errorf("TotalCost([]) = %g, want 0", got)
	}
}

func TestTotalCostVertical(t *testing.T) {
	legs := []models.Leg{
		{ID: "a", Strike: 687, Side: models.SideLong, Size: 1, Price: 7.77},
		{ID: "b", Strike: 691, Side: models.SideShort, Size: 1, Price: 6.27},
	}
	got := TotalCost(legs)
	if math.Abs(got-(-150)) > 1e-9 {
		t.Errorf("TotalCost = %g, want -150", got)
	}
}

// Property: CloneAsNext walks strikes up by 2 and prices down by 0.5 with a
// floor at 0.5, regardless of chain length.
func TestProperty_CloneChainMonotonic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("clone strikes ascend and prices floor", prop.ForAll(
		func(leg models.Leg, steps int) bool {
			legs := []models.Leg{leg}
			for i := 0; i < steps; i++ {
				prev := legs[len(legs)-1]
				next := CloneAsNext(legs)
				if next.Strike != prev.Strike+2 {
					return false
				}
				if next.Price < 0.5 {
					return false
				}
				if prev.Price-next.Price > 0.5+1e-9 {
					return false
				}
				legs = append(legs, next)
			}
			return true
		},
		legGen(),
		gen.IntRange(1, 20),
	))

	properties.TestingRun(t)
}
