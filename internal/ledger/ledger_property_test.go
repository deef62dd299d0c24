package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"

	"options-desk/internal/models"
	"options-desk/internal/strategy"
)

func propLegGen() gopter.Gen {
	return gopter.CombineGens(
		gen.Float64Range(600, 800),
		gen.OneConstOf(models.SideLong, models.SideShort),
		gen.OneConstOf(models.OptionCall, models.OptionPut),
		gen.IntRange(1, 10),
		gen.Float64Range(0, 20),
	).Map(func(vals []interface{}) models.Leg {
		return models.Leg{
			ID:     strategy.NextID("leg"),
			Strike: vals[0].(float64),
			Side:   vals[1].(models.Side),
			Type:   vals[2].(models.OptionType),
			Size:   vals[3].(int),
			Price:  vals[4].(float64),
		}
	})
}

// Property: Submit either creates an order and moves the balance by exactly
// the net premium, or rejects and leaves both ledgers untouched.
func TestProperty_SubmitAllOrNothing(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("submit is all-or-nothing", prop.ForAll(
		func(balance float64, legs []models.Leg) bool {
			l := New(balance, zerolog.Nop())
			ordersBefore := len(l.Orders())

			cost := strategy.TotalCost(legs)
			order, err := l.Submit("Test", legs)

			if err != nil {
				return l.Balance() == balance && len(l.Orders()) == ordersBefore
			}
			return math.Abs(l.Balance()-(balance+cost)) < 1e-6 &&
				len(l.Orders()) == ordersBefore+1 &&
				math.Abs(order.TotalCost-cost) < 1e-9
		},
		gen.Float64Range(0, 10000),
		gen.SliceOf(propLegGen()),
	))

	properties.TestingRun(t)
}

// Property: canceling a freshly submitted order restores the pre-submit
// balance exactly, and a second cancel changes nothing.
func TestProperty_CancelReversesSubmit(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("cancel restores the balance, idempotently", prop.ForAll(
		func(balance float64, legs []models.Leg) bool {
			l := New(balance, zerolog.Nop())

			order, err := l.Submit("Test", legs)
			if err != nil {
				// Rejected submissions are covered elsewhere.
				return true
			}

			if !l.Cancel(order.ID) {
				return false
			}
			if math.Abs(l.Balance()-balance) > 1e-6 {
				return false
			}

			// Second cancel is a no-op.
			if l.Cancel(order.ID) {
				return false
			}
			return math.Abs(l.Balance()-balance) < 1e-6
		},
		gen.Float64Range(0, 100000),
		gen.SliceOfN(3, propLegGen()),
	))

	properties.TestingRun(t)
}
