package store

import (
	"time"

	"options-desk/internal/models"
)

// SeedOrders returns the built-in sample orders. Their ids are stable so a
// reload can recognize them in stored state; together they span every
// leg-status combination.
func SeedOrders() []*models.Order {
	now := time.Now()
	return []*models.Order{
		{
			ID:           "order-live-1",
			StrategyName: "Vertical",
			Legs: []models.Leg{
				{ID: "leg-1", Strike: 687, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideLong, Size: 1, Price: 7.77, Status: models.LegWorking},
				{ID: "leg-2", Strike: 691, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 6.27, Status: models.LegPartiallyFilled},
			},
			CreatedAt: now.Add(-30 * time.Minute),
			TotalCost: -150,
		},
		{
			ID:           "order-filled-1",
			StrategyName: "Butterfly",
			Legs: []models.Leg{
				{ID: "leg-3", Strike: 687, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 7.77, Status: models.LegFilled},
				{ID: "leg-4", Strike: 689, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideLong, Size: 2, Price: 7.44, Status: models.LegFilled},
				{ID: "leg-5", Strike: 691, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 6.27, Status: models.LegFilled},
			},
			CreatedAt:  now.Add(-2 * time.Hour),
			TotalCost:  -111,
			ProfitLoss: pl(234.5),
		},
		{
			ID:           "order-completed-1",
			StrategyName: "Iron Condor",
			Legs: []models.Leg{
				{ID: "leg-6", Strike: 683, Type: models.OptionPut, Expiration: "Feb 6", Side: models.SideLong, Size: 1, Price: 4.2, Status: models.LegFilled},
				{ID: "leg-7", Strike: 685, Type: models.OptionPut, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 5.1, Status: models.LegFilled},
				{ID: "leg-8", Strike: 693, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 5.0, Status: models.LegFilled},
				{ID: "leg-9", Strike: 695, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideLong, Size: 1, Price: 4.0, Status: models.LegFilled},
			},
			CreatedAt:  now.Add(-24 * time.Hour),
			TotalCost:  -10,
			ProfitLoss: pl(890),
		},
		{
			ID:           "order-expired-1",
			StrategyName: "Calendar",
			Legs: []models.Leg{
				{ID: "leg-10", Strike: 689, Type: models.OptionCall, Expiration: "Mar 6", Side: models.SideLong, Size: 1, Price: 9.2, Status: models.LegExpired},
				{ID: "leg-11", Strike: 689, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 7.44, Status: models.LegExpired},
			},
			CreatedAt:  now.Add(-3 * 24 * time.Hour),
			TotalCost:  -176,
			ProfitLoss: pl(-125.5),
		},
		{
			ID:           "order-draft-1",
			StrategyName: "Condor",
			Legs: []models.Leg{
				{ID: "leg-12", Strike: 685, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideLong, Size: 1, Price: 8.5, Status: models.LegWorking},
				{ID: "leg-13", Strike: 687, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 7.77, Status: models.LegWorking},
				{ID: "leg-14", Strike: 691, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 6.27, Status: models.LegWorking},
				{ID: "leg-15", Strike: 693, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideLong, Size: 1, Price: 5.1, Status: models.LegWorking},
			},
			CreatedAt: now.Add(-5 * time.Minute),
			TotalCost: -10,
		},
		{
			ID:           "order-rejected-1",
			StrategyName: "Vertical",
			Legs: []models.Leg{
				{ID: "leg-16", Strike: 689, Type: models.OptionPut, Expiration: "Feb 6", Side: models.SideLong, Size: 1, Price: 12.0, Status: models.LegRejected},
				{ID: "leg-17", Strike: 693, Type: models.OptionPut, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 8.0, Status: models.LegRejected},
			},
			CreatedAt: now.Add(-10 * time.Minute),
			TotalCost: -400,
		},
	}
}

func pl(v float64) *float64 {
	return &v
}
