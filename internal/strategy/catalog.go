package strategy

import "options-desk/internal/models"

// DefaultCatalog returns the built-in strategy templates. Each template's
// blueprints seed a fresh draft when the strategy is first opened.
func DefaultCatalog() []models.StrategyConfig {
	return []models.StrategyConfig{
		{
			Name: "Vertical",
			DefaultLegs: []models.LegBlueprint{
				{Strike: 687, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideLong, Size: 1, Price: 7.77},
				{Strike: 691, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 6.27},
			},
		},
		{
			Name: "Butterfly",
			DefaultLegs: []models.LegBlueprint{
				{Strike: 687, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 7.77},
				{Strike: 689, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideLong, Size: 2, Price: 7.44},
				{Strike: 691, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 6.27},
			},
		},
		{
			Name: "Iron Condor",
			DefaultLegs: []models.LegBlueprint{
				{Strike: 683, Type: models.OptionPut, Expiration: "Feb 6", Side: models.SideLong, Size: 1, Price: 4.2},
				{Strike: 685, Type: models.OptionPut, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 5.1},
				{Strike: 693, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 5.0},
				{Strike: 695, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideLong, Size: 1, Price: 4.0},
			},
		},
		{
			Name: "Calendar",
			DefaultLegs: []models.LegBlueprint{
				{Strike: 689, Type: models.OptionCall, Expiration: "Mar 6", Side: models.SideLong, Size: 1, Price: 9.2},
				{Strike: 689, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 7.44},
			},
		},
		{
			Name: "Condor",
			DefaultLegs: []models.LegBlueprint{
				{Strike: 685, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideLong, Size: 1, Price: 8.5},
				{Strike: 687, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 7.77},
				{Strike: 691, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideShort, Size: 1, Price: 6.27},
				{Strike: 693, Type: models.OptionCall, Expiration: "Feb 6", Side: models.SideLong, Size: 1, Price: 5.1},
			},
		},
	}
}
