package strategy

import "options-desk/internal/models"

// ContractMultiplier is the number of underlying units per option contract.
const ContractMultiplier = 100

// TotalCost returns the signed net premium of a leg sequence. Each leg
// contributes price*size*100; Long legs are debits (negative), Short legs
// are credits (positive). An empty sequence costs 0.
func TotalCost(legs []models.Leg) float64 {
	var total float64
	for _, leg := range legs {
		cost := leg.Price * float64(leg.Size) * ContractMultiplier
		if leg.Side == models.SideLong {
			total -= cost
		} else {
			total += cost
		}
	}
	return total
}
