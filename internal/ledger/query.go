package ledger

import "options-desk/internal/models"

// StatusFilter selects orders by leg-status presence. FilterAll matches
// every order; any other value matches orders with at least one leg in that
// status.
type StatusFilter string

// FilterAll matches every order.
const FilterAll StatusFilter = "All"

// Filters lists all filter buckets in display order.
func Filters() []StatusFilter {
	filters := make([]StatusFilter, 0, len(models.LegStatuses)+1)
	filters = append(filters, FilterAll)
	for _, s := range models.LegStatuses {
		filters = append(filters, StatusFilter(s))
	}
	return filters
}

func (f StatusFilter) matches(o *models.Order) bool {
	if f == FilterAll {
		return true
	}
	return o.HasLegWithStatus(models.LegStatus(f))
}

// FilterOrders returns deep copies of the orders matching the filter, most
// recent first.
func (l *Ledger) FilterOrders(filter StatusFilter) []*models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []*models.Order
	for _, o := range l.orders {
		if filter.matches(o) {
			out = append(out, o.Clone())
		}
	}
	return out
}

// Count returns the number of orders matching the filter.
func (l *Ledger) Count(filter StatusFilter) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := 0
	for _, o := range l.orders {
		if filter.matches(o) {
			n++
		}
	}
	return n
}

// Counts returns the order count for every filter bucket.
func (l *Ledger) Counts() map[StatusFilter]int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	counts := make(map[StatusFilter]int, len(models.LegStatuses)+1)
	for _, f := range Filters() {
		counts[f] = 0
	}
	for _, o := range l.orders {
		counts[FilterAll]++
		for _, s := range models.LegStatuses {
			if o.HasLegWithStatus(s) {
				counts[StatusFilter(s)]++
			}
		}
	}
	return counts
}

// Totals sums the frozen total cost and the present profit/loss values of
// an order set.
func Totals(orders []*models.Order) (totalCost, profitLoss float64) {
	for _, o := range orders {
		totalCost += o.TotalCost
		if o.ProfitLoss != nil {
			profitLoss += *o.ProfitLoss
		}
	}
	return totalCost, profitLoss
}

// ShowProfitLoss reports whether any order in the set is fully concluded,
// which is when a profit/loss column becomes meaningful.
func ShowProfitLoss(orders []*models.Order) bool {
	for _, o := range orders {
		if o.FullyConcluded() {
			return true
		}
	}
	return false
}
