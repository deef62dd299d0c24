package ledger

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"options-desk/internal/models"
)

func mixedOrders() []*models.Order {
	pl := 234.5
	return []*models.Order{
		{
			ID:           "o-live",
			StrategyName: "Vertical",
			Legs: []models.Leg{
				{ID: "l1", Status: models.LegWorking},
				{ID: "l2", Status: models.LegPartiallyFilled},
			},
			CreatedAt: time.Now(),
			TotalCost: -150,
		},
		{
			ID:           "o-filled",
			StrategyName: "Butterfly",
			Legs: []models.Leg{
				{ID: "l3", Status: models.LegFilled},
				{ID: "l4", Status: models.LegFilled},
			},
			CreatedAt:  time.Now(),
			TotalCost:  -111,
			ProfitLoss: &pl,
		},
		{
			ID:           "o-expired",
			StrategyName: "Calendar",
			Legs: []models.Leg{
				{ID: "l5", Status: models.LegExpired},
			},
			CreatedAt: time.Now(),
			TotalCost: -176,
		},
	}
}

func TestFilterOrdersByLegStatusPresence(t *testing.T) {
	l := New(50000, zerolog.Nop())
	l.Replace(mixedOrders())

	cases := []struct {
		filter StatusFilter
		want   []string
	}{
		{FilterAll, []string{"o-live", "o-filled", "o-expired"}},
		{StatusFilter(models.LegWorking), []string{"o-live"}},
		{StatusFilter(models.LegPartiallyFilled), []string{"o-live"}},
		{StatusFilter(models.LegFilled), []string{"o-filled"}},
		{StatusFilter(models.LegExpired), []string{"o-expired"}},
		{StatusFilter(models.LegCanceled), nil},
		{StatusFilter(models.LegRejected), nil},
	}

	for _, tc := range cases {
		got := l.FilterOrders(tc.filter)
		if len(got) != len(tc.want) {
			t.Errorf("%s: got %d orders, want %d", tc.filter, len(got), len(tc.want))
			continue
		}
		for i, o := range got {
			if o.ID != tc.want[i] {
				t.Errorf("%s: order %d = %s, want %s", tc.filter, i, o.ID, tc.want[i])
			}
		}
	}
}

func TestCountsCoverEveryBucket(t *testing.T) {
	l := New(50000, zerolog.Nop())
	l.Replace(mixedOrders())

	counts := l.Counts()
	if len(counts) != len(models.LegStatuses)+1 {
		t.Fatalf("expected %d buckets, got %d", len(models.LegStatuses)+1, len(counts))
	}
	if counts[FilterAll] != 3 {
		t.Errorf("All = %d, want 3", counts[FilterAll])
	}
	if counts[StatusFilter(models.LegWorking)] != 1 {
		t.Errorf("Working = %d, want 1", counts[StatusFilter(models.LegWorking)])
	}
	if counts[StatusFilter(models.LegCanceled)] != 0 {
		t.Errorf("Canceled = %d, want 0", counts[StatusFilter(models.LegCanceled)])
	}
}

func TestTotalsAndShowProfitLoss(t *testing.T) {
	orders := mixedOrders()

	totalCost, totalPL := Totals(orders)
	if totalCost != -437 {
		t.Errorf("totalCost = %g, want -437", totalCost)
	}
	if totalPL != 234.5 {
		t.Errorf("totalPL = %g, want 234.5", totalPL)
	}

	if !ShowProfitLoss(orders) {
		t.Error("ShowProfitLoss should be true: o-filled is fully concluded")
	}
	if ShowProfitLoss(orders[:1]) {
		t.Error("ShowProfitLoss should be false for live orders only")
	}
}

func TestFiltersOrder(t *testing.T) {
	filters := Filters()
	want := []StatusFilter{"All", "Working", "Partially filled", "Filled", "Canceled", "Rejected", "Expired"}
	if len(filters) != len(want) {
		t.Fatalf("got %d filters, want %d", len(filters), len(want))
	}
	for i := range want {
		if filters[i] != want[i] {
			t.Errorf("filter %d = %s, want %s", i, filters[i], want[i])
		}
	}
}
