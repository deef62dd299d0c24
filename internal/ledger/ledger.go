// Package ledger provides the authoritative order collection and the account
// balance it moves in lockstep with.
package ledger

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	apperrors "options-desk/internal/errors"
	"options-desk/internal/logging"
	"options-desk/internal/models"
	"options-desk/internal/strategy"
)

// Snapshot is an immutable view of the ledger handed to subscribers after
// every mutation.
type Snapshot struct {
	Orders  []*models.Order
	Balance float64
}

// Ledger holds submitted orders (most-recent-first) and the account balance.
// Submit and Cancel each mutate both under one critical section, so no
// reader observes an order without its balance effect.
type Ledger struct {
	mu        sync.RWMutex
	orders    []*models.Order
	balance   float64
	listeners []func(Snapshot)
	logger    zerolog.Logger
}

// New creates a ledger with the given starting balance.
func New(startingBalance float64, logger zerolog.Logger) *Ledger {
	return &Ledger{
		balance: startingBalance,
		logger:  logger,
	}
}

// Balance returns the current account balance.
func (l *Ledger) Balance() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balance
}

// Orders returns deep copies of all orders, most recent first.
func (l *Ledger) Orders() []*models.Order {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return cloneOrders(l.orders)
}

// Order returns a deep copy of the order with the given id.
func (l *Ledger) Order(orderID string) (*models.Order, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, o := range l.orders {
		if o.ID == orderID {
			return o.Clone(), true
		}
	}
	return nil, false
}

// Submit materializes a draft into an immutable order. The leg snapshot is
// deep-copied with every leg set to Working, the order is inserted at the
// front, and the balance is adjusted by the frozen net premium. An empty leg
// list or a submission that would drive the balance negative is rejected
// with nothing mutated.
func (l *Ledger) Submit(strategyName string, legs []models.Leg) (*models.Order, error) {
	if len(legs) == 0 {
		return nil, apperrors.ErrNoLegs
	}

	cost := strategy.TotalCost(legs)

	l.mu.Lock()
	if l.balance+cost < 0 {
		balance := l.balance
		l.mu.Unlock()
		strategyLogger := logging.WithStrategy(l.logger, strategyName)
		strategyLogger.Warn().
			Float64("total_cost", cost).
			Float64("balance", balance).
			Msg("Submission rejected: insufficient balance")
		return nil, apperrors.ErrInsufficientBalance
	}

	snapshot := make([]models.Leg, len(legs))
	copy(snapshot, legs)
	for i := range snapshot {
		snapshot[i].Status = models.LegWorking
	}

	order := &models.Order{
		ID:           strategy.NextID("order"),
		StrategyName: strategyName,
		Legs:         snapshot,
		CreatedAt:    time.Now(),
		TotalCost:    cost,
	}

	l.orders = append([]*models.Order{order}, l.orders...)
	l.balance += cost
	balance := l.balance
	snap := l.snapshotLocked()
	l.mu.Unlock()

	logging.LogSubmit(l.logger, order.ID, strategyName, len(snapshot), cost, balance)

	l.notify(snap)
	return order.Clone(), nil
}

// Cancel transitions every Working or Partially filled leg of the order to
// Canceled and reverses the order's frozen total cost against the balance.
// The reversal is the whole order's original cost even when only some legs
// were still open; this mirrors the observed product behavior. Unknown ids
// and orders without an open leg are a silent no-op.
func (l *Ledger) Cancel(orderID string) bool {
	l.mu.Lock()

	var order *models.Order
	for _, o := range l.orders {
		if o.ID == orderID {
			order = o
			break
		}
	}
	if order == nil || !order.HasCancelableLeg() {
		l.mu.Unlock()
		return false
	}

	canceled := 0
	for i := range order.Legs {
		if order.Legs[i].Status.IsOpen() {
			order.Legs[i].Status = models.LegCanceled
			canceled++
		}
	}
	l.balance -= order.TotalCost
	balance := l.balance
	snap := l.snapshotLocked()
	l.mu.Unlock()

	logging.LogCancel(l.logger, orderID, canceled, balance)

	l.notify(snap)
	return true
}

// Replace swaps the order collection, leaving the balance untouched. It is
// used by the persistence bridge after a load/merge. Subscribers are only
// notified when the collection actually changed; the bool result mirrors
// that.
func (l *Ledger) Replace(orders []*models.Order) bool {
	l.mu.Lock()
	if ordersEqual(l.orders, orders) {
		l.mu.Unlock()
		return false
	}
	l.orders = cloneOrders(orders)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.notify(snap)
	return true
}

// Subscribe registers a callback invoked with a fresh snapshot after every
// mutation. Callbacks run synchronously on the mutating goroutine.
func (l *Ledger) Subscribe(fn func(Snapshot)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

func (l *Ledger) snapshotLocked() Snapshot {
	return Snapshot{
		Orders:  cloneOrders(l.orders),
		Balance: l.balance,
	}
}

func (l *Ledger) notify(snap Snapshot) {
	l.mu.RLock()
	listeners := append(make([]func(Snapshot), 0, len(l.listeners)), l.listeners...)
	l.mu.RUnlock()
	for _, fn := range listeners {
		fn(snap)
	}
}

func cloneOrders(orders []*models.Order) []*models.Order {
	out := make([]*models.Order, len(orders))
	for i, o := range orders {
		out[i] = o.Clone()
	}
	return out
}

func ordersEqual(a, b []*models.Order) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !orderEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func orderEqual(a, b *models.Order) bool {
	if a.ID != b.ID || a.StrategyName != b.StrategyName ||
		a.TotalCost != b.TotalCost || !a.CreatedAt.Equal(b.CreatedAt) {
		return false
	}
	if (a.ProfitLoss == nil) != (b.ProfitLoss == nil) {
		return false
	}
	if a.ProfitLoss != nil && *a.ProfitLoss != *b.ProfitLoss {
		return false
	}
	if len(a.Legs) != len(b.Legs) {
		return false
	}
	for i := range a.Legs {
		if a.Legs[i] != b.Legs[i] {
			return false
		}
	}
	return true
}
