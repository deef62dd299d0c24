// Package models provides domain models for the options order-entry application.
package models

import "fmt"

// Side represents the side of an option leg.
type Side string

const (
	SideLong  Side = "Long"  // bought, a debit
	SideShort Side = "Short" // sold, a credit
)

// OptionType represents the contract type of an option leg.
type OptionType string

const (
	OptionCall OptionType = "Call"
	OptionPut  OptionType = "Put"
)

// LegStatus represents the execution state of a leg inside a submitted order.
// A leg in an unsubmitted draft carries no status.
type LegStatus string

const (
	LegWorking         LegStatus = "Working"
	LegPartiallyFilled LegStatus = "Partially filled"
	LegFilled          LegStatus = "Filled"
	LegCanceled        LegStatus = "Canceled"
	LegRejected        LegStatus = "Rejected"
	LegExpired         LegStatus = "Expired"
)

// LegStatuses lists all leg statuses in display order.
var LegStatuses = []LegStatus{
	LegWorking,
	LegPartiallyFilled,
	LegFilled,
	LegCanceled,
	LegRejected,
	LegExpired,
}

// IsTerminal reports whether no further transition can occur from s.
func (s LegStatus) IsTerminal() bool {
	switch s {
	case LegFilled, LegCanceled, LegRejected, LegExpired:
		return true
	}
	return false
}

// IsOpen reports whether the leg can still be canceled.
func (s LegStatus) IsOpen() bool {
	return s == LegWorking || s == LegPartiallyFilled
}

// Leg represents one option contract position within a strategy or order.
type Leg struct {
	ID         string     `json:"id"`
	Strike     float64    `json:"strike"`
	Type       OptionType `json:"type"`
	Expiration string     `json:"expiration"`
	Side       Side       `json:"side"`
	Size       int        `json:"size"`
	Price      float64    `json:"price"`
	Status     LegStatus  `json:"status,omitempty"`
}

// DisplayLine renders a leg in the order-table form, e.g. "+1 Call 687 @ 7.77".
func (l Leg) DisplayLine() string {
	sign := "-"
	if l.Side == SideLong {
		sign = "+"
	}
	return fmt.Sprintf("%s%d %s %g @ %g", sign, l.Size, l.Type, l.Strike, l.Price)
}

// LegBlueprint describes a leg inside a strategy template. It carries no
// identity and no execution status.
type LegBlueprint struct {
	Strike     float64
	Type       OptionType
	Expiration string
	Side       Side
	Size       int
	Price      float64
}

// StrategyConfig is an immutable named template used to seed a fresh draft.
type StrategyConfig struct {
	Name        string
	DefaultLegs []LegBlueprint
}
