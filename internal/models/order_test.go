package models

import "testing"

func TestLegStatusPredicates(t *testing.T) {
	terminal := []LegStatus{LegFilled, LegCanceled, LegRejected, LegExpired}
	open := []LegStatus{LegWorking, LegPartiallyFilled}

	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("%s should be terminal", s)
		}
		if s.IsOpen() {
			t.Errorf("%s should not be open", s)
		}
	}
	for _, s := range open {
		if s.IsTerminal() {
			t.Errorf("%s should not be terminal", s)
		}
		if !s.IsOpen() {
			t.Errorf("%s should be open", s)
		}
	}
}

func TestOrderPredicates(t *testing.T) {
	live := &Order{Legs: []Leg{
		{ID: "a", Status: LegWorking},
		{ID: "b", Status: LegFilled},
	}}
	if live.FullyConcluded() {
		t.Error("order with a Working leg is not fully concluded")
	}
	if !live.HasCancelableLeg() {
		t.Error("order with a Working leg is cancelable")
	}
	if !live.HasLegWithStatus(LegFilled) || live.HasLegWithStatus(LegExpired) {
		t.Error("HasLegWithStatus mismatch")
	}

	done := &Order{Legs: []Leg{
		{ID: "a", Status: LegFilled},
		{ID: "b", Status: LegCanceled},
	}}
	if !done.FullyConcluded() {
		t.Error("order with only terminal legs is fully concluded")
	}
	if done.HasCancelableLeg() {
		t.Error("fully terminal order has no cancelable leg")
	}

	empty := &Order{}
	if empty.FullyConcluded() {
		t.Error("an order without legs is not fully concluded")
	}
}

func TestOrderCloneIsDeep(t *testing.T) {
	pl := 10.0
	o := &Order{
		ID:         "order-1",
		Legs:       []Leg{{ID: "a", Status: LegWorking, Price: 7.77}},
		ProfitLoss: &pl,
	}

	cp := o.Clone()
	cp.Legs[0].Status = LegCanceled
	*cp.ProfitLoss = -5

	if o.Legs[0].Status != LegWorking {
		t.Error("clone shares the leg slice")
	}
	if *o.ProfitLoss != 10 {
		t.Error("clone shares the profitLoss pointer")
	}
}

func TestLegDisplayLine(t *testing.T) {
	long := Leg{Strike: 687, Type: OptionCall, Side: SideLong, Size: 1, Price: 7.77}
	if got := long.DisplayLine(); got != "+1 Call 687 @ 7.77" {
		t.Errorf("DisplayLine = %q", got)
	}
	short := Leg{Strike: 691, Type: OptionPut, Side: SideShort, Size: 2, Price: 6.27}
	if got := short.DisplayLine(); got != "-2 Put 691 @ 6.27" {
		t.Errorf("DisplayLine = %q", got)
	}
}
