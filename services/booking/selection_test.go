package booking

import (
	"reflect"
	"testing"
)

func TestNormalizeDates(t *testing.T) {
	got := NormalizeDates([]string{"2026-09-07", "2026-09-05", "2026-09-07", "", "2026-09-06"})
	want := []string{"2026-09-05", "2026-09-06", "2026-09-07"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("NormalizeDates = %v, want %v", got, want)
	}
}

func TestToggleSlotAddAndRemove(t *testing.T) {
	dates := []string{"2026-09-05"}
	sel := map[string][]string{}

	sel = ToggleSlot(sel, dates, "2026-09-05", "06:00 AM - 07:00 AM")
	if !containsSlot(sel["2026-09-05"], "06:00 AM - 07:00 AM") {
		t.Fatal("toggle did not add the slot")
	}

	sel = ToggleSlot(sel, dates, "2026-09-05", "06:00 AM - 07:00 AM")
	if len(sel["2026-09-05"]) != 0 {
		t.Fatalf("toggle did not remove the slot: %v", sel["2026-09-05"])
	}
}

func TestToggleSlotIgnoresUnselectedDate(t *testing.T) {
	sel := map[string][]string{"2026-09-05": {"06:00 AM - 07:00 AM"}}
	got := ToggleSlot(sel, []string{"2026-09-05"}, "2026-09-06", "06:00 AM - 07:00 AM")
	if _, ok := got["2026-09-06"]; ok {
		t.Fatal("toggle created an entry for an unselected date")
	}
}

func TestToggleSlotDoesNotMutateInput(t *testing.T) {
	sel := map[string][]string{"2026-09-05": {"06:00 AM - 07:00 AM"}}
	ToggleSlot(sel, []string{"2026-09-05"}, "2026-09-05", "07:00 AM - 08:00 AM")
	if len(sel["2026-09-05"]) != 1 {
		t.Fatalf("input selection mutated: %v", sel)
	}
}

func TestPruneToSelectedDates(t *testing.T) {
	sel := map[string][]string{
		"2026-09-05": {"06:00 AM - 07:00 AM"},
		"2026-09-06": {"07:00 AM - 08:00 AM"},
	}
	dates := []string{"2026-09-05"}

	pruned := PruneToSelectedDates(sel, dates)
	if _, ok := pruned["2026-09-06"]; ok {
		t.Fatal("dropped date survived pruning")
	}
	if !reflect.DeepEqual(pruned["2026-09-05"], []string{"06:00 AM - 07:00 AM"}) {
		t.Fatalf("kept date lost its slots: %v", pruned)
	}

	// Idempotent.
	again := PruneToSelectedDates(pruned, dates)
	if !reflect.DeepEqual(again, pruned) {
		t.Fatalf("second prune changed the selection: %v vs %v", again, pruned)
	}
}

func TestApplyToAllDates(t *testing.T) {
	dates := []string{"2026-09-05", "2026-09-06", "2026-09-07"}
	sel := map[string][]string{
		"2026-09-05": {"06:00 AM - 07:00 AM", "07:00 AM - 08:00 AM"},
		"2026-09-06": {"09:00 AM - 10:00 AM"},
	}
	blocked := func(dateKey, slot string) bool {
		return dateKey == "2026-09-07" && slot == "06:00 AM - 07:00 AM"
	}

	got := ApplyToAllDates(sel, dates, "2026-09-05", blocked)

	// Existing selections preserved, source slots unioned in.
	want06 := []string{"09:00 AM - 10:00 AM", "06:00 AM - 07:00 AM", "07:00 AM - 08:00 AM"}
	if !reflect.DeepEqual(got["2026-09-06"], want06) {
		t.Errorf("2026-09-06 = %v, want %v", got["2026-09-06"], want06)
	}
	// Blocked slot skipped only on the date that blocks it.
	if containsSlot(got["2026-09-07"], "06:00 AM - 07:00 AM") {
		t.Error("blocked slot was copied")
	}
	if !containsSlot(got["2026-09-07"], "07:00 AM - 08:00 AM") {
		t.Error("free slot was not copied")
	}
	// Source date unchanged.
	if !reflect.DeepEqual(got["2026-09-05"], sel["2026-09-05"]) {
		t.Errorf("source date changed: %v", got["2026-09-05"])
	}
}

func TestApplyToAllDatesEmptySourceIsNoop(t *testing.T) {
	sel := map[string][]string{"2026-09-06": {"09:00 AM - 10:00 AM"}}
	got := ApplyToAllDates(sel, []string{"2026-09-05", "2026-09-06"}, "2026-09-05", nil)
	if !reflect.DeepEqual(got, sel) {
		t.Fatalf("empty source modified the selection: %v", got)
	}
}

func TestTotalSlotCount(t *testing.T) {
	sel := map[string][]string{
		"2026-09-05": {"a", "b", "c"},
		"2026-09-06": {"d"},
		"2026-09-07": {},
	}
	if got := TotalSlotCount(sel); got != 4 {
		t.Fatalf("TotalSlotCount = %d, want 4", got)
	}
}
