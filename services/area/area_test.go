package area

import (
	"reflect"
	"sort"
	"testing"
)

func TestDirtySetKeepsEveryTouchedArea(t *testing.T) {
	s := &DefaultAreaService{dirty: map[string]struct{}{}}
	s.markDirty("area-1")
	s.markDirty("area-2")
	s.markDirty("area-1")
	s.markDirty("area-3")

	ids := s.drainDirty()
	sort.Strings(ids)
	want := []string{"area-1", "area-2", "area-3"}
	if !reflect.DeepEqual(ids, want) {
		t.Fatalf("expected dirty areas %v, got %v", want, ids)
	}

	if got := s.drainDirty(); len(got) != 0 {
		t.Errorf("drain should clear the set, got %v", got)
	}
}
