package days

import (
	"fmt"
	"testing"
)

func TestRegistry_DayOrder(t *testing.T) {
	names := Registry().Names()
	if len(names) != 7 {
		t.Fatalf("expected 7 units, got %d", len(names))
	}
	for i, n := range names {
		if want := fmt.Sprintf("day_%02d", i+1); n != want {
			t.Errorf("unit %d = %q, want %q", i, n, want)
		}
	}
}

func TestRegistry_TitlesSet(t *testing.T) {
	reg := Registry()
	for _, n := range reg.Names() {
		u, err := reg.Lookup(n)
		if err != nil {
			t.Fatalf("lookup %s: %v", n, err)
		}
		if u.Title() == "" {
			t.Errorf("%s has no title", n)
		}
	}
}
