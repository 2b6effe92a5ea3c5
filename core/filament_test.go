package core

import "testing"

func TestFilament_NewFilament_CopiesCoors(t *testing.T) {
	// GIVEN a coordinate slice
	coors := []Coord{{0, 0}, {0, 1}, {0, 2}}

	// WHEN a filament is constructed from it and the original is mutated
	f := NewFilament(1, 3, coors)
	coors[0] = Coord{9, 9}

	// THEN the filament's view is unaffected
	if f.Coors()[0] != (Coord{0, 0}) {
		t.Errorf("filament aliased the caller's slice: got %v, want {0 0}", f.Coors()[0])
	}
}

func TestFilament_SetView_SwitchesObservableCoors(t *testing.T) {
	f := NewFilament(2, 2, []Coord{{0, 0}, {0, 1}})
	f.SetTrialCoors([]Coord{{5, 5}, {5, 6}})

	f.setView(false)
	if f.Coors()[0] != (Coord{5, 5}) {
		t.Errorf("Coors() with trial view active = %v, want {5 5}", f.Coors()[0])
	}

	f.setView(true)
	if f.Coors()[0] != (Coord{0, 0}) {
		t.Errorf("Coors() with current view active = %v, want {0 0}", f.Coors()[0])
	}
}

func TestFilament_IsReference(t *testing.T) {
	ref := NewFilament(1, 1, []Coord{{0, 0}})
	other := NewFilament(2, 1, []Coord{{0, 0}})

	if !ref.IsReference() {
		t.Error("filament 1 should be the positional reference")
	}
	if other.IsReference() {
		t.Error("filament 2 should not be the positional reference")
	}
}
