package core

// Coord is a (x, y) lattice coordinate pair stored per filament site.
type Coord struct {
	X, Y int
}

// Filament is an ordered sequence of lf lattice sites. lf is fixed for
// the filament's lifetime; Index is a stable identity in [1, Nfil].
// Filament 1 is the positional reference and never translates.
type Filament struct {
	Index int
	Lf    int

	currentCoors []Coord
	trialCoors   []Coord
	usingCurrent bool
}

// NewFilament creates a filament of length lf with both views seeded to
// coors (a copy is taken so the caller's slice can be reused).
func NewFilament(index, lf int, coors []Coord) *Filament {
	cur := make([]Coord, lf)
	trl := make([]Coord, lf)
	copy(cur, coors)
	copy(trl, coors)
	return &Filament{
		Index:        index,
		Lf:           lf,
		currentCoors: cur,
		trialCoors:   trl,
		usingCurrent: true,
	}
}

// Coors returns the observable coordinate slice (current or trial,
// depending on the active view). The returned slice must not be mutated
// by callers outside the move set.
func (f *Filament) Coors() []Coord {
	if f.usingCurrent {
		return f.currentCoors
	}
	return f.trialCoors
}

// CurrentCoors and TrialCoors expose each shadow slice directly; used by
// the move set and accept/revert protocol.
func (f *Filament) CurrentCoors() []Coord { return f.currentCoors }
func (f *Filament) TrialCoors() []Coord   { return f.trialCoors }

// SetTrialCoors replaces the trial view with coors; no copy is taken
// (used by the move set while proposing a move).
func (f *Filament) SetTrialCoors(coors []Coord) {
	f.trialCoors = coors
}

func (f *Filament) setView(usingCurrent bool) {
	f.usingCurrent = usingCurrent
}

// IsReference reports whether this filament is index 1, the positional
// reference that never translates.
func (f *Filament) IsReference() bool { return f.Index == 1 }
