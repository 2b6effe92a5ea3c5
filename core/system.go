package core

// SystemParams is an immutable bundle of physical parameters for a run.
type SystemParams struct {
	Ks float64 // association dissociation constant for overlap
	Kd float64 // dissociation constant
	T  float64 // temperature, Kelvin

	Delta float64 // lattice spacing δ, meters
	Xc    float64 // crosslinker concentration
	EI    float64 // bending rigidity
	Lf    float64 // filament contour length, meters

	SitesPerFilament int // lf: lattice sites per filament
	NFil             int // total number of filaments
	NSca             int // number of scaffold filaments
}

// kBoltzmann is the Boltzmann constant, J/K.
const kBoltzmann = 1.380649e-23

// System owns all filaments, the lattice, and the parameter bundle for a
// run. Energy is an observable-only cache that the MC driver refreshes at
// each write interval; the radius lives on Lattice.
type System struct {
	Params    SystemParams
	Lattice   *Lattice
	Filaments []*Filament // Filaments[i] has Index == i+1

	Energy float64 // last computed total energy (observable cache)
}

// NewSystem assembles a System from a lattice and a set of filaments
// already placed on it, and rebuilds the occupancy maps from scratch.
func NewSystem(params SystemParams, lattice *Lattice, filaments []*Filament) *System {
	s := &System{
		Params:    params,
		Lattice:   lattice,
		Filaments: filaments,
	}
	s.RebuildOccupancies()
	return s
}

// Filament returns the filament with the given 1-based index.
func (s *System) Filament(index int) *Filament {
	return s.Filaments[index-1]
}

// RebuildOccupancies clears and repopulates both shadow occupancy maps
// from every filament's current/trial coordinates. Used at startup and
// after Recenter; the move set otherwise maintains the maps incrementally.
func (s *System) RebuildOccupancies() {
	cur := s.Lattice.CurrentOccupancy()
	trl := s.Lattice.TrialOccupancy()
	for k := range cur {
		delete(cur, k)
	}
	for k := range trl {
		delete(trl, k)
	}
	for _, f := range s.Filaments {
		for i, c := range f.CurrentCoors() {
			cur[Pos{c.X, c.Y}] = Occupant{FilamentIndex: f.Index, Site: i}
		}
		for i, c := range f.TrialCoors() {
			trl[Pos{c.X, c.Y}] = Occupant{FilamentIndex: f.Index, Site: i}
		}
	}
}

// UseCurrent switches the observable lattice height, occupancy map, and
// every filament's coordinate view to current.
func (s *System) UseCurrent() {
	s.Lattice.setView(true)
	for _, f := range s.Filaments {
		f.setView(true)
	}
}

// UseTrial switches the observable view to trial.
func (s *System) UseTrial() {
	s.Lattice.setView(false)
	for _, f := range s.Filaments {
		f.setView(false)
	}
}

// AcceptTrialFilament promotes f's trial coordinates to current, updating
// occCurrent: old current sites are deleted before the new ones are
// inserted, so the map is never briefly inconsistent for other filaments.
func (s *System) AcceptTrialFilament(f *Filament) {
	cur := s.Lattice.CurrentOccupancy()
	for _, c := range f.CurrentCoors() {
		delete(cur, Pos{c.X, c.Y})
	}
	newCur := make([]Coord, len(f.TrialCoors()))
	copy(newCur, f.TrialCoors())
	f.currentCoors = newCur
	for i, c := range f.CurrentCoors() {
		cur[Pos{c.X, c.Y}] = Occupant{FilamentIndex: f.Index, Site: i}
	}
}

// AcceptCurrentFilament reverts f's trial coordinates back to current
// (used on move rejection), updating occTrial symmetrically.
func (s *System) AcceptCurrentFilament(f *Filament) {
	trl := s.Lattice.TrialOccupancy()
	for _, c := range f.TrialCoors() {
		delete(trl, Pos{c.X, c.Y})
	}
	newTrl := make([]Coord, len(f.CurrentCoors()))
	copy(newTrl, f.CurrentCoors())
	f.trialCoors = newTrl
	for i, c := range f.TrialCoors() {
		trl[Pos{c.X, c.Y}] = Occupant{FilamentIndex: f.Index, Site: i}
	}
}

// AcceptTrialSystem promotes every filament's trial state to current and
// syncs the lattice height, used after an accepted radius move.
func (s *System) AcceptTrialSystem() {
	for _, f := range s.Filaments {
		s.AcceptTrialFilament(f)
	}
	s.Lattice.Hc = s.Lattice.Ht
	s.Lattice.syncRadius()
}

// AcceptCurrentSystem reverts every filament's trial state back to
// current, used after a rejected radius move.
func (s *System) AcceptCurrentSystem() {
	for _, f := range s.Filaments {
		s.AcceptCurrentFilament(f)
	}
	s.Lattice.Ht = s.Lattice.Hc
	s.Lattice.syncRadius()
}

// Recenter translates every filament uniformly in y so that filament 1's
// first site lies at y == 0, then rebuilds the occupancy maps. Called
// once before each run.
func (s *System) Recenter() {
	ref := s.Filament(1).CurrentCoors()[0]
	shift := -ref.Y

	for _, f := range s.Filaments {
		shiftCoords(f.CurrentCoors(), shift, s.Lattice.Hc)
		shiftCoords(f.TrialCoors(), shift, s.Lattice.Ht)
	}
	s.RebuildOccupancies()
}

func shiftCoords(coors []Coord, shift, height int) {
	period := height + 1
	for i := range coors {
		y := coors[i].Y + shift
		if y >= period {
			y -= period
		} else if y < 0 {
			y += period
		}
		coors[i].Y = y
	}
}
