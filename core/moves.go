package core

import "math"

// TranslationMove attempts one filament translation: pick a random
// non-reference filament, propose a (0, ±1) shift, and accept or reject
// it by the Metropolis criterion. Returns true iff the move was accepted.
func TranslationMove(s *System, rng *PartitionedRNG) bool {
	selectRNG := rng.ForSubsystem(SubsystemTranslation)

	filIdx := 2 + selectRNG.Intn(s.Params.NFil-1) // any index except 1
	f := s.Filament(filIdx)

	dir := 1
	if selectRNG.Intn(2) == 0 {
		dir = -1
	}

	s.UseTrial()

	if !translateFilament(s, f, dir) {
		s.AcceptCurrentFilament(f)
		s.UseCurrent()
		return false
	}

	if !s.RingAndSystemConnected() {
		s.AcceptCurrentFilament(f)
		s.UseCurrent()
		return false
	}

	delta := DeltaEnergyTranslation(s, f)
	accepted := metropolisAccept(rng, delta, s.Params.T, 1)

	if accepted {
		s.AcceptTrialFilament(f)
	} else {
		s.AcceptCurrentFilament(f)
	}
	s.UseCurrent()
	return accepted
}

// translateFilament deletes f's trial occupancy and reinserts it shifted
// by (0, dir), failing (and leaving a partially-mutated trial state for
// the caller to revert) on any collision.
func translateFilament(s *System, f *Filament, dir int) bool {
	trl := s.Lattice.TrialOccupancy()
	coors := f.TrialCoors()

	for _, c := range coors {
		delete(trl, Pos{c.X, c.Y})
	}

	shifted := make([]Coord, len(coors))
	for i, c := range coors {
		p := s.Lattice.Wrap(Pos{c.X, c.Y + dir})
		shifted[i] = Coord{p.X, p.Y}
	}

	for i, c := range shifted {
		pos := Pos{c.X, c.Y}
		if _, collides := trl[pos]; collides {
			return false
		}
		trl[pos] = Occupant{FilamentIndex: f.Index, Site: i}
	}

	f.SetTrialCoors(shifted)
	return true
}

// RadiusMove attempts one ring-circumference change: direction ±1,
// rejecting immediately if it would leave [min_height, max_height].
func RadiusMove(s *System, b *Biases, rng *PartitionedRNG) bool {
	selectRNG := rng.ForSubsystem(SubsystemRadius)

	dir := 1
	if selectRNG.Intn(2) == 0 {
		dir = -1
	}

	hNew := s.Lattice.Hc + dir
	if hNew < s.Lattice.MinHeight || hNew > s.Lattice.MaxHeight {
		return false
	}

	s.UseTrial()

	if !translateSplitPoints(s, dir) {
		s.AcceptCurrentSystem()
		s.UseCurrent()
		return false
	}

	s.Lattice.UpdateRadius(hNew)

	if !filamentsContiguous(s) {
		s.AcceptCurrentSystem()
		s.UseCurrent()
		return false
	}

	if dir == 1 && !s.RingAndSystemConnected() {
		s.AcceptCurrentSystem()
		s.UseCurrent()
		return false
	}

	delta := DeltaEnergyRadius(s, b)
	accepted := metropolisAccept(rng, delta, s.Params.T, 1)

	if accepted {
		s.AcceptTrialSystem()
	} else {
		s.AcceptCurrentSystem()
	}
	s.UseCurrent()
	return accepted
}

// translateSplitPoints shifts, for every filament, the sites before and
// including the seam (the last site whose y == H) by (0, dir), so that
// growing or shrinking the ring preserves each filament's contiguity
// across the newly resized period.
func translateSplitPoints(s *System, dir int) bool {
	h := s.Lattice.Ht
	hNew := h + dir
	newPeriod := hNew + 1
	trl := s.Lattice.TrialOccupancy()

	for _, f := range s.Filaments {
		coors := f.TrialCoors()

		// seamIdx is the largest 0-indexed site i < lf-1 with y == H; -1 if
		// this filament does not wrap at the seam (split_point = 0, spec
		// §4.5: nothing to shift for it).
		seamIdx := -1
		for i := 0; i < f.Lf-1; i++ {
			if coors[i].Y == h {
				seamIdx = i
			}
		}
		if seamIdx == -1 {
			continue
		}

		shifted := make([]Coord, len(coors))
		copy(shifted, coors)

		for i := 0; i <= seamIdx; i++ {
			delete(trl, Pos{coors[i].X, coors[i].Y})
		}
		// Growing never needs a wrap (the prefix's y values only ever
		// increase towards the new, larger top row). Shrinking can: a
		// filament whose prefix reaches all the way down to y == 0 wraps
		// that site to the new top row hNew, not to -1. A filament long
		// enough for its own prefix to span both y == 0 and y == H
		// (lf > H+1) can never pass the collision check below anyway,
		// since both ends then fold onto the same new row; the wrap just
		// makes that rejection land on a clean collision instead of a
		// corrupt negative-y site escaping into the occupancy map.
		for i := 0; i <= seamIdx; i++ {
			shifted[i] = Coord{coors[i].X, mod(coors[i].Y+dir, newPeriod)}
		}
		for i := 0; i <= seamIdx; i++ {
			pos := Pos{shifted[i].X, shifted[i].Y}
			if _, collides := trl[pos]; collides {
				return false
			}
			trl[pos] = Occupant{FilamentIndex: f.Index, Site: i}
		}

		f.SetTrialCoors(shifted)
	}
	return true
}

// filamentsContiguous verifies every filament's consecutive trial sites
// differ by (0, 1) modulo the new period H_t+1.
func filamentsContiguous(s *System) bool {
	period := s.Lattice.Ht + 1
	for _, f := range s.Filaments {
		coors := f.TrialCoors()
		for i := 1; i < len(coors); i++ {
			dy := coors[i].Y - coors[i-1].Y
			if dy < 0 {
				dy += period
			}
			if coors[i].X != coors[i-1].X || dy != 1 {
				return false
			}
		}
	}
	return true
}

// metropolisAccept draws from the Metropolis subsystem and returns true
// with probability min(1, mult*exp(-delta/(kB*T))).
func metropolisAccept(rng *PartitionedRNG, delta, t, mult float64) bool {
	p := acceptanceProbability(delta, t, mult)
	if p >= 1 {
		return true
	}
	draw := rng.ForSubsystem(SubsystemMetropolis).Float64()
	return p > draw
}

// acceptanceProbability is p = min(1, mult*exp(-Δ/(kB*T))).
func acceptanceProbability(delta, t, mult float64) float64 {
	p := mult * math.Exp(-delta/(kBoltzmann*t))
	if p > 1 {
		return 1
	}
	return p
}
