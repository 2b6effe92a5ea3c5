package core

import "math"

// BendingEnergyPerFilament is EI*Lf/(2*r^2), evaluated at the observable
// radius. All filaments share the same radius in this ring geometry.
func (s *System) BendingEnergyPerFilament() float64 {
	r := s.Lattice.Radius
	return s.Params.EI * s.Params.Lf / (2 * r * r)
}

// TotalBendingEnergy is Nfil times the per-filament bending energy.
func (s *System) TotalBendingEnergy() float64 {
	return float64(s.Params.NFil) * s.BendingEnergyPerFilament()
}

// OverlapLength returns δ times the number of f's sites with an occupied
// x±1 neighbor belonging to a different filament, summed without
// de-duplication (a site with both neighbors occupied counts twice).
func (s *System) OverlapLength(f *Filament) float64 {
	occ := s.Lattice.Occupancy()
	count := 0
	for _, c := range f.Coors() {
		for _, dx := range [2]int{-1, 1} {
			nbr := Pos{c.X + dx, c.Y}
			if occupant, ok := occ[nbr]; ok && occupant.FilamentIndex != f.Index {
				count++
			}
		}
	}
	return s.Params.Delta * float64(count)
}

// overlapFreeEnergyFactor is ln(1 + ks²Xc / (kd(ks+Xc)²)), the
// dissociation-constant term shared by every filament's overlap energy.
func (s *System) overlapFreeEnergyFactor() float64 {
	ks, kd, xc := s.Params.Ks, s.Params.Kd, s.Params.Xc
	denom := kd * (ks + xc) * (ks + xc)
	return math.Log(1 + (ks*ks*xc)/denom)
}

// OverlapEnergyPerFilament is E_ov(L) = -(L*kB*T/δ)*ln(1 + ks²Xc/(kd(ks+Xc)²)).
func (s *System) OverlapEnergyPerFilament(f *Filament) float64 {
	l := s.OverlapLength(f)
	return -(l * kBoltzmann * s.Params.T / s.Params.Delta) * s.overlapFreeEnergyFactor()
}

// TotalOverlapEnergy sums every filament's overlap contribution, divided
// by 2 because each crosslinked pair is counted from both sides.
func (s *System) TotalOverlapEnergy() float64 {
	sum := 0.0
	for _, f := range s.Filaments {
		sum += s.OverlapEnergyPerFilament(f)
	}
	return sum / 2
}

// BiasEnergy is enes[bin(H)] for the observable height.
func (s *System) BiasEnergy(b *Biases) float64 {
	h := s.Lattice.ActiveHeight()
	bin := b.Bin(h)
	return b.Enes[bin-1]
}

// TotalEnergy is overlap (already /2) + bending + bias, all evaluated
// under the observable view.
func (s *System) TotalEnergy(b *Biases) float64 {
	return s.TotalOverlapEnergy() + s.TotalBendingEnergy() + s.BiasEnergy(b)
}

// TotalEnergyNoBias is the same total without the bias term, used by the
// MC driver's periodic re-evaluation into System.Energy (spec §4.7: the
// observable cache is recomputed "without bias" at each write interval).
func (s *System) TotalEnergyNoBias() float64 {
	return s.TotalOverlapEnergy() + s.TotalBendingEnergy()
}

// DeltaEnergyTranslation re-evaluates only f's overlap and bending energy
// before (current view) and after (trial view) a proposed translation,
// restoring whichever view was active on entry (idempotent).
func DeltaEnergyTranslation(s *System, f *Filament) float64 {
	wasCurrent := s.Lattice.UsingCurrent()

	s.UseCurrent()
	before := s.OverlapEnergyPerFilament(f) + s.BendingEnergyPerFilament()
	s.UseTrial()
	after := s.OverlapEnergyPerFilament(f) + s.BendingEnergyPerFilament()

	if wasCurrent {
		s.UseCurrent()
	} else {
		s.UseTrial()
	}
	return after - before
}

// DeltaEnergyRadius is the total-energy (with bias) difference between
// the trial and current views, used by the radius move. Restores
// whichever view was active on entry.
func DeltaEnergyRadius(s *System, b *Biases) float64 {
	wasCurrent := s.Lattice.UsingCurrent()

	s.UseCurrent()
	before := s.TotalEnergy(b)
	s.UseTrial()
	after := s.TotalEnergy(b)

	if wasCurrent {
		s.UseCurrent()
	} else {
		s.UseTrial()
	}
	return after - before
}
