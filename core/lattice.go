package core

import "math"

// Pos is an integer lattice coordinate. X is unbounded (filaments live at
// small integer x's in practice, but the lattice must not assume a finite
// x range); Y is periodic with period H+1.
type Pos struct {
	X, Y int
}

// Occupant identifies which filament site sits at a lattice position.
type Occupant struct {
	FilamentIndex int
	Site          int
}

// Lattice is a 2D integer grid with periodic boundary on Y. It owns two
// shadow occupancy maps (current, trial) plus a flag selecting which one
// is presently observable, mirroring the current/trial split on System
// and Filament.
type Lattice struct {
	Delta                float64 // lattice spacing δ
	MinHeight, MaxHeight int

	Hc, Ht int // current / trial height
	Radius float64

	usingCurrent bool
	occCurrent   map[Pos]Occupant
	occTrial     map[Pos]Occupant
}

// NewLattice constructs an empty lattice at height h0 (both views).
func NewLattice(delta float64, minHeight, maxHeight, h0 int) *Lattice {
	l := &Lattice{
		Delta:        delta,
		MinHeight:    minHeight,
		MaxHeight:    maxHeight,
		Hc:           h0,
		Ht:           h0,
		usingCurrent: true,
		occCurrent:   make(map[Pos]Occupant),
		occTrial:     make(map[Pos]Occupant),
	}
	l.syncRadius()
	return l
}

// ActiveHeight returns H, the observable height: Hc if the current view is
// active, Ht otherwise.
func (l *Lattice) ActiveHeight() int {
	if l.usingCurrent {
		return l.Hc
	}
	return l.Ht
}

// UsingCurrent reports which view is presently observable.
func (l *Lattice) UsingCurrent() bool { return l.usingCurrent }

// setView flips the observable view and resyncs Radius. Called by
// System.UseCurrent/UseTrial, never directly by move code.
func (l *Lattice) setView(usingCurrent bool) {
	l.usingCurrent = usingCurrent
	l.syncRadius()
}

// syncRadius recomputes Radius = δ(H+1)/(2π) from the active height.
func (l *Lattice) syncRadius() {
	h := l.ActiveHeight()
	l.Radius = l.Delta * float64(h+1) / (2 * math.Pi)
}

// UpdateRadius sets the active height to hNew and recomputes Radius.
// The radius move calls UpdateRadius(hNew) while the trial view is
// active, so it is Ht that changes.
func (l *Lattice) UpdateRadius(hNew int) {
	if l.usingCurrent {
		l.Hc = hNew
	} else {
		l.Ht = hNew
	}
	l.syncRadius()
}

// Wrap applies periodic boundary correction on Y, assuming the caller
// guarantees |displacement| <= H+1 so a single adjustment suffices.
func (l *Lattice) Wrap(pos Pos) Pos {
	h := l.ActiveHeight()
	period := h + 1
	if pos.Y > h {
		pos.Y -= period
	} else if pos.Y < 0 {
		pos.Y += period
	}
	return pos
}

// Occupancy returns the observable occupancy map (aliases current or
// trial depending on the active view).
func (l *Lattice) Occupancy() map[Pos]Occupant {
	if l.usingCurrent {
		return l.occCurrent
	}
	return l.occTrial
}

// CurrentOccupancy and TrialOccupancy give direct access to each shadow
// map, used by the move set and the accept/revert protocol which must
// operate on a specific view regardless of which one is observable.
func (l *Lattice) CurrentOccupancy() map[Pos]Occupant { return l.occCurrent }
func (l *Lattice) TrialOccupancy() map[Pos]Occupant   { return l.occTrial }
