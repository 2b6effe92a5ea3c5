package core

import "fmt"

// GenerateStartupConfig builds the deterministic uniform-overlap initial
// configuration (spec §4.9): filaments are placed in vertical stripes by
// walking x = 0, 1, 2, ..., each column holding Nsca/2 filaments spaced
// by (lf - 2*overlap) in y, until Nfil filaments are placed. Indices are
// assigned 1..Nfil in placement order.
//
// Preconditions: Nsca even (ErrOddScaffoldCount), lf even
// (ErrOddFilamentLength), and h0 within [minHeight, maxHeight]
// (ErrRadiusOutOfBounds), all required before a lattice can be built.
func GenerateStartupConfig(params SystemParams, overlap, minHeight, maxHeight, h0 int) (*Lattice, []*Filament, error) {
	if params.NSca%2 != 0 {
		return nil, nil, ErrOddScaffoldCount
	}
	if params.SitesPerFilament%2 != 0 {
		return nil, nil, ErrOddFilamentLength
	}
	if minHeight > maxHeight || h0 < minHeight || h0 > maxHeight {
		return nil, nil, fmt.Errorf("core: h0=%d, min_height=%d, max_height=%d: %w", h0, minHeight, maxHeight, ErrRadiusOutOfBounds)
	}

	period := h0 + 1
	perColumn := params.NSca / 2
	lf := params.SitesPerFilament

	filaments := make([]*Filament, 0, params.NFil)
	index := 1

	for x := 0; len(filaments) < params.NFil; x++ {
		startY := 0
		if x%2 != 0 {
			startY = lf - overlap
		}

		for j := 0; j < perColumn && len(filaments) < params.NFil; j++ {
			y0 := mod(startY+j*(lf-2*overlap), period)

			coors := make([]Coord, lf)
			for i := 0; i < lf; i++ {
				coors[i] = Coord{X: x, Y: mod(y0+i, period)}
			}

			filaments = append(filaments, NewFilament(index, lf, coors))
			index++
		}
	}

	lattice := NewLattice(params.Delta, minHeight, maxHeight, h0)

	return lattice, filaments, nil
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
