package core

import (
	"errors"
	"testing"
)

func TestStartup_GenerateStartupConfig_RejectsOddScaffoldCount(t *testing.T) {
	params := SystemParams{NFil: 4, NSca: 3, SitesPerFilament: 4}

	_, _, err := GenerateStartupConfig(params, 2, 0, 10, 3)

	if !errors.Is(err, ErrOddScaffoldCount) {
		t.Errorf("err = %v, want ErrOddScaffoldCount", err)
	}
}

func TestStartup_GenerateStartupConfig_RejectsOddFilamentLength(t *testing.T) {
	params := SystemParams{NFil: 4, NSca: 2, SitesPerFilament: 5}

	_, _, err := GenerateStartupConfig(params, 2, 0, 10, 3)

	if !errors.Is(err, ErrOddFilamentLength) {
		t.Errorf("err = %v, want ErrOddFilamentLength", err)
	}
}

func TestStartup_GenerateStartupConfig_RejectsH0OutsideHeightRange(t *testing.T) {
	params := SystemParams{NFil: 4, NSca: 2, SitesPerFilament: 4}

	_, _, err := GenerateStartupConfig(params, 2, 0, 10, 11)

	if !errors.Is(err, ErrRadiusOutOfBounds) {
		t.Errorf("err = %v, want ErrRadiusOutOfBounds", err)
	}
}

func TestStartup_GenerateStartupConfig_RejectsMinHeightAboveMaxHeight(t *testing.T) {
	params := SystemParams{NFil: 4, NSca: 2, SitesPerFilament: 4}

	_, _, err := GenerateStartupConfig(params, 2, 10, 0, 3)

	if !errors.Is(err, ErrRadiusOutOfBounds) {
		t.Errorf("err = %v, want ErrRadiusOutOfBounds", err)
	}
}

func TestStartup_GenerateStartupConfig_PlacesOneFilamentPerColumn(t *testing.T) {
	// GIVEN Nsca=2 (one filament per x column) and Nfil=4
	params := SystemParams{NFil: 4, NSca: 2, SitesPerFilament: 4}

	lattice, filaments, err := GenerateStartupConfig(params, 2, 0, 10, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(filaments) != 4 {
		t.Fatalf("len(filaments) = %d, want 4", len(filaments))
	}
	for i, f := range filaments {
		wantX := i
		if f.Index != i+1 {
			t.Errorf("filaments[%d].Index = %d, want %d", i, f.Index, i+1)
		}
		for _, c := range f.Coors() {
			if c.X != wantX {
				t.Errorf("filament %d has a site with X=%d, want %d", f.Index, c.X, wantX)
			}
		}
	}
	if lattice.Hc != 3 {
		t.Errorf("lattice.Hc = %d, want h0=3", lattice.Hc)
	}
}

func TestStartup_GenerateStartupConfig_StripesAlternateStartY(t *testing.T) {
	// lf=4, overlap=2, h0=3 (period=4): even columns start at y=0, odd
	// columns start at y=lf-overlap=2.
	params := SystemParams{NFil: 2, NSca: 2, SitesPerFilament: 4}

	_, filaments, err := GenerateStartupConfig(params, 2, 0, 10, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filaments[0].Coors()[0].Y != 0 {
		t.Errorf("column 0 start Y = %d, want 0", filaments[0].Coors()[0].Y)
	}
	if filaments[1].Coors()[0].Y != 2 {
		t.Errorf("column 1 start Y = %d, want 2 (lf-overlap)", filaments[1].Coors()[0].Y)
	}
}

func TestStartup_Mod_NormalizesNegatives(t *testing.T) {
	cases := []struct{ a, n, want int }{
		{5, 4, 1}, {-1, 4, 3}, {-5, 4, 3}, {4, 4, 0},
	}
	for _, c := range cases {
		if got := mod(c.a, c.n); got != c.want {
			t.Errorf("mod(%d, %d) = %d, want %d", c.a, c.n, got, c.want)
		}
	}
}
