package core

import (
	"math"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Biases holds the umbrella-sampling histogram/bias state: fixed bin
// geometry (numbins, binwidth, barriers) plus the parallel count/freq/
// prob/ene arrays, all indexed 0..NumBins-1 (bin numbers reported by Bin
// are 1-indexed per spec, so callers index as Enes[Bin(h)-1]).
type Biases struct {
	NumBins              int
	BinWidth             int
	MinHeight, MaxHeight int
	Barriers             []int // NumBins-1 entries, strictly increasing

	Counts []float64
	Freqs  []float64
	Probs  []float64
	Enes   []float64
}

// NewBiases builds the bin geometry for [minHeight, maxHeight] with the
// given bin width and zero-initializes every array. If binwidth == 1,
// each height is its own bin.
func NewBiases(minHeight, maxHeight, binWidth int) *Biases {
	span := maxHeight - minHeight + 1
	numBins := span / binWidth
	binSize := span / numBins

	barriers := make([]int, numBins-1)
	for i := range barriers {
		barriers[i] = minHeight + binSize*(i+1)
	}

	return &Biases{
		NumBins:   numBins,
		BinWidth:  binWidth,
		MinHeight: minHeight,
		MaxHeight: maxHeight,
		Barriers:  barriers,
		Counts:    make([]float64, numBins),
		Freqs:     make([]float64, numBins),
		Probs:     make([]float64, numBins),
		Enes:      make([]float64, numBins),
	}
}

// Bin returns the 1-indexed bin number for height h: the smallest i such
// that h < barriers[i], or NumBins if h is not below any barrier.
func (b *Biases) Bin(h int) int {
	for i, barrier := range b.Barriers {
		if h < barrier {
			return i + 1
		}
	}
	return b.NumBins
}

// binBounds returns the NumBins+1 boundary heights delimiting each bin:
// bounds[i], bounds[i+1] are bin i's lower/upper endpoints.
func (b *Biases) binBounds() []int {
	bounds := make([]int, b.NumBins+1)
	bounds[0] = b.MinHeight
	copy(bounds[1:], b.Barriers)
	bounds[b.NumBins] = b.MaxHeight
	return bounds
}

// IncrementCount bumps the count for height h's bin, called once per MC
// step by the driver.
func (b *Biases) IncrementCount(h int) {
	b.Counts[b.Bin(h)-1]++
}

// SetEnes overwrites the bias-energy array wholesale (used to seed from
// a restart file).
func (b *Biases) SetEnes(enes []float64) {
	copy(b.Enes, enes)
}

// SeedAnalytical fills Enes from the analytical free-energy model: the
// ring is treated as Nsca scaffolds plus (Nfil-Nsca) non-scaffold
// filaments, with per-scaffold overlap length L = 2π(r_max-r)/Nsca and
// total overlap count Nsca + 2(Nfil-Nsca); bending contributes
// Nfil*EI*Lf/(2r²). Each bin's bias is the negative average of the
// analytical free energy evaluated at its lower and upper endpoints.
func (b *Biases) SeedAnalytical(p SystemParams) {
	rMax := p.Delta * float64(b.MaxHeight+1) / (2 * math.Pi)
	overlapCount := float64(p.NSca + 2*(p.NFil-p.NSca))
	logFactor := math.Log(1 + (p.Ks*p.Ks*p.Xc)/(p.Kd*(p.Ks+p.Xc)*(p.Ks+p.Xc)))

	freeEnergyAt := func(h int) float64 {
		r := p.Delta * float64(h+1) / (2 * math.Pi)
		l := 2 * math.Pi * (rMax - r) / float64(p.NSca)
		eOv := -(l * kBoltzmann * p.T / p.Delta) * logFactor
		totalOverlap := overlapCount * eOv
		totalBending := float64(p.NFil) * p.EI * p.Lf / (2 * r * r)
		return totalOverlap + totalBending
	}

	bounds := b.binBounds()
	for i := 0; i < b.NumBins; i++ {
		lower, upper := bounds[i], bounds[i+1]
		b.Enes[i] = -(freeEnergyAt(lower) + freeEnergyAt(upper)) / 2
	}
}

// maxBiasDiffClamp is max_bias_diff expressed in Joules at temperature T.
func maxBiasDiffClamp(maxBiasDiff, t float64) float64 {
	return maxBiasDiff * kBoltzmann * t
}

// UpdateIterative applies one WHAM-free flat-histogram bias refinement
// from the counts accumulated over one US iteration, then zeroes the
// counts. c_i == 0 bins get ΔU_i = -max_bias_diff*kB*T (never log(0));
// all other updates are clamped to ±max_bias_diff*kB*T.
func (b *Biases) UpdateIterative(t, maxBiasDiff float64) {
	kt := kBoltzmann * t
	clamp := maxBiasDiffClamp(maxBiasDiff, t)

	s := floats.Sum(b.Counts)

	weighted := make([]float64, b.NumBins)
	for i, u := range b.Enes {
		weighted[i] = b.Counts[i] * math.Exp(u/kt)
	}
	z := floats.Sum(weighted)

	for i := range b.Enes {
		if b.Counts[i] == 0 {
			logrus.Warnf("core: bias bin %d/%d got zero samples this iteration, clamping to -max_bias_diff", i+1, b.NumBins)
			b.Freqs[i] = 0
			b.Probs[i] = 0
			b.Enes[i] += -clamp
			continue
		}

		b.Freqs[i] = b.Counts[i] / s
		b.Probs[i] = weighted[i] / z

		delta := kt*math.Log(b.Probs[i]) - b.Enes[i]
		switch {
		case delta > clamp:
			logrus.Warnf("core: bias bin %d/%d update saturated at +max_bias_diff", i+1, b.NumBins)
			delta = clamp
		case delta < -clamp:
			logrus.Warnf("core: bias bin %d/%d update saturated at -max_bias_diff", i+1, b.NumBins)
			delta = -clamp
		}
		b.Enes[i] += delta
	}

	for i := range b.Counts {
		b.Counts[i] = 0
	}
}
