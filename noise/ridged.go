package noise

import "math"

// RidgedMultiParams configures a ridged-multifractal source.
type RidgedMultiParams struct {
	Seed       int64
	Frequency  float64
	Lacunarity float64
	Octaves    int
	Quality    Quality
}

// RidgedMulti emphasizes sharp ridges by inverting the absolute value of
// each octave and feeding the result forward as the next octave's weight.
// Unlike Perlin and Billow its amplitude can exceed the nominal range as the
// octave count grows, so consumers rescale downstream.
type RidgedMulti struct {
	params  RidgedMultiParams
	sources []source3
	weights []float64
}

// NewRidgedMulti returns a ridged-multifractal module.
func NewRidgedMulti(p RidgedMultiParams) *RidgedMulti {
	m := &RidgedMulti{
		params:  p,
		sources: newOctaveSources(p.Seed, p.Octaves, p.Quality),
		weights: make([]float64, p.Octaves),
	}
	// Spectral weights for a spectral exponent of 1.
	freq := 1.0
	for i := range m.weights {
		m.weights[i] = math.Pow(freq, -1.0)
		freq *= p.Lacunarity
	}
	return m
}

func (m *RidgedMulti) GetValue(ctx *Context, x, y, z float64) float64 {
	const (
		offset = 1.0
		gain   = 2.0
	)

	x *= m.params.Frequency
	y *= m.params.Frequency
	z *= m.params.Frequency

	value := 0.0
	weight := 1.0
	for i, src := range m.sources {
		signal := src.Eval3(x, y, z)
		signal = offset - math.Abs(signal)
		signal *= signal
		signal *= weight

		// The current signal gates the next octave so ridges stay sharp.
		weight = clampValue(signal*gain, 0.0, 1.0)

		value += signal * m.weights[i]
		x *= m.params.Lacunarity
		y *= m.params.Lacunarity
		z *= m.params.Lacunarity
	}
	return value*1.25 - 1.0
}
