package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Quality selects the lattice-noise primitive behind a fractal source.
// Higher tiers trade speed for smoother gradients.
type Quality int

const (
	// QualityFast and QualityStandard use seeded simplex noise.
	QualityFast Quality = iota
	QualityStandard
	// QualityBest uses classic gradient noise.
	QualityBest
)

// source3 is the primitive-noise collaborator: a seeded, coherent lattice
// noise over 3D points with output roughly in [-1,1]. The fractal modules
// only compose it; they never re-derive the underlying math.
type source3 interface {
	Eval3(x, y, z float64) float64
}

// perlinSource adapts go-perlin's single-octave gradient noise to source3.
type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Eval3(x, y, z float64) float64 {
	return s.p.Noise3D(x, y, z)
}

// newSource returns one primitive instance for the given seed. Fractal
// modules create one per octave, each with its own seed, so octaves never
// correlate.
func newSource(seed int64, quality Quality) source3 {
	if quality == QualityBest {
		// alpha/beta as used across the pack for plain gradient noise;
		// n=1 keeps it a single octave, the fractal modules do the layering.
		return perlinSource{p: perlin.NewPerlin(2, 2, 1, seed)}
	}
	return opensimplex.New(seed)
}

// newOctaveSources builds the per-octave primitive instances for a fractal
// module.
func newOctaveSources(seed int64, octaves int, quality Quality) []source3 {
	sources := make([]source3, octaves)
	for i := range sources {
		sources[i] = newSource(seed+int64(i), quality)
	}
	return sources
}

// latticeValue returns a deterministic pseudo-random value in [-1,1] for an
// integer lattice point. SplitMix64-style hashing keeps it stable across
// runs and uncorrelated between nearby cells.
func latticeValue(x, y, z int, seed int64) float64 {
	v := uint64(int64(x))*0x9E3779B97F4A7C15 +
		uint64(int64(y))*0x517CC1B727220A95 +
		uint64(int64(z))*0x6C62272E07BB0142 +
		uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v ^= v >> 31
	return float64(v&0x1FFFFFFFFFFFFF)/float64(0xFFFFFFFFFFFFF) - 1.0
}
