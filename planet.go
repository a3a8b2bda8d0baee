// Package complexplanet generates elevation fields for procedural planets.
//
// A Planet owns an immutable graph of noise modules assembled from a Config.
// Sampling goes through a noise.Context, which holds the per-caller cache
// state; one Planet can be shared by any number of goroutines as long as
// each uses its own Context.
package complexplanet

import "github.com/mjn33/complexplanet/noise"

// Planet is a sampleable planetary elevation field. Elevations are unitless
// values in [-1, 1] with sea level at cfg.SeaLevel.
type Planet struct {
	root  noise.Module
	slots int
	seed  int64
	cfg   Config
}

// NewPlanet builds the elevation graph for the given seed. The config is
// copied; later mutations of cfg do not affect the planet.
func NewPlanet(seed int64, cfg *Config) (*Planet, error) {
	if cfg == nil {
		c := DefaultConfig()
		cfg = &c
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	root, slots, err := buildGraph(seed, planetSpec(cfg))
	if err != nil {
		return nil, err
	}
	return &Planet{root: root, slots: slots, seed: seed, cfg: *cfg}, nil
}

// Seed returns the seed the planet was built with.
func (p *Planet) Seed() int64 { return p.seed }

// Config returns a copy of the planet's configuration.
func (p *Planet) Config() Config { return p.cfg }

// NewContext returns a fresh sampling context for this planet. Contexts are
// cheap and not safe for concurrent use; give each goroutine its own.
func (p *Planet) NewContext() *noise.Context {
	return noise.NewContext(p.slots)
}

// Elevation samples the field at a point. Callers sample on the unit sphere,
// but any point is valid.
func (p *Planet) Elevation(ctx *noise.Context, x, y, z float64) float64 {
	return p.root.GetValue(ctx, x, y, z)
}
