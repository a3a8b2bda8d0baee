package noise

// PerlinParams configures a multi-octave coherent-noise source.
type PerlinParams struct {
	Seed        int64
	Frequency   float64
	Persistence float64
	Lacunarity  float64
	Octaves     int
	Quality     Quality
}

// Perlin sums successive octaves of coherent noise, each octave at a higher
// frequency (scaled by lacunarity) and lower amplitude (scaled by
// persistence). Output is nominally in [-1,1].
type Perlin struct {
	params  PerlinParams
	sources []source3
}

// NewPerlin returns a multi-octave coherent-noise module.
func NewPerlin(p PerlinParams) *Perlin {
	return &Perlin{
		params:  p,
		sources: newOctaveSources(p.Seed, p.Octaves, p.Quality),
	}
}

func (m *Perlin) GetValue(ctx *Context, x, y, z float64) float64 {
	x *= m.params.Frequency
	y *= m.params.Frequency
	z *= m.params.Frequency

	value := 0.0
	persistence := 1.0
	for _, src := range m.sources {
		value += src.Eval3(x, y, z) * persistence
		x *= m.params.Lacunarity
		y *= m.params.Lacunarity
		z *= m.params.Lacunarity
		persistence *= m.params.Persistence
	}
	return value
}

// BillowParams configures a billow-noise source.
type BillowParams struct {
	Seed        int64
	Frequency   float64
	Persistence float64
	Lacunarity  float64
	Octaves     int
	Quality     Quality
}

// Billow is multi-octave noise with absolute-valued octaves, producing
// puffy, rounded shapes.
type Billow struct {
	params  BillowParams
	sources []source3
}

// NewBillow returns a billow-noise module.
func NewBillow(p BillowParams) *Billow {
	return &Billow{
		params:  p,
		sources: newOctaveSources(p.Seed, p.Octaves, p.Quality),
	}
}

func (m *Billow) GetValue(ctx *Context, x, y, z float64) float64 {
	x *= m.params.Frequency
	y *= m.params.Frequency
	z *= m.params.Frequency

	value := 0.0
	persistence := 1.0
	for _, src := range m.sources {
		signal := src.Eval3(x, y, z)
		if signal < 0 {
			signal = -signal
		}
		signal = 2.0*signal - 1.0
		value += signal * persistence
		x *= m.params.Lacunarity
		y *= m.params.Lacunarity
		z *= m.params.Lacunarity
		persistence *= m.params.Persistence
	}
	return value + 0.5
}
