package noise

// TurbulenceParams configures a domain-warp node.
type TurbulenceParams struct {
	Seed int64
	// Frequency of the three perturbation fields.
	Frequency float64
	// Power scales how far the query point is displaced.
	Power float64
	// Roughness is the octave count of the perturbation fields.
	Roughness int
}

// Turbulence warps the query point fed to its source using three independent
// coherent-noise fields, one per axis, then evaluates the source at the
// displaced point.
type Turbulence struct {
	source   Module
	power    float64
	xDistort *Perlin
	yDistort *Perlin
	zDistort *Perlin
}

// NewTurbulence returns a domain-warp of its source.
func NewTurbulence(source Module, p TurbulenceParams) *Turbulence {
	distort := func(seed int64) *Perlin {
		return NewPerlin(PerlinParams{
			Seed:        seed,
			Frequency:   p.Frequency,
			Persistence: 0.5,
			Lacunarity:  2.0,
			Octaves:     p.Roughness,
			Quality:     QualityStandard,
		})
	}
	return &Turbulence{
		source:   source,
		power:    p.Power,
		xDistort: distort(p.Seed),
		yDistort: distort(p.Seed + 1),
		zDistort: distort(p.Seed + 2),
	}
}

func (m *Turbulence) GetValue(ctx *Context, x, y, z float64) float64 {
	// Offset the inputs to each perturbation field so the three fields
	// sample unrelated regions even though they share coordinates.
	x0 := x + 12414.0/65536.0
	y0 := y + 65124.0/65536.0
	z0 := z + 31337.0/65536.0
	x1 := x + 26519.0/65536.0
	y1 := y + 18128.0/65536.0
	z1 := z + 60493.0/65536.0
	x2 := x + 53820.0/65536.0
	y2 := y + 11213.0/65536.0
	z2 := z + 44845.0/65536.0

	xd := x + m.xDistort.GetValue(ctx, x0, y0, z0)*m.power
	yd := y + m.yDistort.GetValue(ctx, x1, y1, z1)*m.power
	zd := z + m.zDistort.GetValue(ctx, x2, y2, z2)*m.power
	return m.source.GetValue(ctx, xd, yd, zd)
}
