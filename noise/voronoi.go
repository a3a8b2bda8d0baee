package noise

import "math"

// VoronoiParams configures a cellular-noise source.
type VoronoiParams struct {
	Seed         int64
	Frequency    float64
	Displacement float64
	// Distance makes the module return the distance to the nearest cell
	// center, which produces pit-like polygonal structure. Otherwise each
	// cell yields a constant pseudo-random value scaled by Displacement.
	Distance bool
}

// Voronoi partitions space into cells around jittered seed points.
type Voronoi struct {
	params VoronoiParams
}

// NewVoronoi returns a cellular-noise module.
func NewVoronoi(p VoronoiParams) *Voronoi {
	return &Voronoi{params: p}
}

func (m *Voronoi) GetValue(ctx *Context, x, y, z float64) float64 {
	x *= m.params.Frequency
	y *= m.params.Frequency
	z *= m.params.Frequency

	xi := floorInt(x)
	yi := floorInt(y)
	zi := floorInt(z)

	// Scan the neighborhood for the nearest jittered cell center. A radius
	// of two cells is enough because jitter never exceeds one cell width.
	minDist := math.MaxFloat64
	var xc, yc, zc float64
	for zCur := zi - 2; zCur <= zi+2; zCur++ {
		for yCur := yi - 2; yCur <= yi+2; yCur++ {
			for xCur := xi - 2; xCur <= xi+2; xCur++ {
				xPos := float64(xCur) + latticeValue(xCur, yCur, zCur, m.params.Seed)
				yPos := float64(yCur) + latticeValue(xCur, yCur, zCur, m.params.Seed+1)
				zPos := float64(zCur) + latticeValue(xCur, yCur, zCur, m.params.Seed+2)
				dx := xPos - x
				dy := yPos - y
				dz := zPos - z
				dist := dx*dx + dy*dy + dz*dz
				if dist < minDist {
					minDist = dist
					xc, yc, zc = xPos, yPos, zPos
				}
			}
		}
	}

	value := 0.0
	if m.params.Distance {
		// Rescale so a point at the far corner of its cell maps near +1.
		const sqrt3 = 1.7320508075688772
		dx := xc - x
		dy := yc - y
		dz := zc - z
		value = math.Sqrt(dx*dx+dy*dy+dz*dz)*sqrt3 - 1.0
	}
	return value + m.params.Displacement*latticeValue(floorInt(xc), floorInt(yc), floorInt(zc), m.params.Seed)
}
