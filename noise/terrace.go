package noise

import "fmt"

// Terrace maps its source onto stair-stepped plateaus. Between neighboring
// control values the output eases in quadratically, so steps have flat tops
// joined by steep transition bands. Inverting flips the step bias so the
// flat part sits at the top of each step instead of the bottom.
type Terrace struct {
	source Module
	points []float64
	invert bool
}

// NewTerrace returns a terracing transform of its source. At least two
// strictly increasing control values are required; violations are
// configuration errors caught here.
func NewTerrace(source Module, points []float64, invert bool) (*Terrace, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("terrace needs at least 2 control points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			return nil, fmt.Errorf("terrace control points must be strictly increasing: point %d (%v) <= point %d (%v)",
				i, points[i], i-1, points[i-1])
		}
	}
	cp := make([]float64, len(points))
	copy(cp, points)
	return &Terrace{source: source, points: cp, invert: invert}, nil
}

func (m *Terrace) GetValue(ctx *Context, x, y, z float64) float64 {
	value := m.source.GetValue(ctx, x, y, z)

	indexPos := len(m.points)
	for i, cp := range m.points {
		if value < cp {
			indexPos = i
			break
		}
	}

	index0 := m.clampIndex(indexPos - 1)
	index1 := m.clampIndex(indexPos)
	if index0 == index1 {
		return m.points[index1]
	}

	v0 := m.points[index0]
	v1 := m.points[index1]
	alpha := (value - v0) / (v1 - v0)
	if m.invert {
		alpha = 1.0 - alpha
		v0, v1 = v1, v0
	}
	alpha *= alpha
	return lerp(v0, v1, alpha)
}

func (m *Terrace) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(m.points)-1 {
		return len(m.points) - 1
	}
	return i
}
