package noise

import "fmt"

// ControlPoint maps one input coordinate to an output value on a Curve.
type ControlPoint struct {
	In  float64
	Out float64
}

// Curve maps its source through a piecewise cubic spline defined by control
// points. Inside the table the four control points nearest the input value
// shape the segment; outside it the boundary segment is extended linearly.
type Curve struct {
	source Module
	points []ControlPoint
}

// NewCurve returns a spline transform of its source. At least four control
// points are required and their input coordinates must be strictly
// increasing; violations are configuration errors caught here, not at query
// time.
func NewCurve(source Module, points []ControlPoint) (*Curve, error) {
	if len(points) < 4 {
		return nil, fmt.Errorf("curve needs at least 4 control points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if points[i].In <= points[i-1].In {
			return nil, fmt.Errorf("curve control points must be strictly increasing: point %d (%v) <= point %d (%v)",
				i, points[i].In, i-1, points[i-1].In)
		}
	}
	cp := make([]ControlPoint, len(points))
	copy(cp, points)
	return &Curve{source: source, points: cp}, nil
}

func (m *Curve) GetValue(ctx *Context, x, y, z float64) float64 {
	value := m.source.GetValue(ctx, x, y, z)

	indexPos := len(m.points)
	for i, cp := range m.points {
		if value < cp.In {
			indexPos = i
			break
		}
	}

	index0 := m.clampIndex(indexPos - 2)
	index1 := m.clampIndex(indexPos - 1)
	index2 := m.clampIndex(indexPos)
	index3 := m.clampIndex(indexPos + 1)

	if index1 == index2 {
		// Outside the table: extend the boundary segment linearly.
		var p0, p1 ControlPoint
		if indexPos == 0 {
			p0, p1 = m.points[0], m.points[1]
		} else {
			n := len(m.points)
			p0, p1 = m.points[n-2], m.points[n-1]
		}
		return p0.Out + (value-p0.In)*(p1.Out-p0.Out)/(p1.In-p0.In)
	}

	in0 := m.points[index1].In
	in1 := m.points[index2].In
	alpha := (value - in0) / (in1 - in0)
	return cubicInterp(
		m.points[index0].Out,
		m.points[index1].Out,
		m.points[index2].Out,
		m.points[index3].Out,
		alpha)
}

func (m *Curve) clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > len(m.points)-1 {
		return len(m.points) - 1
	}
	return i
}
