package noise

// Blend linearly interpolates between two sources using a control source.
// The control output is mapped from [-1,1] to a mix factor in [0,1], clamped
// so out-of-range control values saturate instead of extrapolating.
type Blend struct {
	a, b    Module
	control Module
}

func NewBlend(a, b, control Module) *Blend {
	return &Blend{a: a, b: b, control: control}
}

func (m *Blend) GetValue(ctx *Context, x, y, z float64) float64 {
	v0 := m.a.GetValue(ctx, x, y, z)
	v1 := m.b.GetValue(ctx, x, y, z)
	alpha := clampValue((m.control.GetValue(ctx, x, y, z)+1.0)/2.0, 0.0, 1.0)
	return lerp(v0, v1, alpha)
}

// Select outputs one of two sources depending on whether the control source
// falls inside [lower, upper]. With a nonzero edge falloff the boundary is a
// smooth cubic blend of the given half-width instead of a hard step.
type Select struct {
	a, b    Module
	control Module
	lower   float64
	upper   float64
	falloff float64
}

// NewSelect returns a selector. b is chosen where control is inside
// [lower, upper], a elsewhere. The falloff is capped at half the bound width
// so the two transition bands cannot overlap.
func NewSelect(a, b, control Module, lower, upper, falloff float64) *Select {
	if half := (upper - lower) / 2.0; falloff > half {
		falloff = half
	}
	return &Select{a: a, b: b, control: control, lower: lower, upper: upper, falloff: falloff}
}

func (m *Select) GetValue(ctx *Context, x, y, z float64) float64 {
	control := m.control.GetValue(ctx, x, y, z)
	if m.falloff > 0.0 {
		switch {
		case control < m.lower-m.falloff:
			return m.a.GetValue(ctx, x, y, z)
		case control < m.lower+m.falloff:
			alpha := sCurve3((control - (m.lower - m.falloff)) / (2.0 * m.falloff))
			return lerp(m.a.GetValue(ctx, x, y, z), m.b.GetValue(ctx, x, y, z), alpha)
		case control < m.upper-m.falloff:
			return m.b.GetValue(ctx, x, y, z)
		case control < m.upper+m.falloff:
			alpha := sCurve3((control - (m.upper - m.falloff)) / (2.0 * m.falloff))
			return lerp(m.b.GetValue(ctx, x, y, z), m.a.GetValue(ctx, x, y, z), alpha)
		default:
			return m.a.GetValue(ctx, x, y, z)
		}
	}
	if control < m.lower || control > m.upper {
		return m.a.GetValue(ctx, x, y, z)
	}
	return m.b.GetValue(ctx, x, y, z)
}
