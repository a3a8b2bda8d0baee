package noise

import "math"

// Add sums two sources evaluated at the same point.
type Add struct {
	a, b Module
}

func NewAdd(a, b Module) *Add {
	return &Add{a: a, b: b}
}

func (m *Add) GetValue(ctx *Context, x, y, z float64) float64 {
	return m.a.GetValue(ctx, x, y, z) + m.b.GetValue(ctx, x, y, z)
}

// Multiply multiplies two sources evaluated at the same point.
type Multiply struct {
	a, b Module
}

func NewMultiply(a, b Module) *Multiply {
	return &Multiply{a: a, b: b}
}

func (m *Multiply) GetValue(ctx *Context, x, y, z float64) float64 {
	return m.a.GetValue(ctx, x, y, z) * m.b.GetValue(ctx, x, y, z)
}

// Min selects the lower of two sources evaluated at the same point.
type Min struct {
	a, b Module
}

func NewMin(a, b Module) *Min {
	return &Min{a: a, b: b}
}

func (m *Min) GetValue(ctx *Context, x, y, z float64) float64 {
	return math.Min(m.a.GetValue(ctx, x, y, z), m.b.GetValue(ctx, x, y, z))
}

// Max selects the higher of two sources evaluated at the same point.
type Max struct {
	a, b Module
}

func NewMax(a, b Module) *Max {
	return &Max{a: a, b: b}
}

func (m *Max) GetValue(ctx *Context, x, y, z float64) float64 {
	return math.Max(m.a.GetValue(ctx, x, y, z), m.b.GetValue(ctx, x, y, z))
}
