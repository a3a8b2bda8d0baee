package noise

import "math"

// Constant always returns the same value.
type Constant struct {
	Value float64
}

// NewConstant returns a module that evaluates to value everywhere.
func NewConstant(value float64) *Constant {
	return &Constant{Value: value}
}

func (m *Constant) GetValue(ctx *Context, x, y, z float64) float64 {
	return m.Value
}

// ScaleBias applies output = input*scale + bias.
type ScaleBias struct {
	source Module
	scale  float64
	bias   float64
}

// NewScaleBias returns an affine transform of its source.
func NewScaleBias(source Module, scale, bias float64) *ScaleBias {
	return &ScaleBias{source: source, scale: scale, bias: bias}
}

func (m *ScaleBias) GetValue(ctx *Context, x, y, z float64) float64 {
	return m.source.GetValue(ctx, x, y, z)*m.scale + m.bias
}

// Clamp bounds its source's output to [lower, upper].
type Clamp struct {
	source Module
	lower  float64
	upper  float64
}

// NewClamp returns a module that clamps source to [lower, upper].
func NewClamp(source Module, lower, upper float64) *Clamp {
	return &Clamp{source: source, lower: lower, upper: upper}
}

func (m *Clamp) GetValue(ctx *Context, x, y, z float64) float64 {
	return clampValue(m.source.GetValue(ctx, x, y, z), m.lower, m.upper)
}

// Exponent remaps its source from [-1,1] to [0,1], raises it to a power and
// maps back. Values above 1 pull the midrange down; the shape of high values
// is compressed, which reads as glaciated slopes on terrain.
type Exponent struct {
	source   Module
	exponent float64
}

// NewExponent returns a power-curve transform of its source.
func NewExponent(source Module, exponent float64) *Exponent {
	return &Exponent{source: source, exponent: exponent}
}

func (m *Exponent) GetValue(ctx *Context, x, y, z float64) float64 {
	value := m.source.GetValue(ctx, x, y, z)
	return math.Pow(math.Abs((value+1.0)/2.0), m.exponent)*2.0 - 1.0
}
