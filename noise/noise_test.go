package noise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mjn33/complexplanet/noise"
)

// countingModule counts evaluations so tests can observe memoization.
type countingModule struct {
	value float64
	calls int
}

func (m *countingModule) GetValue(ctx *noise.Context, x, y, z float64) float64 {
	m.calls++
	return m.value
}

// rampModule returns x, which lets tests drive shaping nodes with exact
// inputs.
type rampModule struct{}

func (rampModule) GetValue(ctx *noise.Context, x, y, z float64) float64 { return x }

func TestCacheMemoizesLastPoint(t *testing.T) {
	src := &countingModule{value: 0.25}
	c := noise.NewCache(src, 0)
	ctx := noise.NewContext(1)

	assert.Equal(t, 0.25, c.GetValue(ctx, 1, 2, 3))
	assert.Equal(t, 0.25, c.GetValue(ctx, 1, 2, 3))
	assert.Equal(t, 0.25, c.GetValue(ctx, 1, 2, 3))
	assert.Equal(t, 1, src.calls, "repeated queries of the same point must hit the memo")

	c.GetValue(ctx, 4, 5, 6)
	assert.Equal(t, 2, src.calls, "a new point must recompute")

	c.GetValue(ctx, 1, 2, 3)
	assert.Equal(t, 3, src.calls, "only the most recent point is retained")
}

func TestCacheContextsAreIndependent(t *testing.T) {
	src := &countingModule{value: -0.5}
	c := noise.NewCache(src, 0)

	ctxA := noise.NewContext(1)
	ctxB := noise.NewContext(1)
	c.GetValue(ctxA, 1, 2, 3)
	c.GetValue(ctxB, 1, 2, 3)
	assert.Equal(t, 2, src.calls, "each context keeps its own memo")
}

func TestCurvePassesThroughControlPoints(t *testing.T) {
	points := []noise.ControlPoint{
		{In: -2.0, Out: -1.625},
		{In: -1.0, Out: -1.375},
		{In: 0.0, Out: -0.375},
		{In: 0.5, Out: 0.25},
		{In: 1.0, Out: 0.5},
	}
	c, err := noise.NewCurve(rampModule{}, points)
	require.NoError(t, err)

	ctx := noise.NewContext(0)
	for _, cp := range points {
		assert.InDelta(t, cp.Out, c.GetValue(ctx, cp.In, 0, 0), 1e-12,
			"curve must reproduce control point at %v", cp.In)
	}
}

func TestCurveExtendsLinearlyOutsideTable(t *testing.T) {
	points := []noise.ControlPoint{
		{In: 0.0, Out: 0.0},
		{In: 1.0, Out: 1.0},
		{In: 2.0, Out: 2.0},
		{In: 3.0, Out: 4.0},
	}
	c, err := noise.NewCurve(rampModule{}, points)
	require.NoError(t, err)

	ctx := noise.NewContext(0)
	// Below the table: extend the first segment, slope 1.
	assert.InDelta(t, -2.0, c.GetValue(ctx, -2.0, 0, 0), 1e-12)
	// Above the table: extend the last segment, slope 2.
	assert.InDelta(t, 6.0, c.GetValue(ctx, 4.0, 0, 0), 1e-12)
}

func TestCurveRejectsBadTables(t *testing.T) {
	_, err := noise.NewCurve(rampModule{}, []noise.ControlPoint{
		{In: 0, Out: 0}, {In: 1, Out: 1}, {In: 2, Out: 2},
	})
	assert.Error(t, err, "fewer than four control points")

	_, err = noise.NewCurve(rampModule{}, []noise.ControlPoint{
		{In: 0, Out: 0}, {In: 1, Out: 1}, {In: 1, Out: 2}, {In: 2, Out: 3},
	})
	assert.Error(t, err, "duplicate input coordinates")

	_, err = noise.NewCurve(rampModule{}, []noise.ControlPoint{
		{In: 0, Out: 0}, {In: 2, Out: 1}, {In: 1, Out: 2}, {In: 3, Out: 3},
	})
	assert.Error(t, err, "decreasing input coordinates")
}

func TestTerraceStepsAndEasing(t *testing.T) {
	te, err := noise.NewTerrace(rampModule{}, []float64{-1.0, 0.0, 1.0}, false)
	require.NoError(t, err)

	ctx := noise.NewContext(0)
	// Control values map to themselves.
	assert.InDelta(t, -1.0, te.GetValue(ctx, -1.0, 0, 0), 1e-12)
	assert.InDelta(t, 0.0, te.GetValue(ctx, 0.0, 0, 0), 1e-12)
	// Quadratic ease: halfway through a step only a quarter of the rise has
	// happened, which is what flattens the step bottoms.
	assert.InDelta(t, 0.25, te.GetValue(ctx, 0.5, 0, 0), 1e-12)
	// Outside the table the boundary value holds.
	assert.InDelta(t, -1.0, te.GetValue(ctx, -3.0, 0, 0), 1e-12)
	assert.InDelta(t, 1.0, te.GetValue(ctx, 3.0, 0, 0), 1e-12)
}

func TestTerraceInverted(t *testing.T) {
	te, err := noise.NewTerrace(rampModule{}, []float64{0.0, 1.0}, true)
	require.NoError(t, err)

	ctx := noise.NewContext(0)
	// Inverted easing puts the flat part at the step top: halfway through,
	// three quarters of the rise has happened.
	assert.InDelta(t, 0.75, te.GetValue(ctx, 0.5, 0, 0), 1e-12)
}

func TestTerraceRejectsBadTables(t *testing.T) {
	_, err := noise.NewTerrace(rampModule{}, []float64{0.5}, false)
	assert.Error(t, err, "fewer than two control points")

	_, err = noise.NewTerrace(rampModule{}, []float64{0.5, 0.5}, false)
	assert.Error(t, err, "duplicate control points")

	_, err = noise.NewTerrace(rampModule{}, []float64{1.0, 0.0}, false)
	assert.Error(t, err, "decreasing control points")
}

func TestSelectHardEdges(t *testing.T) {
	a := noise.NewConstant(-1.0)
	b := noise.NewConstant(1.0)
	se := noise.NewSelect(a, b, rampModule{}, -0.5, 0.5, 0.0)

	ctx := noise.NewContext(0)
	assert.Equal(t, -1.0, se.GetValue(ctx, -0.6, 0, 0))
	assert.Equal(t, 1.0, se.GetValue(ctx, -0.5, 0, 0), "lower bound is inclusive")
	assert.Equal(t, 1.0, se.GetValue(ctx, 0.0, 0, 0))
	assert.Equal(t, 1.0, se.GetValue(ctx, 0.5, 0, 0), "upper bound is inclusive")
	assert.Equal(t, -1.0, se.GetValue(ctx, 0.6, 0, 0))
}

func TestSelectFalloffBlends(t *testing.T) {
	a := noise.NewConstant(0.0)
	b := noise.NewConstant(1.0)
	se := noise.NewSelect(a, b, rampModule{}, -0.5, 0.5, 0.25)

	ctx := noise.NewContext(0)
	assert.Equal(t, 0.0, se.GetValue(ctx, -0.75001, 0, 0), "fully outside the band")
	assert.Equal(t, 1.0, se.GetValue(ctx, -0.25, 0, 0), "fully inside")
	// At the bound itself the blend is exactly halfway.
	assert.InDelta(t, 0.5, se.GetValue(ctx, -0.5, 0, 0), 1e-12)
	assert.InDelta(t, 0.5, se.GetValue(ctx, 0.5, 0, 0), 1e-12)
	// The transition is monotone through the band.
	prev := -1.0
	for v := -0.75; v <= -0.25; v += 0.01 {
		cur := se.GetValue(ctx, v, 0, 0)
		assert.GreaterOrEqual(t, cur, prev, "falloff blend must not oscillate at %v", v)
		prev = cur
	}
}

func TestSelectFalloffCappedAtHalfWidth(t *testing.T) {
	a := noise.NewConstant(0.0)
	b := noise.NewConstant(1.0)
	// Requested falloff exceeds half the bound width; the effective falloff
	// must shrink so the two transition bands meet at the band center, not
	// overlap.
	se := noise.NewSelect(a, b, rampModule{}, -0.5, 0.5, 10.0)

	ctx := noise.NewContext(0)
	assert.InDelta(t, 1.0, se.GetValue(ctx, 0.0, 0, 0), 1e-12)
	assert.Equal(t, 0.0, se.GetValue(ctx, -1.1, 0, 0))
	assert.Equal(t, 0.0, se.GetValue(ctx, 1.1, 0, 0))
}

func TestBlendClampsControl(t *testing.T) {
	bl := noise.NewBlend(noise.NewConstant(-1.0), noise.NewConstant(1.0), rampModule{})

	ctx := noise.NewContext(0)
	assert.Equal(t, -1.0, bl.GetValue(ctx, -1.0, 0, 0))
	assert.Equal(t, 1.0, bl.GetValue(ctx, 1.0, 0, 0))
	assert.InDelta(t, 0.0, bl.GetValue(ctx, 0.0, 0, 0), 1e-12)
	// Out-of-range control saturates instead of extrapolating.
	assert.Equal(t, -1.0, bl.GetValue(ctx, -5.0, 0, 0))
	assert.Equal(t, 1.0, bl.GetValue(ctx, 5.0, 0, 0))
}

func TestModifiers(t *testing.T) {
	ctx := noise.NewContext(0)

	sb := noise.NewScaleBias(noise.NewConstant(0.5), 2.0, -0.25)
	assert.InDelta(t, 0.75, sb.GetValue(ctx, 0, 0, 0), 1e-12)

	cl := noise.NewClamp(rampModule{}, -0.5, 0.5)
	assert.Equal(t, -0.5, cl.GetValue(ctx, -2, 0, 0))
	assert.Equal(t, 0.25, cl.GetValue(ctx, 0.25, 0, 0))
	assert.Equal(t, 0.5, cl.GetValue(ctx, 2, 0, 0))

	// Exponent fixes -1 and 1 and pulls the midrange down for e > 1.
	ex := noise.NewExponent(rampModule{}, 2.0)
	assert.InDelta(t, -1.0, ex.GetValue(ctx, -1, 0, 0), 1e-12)
	assert.InDelta(t, 1.0, ex.GetValue(ctx, 1, 0, 0), 1e-12)
	assert.InDelta(t, -0.5, ex.GetValue(ctx, 0, 0, 0), 1e-12)
}

func TestCombiners(t *testing.T) {
	ctx := noise.NewContext(0)
	a := noise.NewConstant(0.25)
	b := noise.NewConstant(-0.5)

	assert.InDelta(t, -0.25, noise.NewAdd(a, b).GetValue(ctx, 0, 0, 0), 1e-12)
	assert.InDelta(t, -0.125, noise.NewMultiply(a, b).GetValue(ctx, 0, 0, 0), 1e-12)
	assert.Equal(t, -0.5, noise.NewMin(a, b).GetValue(ctx, 0, 0, 0))
	assert.Equal(t, 0.25, noise.NewMax(a, b).GetValue(ctx, 0, 0, 0))
}

func TestFractalSourcesAreDeterministic(t *testing.T) {
	ctx := noise.NewContext(0)

	for _, quality := range []noise.Quality{noise.QualityStandard, noise.QualityBest} {
		p0 := noise.NewPerlin(noise.PerlinParams{
			Seed: 7, Frequency: 1.5, Persistence: 0.5, Lacunarity: 2.0,
			Octaves: 4, Quality: quality,
		})
		p1 := noise.NewPerlin(noise.PerlinParams{
			Seed: 7, Frequency: 1.5, Persistence: 0.5, Lacunarity: 2.0,
			Octaves: 4, Quality: quality,
		})
		v0 := p0.GetValue(ctx, 0.3, -0.7, 0.2)
		v1 := p1.GetValue(ctx, 0.3, -0.7, 0.2)
		assert.Equal(t, v0, v1, "same parameters must give identical fields")
	}
}

func TestFractalSourcesSeedsDiffer(t *testing.T) {
	ctx := noise.NewContext(0)
	mk := func(seed int64) *noise.Perlin {
		return noise.NewPerlin(noise.PerlinParams{
			Seed: seed, Frequency: 1.5, Persistence: 0.5, Lacunarity: 2.0,
			Octaves: 4, Quality: noise.QualityStandard,
		})
	}
	a, b := mk(1), mk(2)
	same := true
	for _, x := range []float64{0.1, 0.4, 0.9, -0.3, -0.8} {
		if a.GetValue(ctx, x, x/2, -x) != b.GetValue(ctx, x, x/2, -x) {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds must not produce the same field")
}

func TestVoronoiDistanceMode(t *testing.T) {
	ctx := noise.NewContext(0)
	vo := noise.NewVoronoi(noise.VoronoiParams{
		Seed: 3, Frequency: 4.0, Displacement: 0.0, Distance: true,
	})
	for _, x := range []float64{0.0, 0.13, 0.51, -0.77} {
		v := vo.GetValue(ctx, x, x*0.5, -x)
		assert.GreaterOrEqual(t, v, -1.0, "at a cell center the distance term bottoms out at -1")
		assert.Equal(t, v, vo.GetValue(ctx, x, x*0.5, -x), "cellular noise must be deterministic")
	}
}

func TestTurbulenceZeroPowerIsIdentity(t *testing.T) {
	ctx := noise.NewContext(0)
	tu := noise.NewTurbulence(rampModule{}, noise.TurbulenceParams{
		Seed: 5, Frequency: 2.0, Power: 0.0, Roughness: 3,
	})
	for _, x := range []float64{-0.9, 0.0, 0.4, 1.7} {
		assert.Equal(t, x, tu.GetValue(ctx, x, 0, 0),
			"zero power must leave the query point untouched")
	}
}
