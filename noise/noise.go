// Package noise implements the composable field-node library used to build
// planetary elevation functions. A Module maps a 3D point to a scalar value,
// nominally in [-1,1]. Modules form a directed acyclic graph: primitive
// fractal sources at the leaves, shaping and combining nodes above them.
//
// Modules are immutable once constructed, so a graph can be shared read-only
// across goroutines. All per-evaluation mutable state (the cache table used
// by Cache nodes) lives in a Context, and each goroutine owns its own.
package noise

import "math"

// Module is a single node of the elevation function graph.
type Module interface {
	// GetValue evaluates the node at (x, y, z). The result is deterministic
	// for a fixed node and point. ctx carries the per-goroutine cache table;
	// nodes that do not memoize simply pass it through.
	GetValue(ctx *Context, x, y, z float64) float64
}

// Context holds the mutable evaluation state for one goroutine: one
// last-point/value slot per Cache node in the graph. The graph itself stays
// immutable, which is what makes it safe to share between workers.
type Context struct {
	slots []cacheEntry
}

type cacheEntry struct {
	x, y, z float64
	value   float64
	valid   bool
}

// NewContext returns a Context with room for the given number of cache
// slots. Use the slot count reported by the graph builder.
func NewContext(slots int) *Context {
	return &Context{slots: make([]cacheEntry, slots)}
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// sCurve3 is the cubic ease curve used for select edge falloff.
func sCurve3(a float64) float64 {
	return a * a * (3.0 - 2.0*a)
}

// cubicInterp interpolates between n1 and n2 with n0 and n3 as the outer
// support points, at position a in [0,1].
func cubicInterp(n0, n1, n2, n3, a float64) float64 {
	p := (n3 - n2) - (n0 - n1)
	q := (n0 - n1) - p
	r := n2 - n0
	s := n1
	return p*a*a*a + q*a*a + r*a + s
}

func clampValue(v, lower, upper float64) float64 {
	if v < lower {
		return lower
	}
	if v > upper {
		return upper
	}
	return v
}

func floorInt(v float64) int {
	return int(math.Floor(v))
}
