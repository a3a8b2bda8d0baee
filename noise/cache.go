package noise

// Cache memoizes the single most recent (point, value) pair of its source.
// Placed at subgroup boundaries it keeps an expensive subtree from being
// re-evaluated when several downstream consumers query the same point in one
// pass.
//
// The memo itself lives in the per-goroutine Context, addressed by slot, so
// a Cache node is as immutable and shareable as every other node.
type Cache struct {
	source Module
	slot   int
}

// NewCache returns a memoizing wrapper around source. slot addresses this
// node's entry in the Context cache table; the graph builder hands out
// sequential slots and reports the total.
func NewCache(source Module, slot int) *Cache {
	return &Cache{source: source, slot: slot}
}

func (m *Cache) GetValue(ctx *Context, x, y, z float64) float64 {
	e := &ctx.slots[m.slot]
	if e.valid && e.x == x && e.y == y && e.z == z {
		return e.value
	}
	v := m.source.GetValue(ctx, x, y, z)
	*e = cacheEntry{x: x, y: y, z: z, value: v, valid: true}
	return v
}
