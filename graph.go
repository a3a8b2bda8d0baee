package complexplanet

import (
	"fmt"

	"github.com/mjn33/complexplanet/noise"
)

// nodeKind enumerates the node types the graph builder can instantiate.
type nodeKind int

const (
	kindConstant nodeKind = iota
	kindPerlin
	kindBillow
	kindRidgedMulti
	kindVoronoi
	kindScaleBias
	kindClamp
	kindCurve
	kindTerrace
	kindExponent
	kindTurbulence
	kindAdd
	kindMultiply
	kindMin
	kindMax
	kindBlend
	kindSelect
	kindCache
)

var kindArity = map[nodeKind]int{
	kindConstant:    0,
	kindPerlin:      0,
	kindBillow:      0,
	kindRidgedMulti: 0,
	kindVoronoi:     0,
	kindScaleBias:   1,
	kindClamp:       1,
	kindCurve:       1,
	kindTerrace:     1,
	kindExponent:    1,
	kindTurbulence:  1,
	kindAdd:         2,
	kindMultiply:    2,
	kindMin:         2,
	kindMax:         2,
	kindBlend:       3,
	kindSelect:      3,
	kindCache:       1,
}

var kindNames = map[nodeKind]string{
	kindConstant:    "constant",
	kindPerlin:      "perlin",
	kindBillow:      "billow",
	kindRidgedMulti: "ridged-multi",
	kindVoronoi:     "voronoi",
	kindScaleBias:   "scale-bias",
	kindClamp:       "clamp",
	kindCurve:       "curve",
	kindTerrace:     "terrace",
	kindExponent:    "exponent",
	kindTurbulence:  "turbulence",
	kindAdd:         "add",
	kindMultiply:    "multiply",
	kindMin:         "min",
	kindMax:         "max",
	kindBlend:       "blend",
	kindSelect:      "select",
	kindCache:       "cache",
}

// nodeSpec declares one node of the planet graph: its kind, parameters and
// named inputs. The table of specs, not construction code, defines the
// wiring, which keeps the constants and the interpretation independently
// testable. Inputs reference earlier entries by name; for ternary nodes the
// order is (source0, source1, control).
type nodeSpec struct {
	name   string
	kind   nodeKind
	inputs []string

	// seedOffset is added to the planet seed so sibling sources never
	// correlate.
	seedOffset int64

	frequency    float64
	persistence  float64
	lacunarity   float64
	octaves      int
	quality      noise.Quality
	roughness    int
	power        float64
	scale        float64
	bias         float64
	lower        float64
	upper        float64
	falloff      float64
	exponent     float64
	value        float64
	displacement float64
	distance     bool
	invert       bool
	curve        []noise.ControlPoint
	terrace      []float64
}

// buildGraph interprets a node table in order and returns the final entry as
// the root, along with the number of cache slots handed out. All wiring
// errors (unknown or out-of-order inputs, duplicate names, wrong arity,
// malformed control-point tables) surface here, before any evaluation.
func buildGraph(seed int64, specs []nodeSpec) (noise.Module, int, error) {
	if len(specs) == 0 {
		return nil, 0, fmt.Errorf("empty node table")
	}

	built := make(map[string]noise.Module, len(specs))
	slots := 0
	var last noise.Module

	for _, s := range specs {
		if s.name == "" {
			return nil, 0, fmt.Errorf("node with empty name (kind %s)", kindNames[s.kind])
		}
		if _, dup := built[s.name]; dup {
			return nil, 0, fmt.Errorf("duplicate node name %q", s.name)
		}
		if want := kindArity[s.kind]; len(s.inputs) != want {
			return nil, 0, fmt.Errorf("node %q: %s takes %d inputs, got %d",
				s.name, kindNames[s.kind], want, len(s.inputs))
		}

		in := make([]noise.Module, len(s.inputs))
		for i, name := range s.inputs {
			m, ok := built[name]
			if !ok {
				return nil, 0, fmt.Errorf("node %q: input %q is not defined before it", s.name, name)
			}
			in[i] = m
		}

		m, err := buildNode(seed, s, in, &slots)
		if err != nil {
			return nil, 0, fmt.Errorf("node %q: %w", s.name, err)
		}
		built[s.name] = m
		last = m
	}
	return last, slots, nil
}

func buildNode(seed int64, s nodeSpec, in []noise.Module, slots *int) (noise.Module, error) {
	switch s.kind {
	case kindConstant:
		return noise.NewConstant(s.value), nil
	case kindPerlin:
		return noise.NewPerlin(noise.PerlinParams{
			Seed:        seed + s.seedOffset,
			Frequency:   s.frequency,
			Persistence: s.persistence,
			Lacunarity:  s.lacunarity,
			Octaves:     s.octaves,
			Quality:     s.quality,
		}), nil
	case kindBillow:
		return noise.NewBillow(noise.BillowParams{
			Seed:        seed + s.seedOffset,
			Frequency:   s.frequency,
			Persistence: s.persistence,
			Lacunarity:  s.lacunarity,
			Octaves:     s.octaves,
			Quality:     s.quality,
		}), nil
	case kindRidgedMulti:
		return noise.NewRidgedMulti(noise.RidgedMultiParams{
			Seed:       seed + s.seedOffset,
			Frequency:  s.frequency,
			Lacunarity: s.lacunarity,
			Octaves:    s.octaves,
			Quality:    s.quality,
		}), nil
	case kindVoronoi:
		return noise.NewVoronoi(noise.VoronoiParams{
			Seed:         seed + s.seedOffset,
			Frequency:    s.frequency,
			Displacement: s.displacement,
			Distance:     s.distance,
		}), nil
	case kindScaleBias:
		return noise.NewScaleBias(in[0], s.scale, s.bias), nil
	case kindClamp:
		return noise.NewClamp(in[0], s.lower, s.upper), nil
	case kindCurve:
		return noise.NewCurve(in[0], s.curve)
	case kindTerrace:
		return noise.NewTerrace(in[0], s.terrace, s.invert)
	case kindExponent:
		return noise.NewExponent(in[0], s.exponent), nil
	case kindTurbulence:
		return noise.NewTurbulence(in[0], noise.TurbulenceParams{
			Seed:      seed + s.seedOffset,
			Frequency: s.frequency,
			Power:     s.power,
			Roughness: s.roughness,
		}), nil
	case kindAdd:
		return noise.NewAdd(in[0], in[1]), nil
	case kindMultiply:
		return noise.NewMultiply(in[0], in[1]), nil
	case kindMin:
		return noise.NewMin(in[0], in[1]), nil
	case kindMax:
		return noise.NewMax(in[0], in[1]), nil
	case kindBlend:
		return noise.NewBlend(in[0], in[1], in[2]), nil
	case kindSelect:
		return noise.NewSelect(in[0], in[1], in[2], s.lower, s.upper, s.falloff), nil
	case kindCache:
		c := noise.NewCache(in[0], *slots)
		*slots++
		return c, nil
	default:
		return nil, fmt.Errorf("unknown node kind %d", s.kind)
	}
}
