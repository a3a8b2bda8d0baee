package complexplanet

import "github.com/mjn33/complexplanet/noise"

// planetSpec returns the node table of the planetary elevation graph. The
// table is grouped the way the terrain is layered: continents first, then a
// terrain-type field that decides where the rough layers go, the terrain
// layers themselves (mountains, hills, plains, badlands), river positions,
// the per-layer rescaling into planetary elevation units, and finally the
// compositing passes that stamp each layer onto the continents.
//
// Seed offsets are fixed per primitive source so siblings never correlate.
// Entries only reference earlier entries; the last entry is the root.
func planetSpec(cfg *Config) []nodeSpec {
	sea := cfg.SeaLevel
	shelf := cfg.ShelfLevel
	contFreq := cfg.ContinentFrequency
	heightScale := cfg.ContinentHeightScale()

	return []nodeSpec{
		// ------------------------------------------------------------------
		// Base continent definition: positions and base elevations of the
		// continents, before any terrain features are placed on them.
		// ------------------------------------------------------------------

		// High octave count so detail holds up at high zoom levels.
		{name: "baseContinent.noise", kind: kindPerlin, seedOffset: 0,
			frequency: contFreq, persistence: 0.5, lacunarity: cfg.ContinentLacunarity,
			octaves: 14, quality: noise.QualityStandard},

		// Push very high noise values back towards sea level; the surviving
		// spikes become the mountain ranges.
		{name: "baseContinent.ranges", kind: kindCurve, inputs: []string{"baseContinent.noise"},
			curve: []noise.ControlPoint{
				{In: -2.0000 + sea, Out: -1.625 + sea},
				{In: -1.0000 + sea, Out: -1.375 + sea},
				{In: 0.0000 + sea, Out: -0.375 + sea},
				{In: 0.0625 + sea, Out: 0.125 + sea},
				{In: 0.1250 + sea, Out: 0.250 + sea},
				{In: 0.2500 + sea, Out: 1.000 + sea},
				{In: 0.5000 + sea, Out: 0.250 + sea},
				{In: 0.7500 + sea, Out: 0.250 + sea},
				{In: 1.0000 + sea, Out: 0.500 + sea},
				{In: 2.0000 + sea, Out: 0.500 + sea},
			}},

		// Higher-frequency noise that carves passes through the ranges.
		{name: "baseContinent.carver", kind: kindPerlin, seedOffset: 1,
			frequency: contFreq * 4.34375, persistence: 0.5, lacunarity: cfg.ContinentLacunarity,
			octaves: 11, quality: noise.QualityStandard},

		// Keep the carver near 1.0 so it only occasionally wins the min.
		{name: "baseContinent.carverScaled", kind: kindScaleBias, inputs: []string{"baseContinent.carver"},
			scale: 0.375, bias: 0.625},

		{name: "baseContinent.carved", kind: kindMin,
			inputs: []string{"baseContinent.carverScaled", "baseContinent.ranges"}},

		{name: "baseContinent.clamped", kind: kindClamp, inputs: []string{"baseContinent.carved"},
			lower: -1.0, upper: 1.0},

		{name: "baseContinentDef", kind: kindCache, inputs: []string{"baseContinent.clamped"}},

		// ------------------------------------------------------------------
		// Continent definition: warp the base continents into lumpier
		// terrain with cliffs and rifts.
		// ------------------------------------------------------------------

		{name: "continent.turb0", kind: kindTurbulence, inputs: []string{"baseContinentDef"},
			seedOffset: 10, frequency: contFreq * 15.25, power: contFreq / 113.75, roughness: 13},

		{name: "continent.turb1", kind: kindTurbulence, inputs: []string{"continent.turb0"},
			seedOffset: 11, frequency: contFreq * 47.25, power: contFreq / 433.75, roughness: 12},

		{name: "continent.turb2", kind: kindTurbulence, inputs: []string{"continent.turb1"},
			seedOffset: 12, frequency: contFreq * 95.25, power: contFreq / 1019.75, roughness: 11},

		// Only warp above sea level: underwater and coastal areas keep the
		// unwarped base definition so coastlines stay plausible.
		{name: "continent.select", kind: kindSelect,
			inputs: []string{"baseContinentDef", "continent.turb2", "baseContinentDef"},
			lower:  sea - 0.0375, upper: sea + 1000.0375, falloff: 0.0625},

		{name: "continentDef", kind: kindCache, inputs: []string{"continent.select"}},

		// ------------------------------------------------------------------
		// Terrain type definition: where the rough terrain goes. Output near
		// -1 is the smoothest terrain (plains, underwater), near +1 the
		// roughest (mountains).
		// ------------------------------------------------------------------

		// A slight warp lets rough terrain appear in the ocean too, giving
		// rocky islands and fjords.
		{name: "terrainType.turb", kind: kindTurbulence, inputs: []string{"continentDef"},
			seedOffset: 20, frequency: contFreq * 18.125,
			power: contFreq / 20.59375 * cfg.TerrainOffset, roughness: 3},

		// Sharpen near sea level and flatten the slope above it, shrinking
		// the area where rough terrain appears.
		{name: "terrainType.terrace", kind: kindTerrace, inputs: []string{"terrainType.turb"},
			terrace: []float64{-1.00, shelf + sea/2.0, 1.00}},

		{name: "terrainTypeDef", kind: kindCache, inputs: []string{"terrainType.terrace"}},

		// ------------------------------------------------------------------
		// Mountain base definition: ridges and river valleys that the other
		// mountain subgroups build on.
		// ------------------------------------------------------------------

		{name: "mountainBase.ridges", kind: kindRidgedMulti, seedOffset: 30,
			frequency: 1723.0, lacunarity: cfg.MountainLacunarity, octaves: 4,
			quality: noise.QualityStandard},

		// Keep the ridges low; actual mountain bulk is added later.
		{name: "mountainBase.ridgesScaled", kind: kindScaleBias, inputs: []string{"mountainBase.ridges"},
			scale: 0.5, bias: 0.375},

		// One-octave ridges at a much lower frequency become the valleys.
		{name: "mountainBase.valleys", kind: kindRidgedMulti, seedOffset: 31,
			frequency: 367.0, lacunarity: cfg.MountainLacunarity, octaves: 1,
			quality: noise.QualityBest},

		// Negative scale turns the ridges into valleys and stretches the
		// narrow single-octave range.
		{name: "mountainBase.valleysScaled", kind: kindScaleBias, inputs: []string{"mountainBase.valleys"},
			scale: -2.0, bias: -0.5},

		{name: "mountainBase.lowFlat", kind: kindConstant, value: -1.0},

		// Valleys as the control: low areas go flat, high areas keep ridges.
		{name: "mountainBase.blend", kind: kindBlend,
			inputs: []string{"mountainBase.lowFlat", "mountainBase.ridgesScaled", "mountainBase.valleysScaled"}},

		{name: "mountainBase.turb0", kind: kindTurbulence, inputs: []string{"mountainBase.blend"},
			seedOffset: 32, frequency: 1337.0, power: 1.0 / 6730.0 * cfg.MountainsTwist, roughness: 4},

		{name: "mountainBase.turb1", kind: kindTurbulence, inputs: []string{"mountainBase.turb0"},
			seedOffset: 33, frequency: 21221.0, power: 1.0 / 120157.0 * cfg.MountainsTwist, roughness: 6},

		{name: "mountainBaseDef", kind: kindCache, inputs: []string{"mountainBase.turb1"}},

		// ------------------------------------------------------------------
		// High mountainous terrain: the individual mountains within the
		// ridges.
		// ------------------------------------------------------------------

		{name: "mountainHigh.basis0", kind: kindRidgedMulti, seedOffset: 40,
			frequency: 2371.0, lacunarity: cfg.MountainLacunarity, octaves: 3,
			quality: noise.QualityBest},

		{name: "mountainHigh.basis1", kind: kindRidgedMulti, seedOffset: 41,
			frequency: 2341.0, lacunarity: cfg.MountainLacunarity, octaves: 3,
			quality: noise.QualityBest},

		// Taking the max trades valleys for more mountains.
		{name: "mountainHigh.max", kind: kindMax,
			inputs: []string{"mountainHigh.basis0", "mountainHigh.basis1"}},

		{name: "mountainHigh.turb", kind: kindTurbulence, inputs: []string{"mountainHigh.max"},
			seedOffset: 42, frequency: 31511.0, power: 1.0 / 180371.0 * cfg.MountainsTwist, roughness: 4},

		{name: "mountainousHigh", kind: kindCache, inputs: []string{"mountainHigh.turb"}},

		// ------------------------------------------------------------------
		// Low mountainous terrain: what fills the river valleys.
		// ------------------------------------------------------------------

		{name: "mountainLow.basis0", kind: kindRidgedMulti, seedOffset: 50,
			frequency: 1381.0, lacunarity: cfg.MountainLacunarity, octaves: 8,
			quality: noise.QualityBest},

		{name: "mountainLow.basis1", kind: kindRidgedMulti, seedOffset: 51,
			frequency: 1427.0, lacunarity: cfg.MountainLacunarity, octaves: 8,
			quality: noise.QualityBest},

		// Multiplying two ridged fields gives cracks where both are
		// negative, flats where the signs differ and ridges where both are
		// positive.
		{name: "mountainLow.mul", kind: kindMultiply,
			inputs: []string{"mountainLow.basis0", "mountainLow.basis1"}},

		{name: "mountainousLow", kind: kindCache, inputs: []string{"mountainLow.mul"}},

		// ------------------------------------------------------------------
		// Mountainous terrain: combine the high and low mountain layers.
		// ------------------------------------------------------------------

		// Flatten the valley floor terrain and sink it towards -1.
		{name: "mountains.lowScaled", kind: kindScaleBias, inputs: []string{"mountainousLow"},
			scale: 0.03125, bias: -0.96875},

		{name: "mountains.highScaled", kind: kindScaleBias, inputs: []string{"mountainousHigh"},
			scale: 0.25, bias: 0.25},

		{name: "mountains.highAdded", kind: kindAdd,
			inputs: []string{"mountains.highScaled", "mountainBaseDef"}},

		// High mountain terrain only above the base ridges; valley floors
		// get the flattened low terrain.
		{name: "mountains.select", kind: kindSelect,
			inputs: []string{"mountains.lowScaled", "mountains.highAdded", "mountainBaseDef"},
			lower:  -0.5, upper: 999.5, falloff: 0.5},

		{name: "mountains.scaled", kind: kindScaleBias, inputs: []string{"mountains.select"},
			scale: 0.8, bias: 0.0},

		// Steeper towards the peaks, as if ground out by glaciers.
		{name: "mountains.glaciated", kind: kindExponent, inputs: []string{"mountains.scaled"},
			exponent: cfg.MountainGlaciation},

		{name: "mountainousTerrain", kind: kindCache, inputs: []string{"mountains.glaciated"}},

		// ------------------------------------------------------------------
		// Hilly terrain.
		// ------------------------------------------------------------------

		{name: "hills.billow", kind: kindBillow, seedOffset: 60,
			frequency: 1663.0, persistence: 0.5, lacunarity: cfg.HillsLacunarity,
			octaves: 6, quality: noise.QualityBest},

		{name: "hills.billowScaled", kind: kindScaleBias, inputs: []string{"hills.billow"},
			scale: 0.5, bias: 0.5},

		{name: "hills.valleys", kind: kindRidgedMulti, seedOffset: 61,
			frequency: 367.5, lacunarity: cfg.HillsLacunarity, octaves: 1,
			quality: noise.QualityBest},

		{name: "hills.valleysScaled", kind: kindScaleBias, inputs: []string{"hills.valleys"},
			scale: -2.0, bias: -0.5},

		{name: "hills.lowFlat", kind: kindConstant, value: -1.0},

		// Unlike the mountain blend, the hills themselves are the control:
		// valleys cut where the hills are high.
		{name: "hills.blend", kind: kindBlend,
			inputs: []string{"hills.lowFlat", "hills.valleysScaled", "hills.billowScaled"}},

		{name: "hills.scaled", kind: kindScaleBias, inputs: []string{"hills.blend"},
			scale: 0.75, bias: -0.25},

		{name: "hills.steepened", kind: kindExponent, inputs: []string{"hills.scaled"},
			exponent: 1.375},

		{name: "hills.turb0", kind: kindTurbulence, inputs: []string{"hills.steepened"},
			seedOffset: 62, frequency: 1531.0, power: 1.0 / 16921.0 * cfg.HillsTwist, roughness: 4},

		{name: "hills.turb1", kind: kindTurbulence, inputs: []string{"hills.turb0"},
			seedOffset: 63, frequency: 21617.0, power: 1.0 / 117529.0 * cfg.HillsTwist, roughness: 6},

		{name: "hillyTerrain", kind: kindCache, inputs: []string{"hills.turb1"}},

		// ------------------------------------------------------------------
		// Plains terrain. Flattened so hard later that it only has to look
		// interesting, not plausible.
		// ------------------------------------------------------------------

		{name: "plains.basis0", kind: kindBillow, seedOffset: 70,
			frequency: 1097.5, persistence: 0.5, lacunarity: cfg.PlainsLacunarity,
			octaves: 8, quality: noise.QualityBest},

		{name: "plains.positive0", kind: kindScaleBias, inputs: []string{"plains.basis0"},
			scale: 0.5, bias: 0.5},

		{name: "plains.basis1", kind: kindBillow, seedOffset: 71,
			frequency: 1319.5, persistence: 0.5, lacunarity: cfg.PlainsLacunarity,
			octaves: 8, quality: noise.QualityBest},

		{name: "plains.positive1", kind: kindScaleBias, inputs: []string{"plains.basis1"},
			scale: 0.5, bias: 0.5},

		{name: "plains.mul", kind: kindMultiply,
			inputs: []string{"plains.positive0", "plains.positive1"}},

		// Back from [0,1] to [-1,1].
		{name: "plains.rescaled", kind: kindScaleBias, inputs: []string{"plains.mul"},
			scale: 2.0, bias: -1.0},

		{name: "plainsTerrain", kind: kindCache, inputs: []string{"plains.rescaled"}},

		// ------------------------------------------------------------------
		// Badlands sand: smooth single-octave dunes plus polygonal pit
		// detail.
		// ------------------------------------------------------------------

		{name: "badlandsSand.dunes", kind: kindRidgedMulti, seedOffset: 80,
			frequency: 6163.5, lacunarity: cfg.BadlandsLacunarity, octaves: 1,
			quality: noise.QualityBest},

		{name: "badlandsSand.dunesScaled", kind: kindScaleBias, inputs: []string{"badlandsSand.dunes"},
			scale: 0.875, bias: 0.0},

		// Distance-mode cells give small pits whose edges join neighboring
		// pits.
		{name: "badlandsSand.detail", kind: kindVoronoi, seedOffset: 81,
			frequency: 16183.25, displacement: 0.0, distance: true},

		{name: "badlandsSand.detailScaled", kind: kindScaleBias, inputs: []string{"badlandsSand.detail"},
			scale: 0.25, bias: 0.25},

		{name: "badlandsSand.combined", kind: kindAdd,
			inputs: []string{"badlandsSand.dunesScaled", "badlandsSand.detailScaled"}},

		{name: "badlandsSand", kind: kindCache, inputs: []string{"badlandsSand.combined"}},

		// ------------------------------------------------------------------
		// Badlands cliffs.
		// ------------------------------------------------------------------

		{name: "badlandsCliffs.basis", kind: kindPerlin, seedOffset: 90,
			frequency: contFreq * 839.0, persistence: 0.5, lacunarity: cfg.BadlandsLacunarity,
			octaves: 6, quality: noise.QualityStandard},

		// Shallow, then sharply steeper, then flat again: desert cliffs.
		{name: "badlandsCliffs.curve", kind: kindCurve, inputs: []string{"badlandsCliffs.basis"},
			curve: []noise.ControlPoint{
				{In: -2.0000, Out: -2.0000},
				{In: -1.0000, Out: -1.2500},
				{In: 0.0000, Out: -0.7500},
				{In: 0.5000, Out: -0.2500},
				{In: 0.6250, Out: 0.8750},
				{In: 0.7500, Out: 1.0000},
				{In: 2.0000, Out: 1.2500},
			}},

		// Clamping flattens the cliff tops.
		{name: "badlandsCliffs.clamped", kind: kindClamp, inputs: []string{"badlandsCliffs.curve"},
			lower: -999.125, upper: 0.875},

		{name: "badlandsCliffs.terraced", kind: kindTerrace, inputs: []string{"badlandsCliffs.clamped"},
			terrace: []float64{-1.0000, -0.8750, -0.7500, -0.5000, 0.0000, 1.0000}},

		{name: "badlandsCliffs.turb0", kind: kindTurbulence, inputs: []string{"badlandsCliffs.terraced"},
			seedOffset: 91, frequency: 16111.0, power: 1.0 / 141539.0 * cfg.BadlandsTwist, roughness: 3},

		{name: "badlandsCliffs.turb1", kind: kindTurbulence, inputs: []string{"badlandsCliffs.turb0"},
			seedOffset: 92, frequency: 36107.0, power: 1.0 / 211543.0 * cfg.BadlandsTwist, roughness: 3},

		{name: "badlandsCliffs", kind: kindCache, inputs: []string{"badlandsCliffs.turb1"}},

		// ------------------------------------------------------------------
		// Badlands terrain: sand in the low areas, cliffs above. The sand
		// sits slightly higher than the cliff base so it wins at the bottom.
		// ------------------------------------------------------------------

		{name: "badlands.sandScaled", kind: kindScaleBias, inputs: []string{"badlandsSand"},
			scale: 0.25, bias: -0.75},

		{name: "badlands.max", kind: kindMax,
			inputs: []string{"badlandsCliffs", "badlands.sandScaled"}},

		{name: "badlandsTerrain", kind: kindCache, inputs: []string{"badlands.max"}},

		// ------------------------------------------------------------------
		// River positions. Ridges inverted through a curve become river
		// beds; a low-frequency field for the large, deep rivers and a
		// higher-frequency one for small, shallow rivers.
		// ------------------------------------------------------------------

		{name: "rivers.large", kind: kindRidgedMulti, seedOffset: 100,
			frequency: 18.75, lacunarity: cfg.ContinentLacunarity, octaves: 1,
			quality: noise.QualityBest},

		{name: "rivers.largeCurve", kind: kindCurve, inputs: []string{"rivers.large"},
			curve: []noise.ControlPoint{
				{In: -2.000, Out: 2.000},
				{In: -1.000, Out: 1.000},
				{In: -0.125, Out: 0.875},
				{In: 0.000, Out: -1.000},
				{In: 1.000, Out: -1.500},
				{In: 2.000, Out: -2.000},
			}},

		{name: "rivers.small", kind: kindRidgedMulti, seedOffset: 101,
			frequency: 43.25, lacunarity: cfg.ContinentLacunarity, octaves: 1,
			quality: noise.QualityBest},

		{name: "rivers.smallCurve", kind: kindCurve, inputs: []string{"rivers.small"},
			curve: []noise.ControlPoint{
				{In: -2.000, Out: 2.0000},
				{In: -1.000, Out: 1.5000},
				{In: -0.125, Out: 1.4375},
				{In: 0.000, Out: 0.5000},
				{In: 1.000, Out: 0.2500},
				{In: 2.000, Out: 0.0000},
			}},

		// The min lets the small rivers cut into the large ones.
		{name: "rivers.combined", kind: kindMin,
			inputs: []string{"rivers.largeCurve", "rivers.smallCurve"}},

		{name: "rivers.turb", kind: kindTurbulence, inputs: []string{"rivers.combined"},
			seedOffset: 102, frequency: 9.25, power: 1.0 / 57.75, roughness: 6},

		{name: "riverPositions", kind: kindCache, inputs: []string{"rivers.turb"}},

		// ------------------------------------------------------------------
		// Scaled mountainous terrain: into planetary elevation units, kept
		// almost always positive so nothing negative gets stamped into the
		// continents, with per-peak height modulation.
		// ------------------------------------------------------------------

		{name: "scaledMountains.base", kind: kindScaleBias, inputs: []string{"mountainousTerrain"},
			scale: 0.125, bias: 0.125},

		{name: "scaledMountains.peaks", kind: kindPerlin, seedOffset: 110,
			frequency: 14.5, persistence: 0.5, lacunarity: cfg.MountainLacunarity,
			octaves: 6, quality: noise.QualityStandard},

		// A few high values, many low ones: a handful of standout peaks.
		{name: "scaledMountains.peaksExp", kind: kindExponent, inputs: []string{"scaledMountains.peaks"},
			exponent: 1.25},

		{name: "scaledMountains.peaksScaled", kind: kindScaleBias, inputs: []string{"scaledMountains.peaksExp"},
			scale: 0.25, bias: 1.0},

		{name: "scaledMountains.mul", kind: kindMultiply,
			inputs: []string{"scaledMountains.base", "scaledMountains.peaksScaled"}},

		{name: "scaledMountainousTerrain", kind: kindCache, inputs: []string{"scaledMountains.mul"}},

		// ------------------------------------------------------------------
		// Scaled hilly terrain: half the mountain scaling, same idea.
		// ------------------------------------------------------------------

		{name: "scaledHills.base", kind: kindScaleBias, inputs: []string{"hillyTerrain"},
			scale: 0.0625, bias: 0.0625},

		{name: "scaledHills.tops", kind: kindPerlin, seedOffset: 120,
			frequency: 13.5, persistence: 0.5, lacunarity: cfg.HillsLacunarity,
			octaves: 6, quality: noise.QualityStandard},

		{name: "scaledHills.topsExp", kind: kindExponent, inputs: []string{"scaledHills.tops"},
			exponent: 1.25},

		{name: "scaledHills.topsScaled", kind: kindScaleBias, inputs: []string{"scaledHills.topsExp"},
			scale: 0.5, bias: 1.5},

		{name: "scaledHills.mul", kind: kindMultiply,
			inputs: []string{"scaledHills.base", "scaledHills.topsScaled"}},

		{name: "scaledHillyTerrain", kind: kindCache, inputs: []string{"scaledHills.mul"}},

		// ------------------------------------------------------------------
		// Scaled plains terrain: flattened almost completely.
		// ------------------------------------------------------------------

		{name: "scaledPlains.scaled", kind: kindScaleBias, inputs: []string{"plainsTerrain"},
			scale: 0.00390625, bias: 0.0078125},

		{name: "scaledPlainsTerrain", kind: kindCache, inputs: []string{"scaledPlains.scaled"}},

		// ------------------------------------------------------------------
		// Scaled badlands terrain.
		// ------------------------------------------------------------------

		{name: "scaledBadlands.scaled", kind: kindScaleBias, inputs: []string{"badlandsTerrain"},
			scale: 0.0625, bias: 0.0625},

		{name: "scaledBadlandsTerrain", kind: kindCache, inputs: []string{"scaledBadlands.scaled"}},

		// ------------------------------------------------------------------
		// Continental shelf: a terrace at the shelf level plus oceanic
		// trenches along inverted ridges.
		// ------------------------------------------------------------------

		// The extra terrace near -1 becomes the ocean bottom.
		{name: "shelf.terrace", kind: kindTerrace, inputs: []string{"continentDef"},
			terrace: []float64{-1.0, -0.75, shelf, 1.0}},

		{name: "shelf.trenchBasis", kind: kindRidgedMulti, seedOffset: 130,
			frequency: contFreq * 4.375, lacunarity: cfg.ContinentLacunarity,
			octaves: 16, quality: noise.QualityBest},

		// Invert the ridges into trenches and shrink them to planetary
		// units.
		{name: "shelf.trench", kind: kindScaleBias, inputs: []string{"shelf.trenchBasis"},
			scale: -0.125, bias: -0.125},

		// This subgroup only cares about the oceans.
		{name: "shelf.clamped", kind: kindClamp, inputs: []string{"shelf.terrace"},
			lower: -0.75, upper: sea},

		{name: "shelf.combined", kind: kindAdd,
			inputs: []string{"shelf.trench", "shelf.clamped"}},

		{name: "continentalShelf", kind: kindCache, inputs: []string{"shelf.combined"}},

		// ------------------------------------------------------------------
		// Base continent elevations: continents in planetary units, with the
		// shelves applied below the shelf level.
		// ------------------------------------------------------------------

		{name: "baseElev.scaled", kind: kindScaleBias, inputs: []string{"continentDef"},
			scale: heightScale, bias: 0.0},

		{name: "baseElev.select", kind: kindSelect,
			inputs: []string{"baseElev.scaled", "continentalShelf", "continentDef"},
			lower:  shelf - 1000.0, upper: shelf, falloff: 0.03125},

		{name: "baseContinentElev", kind: kindCache, inputs: []string{"baseElev.select"}},

		// ------------------------------------------------------------------
		// Compositing: stamp each terrain layer onto the continents in
		// order of increasing roughness.
		// ------------------------------------------------------------------

		{name: "withPlains.add", kind: kindAdd,
			inputs: []string{"baseContinentElev", "scaledPlainsTerrain"}},

		{name: "continentsWithPlains", kind: kindCache, inputs: []string{"withPlains.add"}},

		{name: "withHills.add", kind: kindAdd,
			inputs: []string{"baseContinentElev", "scaledHillyTerrain"}},

		// Hills only where the terrain-type field is rough enough.
		{name: "withHills.select", kind: kindSelect,
			inputs: []string{"continentsWithPlains", "withHills.add", "terrainTypeDef"},
			lower:  1.0 - cfg.HillsAmount, upper: 1001.0 - cfg.HillsAmount, falloff: 0.25},

		{name: "continentsWithHills", kind: kindCache, inputs: []string{"withHills.select"}},

		{name: "withMountains.add", kind: kindAdd,
			inputs: []string{"baseContinentElev", "scaledMountainousTerrain"}},

		// Higher continents carry higher mountains.
		{name: "withMountains.heightBoost", kind: kindCurve, inputs: []string{"continentDef"},
			curve: []noise.ControlPoint{
				{In: -1.0, Out: -0.0625},
				{In: 0.0, Out: 0.0000},
				{In: 1.0 - cfg.MountainsAmount, Out: 0.0625},
				{In: 1.0, Out: 0.2500},
			}},

		{name: "withMountains.boosted", kind: kindAdd,
			inputs: []string{"withMountains.add", "withMountains.heightBoost"}},

		{name: "withMountains.select", kind: kindSelect,
			inputs: []string{"continentsWithHills", "withMountains.boosted", "terrainTypeDef"},
			lower:  1.0 - cfg.MountainsAmount, upper: 1001.0 - cfg.MountainsAmount, falloff: 0.25},

		{name: "continentsWithMountains", kind: kindCache, inputs: []string{"withMountains.select"}},

		// Badlands go wherever this low-octave field says, blended over a
		// wide transition.
		{name: "withBadlands.positions", kind: kindPerlin, seedOffset: 140,
			frequency: 16.5, persistence: 0.5, lacunarity: cfg.ContinentLacunarity,
			octaves: 2, quality: noise.QualityStandard},

		{name: "withBadlands.add", kind: kindAdd,
			inputs: []string{"baseContinentElev", "scaledBadlandsTerrain"}},

		{name: "withBadlands.select", kind: kindSelect,
			inputs: []string{"continentsWithMountains", "withBadlands.add", "withBadlands.positions"},
			lower:  1.0 - cfg.BadlandsAmount, upper: 1001.0 - cfg.BadlandsAmount, falloff: 0.25},

		// Max makes the badlands poke out of the surrounding terrain, and
		// as a side effect keeps them off the mountains.
		{name: "withBadlands.max", kind: kindMax,
			inputs: []string{"continentsWithMountains", "withBadlands.select"}},

		{name: "continentsWithBadlands", kind: kindCache, inputs: []string{"withBadlands.max"}},

		// Rivers carve downward only: the scaled field is never positive.
		{name: "withRivers.scaled", kind: kindScaleBias, inputs: []string{"riverPositions"},
			scale: cfg.RiverDepth / 2.0, bias: -cfg.RiverDepth / 2.0},

		{name: "withRivers.add", kind: kindAdd,
			inputs: []string{"continentsWithBadlands", "withRivers.scaled"}},

		// Deep rivers near sea level, shallower ones in high terrain.
		{name: "withRivers.select", kind: kindSelect,
			inputs: []string{"continentsWithBadlands", "withRivers.add", "continentsWithBadlands"},
			lower:  sea, upper: heightScale + sea, falloff: heightScale - sea},

		{name: "continentsWithRivers", kind: kindCache, inputs: []string{"withRivers.select"}},

		// ------------------------------------------------------------------
		// Final planet: bound the composited elevation to planetary units.
		// ------------------------------------------------------------------

		{name: "planet.unscaled", kind: kindCache, inputs: []string{"continentsWithRivers"}},

		{name: "planet", kind: kindClamp, inputs: []string{"planet.unscaled"},
			lower: -1.0, upper: 1.0},
	}
}
