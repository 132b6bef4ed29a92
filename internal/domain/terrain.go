package domain

import "github.com/maximpopov11/pokeworld/internal/core/types"

// TerrainKind identifies a row of the terrain catalog.
type TerrainKind uint8

const (
	TerrainNone TerrainKind = iota
	TerrainBorder
	TerrainClearing
	TerrainGrass
	TerrainForest
	TerrainMountain
	TerrainLake
	TerrainPath
	TerrainCenter
	TerrainMart

	terrainCount
)

// TerrainInfo is the immutable description of one terrain kind.
type TerrainInfo struct {
	Kind      TerrainKind
	Name      string
	Glyph     types.Glyph
	Encounter bool
	// PathCost is the generic cost used by corridor carving.
	PathCost int
	// Costs holds the per mover class traversal cost.
	Costs [moverClassCount]int
}

const inf = Infinite

var terrainCatalog = [terrainCount]TerrainInfo{
	TerrainNone: {
		Kind: TerrainNone, Name: "none",
		Glyph:    types.MakeGlyph(types.ColorBlack, '_'),
		PathCost: 0, Costs: [moverClassCount]int{0, 0, 0},
	},
	TerrainBorder: {
		Kind: TerrainBorder, Name: "border",
		Glyph:    types.MakeGlyph(types.ColorWhite, '%'),
		PathCost: inf, Costs: [moverClassCount]int{inf, inf, inf},
	},
	TerrainClearing: {
		Kind: TerrainClearing, Name: "clearing",
		Glyph:    types.MakeGlyph(types.ColorYellow, '.'),
		PathCost: 5, Costs: [moverClassCount]int{10, 10, 5},
	},
	TerrainGrass: {
		Kind: TerrainGrass, Name: "grass",
		Glyph:     types.MakeGlyph(types.ColorGreen, ','),
		Encounter: true,
		PathCost:  10, Costs: [moverClassCount]int{15, 15, 5},
	},
	TerrainForest: {
		Kind: TerrainForest, Name: "forest",
		Glyph:    types.MakeGlyph(types.ColorGreen, '^'),
		PathCost: 100, Costs: [moverClassCount]int{inf, inf, 10},
	},
	TerrainMountain: {
		Kind: TerrainMountain, Name: "mountain",
		Glyph:    types.MakeGlyph(types.ColorWhite, '%'),
		PathCost: 150, Costs: [moverClassCount]int{inf, inf, 10},
	},
	TerrainLake: {
		Kind: TerrainLake, Name: "lake",
		Glyph:    types.MakeGlyph(types.ColorBlue, '~'),
		PathCost: 200, Costs: [moverClassCount]int{inf, inf, inf},
	},
	TerrainPath: {
		Kind: TerrainPath, Name: "path",
		Glyph:    types.MakeGlyph(types.ColorYellow, '#'),
		PathCost: 0, Costs: [moverClassCount]int{5, 5, 5},
	},
	TerrainCenter: {
		Kind: TerrainCenter, Name: "center",
		Glyph:    types.MakeGlyph(types.ColorMagenta, 'C'),
		PathCost: inf, Costs: [moverClassCount]int{5, inf, inf},
	},
	TerrainMart: {
		Kind: TerrainMart, Name: "mart",
		Glyph:    types.MakeGlyph(types.ColorMagenta, 'M'),
		PathCost: inf, Costs: [moverClassCount]int{5, inf, inf},
	},
}

// Info returns the catalog row. Unknown kinds get the "none" row.
func (k TerrainKind) Info() TerrainInfo {
	if k >= terrainCount {
		return terrainCatalog[TerrainNone]
	}
	return terrainCatalog[k]
}

// Cost returns the traversal cost of k for a mover class.
func (k TerrainKind) Cost(class MoverClass) int {
	if class >= moverClassCount {
		return Infinite
	}
	return k.Info().Costs[class]
}

// Passable reports whether the class can ever enter k.
func (k TerrainKind) Passable(class MoverClass) bool {
	return k.Cost(class) != Infinite
}

// IsBuilding reports whether k is the center or the mart.
func (k TerrainKind) IsBuilding() bool {
	return k == TerrainCenter || k == TerrainMart
}

// IsProtected reports whether building placement must leave k alone.
func (k TerrainKind) IsProtected() bool {
	return k == TerrainBorder || k == TerrainPath || k.IsBuilding()
}

func (k TerrainKind) String() string {
	return k.Info().Name
}

// SeedableTerrains are the kinds planted before region growth, with their
// inclusive seed count ranges.
var SeedableTerrains = []struct {
	Kind     TerrainKind
	Min, Max int
}{
	{TerrainGrass, 2, 6},
	{TerrainClearing, 2, 6},
	{TerrainForest, 0, 4},
	{TerrainMountain, 0, 3},
	{TerrainLake, 0, 2},
}
