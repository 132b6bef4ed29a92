package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maximpopov11/pokeworld/internal/domain"
	"github.com/maximpopov11/pokeworld/pkg/utils"
)

func TestComputeDistances_SourceIsZero(t *testing.T) {
	tile := newTestTile(domain.TerrainClearing)
	src := domain.Position{X: 40, Y: 10}

	for _, class := range domain.ChaserClasses {
		t.Run(class.String(), func(t *testing.T) {
			field := ComputeDistances(tile, src, class)
			require.True(t, field.Valid())
			assert.Equal(t, 0, field.At(src))
			assert.Equal(t, domain.Infinite, field.At(domain.Position{X: 0, Y: 0}), "border is never reachable")
		})
	}
}

func TestComputeDistances_OpenField(t *testing.T) {
	tile := newTestTile(domain.TerrainClearing)
	src := domain.Position{X: 40, Y: 10}

	// Clearing costs 10 for rivals, so the distance is 10 per 8-connected step.
	field := ComputeDistances(tile, src, domain.MoverRival)
	for _, p := range []domain.Position{{X: 41, Y: 10}, {X: 45, Y: 10}, {X: 45, Y: 15}, {X: 1, Y: 1}, {X: 78, Y: 19}} {
		assert.Equal(t, 10*src.ChebyshevTo(p), field.At(p), "distance at %v", p)
	}

	// Hikers pay 5.
	hiker := ComputeDistances(tile, src, domain.MoverHiker)
	assert.Equal(t, 5*39, hiker.At(domain.Position{X: 1, Y: 1}))
}

func TestComputeDistances_EnclosedCellUnreachable(t *testing.T) {
	tile := newTestTile(domain.TerrainClearing)
	pocket := domain.Position{X: 20, Y: 10}
	for _, d := range domain.Directions {
		tile.SetTerrain(pocket.Step(d), domain.TerrainLake)
	}

	for _, class := range domain.ChaserClasses {
		field := ComputeDistances(tile, domain.Position{X: 60, Y: 10}, class)
		assert.False(t, field.Reachable(pocket), "%s reached an enclosed cell", class)
		assert.Equal(t, domain.Infinite, field.At(pocket))
	}
}

func TestComputeDistances_ImpassableSourceStillSeeded(t *testing.T) {
	tile := newTestTile(domain.TerrainClearing)
	src := domain.Position{X: 30, Y: 10}
	tile.SetTerrain(src, domain.TerrainCenter)

	field := ComputeDistances(tile, src, domain.MoverRival)
	assert.Equal(t, 0, field.At(src))
	assert.Equal(t, 10, field.At(src.Step(domain.East)))
}

func TestComputeDistances_ForestSplitsClasses(t *testing.T) {
	tile := newTestTile(domain.TerrainClearing)
	// A forest wall across the whole interior at x=40.
	for y := 1; y < domain.TileHeight-1; y++ {
		tile.SetTerrain(domain.Position{X: 40, Y: y}, domain.TerrainForest)
	}
	src := domain.Position{X: 20, Y: 10}
	far := domain.Position{X: 60, Y: 10}

	assert.False(t, ComputeDistances(tile, src, domain.MoverRival).Reachable(far))
	assert.True(t, ComputeDistances(tile, src, domain.MoverHiker).Reachable(far))
}

// Every reachable cell must satisfy the shortest path equation:
// dist[c] = min over neighbours n of dist[n] + cost(c).
func TestComputeDistances_ShortestPathEquation(t *testing.T) {
	rng := utils.NewRand(7)
	kinds := []domain.TerrainKind{
		domain.TerrainClearing, domain.TerrainGrass, domain.TerrainForest,
		domain.TerrainMountain, domain.TerrainLake, domain.TerrainPath,
	}

	tile := newTestTile(domain.TerrainClearing)
	for y := 1; y < domain.TileHeight-1; y++ {
		for x := 1; x < domain.TileWidth-1; x++ {
			tile.SetTerrain(domain.Position{X: x, Y: y}, kinds[rng.Intn(len(kinds))])
		}
	}
	src := domain.Position{X: 40, Y: 10}
	tile.SetTerrain(src, domain.TerrainPath)

	for _, class := range domain.ChaserClasses {
		field := ComputeDistances(tile, src, class)
		for y := 0; y < domain.TileHeight; y++ {
			for x := 0; x < domain.TileWidth; x++ {
				p := domain.Position{X: x, Y: y}
				if p == src || !field.Reachable(p) {
					continue
				}
				best := domain.Infinite
				for _, d := range domain.Directions {
					n := p.Step(d)
					if nd := field.At(n); nd != domain.Infinite && nd+tile.CostAt(p, class) < best {
						best = nd + tile.CostAt(p, class)
					}
				}
				require.Equal(t, best, field.At(p), "%s distance at %v", class, p)
				require.GreaterOrEqual(t, field.At(p), 0)
			}
		}
	}
}

func TestRecomputeChaserFields(t *testing.T) {
	tile := newTestTile(domain.TerrainClearing)
	RecomputeChaserFields(tile, domain.Position{X: 10, Y: 10})

	for _, class := range domain.ChaserClasses {
		require.True(t, tile.Field(class).Valid())
		assert.Equal(t, domain.Position{X: 10, Y: 10}, tile.Field(class).Source)
	}

	tile.InvalidateFields()
	for _, class := range domain.ChaserClasses {
		assert.False(t, tile.Field(class).Valid())
		assert.Equal(t, domain.Infinite, tile.Field(class).At(domain.Position{X: 10, Y: 10}))
	}
}

func BenchmarkComputeDistances(b *testing.B) {
	tile := newTestTile(domain.TerrainGrass)
	for i := 0; i < b.N; i++ {
		ComputeDistances(tile, domain.Position{X: 40, Y: 10}, domain.MoverRival)
	}
}
