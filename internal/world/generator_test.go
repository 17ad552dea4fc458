package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-rpg/internal/config"
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
	_ "github.com/annel0/voxel-rpg/internal/world/block/implementations"
)

func newTestGenerator(seed int64) *WorldGenerator {
	cfg := config.Default()
	cfg.World.Seed = seed
	return NewWorldGenerator(seed, cfg.World, cfg.Generation)
}

func TestGeneratorDeterminism(t *testing.T) {
	coords := vec.Vec3{X: 3, Y: 1, Z: -2}

	chunkA := NewChunk(coords)
	newTestGenerator(42).GenerateChunk(chunkA)

	chunkB := NewChunk(coords)
	newTestGenerator(42).GenerateChunk(chunkB)

	assert.Equal(t, chunkA.Snapshot(), chunkB.Snapshot(),
		"Один сид и координаты должны давать одинаковый чанк")
}

func TestGeneratorDifferentSeeds(t *testing.T) {
	coords := vec.Vec3{X: 0, Y: 2, Z: 0}

	chunkA := NewChunk(coords)
	newTestGenerator(1).GenerateChunk(chunkA)

	chunkB := NewChunk(coords)
	newTestGenerator(2).GenerateChunk(chunkB)

	assert.NotEqual(t, chunkA.Snapshot(), chunkB.Snapshot(),
		"Разные сиды должны давать разный рельеф")
}

func TestSurfaceHeightWithinBounds(t *testing.T) {
	gen := newTestGenerator(7)
	cfg := config.Default()

	for x := -64; x <= 64; x += 8 {
		for z := -64; z <= 64; z += 8 {
			h := gen.SurfaceHeight(x, z)
			assert.GreaterOrEqual(t, h, cfg.World.MinHeight,
				"Высота поверхности не должна опускаться ниже дна мира")
			assert.Less(t, h, cfg.World.MaxHeight,
				"Высота поверхности не должна превышать потолок мира")
		}
	}
}

func TestGeneratedColumnStructure(t *testing.T) {
	gen := newTestGenerator(42)

	// Чанк на уровне рельефа
	coords := vec.Vec3{X: 0, Y: 1, Z: 0}
	chunk := NewChunk(coords)
	gen.GenerateChunk(chunk)

	surface := gen.SurfaceHeight(4, 4)
	for wy := 16; wy < 32; wy++ {
		local := vec.Vec3{X: 4, Y: wy - 16, Z: 4}
		id := chunk.GetBlockLocal(local)
		if wy < surface-8 {
			// Глубина: камень либо руда, заместившая камень
			assert.Contains(t,
				[]block.BlockID{block.StoneBlockID, block.CoalOreBlockID, block.IronOreBlockID, block.GoldOreBlockID},
				id, "Глубокие блоки должны быть камнем или рудой (y=%d)", wy)
		}
	}
}

func TestOresOnlyReplaceStone(t *testing.T) {
	gen := newTestGenerator(99)

	oreIDs := map[block.BlockID]bool{
		block.CoalOreBlockID: true,
		block.IronOreBlockID: true,
		block.GoldOreBlockID: true,
	}

	// Проверяем несколько подземных чанков
	for _, coords := range []vec.Vec3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 1}, {X: -1, Y: 0, Z: 2}} {
		// Сначала только рельеф
		terrainOnly := NewChunk(coords)
		gen.generateTerrain(terrainOnly)

		full := NewChunk(coords)
		gen.GenerateChunk(full)

		for y := 0; y < ChunkSize; y++ {
			for z := 0; z < ChunkSize; z++ {
				for x := 0; x < ChunkSize; x++ {
					local := vec.Vec3{X: x, Y: y, Z: z}
					if oreIDs[full.GetBlockLocal(local)] {
						assert.Equal(t, block.StoneBlockID, terrainOnly.GetBlockLocal(local),
							"Руда должна замещать только камень")
					}
				}
			}
		}
	}
}

func TestVegetationDeterminism(t *testing.T) {
	gen := newTestGenerator(123)

	// Чанк с поверхностью: базовая высота 24 попадает в чанк y=1
	coords := vec.Vec3{X: 5, Y: 1, Z: 5}

	chunkA := NewChunk(coords)
	gen.GenerateChunk(chunkA)
	chunkB := NewChunk(coords)
	gen.GenerateChunk(chunkB)

	assert.Equal(t, chunkA.Snapshot(), chunkB.Snapshot(),
		"Растительность должна быть детерминирована по сиду чанка")
}

func TestBiomeAtStable(t *testing.T) {
	gen := newTestGenerator(7)

	a := gen.BiomeAt(10, 10)
	b := gen.BiomeAt(10, 10)
	assert.Equal(t, a.name, b.name, "Биом столбца должен быть стабилен")
	assert.NotEmpty(t, a.name, "Биом должен быть выбран")
}
