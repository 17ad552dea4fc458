package world

import (
	"math/rand"

	"github.com/annel0/voxel-rpg/internal/config"
	"github.com/annel0/voxel-rpg/internal/logging"
	"github.com/annel0/voxel-rpg/internal/util"
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// resolvedBiome — биом с заранее найденными поведениями блоков
type resolvedBiome struct {
	name       string
	surface    block.BlockID
	filler     block.BlockID
	treeChance float64
	bushChance float64
}

// resolvedOre — руда с заранее найденным ID блока
type resolvedOre struct {
	id          block.BlockID
	spawnChance float64
	noiseScale  float64
	minDepth    int
	maxDepth    int
}

// resolvedTree — вид дерева с заранее найденными ID блоков
type resolvedTree struct {
	trunk      block.BlockID
	leaf       block.BlockID
	minHeight  int
	maxHeight  int
	leafRadius int
	weight     int
}

// WorldGenerator процедурно заполняет чанки: рельеф, руды, растительность
type WorldGenerator struct {
	seed        int64
	heightNoise *util.NoiseGenerator
	biomeNoise  *util.NoiseGenerator
	oreNoise    *util.NoiseGenerator

	worldCfg config.WorldConfig
	genCfg   config.GenerationConfig

	biomes      []resolvedBiome
	ores        []resolvedOre
	trees       []resolvedTree
	treeWeights int
}

// NewWorldGenerator создаёт генератор с указанным сидом.
// Имена блоков из конфигурации резолвятся один раз на старте;
// неизвестное имя логируется, элемент пропускается.
func NewWorldGenerator(seed int64, worldCfg config.WorldConfig, genCfg config.GenerationConfig) *WorldGenerator {
	genLog := logging.GetGenLogger()
	g := &WorldGenerator{
		seed:        seed,
		heightNoise: util.NewNoiseGenerator(seed),
		biomeNoise:  util.NewNoiseGenerator(seed + 1000),
		oreNoise:    util.NewNoiseGenerator(seed + 2000),
		worldCfg:    worldCfg,
		genCfg:      genCfg,
	}

	for _, b := range genCfg.Biomes {
		surface, ok1 := block.GetByName(b.SurfaceBlock)
		filler, ok2 := block.GetByName(b.FillerBlock)
		if !ok1 || !ok2 {
			genLog.Warn("Биом %s ссылается на неизвестный блок (%s/%s), пропущен",
				b.Name, b.SurfaceBlock, b.FillerBlock)
			continue
		}
		g.biomes = append(g.biomes, resolvedBiome{
			name:       b.Name,
			surface:    surface.ID(),
			filler:     filler.ID(),
			treeChance: b.TreeChance,
			bushChance: b.BushChance,
		})
	}
	if len(g.biomes) == 0 {
		genLog.Warn("Ни одного валидного биома в конфигурации, используется камень")
		g.biomes = []resolvedBiome{{name: "barren", surface: block.StoneBlockID, filler: block.StoneBlockID}}
	}

	for _, o := range genCfg.Ores {
		behavior, ok := block.GetByName(o.Block)
		if !ok {
			genLog.Warn("Руда %s неизвестна, пропущена", o.Block)
			continue
		}
		g.ores = append(g.ores, resolvedOre{
			id:          behavior.ID(),
			spawnChance: o.SpawnChance,
			noiseScale:  o.NoiseScale,
			minDepth:    o.MinDepth,
			maxDepth:    o.MaxDepth,
		})
	}

	for _, t := range genCfg.Trees {
		trunk, ok1 := block.GetByName(t.TrunkBlock)
		leaf, ok2 := block.GetByName(t.LeafBlock)
		if !ok1 || !ok2 {
			genLog.Warn("Дерево %s ссылается на неизвестный блок, пропущено", t.Name)
			continue
		}
		g.trees = append(g.trees, resolvedTree{
			trunk:      trunk.ID(),
			leaf:       leaf.ID(),
			minHeight:  t.MinHeight,
			maxHeight:  t.MaxHeight,
			leafRadius: t.LeafRadius,
			weight:     t.Weight,
		})
		g.treeWeights += t.Weight
	}

	genLog.Info("Генератор мира инициализирован: сид=%d, биомов=%d, руд=%d, деревьев=%d",
		seed, len(g.biomes), len(g.ores), len(g.trees))
	return g
}

// GetSeed возвращает сид генератора
func (g *WorldGenerator) GetSeed() int64 {
	return g.seed
}

// SurfaceHeight возвращает высоту поверхности для столбца мира.
// Детерминирована по сиду и координатам.
func (g *WorldGenerator) SurfaceHeight(x, z int) int {
	n := g.heightNoise.Noise2D(float64(x)*g.genCfg.NoiseScale, float64(z)*g.genCfg.NoiseScale)
	height := g.genCfg.BaseHeight + int(n*float64(g.genCfg.HeightRange))

	biome := g.BiomeAt(x, z)
	if biome.name == "mountains" {
		// Горный буст масштабируется тем же шумом, чтобы хребты были плавными
		height += int(n * float64(g.genCfg.MountainBoost))
	}

	if height < g.worldCfg.MinHeight {
		height = g.worldCfg.MinHeight
	}
	if height >= g.worldCfg.MaxHeight {
		height = g.worldCfg.MaxHeight - 1
	}
	return height
}

// BiomeAt выбирает биом столбца по отдельному крупномасштабному шуму
func (g *WorldGenerator) BiomeAt(x, z int) resolvedBiome {
	n := g.biomeNoise.Noise2D(float64(x)*g.genCfg.BiomeScale, float64(z)*g.genCfg.BiomeScale)
	idx := int(n * float64(len(g.biomes)))
	if idx >= len(g.biomes) {
		idx = len(g.biomes) - 1
	}
	return g.biomes[idx]
}

// GenerateChunk заполняет чанк детерминированно по сиду и координатам:
// рельеф по шуму высот, затем рудные жилы, затем растительность.
func (g *WorldGenerator) GenerateChunk(chunk *Chunk) {
	g.generateTerrain(chunk)
	g.generateOres(chunk)
	g.generateVegetation(chunk)
}

// generateTerrain заполняет столбцы чанка: поверхность, наполнитель,
// камень ниже, вода до уровня моря
func (g *WorldGenerator) generateTerrain(chunk *Chunk) {
	baseX := chunk.Coords.X * ChunkSize
	baseY := chunk.Coords.Y * ChunkSize
	baseZ := chunk.Coords.Z * ChunkSize

	for lx := 0; lx < ChunkSize; lx++ {
		for lz := 0; lz < ChunkSize; lz++ {
			wx := baseX + lx
			wz := baseZ + lz
			surface := g.SurfaceHeight(wx, wz)
			biome := g.BiomeAt(wx, wz)

			for ly := 0; ly < ChunkSize; ly++ {
				wy := baseY + ly
				local := vec.Vec3{X: lx, Y: ly, Z: lz}

				switch {
				case wy > surface:
					if wy <= g.worldCfg.SeaLevel {
						chunk.FillBlock(local, block.WaterBlockID)
					}
					// Выше уровня моря остаётся воздух (нулевое значение)
				case wy == surface:
					chunk.FillBlock(local, biome.surface)
				case wy >= surface-g.genCfg.DirtDepth:
					chunk.FillBlock(local, biome.filler)
				default:
					chunk.FillBlock(local, block.StoneBlockID)
				}
			}
		}
	}
}

// chunkRand создаёт детерминированный ГПСЧ для чанка.
// Смешивание координат даёт разные последовательности соседним чанкам.
func (g *WorldGenerator) chunkRand(coords vec.Vec3) *rand.Rand {
	chunkSeed := g.seed + int64(coords.X)*31 + int64(coords.Y)*17 + int64(coords.Z)*57
	return rand.New(rand.NewSource(chunkSeed))
}
