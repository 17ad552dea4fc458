package world

import (
	"math/rand"

	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// generateVegetation размещает деревья и кусты на поверхности чанка.
// Решения принимаются детерминированным ГПСЧ чанка, поэтому один и
// тот же чанк всегда зарастает одинаково.
func (g *WorldGenerator) generateVegetation(chunk *Chunk) {
	rng := g.chunkRand(chunk.Coords)

	baseX := chunk.Coords.X * ChunkSize
	baseY := chunk.Coords.Y * ChunkSize
	baseZ := chunk.Coords.Z * ChunkSize

	for lx := 0; lx < ChunkSize; lx++ {
		for lz := 0; lz < ChunkSize; lz++ {
			wx := baseX + lx
			wz := baseZ + lz
			surface := g.SurfaceHeight(wx, wz)

			// Поверхность этого столбца должна лежать внутри чанка
			ly := surface - baseY
			if ly < 0 || ly >= ChunkSize {
				continue
			}
			// Под водой растительности нет
			if surface < g.worldCfg.SeaLevel {
				continue
			}

			surfaceLocal := vec.Vec3{X: lx, Y: ly, Z: lz}
			surfaceID := chunk.GetBlockLocal(surfaceLocal)
			if surfaceID != block.GrassBlockID && surfaceID != block.DirtBlockID && surfaceID != block.SandBlockID {
				continue
			}

			biome := g.BiomeAt(wx, wz)
			roll := rng.Float64()
			switch {
			case roll < biome.treeChance && len(g.trees) > 0:
				g.placeTree(chunk, surfaceLocal, rng)
			case roll < biome.treeChance+biome.bushChance:
				g.placeBush(chunk, surfaceLocal)
			}
		}
	}
}

// pickTree выбирает вид дерева по относительным весам
func (g *WorldGenerator) pickTree(rng *rand.Rand) resolvedTree {
	if g.treeWeights <= 0 {
		return g.trees[0]
	}
	roll := rng.Intn(g.treeWeights)
	for _, t := range g.trees {
		roll -= t.weight
		if roll < 0 {
			return t
		}
	}
	return g.trees[len(g.trees)-1]
}

// placeTree ставит ствол и крону над блоком поверхности.
// Части дерева за границами чанка отсекаются; сосед сгенерирует
// свою часть кроны сам тем же детерминированным процессом.
func (g *WorldGenerator) placeTree(chunk *Chunk, surfaceLocal vec.Vec3, rng *rand.Rand) {
	tree := g.pickTree(rng)
	height := tree.minHeight
	if tree.maxHeight > tree.minHeight {
		height += rng.Intn(tree.maxHeight - tree.minHeight + 1)
	}

	// Ствол
	for i := 1; i <= height; i++ {
		chunk.FillBlock(surfaceLocal.Add(vec.Vec3{Y: i}), tree.trunk)
	}

	// Крона: сфера радиуса leafRadius вокруг вершины ствола
	top := surfaceLocal.Add(vec.Vec3{Y: height})
	r := tree.leafRadius
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			for dz := -r; dz <= r; dz++ {
				if dx*dx+dy*dy+dz*dz > r*r {
					continue
				}
				pos := top.Add(vec.Vec3{X: dx, Y: dy, Z: dz})
				if chunk.GetBlockLocal(pos) == block.AirBlockID {
					chunk.FillBlock(pos, tree.leaf)
				}
			}
		}
	}
}

// placeBush ставит куст на блок над поверхностью
func (g *WorldGenerator) placeBush(chunk *Chunk, surfaceLocal vec.Vec3) {
	above := surfaceLocal.Add(vec.Vec3{Y: 1})
	if chunk.GetBlockLocal(above) == block.AirBlockID {
		chunk.FillBlock(above, block.BushBlockID)
	}
}
