package world

import (
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// generateOres прорезает рудные жилы в каменных блоках чанка.
// Жилы формируются произведением трёх плоскостных шумов: произведение
// близко к единице только там, где все три плоскости совпадают, что
// даёт вытянутые связные кластеры вместо одиночных блоков.
func (g *WorldGenerator) generateOres(chunk *Chunk) {
	if len(g.ores) == 0 {
		return
	}

	baseX := chunk.Coords.X * ChunkSize
	baseY := chunk.Coords.Y * ChunkSize
	baseZ := chunk.Coords.Z * ChunkSize

	for lx := 0; lx < ChunkSize; lx++ {
		for lz := 0; lz < ChunkSize; lz++ {
			wx := baseX + lx
			wz := baseZ + lz
			surface := g.SurfaceHeight(wx, wz)

			for ly := 0; ly < ChunkSize; ly++ {
				wy := baseY + ly
				local := vec.Vec3{X: lx, Y: ly, Z: lz}

				// Руда замещает только камень
				if chunk.GetBlockLocal(local) != block.StoneBlockID {
					continue
				}
				depth := surface - wy

				for _, ore := range g.ores {
					if depth < ore.minDepth || depth > ore.maxDepth {
						continue
					}
					v := g.oreNoise.PlaneProduct3D(
						float64(wx)*ore.noiseScale,
						float64(wy)*ore.noiseScale,
						float64(wz)*ore.noiseScale,
					)
					if v > 1.0-ore.spawnChance {
						chunk.FillBlock(local, ore.id)
						break
					}
				}
			}
		}
	}
}
