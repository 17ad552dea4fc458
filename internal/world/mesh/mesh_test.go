package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
	_ "github.com/annel0/voxel-rpg/internal/world/block/implementations"
)

// mapLookup строит BlockLookup поверх карты блоков
func mapLookup(blocks map[vec.Vec3]block.BlockID) BlockLookup {
	return func(pos vec.Vec3) block.BlockID {
		return blocks[pos]
	}
}

func TestEmptyChunkMesh(t *testing.T) {
	m := BuildChunkMesh(vec.Vec3{}, mapLookup(map[vec.Vec3]block.BlockID{}))

	assert.True(t, m.IsEmpty(), "Пустой чанк должен давать пустой меш")
	assert.Empty(t, m.Positions, "Вершин быть не должно")
	assert.Empty(t, m.Indices, "Индексов быть не должно")
}

func TestSingleBlockMesh(t *testing.T) {
	blocks := map[vec.Vec3]block.BlockID{
		{X: 5, Y: 5, Z: 5}: block.StoneBlockID,
	}
	m := BuildChunkMesh(vec.Vec3{}, mapLookup(blocks))

	assert.Equal(t, 6, m.FaceCount, "Одиночный блок должен дать 6 граней")
	assert.Len(t, m.Positions, 6*4*3, "По 4 вершины на грань, по 3 компоненты")
	assert.Len(t, m.Normals, 6*4*3, "Нормаль на каждую вершину")
	assert.Len(t, m.UVs, 6*4*2, "UV на каждую вершину")
	assert.Len(t, m.Indices, 6*6, "По 2 треугольника на грань")
}

func TestAdjacentBlocksCullSharedFace(t *testing.T) {
	blocks := map[vec.Vec3]block.BlockID{
		{X: 5, Y: 5, Z: 5}: block.StoneBlockID,
		{X: 6, Y: 5, Z: 5}: block.StoneBlockID,
	}
	m := BuildChunkMesh(vec.Vec3{}, mapLookup(blocks))

	// Две общие грани скрыты: 12 - 2 = 10
	assert.Equal(t, 10, m.FaceCount, "Общая грань двух блоков должна быть скрыта")
}

func TestTransparentNeighborKeepsFace(t *testing.T) {
	blocks := map[vec.Vec3]block.BlockID{
		{X: 5, Y: 5, Z: 5}: block.StoneBlockID,
		{X: 6, Y: 5, Z: 5}: block.WaterBlockID,
	}
	m := BuildChunkMesh(vec.Vec3{}, mapLookup(blocks))

	// Камень сохраняет грань к воде; вода тоже рисует грани,
	// кроме грани к непрозрачному камню: 6 + 5 = 11
	assert.Equal(t, 11, m.FaceCount, "Грань к прозрачному соседу должна остаться")
}

func TestSameTransparentBlocksNoInnerFaces(t *testing.T) {
	blocks := map[vec.Vec3]block.BlockID{
		{X: 5, Y: 5, Z: 5}: block.WaterBlockID,
		{X: 6, Y: 5, Z: 5}: block.WaterBlockID,
	}
	m := BuildChunkMesh(vec.Vec3{}, mapLookup(blocks))

	// Вода с водой граней между собой не образует
	assert.Equal(t, 10, m.FaceCount, "Одинаковые прозрачные блоки не дают внутренних граней")
}

func TestChunkBorderUsesLookup(t *testing.T) {
	// Блок на грани чанка (x=15); сосед в другом чанке закрывает грань
	blocks := map[vec.Vec3]block.BlockID{
		{X: 15, Y: 5, Z: 5}: block.StoneBlockID,
		{X: 16, Y: 5, Z: 5}: block.StoneBlockID, // Лежит в соседнем чанке
	}
	m := BuildChunkMesh(vec.Vec3{}, mapLookup(blocks))

	assert.Equal(t, 5, m.FaceCount, "Сосед из другого чанка должен скрывать грань")
}
