package mesh

import (
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// Mesh содержит геометрию чанка, готовую к передаче рендереру
type Mesh struct {
	ChunkCoords vec.Vec3  // Координаты чанка, для которого построен меш
	Positions   []float32 // Вершины, по 3 компоненты
	Normals     []float32 // Нормали, по 3 компоненты
	UVs         []float32 // Текстурные координаты, по 2 компоненты
	Light       []float32 // Освещённость вершин, по 1 компоненте
	Indices     []uint32  // Индексы треугольников
	FaceCount   int       // Количество сгенерированных граней
}

// BlockLookup возвращает блок по мировым координатам.
// Для незагруженных чанков должен возвращать воздух.
type BlockLookup func(pos vec.Vec3) block.BlockID

// faceDir описывает одну из шести граней куба
type faceDir struct {
	offset  vec.Vec3   // Смещение к соседнему блоку
	normal  [3]float32 // Нормаль грани
	corners [4][3]float32
}

// Порядок граней: +X, -X, +Y, -Y, +Z, -Z.
// Вершины каждой грани заданы против часовой стрелки при взгляде снаружи.
var faceDirs = [6]faceDir{
	{
		offset: vec.Vec3{X: 1, Y: 0, Z: 0},
		normal: [3]float32{1, 0, 0},
		corners: [4][3]float32{
			{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1},
		},
	},
	{
		offset: vec.Vec3{X: -1, Y: 0, Z: 0},
		normal: [3]float32{-1, 0, 0},
		corners: [4][3]float32{
			{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0},
		},
	},
	{
		offset: vec.Vec3{X: 0, Y: 1, Z: 0},
		normal: [3]float32{0, 1, 0},
		corners: [4][3]float32{
			{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0},
		},
	},
	{
		offset: vec.Vec3{X: 0, Y: -1, Z: 0},
		normal: [3]float32{0, -1, 0},
		corners: [4][3]float32{
			{0, 0, 1}, {0, 0, 0}, {1, 0, 0}, {1, 0, 1},
		},
	},
	{
		offset: vec.Vec3{X: 0, Y: 0, Z: 1},
		normal: [3]float32{0, 0, 1},
		corners: [4][3]float32{
			{1, 0, 1}, {1, 1, 1}, {0, 1, 1}, {0, 0, 1},
		},
	},
	{
		offset: vec.Vec3{X: 0, Y: 0, Z: -1},
		normal: [3]float32{0, 0, -1},
		corners: [4][3]float32{
			{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0},
		},
	},
}

const chunkSize = 16

// BuildChunkMesh строит меш чанка наивным перебором граней.
// Грань видима, если соседний блок прозрачен и отличается от текущего.
// Соседи из других чанков берутся через lookup (незагруженные дают воздух).
func BuildChunkMesh(chunkCoords vec.Vec3, lookup BlockLookup) *Mesh {
	m := &Mesh{ChunkCoords: chunkCoords}
	base := vec.Vec3{
		X: chunkCoords.X * chunkSize,
		Y: chunkCoords.Y * chunkSize,
		Z: chunkCoords.Z * chunkSize,
	}

	for y := 0; y < chunkSize; y++ {
		for z := 0; z < chunkSize; z++ {
			for x := 0; x < chunkSize; x++ {
				pos := base.Add(vec.Vec3{X: x, Y: y, Z: z})
				id := lookup(pos)
				if id == block.AirBlockID {
					continue
				}
				for _, dir := range faceDirs {
					neighbor := lookup(pos.Add(dir.offset))
					if !faceVisible(id, neighbor) {
						continue
					}
					m.addFace(x, y, z, dir, id)
				}
			}
		}
	}
	return m
}

// faceVisible решает, нужна ли грань между блоком и его соседом.
// Непрозрачный сосед скрывает грань; одинаковые прозрачные блоки
// (вода к воде) граней между собой не образуют.
func faceVisible(id, neighbor block.BlockID) bool {
	if neighbor == block.AirBlockID {
		return true
	}
	if !block.IsTransparent(neighbor) {
		return false
	}
	return id != neighbor
}

// addFace добавляет четырёхугольную грань как два треугольника
func (m *Mesh) addFace(x, y, z int, dir faceDir, id block.BlockID) {
	start := uint32(len(m.Positions) / 3)
	for _, c := range dir.corners {
		m.Positions = append(m.Positions,
			float32(x)+c[0], float32(y)+c[1], float32(z)+c[2])
		m.Normals = append(m.Normals, dir.normal[0], dir.normal[1], dir.normal[2])
		// Расчёт освещения ещё не реализован, вершины полностью освещены
		m.Light = append(m.Light, 1.0)
	}
	// Атлас текстур: колонка по ID блока, одна строка на грань пока не нужна
	u := float32(id%16) / 16.0
	m.UVs = append(m.UVs,
		u, 0,
		u, 1,
		u+1.0/16.0, 1,
		u+1.0/16.0, 0,
	)
	m.Indices = append(m.Indices,
		start, start+1, start+2,
		start, start+2, start+3,
	)
	m.FaceCount++
}

// IsEmpty возвращает true для меша без единой грани
func (m *Mesh) IsEmpty() bool {
	return m.FaceCount == 0
}
