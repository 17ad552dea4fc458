package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-rpg/internal/config"
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
	_ "github.com/annel0/voxel-rpg/internal/world/block/implementations"
	"github.com/annel0/voxel-rpg/internal/world/mesh"
)

func newTestWorld() *WorldManager {
	cfg := config.Default()
	wm := NewWorldManager(cfg.World, cfg.Generation, cfg.Server)
	wm.SetMeshSink(mesh.NopSink{})
	return wm
}

func TestGetBlockUnloadedChunk(t *testing.T) {
	wm := newTestWorld()

	// Чтение не должно порождать генерацию
	id := wm.GetBlock(vec.Vec3{X: 100, Y: 10, Z: 100})
	assert.Equal(t, block.AirBlockID, id, "Незагруженный чанк должен давать воздух")
	assert.Equal(t, 0, wm.LoadedChunkCount(), "GetBlock не должен загружать чанки")
}

func TestRequestBlockChangeCreatesChunk(t *testing.T) {
	wm := newTestWorld()
	pos := vec.Vec3{X: 3, Y: 200, Z: 3} // Высоко над рельефом, там воздух

	ok := wm.RequestBlockChange(pos, block.StoneBlockID)
	assert.True(t, ok, "Изменение блока должно пройти")
	assert.Equal(t, 1, wm.LoadedChunkCount(), "Чанк должен быть создан по требованию")
	assert.Equal(t, block.StoneBlockID, wm.GetBlock(pos), "Блок должен быть установлен")
}

func TestRequestBlockChangeInvalidBlock(t *testing.T) {
	wm := newTestWorld()

	ok := wm.RequestBlockChange(vec.Vec3{X: 0, Y: 200, Z: 0}, block.BlockID(9999))
	assert.False(t, ok, "Неизвестный блок должен быть отклонён")
	assert.Equal(t, 0, wm.LoadedChunkCount(), "Отклонённый запрос не должен загружать чанк")
}

func TestBoundaryChangeMarksNeighbor(t *testing.T) {
	wm := newTestWorld()

	// Загружаем два соседних чанка высоко над рельефом
	a := wm.LoadChunk(vec.Vec3{X: 0, Y: 12, Z: 0})
	b := wm.LoadChunk(vec.Vec3{X: 1, Y: 12, Z: 0})
	wm.RebuildDirtyChunks()
	assert.False(t, a.IsDirty(), "После перестройки чанк должен быть чист")
	assert.False(t, b.IsDirty(), "После перестройки чанк должен быть чист")

	// Меняем блок на границе чанка A (x=15) — сосед B должен пометиться
	wm.RequestBlockChange(vec.Vec3{X: 15, Y: 12*16 + 5, Z: 5}, block.StoneBlockID)
	assert.True(t, a.IsDirty(), "Изменённый чанк должен быть помечен")
	assert.True(t, b.IsDirty(), "Сосед за гранью должен быть помечен")
}

func TestRebuildDirtyChunksCount(t *testing.T) {
	wm := newTestWorld()

	wm.LoadChunk(vec.Vec3{X: 0, Y: 0, Z: 0})
	wm.LoadChunk(vec.Vec3{X: 1, Y: 0, Z: 0})
	rebuilt := wm.RebuildDirtyChunks()
	assert.Equal(t, 2, rebuilt, "Оба новых чанка должны быть перестроены")

	rebuilt = wm.RebuildDirtyChunks()
	assert.Equal(t, 0, rebuilt, "Повторная перестройка без изменений не нужна")
}

func TestLoadChunkIdempotent(t *testing.T) {
	wm := newTestWorld()
	coords := vec.Vec3{X: 2, Y: 1, Z: 2}

	a := wm.LoadChunk(coords)
	b := wm.LoadChunk(coords)
	assert.Same(t, a, b, "Повторная загрузка должна вернуть тот же чанк")
	assert.Equal(t, 1, wm.LoadedChunkCount(), "Чанк должен быть загружен один раз")
}

func TestUnloadChunk(t *testing.T) {
	wm := newTestWorld()
	coords := vec.Vec3{X: 0, Y: 0, Z: 0}

	wm.LoadChunk(coords)
	wm.UnloadChunk(coords)
	assert.Equal(t, 0, wm.LoadedChunkCount(), "Чанк должен быть выгружен")
	assert.Nil(t, wm.GetChunk(coords), "Выгруженный чанк недоступен")
}

func TestInteractMineDamagesAndBreaksBlock(t *testing.T) {
	wm := newTestWorld()
	pos := vec.Vec3{X: 2, Y: 200, Z: 2}
	wm.RequestBlockChange(pos, block.StoneBlockID)

	// Частичная добыча уменьшает прочность в метаданных
	result := wm.InteractWithBlock(pos, "mine", map[string]interface{}{"strength": float64(4)})
	assert.True(t, result.Success, "Удар по камню должен быть успешным")
	assert.Equal(t, block.StoneBlockID, wm.GetBlock(pos), "Камень не должен сломаться с одного удара")

	chunk := wm.GetChunk(pos.ToChunkCoords())
	hardness, ok := chunk.GetMetadataValue(pos.LocalInChunk(), "hardness")
	assert.True(t, ok, "Прочность должна сохраниться в метаданных")
	assert.Equal(t, 6, hardness, "Прочность должна уменьшиться на силу удара")

	// Добивающий удар разрушает блок и даёт дроп
	result = wm.InteractWithBlock(pos, "mine", map[string]interface{}{"strength": float64(10)})
	assert.True(t, result.Success, "Разрушение должно быть успешным")
	assert.Equal(t, block.AirBlockID, wm.GetBlock(pos), "Разрушенный блок должен стать воздухом")
	assert.Contains(t, result.Drops, "stone", "Разрушенный камень должен дать дроп")
}

func TestInteractUnsupportedAction(t *testing.T) {
	wm := newTestWorld()
	pos := vec.Vec3{X: 2, Y: 200, Z: 2}
	wm.RequestBlockChange(pos, block.StoneBlockID)

	result := wm.InteractWithBlock(pos, "dance", nil)
	assert.False(t, result.Success, "Неизвестное действие должно быть отклонено")
	assert.Equal(t, block.StoneBlockID, wm.GetBlock(pos), "Блок не должен измениться")
}

func TestMiningSupportMakesSandFall(t *testing.T) {
	wm := newTestWorld()
	support := vec.Vec3{X: 5, Y: 200, Z: 5}
	above := support.Add(vec.Vec3{Y: 1})

	wm.RequestBlockChange(support, block.StoneBlockID)
	wm.RequestBlockChange(above, block.SandBlockID)

	// Разрушение опоры будит соседей: песок теряет опору и падает
	result := wm.InteractWithBlock(support, "mine", map[string]interface{}{"strength": float64(10)})
	assert.True(t, result.Success, "Опора должна разрушиться")
	assert.Equal(t, block.SandBlockID, wm.GetBlock(support), "Песок должен упасть на место опоры")
	assert.Equal(t, block.AirBlockID, wm.GetBlock(above), "Прежнее место песка должно освободиться")
}
