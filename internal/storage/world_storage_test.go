package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-rpg/internal/vec"
)

func newTestStorage(t *testing.T) *WorldStorage {
	t.Helper()

	ws, err := NewWorldStorage(t.TempDir())
	require.NoError(t, err, "Хранилище должно открываться")
	t.Cleanup(func() { ws.Close() })
	return ws
}

func TestSaveLoadChunkSnapshot(t *testing.T) {
	ws := newTestStorage(t)
	coords := vec.Vec3{X: 1, Y: -2, Z: 3}

	blocks := make([]uint16, 4096)
	blocks[0] = 1
	blocks[100] = 200
	blocks[4095] = 5

	err := ws.SaveChunkSnapshot(coords, blocks)
	require.NoError(t, err, "Сохранение снимка должно пройти")

	loaded, found, err := ws.LoadChunkSnapshot(coords)
	require.NoError(t, err, "Загрузка снимка должна пройти")
	assert.True(t, found, "Сохранённый чанк должен быть найден")
	assert.Equal(t, blocks, loaded, "Снимок должен совпадать после цикла сохранения")
}

func TestLoadMissingChunk(t *testing.T) {
	ws := newTestStorage(t)

	_, found, err := ws.LoadChunkSnapshot(vec.Vec3{X: 99, Y: 99, Z: 99})
	require.NoError(t, err, "Отсутствие чанка не является ошибкой")
	assert.False(t, found, "Несохранённый чанк не должен находиться")
}

func TestSnapshotOverwrite(t *testing.T) {
	ws := newTestStorage(t)
	coords := vec.Vec3{X: 0, Y: 0, Z: 0}

	first := make([]uint16, 4096)
	first[10] = 1
	require.NoError(t, ws.SaveChunkSnapshot(coords, first))

	second := make([]uint16, 4096)
	second[10] = 2
	require.NoError(t, ws.SaveChunkSnapshot(coords, second))

	loaded, found, err := ws.LoadChunkSnapshot(coords)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, uint16(2), loaded[10], "Повторное сохранение должно перезаписывать снимок")
}

func TestWorldMeta(t *testing.T) {
	ws := newTestStorage(t)

	_, _, found, err := ws.LoadWorldMeta()
	require.NoError(t, err)
	assert.False(t, found, "Метаданных нового мира быть не должно")

	require.NoError(t, ws.SaveWorldMeta(12345, 20))

	seed, seaLevel, found, err := ws.LoadWorldMeta()
	require.NoError(t, err)
	assert.True(t, found, "Метаданные должны находиться после сохранения")
	assert.Equal(t, int64(12345), seed, "Сид должен совпадать")
	assert.Equal(t, 20, seaLevel, "Уровень моря должен совпадать")
}

func TestClosedStorageRejects(t *testing.T) {
	ws, err := NewWorldStorage(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, ws.Close())

	err = ws.SaveChunkSnapshot(vec.Vec3{}, make([]uint16, 4096))
	assert.Error(t, err, "Закрытое хранилище должно отклонять запись")

	_, _, err = ws.LoadChunkSnapshot(vec.Vec3{})
	assert.Error(t, err, "Закрытое хранилище должно отклонять чтение")
}
