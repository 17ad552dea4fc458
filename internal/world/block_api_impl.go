package world

import (
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// worldBlockAPI реализует block.BlockAPI поверх менеджера мира.
// Поведения блоков получают его в TickUpdate и хуках.
type worldBlockAPI struct {
	wm *WorldManager
}

func (wm *WorldManager) blockAPI() block.BlockAPI {
	return &worldBlockAPI{wm: wm}
}

// GetBlockID возвращает блок по мировым координатам
func (api *worldBlockAPI) GetBlockID(pos vec.Vec3) block.BlockID {
	return api.wm.GetBlock(pos)
}

// SetBlock изменяет блок по мировым координатам
func (api *worldBlockAPI) SetBlock(pos vec.Vec3, id block.BlockID) {
	api.wm.RequestBlockChange(pos, id)
}

// GetBlockMetadata возвращает значение метаданных блока.
// Незагруженный чанк даёт отсутствие значения.
func (api *worldBlockAPI) GetBlockMetadata(pos vec.Vec3, key string) (interface{}, bool) {
	chunk := api.wm.GetChunk(pos.ToChunkCoords())
	if chunk == nil {
		return nil, false
	}
	return chunk.GetMetadataValue(pos.LocalInChunk(), key)
}

// SetBlockMetadata устанавливает значение метаданных блока.
// Запись в незагруженный чанк пропускается.
func (api *worldBlockAPI) SetBlockMetadata(pos vec.Vec3, key string, value interface{}) {
	chunk := api.wm.GetChunk(pos.ToChunkCoords())
	if chunk == nil {
		return
	}
	chunk.SetMetadataValue(pos.LocalInChunk(), key, value)
}

// TriggerNeighborUpdates пинает тикающие поведения шести соседей.
// Используется после разрушения опоры (песок, вода).
func (api *worldBlockAPI) TriggerNeighborUpdates(pos vec.Vec3) {
	neighbors := []vec.Vec3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	for _, off := range neighbors {
		p := pos.Add(off)
		id := api.wm.GetBlock(p)
		if id == block.AirBlockID {
			continue
		}
		behavior, exists := block.Get(id)
		if exists && behavior.NeedsTick() {
			behavior.TickUpdate(api, p)
		}
	}
}
