package world

import (
	"context"
	"encoding/json"

	"github.com/annel0/voxel-rpg/internal/eventbus"
	"github.com/annel0/voxel-rpg/internal/logging"
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// Типы событий мира
const (
	EventBlockChanged  = "world.block_changed"
	EventChunkLoaded   = "world.chunk_loaded"
	EventChunkUnloaded = "world.chunk_unloaded"
	EventChunkRemeshed = "world.chunk_remeshed"
	EventWorldSaved    = "world.saved"
)

// BlockChangedPayload описывает изменение блока
type BlockChangedPayload struct {
	Pos      vec.Vec3      `json:"pos"`
	OldBlock block.BlockID `json:"old_block"`
	NewBlock block.BlockID `json:"new_block"`
}

// ChunkPayload описывает событие загрузки или выгрузки чанка
type ChunkPayload struct {
	Coords    vec.Vec3 `json:"coords"`
	Generated bool     `json:"generated"` // true если чанк создан генератором, false если загружен
}

// SavePayload описывает завершённое сохранение мира
type SavePayload struct {
	ChunksSaved int   `json:"chunks_saved"`
	DurationMs  int64 `json:"duration_ms"`
}

// publishEvent отправляет событие мира в шину.
// При неинициализированной шине событие молча пропускается.
func publishEvent(eventType string, priority int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Warn("Не удалось сериализовать событие %s: %v", eventType, err)
		return
	}
	env := eventbus.NewEnvelope("world", eventType, priority, data)
	if err := eventbus.Publish(context.Background(), env); err != nil {
		logging.Warn("Не удалось опубликовать событие %s: %v", eventType, err)
	}
}
