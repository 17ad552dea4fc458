package block

import (
	"github.com/annel0/voxel-rpg/internal/vec"
)

// BlockAPI определяет интерфейс для взаимодействия блоков с игровым миром.
// Этот интерфейс предоставляет блокам возможность читать и изменять состояние
// мира, включая получение и установку блоков и работу с метаданными.
type BlockAPI interface {
	// GetBlockID возвращает идентификатор блока в указанной позиции.
	GetBlockID(pos vec.Vec3) BlockID

	// SetBlock устанавливает блок в указанной позиции.
	SetBlock(pos vec.Vec3, id BlockID)

	// GetBlockMetadata возвращает значение метаданных блока по ключу.
	// Второе значение false, если метаданных нет или чанк не загружен.
	GetBlockMetadata(pos vec.Vec3, key string) (interface{}, bool)

	// SetBlockMetadata устанавливает значение метаданных блока по ключу.
	SetBlockMetadata(pos vec.Vec3, key string, value interface{})

	// TriggerNeighborUpdates запускает разовое обновление для всех шести
	// соседних блоков указанной позиции.
	TriggerNeighborUpdates(pos vec.Vec3)
}
