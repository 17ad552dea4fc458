package implementations

import (
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// AirBehavior реализует поведение пустого блока (воздуха)
type AirBehavior struct{}

// ID возвращает идентификатор блока
func (b *AirBehavior) ID() block.BlockID {
	return block.AirBlockID
}

// Name возвращает имя блока
func (b *AirBehavior) Name() string {
	return "Air"
}

// IsSolid возвращает false, сквозь воздух можно пройти
func (b *AirBehavior) IsSolid() bool {
	return false
}

// IsTransparent возвращает true, воздух не закрывает грани соседей
func (b *AirBehavior) IsTransparent() bool {
	return true
}

// Hardness возвращает 0, воздух нельзя добыть
func (b *AirBehavior) Hardness() int {
	return 0
}

// IsPlaceable возвращает false, воздух не устанавливается игроком
func (b *AirBehavior) IsPlaceable() bool {
	return false
}

// NeedsTick возвращает false, воздух статичен
func (b *AirBehavior) NeedsTick() bool {
	return false
}

// TickUpdate ничего не делает для воздуха
func (b *AirBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	// Воздух не обновляется
}

// OnPlace вызывается при установке блока
func (b *AirBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	// Ничего не делаем
}

// OnBreak вызывается при разрушении блока
func (b *AirBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
	// Ничего не делаем
}

// CreateMetadata создает пустые метаданные
func (b *AirBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{}
}

// HandleInteraction обрабатывает взаимодействие с блоком воздуха
func (b *AirBehavior) HandleInteraction(action string, currentPayload, actionPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	// Воздух нельзя изменить взаимодействием, но можно поставить блок
	if action == "place" {
		if blockID, ok := actionPayload["block_id"].(float64); ok {
			newBlockID := block.BlockID(uint16(blockID))

			behavior, exists := block.Get(newBlockID)
			if exists && behavior.IsPlaceable() {
				return newBlockID, behavior.CreateMetadata(), block.InteractionResult{
					Success: true,
					Message: "Блок установлен",
				}
			}
		}
	}

	return block.AirBlockID, currentPayload, block.InteractionResult{
		Success: false,
		Message: "Нельзя взаимодействовать с воздухом",
	}
}
