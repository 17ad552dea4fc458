package implementations

import (
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// StoneBehavior реализует поведение блока камня
type StoneBehavior struct{}

// ID возвращает идентификатор блока
func (b *StoneBehavior) ID() block.BlockID {
	return block.StoneBlockID
}

// Name возвращает имя блока
func (b *StoneBehavior) Name() string {
	return "Stone"
}

// IsSolid возвращает true, камень непроходим
func (b *StoneBehavior) IsSolid() bool {
	return true
}

// IsTransparent возвращает false, камень закрывает грани соседей
func (b *StoneBehavior) IsTransparent() bool {
	return false
}

// Hardness возвращает базовую прочность камня
func (b *StoneBehavior) Hardness() int {
	return 10
}

// IsPlaceable возвращает true, камень можно устанавливать
func (b *StoneBehavior) IsPlaceable() bool {
	return true
}

// NeedsTick возвращает false, камень статичен
func (b *StoneBehavior) NeedsTick() bool {
	return false
}

// TickUpdate ничего не делает для камня
func (b *StoneBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	// Камень не обновляется каждый тик
}

// OnPlace инициализирует блок при установке
func (b *StoneBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "hardness", b.Hardness())
}

// OnBreak вызывается при разрушении блока
func (b *StoneBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {
	// Камень ничего не оставляет дополнительно
}

// CreateMetadata создает начальные метаданные для блока
func (b *StoneBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{
		"hardness": b.Hardness(),
	}
}

// HandleInteraction обрабатывает взаимодействие с блоком камня
func (b *StoneBehavior) HandleInteraction(action string, currentPayload, actionPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	if action == "mine" {
		return handleMine(block.StoneBlockID, b.Hardness(), []string{"stone"}, currentPayload, actionPayload)
	}
	return unsupportedAction(block.StoneBlockID, currentPayload)
}
