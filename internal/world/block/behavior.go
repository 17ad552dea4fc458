package block

import (
	"github.com/annel0/voxel-rpg/internal/vec"
)

type Metadata map[string]interface{}

// InteractionResult представляет результат взаимодействия с блоком
type InteractionResult struct {
	Success bool     // Успешно ли выполнено взаимодействие
	Message string   // Сообщение о результате взаимодействия
	Drops   []string // Выпавшие предметы (опционально)
}

// BlockBehavior определяет поведение блока.
// Реализации — синглтоны, регистрируются в пакете implementations.
type BlockBehavior interface {
	ID() BlockID
	Name() string

	// Физические свойства каталога
	IsSolid() bool       // Непроходим для сущностей и закрывает грани соседей
	IsTransparent() bool // Не закрывает грани соседних блоков при мешинге
	Hardness() int       // Базовая прочность при добыче
	IsPlaceable() bool   // Может ли игрок устанавливать блок

	NeedsTick() bool
	TickUpdate(api BlockAPI, pos vec.Vec3)
	OnPlace(api BlockAPI, pos vec.Vec3)
	OnBreak(api BlockAPI, pos vec.Vec3)
	CreateMetadata() Metadata

	// HandleInteraction обрабатывает действие над блоком ("mine", "place"…)
	HandleInteraction(action string, currentPayload, actionPayload map[string]interface{}) (BlockID, map[string]interface{}, InteractionResult)
}
