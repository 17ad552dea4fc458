package world

import (
	"github.com/annel0/voxel-rpg/internal/logging"
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
	"github.com/annel0/voxel-rpg/internal/world/entity"
)

// Типы событий сущностей
const (
	EventEntitySpawned   = "entity.spawned"
	EventEntityDespawned = "entity.despawned"
	EventEntityDied      = "entity.died"
)

// EntityEventPayload описывает событие жизненного цикла сущности
type EntityEventPayload struct {
	EntityID   uint64   `json:"entity_id"`
	EntityType uint16   `json:"entity_type"`
	Pos        vec.Vec3 `json:"pos"`
}

// worldEntityAPI реализует entity.EntityAPI поверх менеджеров мира
// и сущностей. Поведения сущностей получают его в Update и хуках.
type worldEntityAPI struct {
	wm *WorldManager
	em *entity.EntityManager
}

// NewEntityAPI создаёт адаптер мира для поведений сущностей
func NewEntityAPI(wm *WorldManager, em *entity.EntityManager) entity.EntityAPI {
	return &worldEntityAPI{wm: wm, em: em}
}

// GetBlock возвращает блок по координатам
func (api *worldEntityAPI) GetBlock(pos vec.Vec3) block.BlockID {
	return api.wm.GetBlock(pos)
}

// SetBlock устанавливает блок по координатам
func (api *worldEntityAPI) SetBlock(pos vec.Vec3, id block.BlockID) {
	api.wm.RequestBlockChange(pos, id)
}

// GetEntity возвращает сущность по ID
func (api *worldEntityAPI) GetEntity(entityID uint64) (*entity.Entity, bool) {
	return api.em.GetEntity(entityID)
}

// GetEntitiesInRange возвращает сущности в радиусе
func (api *worldEntityAPI) GetEntitiesInRange(center vec.Vec3Float, radius float64) []*entity.Entity {
	return api.em.GetEntitiesInRange(center, radius)
}

// SpawnEntity создаёт сущность
func (api *worldEntityAPI) SpawnEntity(entityType entity.EntityType, position vec.Vec3) uint64 {
	id := api.em.SpawnEntity(entityType, position, api)
	publishEvent(EventEntitySpawned, 3, EntityEventPayload{
		EntityID:   id,
		EntityType: uint16(entityType),
		Pos:        position,
	})
	return id
}

// DespawnEntity удаляет сущность
func (api *worldEntityAPI) DespawnEntity(entityID uint64) {
	if e, exists := api.em.GetEntity(entityID); exists {
		publishEvent(EventEntityDespawned, 2, EntityEventPayload{
			EntityID:   entityID,
			EntityType: uint16(e.Type),
			Pos:        e.Position,
		})
	}
	api.em.DespawnEntity(entityID, api)
}

// DamageEntity наносит урон сущности; смерть приводит к удалению
func (api *worldEntityAPI) DamageEntity(entityID uint64, damage int, source interface{}) {
	e, exists := api.em.GetEntity(entityID)
	if !exists || !e.Active {
		return
	}
	behavior, hasBehavior := api.em.GetBehavior(e.Type)
	if !hasBehavior {
		return
	}
	if behavior.OnDamage(api, e, damage, source) {
		logging.GetEntityLogger().Debug("Сущность %d (тип %d) погибла в (%d,%d,%d)",
			e.ID, e.Type, e.Position.X, e.Position.Y, e.Position.Z)
		publishEvent(EventEntityDied, 5, EntityEventPayload{
			EntityID:   entityID,
			EntityType: uint16(e.Type),
			Pos:        e.Position,
		})
		api.em.DespawnEntity(entityID, api)
	}
}

// MoveEntity перемещает сущность с проверкой коллизий
func (api *worldEntityAPI) MoveEntity(e *entity.Entity, direction vec.Vec3Float, dt float64) bool {
	return api.em.MoveEntity(e, direction, dt, api)
}
