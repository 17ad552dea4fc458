package entity

import (
	"sync"

	"github.com/annel0/voxel-rpg/internal/metrics"
	"github.com/annel0/voxel-rpg/internal/physics"
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// Ускорение свободного падения в блоках/с²
const gravity = 24.0

// EntityManager управляет всеми сущностями в мире
type EntityManager struct {
	entities     map[uint64]*Entity            // Хранилище всех сущностей
	behaviors    map[EntityType]EntityBehavior // Реестр поведений сущностей
	nextEntityID uint64                        // Счетчик для генерации ID
	mu           sync.RWMutex                  // Мьютекс для безопасного доступа
}

// NewEntityManager создаёт новый менеджер сущностей
func NewEntityManager() *EntityManager {
	return &EntityManager{
		entities:     make(map[uint64]*Entity),
		behaviors:    make(map[EntityType]EntityBehavior),
		nextEntityID: 1,
	}
}

// RegisterBehavior регистрирует поведение для типа сущности
func (em *EntityManager) RegisterBehavior(entityType EntityType, behavior EntityBehavior) {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.behaviors[entityType] = behavior
}

// RegisterDefaultBehaviors регистрирует поведения по умолчанию
func (em *EntityManager) RegisterDefaultBehaviors() {
	em.RegisterBehavior(EntityTypePlayer, NewPlayerBehavior())
	em.RegisterBehavior(EntityTypeAnimal, NewAnimalBehavior())
	em.RegisterBehavior(EntityTypeZombie, NewZombieBehavior())
	em.RegisterBehavior(EntityTypeNecromancer, NewNecromancerBehavior())
	em.RegisterBehavior(EntityTypeProjectile, NewProjectileBehavior())
}

// SpawnEntity создаёт новую сущность в мире
func (em *EntityManager) SpawnEntity(entityType EntityType, position vec.Vec3, api EntityAPI) uint64 {
	em.mu.Lock()
	entityID := em.nextEntityID
	em.nextEntityID++
	entity := NewEntity(entityID, entityType, position)
	em.entities[entityID] = entity
	behavior, hasBehavior := em.behaviors[entityType]
	metrics.EntitiesAlive.Set(float64(len(em.entities)))
	em.mu.Unlock()

	if hasBehavior {
		behavior.OnSpawn(api, entity)
	}
	return entityID
}

// DespawnEntity удаляет сущность из мира
func (em *EntityManager) DespawnEntity(entityID uint64, api EntityAPI) bool {
	em.mu.Lock()
	entity, exists := em.entities[entityID]
	if !exists {
		em.mu.Unlock()
		return false
	}
	behavior, hasBehavior := em.behaviors[entity.Type]
	delete(em.entities, entityID)
	metrics.EntitiesAlive.Set(float64(len(em.entities)))
	em.mu.Unlock()

	if hasBehavior {
		behavior.OnDespawn(api, entity)
	}
	return true
}

// GetEntity возвращает сущность по ID
func (em *EntityManager) GetEntity(entityID uint64) (*Entity, bool) {
	em.mu.RLock()
	defer em.mu.RUnlock()

	entity, exists := em.entities[entityID]
	return entity, exists
}

// GetEntitiesInRange возвращает активные сущности в указанном радиусе
func (em *EntityManager) GetEntitiesInRange(center vec.Vec3Float, radius float64) []*Entity {
	em.mu.RLock()
	defer em.mu.RUnlock()

	var result []*Entity
	for _, entity := range em.entities {
		if entity.Active && center.DistanceTo(entity.PrecisePos) <= radius {
			result = append(result, entity)
		}
	}
	return result
}

// GetBehavior возвращает поведение для типа сущности
func (em *EntityManager) GetBehavior(entityType EntityType) (EntityBehavior, bool) {
	em.mu.RLock()
	defer em.mu.RUnlock()

	behavior, exists := em.behaviors[entityType]
	return behavior, exists
}

// Count возвращает количество сущностей
func (em *EntityManager) Count() int {
	em.mu.RLock()
	defer em.mu.RUnlock()
	return len(em.entities)
}

// UpdateEntities обновляет все активные сущности: поведение и гравитацию
func (em *EntityManager) UpdateEntities(dt float64, api EntityAPI) {
	em.mu.RLock()
	snapshot := make([]*Entity, 0, len(em.entities))
	for _, entity := range em.entities {
		if entity.Active {
			snapshot = append(snapshot, entity)
		}
	}
	em.mu.RUnlock()

	for _, entity := range snapshot {
		if behavior, exists := em.GetBehavior(entity.Type); exists {
			behavior.Update(api, entity, dt)
		}
		// Снаряды летят по собственной траектории без гравитации
		if entity.Type != EntityTypeProjectile {
			em.applyGravity(entity, dt, api)
		}
	}
}

// applyGravity тянет сущность вниз, пока под ней нет опоры
func (em *EntityManager) applyGravity(entity *Entity, dt float64, api EntityAPI) {
	below := vec.Vec3Float{X: entity.PrecisePos.X, Y: entity.PrecisePos.Y - 0.05, Z: entity.PrecisePos.Z}
	if !isPassableBlock(api.GetBlock(below.ToVec3())) {
		entity.Velocity.Y = 0
		return
	}

	entity.Velocity.Y -= gravity * dt
	newY := entity.PrecisePos.Y + entity.Velocity.Y*dt
	candidate := vec.Vec3Float{X: entity.PrecisePos.X, Y: newY, Z: entity.PrecisePos.Z}

	collider := physics.NewBoxCollider(entity.Width, entity.Height)
	if physics.CanMoveToPosition(candidate, collider, func(p vec.Vec3) bool {
		return isPassableBlock(api.GetBlock(p))
	}) {
		entity.PrecisePos = candidate
		entity.Position = candidate.ToVec3()
	} else {
		entity.Velocity.Y = 0
	}
}

// MoveEntity перемещает сущность в горизонтальном направлении.
// Оси проверяются раздельно для скольжения вдоль стен.
func (em *EntityManager) MoveEntity(entity *Entity, direction vec.Vec3Float, dt float64, api EntityAPI) bool {
	behavior, exists := em.GetBehavior(entity.Type)
	if !exists || !entity.Active {
		return false
	}

	dir := vec.Vec3Float{X: direction.X, Y: 0, Z: direction.Z}
	if dir.Length() == 0 {
		entity.Velocity.X = 0
		entity.Velocity.Z = 0
		return false
	}
	dir = dir.Normalized()

	velocity := dir.Mul(behavior.GetMoveSpeed())
	delta := velocity.Mul(dt)

	collider := physics.NewBoxCollider(entity.Width, entity.Height)
	passable := func(p vec.Vec3) bool {
		return isPassableBlock(api.GetBlock(p))
	}

	moved := false
	pos := entity.PrecisePos

	candidateX := vec.Vec3Float{X: pos.X + delta.X, Y: pos.Y, Z: pos.Z}
	if physics.CanMoveToPosition(candidateX, collider, passable) {
		pos.X = candidateX.X
		moved = true
	} else {
		velocity.X = 0
	}

	candidateZ := vec.Vec3Float{X: pos.X, Y: pos.Y, Z: pos.Z + delta.Z}
	if physics.CanMoveToPosition(candidateZ, collider, passable) {
		pos.Z = candidateZ.Z
		moved = true
	} else {
		velocity.Z = 0
	}

	entity.PrecisePos = pos
	entity.Position = pos.ToVec3()
	entity.Velocity.X = velocity.X
	entity.Velocity.Z = velocity.Z
	return moved
}

// isPassableBlock проверяет, можно ли пройти сквозь блок.
// Непроходимы только твёрдые блоки; вода и кусты проходимы.
func isPassableBlock(blockID block.BlockID) bool {
	return !block.IsSolid(blockID)
}
