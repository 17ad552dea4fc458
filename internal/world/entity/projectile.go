package entity

import (
	"github.com/annel0/voxel-rpg/internal/physics"
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// ProjectileBehavior определяет полёт снаряда по прямой.
// Снаряд гибнет при попадании в блок, сущность или по истечении
// времени жизни.
type ProjectileBehavior struct {
	lifetime float64
	hitRange float64
}

// NewProjectileBehavior создает новое поведение снаряда
func NewProjectileBehavior() *ProjectileBehavior {
	return &ProjectileBehavior{
		lifetime: 5.0,
		hitRange: 0.7,
	}
}

// Update продвигает снаряд по траектории
func (pb *ProjectileBehavior) Update(api EntityAPI, entity *Entity, dt float64) {
	age := entity.PayloadFloat("age", 0) + dt
	entity.Payload["age"] = age
	if age > pb.lifetime {
		api.DespawnEntity(entity.ID)
		return
	}

	velocity, ok := entity.Payload["velocity"].(vec.Vec3Float)
	if !ok {
		api.DespawnEntity(entity.ID)
		return
	}

	from := entity.PrecisePos
	to := from.Add(velocity.Mul(dt))

	// Проверяем блоки вдоль отрезка перемещения
	if _, hit := physics.RaycastVoxels(from, to, func(p vec.Vec3) bool {
		return !block.IsSolid(api.GetBlock(p))
	}); hit {
		api.DespawnEntity(entity.ID)
		return
	}

	entity.PrecisePos = to
	entity.Position = to.ToVec3()
	entity.Velocity = velocity

	// Проверяем попадание в сущности
	ownerID, _ := entity.Payload["ownerID"].(uint64)
	for _, other := range api.GetEntitiesInRange(to, pb.hitRange) {
		if other.ID == entity.ID || other.ID == ownerID || other.Type == EntityTypeProjectile {
			continue
		}
		damage := entity.PayloadInt("damage", 1)
		api.DamageEntity(other.ID, damage, entity)
		api.DespawnEntity(entity.ID)
		return
	}
}

// OnSpawn вызывается при создании снаряда
func (pb *ProjectileBehavior) OnSpawn(api EntityAPI, entity *Entity) {
	entity.Width = 0.3
	entity.Height = 0.3
	entity.Payload["age"] = 0.0
}

// OnDespawn вызывается при удалении снаряда
func (pb *ProjectileBehavior) OnDespawn(api EntityAPI, entity *Entity) {}

// OnDamage снаряды не получают урон
func (pb *ProjectileBehavior) OnDamage(api EntityAPI, entity *Entity, damage int, source interface{}) bool {
	return false
}

// GetMoveSpeed возвращает номинальную скорость снаряда
func (pb *ProjectileBehavior) GetMoveSpeed() float64 {
	return 10.0
}
