package entity

import (
	"github.com/annel0/voxel-rpg/internal/vec"
)

// ZombieBehavior определяет поведение зомби: преследование ближайшего
// игрока в радиусе обнаружения и атака в ближнем бою.
// Без цели зомби блуждает вокруг домашней точки, как животное.
type ZombieBehavior struct {
	baseSpeed       float64
	maxHealth       int
	damage          int
	detectionRadius float64
	attackRange     float64
	attackCooldown  float64
	wanderRadius    float64
	idleTimeRange   [2]float64
	moveTimeRange   [2]float64
}

// NewZombieBehavior создает новое поведение зомби
func NewZombieBehavior() *ZombieBehavior {
	return &ZombieBehavior{
		baseSpeed:       3.0,
		maxHealth:       30,
		damage:          8,
		detectionRadius: 12.0,
		attackRange:     1.5,
		attackCooldown:  1.2,
		wanderRadius:    6.0,
		idleTimeRange:   [2]float64{1.0, 4.0},
		moveTimeRange:   [2]float64{1.0, 3.0},
	}
}

// Update обновляет состояние зомби
func (zb *ZombieBehavior) Update(api EntityAPI, entity *Entity, dt float64) {
	cooldown := entity.PayloadFloat("attackCooldown", 0)
	if cooldown > 0 {
		entity.Payload["attackCooldown"] = cooldown - dt
	}

	target := findNearestPlayer(api, entity, zb.detectionRadius)
	if target == nil {
		zb.wander(api, entity, dt)
		return
	}

	distance := entity.PrecisePos.DistanceTo(target.PrecisePos)
	if distance <= zb.attackRange {
		entity.Payload["state"] = "attacking"
		if entity.PayloadFloat("attackCooldown", 0) <= 0 {
			api.DamageEntity(target.ID, zb.damage, entity)
			entity.Payload["attackCooldown"] = zb.attackCooldown
		}
		return
	}

	entity.Payload["state"] = "chasing"
	direction := target.PrecisePos.Sub(entity.PrecisePos)
	api.MoveEntity(entity, direction, dt)
}

// wander чередует простой и блуждание вокруг домашней точки,
// пока в радиусе обнаружения нет игроков
func (zb *ZombieBehavior) wander(api EntityAPI, entity *Entity, dt float64) {
	state := entity.PayloadString("state", "idle")
	actionTimer := entity.PayloadFloat("actionTimer", 0) - dt
	entity.Payload["actionTimer"] = actionTimer

	if actionTimer <= 0 {
		if state == "wandering" {
			entity.Payload["state"] = "idle"
			entity.Payload["actionTimer"] = randomInRange(zb.idleTimeRange)
		} else {
			entity.Payload["state"] = "wandering"
			entity.Payload["actionTimer"] = randomInRange(zb.moveTimeRange)

			home, ok := entity.Payload["homePosition"].(vec.Vec3)
			if !ok {
				home = entity.Position
				entity.Payload["homePosition"] = home
			}
			entity.Payload["targetPosition"] = randomPositionInRadius(home, zb.wanderRadius)
		}
		return
	}

	if state != "wandering" {
		return
	}
	target, ok := entity.Payload["targetPosition"].(vec.Vec3)
	if !ok {
		return
	}
	targetFloat := vec.FromVec3(target)
	if entity.PrecisePos.DistanceTo(targetFloat) < 0.5 {
		entity.Payload["state"] = "idle"
		entity.Payload["actionTimer"] = randomInRange(zb.idleTimeRange)
		return
	}
	api.MoveEntity(entity, targetFloat.Sub(entity.PrecisePos), dt)
}

// OnSpawn вызывается при создании зомби
func (zb *ZombieBehavior) OnSpawn(api EntityAPI, entity *Entity) {
	entity.Payload["health"] = zb.maxHealth
	entity.Payload["state"] = "idle"
	entity.Payload["attackCooldown"] = 0.0
	entity.Payload["actionTimer"] = randomInRange(zb.idleTimeRange)
	entity.Payload["homePosition"] = entity.Position
}

// OnDespawn вызывается при удалении зомби
func (zb *ZombieBehavior) OnDespawn(api EntityAPI, entity *Entity) {
	// Некромант узнаёт о гибели миньона по счётчику в своих данных
	if ownerID, ok := entity.Payload["ownerID"].(uint64); ok {
		if owner, exists := api.GetEntity(ownerID); exists {
			minions := owner.PayloadInt("minionCount", 0)
			if minions > 0 {
				owner.Payload["minionCount"] = minions - 1
			}
		}
	}
}

// OnDamage вызывается при получении урона
func (zb *ZombieBehavior) OnDamage(api EntityAPI, entity *Entity, damage int, source interface{}) bool {
	health := entity.PayloadInt("health", zb.maxHealth)
	health -= damage
	if health <= 0 {
		entity.Payload["health"] = 0
		return true
	}
	entity.Payload["health"] = health
	return false
}

// GetMoveSpeed возвращает скорость движения зомби
func (zb *ZombieBehavior) GetMoveSpeed() float64 {
	return zb.baseSpeed
}

// findNearestPlayer ищет ближайшего игрока в радиусе
func findNearestPlayer(api EntityAPI, entity *Entity, radius float64) *Entity {
	var nearest *Entity
	nearestDist := radius + 1
	for _, other := range api.GetEntitiesInRange(entity.PrecisePos, radius) {
		if other.Type != EntityTypePlayer || other.ID == entity.ID {
			continue
		}
		d := entity.PrecisePos.DistanceTo(other.PrecisePos)
		if d < nearestDist {
			nearest = other
			nearestDist = d
		}
	}
	return nearest
}
