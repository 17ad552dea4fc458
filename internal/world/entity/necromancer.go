package entity

import (
	"github.com/annel0/voxel-rpg/internal/vec"
)

// NecromancerBehavior определяет поведение некроманта.
// Состояния: idle, patrol, chase, attack, summon. Некромант держит
// дистанцию, стреляет снарядами и призывает зомби до лимита.
type NecromancerBehavior struct {
	baseSpeed       float64
	maxHealth       int
	detectionRadius float64
	attackRange     float64 // Дальность выстрела
	retreatRange    float64 // Ближе этой дистанции некромант отступает
	attackCooldown  float64
	summonCooldown  float64
	minionLimit     int
	patrolRadius    float64
}

// NewNecromancerBehavior создает новое поведение некроманта
func NewNecromancerBehavior() *NecromancerBehavior {
	return &NecromancerBehavior{
		baseSpeed:       2.5,
		maxHealth:       60,
		detectionRadius: 16.0,
		attackRange:     12.0,
		retreatRange:    5.0,
		attackCooldown:  2.5,
		summonCooldown:  8.0,
		minionLimit:     3,
		patrolRadius:    10.0,
	}
}

// Update обновляет состояние некроманта
func (nb *NecromancerBehavior) Update(api EntityAPI, entity *Entity, dt float64) {
	for _, key := range []string{"attackCooldown", "summonCooldown"} {
		if v := entity.PayloadFloat(key, 0); v > 0 {
			entity.Payload[key] = v - dt
		}
	}

	target := findNearestPlayer(api, entity, nb.detectionRadius)
	if target == nil {
		nb.patrol(api, entity, dt)
		return
	}

	distance := entity.PrecisePos.DistanceTo(target.PrecisePos)

	// Призыв приоритетнее атаки, пока есть свободные слоты
	if entity.PayloadFloat("summonCooldown", 0) <= 0 &&
		entity.PayloadInt("minionCount", 0) < nb.minionLimit {
		nb.summon(api, entity)
		return
	}

	switch {
	case distance < nb.retreatRange:
		entity.Payload["state"] = "chase"
		// Слишком близко: отходим от цели
		away := entity.PrecisePos.Sub(target.PrecisePos)
		api.MoveEntity(entity, away, dt)
	case distance <= nb.attackRange:
		entity.Payload["state"] = "attack"
		if entity.PayloadFloat("attackCooldown", 0) <= 0 {
			nb.fireProjectile(api, entity, target)
			entity.Payload["attackCooldown"] = nb.attackCooldown
		}
	default:
		entity.Payload["state"] = "chase"
		direction := target.PrecisePos.Sub(entity.PrecisePos)
		api.MoveEntity(entity, direction, dt)
	}
}

// patrol водит некроманта между случайными точками вокруг дома
func (nb *NecromancerBehavior) patrol(api EntityAPI, entity *Entity, dt float64) {
	state := entity.PayloadString("state", "idle")
	actionTimer := entity.PayloadFloat("actionTimer", 0) - dt
	entity.Payload["actionTimer"] = actionTimer

	if actionTimer <= 0 {
		if state == "patrol" {
			entity.Payload["state"] = "idle"
			entity.Payload["actionTimer"] = randomInRange([2]float64{2.0, 6.0})
		} else {
			entity.Payload["state"] = "patrol"
			entity.Payload["actionTimer"] = randomInRange([2]float64{2.0, 5.0})
			home, ok := entity.Payload["homePosition"].(vec.Vec3)
			if !ok {
				home = entity.Position
				entity.Payload["homePosition"] = home
			}
			entity.Payload["targetPosition"] = randomPositionInRadius(home, nb.patrolRadius)
		}
		return
	}

	if state == "patrol" {
		target, ok := entity.Payload["targetPosition"].(vec.Vec3)
		if !ok {
			return
		}
		targetFloat := vec.FromVec3(target)
		if entity.PrecisePos.DistanceTo(targetFloat) < 0.5 {
			entity.Payload["state"] = "idle"
			entity.Payload["actionTimer"] = randomInRange([2]float64{2.0, 6.0})
			return
		}
		api.MoveEntity(entity, targetFloat.Sub(entity.PrecisePos), dt)
	}
}

// summon призывает зомби рядом с некромантом
func (nb *NecromancerBehavior) summon(api EntityAPI, entity *Entity) {
	entity.Payload["state"] = "summon"
	entity.Payload["summonCooldown"] = nb.summonCooldown

	spawnPos := entity.Position.Add(vec.Vec3{X: 1})
	minionID := api.SpawnEntity(EntityTypeZombie, spawnPos)
	if minion, exists := api.GetEntity(minionID); exists {
		minion.Payload["ownerID"] = entity.ID
	}
	entity.Payload["minionCount"] = entity.PayloadInt("minionCount", 0) + 1
}

// fireProjectile выпускает снаряд в цель
func (nb *NecromancerBehavior) fireProjectile(api EntityAPI, entity *Entity, target *Entity) {
	origin := entity.PrecisePos.Add(vec.Vec3Float{Y: entity.Height * 0.8})
	aim := target.PrecisePos.Add(vec.Vec3Float{Y: target.Height * 0.5})

	projectileID := api.SpawnEntity(EntityTypeProjectile, origin.ToVec3())
	projectile, exists := api.GetEntity(projectileID)
	if !exists {
		return
	}
	projectile.PrecisePos = origin
	projectile.Payload["ownerID"] = entity.ID
	projectile.Payload["damage"] = 6
	velocity := aim.Sub(origin).Normalized().Mul(10.0)
	projectile.Payload["velocity"] = velocity
}

// OnSpawn вызывается при создании некроманта
func (nb *NecromancerBehavior) OnSpawn(api EntityAPI, entity *Entity) {
	entity.Payload["health"] = nb.maxHealth
	entity.Payload["state"] = "idle"
	entity.Payload["actionTimer"] = 0.0
	entity.Payload["attackCooldown"] = 0.0
	entity.Payload["summonCooldown"] = 0.0
	entity.Payload["minionCount"] = 0
	entity.Payload["homePosition"] = entity.Position
}

// OnDespawn вызывается при удалении некроманта
func (nb *NecromancerBehavior) OnDespawn(api EntityAPI, entity *Entity) {}

// OnDamage вызывается при получении урона
func (nb *NecromancerBehavior) OnDamage(api EntityAPI, entity *Entity, damage int, source interface{}) bool {
	health := entity.PayloadInt("health", nb.maxHealth)
	health -= damage
	if health <= 0 {
		entity.Payload["health"] = 0
		return true
	}
	entity.Payload["health"] = health

	// Ответный призыв при уроне, если кулдаун позволяет
	if entity.PayloadFloat("summonCooldown", 0) <= 0 &&
		entity.PayloadInt("minionCount", 0) < nb.minionLimit {
		nb.summon(api, entity)
	}
	return false
}

// GetMoveSpeed возвращает скорость движения некроманта
func (nb *NecromancerBehavior) GetMoveSpeed() float64 {
	return nb.baseSpeed
}
