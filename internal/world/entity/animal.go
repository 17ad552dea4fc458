package entity

import (
	"math"
	"math/rand"

	"github.com/annel0/voxel-rpg/internal/vec"
)

// AnimalBehavior определяет поведение мирного животного:
// чередование простоя и блуждания вокруг домашней точки
type AnimalBehavior struct {
	baseSpeed     float64
	maxHealth     int
	wanderRadius  float64
	idleTimeRange [2]float64 // Мин/макс время простоя
	moveTimeRange [2]float64 // Мин/макс время движения
}

// NewAnimalBehavior создает новое поведение животного
func NewAnimalBehavior() *AnimalBehavior {
	return &AnimalBehavior{
		baseSpeed:     2.0,
		maxHealth:     20,
		wanderRadius:  8.0,
		idleTimeRange: [2]float64{1.0, 5.0},
		moveTimeRange: [2]float64{1.0, 3.0},
	}
}

// Update обновляет состояние животного
func (ab *AnimalBehavior) Update(api EntityAPI, entity *Entity, dt float64) {
	state := entity.PayloadString("state", "idle")
	actionTimer := entity.PayloadFloat("actionTimer", 0) - dt
	entity.Payload["actionTimer"] = actionTimer

	if actionTimer <= 0 {
		switch state {
		case "idle":
			entity.Payload["state"] = "moving"
			entity.Payload["actionTimer"] = randomInRange(ab.moveTimeRange)

			home, ok := entity.Payload["homePosition"].(vec.Vec3)
			if !ok {
				home = entity.Position
				entity.Payload["homePosition"] = home
			}
			entity.Payload["targetPosition"] = randomPositionInRadius(home, ab.wanderRadius)
		case "moving":
			entity.Payload["state"] = "idle"
			entity.Payload["actionTimer"] = randomInRange(ab.idleTimeRange)
		case "fleeing":
			entity.Payload["state"] = "idle"
			entity.Payload["actionTimer"] = randomInRange(ab.idleTimeRange)
		}
		return
	}

	switch state {
	case "moving", "fleeing":
		target, ok := entity.Payload["targetPosition"].(vec.Vec3)
		if !ok {
			return
		}
		targetFloat := vec.FromVec3(target)
		if entity.PrecisePos.DistanceTo(targetFloat) < 0.5 {
			entity.Payload["state"] = "idle"
			entity.Payload["actionTimer"] = randomInRange(ab.idleTimeRange)
			return
		}
		direction := targetFloat.Sub(entity.PrecisePos)
		api.MoveEntity(entity, direction, dt)
	}
}

// OnSpawn вызывается при создании животного
func (ab *AnimalBehavior) OnSpawn(api EntityAPI, entity *Entity) {
	entity.Payload["health"] = ab.maxHealth
	entity.Payload["state"] = "idle"
	entity.Payload["actionTimer"] = randomInRange(ab.idleTimeRange)
	entity.Payload["homePosition"] = entity.Position
	entity.Width = 0.9
	entity.Height = 1.0
}

// OnDespawn вызывается при удалении животного
func (ab *AnimalBehavior) OnDespawn(api EntityAPI, entity *Entity) {}

// OnDamage вызывается при получении урона.
// Животное убегает от источника урона.
func (ab *AnimalBehavior) OnDamage(api EntityAPI, entity *Entity, damage int, source interface{}) bool {
	health := entity.PayloadInt("health", ab.maxHealth)
	health -= damage
	if health <= 0 {
		entity.Payload["health"] = 0
		return true
	}
	entity.Payload["health"] = health

	entity.Payload["state"] = "fleeing"
	entity.Payload["actionTimer"] = 5.0
	if sourceEntity, ok := source.(*Entity); ok {
		fleeDir := entity.PrecisePos.Sub(sourceEntity.PrecisePos).Normalized()
		target := entity.PrecisePos.Add(fleeDir.Mul(ab.wanderRadius))
		entity.Payload["targetPosition"] = target.ToVec3()
	}
	return false
}

// GetMoveSpeed возвращает скорость движения животного
func (ab *AnimalBehavior) GetMoveSpeed() float64 {
	return ab.baseSpeed
}

// randomInRange возвращает случайное число в указанном диапазоне
func randomInRange(r [2]float64) float64 {
	return r[0] + rand.Float64()*(r[1]-r[0])
}

// randomPositionInRadius возвращает случайную позицию в радиусе от центра.
// Высота не меняется, сущность сама упадёт или упрётся в рельеф.
func randomPositionInRadius(center vec.Vec3, radius float64) vec.Vec3 {
	angle := rand.Float64() * 2 * math.Pi
	// Корень для равномерного распределения по площади
	distance := radius * math.Sqrt(rand.Float64())

	return vec.Vec3{
		X: center.X + int(distance*math.Cos(angle)),
		Y: center.Y,
		Z: center.Z + int(distance*math.Sin(angle)),
	}
}
