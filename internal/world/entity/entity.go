package entity

import (
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// EntityType представляет тип сущности
type EntityType uint16

const (
	EntityTypePlayer EntityType = iota
	EntityTypeAnimal
	EntityTypeZombie
	EntityTypeNecromancer
	EntityTypeProjectile
	EntityTypeItem
)

// Entity представляет базовую сущность в мире
type Entity struct {
	ID         uint64                 // Уникальный идентификатор сущности
	Type       EntityType             // Тип сущности
	Position   vec.Vec3               // Текущая позиция в мире (в координатах блоков)
	PrecisePos vec.Vec3Float          // Точная позиция для плавного движения (субблоковая точность)
	Velocity   vec.Vec3Float          // Текущая скорость
	Width      float64                // Ширина хитбокса (X и Z)
	Height     float64                // Высота хитбокса
	Payload    map[string]interface{} // Дополнительные данные сущности
	Active     bool                   // Активна ли сущность
}

// NewEntity создаёт новую сущность
func NewEntity(id uint64, entityType EntityType, position vec.Vec3) *Entity {
	return &Entity{
		ID:         id,
		Type:       entityType,
		Position:   position,
		PrecisePos: vec.FromVec3(position),
		Velocity:   vec.Vec3Float{},
		Width:      0.8,
		Height:     1.8,
		Payload:    make(map[string]interface{}),
		Active:     true,
	}
}

// PayloadFloat читает float64 из данных сущности
func (e *Entity) PayloadFloat(key string, def float64) float64 {
	if v, ok := e.Payload[key].(float64); ok {
		return v
	}
	return def
}

// PayloadInt читает int из данных сущности
func (e *Entity) PayloadInt(key string, def int) int {
	if v, ok := e.Payload[key].(int); ok {
		return v
	}
	return def
}

// PayloadString читает string из данных сущности
func (e *Entity) PayloadString(key string, def string) string {
	if v, ok := e.Payload[key].(string); ok {
		return v
	}
	return def
}

// EntityBehavior определяет поведение сущности
type EntityBehavior interface {
	// Update обновляет состояние сущности
	Update(api EntityAPI, entity *Entity, dt float64)

	// OnSpawn вызывается при создании сущности
	OnSpawn(api EntityAPI, entity *Entity)

	// OnDespawn вызывается при удалении сущности
	OnDespawn(api EntityAPI, entity *Entity)

	// OnDamage вызывается при получении урона.
	// Возвращает true, если урон привёл к смерти.
	OnDamage(api EntityAPI, entity *Entity, damage int, source interface{}) bool

	// GetMoveSpeed возвращает скорость движения сущности
	GetMoveSpeed() float64
}

// EntityAPI предоставляет интерфейс для взаимодействия сущностей с миром
type EntityAPI interface {
	// GetBlock возвращает блок по координатам
	GetBlock(pos vec.Vec3) block.BlockID

	// SetBlock устанавливает блок по координатам
	SetBlock(pos vec.Vec3, id block.BlockID)

	// GetEntity возвращает сущность по ID
	GetEntity(entityID uint64) (*Entity, bool)

	// GetEntitiesInRange возвращает сущности в указанном радиусе
	GetEntitiesInRange(center vec.Vec3Float, radius float64) []*Entity

	// SpawnEntity создает новую сущность
	SpawnEntity(entityType EntityType, position vec.Vec3) uint64

	// DespawnEntity удаляет сущность
	DespawnEntity(entityID uint64)

	// DamageEntity наносит урон сущности
	DamageEntity(entityID uint64, damage int, source interface{})

	// MoveEntity перемещает сущность в направлении, проверяя коллизии.
	// Возвращает true, если было смещение хотя бы по одной оси.
	MoveEntity(entity *Entity, direction vec.Vec3Float, dt float64) bool
}
