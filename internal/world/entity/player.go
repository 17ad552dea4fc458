package entity

import (
	"github.com/annel0/voxel-rpg/internal/player"
)

// PlayerBehavior определяет серверное поведение игрока.
// Движение игрока задаётся вводом, поэтому перемещений в Update нет;
// здоровьем, голодом и выносливостью владеет player.Stats.
type PlayerBehavior struct {
	baseSpeed float64
}

// NewPlayerBehavior создает новое поведение игрока
func NewPlayerBehavior() *PlayerBehavior {
	return &PlayerBehavior{
		baseSpeed: 5.0,
	}
}

// PlayerStats достаёт характеристики игрока из данных сущности
func PlayerStats(entity *Entity) *player.Stats {
	if s, ok := entity.Payload["stats"].(*player.Stats); ok {
		return s
	}
	return nil
}

// syncHealth зеркалирует здоровье в данные сущности,
// чтобы ИИ мобов видел его без знания о характеристиках
func syncHealth(entity *Entity, stats *player.Stats) {
	entity.Payload["health"] = int(stats.Health())
}

// Update продвигает фоновые характеристики игрока
func (pb *PlayerBehavior) Update(api EntityAPI, entity *Entity, dt float64) {
	stats := PlayerStats(entity)
	if stats == nil {
		return
	}
	stats.Tick(dt)
	syncHealth(entity, stats)
}

// OnSpawn вызывается при создании игрока
func (pb *PlayerBehavior) OnSpawn(api EntityAPI, entity *Entity) {
	stats := player.NewStats(entity.ID)
	entity.Payload["stats"] = stats
	entity.Payload["maxHealth"] = player.MaxHealth
	syncHealth(entity, stats)
}

// OnDespawn вызывается при удалении игрока
func (pb *PlayerBehavior) OnDespawn(api EntityAPI, entity *Entity) {}

// OnDamage вызывается при получении урона
func (pb *PlayerBehavior) OnDamage(api EntityAPI, entity *Entity, damage int, source interface{}) bool {
	stats := PlayerStats(entity)
	if stats == nil {
		return false
	}
	died := stats.Damage(float64(damage))
	syncHealth(entity, stats)
	return died
}

// GetMoveSpeed возвращает скорость движения игрока
func (pb *PlayerBehavior) GetMoveSpeed() float64 {
	return pb.baseSpeed
}
