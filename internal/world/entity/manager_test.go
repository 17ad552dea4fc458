package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
	_ "github.com/annel0/voxel-rpg/internal/world/block/implementations"
)

// testAPI реализует EntityAPI поверх карты блоков для тестов
type testAPI struct {
	em     *EntityManager
	blocks map[vec.Vec3]block.BlockID
}

func newTestAPI() *testAPI {
	em := NewEntityManager()
	em.RegisterDefaultBehaviors()
	return &testAPI{
		em:     em,
		blocks: make(map[vec.Vec3]block.BlockID),
	}
}

// fillFloor выкладывает каменный пол на указанной высоте
func (api *testAPI) fillFloor(y int) {
	for x := -20; x <= 20; x++ {
		for z := -20; z <= 20; z++ {
			api.blocks[vec.Vec3{X: x, Y: y, Z: z}] = block.StoneBlockID
		}
	}
}

func (api *testAPI) GetBlock(pos vec.Vec3) block.BlockID {
	return api.blocks[pos]
}

func (api *testAPI) SetBlock(pos vec.Vec3, id block.BlockID) {
	api.blocks[pos] = id
}

func (api *testAPI) GetEntity(entityID uint64) (*Entity, bool) {
	return api.em.GetEntity(entityID)
}

func (api *testAPI) GetEntitiesInRange(center vec.Vec3Float, radius float64) []*Entity {
	return api.em.GetEntitiesInRange(center, radius)
}

func (api *testAPI) SpawnEntity(entityType EntityType, position vec.Vec3) uint64 {
	return api.em.SpawnEntity(entityType, position, api)
}

func (api *testAPI) DespawnEntity(entityID uint64) {
	api.em.DespawnEntity(entityID, api)
}

func (api *testAPI) DamageEntity(entityID uint64, damage int, source interface{}) {
	e, exists := api.em.GetEntity(entityID)
	if !exists {
		return
	}
	behavior, ok := api.em.GetBehavior(e.Type)
	if !ok {
		return
	}
	if behavior.OnDamage(api, e, damage, source) {
		api.em.DespawnEntity(entityID, api)
	}
}

func (api *testAPI) MoveEntity(e *Entity, direction vec.Vec3Float, dt float64) bool {
	return api.em.MoveEntity(e, direction, dt, api)
}

func TestSpawnDespawn(t *testing.T) {
	api := newTestAPI()

	id := api.SpawnEntity(EntityTypeAnimal, vec.Vec3{X: 0, Y: 10, Z: 0})
	assert.Equal(t, 1, api.em.Count(), "Сущность должна появиться")

	e, exists := api.em.GetEntity(id)
	assert.True(t, exists, "Сущность должна находиться по ID")
	assert.Equal(t, EntityTypeAnimal, e.Type, "Тип сущности должен совпадать")
	assert.Equal(t, "idle", e.PayloadString("state", ""), "Животное должно начинать с простоя")

	api.DespawnEntity(id)
	assert.Equal(t, 0, api.em.Count(), "Сущность должна исчезнуть")
}

func TestGravityPullsEntityDown(t *testing.T) {
	api := newTestAPI()
	api.fillFloor(5)

	id := api.SpawnEntity(EntityTypeAnimal, vec.Vec3{X: 0, Y: 10, Z: 0})
	e, _ := api.em.GetEntity(id)
	startY := e.PrecisePos.Y

	for i := 0; i < 100; i++ {
		api.em.UpdateEntities(0.05, api)
	}

	assert.Less(t, e.PrecisePos.Y, startY, "Сущность должна падать без опоры")
	assert.GreaterOrEqual(t, e.PrecisePos.Y, 5.0, "Сущность не должна проваливаться сквозь пол")
}

func TestMoveEntityBlockedByWall(t *testing.T) {
	api := newTestAPI()
	api.fillFloor(5)
	// Стена на x=2 высотой в два блока
	for _, y := range []int{6, 7} {
		for z := -20; z <= 20; z++ {
			api.blocks[vec.Vec3{X: 2, Y: y, Z: z}] = block.StoneBlockID
		}
	}

	id := api.SpawnEntity(EntityTypePlayer, vec.Vec3{X: 0, Y: 6, Z: 0})
	e, _ := api.em.GetEntity(id)

	for i := 0; i < 100; i++ {
		api.MoveEntity(e, vec.Vec3Float{X: 1}, 0.05)
	}

	assert.Less(t, e.PrecisePos.X, 2.0, "Стена должна останавливать движение")
	assert.Greater(t, e.PrecisePos.X, 0.5, "До стены движение должно идти")
}

func TestZombieAttacksPlayer(t *testing.T) {
	api := newTestAPI()
	api.fillFloor(5)

	playerID := api.SpawnEntity(EntityTypePlayer, vec.Vec3{X: 0, Y: 6, Z: 0})
	api.SpawnEntity(EntityTypeZombie, vec.Vec3{X: 1, Y: 6, Z: 0})

	player, _ := api.em.GetEntity(playerID)
	startHealth := player.PayloadInt("health", 0)

	for i := 0; i < 40; i++ {
		api.em.UpdateEntities(0.05, api)
	}

	assert.Less(t, player.PayloadInt("health", 0), startHealth,
		"Зомби рядом должен наносить урон игроку")
}

func TestZombieIdleWithoutPlayers(t *testing.T) {
	api := newTestAPI()
	api.fillFloor(5)

	zombieID := api.SpawnEntity(EntityTypeZombie, vec.Vec3{X: 0, Y: 6, Z: 0})
	zombie, _ := api.em.GetEntity(zombieID)

	api.em.UpdateEntities(0.05, api)
	assert.Equal(t, "idle", zombie.PayloadString("state", ""),
		"Без игроков зомби должен простаивать")
}

func TestZombieWandersWithoutPlayers(t *testing.T) {
	api := newTestAPI()
	api.fillFloor(5)

	zombieID := api.SpawnEntity(EntityTypeZombie, vec.Vec3{X: 0, Y: 6, Z: 0})
	zombie, _ := api.em.GetEntity(zombieID)

	start := zombie.PrecisePos
	maxShift := 0.0
	// Полминуты игрового времени: несколько циклов простой/блуждание
	for i := 0; i < 1200; i++ {
		api.em.UpdateEntities(0.05, api)
		dx := zombie.PrecisePos.X - start.X
		dz := zombie.PrecisePos.Z - start.Z
		if shift := math.Sqrt(dx*dx + dz*dz); shift > maxShift {
			maxShift = shift
		}
	}

	assert.Greater(t, maxShift, 0.5,
		"Зомби без цели должен блуждать вокруг домашней точки")
}

func TestNecromancerSummonsUpToLimit(t *testing.T) {
	api := newTestAPI()
	api.fillFloor(5)

	playerID := api.SpawnEntity(EntityTypePlayer, vec.Vec3{X: 8, Y: 6, Z: 0})
	player, _ := api.em.GetEntity(playerID)
	necroID := api.SpawnEntity(EntityTypeNecromancer, vec.Vec3{X: 0, Y: 6, Z: 0})
	necro, _ := api.em.GetEntity(necroID)

	// Много циклов, чтобы пройти все кулдауны призыва.
	// Игрока подлечиваем, чтобы цель не пропала до третьего призыва.
	stats := PlayerStats(player)
	require.NotNil(t, stats, "У игрока должны быть характеристики")
	for i := 0; i < 1000; i++ {
		stats.Heal(100)
		api.em.UpdateEntities(0.05, api)
	}

	assert.Equal(t, 3, necro.PayloadInt("minionCount", 0),
		"Некромант не должен превышать лимит миньонов")

	zombies := 0
	for _, e := range api.em.GetEntitiesInRange(necro.PrecisePos, 100) {
		if e.Type == EntityTypeZombie {
			zombies++
		}
	}
	assert.Equal(t, 3, zombies, "Все призванные зомби должны существовать")
}

func TestMinionDeathFreesSummonSlot(t *testing.T) {
	api := newTestAPI()
	api.fillFloor(5)

	necroID := api.SpawnEntity(EntityTypeNecromancer, vec.Vec3{X: 0, Y: 6, Z: 0})
	necro, _ := api.em.GetEntity(necroID)
	necro.Payload["minionCount"] = 1

	zombieID := api.SpawnEntity(EntityTypeZombie, vec.Vec3{X: 2, Y: 6, Z: 0})
	zombie, _ := api.em.GetEntity(zombieID)
	zombie.Payload["ownerID"] = necroID

	api.DamageEntity(zombieID, 1000, nil)
	assert.Equal(t, 0, necro.PayloadInt("minionCount", 0),
		"Гибель миньона должна освобождать слот призыва")
}

func TestProjectileHitsBlock(t *testing.T) {
	api := newTestAPI()
	// Стена на пути снаряда
	api.blocks[vec.Vec3{X: 3, Y: 10, Z: 0}] = block.StoneBlockID

	projectileID := api.SpawnEntity(EntityTypeProjectile, vec.Vec3{X: 0, Y: 10, Z: 0})
	projectile, _ := api.em.GetEntity(projectileID)
	projectile.PrecisePos = vec.Vec3Float{X: 0.5, Y: 10.5, Z: 0.5}
	projectile.Payload["velocity"] = vec.Vec3Float{X: 10}
	projectile.Payload["damage"] = 5

	for i := 0; i < 20; i++ {
		api.em.UpdateEntities(0.05, api)
	}

	_, exists := api.em.GetEntity(projectileID)
	assert.False(t, exists, "Снаряд должен исчезать при попадании в блок")
}

func TestProjectileExpires(t *testing.T) {
	api := newTestAPI()

	projectileID := api.SpawnEntity(EntityTypeProjectile, vec.Vec3{X: 0, Y: 50, Z: 0})
	projectile, _ := api.em.GetEntity(projectileID)
	projectile.Payload["velocity"] = vec.Vec3Float{X: 1}

	for i := 0; i < 120; i++ {
		api.em.UpdateEntities(0.05, api)
	}

	_, exists := api.em.GetEntity(projectileID)
	assert.False(t, exists, "Снаряд должен исчезать по истечении времени жизни")
}
