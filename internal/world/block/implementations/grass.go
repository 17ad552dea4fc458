package implementations

import (
	"math/rand"

	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// GrassBehavior реализует поведение травяного блока.
// Трава растёт со временем и распространяется на соседнюю землю.
type GrassBehavior struct{}

func (b *GrassBehavior) ID() block.BlockID   { return block.GrassBlockID }
func (b *GrassBehavior) Name() string        { return "Grass" }
func (b *GrassBehavior) IsSolid() bool       { return true }
func (b *GrassBehavior) IsTransparent() bool { return false }
func (b *GrassBehavior) Hardness() int       { return 3 }
func (b *GrassBehavior) IsPlaceable() bool   { return true }
func (b *GrassBehavior) NeedsTick() bool     { return true }

// TickUpdate наращивает стадию роста и пытается распространить траву
// на соседние блоки земли. Трава выживает только с воздухом сверху.
func (b *GrassBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	above := pos.Add(vec.Vec3{X: 0, Y: 1, Z: 0})
	if api.GetBlockID(above) != block.AirBlockID {
		// Трава задохнулась под непрозрачным блоком
		if !block.IsTransparent(api.GetBlockID(above)) {
			api.SetBlock(pos, block.DirtBlockID)
			return
		}
	}

	growth := 0
	if v, ok := api.GetBlockMetadata(pos, "growth_stage"); ok {
		if g, ok2 := v.(int); ok2 {
			growth = g
		}
	}
	if growth < 3 {
		if rand.Intn(100) < 25 {
			api.SetBlockMetadata(pos, "growth_stage", growth+1)
		}
		return
	}

	// Зрелая трава распространяется на соседнюю землю
	if rand.Intn(100) >= 10 {
		return
	}
	neighbors := []vec.Vec3{
		pos.Add(vec.Vec3{X: 1, Y: 0, Z: 0}),
		pos.Add(vec.Vec3{X: -1, Y: 0, Z: 0}),
		pos.Add(vec.Vec3{X: 0, Y: 0, Z: 1}),
		pos.Add(vec.Vec3{X: 0, Y: 0, Z: -1}),
	}
	target := neighbors[rand.Intn(len(neighbors))]
	if api.GetBlockID(target) != block.DirtBlockID {
		return
	}
	targetAbove := target.Add(vec.Vec3{X: 0, Y: 1, Z: 0})
	if api.GetBlockID(targetAbove) == block.AirBlockID {
		api.SetBlock(target, block.GrassBlockID)
	}
}

func (b *GrassBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "growth_stage", 0)
}

func (b *GrassBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {}

func (b *GrassBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{"growth_stage": 0}
}

func (b *GrassBehavior) HandleInteraction(action string, currentPayload, actionPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	if action == "mine" {
		// Трава при добыче превращается в землю в инвентаре
		return handleMine(block.GrassBlockID, b.Hardness(), []string{"dirt"}, currentPayload, actionPayload)
	}
	return unsupportedAction(block.GrassBlockID, currentPayload)
}
