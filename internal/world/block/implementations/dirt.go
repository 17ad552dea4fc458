package implementations

import (
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// DirtBehavior реализует поведение блока земли
type DirtBehavior struct{}

func (b *DirtBehavior) ID() block.BlockID   { return block.DirtBlockID }
func (b *DirtBehavior) Name() string        { return "Dirt" }
func (b *DirtBehavior) IsSolid() bool       { return true }
func (b *DirtBehavior) IsTransparent() bool { return false }
func (b *DirtBehavior) Hardness() int       { return 3 }
func (b *DirtBehavior) IsPlaceable() bool   { return true }
func (b *DirtBehavior) NeedsTick() bool     { return false }

func (b *DirtBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {}

func (b *DirtBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	// Свежая земля сухая; трава с соседних блоков может прорасти на неё
	api.SetBlockMetadata(pos, "moisture", 0)
}

func (b *DirtBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {}

func (b *DirtBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{"moisture": 0}
}

func (b *DirtBehavior) HandleInteraction(action string, currentPayload, actionPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	if action == "mine" {
		return handleMine(block.DirtBlockID, b.Hardness(), []string{"dirt"}, currentPayload, actionPayload)
	}
	return unsupportedAction(block.DirtBlockID, currentPayload)
}
