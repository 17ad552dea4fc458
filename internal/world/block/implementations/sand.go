package implementations

import (
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// SandBehavior реализует поведение блока песка.
// Песок падает вниз, если под ним воздух.
type SandBehavior struct{}

func (b *SandBehavior) ID() block.BlockID   { return block.SandBlockID }
func (b *SandBehavior) Name() string        { return "Sand" }
func (b *SandBehavior) IsSolid() bool       { return true }
func (b *SandBehavior) IsTransparent() bool { return false }
func (b *SandBehavior) Hardness() int       { return 2 }
func (b *SandBehavior) IsPlaceable() bool   { return true }
func (b *SandBehavior) NeedsTick() bool     { return true }

// TickUpdate роняет песок на один блок вниз при отсутствии опоры.
func (b *SandBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	below := pos.Add(vec.Vec3{X: 0, Y: -1, Z: 0})
	if api.GetBlockID(below) == block.AirBlockID {
		api.SetBlock(pos, block.AirBlockID)
		api.SetBlock(below, block.SandBlockID)
	}
}

func (b *SandBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {}
func (b *SandBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {}

func (b *SandBehavior) CreateMetadata() block.Metadata { return block.Metadata{} }

func (b *SandBehavior) HandleInteraction(action string, currentPayload, actionPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	if action == "mine" {
		return handleMine(block.SandBlockID, b.Hardness(), []string{"sand"}, currentPayload, actionPayload)
	}
	return unsupportedAction(block.SandBlockID, currentPayload)
}
