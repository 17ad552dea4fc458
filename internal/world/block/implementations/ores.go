package implementations

import (
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// OreBehavior реализует поведение рудных блоков.
// Все руды различаются только идентификатором, твёрдостью и добычей.
type OreBehavior struct {
	id       block.BlockID
	name     string
	hardness int
	drop     string
}

// NewOreBehavior создаёт поведение руды с заданными параметрами
func NewOreBehavior(id block.BlockID, name string, hardness int, drop string) *OreBehavior {
	return &OreBehavior{id: id, name: name, hardness: hardness, drop: drop}
}

func (b *OreBehavior) ID() block.BlockID   { return b.id }
func (b *OreBehavior) Name() string        { return b.name }
func (b *OreBehavior) IsSolid() bool       { return true }
func (b *OreBehavior) IsTransparent() bool { return false }
func (b *OreBehavior) Hardness() int       { return b.hardness }
func (b *OreBehavior) IsPlaceable() bool   { return false }
func (b *OreBehavior) NeedsTick() bool     { return false }

func (b *OreBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {}
func (b *OreBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3)    {}
func (b *OreBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3)    {}

func (b *OreBehavior) CreateMetadata() block.Metadata { return block.Metadata{} }

func (b *OreBehavior) HandleInteraction(action string, currentPayload, actionPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	if action == "mine" {
		return handleMine(b.id, b.hardness, []string{b.drop}, currentPayload, actionPayload)
	}
	return unsupportedAction(b.id, currentPayload)
}
