package implementations

import (
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// WaterBehavior реализует поведение блока воды.
// Вода растекается на соседние блоки, теряя уровень с каждым шагом.
type WaterBehavior struct{}

const maxWaterLevel = 7

func (b *WaterBehavior) ID() block.BlockID   { return block.WaterBlockID }
func (b *WaterBehavior) Name() string        { return "Water" }
func (b *WaterBehavior) IsSolid() bool       { return false }
func (b *WaterBehavior) IsTransparent() bool { return true }
func (b *WaterBehavior) Hardness() int       { return 0 }
func (b *WaterBehavior) IsPlaceable() bool   { return true }
func (b *WaterBehavior) NeedsTick() bool     { return true }

func waterLevel(api block.BlockAPI, pos vec.Vec3) int {
	if v, ok := api.GetBlockMetadata(pos, "level"); ok {
		if lvl, ok2 := v.(int); ok2 {
			return lvl
		}
	}
	return maxWaterLevel
}

// TickUpdate растекает воду вниз и по горизонтали.
// Вертикальный поток сохраняет уровень, горизонтальный уменьшает на 1.
func (b *WaterBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	level := waterLevel(api, pos)

	below := pos.Add(vec.Vec3{X: 0, Y: -1, Z: 0})
	if api.GetBlockID(below) == block.AirBlockID {
		api.SetBlock(below, block.WaterBlockID)
		api.SetBlockMetadata(below, "level", maxWaterLevel)
		return
	}

	if level <= 1 {
		return
	}
	neighbors := []vec.Vec3{
		pos.Add(vec.Vec3{X: 1, Y: 0, Z: 0}),
		pos.Add(vec.Vec3{X: -1, Y: 0, Z: 0}),
		pos.Add(vec.Vec3{X: 0, Y: 0, Z: 1}),
		pos.Add(vec.Vec3{X: 0, Y: 0, Z: -1}),
	}
	for _, target := range neighbors {
		if api.GetBlockID(target) != block.AirBlockID {
			continue
		}
		api.SetBlock(target, block.WaterBlockID)
		api.SetBlockMetadata(target, "level", level-1)
	}
}

func (b *WaterBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "level", maxWaterLevel)
}

func (b *WaterBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {}

func (b *WaterBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{"level": maxWaterLevel}
}

func (b *WaterBehavior) HandleInteraction(action string, currentPayload, actionPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	if action == "scoop" {
		// Зачерпнуть воду ведром: блок исчезает целиком
		return block.AirBlockID, nil, block.InteractionResult{
			Success: true,
			Message: "Вода зачерпнута",
			Drops:   []string{"water_bucket"},
		}
	}
	return unsupportedAction(block.WaterBlockID, currentPayload)
}
