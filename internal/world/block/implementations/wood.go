package implementations

import (
	"math/rand"

	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// LogBehavior реализует поведение ствола дерева
type LogBehavior struct{}

func (b *LogBehavior) ID() block.BlockID   { return block.LogBlockID }
func (b *LogBehavior) Name() string        { return "Log" }
func (b *LogBehavior) IsSolid() bool       { return true }
func (b *LogBehavior) IsTransparent() bool { return false }
func (b *LogBehavior) Hardness() int       { return 5 }
func (b *LogBehavior) IsPlaceable() bool   { return true }
func (b *LogBehavior) NeedsTick() bool     { return false }

func (b *LogBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {}
func (b *LogBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3)    {}
func (b *LogBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3)    {}

func (b *LogBehavior) CreateMetadata() block.Metadata { return block.Metadata{} }

func (b *LogBehavior) HandleInteraction(action string, currentPayload, actionPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	if action == "mine" {
		return handleMine(block.LogBlockID, b.Hardness(), []string{"log"}, currentPayload, actionPayload)
	}
	return unsupportedAction(block.LogBlockID, currentPayload)
}

// LeavesBehavior реализует поведение листвы.
// Листва без ствола поблизости со временем увядает.
type LeavesBehavior struct{}

func (b *LeavesBehavior) ID() block.BlockID   { return block.LeavesBlockID }
func (b *LeavesBehavior) Name() string        { return "Leaves" }
func (b *LeavesBehavior) IsSolid() bool       { return true }
func (b *LeavesBehavior) IsTransparent() bool { return true }
func (b *LeavesBehavior) Hardness() int       { return 1 }
func (b *LeavesBehavior) IsPlaceable() bool   { return true }
func (b *LeavesBehavior) NeedsTick() bool     { return true }

// TickUpdate проверяет наличие ствола в радиусе 2 блоков.
// Без опоры листва увядает с небольшой вероятностью за тик.
func (b *LeavesBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	for dx := -2; dx <= 2; dx++ {
		for dy := -2; dy <= 2; dy++ {
			for dz := -2; dz <= 2; dz++ {
				p := pos.Add(vec.Vec3{X: dx, Y: dy, Z: dz})
				if api.GetBlockID(p) == block.LogBlockID {
					return
				}
			}
		}
	}
	if rand.Intn(100) < 20 {
		api.SetBlock(pos, block.AirBlockID)
	}
}

func (b *LeavesBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {}
func (b *LeavesBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {}

func (b *LeavesBehavior) CreateMetadata() block.Metadata { return block.Metadata{} }

func (b *LeavesBehavior) HandleInteraction(action string, currentPayload, actionPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	if action == "mine" {
		drops := []string{}
		// Иногда из листвы выпадает саженец
		if rand.Intn(100) < 15 {
			drops = append(drops, "sapling")
		}
		return handleMine(block.LeavesBlockID, b.Hardness(), drops, currentPayload, actionPayload)
	}
	return unsupportedAction(block.LeavesBlockID, currentPayload)
}

// BushBehavior реализует поведение куста
type BushBehavior struct{}

func (b *BushBehavior) ID() block.BlockID   { return block.BushBlockID }
func (b *BushBehavior) Name() string        { return "Bush" }
func (b *BushBehavior) IsSolid() bool       { return false }
func (b *BushBehavior) IsTransparent() bool { return true }
func (b *BushBehavior) Hardness() int       { return 1 }
func (b *BushBehavior) IsPlaceable() bool   { return true }
func (b *BushBehavior) NeedsTick() bool     { return true }

// TickUpdate наращивает ягоды на кусте
func (b *BushBehavior) TickUpdate(api block.BlockAPI, pos vec.Vec3) {
	berries := 0
	if v, ok := api.GetBlockMetadata(pos, "berries"); ok {
		if n, ok2 := v.(int); ok2 {
			berries = n
		}
	}
	if berries < 3 && rand.Intn(100) < 10 {
		api.SetBlockMetadata(pos, "berries", berries+1)
	}
}

func (b *BushBehavior) OnPlace(api block.BlockAPI, pos vec.Vec3) {
	api.SetBlockMetadata(pos, "berries", 0)
}

func (b *BushBehavior) OnBreak(api block.BlockAPI, pos vec.Vec3) {}

func (b *BushBehavior) CreateMetadata() block.Metadata {
	return block.Metadata{"berries": 0}
}

func (b *BushBehavior) HandleInteraction(action string, currentPayload, actionPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	switch action {
	case "harvest":
		berries := 0
		if v, ok := currentPayload["berries"]; ok {
			if n, ok2 := v.(int); ok2 {
				berries = n
			}
		}
		if berries == 0 {
			return block.BushBlockID, currentPayload, block.InteractionResult{
				Success: false,
				Message: "Куст ещё не созрел",
			}
		}
		drops := make([]string, 0, berries)
		for i := 0; i < berries; i++ {
			drops = append(drops, "berries")
		}
		newPayload := map[string]interface{}{"berries": 0}
		return block.BushBlockID, newPayload, block.InteractionResult{
			Success: true,
			Message: "Ягоды собраны",
			Drops:   drops,
		}
	case "mine":
		return handleMine(block.BushBlockID, b.Hardness(), []string{"stick"}, currentPayload, actionPayload)
	}
	return unsupportedAction(block.BushBlockID, currentPayload)
}
