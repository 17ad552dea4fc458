package implementations

import (
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// init регистрирует все поведения блоков при загрузке пакета
func init() {
	block.Register(block.AirBlockID, &AirBehavior{})
	block.Register(block.StoneBlockID, &StoneBehavior{})
	block.Register(block.GrassBlockID, &GrassBehavior{})
	block.Register(block.DirtBlockID, &DirtBehavior{})
	block.Register(block.SandBlockID, &SandBehavior{})
	block.Register(block.WaterBlockID, &WaterBehavior{})

	block.Register(block.LogBlockID, &LogBehavior{})
	block.Register(block.LeavesBlockID, &LeavesBehavior{})
	block.Register(block.BushBlockID, &BushBehavior{})

	block.Register(block.CoalOreBlockID, NewOreBehavior(block.CoalOreBlockID, "CoalOre", 12, "coal"))
	block.Register(block.IronOreBlockID, NewOreBehavior(block.IronOreBlockID, "IronOre", 15, "iron_ore"))
	block.Register(block.GoldOreBlockID, NewOreBehavior(block.GoldOreBlockID, "GoldOre", 18, "gold_ore"))
}
