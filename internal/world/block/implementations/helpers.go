package implementations

import (
	"github.com/annel0/voxel-rpg/internal/world/block"
)

// handleMine реализует общую логику добычи: уменьшает прочность блока и
// превращает его в воздух, когда прочность исчерпана.
func handleMine(id block.BlockID, baseHardness int, drops []string, currentPayload, actionPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	// Копируем текущие метаданные
	newPayload := make(map[string]interface{})
	for k, v := range currentPayload {
		newPayload[k] = v
	}

	// Получаем текущую прочность
	hardness := baseHardness
	if h, ok := currentPayload["hardness"].(float64); ok {
		hardness = int(h)
	} else if h, ok := currentPayload["hardness"].(int); ok {
		hardness = h
	}

	// Сила воздействия (по умолчанию 1)
	strength := 1
	if s, ok := actionPayload["strength"].(float64); ok {
		strength = int(s)
	}

	hardness -= strength
	newPayload["hardness"] = hardness

	// Если прочность исчерпана, блок разрушается
	if hardness <= 0 {
		return block.AirBlockID, map[string]interface{}{}, block.InteractionResult{
			Success: true,
			Message: "Блок разрушен",
			Drops:   drops,
		}
	}

	return id, newPayload, block.InteractionResult{
		Success: true,
		Message: "Блок поврежден",
	}
}

// unsupportedAction возвращает стандартный отказ для неизвестного действия
func unsupportedAction(id block.BlockID, currentPayload map[string]interface{}) (block.BlockID, map[string]interface{}, block.InteractionResult) {
	return id, currentPayload, block.InteractionResult{
		Success: false,
		Message: "Действие не поддерживается",
	}
}
