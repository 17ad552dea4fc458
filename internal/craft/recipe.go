package craft

import (
	"sync"

	"github.com/annel0/voxel-rpg/internal/config"
	"github.com/annel0/voxel-rpg/internal/logging"
)

// Recipe описывает рецепт крафта
type Recipe struct {
	ID           string
	Inputs       map[string]int // Предмет -> количество
	Output       string
	OutputCount  int
	CraftSeconds float64
}

// RecipeRegistry хранит известные рецепты
type RecipeRegistry struct {
	recipes map[string]*Recipe
	mu      sync.RWMutex
}

// NewRecipeRegistry создаёт пустой регистр рецептов
func NewRecipeRegistry() *RecipeRegistry {
	return &RecipeRegistry{
		recipes: make(map[string]*Recipe),
	}
}

// LoadFromConfig заполняет регистр из конфигурации.
// Рецепты без ID или выхода логируются и пропускаются.
func (rr *RecipeRegistry) LoadFromConfig(cfg config.CraftingConfig) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	for _, rc := range cfg.Recipes {
		if rc.ID == "" || rc.Output == "" || len(rc.Inputs) == 0 {
			logging.GetCraftLogger().Warn("Некорректный рецепт %q пропущен", rc.ID)
			continue
		}
		outputCount := rc.OutputCount
		if outputCount <= 0 {
			outputCount = 1
		}
		inputs := make(map[string]int, len(rc.Inputs))
		for item, count := range rc.Inputs {
			if count <= 0 {
				logging.GetCraftLogger().Warn("Рецепт %q: некорректное количество %d для %q", rc.ID, count, item)
				continue
			}
			inputs[item] = count
		}
		rr.recipes[rc.ID] = &Recipe{
			ID:           rc.ID,
			Inputs:       inputs,
			Output:       rc.Output,
			OutputCount:  outputCount,
			CraftSeconds: rc.CraftSeconds,
		}
	}
	logging.GetCraftLogger().Info("Загружено рецептов крафта: %d", len(rr.recipes))
}

// Get возвращает рецепт по ID
func (rr *RecipeRegistry) Get(id string) (*Recipe, bool) {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	recipe, exists := rr.recipes[id]
	return recipe, exists
}

// Count возвращает количество рецептов
func (rr *RecipeRegistry) Count() int {
	rr.mu.RLock()
	defer rr.mu.RUnlock()
	return len(rr.recipes)
}
