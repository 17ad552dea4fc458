package craft

import (
	"sync"

	"github.com/annel0/voxel-rpg/internal/logging"
	"github.com/annel0/voxel-rpg/internal/metrics"
)

// Job представляет задание в очереди станции
type Job struct {
	Recipe    *Recipe
	Remaining float64 // Оставшееся время крафта в секундах
}

// CraftingStation обрабатывает очередь заданий крафта.
// Ресурсы списываются при постановке в очередь; одновременно
// выполняется только головное задание.
type CraftingStation struct {
	registry  *RecipeRegistry
	inventory *Inventory
	queue     []*Job
	capacity  int
	mu        sync.Mutex
}

// NewCraftingStation создаёт станцию с указанной вместимостью очереди
func NewCraftingStation(registry *RecipeRegistry, inventory *Inventory, capacity int) *CraftingStation {
	if capacity <= 0 {
		capacity = 8
	}
	return &CraftingStation{
		registry:  registry,
		inventory: inventory,
		capacity:  capacity,
	}
}

// Enqueue ставит рецепт в очередь.
// Неизвестный рецепт, полная очередь или нехватка ресурсов
// логируются и дают false.
func (cs *CraftingStation) Enqueue(recipeID string) bool {
	recipe, exists := cs.registry.Get(recipeID)
	if !exists {
		logging.GetCraftLogger().Warn("Неизвестный рецепт %q отклонён", recipeID)
		return false
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if len(cs.queue) >= cs.capacity {
		logging.GetCraftLogger().Debug("Очередь станции заполнена, рецепт %q отклонён", recipeID)
		return false
	}
	if !cs.inventory.Consume(recipe.Inputs) {
		logging.GetCraftLogger().Debug("Недостаточно ресурсов для рецепта %q", recipeID)
		return false
	}

	cs.queue = append(cs.queue, &Job{
		Recipe:    recipe,
		Remaining: recipe.CraftSeconds,
	})
	return true
}

// Update продвигает головное задание очереди.
// Завершённое задание кладёт результат в инвентарь.
func (cs *CraftingStation) Update(dt float64) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if len(cs.queue) == 0 {
		return
	}

	head := cs.queue[0]
	head.Remaining -= dt
	if head.Remaining > 0 {
		return
	}

	cs.inventory.Add(head.Recipe.Output, head.Recipe.OutputCount)
	cs.queue = cs.queue[1:]
	metrics.CraftJobsCompleted.Inc()
	logging.GetCraftLogger().Debug("Крафт %q завершён: +%d %s",
		head.Recipe.ID, head.Recipe.OutputCount, head.Recipe.Output)
}

// Cancel снимает задание с указанной позиции очереди и возвращает
// ресурсы в инвентарь. Прогресс головного задания теряется.
func (cs *CraftingStation) Cancel(index int) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if index < 0 || index >= len(cs.queue) {
		return false
	}

	job := cs.queue[index]
	for item, count := range job.Recipe.Inputs {
		cs.inventory.Add(item, count)
	}
	cs.queue = append(cs.queue[:index], cs.queue[index+1:]...)
	return true
}

// QueueLength возвращает длину очереди
func (cs *CraftingStation) QueueLength() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.queue)
}

// HeadProgress возвращает готовность головного задания от 0 до 1.
// Пустая очередь даёт 0.
func (cs *CraftingStation) HeadProgress() float64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	if len(cs.queue) == 0 {
		return 0
	}
	head := cs.queue[0]
	if head.Recipe.CraftSeconds <= 0 {
		return 1
	}
	progress := 1 - head.Remaining/head.Recipe.CraftSeconds
	if progress < 0 {
		progress = 0
	}
	return progress
}
