package craft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-rpg/internal/config"
)

func newTestStation(t *testing.T) (*CraftingStation, *Inventory) {
	t.Helper()

	registry := NewRecipeRegistry()
	registry.LoadFromConfig(config.CraftingConfig{
		QueueCapacity: 4,
		Recipes: []config.RecipeConfig{
			{ID: "planks", Inputs: map[string]int{"log": 1}, Output: "planks", OutputCount: 4, CraftSeconds: 1},
			{ID: "torch", Inputs: map[string]int{"coal": 1, "stick": 1}, Output: "torch", OutputCount: 4, CraftSeconds: 2},
		},
	})

	inventory := NewInventory()
	return NewCraftingStation(registry, inventory, 4), inventory
}

func TestRegistryLoad(t *testing.T) {
	registry := NewRecipeRegistry()
	registry.LoadFromConfig(config.Default().Crafting)

	assert.Equal(t, 4, registry.Count(), "Все рецепты по умолчанию должны загрузиться")

	recipe, ok := registry.Get("planks")
	assert.True(t, ok, "Рецепт досок должен существовать")
	assert.Equal(t, 4, recipe.OutputCount, "Количество на выходе должно совпадать")
}

func TestRegistrySkipsInvalid(t *testing.T) {
	registry := NewRecipeRegistry()
	registry.LoadFromConfig(config.CraftingConfig{
		Recipes: []config.RecipeConfig{
			{ID: "", Inputs: map[string]int{"log": 1}, Output: "x"},
			{ID: "no_output", Inputs: map[string]int{"log": 1}},
			{ID: "good", Inputs: map[string]int{"log": 1}, Output: "planks"},
		},
	})

	assert.Equal(t, 1, registry.Count(), "Некорректные рецепты должны быть пропущены")
}

func TestEnqueueConsumesInputs(t *testing.T) {
	station, inventory := newTestStation(t)
	inventory.Add("log", 2)

	ok := station.Enqueue("planks")
	assert.True(t, ok, "Постановка с ресурсами должна пройти")
	assert.Equal(t, 1, inventory.Count("log"), "Ресурсы списываются при постановке")
	assert.Equal(t, 1, station.QueueLength(), "Задание должно попасть в очередь")
}

func TestEnqueueUnknownRecipe(t *testing.T) {
	station, _ := newTestStation(t)

	ok := station.Enqueue("philosophers_stone")
	assert.False(t, ok, "Неизвестный рецепт должен быть отклонён")
	assert.Equal(t, 0, station.QueueLength(), "Очередь должна остаться пустой")
}

func TestEnqueueInsufficientResources(t *testing.T) {
	station, inventory := newTestStation(t)
	inventory.Add("coal", 1) // Палки нет

	ok := station.Enqueue("torch")
	assert.False(t, ok, "Постановка без ресурсов должна быть отклонена")
	assert.Equal(t, 1, inventory.Count("coal"), "Ресурсы не должны списываться при отказе")
}

func TestUpdateCompletesHeadJob(t *testing.T) {
	station, inventory := newTestStation(t)
	inventory.Add("log", 1)
	station.Enqueue("planks")

	station.Update(0.5)
	assert.Equal(t, 1, station.QueueLength(), "Задание ещё не готово")
	assert.Equal(t, 0, inventory.Count("planks"), "Результата ещё нет")

	station.Update(0.6)
	assert.Equal(t, 0, station.QueueLength(), "Задание должно завершиться")
	assert.Equal(t, 4, inventory.Count("planks"), "Результат должен попасть в инвентарь")
}

func TestUpdateProcessesQueueInOrder(t *testing.T) {
	station, inventory := newTestStation(t)
	inventory.Add("log", 1)
	inventory.Add("coal", 1)
	inventory.Add("stick", 1)

	station.Enqueue("planks") // 1 секунда
	station.Enqueue("torch")  // 2 секунды

	// Только головное задание продвигается
	station.Update(1.0)
	assert.Equal(t, 4, inventory.Count("planks"), "Первое задание должно завершиться")
	assert.Equal(t, 0, inventory.Count("torch"), "Второе задание ещё не начато")

	station.Update(1.0)
	assert.Equal(t, 0, inventory.Count("torch"), "Второе задание в процессе")
	station.Update(1.0)
	assert.Equal(t, 4, inventory.Count("torch"), "Второе задание должно завершиться")
}

func TestCancelRefundsInputs(t *testing.T) {
	station, inventory := newTestStation(t)
	inventory.Add("log", 1)
	station.Enqueue("planks")

	ok := station.Cancel(0)
	assert.True(t, ok, "Отмена существующего задания должна пройти")
	assert.Equal(t, 1, inventory.Count("log"), "Ресурсы должны вернуться в инвентарь")
	assert.Equal(t, 0, station.QueueLength(), "Очередь должна опустеть")

	assert.False(t, station.Cancel(0), "Отмена из пустой очереди должна вернуть false")
}

func TestQueueCapacity(t *testing.T) {
	station, inventory := newTestStation(t)
	inventory.Add("log", 10)

	for i := 0; i < 4; i++ {
		assert.True(t, station.Enqueue("planks"), "Очередь должна вмещать задания до лимита")
	}
	assert.False(t, station.Enqueue("planks"), "Переполнение очереди должно быть отклонено")
	assert.Equal(t, 6, inventory.Count("log"), "Отклонённое задание не списывает ресурсы")
}

func TestHeadProgress(t *testing.T) {
	station, inventory := newTestStation(t)
	assert.Equal(t, 0.0, station.HeadProgress(), "Пустая очередь даёт нулевой прогресс")

	inventory.Add("coal", 1)
	inventory.Add("stick", 1)
	station.Enqueue("torch")

	station.Update(1.0)
	assert.InDelta(t, 0.5, station.HeadProgress(), 0.001, "Прогресс должен отражать готовность")
}
