package craft

import "sync"

// Inventory хранит предметы по именам
type Inventory struct {
	items map[string]int
	mu    sync.RWMutex
}

// NewInventory создаёт пустой инвентарь
func NewInventory() *Inventory {
	return &Inventory{items: make(map[string]int)}
}

// Count возвращает количество предмета
func (inv *Inventory) Count(item string) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.items[item]
}

// Add добавляет предметы в инвентарь
func (inv *Inventory) Add(item string, count int) {
	if count <= 0 {
		return
	}
	inv.mu.Lock()
	inv.items[item] += count
	inv.mu.Unlock()
}

// Has проверяет наличие всех предметов из набора
func (inv *Inventory) Has(required map[string]int) bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	for item, count := range required {
		if inv.items[item] < count {
			return false
		}
	}
	return true
}

// Consume списывает набор предметов атомарно.
// Возвращает false без списания, если чего-то не хватает.
func (inv *Inventory) Consume(required map[string]int) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	for item, count := range required {
		if inv.items[item] < count {
			return false
		}
	}
	for item, count := range required {
		inv.items[item] -= count
		if inv.items[item] == 0 {
			delete(inv.items, item)
		}
	}
	return true
}
