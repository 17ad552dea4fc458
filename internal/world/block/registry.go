package block

import "strings"

var (
	registry = make(map[BlockID]BlockBehavior)
	byName   = make(map[string]BlockBehavior)
)

// Register добавляет поведение блока в регистр
func Register(id BlockID, behavior BlockBehavior) {
	registry[id] = behavior
	byName[normalizeName(behavior.Name())] = behavior
}

// Get возвращает поведение для указанного ID
func Get(id BlockID) (BlockBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// GetByName возвращает поведение по имени блока (без учёта регистра).
// Используется при резолве имён из конфигурации генерации.
// Регистр букв и подчёркивания не учитываются, поэтому
// конфигурационное "coal_ore" находит поведение "CoalOre".
func GetByName(name string) (BlockBehavior, bool) {
	behavior, exists := byName[normalizeName(name)]
	return behavior, exists
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "")
}

// IsValidBlockID проверяет, является ли ID допустимым идентификатором блока
func IsValidBlockID(id BlockID) bool {
	_, exists := registry[id]
	return exists
}

// IsSolid возвращает признак непроходимости блока.
// Неизвестный ID считается воздухом.
func IsSolid(id BlockID) bool {
	behavior, exists := registry[id]
	if !exists {
		return false
	}
	return behavior.IsSolid()
}

// IsTransparent возвращает признак прозрачности блока.
// Неизвестный ID считается прозрачным (как воздух).
func IsTransparent(id BlockID) bool {
	behavior, exists := registry[id]
	if !exists {
		return true
	}
	return behavior.IsTransparent()
}

// BlockID представляет идентификатор блока
type BlockID uint16

// Константы ID блоков
const (
	// Базовые типы блоков
	AirBlockID   BlockID = iota // 0
	StoneBlockID                // 1
	GrassBlockID                // 2
	DirtBlockID                 // 3
	SandBlockID                 // 4
	WaterBlockID                // 5

	// Для возможности расширения, оставляем большие промежутки между категориями

	// Растительность (начиная с 100)
	LogBlockID    BlockID = 100 // Ствол дерева
	LeavesBlockID BlockID = 101 // Листва
	BushBlockID   BlockID = 102 // Куст

	// Руды (начиная с 200)
	CoalOreBlockID BlockID = 200 // Угольная руда
	IronOreBlockID BlockID = 201 // Железная руда
	GoldOreBlockID BlockID = 202 // Золотая руда
)
