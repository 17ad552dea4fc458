package world

import (
	"sync"

	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
)

const (
	// ChunkSize определяет размер чанка по каждой оси
	ChunkSize = 16

	// ChunkVolume количество блоков в чанке
	ChunkVolume = ChunkSize * ChunkSize * ChunkSize
)

// Chunk представляет кубический фрагмент мира 16x16x16 блоков
type Chunk struct {
	Coords vec.Vec3 // Координаты чанка в сетке чанков

	// Плоский массив блоков, индекс x + z*16 + y*256
	Blocks [ChunkVolume]block.BlockID

	// Метаданные блоков, ключ локальный индекс
	Metadata map[int]block.Metadata

	// Изменённые блоки с момента последнего сохранения
	Changes       map[int]struct{}
	ChangeCounter uint64

	dirty bool // Требуется перестройка меша

	mu sync.RWMutex
}

// NewChunk создаёт новый пустой чанк (заполнен воздухом)
func NewChunk(coords vec.Vec3) *Chunk {
	return &Chunk{
		Coords:   coords,
		Metadata: make(map[int]block.Metadata),
		Changes:  make(map[int]struct{}),
		dirty:    true,
	}
}

// blockIndex преобразует локальные координаты в индекс плоского массива.
// Возвращает -1 для координат вне чанка.
func blockIndex(local vec.Vec3) int {
	if local.X < 0 || local.X >= ChunkSize ||
		local.Y < 0 || local.Y >= ChunkSize ||
		local.Z < 0 || local.Z >= ChunkSize {
		return -1
	}
	return local.X + local.Z*ChunkSize + local.Y*ChunkSize*ChunkSize
}

// GetBlockLocal возвращает блок по локальным координатам.
// Координаты вне чанка дают воздух.
func (c *Chunk) GetBlockLocal(local vec.Vec3) block.BlockID {
	idx := blockIndex(local)
	if idx < 0 {
		return block.AirBlockID
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Blocks[idx]
}

// SetBlockLocal устанавливает блок по локальным координатам.
// Возвращает true, если значение изменилось.
func (c *Chunk) SetBlockLocal(local vec.Vec3, id block.BlockID) bool {
	idx := blockIndex(local)
	if idx < 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Blocks[idx] == id {
		return false
	}
	c.Blocks[idx] = id
	delete(c.Metadata, idx)
	c.Changes[idx] = struct{}{}
	c.ChangeCounter++
	c.dirty = true
	return true
}

// FillBlock устанавливает блок без учёта изменений.
// Используется генератором при первичном заполнении чанка.
func (c *Chunk) FillBlock(local vec.Vec3, id block.BlockID) {
	idx := blockIndex(local)
	if idx < 0 {
		return
	}
	c.mu.Lock()
	c.Blocks[idx] = id
	c.mu.Unlock()
}

// GetMetadataValue возвращает значение метаданных блока по ключу
func (c *Chunk) GetMetadataValue(local vec.Vec3, key string) (interface{}, bool) {
	idx := blockIndex(local)
	if idx < 0 {
		return nil, false
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	meta, exists := c.Metadata[idx]
	if !exists {
		return nil, false
	}
	value, ok := meta[key]
	return value, ok
}

// SetMetadataValue устанавливает значение метаданных блока по ключу
func (c *Chunk) SetMetadataValue(local vec.Vec3, key string, value interface{}) {
	idx := blockIndex(local)
	if idx < 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	meta, exists := c.Metadata[idx]
	if !exists {
		meta = make(block.Metadata)
		c.Metadata[idx] = meta
	}
	meta[key] = value
	c.Changes[idx] = struct{}{}
	c.ChangeCounter++
}

// MetadataAt возвращает копию всех метаданных блока.
// Блок без метаданных даёт nil.
func (c *Chunk) MetadataAt(local vec.Vec3) block.Metadata {
	idx := blockIndex(local)
	if idx < 0 {
		return nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	meta, exists := c.Metadata[idx]
	if !exists {
		return nil
	}
	out := make(block.Metadata, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}

// ReplaceMetadataAt целиком заменяет метаданные блока
func (c *Chunk) ReplaceMetadataAt(local vec.Vec3, meta block.Metadata) {
	idx := blockIndex(local)
	if idx < 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(meta) == 0 {
		delete(c.Metadata, idx)
	} else {
		c.Metadata[idx] = meta
	}
	c.Changes[idx] = struct{}{}
	c.ChangeCounter++
}

// IsDirty возвращает признак необходимости перестройки меша
func (c *Chunk) IsDirty() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dirty
}

// MarkDirty помечает чанк для перестройки меша.
// Вызывается для соседних чанков при изменении граничных блоков.
func (c *Chunk) MarkDirty() {
	c.mu.Lock()
	c.dirty = true
	c.mu.Unlock()
}

// ClearDirty снимает признак после перестройки меша
func (c *Chunk) ClearDirty() {
	c.mu.Lock()
	c.dirty = false
	c.mu.Unlock()
}

// HasChanges возвращает true, если есть несохранённые изменения
func (c *Chunk) HasChanges() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.Changes) > 0
}

// ClearChanges сбрасывает учёт изменений после сохранения
func (c *Chunk) ClearChanges() {
	c.mu.Lock()
	c.Changes = make(map[int]struct{})
	c.mu.Unlock()
}

// Snapshot возвращает копию массива блоков для сериализации
func (c *Chunk) Snapshot() [ChunkVolume]block.BlockID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Blocks
}

// Restore загружает массив блоков из снимка хранилища
func (c *Chunk) Restore(blocks [ChunkVolume]block.BlockID) {
	c.mu.Lock()
	c.Blocks = blocks
	c.dirty = true
	c.mu.Unlock()
}

// ForEachTickable вызывает fn для каждого блока, требующего обновления.
// Позиции передаются в мировых координатах.
func (c *Chunk) ForEachTickable(fn func(pos vec.Vec3, id block.BlockID)) {
	c.mu.RLock()
	tickable := c.tickableIndices()
	c.mu.RUnlock()

	base := vec.Vec3{
		X: c.Coords.X * ChunkSize,
		Y: c.Coords.Y * ChunkSize,
		Z: c.Coords.Z * ChunkSize,
	}
	for idx, id := range tickable {
		local := vec.Vec3{
			X: idx % ChunkSize,
			Z: (idx / ChunkSize) % ChunkSize,
			Y: idx / (ChunkSize * ChunkSize),
		}
		fn(base.Add(local), id)
	}
}

// tickableIndices собирает индексы блоков с тикающим поведением.
// Вызывается под блокировкой чтения.
func (c *Chunk) tickableIndices() map[int]block.BlockID {
	result := make(map[int]block.BlockID)
	for idx, id := range c.Blocks {
		if id == block.AirBlockID {
			continue
		}
		behavior, exists := block.Get(id)
		if exists && behavior.NeedsTick() {
			result[idx] = id
		}
	}
	return result
}
