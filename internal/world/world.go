package world

import (
	"context"
	"sync"
	"time"

	"github.com/annel0/voxel-rpg/internal/config"
	"github.com/annel0/voxel-rpg/internal/logging"
	"github.com/annel0/voxel-rpg/internal/metrics"
	"github.com/annel0/voxel-rpg/internal/vec"
	"github.com/annel0/voxel-rpg/internal/world/block"
	"github.com/annel0/voxel-rpg/internal/world/mesh"
)

// ChunkStore абстрагирует персистентное хранилище чанков.
// Реализуется пакетом storage поверх BadgerDB.
type ChunkStore interface {
	SaveChunkSnapshot(coords vec.Vec3, blocks []uint16) error
	LoadChunkSnapshot(coords vec.Vec3) ([]uint16, bool, error)
}

// WorldManager управляет чанками мира: загрузка, генерация,
// изменение блоков, перестройка мешей и сохранение
type WorldManager struct {
	chunks    map[vec.Vec3]*Chunk
	generator *WorldGenerator
	store     ChunkStore    // Может быть nil (мир без персистентности)
	sink      mesh.MeshSink // Приёмник готовых мешей

	tickRate       int
	autosavePeriod time.Duration
	ticksCount     uint64

	tickHooks []func(dt float64) // Подсистемы, обновляемые в игровом цикле

	mu sync.RWMutex
}

// NewWorldManager создаёт менеджер мира с генератором на указанном сиде
func NewWorldManager(worldCfg config.WorldConfig, genCfg config.GenerationConfig, serverCfg config.ServerConfig) *WorldManager {
	wm := &WorldManager{
		chunks:         make(map[vec.Vec3]*Chunk),
		generator:      NewWorldGenerator(worldCfg.Seed, worldCfg, genCfg),
		sink:           mesh.NewLogSink(),
		tickRate:       serverCfg.GetTickRate(),
		autosavePeriod: time.Duration(serverCfg.AutosaveMinutes) * time.Minute,
	}
	if wm.autosavePeriod <= 0 {
		wm.autosavePeriod = 5 * time.Minute
	}
	return wm
}

// SetStore подключает персистентное хранилище чанков
func (wm *WorldManager) SetStore(store ChunkStore) {
	wm.mu.Lock()
	wm.store = store
	wm.mu.Unlock()
}

// SetMeshSink подключает приёмник мешей
func (wm *WorldManager) SetMeshSink(sink mesh.MeshSink) {
	wm.mu.Lock()
	wm.sink = sink
	wm.mu.Unlock()
}

// Generator возвращает генератор мира
func (wm *WorldManager) Generator() *WorldGenerator {
	return wm.generator
}

// AddTickHook подключает подсистему к игровому циклу.
// Хуки вызываются каждый тик из горутины цикла мира.
func (wm *WorldManager) AddTickHook(hook func(dt float64)) {
	wm.mu.Lock()
	wm.tickHooks = append(wm.tickHooks, hook)
	wm.mu.Unlock()
}

// GetBlock возвращает блок по мировым координатам.
// Чтение не порождает генерацию: незагруженный чанк даёт воздух.
func (wm *WorldManager) GetBlock(pos vec.Vec3) block.BlockID {
	chunkCoords := pos.ToChunkCoords()

	wm.mu.RLock()
	chunk, exists := wm.chunks[chunkCoords]
	wm.mu.RUnlock()

	if !exists {
		return block.AirBlockID
	}
	return chunk.GetBlockLocal(pos.LocalInChunk())
}

// GetChunk возвращает загруженный чанк или nil
func (wm *WorldManager) GetChunk(coords vec.Vec3) *Chunk {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return wm.chunks[coords]
}

// LoadedChunkCount возвращает количество загруженных чанков
func (wm *WorldManager) LoadedChunkCount() int {
	wm.mu.RLock()
	defer wm.mu.RUnlock()
	return len(wm.chunks)
}

// LoadChunk загружает чанк: сперва попытка чтения из хранилища,
// при отсутствии снимка чанк генерируется. Повторная загрузка
// возвращает уже существующий чанк.
func (wm *WorldManager) LoadChunk(coords vec.Vec3) *Chunk {
	wm.mu.RLock()
	chunk, exists := wm.chunks[coords]
	wm.mu.RUnlock()
	if exists {
		return chunk
	}

	wm.mu.Lock()
	defer wm.mu.Unlock()
	// Повторная проверка: чанк мог появиться между блокировками
	if chunk, exists = wm.chunks[coords]; exists {
		return chunk
	}

	chunk = NewChunk(coords)
	restored := false
	if wm.store != nil {
		blocks, found, err := wm.store.LoadChunkSnapshot(coords)
		if err != nil {
			logging.GetWorldLogger().Error("Ошибка загрузки чанка (%d,%d,%d): %v",
				coords.X, coords.Y, coords.Z, err)
		} else if found && len(blocks) == ChunkVolume {
			var arr [ChunkVolume]block.BlockID
			for i, id := range blocks {
				arr[i] = block.BlockID(id)
			}
			chunk.Restore(arr)
			restored = true
		}
	}

	if !restored {
		start := time.Now()
		wm.generator.GenerateChunk(chunk)
		metrics.ChunkGenerationDuration.Observe(time.Since(start).Seconds())
	}

	wm.chunks[coords] = chunk
	metrics.LoadedChunks.Set(float64(len(wm.chunks)))

	publishEvent(EventChunkLoaded, 3, ChunkPayload{Coords: coords, Generated: !restored})
	logging.GetWorldLogger().Debug("Чанк (%d,%d,%d) загружен (сгенерирован=%v)",
		coords.X, coords.Y, coords.Z, !restored)

	// Соседи должны перестроить меши: их граничные грани зависят от нас
	wm.markNeighborsDirtyLocked(coords)
	return chunk
}

// RequestBlockChange изменяет блок по мировым координатам.
// Незагруженный чанк создаётся по требованию. При изменении на
// границе чанка помечаются и соседние чанки.
func (wm *WorldManager) RequestBlockChange(pos vec.Vec3, id block.BlockID) bool {
	if !block.IsValidBlockID(id) {
		logging.Warn("Запрос установки неизвестного блока %d в (%d,%d,%d) отклонён",
			id, pos.X, pos.Y, pos.Z)
		return false
	}

	chunkCoords := pos.ToChunkCoords()
	chunk := wm.LoadChunk(chunkCoords)
	local := pos.LocalInChunk()

	oldID := chunk.GetBlockLocal(local)
	if !chunk.SetBlockLocal(local, id) {
		return false
	}

	// Хуки поведения блоков
	api := wm.blockAPI()
	if oldBehavior, ok := block.Get(oldID); ok && oldID != block.AirBlockID {
		oldBehavior.OnBreak(api, pos)
	}
	if newBehavior, ok := block.Get(id); ok && id != block.AirBlockID {
		newBehavior.OnPlace(api, pos)
	}

	wm.markBoundaryNeighborsDirty(chunkCoords, local)

	metrics.BlockChanges.Inc()
	publishEvent(EventBlockChanged, 5, BlockChangedPayload{
		Pos:      pos,
		OldBlock: oldID,
		NewBlock: id,
	})
	return true
}

// InteractWithBlock выполняет действие игрока над блоком ("mine",
// "place", "harvest"…) через его поведение. Результат взаимодействия
// может сменить блок и его метаданные; после смены блока соседние
// тикающие блоки получают разовое обновление, чтобы песок и вода
// отреагировали на потерю опоры.
func (wm *WorldManager) InteractWithBlock(pos vec.Vec3, action string, actionPayload map[string]interface{}) block.InteractionResult {
	id := wm.GetBlock(pos)
	behavior, exists := block.Get(id)
	if !exists {
		logging.Warn("Взаимодействие %q с неизвестным блоком %d в (%d,%d,%d)",
			action, id, pos.X, pos.Y, pos.Z)
		return block.InteractionResult{Success: false, Message: "Неизвестный блок"}
	}

	var currentPayload map[string]interface{}
	chunk := wm.GetChunk(pos.ToChunkCoords())
	if chunk != nil {
		currentPayload = chunk.MetadataAt(pos.LocalInChunk())
	}
	if currentPayload == nil {
		currentPayload = behavior.CreateMetadata()
	}
	if actionPayload == nil {
		actionPayload = map[string]interface{}{}
	}

	newID, newPayload, result := behavior.HandleInteraction(action, currentPayload, actionPayload)

	if newID != id {
		wm.RequestBlockChange(pos, newID)
		chunk = wm.GetChunk(pos.ToChunkCoords())
		if chunk != nil && len(newPayload) > 0 {
			chunk.ReplaceMetadataAt(pos.LocalInChunk(), newPayload)
		}
		wm.blockAPI().TriggerNeighborUpdates(pos)
	} else if chunk != nil {
		chunk.ReplaceMetadataAt(pos.LocalInChunk(), newPayload)
	}

	return result
}

// markBoundaryNeighborsDirty помечает соседние чанки при изменении
// блока на грани чанка
func (wm *WorldManager) markBoundaryNeighborsDirty(chunkCoords, local vec.Vec3) {
	var offsets []vec.Vec3
	if local.X == 0 {
		offsets = append(offsets, vec.Vec3{X: -1})
	}
	if local.X == ChunkSize-1 {
		offsets = append(offsets, vec.Vec3{X: 1})
	}
	if local.Y == 0 {
		offsets = append(offsets, vec.Vec3{Y: -1})
	}
	if local.Y == ChunkSize-1 {
		offsets = append(offsets, vec.Vec3{Y: 1})
	}
	if local.Z == 0 {
		offsets = append(offsets, vec.Vec3{Z: -1})
	}
	if local.Z == ChunkSize-1 {
		offsets = append(offsets, vec.Vec3{Z: 1})
	}
	if len(offsets) == 0 {
		return
	}

	wm.mu.RLock()
	defer wm.mu.RUnlock()
	for _, off := range offsets {
		if neighbor, exists := wm.chunks[chunkCoords.Add(off)]; exists {
			neighbor.MarkDirty()
		}
	}
}

// markNeighborsDirtyLocked помечает все шесть соседей чанка.
// Вызывается под wm.mu.
func (wm *WorldManager) markNeighborsDirtyLocked(coords vec.Vec3) {
	neighbors := []vec.Vec3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	}
	for _, off := range neighbors {
		if neighbor, exists := wm.chunks[coords.Add(off)]; exists {
			neighbor.MarkDirty()
		}
	}
}

// RebuildDirtyChunks перестраивает меши всех помеченных чанков.
// Возвращает количество перестроенных чанков.
func (wm *WorldManager) RebuildDirtyChunks() int {
	wm.mu.RLock()
	dirty := make([]*Chunk, 0)
	for _, chunk := range wm.chunks {
		if chunk.IsDirty() {
			dirty = append(dirty, chunk)
		}
	}
	sink := wm.sink
	wm.mu.RUnlock()

	for _, chunk := range dirty {
		start := time.Now()
		m := mesh.BuildChunkMesh(chunk.Coords, wm.GetBlock)
		chunk.ClearDirty()
		metrics.ChunkRebuilds.Inc()
		metrics.ChunkRebuildDuration.Observe(time.Since(start).Seconds())

		if sink != nil {
			sink.SubmitMesh(m)
		}
		publishEvent(EventChunkRemeshed, 2, ChunkPayload{Coords: chunk.Coords})
	}
	return len(dirty)
}

// UnloadChunk сохраняет и выгружает чанк
func (wm *WorldManager) UnloadChunk(coords vec.Vec3) {
	wm.mu.Lock()
	chunk, exists := wm.chunks[coords]
	if !exists {
		wm.mu.Unlock()
		return
	}
	delete(wm.chunks, coords)
	metrics.LoadedChunks.Set(float64(len(wm.chunks)))
	store := wm.store
	sink := wm.sink
	wm.mu.Unlock()

	if store != nil && chunk.HasChanges() {
		if err := wm.saveChunk(store, chunk); err != nil {
			logging.Error("Ошибка сохранения чанка (%d,%d,%d) при выгрузке: %v",
				coords.X, coords.Y, coords.Z, err)
		}
	}
	if sink != nil {
		sink.DropMesh([3]int{coords.X, coords.Y, coords.Z})
	}
	publishEvent(EventChunkUnloaded, 3, ChunkPayload{Coords: coords})
}

// saveChunk записывает снимок чанка в хранилище
func (wm *WorldManager) saveChunk(store ChunkStore, chunk *Chunk) error {
	snapshot := chunk.Snapshot()
	blocks := make([]uint16, ChunkVolume)
	for i, id := range snapshot {
		blocks[i] = uint16(id)
	}
	if err := store.SaveChunkSnapshot(chunk.Coords, blocks); err != nil {
		return err
	}
	chunk.ClearChanges()
	metrics.ChunksSaved.Inc()
	return nil
}

// SaveAll сохраняет все чанки с несохранёнными изменениями.
// Возвращает количество сохранённых чанков.
func (wm *WorldManager) SaveAll() int {
	wm.mu.RLock()
	store := wm.store
	changed := make([]*Chunk, 0)
	for _, chunk := range wm.chunks {
		if chunk.HasChanges() {
			changed = append(changed, chunk)
		}
	}
	wm.mu.RUnlock()

	if store == nil {
		return 0
	}

	start := time.Now()
	saved := 0
	for _, chunk := range changed {
		if err := wm.saveChunk(store, chunk); err != nil {
			logging.Error("Ошибка сохранения чанка (%d,%d,%d): %v",
				chunk.Coords.X, chunk.Coords.Y, chunk.Coords.Z, err)
			continue
		}
		saved++
	}

	if saved > 0 {
		publishEvent(EventWorldSaved, 5, SavePayload{
			ChunksSaved: saved,
			DurationMs:  time.Since(start).Milliseconds(),
		})
		logging.GetWorldLogger().Info("Автосохранение: %d чанков за %v", saved, time.Since(start))
	}
	return saved
}

// tick выполняет один игровой тик: подключённые подсистемы,
// обновление тикающих блоков и перестройка помеченных чанков
func (wm *WorldManager) tick() {
	wm.ticksCount++
	dt := 1.0 / float64(wm.tickRate)

	wm.mu.RLock()
	hooks := wm.tickHooks
	wm.mu.RUnlock()
	for _, hook := range hooks {
		hook(dt)
	}

	// Тикающие блоки обновляются раз в 10 тиков, чтобы рост травы
	// и растекание воды не съедали бюджет каждого тика
	if wm.ticksCount%10 == 0 {
		api := wm.blockAPI()
		wm.mu.RLock()
		chunks := make([]*Chunk, 0, len(wm.chunks))
		for _, chunk := range wm.chunks {
			chunks = append(chunks, chunk)
		}
		wm.mu.RUnlock()

		for _, chunk := range chunks {
			chunk.ForEachTickable(func(pos vec.Vec3, id block.BlockID) {
				behavior, exists := block.Get(id)
				if exists {
					behavior.TickUpdate(api, pos)
				}
			})
		}
	}

	wm.RebuildDirtyChunks()
}

// Run запускает игровой цикл мира. Блокируется до отмены контекста.
func (wm *WorldManager) Run(ctx context.Context) {
	tickInterval := time.Second / time.Duration(wm.tickRate)
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	logging.Info("Игровой цикл мира запущен: %d тиков/с, автосохранение каждые %v",
		wm.tickRate, wm.autosavePeriod)

	// Автосохранение идёт в отдельной горутине и трогает чанки
	// только через их мьютексы
	go func() {
		autosave := time.NewTicker(wm.autosavePeriod)
		defer autosave.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-autosave.C:
				wm.SaveAll()
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Игровой цикл мира остановлен, финальное сохранение")
			wm.SaveAll()
			return
		case <-ticker.C:
			wm.tick()
		}
	}
}
