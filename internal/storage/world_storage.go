package storage

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v3"
	"github.com/klauspost/compress/zstd"

	"github.com/annel0/voxel-rpg/internal/logging"
	"github.com/annel0/voxel-rpg/internal/vec"
)

// WorldStorage хранит снимки чанков в BadgerDB.
// Снимок — массив ID блоков чанка, сжатый zstd.
type WorldStorage struct {
	db      *badger.DB
	dbPath  string
	encoder *zstd.Encoder
	decoder *zstd.Decoder
	mutex   sync.RWMutex
	isReady bool
}

// NewWorldStorage создает новое хранилище мира
func NewWorldStorage(dataPath string) (*WorldStorage, error) {
	dbPath := filepath.Join(dataPath, "world")
	opts := badger.DefaultOptions(dbPath)
	opts.Logger = nil // Отключаем логирование BadgerDB

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть BadgerDB: %w", err)
	}

	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("не удалось создать zstd-кодер: %w", err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		encoder.Close()
		db.Close()
		return nil, fmt.Errorf("не удалось создать zstd-декодер: %w", err)
	}

	logging.GetStorageLogger().Info("Хранилище мира открыто: %s", dbPath)

	return &WorldStorage{
		db:      db,
		dbPath:  dbPath,
		encoder: encoder,
		decoder: decoder,
		isReady: true,
	}, nil
}

// Close закрывает хранилище данных
func (ws *WorldStorage) Close() error {
	ws.mutex.Lock()
	defer ws.mutex.Unlock()

	if !ws.isReady {
		return nil
	}

	ws.isReady = false
	ws.encoder.Close()
	ws.decoder.Close()
	return ws.db.Close()
}

func chunkKey(coords vec.Vec3) []byte {
	return []byte(fmt.Sprintf("chunk:%d:%d:%d", coords.X, coords.Y, coords.Z))
}

// SaveChunkSnapshot сохраняет снимок блоков чанка.
// Блоки кодируются little-endian uint16 и сжимаются zstd.
func (ws *WorldStorage) SaveChunkSnapshot(coords vec.Vec3, blocks []uint16) error {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return fmt.Errorf("хранилище не готово")
	}

	raw := make([]byte, len(blocks)*2)
	for i, id := range blocks {
		binary.LittleEndian.PutUint16(raw[i*2:], id)
	}
	compressed := ws.encoder.EncodeAll(raw, nil)

	err := ws.db.Update(func(txn *badger.Txn) error {
		return txn.Set(chunkKey(coords), compressed)
	})
	if err != nil {
		return fmt.Errorf("ошибка сохранения чанка в BadgerDB: %w", err)
	}
	return nil
}

// LoadChunkSnapshot загружает снимок блоков чанка.
// Второе значение false означает, что чанк не сохранялся.
func (ws *WorldStorage) LoadChunkSnapshot(coords vec.Vec3) ([]uint16, bool, error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return nil, false, fmt.Errorf("хранилище не готово")
	}

	var compressed []byte
	err := ws.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(chunkKey(coords))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			compressed = append([]byte{}, val...)
			return nil
		})
	})

	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("ошибка чтения чанка из BadgerDB: %w", err)
	}

	raw, err := ws.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, false, fmt.Errorf("ошибка распаковки чанка: %w", err)
	}
	if len(raw)%2 != 0 {
		return nil, false, fmt.Errorf("повреждённый снимок чанка %v: нечётная длина %d", coords, len(raw))
	}

	blocks := make([]uint16, len(raw)/2)
	for i := range blocks {
		blocks[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	return blocks, true, nil
}

// SaveWorldMeta сохраняет метаданные мира (сид и уровень моря),
// чтобы при повторном запуске отловить несовпадение конфигурации
func (ws *WorldStorage) SaveWorldMeta(seed int64, seaLevel int) error {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return fmt.Errorf("хранилище не готово")
	}

	raw := make([]byte, 16)
	binary.LittleEndian.PutUint64(raw[0:], uint64(seed))
	binary.LittleEndian.PutUint64(raw[8:], uint64(seaLevel))

	return ws.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte("world:meta"), raw)
	})
}

// LoadWorldMeta загружает метаданные мира.
// Второе значение false означает, что мир ещё не сохранялся.
func (ws *WorldStorage) LoadWorldMeta() (seed int64, seaLevel int, found bool, err error) {
	ws.mutex.RLock()
	defer ws.mutex.RUnlock()

	if !ws.isReady {
		return 0, 0, false, fmt.Errorf("хранилище не готово")
	}

	var raw []byte
	err = ws.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("world:meta"))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw = append([]byte{}, val...)
			return nil
		})
	})
	if err == badger.ErrKeyNotFound {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, fmt.Errorf("ошибка чтения метаданных мира: %w", err)
	}
	if len(raw) < 16 {
		return 0, 0, false, fmt.Errorf("повреждённые метаданные мира")
	}

	seed = int64(binary.LittleEndian.Uint64(raw[0:]))
	seaLevel = int(binary.LittleEndian.Uint64(raw[8:]))
	return seed, seaLevel, true, nil
}
