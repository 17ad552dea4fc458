package mesh

import (
	"github.com/annel0/voxel-rpg/internal/logging"
)

// MeshSink принимает готовые меши чанков.
// Реализация на стороне рендерера загружает геометрию в GPU,
// серверная реализация только считает статистику.
type MeshSink interface {
	// SubmitMesh передаёт новый меш чанка
	SubmitMesh(m *Mesh)

	// DropMesh убирает меш выгруженного чанка
	DropMesh(chunkCoords [3]int)
}

// LogSink пишет поступающие меши в журнал.
// Используется как приёмник по умолчанию на выделенном сервере.
type LogSink struct{}

// NewLogSink создаёт журнальный приёмник мешей
func NewLogSink() *LogSink {
	return &LogSink{}
}

// SubmitMesh записывает статистику меша в журнал
func (s *LogSink) SubmitMesh(m *Mesh) {
	logging.Debug("Меш чанка (%d,%d,%d): %d граней, %d вершин",
		m.ChunkCoords.X, m.ChunkCoords.Y, m.ChunkCoords.Z,
		m.FaceCount, len(m.Positions)/3)
}

// DropMesh записывает выгрузку меша в журнал
func (s *LogSink) DropMesh(chunkCoords [3]int) {
	logging.Debug("Меш чанка (%d,%d,%d) выгружен",
		chunkCoords[0], chunkCoords[1], chunkCoords[2])
}

// NopSink отбрасывает меши. Применяется в тестах.
type NopSink struct{}

func (NopSink) SubmitMesh(m *Mesh)          {}
func (NopSink) DropMesh(chunkCoords [3]int) {}
