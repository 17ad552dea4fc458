package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Метрики мира и генерации. Регистрируются в глобальном регистре
// Prometheus при загрузке пакета.
var (
	LoadedChunks = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "world",
		Name:      "loaded_chunks",
		Help:      "Количество загруженных чанков",
	})

	BlockChanges = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "world",
		Name:      "block_changes_total",
		Help:      "Количество изменений блоков",
	})

	ChunkRebuilds = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "world",
		Name:      "chunk_rebuilds_total",
		Help:      "Количество перестроек мешей чанков",
	})

	ChunkRebuildDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "world",
		Name:      "chunk_rebuild_duration_seconds",
		Help:      "Длительность перестройки меша чанка",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
	})

	ChunkGenerationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "world",
		Name:      "chunk_generation_duration_seconds",
		Help:      "Длительность генерации чанка",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 2, 12),
	})

	ChunksSaved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "world",
		Name:      "chunks_saved_total",
		Help:      "Количество сохранённых чанков",
	})

	CraftJobsCompleted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "craft",
		Name:      "jobs_completed_total",
		Help:      "Количество завершённых заданий крафта",
	})

	EntitiesAlive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "entity",
		Name:      "alive",
		Help:      "Количество живых сущностей",
	})
)

func init() {
	prometheus.MustRegister(
		LoadedChunks,
		BlockChanges,
		ChunkRebuilds,
		ChunkRebuildDuration,
		ChunkGenerationDuration,
		ChunksSaved,
		CraftJobsCompleted,
		EntitiesAlive,
	)
}
