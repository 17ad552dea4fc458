package eventbus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsExporter публикует счётчики шины в Prometheus.
// Экспортер опирается только на интерфейс EventBus, поэтому
// одинаково работает с любой реализацией.
type MetricsExporter struct {
	bus  EventBus
	quit chan struct{}
	done chan struct{}

	published prometheus.Counter
	consumed  prometheus.Counter
	dropped   prometheus.Counter
	inflight  prometheus.Gauge

	// Последние абсолютные значения, чтобы конвертировать их в приращения
	lastPublished uint64
	lastConsumed  uint64
	lastDropped   uint64
}

// NewMetricsExporter создаёт экспортер и регистрирует метрики в дефолтном регистре.
func NewMetricsExporter(bus EventBus) *MetricsExporter {
	me := &MetricsExporter{
		bus:  bus,
		quit: make(chan struct{}),
		done: make(chan struct{}),
		published: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eventbus",
			Name:      "messages_published_total",
			Help:      "Общее число опубликованных сообщений.",
		}),
		consumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eventbus",
			Name:      "messages_consumed_total",
			Help:      "Общее число доставленных сообщений подписчикам.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "eventbus",
			Name:      "messages_dropped_total",
			Help:      "Сообщений, отброшенных из-за ограничения back-pressure.",
		}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "eventbus",
			Name:      "messages_inflight",
			Help:      "Количество сообщений в очереди (не доставленных).",
		}),
	}

	prometheus.MustRegister(me.published, me.consumed, me.dropped, me.inflight)
	return me
}

// Start запускает периодическое обновление метрик.
func (me *MetricsExporter) Start(interval time.Duration) {
	go func() {
		defer close(me.done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-me.quit:
				return
			case <-ticker.C:
				me.collect()
			}
		}
	}()
}

// Stop останавливает обновление и дожидается выхода горутины.
func (me *MetricsExporter) Stop() {
	close(me.quit)
	<-me.done
}

func (me *MetricsExporter) collect() {
	stats := me.bus.Metrics()

	me.published.Add(float64(stats.Published - me.lastPublished))
	me.consumed.Add(float64(stats.Consumed - me.lastConsumed))
	me.dropped.Add(float64(stats.Dropped - me.lastDropped))
	me.inflight.Set(float64(stats.InFlight))

	me.lastPublished = stats.Published
	me.lastConsumed = stats.Consumed
	me.lastDropped = stats.Dropped
}
