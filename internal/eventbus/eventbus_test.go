package eventbus

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelopeFields(t *testing.T) {
	env := NewEnvelope("world", "world.block_changed", 5, []byte(`{}`))

	assert.NotEmpty(t, env.ID, "Конверт должен получать уникальный ID")
	assert.False(t, env.Timestamp.IsZero(), "Конверт должен получать время создания")
	assert.Equal(t, "world", env.Source, "Источник должен сохраняться")
	assert.Equal(t, "world.block_changed", env.EventType, "Тип события должен сохраняться")
	assert.Equal(t, 5, env.Priority, "Приоритет должен сохраняться")
}

func TestPublishDeliversToMatchingSubscriber(t *testing.T) {
	bus := NewMemoryBus(16)
	received := make(chan *Envelope, 4)

	_, err := bus.Subscribe(context.Background(),
		Filter{Types: []string{"world.block_changed"}},
		func(ctx context.Context, ev *Envelope) {
			received <- ev
		})
	require.NoError(t, err, "Подписка должна пройти")

	require.NoError(t, bus.Publish(context.Background(),
		NewEnvelope("world", "world.block_changed", 5, []byte(`{}`))))
	require.NoError(t, bus.Publish(context.Background(),
		NewEnvelope("entity", "entity.spawned", 5, nil)))

	select {
	case ev := <-received:
		assert.Equal(t, "world.block_changed", ev.EventType,
			"Подписчик должен получить событие своего типа")
	case <-time.After(2 * time.Second):
		t.Fatal("Событие не дошло до подписчика")
	}

	select {
	case ev := <-received:
		t.Fatalf("Событие %s не должно проходить фильтр", ev.EventType)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewMemoryBus(16)
	received := make(chan *Envelope, 4)

	sub, err := bus.Subscribe(context.Background(), Filter{},
		func(ctx context.Context, ev *Envelope) {
			received <- ev
		})
	require.NoError(t, err, "Подписка должна пройти")
	sub.Unsubscribe()

	require.NoError(t, bus.Publish(context.Background(),
		NewEnvelope("world", "world.chunk_loaded", 5, nil)))

	select {
	case <-received:
		t.Fatal("После отписки события приходить не должны")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestMetricsCountPublished(t *testing.T) {
	bus := NewMemoryBus(16)

	for i := 0; i < 3; i++ {
		require.NoError(t, bus.Publish(context.Background(),
			NewEnvelope("craft", "craft.completed", 5, nil)))
	}

	assert.Equal(t, uint64(3), bus.Metrics().Published,
		"Счётчик опубликованных событий должен расти")
}
