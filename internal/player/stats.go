package player

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/annel0/voxel-rpg/internal/eventbus"
	"github.com/annel0/voxel-rpg/internal/logging"
)

// Типы событий характеристик
const (
	EventPlayerDied    = "player.died"
	EventPlayerDamaged = "player.damaged"
)

// Пределы характеристик
const (
	MaxHealth  = 100
	MaxHunger  = 100
	MaxStamina = 100
)

// Скорости фоновых изменений (единиц в секунду)
const (
	hungerDrainRate    = 0.05 // Голод убывает постоянно
	staminaRegenRate   = 10.0 // Выносливость восстанавливается в покое
	starvationDamage   = 1.0  // Урон в секунду при нулевом голоде
	healFromFoodRate   = 0.5  // Регенерация при сытости выше порога
	healHungerMinLevel = 80.0 // Порог сытости для регенерации
)

// Stats хранит характеристики игрока: здоровье, голод, выносливость.
// Все значения ограничены диапазоном [0, max].
type Stats struct {
	playerID uint64

	health  float64
	hunger  float64
	stamina float64
	dead    bool

	starvationAcc float64 // Накопленный урон от голода

	mu sync.Mutex
}

// NewStats создаёт характеристики с полными значениями
func NewStats(playerID uint64) *Stats {
	return &Stats{
		playerID: playerID,
		health:   MaxHealth,
		hunger:   MaxHunger,
		stamina:  MaxStamina,
	}
}

// Health возвращает текущее здоровье
func (s *Stats) Health() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.health
}

// Hunger возвращает текущий голод
func (s *Stats) Hunger() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hunger
}

// Stamina возвращает текущую выносливость
func (s *Stats) Stamina() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stamina
}

// IsDead возвращает true после смерти игрока
func (s *Stats) IsDead() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dead
}

// Damage наносит урон. Возвращает true, если урон привёл к смерти.
func (s *Stats) Damage(amount float64) bool {
	if amount <= 0 {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dead {
		return false
	}

	s.health = clamp(s.health-amount, 0, MaxHealth)
	s.publishLocked(EventPlayerDamaged, amount)
	if s.health == 0 {
		s.dead = true
		logging.Info("Игрок %d погиб", s.playerID)
		s.publishLocked(EventPlayerDied, 0)
		return true
	}
	return false
}

// Heal восстанавливает здоровье
func (s *Stats) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dead {
		return
	}
	s.health = clamp(s.health+amount, 0, MaxHealth)
}

// Eat восстанавливает голод
func (s *Stats) Eat(nutrition float64) {
	if nutrition <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dead {
		return
	}
	s.hunger = clamp(s.hunger+nutrition, 0, MaxHunger)
}

// SpendStamina тратит выносливость.
// Возвращает false без списания, если выносливости не хватает.
func (s *Stats) SpendStamina(amount float64) bool {
	if amount <= 0 {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dead || s.stamina < amount {
		return false
	}
	s.stamina -= amount
	return true
}

// Tick продвигает фоновые процессы: убывание голода, регенерацию
// выносливости, урон от истощения и регенерацию при сытости
func (s *Stats) Tick(dt float64) {
	s.mu.Lock()
	if s.dead {
		s.mu.Unlock()
		return
	}

	s.hunger = clamp(s.hunger-hungerDrainRate*dt, 0, MaxHunger)
	s.stamina = clamp(s.stamina+staminaRegenRate*dt, 0, MaxStamina)

	if s.hunger == 0 {
		// Урон от голода накапливается дробно между тиками
		s.starvationAcc += starvationDamage * dt
		if s.starvationAcc >= 1 {
			damage := float64(int(s.starvationAcc))
			s.starvationAcc -= damage
			s.mu.Unlock()
			s.Damage(damage)
			return
		}
	} else if s.hunger >= healHungerMinLevel {
		s.health = clamp(s.health+healFromFoodRate*dt, 0, MaxHealth)
	}
	s.mu.Unlock()
}

// statsEventPayload сериализуется в события характеристик
type statsEventPayload struct {
	PlayerID uint64  `json:"player_id"`
	Health   float64 `json:"health"`
	Amount   float64 `json:"amount,omitempty"`
}

// publishLocked публикует событие. Вызывается под s.mu.
func (s *Stats) publishLocked(eventType string, amount float64) {
	data, err := json.Marshal(statsEventPayload{
		PlayerID: s.playerID,
		Health:   s.health,
		Amount:   amount,
	})
	if err != nil {
		return
	}
	env := eventbus.NewEnvelope("player", eventType, 6, data)
	if err := eventbus.Publish(context.Background(), env); err != nil {
		logging.Warn("Не удалось опубликовать событие %s: %v", eventType, err)
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
