package util

import (
	"github.com/aquilax/go-perlin"
)

// NoiseGenerator обёртка над шумом Перлина, привязанная к сиду.
// Один инстанс на генератор мира, чтобы чанки с одинаковым сидом
// всегда получали одинаковый ландшафт.
type NoiseGenerator struct {
	seed   int64
	perlin *perlin.Perlin
}

// NewNoiseGenerator создаёт генератор шума с указанным сидом
func NewNoiseGenerator(seed int64) *NoiseGenerator {
	alpha := 2.0  // Сглаживание шума
	beta := 2.0   // Частота шума
	n := int32(3) // Количество октав

	return &NoiseGenerator{
		seed:   seed,
		perlin: perlin.NewPerlin(alpha, beta, n, seed),
	}
}

// Seed возвращает сид генератора
func (ng *NoiseGenerator) Seed() int64 {
	return ng.seed
}

// Noise2D возвращает значение шума для указанных координат (от 0 до 1)
func (ng *NoiseGenerator) Noise2D(x, y float64) float64 {
	// Noise2D библиотеки возвращает значение от -1 до 1
	noise := ng.perlin.Noise2D(x, y)
	return (noise + 1.0) / 2.0
}

// Noise3D возвращает значение шума для 3D координат (от 0 до 1)
func (ng *NoiseGenerator) Noise3D(x, y, z float64) float64 {
	noise := ng.perlin.Noise3D(x, y, z)
	return (noise + 1.0) / 2.0
}

// PlaneProduct3D возвращает произведение шумов трёх осевых плоскостей
// (xy, yz, xz) в точке. Даёт «жилы» вместо сплошных облаков — значение
// велико только там, где высоки все три плоскостных шума. Результат от 0 до 1.
func (ng *NoiseGenerator) PlaneProduct3D(x, y, z float64) float64 {
	xy := ng.Noise2D(x, y)
	yz := ng.Noise2D(y+1024.0, z)
	xz := ng.Noise2D(x+2048.0, z)
	return xy * yz * xz
}
