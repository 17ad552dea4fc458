package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoise2DRange(t *testing.T) {
	ng := NewNoiseGenerator(42)

	for x := 0.0; x < 10; x += 0.37 {
		for y := 0.0; y < 10; y += 0.53 {
			v := ng.Noise2D(x, y)
			assert.GreaterOrEqual(t, v, 0.0, "Шум должен быть не меньше 0")
			assert.LessOrEqual(t, v, 1.0, "Шум должен быть не больше 1")
		}
	}
}

func TestNoiseDeterminism(t *testing.T) {
	a := NewNoiseGenerator(7)
	b := NewNoiseGenerator(7)

	assert.Equal(t, a.Noise2D(1.5, 2.5), b.Noise2D(1.5, 2.5),
		"Одинаковый сид должен давать одинаковый шум")
	assert.Equal(t, a.Noise3D(1.5, 2.5, 3.5), b.Noise3D(1.5, 2.5, 3.5),
		"Одинаковый сид должен давать одинаковый 3D шум")
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := NewNoiseGenerator(1)
	b := NewNoiseGenerator(2)

	different := false
	for x := 0.0; x < 5 && !different; x += 0.1 {
		if a.Noise2D(x, x) != b.Noise2D(x, x) {
			different = true
		}
	}
	assert.True(t, different, "Разные сиды должны давать разный шум")
}

func TestPlaneProduct3DRange(t *testing.T) {
	ng := NewNoiseGenerator(99)

	for x := 0.0; x < 5; x += 0.41 {
		v := ng.PlaneProduct3D(x, x*0.7, x*1.3)
		assert.GreaterOrEqual(t, v, 0.0, "Произведение шумов должно быть не меньше 0")
		assert.LessOrEqual(t, v, 1.0, "Произведение шумов должно быть не больше 1")
	}
}
