package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/annel0/voxel-rpg/internal/vec"
)

func TestCheckBoxCollision(t *testing.T) {
	a := NewBoxCollider(1.0, 2.0)
	b := NewBoxCollider(1.0, 2.0)

	assert.True(t, CheckBoxCollision(
		vec.Vec3Float{X: 0, Y: 0, Z: 0}, a,
		vec.Vec3Float{X: 0.5, Y: 0, Z: 0}, b,
	), "Пересекающиеся коллайдеры должны сталкиваться")

	assert.False(t, CheckBoxCollision(
		vec.Vec3Float{X: 0, Y: 0, Z: 0}, a,
		vec.Vec3Float{X: 2, Y: 0, Z: 0}, b,
	), "Далёкие коллайдеры не сталкиваются")

	assert.False(t, CheckBoxCollision(
		vec.Vec3Float{X: 0, Y: 0, Z: 0}, a,
		vec.Vec3Float{X: 0, Y: 2.5, Z: 0}, b,
	), "Коллайдеры на разной высоте не сталкиваются")
}

func TestCanMoveToPosition(t *testing.T) {
	collider := NewBoxCollider(0.8, 1.8)

	// Стена из твёрдых блоков на x=3
	solidAt := func(p vec.Vec3) bool {
		return p.X != 3
	}

	assert.True(t, CanMoveToPosition(
		vec.Vec3Float{X: 1, Y: 10, Z: 1}, collider, solidAt),
		"Свободная позиция должна быть доступна")

	assert.False(t, CanMoveToPosition(
		vec.Vec3Float{X: 3.5, Y: 10, Z: 1}, collider, solidAt),
		"Позиция внутри стены должна быть недоступна")
}

func TestRaycastVoxelsHit(t *testing.T) {
	// Твёрдый блок в (5, 0, 0)
	hitPos, hit := RaycastVoxels(
		vec.Vec3Float{X: 0.5, Y: 0.5, Z: 0.5},
		vec.Vec3Float{X: 9.5, Y: 0.5, Z: 0.5},
		func(p vec.Vec3) bool {
			return p != vec.Vec3{X: 5, Y: 0, Z: 0}
		},
	)

	assert.True(t, hit, "Луч должен попасть в блок")
	assert.Equal(t, vec.Vec3{X: 5, Y: 0, Z: 0}, hitPos, "Луч должен вернуть первый твёрдый блок")
}

func TestRaycastVoxelsMiss(t *testing.T) {
	_, hit := RaycastVoxels(
		vec.Vec3Float{X: 0.5, Y: 0.5, Z: 0.5},
		vec.Vec3Float{X: 9.5, Y: 0.5, Z: 0.5},
		func(p vec.Vec3) bool { return true },
	)

	assert.False(t, hit, "Луч без препятствий не попадает")
}

func TestRaycastVoxelsZeroLength(t *testing.T) {
	_, hit := RaycastVoxels(
		vec.Vec3Float{X: 1, Y: 1, Z: 1},
		vec.Vec3Float{X: 1, Y: 1, Z: 1},
		func(p vec.Vec3) bool { return false },
	)

	assert.False(t, hit, "Нулевой отрезок не даёт попаданий")
}
