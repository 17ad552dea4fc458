package physics

import (
	"math"

	"github.com/annel0/voxel-rpg/internal/vec"
)

// BoxCollider представляет осевой параллелепипед сущности
type BoxCollider struct {
	Width  float64 // Размер по X и Z в блоках
	Height float64 // Размер по Y в блоках
}

// NewBoxCollider создаёт новый коллайдер с указанными размерами
func NewBoxCollider(width, height float64) *BoxCollider {
	return &BoxCollider{
		Width:  width,
		Height: height,
	}
}

// CheckBoxCollision проверяет пересечение двух коллайдеров.
// Позиция коллайдера — центр его основания.
func CheckBoxCollision(pos1 vec.Vec3Float, c1 *BoxCollider, pos2 vec.Vec3Float, c2 *BoxCollider) bool {
	half1 := c1.Width / 2
	half2 := c2.Width / 2

	return pos1.X+half1 > pos2.X-half2 &&
		pos1.X-half1 < pos2.X+half2 &&
		pos1.Z+half1 > pos2.Z-half2 &&
		pos1.Z-half1 < pos2.Z+half2 &&
		pos1.Y+c1.Height > pos2.Y &&
		pos1.Y < pos2.Y+c2.Height
}

// GetCollisionPoints возвращает точки коллайдера для проверки блоков:
// углы основания и верха плюс центр
func GetCollisionPoints(pos vec.Vec3Float, collider *BoxCollider) []vec.Vec3Float {
	half := collider.Width / 2
	if collider.Width <= 1 && collider.Height <= 1 {
		return []vec.Vec3Float{pos}
	}

	eps := 0.001 // Углы чуть внутрь, иначе задевают соседний блок
	points := make([]vec.Vec3Float, 0, 9)
	for _, dy := range []float64{0, collider.Height - eps} {
		for _, dx := range []float64{-half + eps, half - eps} {
			for _, dz := range []float64{-half + eps, half - eps} {
				points = append(points, vec.Vec3Float{X: pos.X + dx, Y: pos.Y + dy, Z: pos.Z + dz})
			}
		}
	}
	points = append(points, pos)
	return points
}

// CanMoveToPosition проверяет, может ли сущность встать в позицию.
// blockChecker возвращает true для проходимого блока.
func CanMoveToPosition(newPos vec.Vec3Float, collider *BoxCollider, blockChecker func(vec.Vec3) bool) bool {
	for _, point := range GetCollisionPoints(newPos, collider) {
		if !blockChecker(point.ToVec3()) {
			return false
		}
	}
	return true
}

// RaycastVoxels идёт по вокселям вдоль отрезка от from к to.
// Возвращает первый блок, на котором visit вернула false, и true.
// Если визит дошёл до конца отрезка, возвращается нулевой вектор и false.
// Используется для полёта снарядов и проверки линии видимости.
func RaycastVoxels(from, to vec.Vec3Float, visit func(vec.Vec3) bool) (vec.Vec3, bool) {
	dir := to.Sub(from)
	length := dir.Length()
	if length == 0 {
		return vec.Vec3{}, false
	}

	// Пошаговый обход с шагом меньше блока; для игровых дистанций
	// точности достаточно, DDA не требуется
	const step = 0.25
	steps := int(math.Ceil(length / step))
	last := vec.Vec3{X: math.MaxInt32, Y: math.MaxInt32, Z: math.MaxInt32}

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := from.Add(dir.Mul(t)).ToVec3()
		if p == last {
			continue
		}
		last = p
		if !visit(p) {
			return p, true
		}
	}
	return vec.Vec3{}, false
}
