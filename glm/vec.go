package glm

type Vec2[T numeric] [2]T
type Vec4[T numeric] [4]T

type Vec2f = Vec2[float32]
type Vec4f = Vec4[float32]

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
	}
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs[0]
	y = lhs[1]
	return
}

func (lhs Vec4[T]) XYZW() (x, y, z, w T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	w = lhs[3]
	return
}

// RotateVec2 rotates v counter-clockwise around the origin.
func RotateVec2[T float](v Vec2[T], angle Rad) Vec2[T] {
	s, c := sincos(angle)

	return Vec2[T]{
		v[0]*T(c) - v[1]*T(s),
		v[0]*T(s) + v[1]*T(c),
	}
}
