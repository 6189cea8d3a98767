package glm

import "golang.org/x/exp/constraints"

type float interface {
	~float32 | ~float64
}

type numeric interface {
	float | uint32
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
